package api

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net"
	"strings"

	http "github.com/bogdanfinn/fhttp"
	"github.com/tidwall/gjson"

	apierrors "github.com/diogo/stockchat/internal/errors"
	"github.com/diogo/stockchat/internal/models"
)

// pathResponse is the JSON path of the reply text in a successful response
const pathResponse = "response"

// maxErrorBody caps how much of an error response body is kept for diagnostics
const maxErrorBody = 4096

// queryRequest is the wire format of a query. Only the latest user text is
// sent; the endpoint is stateless from the client's perspective.
type queryRequest struct {
	Text string `json:"text"`
}

// Query sends one user question to the remote query endpoint and returns
// the reply text. The text is sent exactly as typed.
func (c *QueryClient) Query(text string) (string, error) {
	if strings.TrimSpace(text) == "" {
		return "", fmt.Errorf("query text cannot be empty")
	}

	if c.IsClosed() {
		return "", fmt.Errorf("client is closed")
	}

	payload, err := json.Marshal(queryRequest{Text: text})
	if err != nil {
		return "", fmt.Errorf("failed to build payload: %w", err)
	}

	endpoint := c.Endpoint()

	req, err := http.NewRequest(http.MethodPost, endpoint, strings.NewReader(string(payload)))
	if err != nil {
		return "", fmt.Errorf("failed to create request: %w", err)
	}

	for key, value := range models.DefaultHeaders() {
		req.Header.Set(key, value)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		if isTimeout(err) {
			return "", apierrors.NewTimeoutError(err.Error())
		}
		return "", apierrors.NewNetworkErrorWithEndpoint("query", endpoint, err)
	}
	defer func() {
		if resp != nil && resp.Body != nil {
			_ = resp.Body.Close()
		}
	}()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		errorBody, _ := io.ReadAll(io.LimitReader(resp.Body, maxErrorBody))
		return "", apierrors.NewAPIErrorWithBody(resp.StatusCode, endpoint, "query failed", string(errorBody))
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", apierrors.NewNetworkErrorWithEndpoint("read response", endpoint, err)
	}

	return parseReply(body)
}

// parseReply extracts the reply text from a response body
func parseReply(body []byte) (string, error) {
	trimmed := strings.TrimSpace(string(body))
	if !gjson.Valid(trimmed) {
		return "", apierrors.NewParseError("response is not valid JSON", "")
	}

	reply := gjson.Get(trimmed, pathResponse)
	if !reply.Exists() {
		return "", apierrors.NewParseError("no response field found", pathResponse)
	}

	// A present-but-empty reply counts as malformed
	if reply.Type != gjson.String || reply.String() == "" {
		return "", apierrors.NewParseError("response field is not usable text", pathResponse)
	}

	return reply.String(), nil
}

// isTimeout reports whether a transport error looks like a deadline being hit
func isTimeout(err error) bool {
	var ne net.Error
	if errors.As(err, &ne) && ne.Timeout() {
		return true
	}
	return strings.Contains(err.Error(), "Client.Timeout") ||
		strings.Contains(err.Error(), "context deadline exceeded")
}
