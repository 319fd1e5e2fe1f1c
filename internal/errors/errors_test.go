package errors

import (
	"errors"
	"fmt"
	"strings"
	"testing"
)

func TestAPIError_Error(t *testing.T) {
	err := NewAPIError(500, "https://example.com/query", "query failed")

	msg := err.Error()
	if !strings.Contains(msg, "500") {
		t.Errorf("Expected status in message, got %q", msg)
	}
	if !strings.Contains(msg, "https://example.com/query") {
		t.Errorf("Expected endpoint in message, got %q", msg)
	}
}

func TestAPIError_NoStatus(t *testing.T) {
	err := NewAPIError(0, "https://example.com/query", "query failed")

	if strings.Contains(err.Error(), "[0]") {
		t.Errorf("Zero status should be omitted from message: %q", err.Error())
	}
}

func TestNetworkError_Unwrap(t *testing.T) {
	cause := errors.New("connection refused")
	err := NewNetworkErrorWithEndpoint("query", "https://example.com/query", cause)

	if !errors.Is(err, cause) {
		t.Error("NetworkError should unwrap to its cause")
	}
	if !strings.Contains(err.Error(), "connection refused") {
		t.Errorf("Expected cause in message, got %q", err.Error())
	}
}

func TestTimeoutError_DefaultMessage(t *testing.T) {
	err := NewTimeoutError("")
	if err.Error() != "request timed out" {
		t.Errorf("Unexpected default message: %q", err.Error())
	}
}

func TestParseError_IsInvalidResponse(t *testing.T) {
	err := NewParseError("no response field found", "response")

	if !errors.Is(err, ErrInvalidResponse) {
		t.Error("ParseError should match ErrInvalidResponse")
	}
}

func TestPredicates(t *testing.T) {
	tests := []struct {
		name    string
		err     error
		network bool
		timeout bool
		parse   bool
	}{
		{"network", NewNetworkError("query", errors.New("refused")), true, false, false},
		{"timeout", NewTimeoutError("slow"), false, true, false},
		{"parse", NewParseError("bad body", ""), false, false, true},
		{"api", NewAPIError(500, "ep", "failed"), false, false, false},
		{"plain", errors.New("whatever"), false, false, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := IsNetworkError(tt.err); got != tt.network {
				t.Errorf("IsNetworkError = %v, want %v", got, tt.network)
			}
			if got := IsTimeoutError(tt.err); got != tt.timeout {
				t.Errorf("IsTimeoutError = %v, want %v", got, tt.timeout)
			}
			if got := IsParseError(tt.err); got != tt.parse {
				t.Errorf("IsParseError = %v, want %v", got, tt.parse)
			}
		})
	}
}

func TestPredicates_Wrapped(t *testing.T) {
	err := fmt.Errorf("query failed: %w", NewNetworkError("query", errors.New("refused")))
	if !IsNetworkError(err) {
		t.Error("IsNetworkError should see through wrapping")
	}
}

func TestGetHTTPStatus(t *testing.T) {
	if got := GetHTTPStatus(NewAPIError(503, "ep", "down")); got != 503 {
		t.Errorf("Expected 503, got %d", got)
	}
	if got := GetHTTPStatus(errors.New("plain")); got != 0 {
		t.Errorf("Expected 0 for plain error, got %d", got)
	}
}

func TestGetEndpoint(t *testing.T) {
	if got := GetEndpoint(NewAPIError(500, "https://a/query", "x")); got != "https://a/query" {
		t.Errorf("Unexpected endpoint from APIError: %q", got)
	}
	if got := GetEndpoint(NewNetworkErrorWithEndpoint("query", "https://b/query", errors.New("x"))); got != "https://b/query" {
		t.Errorf("Unexpected endpoint from NetworkError: %q", got)
	}
	if got := GetEndpoint(errors.New("plain")); got != "" {
		t.Errorf("Expected empty endpoint for plain error, got %q", got)
	}
}

func TestGetResponseBody(t *testing.T) {
	err := NewAPIErrorWithBody(500, "ep", "failed", `{"detail": "boom"}`)
	if got := GetResponseBody(err); got != `{"detail": "boom"}` {
		t.Errorf("Unexpected body: %q", got)
	}
	if got := GetResponseBody(NewTimeoutError("")); got != "" {
		t.Errorf("Expected empty body for timeout error, got %q", got)
	}
}
