// Package api implements the HTTP client for the remote stock query endpoint.
package api

import (
	"fmt"
	"sync"
	"time"

	http "github.com/bogdanfinn/fhttp"
	tls_client "github.com/bogdanfinn/tls-client"
	"github.com/bogdanfinn/tls-client/profiles"

	"github.com/diogo/stockchat/internal/models"
)

// QueryClientInterface defines the client operations the rest of the
// application depends on
type QueryClientInterface interface {
	Query(text string) (string, error)
	Endpoint() string
	Close()
}

// httpDoer is the slice of tls_client.HttpClient the query client uses.
// Narrowing it here lets tests inject a fake transport.
type httpDoer interface {
	Do(req *http.Request) (*http.Response, error)
}

// QueryClient sends user questions to the remote query endpoint
type QueryClient struct {
	httpClient httpDoer
	endpoint   string
	timeout    time.Duration
	mu         sync.RWMutex
	closed     bool
}

// ClientOption is a function that configures the client
type ClientOption func(*QueryClient)

// WithEndpoint sets the query endpoint URL
func WithEndpoint(endpoint string) ClientOption {
	return func(c *QueryClient) {
		if endpoint != "" {
			c.endpoint = endpoint
		}
	}
}

// WithTimeout sets the transport-level request timeout. The chat layer
// itself never times out a turn; this is the only place a hanging request
// gets cut off.
func WithTimeout(timeout time.Duration) ClientOption {
	return func(c *QueryClient) {
		if timeout > 0 {
			c.timeout = timeout
		}
	}
}

// WithHTTPClient injects a pre-built HTTP client (used by tests)
func WithHTTPClient(client httpDoer) ClientOption {
	return func(c *QueryClient) {
		c.httpClient = client
	}
}

// NewClient creates a new QueryClient
func NewClient(opts ...ClientOption) (*QueryClient, error) {
	client := &QueryClient{
		endpoint: models.DefaultEndpoint,
		timeout:  300 * time.Second,
	}

	for _, opt := range opts {
		opt(client)
	}

	if client.httpClient == nil {
		options := []tls_client.HttpClientOption{
			tls_client.WithTimeoutSeconds(int(client.timeout.Seconds())),
			tls_client.WithClientProfile(profiles.Chrome_120),
		}

		httpClient, err := tls_client.NewHttpClient(tls_client.NewNoopLogger(), options...)
		if err != nil {
			return nil, fmt.Errorf("failed to create HTTP client: %w", err)
		}
		client.httpClient = httpClient
	}

	return client, nil
}

// Endpoint returns the configured query endpoint URL
func (c *QueryClient) Endpoint() string {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.endpoint
}

// IsClosed returns whether the client is closed
func (c *QueryClient) IsClosed() bool {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.closed
}

// Close shuts down the client. Further queries return an error.
func (c *QueryClient) Close() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.closed = true
}
