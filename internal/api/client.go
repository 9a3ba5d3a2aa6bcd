// Package api implements the HTTP client for the EthicaMind backend.
package api

import (
	"context"
	"net/http"
	"os"

	"github.com/ethicamind/ethicamind-cli/internal/models"
)

const (
	// DefaultBaseURL is used when no override is present in the environment.
	DefaultBaseURL = "http://localhost:5000"

	// BaseURLEnvVar overrides the backend address when set.
	BaseURLEnvVar = "ETHICAMIND_API_URL"

	// ChatPath is the chat/triage endpoint on the backend.
	ChatPath = "/api/chat"
)

// ChatClient is the interface the rest of the client programs against.
type ChatClient interface {
	Send(ctx context.Context, message string) (*models.Reply, error)
}

// Client talks to the EthicaMind backend over plain HTTP.
type Client struct {
	httpClient *http.Client
	baseURL    string
}

// ClientOption is a function that configures the client
type ClientOption func(*Client)

// WithBaseURL overrides the backend base address.
func WithBaseURL(baseURL string) ClientOption {
	return func(c *Client) {
		c.baseURL = baseURL
	}
}

// WithHTTPClient sets the underlying HTTP client. Useful for tests and
// for callers that need custom transports.
func WithHTTPClient(httpClient *http.Client) ClientOption {
	return func(c *Client) {
		c.httpClient = httpClient
	}
}

// ResolveBaseURL returns the backend base address: the environment
// override when set, the default local address otherwise.
func ResolveBaseURL() string {
	if base := os.Getenv(BaseURLEnvVar); base != "" {
		return base
	}
	return DefaultBaseURL
}

// NewClient creates a new backend client. The base address is resolved
// from the environment at construction time; no timeout is applied
// beyond the transport defaults.
func NewClient(opts ...ClientOption) *Client {
	client := &Client{
		httpClient: &http.Client{},
		baseURL:    ResolveBaseURL(),
	}

	for _, opt := range opts {
		opt(client)
	}

	return client
}

// BaseURL returns the resolved backend base address.
func (c *Client) BaseURL() string {
	return c.baseURL
}

// Ensure Client implements ChatClient
var _ ChatClient = (*Client)(nil)
