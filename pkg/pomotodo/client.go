package pomotodo

import (
	"context"
	"fmt"
	"net/http"
)

// DefaultBaseURL is the production Pomotodo API endpoint.
const DefaultBaseURL = "https://api.pomotodo.com/1"

const defaultUserAgent = "go-pomotodo"

// Client is an HTTP client for the Pomotodo API.
type Client struct {
	baseURL   string
	token     string
	userAgent string
	http      *http.Client
}

// NewClient creates a new Pomotodo API client authenticated with the
// given access token.
//
// Optional options:
//   - WithBaseURL: sets the API base URL (default: https://api.pomotodo.com/1)
//   - WithHTTPClient: sets a custom *http.Client
//   - WithTimeout: sets the HTTP client timeout (default: 30s)
//   - WithUserAgent: sets the User-Agent header
//
// Example:
//
//	client, err := pomotodo.NewClient(os.Getenv("POMOTODO_TOKEN"))
func NewClient(token string, opts ...ClientOption) (*Client, error) {
	if token == "" {
		return nil, fmt.Errorf("access token is required")
	}

	cfg := defaultClientConfig()
	for _, opt := range opts {
		opt(cfg)
	}

	hc := cfg.http
	if hc == nil {
		hc = &http.Client{Timeout: cfg.timeout}
	}

	return &Client{
		baseURL:   cfg.baseURL,
		token:     token,
		userAgent: cfg.userAgent,
		http:      hc,
	}, nil
}

// Account retrieves the account information of the token owner. It is
// also the cheapest way to verify that a token is valid.
func (c *Client) Account(ctx context.Context) (*Account, error) {
	req, err := c.newRequest(ctx, http.MethodGet, "/account", nil)
	if err != nil {
		return nil, err
	}

	var account Account
	if err := c.doJSON(req, http.StatusOK, &account); err != nil {
		return nil, err
	}

	return &account, nil
}
