package http

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/hashicorp/go-retryablehttp"

	"github.com/cratehub/crates-client/internal/constants"
	"github.com/cratehub/crates-client/pkg/crates"
)

// Client is the HTTP transport for the registry. It issues GET requests
// against a fixed base URL, injects the configured User-Agent, and classifies
// non-2xx responses into the crates error taxonomy.
type Client struct {
	baseURL    string
	httpClient *retryablehttp.Client
	userAgent  string
	logger     crates.Logger
	debug      bool
}

// Option configures the client.
type Option func(*Client)

// WithUserAgent sets the outgoing User-Agent header value.
func WithUserAgent(userAgent string) Option {
	return func(c *Client) {
		c.userAgent = userAgent
	}
}

// WithLogger sets the logger.
func WithLogger(logger crates.Logger) Option {
	return func(c *Client) {
		c.logger = logger
	}
}

// WithDebug enables request/response logging.
func WithDebug(debug bool) Option {
	return func(c *Client) {
		c.debug = debug
	}
}

// WithHTTPTimeout caps the full HTTP exchange.
func WithHTTPTimeout(timeout time.Duration) Option {
	return func(c *Client) {
		c.httpClient.HTTPClient.Timeout = timeout
	}
}

// NewClient creates a new transport client for the given base URL.
//
// retryablehttp is used purely as the underlying HTTP client; RetryMax is
// zero, so every failure is terminal for that call.
func NewClient(baseURL string, opts ...Option) *Client {
	retryClient := retryablehttp.NewClient()
	retryClient.RetryMax = 0
	retryClient.Logger = nil
	// Never retry: every response, success or failure, flows back to the
	// caller so status classification sees it.
	retryClient.CheckRetry = func(_ context.Context, _ *http.Response, err error) (bool, error) {
		return false, err
	}
	retryClient.HTTPClient.Timeout = constants.DefaultHTTPTimeout

	client := &Client{
		baseURL:    strings.TrimSuffix(baseURL, "/"),
		httpClient: retryClient,
	}

	for _, opt := range opts {
		opt(client)
	}

	client.httpClient.HTTPClient.Transport = &userAgentTransport{
		userAgent: client.userAgent,
		parent:    client.httpClient.HTTPClient.Transport,
	}

	return client
}

// Response represents an HTTP response from the registry.
type Response struct {
	StatusCode int
	Headers    http.Header
	Body       []byte
}

// Get issues a GET request for the given path relative to the base URL.
// A nil error implies a 2xx response.
func (c *Client) Get(ctx context.Context, path string) (*Response, error) {
	url := c.baseURL + "/" + strings.TrimPrefix(path, "/")

	req, err := retryablehttp.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, fmt.Errorf("creating request: %w", err)
	}

	req.Header.Set("Accept", "application/json")

	if c.debug && c.logger != nil {
		c.logger.Debug("HTTP Request", map[string]interface{}{
			"method": http.MethodGet,
			"url":    url,
		})
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("sending request: %w", err)
	}

	defer func() { _ = resp.Body.Close() }()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("reading response body: %w", err)
	}

	if c.debug && c.logger != nil {
		c.logger.Debug("HTTP Response", map[string]interface{}{
			"method":      http.MethodGet,
			"url":         url,
			"status_code": resp.StatusCode,
		})
	}

	response := &Response{
		StatusCode: resp.StatusCode,
		Headers:    resp.Header,
		Body:       body,
	}

	if err := classifyStatus(resp, body); err != nil {
		return response, err
	}

	return response, nil
}

// classifyStatus maps a non-2xx response to the crates error taxonomy.
func classifyStatus(resp *http.Response, body []byte) error {
	switch {
	case resp.StatusCode >= 200 && resp.StatusCode < 300:
		return nil
	case resp.StatusCode == http.StatusNotFound:
		return crates.ErrNotFound
	default:
		return &crates.RequestError{
			StatusCode: resp.StatusCode,
			Status:     resp.Status,
			Body:       strings.TrimSpace(string(body)),
		}
	}
}
