package client

import (
	"context"
	"encoding/json"
	"fmt"
	"net/url"
	"time"

	"github.com/cratehub/crates-client/internal/http"
	"github.com/cratehub/crates-client/pkg/crates"
)

// Client implements the crates.Client interface. It holds only its configured
// transport; no state is retained between calls.
type Client struct {
	httpClient *http.Client
}

// New creates a new registry client over the given transport.
func New(httpClient *http.Client) *Client {
	return &Client{
		httpClient: httpClient,
	}
}

// Get implements crates.Client.Get.
func (c *Client) Get(ctx context.Context, name string) (*crates.Crate, error) {
	path := "/" + url.PathEscape(name)

	resp, err := c.httpClient.Get(ctx, path)
	if err != nil {
		if crates.IsNotFound(err) {
			return nil, err
		}

		return nil, fmt.Errorf("getting crate %q: %w", name, err)
	}

	var crate crates.Crate
	if err := json.Unmarshal(resp.Body, &crate); err != nil {
		return nil, fmt.Errorf("parsing crate response: %w", err)
	}

	return &crate, nil
}

// GetAsync implements crates.Client.GetAsync.
func (c *Client) GetAsync(ctx context.Context, name string) <-chan crates.FetchResult {
	results := make(chan crates.FetchResult, 1)

	go func() {
		defer close(results)

		start := time.Now()
		crate, err := c.Get(ctx, name)
		results <- crates.FetchResult{
			Name:     name,
			Crate:    crate,
			Err:      err,
			Duration: time.Since(start),
		}
	}()

	return results
}
