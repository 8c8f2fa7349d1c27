package crates

import (
	"context"
	"time"
)

// Client retrieves crate metadata from the registry.
//
// Get blocks for the full request/response round trip. GetAsync issues the
// same request on a separate goroutine and delivers the outcome on the
// returned channel, so many fetches can be in flight concurrently. Both
// surfaces share identical request construction and error classification.
type Client interface {
	// Get fetches the full metadata record for the named crate.
	Get(ctx context.Context, name string) (*Crate, error)

	// GetAsync fetches the named crate without blocking the caller. The
	// returned channel is buffered and receives exactly one FetchResult.
	GetAsync(ctx context.Context, name string) <-chan FetchResult
}

// FetchResult is the outcome of one asynchronous fetch.
type FetchResult struct {
	Name     string
	Crate    *Crate
	Err      error
	Duration time.Duration
}

// Logger interface for logging.
type Logger interface {
	Debug(msg string, fields map[string]interface{})
	Info(msg string, fields map[string]interface{})
	Warn(msg string, fields map[string]interface{})
	Error(msg string, fields map[string]interface{})
}

// Config represents client configuration for building a crates.Client.
//
// # Identification
//
// UserAgent is required by the crates.io usage policy and must contain at
// least one visible character after trimming whitespace. The constructor
// appends a fixed library-identifying suffix before configuring the outgoing
// User-Agent header, so the registry sees
// "{UserAgent} - Brought to you by: crates-client/{version}".
//
// # Timeouts
//
// Per-request timeouts should generally be controlled via the context passed
// to client methods; HTTPTimeout caps the whole exchange as a backstop.
type Config struct {
	// UserAgent: caller-supplied identification string. Required.
	UserAgent string

	// BaseURL: registry endpoint. Defaults to the crates.io crate metadata
	// endpoint when empty. Mainly useful for tests.
	BaseURL string

	// HTTPTimeout: optional cap on the full HTTP exchange.
	HTTPTimeout time.Duration

	// Debug: enables verbose HTTP request/response logging when a Logger is
	// provided.
	Debug bool

	// Logger: optional structured logger used by the HTTP layer.
	Logger Logger
}
