package constants

import "time"

// Registry endpoints and identification.
const (
	// DefaultBaseURL is the crates.io crate metadata endpoint.
	DefaultBaseURL = "https://crates.io/api/v1/crates"

	// LibraryUserAgent identifies this library in outgoing requests.
	LibraryUserAgent = "crates-client/1.0.0"

	// UserAgentFormat combines the caller identification with the library
	// identification, as required by the crates.io usage policy.
	UserAgentFormat = "%s - Brought to you by: %s"
)

// HTTP and network timeouts.
const (
	// DefaultHTTPTimeout is the default timeout for HTTP requests.
	DefaultHTTPTimeout = 30 * time.Second

	// ShortHTTPTimeout is used for quick operations.
	ShortHTTPTimeout = 10 * time.Second
)

// Concurrency limits.
const (
	// DefaultConcurrencyLimit bounds concurrent fetches in the executor.
	DefaultConcurrencyLimit = 5
)

// Output formatting.
const (
	// JSONIndentSize is the indent width for JSON and YAML encoders.
	JSONIndentSize = 2
)
