package crates

import (
	"errors"
	"fmt"
)

// Static errors for the fetch taxonomy.
var (
	// ErrNotFound is returned when the registry responds 404 for a crate name.
	ErrNotFound = errors.New("crate name is not found, check spelling.")

	// ErrEmptyUserAgent is returned when the caller identification string is
	// empty or contains only whitespace.
	ErrEmptyUserAgent = errors.New("identification must contain at least one visible character")

	// ErrNoVersions is returned when a decoded record carries no versions.
	// The registry always returns at least one version for an existing crate,
	// so seeing this error usually means the response shape changed.
	ErrNoVersions = errors.New("crate record contains no versions")
)

// RequestError represents any HTTP failure other than a 404: an unexpected
// status code from the registry, carrying the status line and response body.
type RequestError struct {
	StatusCode int
	Status     string
	Body       string
}

// Error implements the error interface.
func (e *RequestError) Error() string {
	if e.Body != "" {
		return fmt.Sprintf("unexpected registry response %s: %s", e.Status, e.Body)
	}

	return fmt.Sprintf("unexpected registry response %s", e.Status)
}

// IsNotFound checks if the error indicates the crate does not exist.
func IsNotFound(err error) bool {
	return errors.Is(err, ErrNotFound)
}

// IsEmptyUserAgent checks if the error indicates an invalid identification
// string.
func IsEmptyUserAgent(err error) bool {
	return errors.Is(err, ErrEmptyUserAgent)
}
