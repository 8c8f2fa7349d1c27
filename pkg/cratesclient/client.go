package cratesclient

import (
	"context"
	"fmt"
	"strings"

	"github.com/cratehub/crates-client/internal/client"
	"github.com/cratehub/crates-client/internal/constants"
	internalhttp "github.com/cratehub/crates-client/internal/http"
	"github.com/cratehub/crates-client/pkg/crates"
)

// New creates a new crates.io registry client.
//
// The identification string in config.UserAgent must contain at least one
// visible character; validation happens before any network activity. The
// outgoing User-Agent header is the caller string combined with the fixed
// library suffix.
func New(config *crates.Config) (crates.Client, error) {
	userAgent, err := OperatorUserAgent(config.UserAgent)
	if err != nil {
		return nil, err
	}

	baseURL := config.BaseURL
	if baseURL == "" {
		baseURL = constants.DefaultBaseURL
	}

	baseURL = strings.TrimSuffix(baseURL, "/")

	opts := []internalhttp.Option{
		internalhttp.WithUserAgent(userAgent),
	}

	if config.Logger != nil {
		opts = append(opts, internalhttp.WithLogger(config.Logger))
	}

	if config.Debug {
		opts = append(opts, internalhttp.WithDebug(true))
	}

	if config.HTTPTimeout > 0 {
		opts = append(opts, internalhttp.WithHTTPTimeout(config.HTTPTimeout))
	}

	httpClient := internalhttp.NewClient(baseURL, opts...)

	return client.New(httpClient), nil
}

// NewWithUserAgent creates a new client with just an identification string.
func NewWithUserAgent(userAgent string) (crates.Client, error) {
	return New(&crates.Config{
		UserAgent: userAgent,
	})
}

// Fetch retrieves the named crate with an ephemeral client. Equivalent to
// NewWithUserAgent followed by a single Get.
func Fetch(ctx context.Context, name, userAgent string) (*crates.Crate, error) {
	cli, err := NewWithUserAgent(userAgent)
	if err != nil {
		return nil, err
	}

	return cli.Get(ctx, name)
}

// FetchAsync is the non-blocking equivalent of Fetch. Identification
// validation still happens before any network activity; a validation failure
// is delivered on the returned channel.
func FetchAsync(ctx context.Context, name, userAgent string) <-chan crates.FetchResult {
	cli, err := NewWithUserAgent(userAgent)
	if err != nil {
		results := make(chan crates.FetchResult, 1)
		results <- crates.FetchResult{Name: name, Err: err}
		close(results)

		return results
	}

	return cli.GetAsync(ctx, name)
}

// OperatorUserAgent validates the caller identification string and combines
// it with the library identification. Both the sync and async construction
// paths share this one function.
func OperatorUserAgent(userAgent string) (string, error) {
	if strings.TrimSpace(userAgent) == "" {
		return "", crates.ErrEmptyUserAgent
	}

	return fmt.Sprintf(constants.UserAgentFormat, userAgent, constants.LibraryUserAgent), nil
}
