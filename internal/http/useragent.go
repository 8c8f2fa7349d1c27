package http

import "net/http"

// userAgentTransport injects the User-Agent header into every outgoing
// request before delegating to the parent round tripper.
type userAgentTransport struct {
	userAgent string
	parent    http.RoundTripper
}

func (t *userAgentTransport) RoundTrip(ireq *http.Request) (*http.Response, error) {
	req := ireq.Clone(ireq.Context())
	if t.userAgent != "" {
		req.Header.Set("User-Agent", t.userAgent)
	}

	return t.transport().RoundTrip(req)
}

func (t *userAgentTransport) transport() http.RoundTripper {
	if t.parent != nil {
		return t.parent
	}

	return http.DefaultTransport
}
