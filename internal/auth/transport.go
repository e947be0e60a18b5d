package auth

import (
	"fmt"
	"net/http"
)

// Transport injects Notion authentication and API version headers into
// outbound requests.
type Transport struct {
	base    http.RoundTripper
	token   string
	version string
}

// NewTransport creates an auth transport wrapping the provided RoundTripper.
func NewTransport(base http.RoundTripper, token, version string) *Transport {
	if base == nil {
		base = http.DefaultTransport
	}
	return &Transport{base: base, token: token, version: version}
}

// RoundTrip implements http.RoundTripper.
func (t *Transport) RoundTrip(req *http.Request) (*http.Response, error) {
	if t.token == "" {
		return nil, fmt.Errorf("auth: token required")
	}

	clone := req.Clone(req.Context())
	clone.Header.Set("Authorization", "Bearer "+t.token)
	clone.Header.Set("Notion-Version", t.version)
	clone.Header.Set("Accept", "application/json")
	return t.base.RoundTrip(clone)
}
