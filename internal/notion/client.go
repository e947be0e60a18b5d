// Package notion is a minimal client for the Notion REST API covering the
// read operations this server needs: data source queries, page retrieval and
// block listing. It also holds the normalization layer that turns raw API
// records into the content model.
package notion

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"log/slog"

	"github.com/knmsyk/notion-content-mcp/internal/auth"
)

const (
	// DefaultBaseURL is the public Notion API endpoint.
	DefaultBaseURL = "https://api.notion.com"
	// DefaultVersion is the Notion-Version header value sent with requests.
	DefaultVersion = "2025-09-03"
)

// Client is a helper around the Notion REST API.
type Client struct {
	baseURL    *url.URL
	httpClient *http.Client
	logger     *slog.Logger
}

// NewClient constructs a Client for the given base URL and integration token.
// An empty base or version falls back to the defaults.
func NewClient(base, token, version string, logger *slog.Logger) (*Client, error) {
	if token == "" {
		return nil, fmt.Errorf("notion: token required")
	}
	if base == "" {
		base = DefaultBaseURL
	}
	if version == "" {
		version = DefaultVersion
	}

	parsed, err := url.Parse(base)
	if err != nil {
		return nil, fmt.Errorf("notion: parse base url: %w", err)
	}

	transport := auth.NewTransport(nil, token, version)
	httpClient := &http.Client{
		Timeout:   30 * time.Second,
		Transport: transport,
	}

	if logger == nil {
		logger = slog.Default()
	}

	return &Client{
		baseURL:    parsed,
		httpClient: httpClient,
		logger:     logger,
	}, nil
}

// NewRequest builds an HTTP request with optional query parameters and JSON body.
func (c *Client) NewRequest(ctx context.Context, method, path string, query map[string]string, body any) (*http.Request, error) {
	if !strings.HasPrefix(path, "/") {
		path = "/" + path
	}

	u := *c.baseURL
	u.Path = strings.TrimRight(c.baseURL.Path, "/") + path

	if len(query) > 0 {
		q := u.Query()
		for k, v := range query {
			q.Set(k, v)
		}
		u.RawQuery = q.Encode()
	}

	var bodyReader io.Reader
	contentType := ""
	if body != nil {
		buf := new(bytes.Buffer)
		if err := json.NewEncoder(buf).Encode(body); err != nil {
			return nil, fmt.Errorf("notion: encode body: %w", err)
		}
		bodyReader = buf
		contentType = "application/json"
	}

	req, err := http.NewRequestWithContext(ctx, method, u.String(), bodyReader)
	if err != nil {
		return nil, err
	}

	if contentType != "" {
		req.Header.Set("Content-Type", contentType)
	}

	return req, nil
}

// Do executes the request and decodes the response JSON into out if provided.
func (c *Client) Do(req *http.Request, out any) error {
	res, err := c.httpClient.Do(req)
	if err != nil {
		return err
	}
	defer res.Body.Close()

	if res.StatusCode < 200 || res.StatusCode >= 300 {
		return parseError(res)
	}

	if out == nil {
		io.Copy(io.Discard, res.Body)
		return nil
	}

	if err := json.NewDecoder(res.Body).Decode(out); err != nil {
		return fmt.Errorf("notion: decode response: %w", err)
	}

	return nil
}

// SetTransport overrides the underlying HTTP transport. Useful for testing.
func (c *Client) SetTransport(rt http.RoundTripper) {
	if rt == nil {
		return
	}
	c.httpClient.Transport = rt
}
