// ABOUTME: Standard HTTP client implementation with timeout and user agent support
// ABOUTME: Fetches upstream feeds and article pages for the parsers

package standard

import (
	"context"
	"io"
	"net/http"
	"time"

	"news-aggregator-api/core/interfaces"
)

// DefaultUserAgent identifies the aggregator to upstream hosts
const DefaultUserAgent = "GameHub-News-Aggregator/1.0"

// StandardHTTPClient implements the HTTPClient interface using net/http
type StandardHTTPClient struct {
	client    *http.Client
	userAgent string
}

// NewStandardHTTPClient creates a new HTTP client with the specified timeout.
// An empty userAgent falls back to DefaultUserAgent; a nil transport uses http.DefaultTransport.
func NewStandardHTTPClient(timeout time.Duration, userAgent string, transport http.RoundTripper) *StandardHTTPClient {
	if userAgent == "" {
		userAgent = DefaultUserAgent
	}
	if transport == nil {
		transport = http.DefaultTransport
	}

	return &StandardHTTPClient{
		client: &http.Client{
			Timeout:   timeout,
			Transport: transport,
		},
		userAgent: userAgent,
	}
}

// Get performs an HTTP GET request
func (c *StandardHTTPClient) Get(ctx context.Context, url string) (interfaces.Response, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, err
	}

	req.Header.Set("User-Agent", c.userAgent)
	req.Header.Set("Accept", "application/rss+xml, application/atom+xml, application/xml, text/xml, text/html;q=0.9, */*;q=0.8")

	resp, err := c.client.Do(req)
	if err != nil {
		return nil, err
	}

	return &httpResponse{
		statusCode: resp.StatusCode,
		body:       resp.Body,
		headers:    resp.Header,
	}, nil
}

// httpResponse implements the Response interface
type httpResponse struct {
	statusCode int
	body       io.ReadCloser
	headers    http.Header
}

// StatusCode returns the HTTP status code
func (r *httpResponse) StatusCode() int {
	return r.statusCode
}

// Body returns the response body
func (r *httpResponse) Body() io.ReadCloser {
	return r.body
}

// Header returns the value of the specified header
func (r *httpResponse) Header(key string) string {
	return r.headers.Get(key)
}
