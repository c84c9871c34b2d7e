// Package webutil provides small HTTP fetch and reachability helpers.
package webutil

import (
	"errors"
	"fmt"
	"io"
	"net/http"
	"time"
)

// ErrUnexpectedStatus reports a non-2xx response to a fetch.
var ErrUnexpectedStatus = errors.New("unexpected response status")

// defaultUserAgent mirrors a desktop browser so probes against picky servers
// behave the same as interactive requests.
const defaultUserAgent = "Mozilla/5.0 (Windows NT 10.0; Win64; x64) AppleWebKit/537.36"

// DefaultTimeout bounds requests from clients built with NewClient(0).
const DefaultTimeout = 30 * time.Second

// Client issues fetches and status checks with a shared timeout.
type Client struct {
	httpClient *http.Client
}

// NewClient returns a Client whose requests time out after timeout.
// A zero timeout falls back to DefaultTimeout.
func NewClient(timeout time.Duration) *Client {
	if timeout <= 0 {
		timeout = DefaultTimeout
	}
	return &Client{httpClient: &http.Client{Timeout: timeout}}
}

// Fetch issues a GET for url and returns the response body as a string.
// Entries in headers override the default headers. A non-2xx status fails
// with ErrUnexpectedStatus.
func (c *Client) Fetch(url string, headers map[string]string) (string, error) {
	req, err := http.NewRequest(http.MethodGet, url, nil)
	if err != nil {
		return "", fmt.Errorf("building request for %s: %w", url, err)
	}
	req.Header.Set("User-Agent", defaultUserAgent)
	for key, value := range headers {
		req.Header.Set(key, value)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return "", fmt.Errorf("fetching %s: %w", url, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return "", fmt.Errorf("fetching %s: %w: %s", url, ErrUnexpectedStatus, resp.Status)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", fmt.Errorf("reading body from %s: %w", url, err)
	}
	return string(body), nil
}

// Status describes the reachability of a URL at a point in time.
type Status struct {
	URL        string      `json:"url"`
	StatusCode int         `json:"status_code"`
	Accessible bool        `json:"is_accessible"`
	Headers    http.Header `json:"headers,omitempty"`
	Error      string      `json:"error,omitempty"`
	Timestamp  time.Time   `json:"timestamp"`
}

// CheckStatus issues a HEAD request for url and reports what came back.
// Transport failures are recorded in the result rather than returned, so a
// failed probe never aborts a batch of checks.
func (c *Client) CheckStatus(url string) Status {
	status := Status{URL: url, Timestamp: time.Now()}

	req, err := http.NewRequest(http.MethodHead, url, nil)
	if err != nil {
		status.Error = err.Error()
		return status
	}
	req.Header.Set("User-Agent", defaultUserAgent)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		status.Error = err.Error()
		return status
	}
	defer resp.Body.Close()

	status.StatusCode = resp.StatusCode
	status.Accessible = resp.StatusCode == http.StatusOK
	status.Headers = resp.Header
	return status
}
