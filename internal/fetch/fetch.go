// Package fetch is the HTTP capability consumed by the crawl workers:
// GET a URL, follow redirects, and report the final response or a
// transport failure as a plain value.
package fetch

import (
	"context"
	"io"
	"net/http"
	"strings"
	"time"

	"sitecrawler/internal/metrics"
)

// StatusTransportFailure is the synthetic status recorded when the
// transport itself fails (timeout, connection refused, DNS error).
const StatusTransportFailure = 599

// DefaultMaxBodySize caps how much of a response body is read. Large
// enough that the >= 1MB size bucket stays reachable.
const DefaultMaxBodySize = 8 << 20

// Result is the outcome of one fetch attempt. A transport failure is
// represented in-band: Status is StatusTransportFailure and Body and
// ContentType are empty.
type Result struct {
	Status      int
	Body        []byte
	ContentType string
}

// Failed reports whether the result is the synthetic transport failure.
func (r Result) Failed() bool { return r.Status == StatusTransportFailure }

// MainType reduces a Content-Type header to its primary token: the MIME
// type without parameters, lowercased. Empty header yields "".
func MainType(header string) string {
	main, _, _ := strings.Cut(header, ";")
	return strings.ToLower(strings.TrimSpace(main))
}

// IsHTML reports whether a primary content type is an HTML-family type
// worth parsing for links.
func IsHTML(mainType string) bool {
	return mainType == "text/html" || mainType == "application/xhtml+xml"
}

// Client wraps an http.Client with the crawl's user agent and body cap.
type Client struct {
	http        *http.Client
	userAgent   string
	maxBodySize int64
}

func New(userAgent string, timeout time.Duration, maxBodySize int64) *Client {
	if maxBodySize <= 0 {
		maxBodySize = DefaultMaxBodySize
	}
	return &Client{
		http:        &http.Client{Timeout: timeout},
		userAgent:   userAgent,
		maxBodySize: maxBodySize,
	}
}

// HTTPClient exposes the underlying client, e.g. for the robots load.
func (c *Client) HTTPClient() *http.Client { return c.http }

// Get fetches a URL, following redirects transparently. Every failure
// mode of the transport — including a body read cut short — collapses
// into the synthetic failure Result; Get never returns an error.
func (c *Client) Get(ctx context.Context, rawURL string) Result {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, rawURL, nil)
	if err != nil {
		return Result{Status: StatusTransportFailure}
	}
	req.Header.Set("User-Agent", c.userAgent)

	resp, err := c.http.Do(req)
	if err != nil {
		metrics.FetchFailures.Inc()
		return Result{Status: StatusTransportFailure}
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(io.LimitReader(resp.Body, c.maxBodySize))
	if err != nil {
		metrics.FetchFailures.Inc()
		return Result{Status: StatusTransportFailure}
	}

	metrics.PagesFetched.Inc()
	metrics.BytesFetched.Add(float64(len(body)))

	return Result{
		Status:      resp.StatusCode,
		Body:        body,
		ContentType: resp.Header.Get("Content-Type"),
	}
}
