// Package http provides an HTTP-based implementation of ogpeek.Fetcher for
// pages whose Open Graph tags are present in the served markup.
package http

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/fwojciec/ogpeek"
)

// DefaultFetchTimeout is the default timeout for HTTP requests.
// Kept consistent with rod.DefaultFetchTimeout (10s).
const DefaultFetchTimeout = 10 * time.Second

// DefaultMaxBytes caps the size of a fetched page. Open Graph tags live in
// the document head, so large bodies are truncated rather than rejected.
const DefaultMaxBytes = 2 << 20

// DefaultUserAgent identifies ogpeek to servers. Some sites only serve
// Open Graph tags to agents that look like link-preview crawlers.
const DefaultUserAgent = "ogpeek/1.0 (+https://github.com/fwojciec/ogpeek)"

// Ensure Fetcher implements ogpeek.Fetcher at compile time.
var _ ogpeek.Fetcher = (*Fetcher)(nil)

// Fetcher retrieves HTML content from URLs using HTTP requests.
// Unlike rod.Fetcher, this does not execute JavaScript.
type Fetcher struct {
	client    *http.Client
	timeout   time.Duration
	userAgent string
	maxBytes  int64
}

// Option configures a Fetcher.
type Option func(*Fetcher)

// WithTimeout sets the timeout for HTTP requests.
// Defaults to DefaultFetchTimeout (10s) if not specified.
func WithTimeout(d time.Duration) Option {
	return func(f *Fetcher) {
		f.timeout = d
	}
}

// WithUserAgent sets the User-Agent header sent with each request.
func WithUserAgent(ua string) Option {
	return func(f *Fetcher) {
		if ua != "" {
			f.userAgent = ua
		}
	}
}

// WithMaxBytes limits how much of each response body is read.
func WithMaxBytes(n int64) Option {
	return func(f *Fetcher) {
		if n > 0 {
			f.maxBytes = n
		}
	}
}

// NewFetcher creates a new HTTP-based Fetcher.
func NewFetcher(opts ...Option) *Fetcher {
	f := &Fetcher{
		timeout:   DefaultFetchTimeout,
		userAgent: DefaultUserAgent,
		maxBytes:  DefaultMaxBytes,
	}
	for _, opt := range opts {
		opt(f)
	}

	f.client = &http.Client{
		Timeout: f.timeout,
	}

	return f
}

// Fetch retrieves the HTML content from the given URL, decoding it to UTF-8
// according to the declared or sniffed character set.
func (f *Fetcher) Fetch(ctx context.Context, url string) (string, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return "", ogpeek.Errorf(ogpeek.EINVALID, "invalid URL %q: %v", url, err)
	}
	req.Header.Set("User-Agent", f.userAgent)
	req.Header.Set("Accept", "text/html,application/xhtml+xml;q=0.9,*/*;q=0.8")

	resp, err := f.client.Do(req)
	if err != nil {
		return "", err
	}
	defer resp.Body.Close()

	switch {
	case resp.StatusCode == http.StatusNotFound || resp.StatusCode == http.StatusGone:
		return "", ogpeek.Errorf(ogpeek.ENOTFOUND, "HTTP %d for %s", resp.StatusCode, url)
	case resp.StatusCode != http.StatusOK:
		return "", fmt.Errorf("HTTP %d for %s", resp.StatusCode, url)
	}

	body, err := io.ReadAll(io.LimitReader(resp.Body, f.maxBytes))
	if err != nil {
		return "", err
	}

	content, err := Decode(body, resp.Header.Get("Content-Type"))
	if err != nil {
		return "", fmt.Errorf("%s: %w", url, err)
	}
	return content, nil
}

// Close releases resources. For HTTP fetcher this is a no-op since
// http.Client doesn't require explicit cleanup.
func (f *Fetcher) Close() error {
	return nil
}
