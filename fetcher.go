package ogpeek

import "context"

// Fetcher retrieves HTML documents from URLs.
// Implementations return decoded UTF-8 text; the extraction pipeline never
// sees raw bytes.
type Fetcher interface {
	// Fetch retrieves the document at url.
	// The context controls timeout and cancellation.
	Fetch(ctx context.Context, url string) (html string, err error)

	// Close releases resources held by the fetcher.
	// Must be called when the Fetcher is no longer needed.
	Close() error
}

// DomainLimiter provides per-domain rate limiting.
type DomainLimiter interface {
	// Wait blocks until the rate limit allows a request to the domain.
	// Returns an error if the context is canceled.
	Wait(ctx context.Context, domain string) error
}
