// Package preview turns URLs into Open Graph previews. It coordinates rate
// limiting, fetching with retry, extraction with fallbacks and the preview
// cache, for one URL or a batch of them.
package preview

import (
	"context"
	"fmt"
	"net/url"
	"time"

	"github.com/fwojciec/ogpeek"
	"github.com/fwojciec/ogpeek/bloom"
)

// Previewer builds the preview of a single page.
type Previewer struct {
	Fetcher   ogpeek.Fetcher
	Extractor ogpeek.Extractor

	// Fallbacks are tried in order when Extractor yields no record.
	Fallbacks []ogpeek.Extractor

	// Previews caches previews by URL. Nil disables the cache.
	Previews ogpeek.PreviewService

	// MaxAge is how long a cached preview is served without refetching.
	// Zero always refetches but still stores the result.
	MaxAge time.Duration

	// Strict rejects markup the scanner could not read to the end instead of
	// keeping what was grouped before the failure.
	Strict bool

	RateLimiter ogpeek.DomainLimiter
	RetryDelays []time.Duration
	OnRetry     RetryFunc

	// Now overrides the clock in tests.
	Now func() time.Time
}

// Result is the outcome of previewing one URL.
type Result struct {
	Preview *ogpeek.Preview

	// Cached reports that the preview was served from the cache.
	Cached bool

	// Fallback is 1 + the index of the fallback extractor that produced the
	// bags, or 0 for the primary extractor.
	Fallback int

	// Changed reports that the stored content differs from the previously
	// cached preview, or that there was none.
	Changed bool
}

// Records materializes the preview's bags.
func (r *Result) Records() []ogpeek.Record {
	return r.Preview.Records()
}

// Preview returns the preview of rawURL, from the cache when it is fresh and
// by fetching the page otherwise. URLs are keyed in normalized form.
func (p *Previewer) Preview(ctx context.Context, rawURL string) (*Result, error) {
	key := bloom.Normalize(rawURL)
	u, err := url.Parse(key)
	if err != nil || u.Host == "" || (u.Scheme != "http" && u.Scheme != "https") {
		return nil, ogpeek.Errorf(ogpeek.EINVALID, "invalid URL %q", rawURL)
	}

	var cached *ogpeek.Preview
	if p.Previews != nil {
		cached, err = p.Previews.FindPreviewByURL(ctx, key)
		switch {
		case ogpeek.ErrorCode(err) == ogpeek.ENOTFOUND:
			cached = nil
		case err != nil:
			return nil, fmt.Errorf("cache lookup: %w", err)
		case p.MaxAge > 0 && p.now().Sub(cached.FetchedAt) < p.MaxAge:
			return &Result{Preview: cached, Cached: true}, nil
		}
	}

	if p.RateLimiter != nil {
		if err := p.RateLimiter.Wait(ctx, u.Host); err != nil {
			return nil, err
		}
	}

	delays := p.RetryDelays
	if delays == nil {
		delays = DefaultRetryDelays()
	}
	html, err := FetchWithRetry(ctx, key, p.Fetcher.Fetch, delays, p.OnRetry)
	if err != nil {
		return nil, err
	}

	res, err := p.PreviewHTML(key, html)
	if err != nil {
		return nil, err
	}
	res.Changed = true
	if p.Previews == nil {
		return res, nil
	}
	if err := p.Previews.CreatePreview(ctx, res.Preview); err != nil {
		return nil, fmt.Errorf("cache store: %w", err)
	}
	if cached != nil && cached.ContentHash == res.Preview.ContentHash {
		res.Changed = false
	}
	return res, nil
}

// PreviewHTML extracts the preview of an already retrieved page. Nothing is
// fetched or stored.
func (p *Previewer) PreviewHTML(pageURL, html string) (*Result, error) {
	res, err := p.Extractor.Extract(html)
	if err != nil {
		return nil, err
	}
	if res.Partial && p.Strict {
		return nil, ogpeek.Errorf(ogpeek.EINVALID, "malformed markup in %s", pageURL)
	}

	fallback := 0
	if len(res.Records()) == 0 {
		for i, fb := range p.Fallbacks {
			alt, err := fb.Extract(html)
			if err != nil || len(alt.Records()) == 0 {
				continue
			}
			res, fallback = alt, i+1
			break
		}
	}

	return &Result{
		Preview: &ogpeek.Preview{
			URL:       pageURL,
			Bags:      res.Bags,
			Partial:   res.Partial,
			FetchedAt: p.now(),
		},
		Fallback: fallback,
	}, nil
}

func (p *Previewer) now() time.Time {
	if p.Now != nil {
		return p.Now()
	}
	return time.Now()
}
