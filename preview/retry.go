package preview

import (
	"context"
	"time"

	"github.com/fwojciec/ogpeek"
)

// DefaultRetryDelays returns the waits between fetch attempts: 1s, 2s, 4s.
func DefaultRetryDelays() []time.Duration {
	return []time.Duration{1 * time.Second, 2 * time.Second, 4 * time.Second}
}

// FetchFunc retrieves the document at url.
type FetchFunc func(ctx context.Context, url string) (string, error)

// RetryFunc is told about each failed attempt that will be retried.
type RetryFunc func(url string, attempt int, err error)

// FetchWithRetry calls fetch once plus once per delay, sleeping the delay
// between attempts. Invalid and not-found errors are returned at once since
// repeating the request cannot change them. onRetry may be nil.
func FetchWithRetry(ctx context.Context, url string, fetch FetchFunc, delays []time.Duration, onRetry RetryFunc) (string, error) {
	var err error
	for attempt := 0; ; attempt++ {
		var html string
		html, err = fetch(ctx, url)
		if err == nil {
			return html, nil
		}
		if attempt >= len(delays) || !retryable(err) {
			return "", err
		}
		if ctx.Err() != nil {
			return "", ctx.Err()
		}
		if onRetry != nil {
			onRetry(url, attempt+2, err)
		}

		t := time.NewTimer(delays[attempt])
		select {
		case <-ctx.Done():
			t.Stop()
			return "", ctx.Err()
		case <-t.C:
		}
	}
}

func retryable(err error) bool {
	switch ogpeek.ErrorCode(err) {
	case ogpeek.EINVALID, ogpeek.ENOTFOUND:
		return false
	}
	return true
}
