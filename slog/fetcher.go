package slog

import (
	"context"
	"log/slog"
	"time"

	"github.com/fwojciec/ogpeek"
)

// Ensure LoggingFetcher implements ogpeek.Fetcher.
var _ ogpeek.Fetcher = (*LoggingFetcher)(nil)

// LoggingFetcher wraps a Fetcher with logging.
type LoggingFetcher struct {
	next   ogpeek.Fetcher
	logger *slog.Logger
}

// NewLoggingFetcher creates a new LoggingFetcher.
func NewLoggingFetcher(next ogpeek.Fetcher, logger *slog.Logger) *LoggingFetcher {
	return &LoggingFetcher{next: next, logger: logger}
}

// Fetch delegates to the wrapped fetcher and logs the page size.
func (f *LoggingFetcher) Fetch(ctx context.Context, url string) (html string, err error) {
	defer func(begin time.Time) {
		done(ctx, f.logger, slog.LevelInfo, "fetch", begin, err,
			"url", url,
			"host", host(url),
			"bytes", len(html),
		)
	}(time.Now())
	return f.next.Fetch(ctx, url)
}

// Close delegates to the wrapped fetcher.
func (f *LoggingFetcher) Close() error {
	return f.next.Close()
}
