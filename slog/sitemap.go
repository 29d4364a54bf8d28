package slog

import (
	"context"
	"log/slog"
	"time"

	"github.com/fwojciec/ogpeek"
)

// Ensure LoggingSitemapService implements ogpeek.SitemapService.
var _ ogpeek.SitemapService = (*LoggingSitemapService)(nil)

// LoggingSitemapService wraps a SitemapService with logging.
type LoggingSitemapService struct {
	next   ogpeek.SitemapService
	logger *slog.Logger
}

// NewLoggingSitemapService creates a new LoggingSitemapService.
func NewLoggingSitemapService(next ogpeek.SitemapService, logger *slog.Logger) *LoggingSitemapService {
	return &LoggingSitemapService{next: next, logger: logger}
}

// DiscoverURLs delegates to the wrapped service and logs the page count.
func (s *LoggingSitemapService) DiscoverURLs(ctx context.Context, baseURL string, filter *ogpeek.URLFilter) (urls []string, err error) {
	defer func(begin time.Time) {
		done(ctx, s.logger, slog.LevelInfo, "sitemap discovery", begin, err,
			"url", baseURL,
			"filtered", filter != nil,
			"count", len(urls),
		)
	}(time.Now())
	return s.next.DiscoverURLs(ctx, baseURL, filter)
}
