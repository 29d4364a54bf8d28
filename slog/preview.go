package slog

import (
	"context"
	"log/slog"
	"time"

	"github.com/fwojciec/ogpeek"
)

// Ensure LoggingPreviewService implements ogpeek.PreviewService.
var _ ogpeek.PreviewService = (*LoggingPreviewService)(nil)

// LoggingPreviewService wraps a PreviewService with debug logging of cache
// reads and writes.
type LoggingPreviewService struct {
	next   ogpeek.PreviewService
	logger *slog.Logger
}

// NewLoggingPreviewService creates a new LoggingPreviewService.
func NewLoggingPreviewService(next ogpeek.PreviewService, logger *slog.Logger) *LoggingPreviewService {
	return &LoggingPreviewService{next: next, logger: logger}
}

func (s *LoggingPreviewService) CreatePreview(ctx context.Context, preview *ogpeek.Preview) (err error) {
	defer func(begin time.Time) {
		done(ctx, s.logger, slog.LevelDebug, "cache store", begin, err,
			"url", preview.URL,
			"id", preview.ID,
			"hash", preview.ContentHash,
		)
	}(time.Now())
	return s.next.CreatePreview(ctx, preview)
}

// FindPreviewByURL logs a miss at debug level rather than as a failure.
func (s *LoggingPreviewService) FindPreviewByURL(ctx context.Context, url string) (preview *ogpeek.Preview, err error) {
	defer func(begin time.Time) {
		logged := err
		if ogpeek.ErrorCode(err) == ogpeek.ENOTFOUND {
			logged = nil
		}
		done(ctx, s.logger, slog.LevelDebug, "cache lookup", begin, logged,
			"url", url,
			"hit", preview != nil,
		)
	}(time.Now())
	return s.next.FindPreviewByURL(ctx, url)
}

func (s *LoggingPreviewService) FindPreviews(ctx context.Context, filter ogpeek.PreviewFilter) (previews []*ogpeek.Preview, err error) {
	defer func(begin time.Time) {
		done(ctx, s.logger, slog.LevelDebug, "cache list", begin, err,
			"count", len(previews),
		)
	}(time.Now())
	return s.next.FindPreviews(ctx, filter)
}

func (s *LoggingPreviewService) DeletePreview(ctx context.Context, id string) (err error) {
	defer func(begin time.Time) {
		done(ctx, s.logger, slog.LevelDebug, "cache delete", begin, err, "id", id)
	}(time.Now())
	return s.next.DeletePreview(ctx, id)
}
