package slog

import (
	"context"
	"log/slog"
	"time"

	"github.com/fwojciec/ogpeek"
)

// Ensure LoggingExtractor implements ogpeek.Extractor.
var _ ogpeek.Extractor = (*LoggingExtractor)(nil)

// LoggingExtractor wraps an Extractor with debug logging. The name tells the
// primary extractor and the fallbacks apart in the log.
type LoggingExtractor struct {
	next   ogpeek.Extractor
	name   string
	logger *slog.Logger
}

// NewLoggingExtractor creates a new LoggingExtractor.
func NewLoggingExtractor(next ogpeek.Extractor, name string, logger *slog.Logger) *LoggingExtractor {
	return &LoggingExtractor{next: next, name: name, logger: logger}
}

// Extract delegates to the wrapped extractor and logs how many bags and
// records it produced.
func (e *LoggingExtractor) Extract(html string) (result *ogpeek.ExtractResult, err error) {
	defer func(begin time.Time) {
		args := []any{"extractor", e.name, "bytes", len(html)}
		if result != nil {
			args = append(args,
				"bags", len(result.Bags),
				"records", len(result.Records()),
				"partial", result.Partial,
			)
		}
		done(context.Background(), e.logger, slog.LevelDebug, "extract", begin, err, args...)
	}(time.Now())
	return e.next.Extract(html)
}
