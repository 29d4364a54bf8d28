// Package slog provides log/slog decorators for ogpeek services.
package slog

import (
	"context"
	"log/slog"
	"net/url"
	"time"
)

// done logs the outcome of an operation that started at begin. Failures are
// raised to Warn so they show up at the default CLI level.
func done(ctx context.Context, logger *slog.Logger, level slog.Level, msg string, begin time.Time, err error, args ...any) {
	args = append(args, "duration", time.Since(begin))
	if err != nil {
		level = max(level, slog.LevelWarn)
		args = append(args, "err", err)
	}
	logger.Log(ctx, level, msg, args...)
}

// host returns the host of rawURL, or rawURL itself when it does not parse.
func host(rawURL string) string {
	u, err := url.Parse(rawURL)
	if err != nil || u.Host == "" {
		return rawURL
	}
	return u.Host
}
