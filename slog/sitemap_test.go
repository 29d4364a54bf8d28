package slog_test

import (
	"bytes"
	"context"
	"errors"
	"testing"

	"github.com/fwojciec/ogpeek"
	"github.com/fwojciec/ogpeek/mock"
	ogslog "github.com/fwojciec/ogpeek/slog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoggingSitemapService_DiscoverURLs(t *testing.T) {
	t.Parallel()

	t.Run("logs discovery with count", func(t *testing.T) {
		t.Parallel()

		var buf bytes.Buffer
		inner := &mock.SitemapService{
			DiscoverURLsFn: func(ctx context.Context, baseURL string, filter *ogpeek.URLFilter) ([]string, error) {
				return []string{"https://example.com/a", "https://example.com/b"}, nil
			},
		}

		svc := ogslog.NewLoggingSitemapService(inner, newLogger(&buf))
		urls, err := svc.DiscoverURLs(context.Background(), "https://example.com", nil)

		require.NoError(t, err)
		assert.Len(t, urls, 2)
		output := buf.String()
		assert.Contains(t, output, "msg=\"sitemap discovery\"")
		assert.Contains(t, output, "url=https://example.com")
		assert.Contains(t, output, "filtered=false")
		assert.Contains(t, output, "count=2")
	})

	t.Run("logs error on failure", func(t *testing.T) {
		t.Parallel()

		var buf bytes.Buffer
		inner := &mock.SitemapService{
			DiscoverURLsFn: func(ctx context.Context, baseURL string, filter *ogpeek.URLFilter) ([]string, error) {
				return nil, errors.New("connection failed")
			},
		}

		svc := ogslog.NewLoggingSitemapService(inner, newLogger(&buf))
		_, err := svc.DiscoverURLs(context.Background(), "https://example.com", &ogpeek.URLFilter{})

		require.Error(t, err)
		output := buf.String()
		assert.Contains(t, output, "filtered=true")
		assert.Contains(t, output, "err=\"connection failed\"")
	})
}
