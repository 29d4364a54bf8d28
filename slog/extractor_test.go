package slog_test

import (
	"bytes"
	"errors"
	"testing"

	"github.com/fwojciec/ogpeek"
	"github.com/fwojciec/ogpeek/mock"
	ogslog "github.com/fwojciec/ogpeek/slog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoggingExtractor_Extract(t *testing.T) {
	t.Parallel()

	t.Run("logs bag and record counts", func(t *testing.T) {
		t.Parallel()

		var buf bytes.Buffer
		inner := &mock.Extractor{
			ExtractFn: func(html string) (*ogpeek.ExtractResult, error) {
				return &ogpeek.ExtractResult{
					Bags:    []ogpeek.Bag{{"og:type": "article"}, {"og:title": "untyped"}},
					Partial: true,
				}, nil
			},
		}

		e := ogslog.NewLoggingExtractor(inner, "meta", newLogger(&buf))
		result, err := e.Extract("<html>")

		require.NoError(t, err)
		assert.Len(t, result.Bags, 2)
		output := buf.String()
		assert.Contains(t, output, "level=DEBUG")
		assert.Contains(t, output, "msg=extract")
		assert.Contains(t, output, "extractor=meta")
		assert.Contains(t, output, "bytes=6")
		assert.Contains(t, output, "bags=2")
		assert.Contains(t, output, "records=1")
		assert.Contains(t, output, "partial=true")
	})

	t.Run("logs failures", func(t *testing.T) {
		t.Parallel()

		var buf bytes.Buffer
		inner := &mock.Extractor{
			ExtractFn: func(html string) (*ogpeek.ExtractResult, error) {
				return nil, errors.New("boom")
			},
		}

		_, err := ogslog.NewLoggingExtractor(inner, "head", newLogger(&buf)).Extract("x")

		require.Error(t, err)
		output := buf.String()
		assert.Contains(t, output, "level=WARN")
		assert.Contains(t, output, "extractor=head")
		assert.Contains(t, output, "err=boom")
		assert.NotContains(t, output, "bags=")
	})
}
