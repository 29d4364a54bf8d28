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

func TestLoggingPreviewService(t *testing.T) {
	t.Parallel()

	t.Run("logs stores with the assigned ID", func(t *testing.T) {
		t.Parallel()

		var buf bytes.Buffer
		inner := &mock.PreviewService{
			CreatePreviewFn: func(ctx context.Context, p *ogpeek.Preview) error {
				p.ID = "id-1"
				p.ContentHash = "abc"
				return nil
			},
		}

		svc := ogslog.NewLoggingPreviewService(inner, newLogger(&buf))
		require.NoError(t, svc.CreatePreview(context.Background(), &ogpeek.Preview{URL: "https://example.com"}))

		output := buf.String()
		assert.Contains(t, output, "msg=\"cache store\"")
		assert.Contains(t, output, "id=id-1")
		assert.Contains(t, output, "hash=abc")
	})

	t.Run("logs cache misses without an error", func(t *testing.T) {
		t.Parallel()

		var buf bytes.Buffer
		inner := &mock.PreviewService{
			FindPreviewByURLFn: func(ctx context.Context, url string) (*ogpeek.Preview, error) {
				return nil, ogpeek.Errorf(ogpeek.ENOTFOUND, "no preview")
			},
		}

		svc := ogslog.NewLoggingPreviewService(inner, newLogger(&buf))
		_, err := svc.FindPreviewByURL(context.Background(), "https://example.com")

		assert.Equal(t, ogpeek.ENOTFOUND, ogpeek.ErrorCode(err))
		output := buf.String()
		assert.Contains(t, output, "level=DEBUG")
		assert.Contains(t, output, "hit=false")
		assert.NotContains(t, output, "err=")
	})

	t.Run("logs cache hits", func(t *testing.T) {
		t.Parallel()

		var buf bytes.Buffer
		inner := &mock.PreviewService{
			FindPreviewByURLFn: func(ctx context.Context, url string) (*ogpeek.Preview, error) {
				return &ogpeek.Preview{URL: url}, nil
			},
		}

		_, err := ogslog.NewLoggingPreviewService(inner, newLogger(&buf)).FindPreviewByURL(context.Background(), "https://example.com")

		require.NoError(t, err)
		assert.Contains(t, buf.String(), "hit=true")
	})

	t.Run("logs list counts", func(t *testing.T) {
		t.Parallel()

		var buf bytes.Buffer
		inner := &mock.PreviewService{
			FindPreviewsFn: func(ctx context.Context, filter ogpeek.PreviewFilter) ([]*ogpeek.Preview, error) {
				return []*ogpeek.Preview{{}, {}, {}}, nil
			},
		}

		previews, err := ogslog.NewLoggingPreviewService(inner, newLogger(&buf)).FindPreviews(context.Background(), ogpeek.PreviewFilter{})

		require.NoError(t, err)
		assert.Len(t, previews, 3)
		assert.Contains(t, buf.String(), "count=3")
	})

	t.Run("logs delete failures as warnings", func(t *testing.T) {
		t.Parallel()

		var buf bytes.Buffer
		inner := &mock.PreviewService{
			DeletePreviewFn: func(ctx context.Context, id string) error {
				return errors.New("disk full")
			},
		}

		err := ogslog.NewLoggingPreviewService(inner, newLogger(&buf)).DeletePreview(context.Background(), "id-9")

		require.Error(t, err)
		output := buf.String()
		assert.Contains(t, output, "level=WARN")
		assert.Contains(t, output, "id=id-9")
		assert.Contains(t, output, "err=\"disk full\"")
	})
}
