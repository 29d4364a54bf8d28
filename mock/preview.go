package mock

import (
	"context"

	"github.com/fwojciec/ogpeek"
)

var _ ogpeek.PreviewService = (*PreviewService)(nil)

// PreviewService is a mock implementation of ogpeek.PreviewService.
type PreviewService struct {
	CreatePreviewFn    func(ctx context.Context, preview *ogpeek.Preview) error
	FindPreviewByURLFn func(ctx context.Context, url string) (*ogpeek.Preview, error)
	FindPreviewsFn     func(ctx context.Context, filter ogpeek.PreviewFilter) ([]*ogpeek.Preview, error)
	DeletePreviewFn    func(ctx context.Context, id string) error
}

func (s *PreviewService) CreatePreview(ctx context.Context, preview *ogpeek.Preview) error {
	return s.CreatePreviewFn(ctx, preview)
}

func (s *PreviewService) FindPreviewByURL(ctx context.Context, url string) (*ogpeek.Preview, error) {
	return s.FindPreviewByURLFn(ctx, url)
}

func (s *PreviewService) FindPreviews(ctx context.Context, filter ogpeek.PreviewFilter) ([]*ogpeek.Preview, error) {
	return s.FindPreviewsFn(ctx, filter)
}

func (s *PreviewService) DeletePreview(ctx context.Context, id string) error {
	return s.DeletePreviewFn(ctx, id)
}
