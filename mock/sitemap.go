package mock

import (
	"context"

	"github.com/fwojciec/ogpeek"
)

var _ ogpeek.SitemapService = (*SitemapService)(nil)

// SitemapService is a mock implementation of ogpeek.SitemapService.
type SitemapService struct {
	DiscoverURLsFn func(ctx context.Context, baseURL string, filter *ogpeek.URLFilter) ([]string, error)
}

func (s *SitemapService) DiscoverURLs(ctx context.Context, baseURL string, filter *ogpeek.URLFilter) ([]string, error) {
	return s.DiscoverURLsFn(ctx, baseURL, filter)
}
