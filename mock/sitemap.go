package mock

import (
	"context"

	"github.com/fwojciec/shopgrep"
)

var _ shopgrep.SitemapService = (*SitemapService)(nil)

// SitemapService is a mock implementation of shopgrep.SitemapService.
type SitemapService struct {
	DiscoverURLsFn func(ctx context.Context, baseURL string, filter *shopgrep.URLFilter) ([]string, error)
}

func (s *SitemapService) DiscoverURLs(ctx context.Context, baseURL string, filter *shopgrep.URLFilter) ([]string, error) {
	return s.DiscoverURLsFn(ctx, baseURL, filter)
}
