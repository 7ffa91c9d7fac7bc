package mock

import (
	"context"

	"github.com/fwojciec/docgrab"
)

var _ docgrab.SitemapService = (*SitemapService)(nil)

// SitemapService is a mock implementation of docgrab.SitemapService.
type SitemapService struct {
	DiscoverLinksFn func(ctx context.Context, baseURL string) ([]string, error)
}

func (s *SitemapService) DiscoverLinks(ctx context.Context, baseURL string) ([]string, error) {
	return s.DiscoverLinksFn(ctx, baseURL)
}
