package docgrab

import "context"

// SitemapService discovers page URLs from a site's sitemaps.
type SitemapService interface {
	// DiscoverLinks finds all page URLs reachable through the site's
	// sitemaps. It first checks robots.txt for Sitemap directives, then
	// falls back to /sitemap.xml. Sitemap indexes are resolved
	// recursively. When baseURL carries a non-root path, only URLs under
	// that path prefix are returned.
	//
	// Returns an empty slice (not nil) when no sitemaps exist.
	DiscoverLinks(ctx context.Context, baseURL string) ([]string, error)
}
