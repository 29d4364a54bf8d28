package ogpeek

import (
	"context"
	"regexp"
	"slices"
)

// SitemapService lists the pages of a site for batch previews.
type SitemapService interface {
	// DiscoverURLs returns the page URLs listed in a site's sitemaps.
	// Sitemaps are located through robots.txt, falling back to /sitemap.xml,
	// and sitemap indexes are followed. A nil filter keeps every URL.
	DiscoverURLs(ctx context.Context, baseURL string, filter *URLFilter) ([]string, error)
}

// URLFilter selects URLs by pattern.
type URLFilter struct {
	// Include keeps only URLs matching at least one pattern, when set.
	Include []*regexp.Regexp

	// Exclude drops URLs matching any pattern. Applied after Include.
	Exclude []*regexp.Regexp
}

// Match reports whether url passes the filter. A nil filter passes everything.
func (f *URLFilter) Match(url string) bool {
	if f == nil {
		return true
	}
	matches := func(re *regexp.Regexp) bool { return re.MatchString(url) }
	if len(f.Include) > 0 && !slices.ContainsFunc(f.Include, matches) {
		return false
	}
	return !slices.ContainsFunc(f.Exclude, matches)
}
