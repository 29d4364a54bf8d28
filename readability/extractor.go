// Package readability derives Open Graph properties from a page's readable
// content using go-readability, for pages without usable meta tags.
package readability

import (
	"strings"

	"github.com/fwojciec/ogpeek"
	"github.com/go-shiori/go-readability"
)

// Ensure Extractor implements ogpeek.Extractor at compile time.
var _ ogpeek.Extractor = (*Extractor)(nil)

// Extractor maps the title, excerpt, byline and lead image readability finds
// onto a single bag. Pages with a publication time become articles.
type Extractor struct{}

// NewExtractor creates a new Extractor.
func NewExtractor() *Extractor {
	return &Extractor{}
}

// Extract processes raw HTML and returns one bag. The bag is empty when
// readability finds nothing.
func (e *Extractor) Extract(rawHTML string) (*ogpeek.ExtractResult, error) {
	if strings.TrimSpace(rawHTML) == "" {
		return nil, ogpeek.Errorf(ogpeek.EINVALID, "empty HTML input")
	}

	article, err := readability.FromReader(strings.NewReader(rawHTML), nil)
	if err != nil {
		return nil, err
	}

	bag := ogpeek.Bag{}
	set := func(key, value string) {
		if v := strings.Join(strings.Fields(value), " "); v != "" {
			bag[key] = v
		}
	}
	set("og:title", article.Title)
	set("og:description", article.Excerpt)
	set("og:site_name", article.SiteName)
	set("og:image", article.Image)
	set("og:locale", strings.ReplaceAll(article.Language, "-", "_"))

	if len(bag) == 0 {
		return &ogpeek.ExtractResult{Bags: []ogpeek.Bag{bag}}, nil
	}

	if article.PublishedTime == nil {
		bag[ogpeek.TypeKey] = "website"
		return &ogpeek.ExtractResult{Bags: []ogpeek.Bag{bag}}, nil
	}

	bag[ogpeek.TypeKey] = string(ogpeek.KindArticle)
	bag["og:article:published_time"] = article.PublishedTime.UTC().Format("2006-01-02T15:04")
	if article.ModifiedTime != nil {
		bag["og:article:modified_time"] = article.ModifiedTime.UTC().Format("2006-01-02T15:04")
	}
	if byline := strings.TrimSpace(article.Byline); byline != "" {
		bag["og:article:author"] = ogpeek.Bag{"og:title": byline}
	}
	return &ogpeek.ExtractResult{Bags: []ogpeek.Bag{bag}}, nil
}
