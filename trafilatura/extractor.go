// Package trafilatura derives Open Graph properties from page content when a
// page carries no usable head metadata, using go-trafilatura's metadata
// extraction (title, author, date, site name and so on).
package trafilatura

import (
	"strings"

	"github.com/fwojciec/ogpeek"
	"github.com/markusmobius/go-trafilatura"
)

// Ensure Extractor implements ogpeek.Extractor at compile time.
var _ ogpeek.Extractor = (*Extractor)(nil)

// Extractor wraps go-trafilatura and maps its metadata onto a single bag.
// Pages with a publication date or an article page type become articles,
// everything else a website.
type Extractor struct{}

// NewExtractor creates a new Extractor.
func NewExtractor() *Extractor {
	return &Extractor{}
}

// Extract processes raw HTML and returns one bag built from the page's
// extracted metadata.
func (e *Extractor) Extract(rawHTML string) (*ogpeek.ExtractResult, error) {
	if strings.TrimSpace(rawHTML) == "" {
		return nil, ogpeek.Errorf(ogpeek.EINVALID, "empty HTML input")
	}

	result, err := trafilatura.Extract(strings.NewReader(rawHTML), trafilatura.Options{
		EnableFallback: true,
	})
	if err != nil {
		return nil, err
	}
	md := result.Metadata

	bag := ogpeek.Bag{}
	set := func(key, value string) {
		if v := strings.TrimSpace(value); v != "" {
			bag[key] = v
		}
	}
	set("og:title", md.Title)
	set("og:description", md.Description)
	set("og:url", md.URL)
	set("og:site_name", md.Sitename)
	set("og:image", md.Image)
	set("og:locale", strings.ReplaceAll(md.Language, "-", "_"))

	if len(bag) == 0 {
		return &ogpeek.ExtractResult{Bags: []ogpeek.Bag{bag}}, nil
	}

	if !md.Date.IsZero() || strings.EqualFold(md.PageType, "article") {
		bag[ogpeek.TypeKey] = string(ogpeek.KindArticle)
		if !md.Date.IsZero() {
			bag["og:article:published_time"] = md.Date.UTC().Format("2006-01-02T15:04")
		}
		if authors := authorBags(md.Author); len(authors) > 0 {
			bag["og:article:author"] = authors
		}
		if len(md.Categories) > 0 {
			bag["og:article:section"] = md.Categories[0]
		}
		if len(md.Tags) > 0 {
			bag["og:article:tag"] = append([]string(nil), md.Tags...)
		}
	} else {
		bag[ogpeek.TypeKey] = "website"
	}

	return &ogpeek.ExtractResult{Bags: []ogpeek.Bag{bag}}, nil
}

// authorBags turns trafilatura's "; "-joined author names into profile bags
// titled with each name.
func authorBags(authors string) []ogpeek.Bag {
	var out []ogpeek.Bag
	for name := range strings.SplitSeq(authors, ";") {
		if name = strings.TrimSpace(name); name != "" {
			out = append(out, ogpeek.Bag{"og:title": name})
		}
	}
	return out
}
