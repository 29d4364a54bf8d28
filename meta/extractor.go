package meta

import (
	"strings"

	"github.com/fwojciec/ogpeek"
	"github.com/fwojciec/ogpeek/tag"
)

// Ensure Extractor implements ogpeek.Extractor at compile time.
var _ ogpeek.Extractor = (*Extractor)(nil)

// Extractor runs the tag scanner over a page and groups its meta tags.
// Each call uses a fresh scanner and grouper, so an Extractor is safe for
// concurrent use.
type Extractor struct{}

// NewExtractor creates a new Extractor.
func NewExtractor() *Extractor {
	return &Extractor{}
}

// Extract scans html and returns the grouped bags. When the scanner cannot
// reach the end of the markup the result is marked partial.
func (e *Extractor) Extract(html string) (*ogpeek.ExtractResult, error) {
	if strings.TrimSpace(html) == "" {
		return nil, ogpeek.Errorf(ogpeek.EINVALID, "empty HTML input")
	}

	g := NewGrouper()
	ok := tag.NewScanner().Scan(html, func(name string, attrs map[string]string) {
		g.Track(name, attrs)
	})

	return &ogpeek.ExtractResult{
		Bags:    g.Bags(),
		Partial: !ok,
	}, nil
}
