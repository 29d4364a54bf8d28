// Package goquery implements a lenient head-metadata extractor on top of a
// full HTML5 parser. It recovers Open Graph tags from documents the strict
// tag scanner gives up on and fills in missing fields from Twitter cards and
// plain HTML head elements.
package goquery

import (
	"slices"
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/fwojciec/ogpeek"
	"github.com/fwojciec/ogpeek/meta"
)

// DefaultType is the og:type assigned to pages that only carry non-Open
// Graph metadata.
const DefaultType = "website"

// Ensure Extractor implements ogpeek.Extractor at compile time.
var _ ogpeek.Extractor = (*Extractor)(nil)

// Extractor reads head metadata with goquery.
//
// Properties named by a meta tag's property or name attribute are grouped
// exactly like meta.Extractor groups them. The first bag is then completed
// from the fallbacks below, each used only when the og key is missing.
type Extractor struct{}

// NewExtractor creates a new Extractor.
func NewExtractor() *Extractor {
	return &Extractor{}
}

// fallback maps an og key to the head sources consulted, in order.
type fallback struct {
	key     string
	sources []source
}

type source struct {
	selector string
	attr     string // empty means the element text
}

var fallbacks = []fallback{
	{"og:title", []source{
		{`meta[name="twitter:title"]`, "content"},
		{"head title", ""},
	}},
	{"og:description", []source{
		{`meta[name="twitter:description"]`, "content"},
		{`meta[name="description"]`, "content"},
	}},
	{"og:image", []source{
		{`meta[name="twitter:image"]`, "content"},
		{`meta[name="twitter:image:src"]`, "content"},
		{`link[rel="image_src"]`, "href"},
	}},
	{"og:url", []source{
		{`link[rel="canonical"]`, "href"},
	}},
	{"og:site_name", []source{
		{`meta[name="application-name"]`, "content"},
	}},
}

// Extract parses html and returns the recovered bags. The result is never
// partial: the HTML5 parser accepts any input.
func (e *Extractor) Extract(html string) (*ogpeek.ExtractResult, error) {
	if strings.TrimSpace(html) == "" {
		return nil, ogpeek.Errorf(ogpeek.EINVALID, "empty HTML input")
	}

	doc, err := goquery.NewDocumentFromReader(strings.NewReader(html))
	if err != nil {
		return nil, ogpeek.Errorf(ogpeek.EINVALID, "failed to parse HTML: %v", err)
	}

	g := meta.NewGrouper()
	doc.Find("meta").Each(func(_ int, sel *goquery.Selection) {
		content, ok := sel.Attr("content")
		if !ok {
			return
		}
		key, ok := sel.Attr("property")
		if !ok {
			key, _ = sel.Attr("name")
		}
		if isOpenGraph(key) {
			g.Track("meta", map[string]string{"property": key, "content": content})
		}
	})

	bags := g.Bags()
	first := bags[0]
	for _, f := range fallbacks {
		if present(first, f.key) {
			continue
		}
		if v := lookup(doc, f.sources); v != "" {
			first[f.key] = v
		}
	}
	if !present(first, "og:locale") {
		if lang, ok := doc.Find("html").First().Attr("lang"); ok && strings.TrimSpace(lang) != "" {
			first["og:locale"] = strings.ReplaceAll(strings.TrimSpace(lang), "-", "_")
		}
	}
	if _, ok := first.Type(); !ok && len(first) > 0 {
		first[ogpeek.TypeKey] = DefaultType
	}

	return &ogpeek.ExtractResult{Bags: bags}, nil
}

// isOpenGraph reports whether key names an Open Graph property, either
// og-prefixed or in one of the object-type namespaces.
func isOpenGraph(key string) bool {
	for _, prefix := range []string{"og:", "article:", "book:", "profile:", "music:", "video:"} {
		if strings.HasPrefix(key, prefix) {
			return true
		}
	}
	return false
}

// present reports whether key holds a non-blank value.
func present(bag ogpeek.Bag, key string) bool {
	switch v := bag[key].(type) {
	case string:
		return strings.TrimSpace(v) != ""
	case []string:
		return slices.ContainsFunc(v, func(s string) bool { return strings.TrimSpace(s) != "" })
	case nil:
		return false
	default:
		return true
	}
}

func lookup(doc *goquery.Document, sources []source) string {
	for _, src := range sources {
		sel := doc.Find(src.selector).First()
		if sel.Length() == 0 {
			continue
		}
		var v string
		if src.attr == "" {
			v = sel.Text()
		} else {
			v, _ = sel.Attr(src.attr)
		}
		if v = strings.TrimSpace(v); v != "" {
			return v
		}
	}
	return ""
}
