// Package meta groups the Open Graph <meta> tags of a document into property
// bags, one bag per described object.
package meta

import (
	"maps"
	"slices"
	"strings"

	"github.com/fwojciec/ogpeek"
)

// Grouper accumulates meta tag properties into bags. A new bag is started
// whenever og:type repeats within the bag being filled.
//
// A Grouper holds per-document state and is not safe for concurrent use.
type Grouper struct {
	sealed  []ogpeek.Bag
	current ogpeek.Bag
}

// NewGrouper returns a Grouper holding one empty bag.
func NewGrouper() *Grouper {
	return &Grouper{current: ogpeek.Bag{}}
}

// Track records a tag. It returns false for anything other than a meta tag
// (matched case-insensitively). Only the property and content attributes are
// read; a meta tag missing either one adds nothing but is still accepted.
func (g *Grouper) Track(name string, attrs map[string]string) bool {
	if !strings.EqualFold(name, "meta") {
		return false
	}

	var property, content string
	var hasProperty, hasContent bool
	for _, k := range slices.Sorted(maps.Keys(attrs)) {
		switch {
		case strings.EqualFold(k, "property"):
			property, hasProperty = attrs[k], true
		case strings.EqualFold(k, "content"):
			content, hasContent = attrs[k], true
		}
	}

	if hasProperty && property == ogpeek.TypeKey {
		if _, ok := g.current[ogpeek.TypeKey]; ok {
			g.sealed = append(g.sealed, g.current)
			g.current = ogpeek.Bag{}
		}
	}

	if hasProperty && hasContent {
		g.add(property, content)
	}
	return true
}

// add inserts a value, turning repeated properties into a list of values in
// encounter order.
func (g *Grouper) add(property, content string) {
	switch existing := g.current[property].(type) {
	case nil:
		g.current[property] = content
	case string:
		g.current[property] = []string{existing, content}
	case []string:
		g.current[property] = append(existing, content)
	default:
		g.current[property] = content
	}
}

// Bags returns the bags accumulated so far. The bag still being filled is
// always the last element, so the result is never empty. Callers take
// ownership of the bags and should stop tracking once they do.
func (g *Grouper) Bags() []ogpeek.Bag {
	bags := make([]ogpeek.Bag, 0, len(g.sealed)+1)
	bags = append(bags, g.sealed...)
	return append(bags, g.current)
}
