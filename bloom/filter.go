// Package bloom de-duplicates URLs submitted for preview using a Bloom
// filter, so that batch runs over large URL lists use bounded memory.
package bloom

import (
	"net/url"
	"strings"
	"sync"

	"github.com/bits-and-blooms/bloom/v3"
)

// Filter records URLs already seen. A false positive skips a URL that was
// never previewed; the rate is chosen at construction.
//
// Filter is safe for concurrent use.
type Filter struct {
	mu sync.Mutex
	f  *bloom.BloomFilter
}

// NewFilter creates a filter sized for n expected URLs with the given false
// positive rate.
func NewFilter(n uint, fpRate float64) *Filter {
	return &Filter{f: bloom.NewWithEstimates(max(n, 1), fpRate)}
}

// Seen reports whether url was seen before and records it. URLs are compared
// in normalized form.
func (f *Filter) Seen(rawURL string) bool {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.f.TestAndAddString(Normalize(rawURL))
}

// EstimatedCount returns the approximate number of URLs recorded.
func (f *Filter) EstimatedCount() uint {
	f.mu.Lock()
	defer f.mu.Unlock()
	return uint(f.f.ApproximatedSize())
}

// Normalize returns the form of rawURL used for comparison: scheme and host
// lowercased, default port and fragment dropped, and an empty path written
// as "/". Unparseable input is returned trimmed.
func Normalize(rawURL string) string {
	rawURL = strings.TrimSpace(rawURL)
	u, err := url.Parse(rawURL)
	if err != nil || u.Host == "" {
		return rawURL
	}
	u.Scheme = strings.ToLower(u.Scheme)
	u.Host = strings.ToLower(u.Host)
	switch {
	case u.Scheme == "http" && u.Port() == "80", u.Scheme == "https" && u.Port() == "443":
		u.Host = u.Hostname()
	}
	u.Fragment = ""
	u.RawFragment = ""
	if u.Path == "" {
		u.Path = "/"
	}
	return u.String()
}
