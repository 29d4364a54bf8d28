package mock

import "github.com/fwojciec/ogpeek"

var _ ogpeek.Extractor = (*Extractor)(nil)

// Extractor is a mock implementation of ogpeek.Extractor.
type Extractor struct {
	ExtractFn func(html string) (*ogpeek.ExtractResult, error)
}

func (e *Extractor) Extract(html string) (*ogpeek.ExtractResult, error) {
	return e.ExtractFn(html)
}
