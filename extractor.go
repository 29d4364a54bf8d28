package ogpeek

// ExtractResult holds the property bags extracted from an HTML page.
type ExtractResult struct {
	// Bags holds one bag per described object, in document order.
	// At least one bag is always present, possibly empty.
	Bags []Bag

	// Partial reports that the markup could not be scanned to the end.
	// Bags then holds what was grouped before the failure point.
	Partial bool
}

// Records materializes the extracted bags, dropping bags without og:type.
func (r *ExtractResult) Records() []Record {
	return MaterializeAll(r.Bags)
}

// Extractor extracts Open Graph property bags from HTML pages.
type Extractor interface {
	// Extract processes raw HTML and returns the grouped properties.
	// Returns EINVALID for empty input.
	Extract(html string) (*ExtractResult, error)
}
