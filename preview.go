package ogpeek

import (
	"context"
	"time"
)

// Preview is the Open Graph metadata extracted from one page.
// The property bags are stored rather than records so that records can be
// rebuilt as the factory evolves.
type Preview struct {
	ID          string    `json:"id"`
	URL         string    `json:"url"`
	Bags        []Bag     `json:"bags"`
	ContentHash string    `json:"contentHash"`
	Partial     bool      `json:"partial"`
	FetchedAt   time.Time `json:"fetchedAt"`
}

// Validate returns an error if the preview contains invalid fields.
func (p *Preview) Validate() error {
	if p.URL == "" {
		return Errorf(EINVALID, "preview URL required")
	}
	return nil
}

// Records materializes the preview's bags into typed records.
func (p *Preview) Records() []Record {
	return MaterializeAll(p.Bags)
}

// PreviewService represents a service for storing previews.
type PreviewService interface {
	// CreatePreview stores a preview, replacing any preview with the same URL.
	// The stored preview keeps the ID of the one it replaces.
	CreatePreview(ctx context.Context, preview *Preview) error

	// FindPreviewByURL retrieves the preview for a URL.
	// Returns ENOTFOUND if no preview exists.
	FindPreviewByURL(ctx context.Context, url string) (*Preview, error)

	// FindPreviews retrieves previews matching the filter, newest first.
	FindPreviews(ctx context.Context, filter PreviewFilter) ([]*Preview, error)

	// DeletePreview permanently removes a preview.
	// Returns ENOTFOUND if the preview does not exist.
	DeletePreview(ctx context.Context, id string) error
}

// PreviewFilter represents a filter for FindPreviews.
type PreviewFilter struct {
	ID  *string `json:"id"`
	URL *string `json:"url"`

	Offset int `json:"offset"`
	Limit  int `json:"limit"`
}
