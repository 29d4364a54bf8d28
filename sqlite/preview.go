package sqlite

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/cespare/xxhash/v2"
	"github.com/fwojciec/ogpeek"
	"github.com/google/uuid"
)

// Compile-time interface verification.
var _ ogpeek.PreviewService = (*PreviewService)(nil)

// PreviewService implements ogpeek.PreviewService using SQLite.
type PreviewService struct {
	db *DB
}

// NewPreviewService creates a new PreviewService.
func NewPreviewService(db *DB) *PreviewService {
	return &PreviewService{db: db}
}

// hashBags returns the xxHash of the canonical JSON encoding of bags.
func hashBags(encoded []byte) string {
	return strconv.FormatUint(xxhash.Sum64(encoded), 16)
}

// CreatePreview stores a preview, replacing any stored preview for the same
// URL. On return the preview carries its ID, content hash and fetch time.
func (s *PreviewService) CreatePreview(ctx context.Context, preview *ogpeek.Preview) error {
	if err := preview.Validate(); err != nil {
		return err
	}

	bags := preview.Bags
	if bags == nil {
		bags = []ogpeek.Bag{}
	}
	encoded, err := json.Marshal(bags)
	if err != nil {
		return ogpeek.Errorf(ogpeek.EINVALID, "preview bags not encodable: %v", err)
	}

	if preview.FetchedAt.IsZero() {
		preview.FetchedAt = time.Now()
	}
	preview.FetchedAt = preview.FetchedAt.UTC()
	preview.ContentHash = hashBags(encoded)

	var id string
	err = s.db.QueryRowContext(ctx, `
		INSERT INTO previews (id, url, bags, content_hash, partial, fetched_at)
		VALUES (?, ?, ?, ?, ?, ?)
		ON CONFLICT(url) DO UPDATE SET
			bags = excluded.bags,
			content_hash = excluded.content_hash,
			partial = excluded.partial,
			fetched_at = excluded.fetched_at
		RETURNING id
	`, uuid.New().String(), preview.URL, string(encoded), preview.ContentHash,
		preview.Partial, formatTime(preview.FetchedAt)).Scan(&id)
	if err != nil {
		return err
	}

	preview.ID = id
	return nil
}

// FindPreviewByURL retrieves the preview stored for url.
func (s *PreviewService) FindPreviewByURL(ctx context.Context, url string) (*ogpeek.Preview, error) {
	previews, err := s.FindPreviews(ctx, ogpeek.PreviewFilter{URL: &url, Limit: 1})
	if err != nil {
		return nil, err
	}
	if len(previews) == 0 {
		return nil, ogpeek.Errorf(ogpeek.ENOTFOUND, "no preview for %s", url)
	}
	return previews[0], nil
}

// FindPreviews retrieves previews matching the filter, most recently fetched
// first.
func (s *PreviewService) FindPreviews(ctx context.Context, filter ogpeek.PreviewFilter) ([]*ogpeek.Preview, error) {
	var query strings.Builder
	var args []any

	query.WriteString("SELECT id, url, bags, content_hash, partial, fetched_at FROM previews WHERE 1=1")

	if filter.ID != nil {
		query.WriteString(" AND id = ?")
		args = append(args, *filter.ID)
	}
	if filter.URL != nil {
		query.WriteString(" AND url = ?")
		args = append(args, *filter.URL)
	}

	query.WriteString(" ORDER BY fetched_at DESC, url ASC")
	appendPagination(&query, &args, filter.Limit, filter.Offset)

	rows, err := s.db.QueryContext(ctx, query.String(), args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	previews := make([]*ogpeek.Preview, 0)
	for rows.Next() {
		p, err := scanPreview(rows)
		if err != nil {
			return nil, err
		}
		previews = append(previews, p)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	return previews, nil
}

// DeletePreview permanently removes a preview by ID.
func (s *PreviewService) DeletePreview(ctx context.Context, id string) error {
	result, err := s.db.ExecContext(ctx, "DELETE FROM previews WHERE id = ?", id)
	if err != nil {
		return err
	}

	n, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		return ogpeek.Errorf(ogpeek.ENOTFOUND, "preview not found")
	}

	return nil
}

func scanPreview(rows *sql.Rows) (*ogpeek.Preview, error) {
	var p ogpeek.Preview
	var bags, fetchedAt string

	if err := rows.Scan(&p.ID, &p.URL, &bags, &p.ContentHash, &p.Partial, &fetchedAt); err != nil {
		return nil, err
	}
	if err := json.Unmarshal([]byte(bags), &p.Bags); err != nil {
		return nil, fmt.Errorf("failed to decode bags of %s: %w", p.URL, err)
	}

	var err error
	if p.FetchedAt, err = parseTime(fetchedAt, "fetched_at"); err != nil {
		return nil, err
	}
	return &p, nil
}
