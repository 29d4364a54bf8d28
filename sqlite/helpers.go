package sqlite

import (
	"fmt"
	"strings"
	"time"
)

// timeLayout stores timestamps in UTC with fixed nanosecond precision.
const timeLayout = "2006-01-02T15:04:05.000000000Z"

func formatTime(t time.Time) string {
	return t.UTC().Format(timeLayout)
}

// parseTime parses a stored timestamp, naming the column on failure.
func parseTime(value, column string) (time.Time, error) {
	t, err := time.Parse(timeLayout, value)
	if err != nil {
		return time.Time{}, fmt.Errorf("failed to parse %s: %w", column, err)
	}
	return t, nil
}

// appendPagination appends LIMIT and OFFSET clauses. SQLite only accepts
// OFFSET after a LIMIT, so an offset without a limit uses LIMIT -1.
func appendPagination(query *strings.Builder, args *[]any, limit, offset int) {
	if limit <= 0 && offset <= 0 {
		return
	}
	if limit <= 0 {
		limit = -1
	}
	query.WriteString(" LIMIT ?")
	*args = append(*args, limit)
	if offset > 0 {
		query.WriteString(" OFFSET ?")
		*args = append(*args, offset)
	}
}
