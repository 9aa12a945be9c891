package verification

import (
	"context"
	"time"
)

// LogFilter narrows audit log queries for the admin listing.
type LogFilter struct {
	PublicID *string
	Result   *Result
	Since    *time.Time
}

type LogRepository interface {
	Append(ctx context.Context, entry *LogEntry) error
	List(ctx context.Context, filter LogFilter, page, pageSize int) ([]*LogEntry, int64, error)
	// DeleteOlderThan removes audit entries past the retention horizon and
	// returns the number of rows deleted.
	DeleteOlderThan(ctx context.Context, cutoff time.Time) (int64, error)
}
