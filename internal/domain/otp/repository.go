package otp

import (
	"context"
	"time"
)

type CodeRepository interface {
	Save(ctx context.Context, code *Code) error
	// Update persists the consumed flag. The write is guarded on the stored
	// row still being unconsumed; when a concurrent verification already
	// claimed the code, Update returns ErrCodeAlreadyConsumed.
	Update(ctx context.Context, code *Code) error
	// CountCreatedSince counts codes created for an email after the cutoff,
	// consumed or not. Used for the per-email issuance cap.
	CountCreatedSince(ctx context.Context, email string, cutoff time.Time) (int64, error)
	// FindMatch returns the newest unconsumed, unexpired code matching
	// (email, code, eventDateID), or nil when none matches.
	FindMatch(ctx context.Context, email, code string, eventDateID uint, now time.Time) (*Code, error)
	// FindLatest returns the newest code matching (email, code, eventDateID)
	// regardless of consumption or expiry, or nil. Used to distinguish an
	// expired or consumed code from one that never existed.
	FindLatest(ctx context.Context, email, code string, eventDateID uint) (*Code, error)
	// DeleteOlderThan purges codes created before the cutoff regardless of
	// consumption state. Returns the number of rows removed.
	DeleteOlderThan(ctx context.Context, cutoff time.Time) (int64, error)
}
