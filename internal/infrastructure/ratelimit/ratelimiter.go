package ratelimit

import (
	"context"
	"time"
)

// Result is the outcome of a rate limit check. RetryAfter is only
// meaningful when Allowed is false.
type Result struct {
	Allowed    bool
	Remaining  int64
	RetryAfter time.Duration
}

// RateLimiter bounds how often an identifier may perform an action. The
// check and the recording of the attempt are a single operation; denied
// attempts do not count against the window.
type RateLimiter interface {
	CheckAndRecord(ctx context.Context, identifier, action string, max int, window time.Duration) (Result, error)
	// Reset clears all recorded attempts for the identifier and action.
	Reset(ctx context.Context, identifier, action string) error
}
