package eligibility

import (
	"context"
	"time"
)

// Purchase is the metadata an eligibility check inspects for course
// requests.
type Purchase struct {
	OrderID     uint
	ProductID   uint
	PurchasedAt time.Time
	Completed   bool
}

// Checker decides whether a requester has satisfied the precondition for a
// certificate. For courses this means a completed purchase old enough to
// clear the waiting period; for events it means presence on the session
// roster.
type Checker interface {
	// HasCompletedPurchase reports whether the requester purchased the
	// product and the purchase is at least minDays old as of asOf.
	HasCompletedPurchase(ctx context.Context, requesterID, productID uint, minDays int, asOf time.Time) (bool, error)

	// LatestPurchase returns the most recent qualifying purchase, or nil
	// when the requester never bought the product.
	LatestPurchase(ctx context.Context, requesterID, productID uint) (*Purchase, error)
}
