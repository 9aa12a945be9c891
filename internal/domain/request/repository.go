package request

import (
	"context"
	"time"

	vo "certhub/internal/domain/request/valueobjects"
)

type RequestFilter struct {
	Status      *vo.RequestStatus
	Kind        *vo.SubjectKind
	RequesterID *uint
	VendorID    *uint
	Page        int
	PageSize    int
	SortBy      string
	SortOrder   string
}

type RequestRepository interface {
	Save(ctx context.Context, req *Request) error
	Update(ctx context.Context, req *Request) error
	// UpdateWithStatusGuard persists the request only if the stored row is
	// still in one of the expected statuses. A guard miss means a concurrent
	// lifecycle operation won the transition; callers surface it as a conflict.
	UpdateWithStatusGuard(ctx context.Context, req *Request, expected ...vo.RequestStatus) error
	Delete(ctx context.Context, requestID uint) error
	GetByID(ctx context.Context, requestID uint) (*Request, error)
	GetByPublicID(ctx context.Context, publicID string) (*Request, error)
	ExistsByPublicID(ctx context.Context, publicID string) (bool, error)
	// FindDuplicate returns the newest request for (requesterID, subjectRef)
	// in one of the given statuses, or nil when none exists.
	FindDuplicate(ctx context.Context, requesterID uint, subjectRef string, statuses []vo.RequestStatus) (*Request, error)
	List(ctx context.Context, filter RequestFilter) ([]*Request, int64, error)
	// FindByStatusSince returns up to limit requests in the given status whose
	// decision is younger than since, oldest first. Used by the retry sweep.
	FindByStatusSince(ctx context.Context, status vo.RequestStatus, since time.Time, limit int) ([]*Request, error)
	// SearchIssued looks up an issued request by exact public ID, exact email,
	// or case-insensitive full-name match. Returns nil when nothing matches.
	SearchIssued(ctx context.Context, term string) (*Request, error)
}

// SequenceRepository provides named, atomically incremented counters.
// Each Increment is a single serialized read-modify-write per counter name;
// two callers never observe the same value.
type SequenceRepository interface {
	Increment(ctx context.Context, name string) (uint64, error)
}
