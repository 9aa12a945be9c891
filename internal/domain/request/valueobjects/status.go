package valueobjects

import "fmt"

type RequestStatus string

const (
	StatusPending            RequestStatus = "pending"
	StatusApproved           RequestStatus = "approved"
	StatusIssued             RequestStatus = "issued"
	StatusRejected           RequestStatus = "rejected"
	StatusGenerationFailed   RequestStatus = "generation_failed"
	StatusNotificationFailed RequestStatus = "notification_failed"
)

var validRequestStatuses = map[RequestStatus]bool{
	StatusPending:            true,
	StatusApproved:           true,
	StatusIssued:             true,
	StatusRejected:           true,
	StatusGenerationFailed:   true,
	StatusNotificationFailed: true,
}

// requestStatusTransitions is the closed transition table for the lifecycle
// engine. Approved is a transient state held only while the render/notify
// pipeline runs; issued and rejected are terminal for automatic processing
// (rejected can still be re-approved administratively or purged).
var requestStatusTransitions = map[RequestStatus][]RequestStatus{
	StatusPending: {
		StatusApproved,
		StatusRejected,
	},
	StatusApproved: {
		StatusIssued,
		StatusGenerationFailed,
		StatusNotificationFailed,
		StatusRejected,
	},
	StatusGenerationFailed: {
		StatusApproved,
		StatusRejected,
	},
	StatusNotificationFailed: {
		StatusIssued,
		StatusApproved,
		StatusRejected,
	},
	StatusRejected: {
		StatusApproved,
	},
	StatusIssued: {},
}

func (rs RequestStatus) String() string {
	return string(rs)
}

func (rs RequestStatus) IsValid() bool {
	return validRequestStatuses[rs]
}

func (rs RequestStatus) CanTransitionTo(newStatus RequestStatus) bool {
	allowedTransitions, ok := requestStatusTransitions[rs]
	if !ok {
		return false
	}

	for _, allowed := range allowedTransitions {
		if allowed == newStatus {
			return true
		}
	}
	return false
}

func (rs RequestStatus) IsPending() bool {
	return rs == StatusPending
}

func (rs RequestStatus) IsApproved() bool {
	return rs == StatusApproved
}

func (rs RequestStatus) IsIssued() bool {
	return rs == StatusIssued
}

func (rs RequestStatus) IsRejected() bool {
	return rs == StatusRejected
}

func (rs RequestStatus) IsGenerationFailed() bool {
	return rs == StatusGenerationFailed
}

func (rs RequestStatus) IsNotificationFailed() bool {
	return rs == StatusNotificationFailed
}

// IsTerminal reports whether automatic processing is finished for this status.
// A request in a non-terminal status blocks duplicate submissions for the
// same subject.
func (rs RequestStatus) IsTerminal() bool {
	return rs == StatusIssued || rs == StatusRejected
}

// NonTerminalStatuses lists every status that still blocks a duplicate
// submission for the same subject.
func NonTerminalStatuses() []RequestStatus {
	return []RequestStatus{
		StatusPending,
		StatusApproved,
		StatusGenerationFailed,
		StatusNotificationFailed,
	}
}

func NewRequestStatus(s string) (RequestStatus, error) {
	rs := RequestStatus(s)
	if !rs.IsValid() {
		return "", fmt.Errorf("invalid request status: %s", s)
	}
	return rs, nil
}
