package valueobjects

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRequestStatus_CanTransitionTo(t *testing.T) {
	tests := []struct {
		name    string
		from    RequestStatus
		to      RequestStatus
		allowed bool
	}{
		{name: "pending to approved", from: StatusPending, to: StatusApproved, allowed: true},
		{name: "pending to rejected", from: StatusPending, to: StatusRejected, allowed: true},
		{name: "pending to issued skips approval", from: StatusPending, to: StatusIssued, allowed: false},
		{name: "approved to issued", from: StatusApproved, to: StatusIssued, allowed: true},
		{name: "approved to generation failed", from: StatusApproved, to: StatusGenerationFailed, allowed: true},
		{name: "approved to notification failed", from: StatusApproved, to: StatusNotificationFailed, allowed: true},
		{name: "approved to pending", from: StatusApproved, to: StatusPending, allowed: false},
		{name: "generation failed to approved", from: StatusGenerationFailed, to: StatusApproved, allowed: true},
		{name: "generation failed to issued directly", from: StatusGenerationFailed, to: StatusIssued, allowed: false},
		{name: "notification failed to issued", from: StatusNotificationFailed, to: StatusIssued, allowed: true},
		{name: "notification failed to approved", from: StatusNotificationFailed, to: StatusApproved, allowed: true},
		{name: "rejected to approved", from: StatusRejected, to: StatusApproved, allowed: true},
		{name: "rejected to issued", from: StatusRejected, to: StatusIssued, allowed: false},
		{name: "issued is final", from: StatusIssued, to: StatusRejected, allowed: false},
		{name: "issued cannot be reapproved", from: StatusIssued, to: StatusApproved, allowed: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.allowed, tt.from.CanTransitionTo(tt.to))
		})
	}
}

func TestRequestStatus_IsTerminal(t *testing.T) {
	assert.True(t, StatusIssued.IsTerminal())
	assert.True(t, StatusRejected.IsTerminal())
	assert.False(t, StatusPending.IsTerminal())
	assert.False(t, StatusApproved.IsTerminal())
	assert.False(t, StatusGenerationFailed.IsTerminal())
	assert.False(t, StatusNotificationFailed.IsTerminal())
}

func TestNonTerminalStatuses_BlockDuplicates(t *testing.T) {
	statuses := NonTerminalStatuses()

	require.Len(t, statuses, 4)
	assert.NotContains(t, statuses, StatusIssued)
	assert.NotContains(t, statuses, StatusRejected)
}

func TestNewRequestStatus(t *testing.T) {
	status, err := NewRequestStatus("generation_failed")
	require.NoError(t, err)
	assert.Equal(t, StatusGenerationFailed, status)

	_, err = NewRequestStatus("processing")
	assert.Error(t, err)
}
