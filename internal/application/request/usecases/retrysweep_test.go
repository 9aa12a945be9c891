package usecases

import (
	"context"
	"testing"
	"time"

	"certhub/internal/domain/notification"
	"certhub/internal/domain/request"
	vo "certhub/internal/domain/request/valueobjects"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newSweep(requestRepo *mockRequestRepository, dispatcher *mockDispatcher) *RetryNotificationSweep {
	retryUC := NewRetryNotificationUseCase(requestRepo, &mockArtifactStore{}, dispatcher, &mockLogger{})
	return NewRetryNotificationSweep(requestRepo, retryUC, &mockLogger{})
}

func TestRetryNotificationSweep_Execute_EmptyBatch(t *testing.T) {
	requestRepo := &mockRequestRepository{
		FindByStatusSinceFunc: func(ctx context.Context, status vo.RequestStatus, since time.Time, limit int) ([]*request.Request, error) {
			assert.Equal(t, vo.StatusNotificationFailed, status)
			assert.Equal(t, sweepBatchSize, limit)
			return nil, nil
		},
	}
	sweep := newSweep(requestRepo, &mockDispatcher{})

	delivered, err := sweep.Execute(context.Background())

	require.NoError(t, err)
	assert.Equal(t, 0, delivered)
}

func TestRetryNotificationSweep_Execute_RedeliversStuckRequest(t *testing.T) {
	req := requestInStatus(t, vo.StatusNotificationFailed)
	requestRepo := &mockRequestRepository{
		FindByStatusSinceFunc: func(ctx context.Context, status vo.RequestStatus, since time.Time, limit int) ([]*request.Request, error) {
			return []*request.Request{req}, nil
		},
		GetByIDFunc: func(ctx context.Context, requestID uint) (*request.Request, error) {
			return req, nil
		},
	}
	dispatcher := &mockDispatcher{}
	sweep := newSweep(requestRepo, dispatcher)

	delivered, err := sweep.Execute(context.Background())

	require.NoError(t, err)
	assert.Equal(t, 1, delivered)
	assert.True(t, req.Status().IsIssued())
	require.Len(t, dispatcher.sent, 1)
}

func TestRetryNotificationSweep_Execute_CountsOnlyDeliveries(t *testing.T) {
	req := requestInStatus(t, vo.StatusNotificationFailed)
	requestRepo := &mockRequestRepository{
		FindByStatusSinceFunc: func(ctx context.Context, status vo.RequestStatus, since time.Time, limit int) ([]*request.Request, error) {
			return []*request.Request{req}, nil
		},
		GetByIDFunc: func(ctx context.Context, requestID uint) (*request.Request, error) {
			return req, nil
		},
	}
	dispatcher := &mockDispatcher{
		SendFunc: func(ctx context.Context, msg notification.Message) error {
			return assert.AnError
		},
	}
	sweep := newSweep(requestRepo, dispatcher)

	delivered, err := sweep.Execute(context.Background())

	require.NoError(t, err)
	assert.Equal(t, 0, delivered)
	assert.True(t, req.Status().IsNotificationFailed())
}
