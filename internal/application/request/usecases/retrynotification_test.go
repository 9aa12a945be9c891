package usecases

import (
	"context"
	"fmt"
	"testing"

	"certhub/internal/domain/notification"
	"certhub/internal/domain/request"
	vo "certhub/internal/domain/request/valueobjects"
	"certhub/internal/shared/errors"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRetryNotificationUseCase_Execute_RedeliversStoredArtifact(t *testing.T) {
	req := requestInStatus(t, vo.StatusNotificationFailed)
	requestRepo := &mockRequestRepository{
		GetByIDFunc: func(ctx context.Context, requestID uint) (*request.Request, error) {
			return req, nil
		},
	}
	dispatcher := &mockDispatcher{}
	uc := NewRetryNotificationUseCase(requestRepo, &mockArtifactStore{}, dispatcher, &mockLogger{})

	result, err := uc.Execute(context.Background(), RetryNotificationCommand{RequestID: 1})

	require.NoError(t, err)
	assert.True(t, result.Delivered)
	assert.Equal(t, vo.StatusIssued.String(), result.Status)
	assert.True(t, req.Status().IsIssued())
	require.Len(t, dispatcher.sent, 1)
	assert.Equal(t, notification.KindIssuance, dispatcher.sent[0].Kind)
	assert.Equal(t, "/tmp/artifacts/OFSHDG2026001.pdf", dispatcher.sent[0].Attachment)
}

func TestRetryNotificationUseCase_Execute_FailedRetryKeepsStatus(t *testing.T) {
	req := requestInStatus(t, vo.StatusNotificationFailed)
	requestRepo := &mockRequestRepository{
		GetByIDFunc: func(ctx context.Context, requestID uint) (*request.Request, error) {
			return req, nil
		},
	}
	dispatcher := &mockDispatcher{
		SendFunc: func(ctx context.Context, msg notification.Message) error {
			return fmt.Errorf("smtp timeout")
		},
	}
	uc := NewRetryNotificationUseCase(requestRepo, &mockArtifactStore{}, dispatcher, &mockLogger{})

	result, err := uc.Execute(context.Background(), RetryNotificationCommand{RequestID: 1})

	require.NoError(t, err)
	assert.False(t, result.Delivered)
	assert.True(t, req.Status().IsNotificationFailed())
}

func TestRetryNotificationUseCase_Execute_ManualResendWhenIssued(t *testing.T) {
	req := requestInStatus(t, vo.StatusIssued)
	requestRepo := &mockRequestRepository{
		GetByIDFunc: func(ctx context.Context, requestID uint) (*request.Request, error) {
			return req, nil
		},
		UpdateWithStatusGuardFunc: func(ctx context.Context, r *request.Request, expected ...vo.RequestStatus) error {
			t.Fatal("a manual resend of an issued request must not touch the row")
			return nil
		},
	}
	dispatcher := &mockDispatcher{}
	uc := NewRetryNotificationUseCase(requestRepo, &mockArtifactStore{}, dispatcher, &mockLogger{})

	result, err := uc.Execute(context.Background(), RetryNotificationCommand{RequestID: 1})

	require.NoError(t, err)
	assert.True(t, result.Delivered)
	assert.True(t, req.Status().IsIssued())
}

func TestRetryNotificationUseCase_Execute_RejectsStatesWithoutFailedDelivery(t *testing.T) {
	for _, status := range []vo.RequestStatus{vo.StatusPending, vo.StatusRejected, vo.StatusGenerationFailed} {
		t.Run(status.String(), func(t *testing.T) {
			req := requestInStatus(t, status)
			requestRepo := &mockRequestRepository{
				GetByIDFunc: func(ctx context.Context, requestID uint) (*request.Request, error) {
					return req, nil
				},
			}
			uc := NewRetryNotificationUseCase(requestRepo, &mockArtifactStore{}, &mockDispatcher{}, &mockLogger{})

			result, err := uc.Execute(context.Background(), RetryNotificationCommand{RequestID: 1})

			require.Error(t, err)
			assert.Nil(t, result)
			appErr := errors.GetAppError(err)
			require.NotNil(t, appErr)
			assert.Equal(t, errors.ErrorTypeConflict, appErr.Type)
		})
	}
}
