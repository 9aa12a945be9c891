package usecases

import (
	"context"
	"testing"
	"time"

	"certhub/internal/domain/otp"
	"certhub/internal/shared/errors"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func liveCode() *otp.Code {
	now := time.Now().UTC()
	return otp.ReconstructCode(1, "482913", "ada@example.com", 11, "203.0.113.9", false, now.Add(-time.Minute), now.Add(9*time.Minute))
}

func TestVerifyOTPUseCase_Execute_ConsumesMatchingCode(t *testing.T) {
	code := liveCode()
	var updated *otp.Code
	codeRepo := &mockCodeRepository{
		FindMatchFunc: func(ctx context.Context, email, value string, eventDateID uint, now time.Time) (*otp.Code, error) {
			assert.Equal(t, "ada@example.com", email)
			assert.Equal(t, "482913", value)
			assert.Equal(t, uint(11), eventDateID)
			return code, nil
		},
		UpdateFunc: func(ctx context.Context, c *otp.Code) error {
			updated = c
			return nil
		},
	}
	uc := NewVerifyOTPUseCase(codeRepo, &mockLogger{})

	result, err := uc.Execute(context.Background(), VerifyOTPCommand{
		Email:       "ada@example.com",
		Code:        "482913",
		EventDateID: 11,
	})

	require.NoError(t, err)
	assert.True(t, result.Verified)
	require.NotNil(t, updated)
	assert.True(t, updated.Consumed())
}

func TestVerifyOTPUseCase_Execute_LostConsumptionRaceRejected(t *testing.T) {
	code := liveCode()
	codeRepo := &mockCodeRepository{
		FindMatchFunc: func(ctx context.Context, email, value string, eventDateID uint, now time.Time) (*otp.Code, error) {
			return code, nil
		},
		UpdateFunc: func(ctx context.Context, c *otp.Code) error {
			// Another verification consumed the code between the
			// lookup and the write.
			return otp.ErrCodeAlreadyConsumed
		},
	}
	uc := NewVerifyOTPUseCase(codeRepo, &mockLogger{})

	result, err := uc.Execute(context.Background(), VerifyOTPCommand{
		Email:       "ada@example.com",
		Code:        "482913",
		EventDateID: 11,
	})

	require.Error(t, err)
	assert.Nil(t, result)
	appErr := errors.GetAppError(err)
	require.NotNil(t, appErr)
	assert.Equal(t, errors.ErrorTypeValidation, appErr.Type)
	assert.Contains(t, appErr.Message, "expired")
}

func TestVerifyOTPUseCase_Execute_ConsumedCodeNeverVerifiesAgain(t *testing.T) {
	now := time.Now().UTC()
	consumed := otp.ReconstructCode(1, "482913", "ada@example.com", 11, "", true, now.Add(-time.Minute), now.Add(9*time.Minute))
	codeRepo := &mockCodeRepository{
		FindLatestFunc: func(ctx context.Context, email, value string, eventDateID uint) (*otp.Code, error) {
			return consumed, nil
		},
	}
	uc := NewVerifyOTPUseCase(codeRepo, &mockLogger{})

	result, err := uc.Execute(context.Background(), VerifyOTPCommand{
		Email:       "ada@example.com",
		Code:        "482913",
		EventDateID: 11,
	})

	require.Error(t, err)
	assert.Nil(t, result)
	appErr := errors.GetAppError(err)
	require.NotNil(t, appErr)
	assert.Contains(t, appErr.Message, "expired")
}

func TestVerifyOTPUseCase_Execute_ExpiredCode(t *testing.T) {
	now := time.Now().UTC()
	expired := otp.ReconstructCode(1, "482913", "ada@example.com", 11, "", false, now.Add(-20*time.Minute), now.Add(-10*time.Minute))
	codeRepo := &mockCodeRepository{
		FindLatestFunc: func(ctx context.Context, email, value string, eventDateID uint) (*otp.Code, error) {
			return expired, nil
		},
	}
	uc := NewVerifyOTPUseCase(codeRepo, &mockLogger{})

	result, err := uc.Execute(context.Background(), VerifyOTPCommand{
		Email:       "ada@example.com",
		Code:        "482913",
		EventDateID: 11,
	})

	require.Error(t, err)
	assert.Nil(t, result)
	appErr := errors.GetAppError(err)
	require.NotNil(t, appErr)
	assert.Contains(t, appErr.Message, "expired")
}

func TestVerifyOTPUseCase_Execute_CodeNeverExisted(t *testing.T) {
	uc := NewVerifyOTPUseCase(&mockCodeRepository{}, &mockLogger{})

	result, err := uc.Execute(context.Background(), VerifyOTPCommand{
		Email:       "ada@example.com",
		Code:        "000000",
		EventDateID: 11,
	})

	require.Error(t, err)
	assert.Nil(t, result)
	appErr := errors.GetAppError(err)
	require.NotNil(t, appErr)
	assert.Equal(t, "invalid verification code", appErr.Message)
}

func TestVerifyOTPUseCase_Execute_ValidationErrors(t *testing.T) {
	tests := []struct {
		name string
		cmd  VerifyOTPCommand
	}{
		{name: "missing email", cmd: VerifyOTPCommand{Code: "482913", EventDateID: 11}},
		{name: "missing code", cmd: VerifyOTPCommand{Email: "ada@example.com", EventDateID: 11}},
		{name: "missing event date", cmd: VerifyOTPCommand{Email: "ada@example.com", Code: "482913"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			uc := NewVerifyOTPUseCase(&mockCodeRepository{}, &mockLogger{})

			result, err := uc.Execute(context.Background(), tt.cmd)

			require.Error(t, err)
			assert.Nil(t, result)
			appErr := errors.GetAppError(err)
			require.NotNil(t, appErr)
			assert.Equal(t, errors.ErrorTypeValidation, appErr.Type)
		})
	}
}

func TestCleanupCodesJob_Execute(t *testing.T) {
	var cutoff time.Time
	codeRepo := &mockCodeRepository{
		DeleteOlderThanFunc: func(ctx context.Context, c time.Time) (int64, error) {
			cutoff = c
			return 7, nil
		},
	}
	job := NewCleanupCodesJob(codeRepo, &mockLogger{})

	removed, err := job.Execute(context.Background())

	require.NoError(t, err)
	assert.Equal(t, 7, removed)
	assert.True(t, cutoff.Before(time.Now().UTC()))
}
