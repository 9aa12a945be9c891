package usecases

import (
	"context"
	"testing"
	"time"

	"certhub/internal/domain/request"
	vo "certhub/internal/domain/request/valueobjects"
	"certhub/internal/domain/verification"
	"certhub/internal/infrastructure/ratelimit"
	"certhub/internal/shared/errors"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func issuedRequest(t *testing.T) *request.Request {
	subject, err := vo.NewCourseSubject(7, "Intro to Welding")
	require.NoError(t, err)
	ref := "OFSHDG2026001.pdf"
	date := time.Date(2026, 6, 1, 0, 0, 0, 0, time.UTC)
	req, err := request.ReconstructRequest(
		1, "OFSHDG2026001", 42,
		subject,
		request.Contact{FirstName: "Ada", LastName: "Obi", Email: "ada@example.com", Phone: "+2348030000000"},
		"", "", nil, &date,
		vo.StatusIssued, nil, &ref, nil,
		time.Now().UTC().Add(-time.Hour), nil, nil, 2,
	)
	require.NoError(t, err)
	return req
}

func verifyCommand(query string) VerifyPublicCommand {
	return VerifyPublicCommand{
		Query:       query,
		CallerIP:    "203.0.113.9",
		MaxAttempts: 20,
		Window:      10 * time.Minute,
	}
}

func TestVerifyPublicUseCase_Execute_Found(t *testing.T) {
	requestRepo := &mockRequestRepository{
		SearchIssuedFunc: func(ctx context.Context, term string) (*request.Request, error) {
			assert.Equal(t, "OFSHDG2026001", term)
			return issuedRequest(t), nil
		},
	}
	logRepo := &mockLogRepository{}
	uc := NewVerifyPublicUseCase(requestRepo, logRepo, &mockRateLimiter{}, &mockLogger{})

	result, err := uc.Execute(context.Background(), verifyCommand("  OFSHDG2026001  "))

	require.NoError(t, err)
	assert.True(t, result.Found)
	assert.Equal(t, "OFSHDG2026001", result.PublicID)
	assert.Equal(t, "Ada Obi", result.RecipientName)
	assert.Equal(t, "Intro to Welding", result.SubjectName)
	assert.Equal(t, "course", result.IssuedFor)
	assert.NotEmpty(t, result.CompletionDate)

	require.Len(t, logRepo.appended, 1)
	entry := logRepo.appended[0]
	assert.Equal(t, verification.ResultFound, entry.Result())
	assert.Equal(t, "OFSHDG2026001", entry.PublicID())
	assert.Equal(t, "public_id", entry.Method())
	assert.Equal(t, "203.0.113.9", entry.CallerIP())
}

func TestVerifyPublicUseCase_Execute_NotFoundIsStillAudited(t *testing.T) {
	logRepo := &mockLogRepository{}
	uc := NewVerifyPublicUseCase(&mockRequestRepository{}, logRepo, &mockRateLimiter{}, &mockLogger{})

	result, err := uc.Execute(context.Background(), verifyCommand("nobody@example.com"))

	require.NoError(t, err)
	assert.False(t, result.Found)
	assert.Empty(t, result.PublicID)

	require.Len(t, logRepo.appended, 1)
	entry := logRepo.appended[0]
	assert.Equal(t, verification.ResultNotFound, entry.Result())
	assert.Equal(t, "email", entry.Method())
	assert.Empty(t, entry.PublicID())
}

func TestVerifyPublicUseCase_Execute_FullNameMethod(t *testing.T) {
	logRepo := &mockLogRepository{}
	uc := NewVerifyPublicUseCase(&mockRequestRepository{}, logRepo, &mockRateLimiter{}, &mockLogger{})

	_, err := uc.Execute(context.Background(), verifyCommand("Ada Obi"))

	require.NoError(t, err)
	require.Len(t, logRepo.appended, 1)
	assert.Equal(t, "full_name", logRepo.appended[0].Method())
}

func TestVerifyPublicUseCase_Execute_RateLimited(t *testing.T) {
	limiter := &mockRateLimiter{
		CheckAndRecordFunc: func(ctx context.Context, identifier, action string, max int, window time.Duration) (ratelimit.Result, error) {
			assert.Equal(t, "203.0.113.9", identifier)
			assert.Equal(t, "verify", action)
			return ratelimit.Result{Allowed: false, RetryAfter: 90 * time.Second}, nil
		},
	}
	logRepo := &mockLogRepository{}
	uc := NewVerifyPublicUseCase(&mockRequestRepository{}, logRepo, limiter, &mockLogger{})

	result, err := uc.Execute(context.Background(), verifyCommand("OFSHDG2026001"))

	require.Error(t, err)
	assert.Nil(t, result)
	appErr := errors.GetAppError(err)
	require.NotNil(t, appErr)
	assert.Equal(t, errors.ErrorTypeRateLimited, appErr.Type)
	assert.Contains(t, appErr.Details, "90")
	// A throttled attempt never reaches the search, so nothing is audited.
	assert.Empty(t, logRepo.appended)
}

func TestVerifyPublicUseCase_Execute_LimiterUnavailable(t *testing.T) {
	limiter := &mockRateLimiter{
		CheckAndRecordFunc: func(ctx context.Context, identifier, action string, max int, window time.Duration) (ratelimit.Result, error) {
			return ratelimit.Result{}, assert.AnError
		},
	}
	uc := NewVerifyPublicUseCase(&mockRequestRepository{}, &mockLogRepository{}, limiter, &mockLogger{})

	result, err := uc.Execute(context.Background(), verifyCommand("OFSHDG2026001"))

	require.Error(t, err)
	assert.Nil(t, result)
	appErr := errors.GetAppError(err)
	require.NotNil(t, appErr)
	assert.Equal(t, errors.ErrorTypeStorageUnavailable, appErr.Type)
}

func TestVerifyPublicUseCase_Execute_BlankQuery(t *testing.T) {
	uc := NewVerifyPublicUseCase(&mockRequestRepository{}, &mockLogRepository{}, &mockRateLimiter{}, &mockLogger{})

	result, err := uc.Execute(context.Background(), verifyCommand("   "))

	require.Error(t, err)
	assert.Nil(t, result)
	appErr := errors.GetAppError(err)
	require.NotNil(t, appErr)
	assert.Equal(t, errors.ErrorTypeValidation, appErr.Type)
}

func TestVerifyPublicUseCase_Execute_AuditFailureDoesNotBlockResult(t *testing.T) {
	logRepo := &mockLogRepository{
		AppendFunc: func(ctx context.Context, entry *verification.LogEntry) error {
			return assert.AnError
		},
	}
	requestRepo := &mockRequestRepository{
		SearchIssuedFunc: func(ctx context.Context, term string) (*request.Request, error) {
			return issuedRequest(t), nil
		},
	}
	uc := NewVerifyPublicUseCase(requestRepo, logRepo, &mockRateLimiter{}, &mockLogger{})

	result, err := uc.Execute(context.Background(), verifyCommand("OFSHDG2026001"))

	require.NoError(t, err)
	assert.True(t, result.Found)
}

func TestListVerificationLogUseCase_Execute_InvalidResultFilter(t *testing.T) {
	uc := NewListVerificationLogUseCase(&mockLogRepository{}, &mockLogger{})

	result, err := uc.Execute(context.Background(), ListVerificationLogCommand{Result: "maybe"})

	require.Error(t, err)
	assert.Nil(t, result)
}

func TestListVerificationLogUseCase_Execute_PaginationDefaults(t *testing.T) {
	var gotPage, gotPageSize int
	logRepo := &mockLogRepository{
		ListFunc: func(ctx context.Context, filter verification.LogFilter, page, pageSize int) ([]*verification.LogEntry, int64, error) {
			gotPage = page
			gotPageSize = pageSize
			return nil, 0, nil
		},
	}
	uc := NewListVerificationLogUseCase(logRepo, &mockLogger{})

	result, err := uc.Execute(context.Background(), ListVerificationLogCommand{Page: 0, PageSize: 500})

	require.NoError(t, err)
	assert.Equal(t, 1, gotPage)
	assert.Equal(t, 100, gotPageSize)
	assert.Equal(t, 1, result.Page)
	assert.Equal(t, 100, result.PageSize)
}
