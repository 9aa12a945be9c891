package usecases

import (
	"context"
	"time"

	"certhub/internal/domain/request"
	vo "certhub/internal/domain/request/valueobjects"
	"certhub/internal/domain/verification"
	"certhub/internal/infrastructure/ratelimit"
	"certhub/internal/shared/logger"
)

type mockRequestRepository struct {
	SearchIssuedFunc func(ctx context.Context, term string) (*request.Request, error)
}

func (m *mockRequestRepository) Save(ctx context.Context, req *request.Request) error   { return nil }
func (m *mockRequestRepository) Update(ctx context.Context, req *request.Request) error { return nil }
func (m *mockRequestRepository) UpdateWithStatusGuard(ctx context.Context, req *request.Request, expected ...vo.RequestStatus) error {
	return nil
}
func (m *mockRequestRepository) Delete(ctx context.Context, requestID uint) error { return nil }
func (m *mockRequestRepository) GetByID(ctx context.Context, requestID uint) (*request.Request, error) {
	return nil, nil
}
func (m *mockRequestRepository) GetByPublicID(ctx context.Context, publicID string) (*request.Request, error) {
	return nil, nil
}
func (m *mockRequestRepository) ExistsByPublicID(ctx context.Context, publicID string) (bool, error) {
	return false, nil
}
func (m *mockRequestRepository) FindDuplicate(ctx context.Context, requesterID uint, subjectRef string, statuses []vo.RequestStatus) (*request.Request, error) {
	return nil, nil
}
func (m *mockRequestRepository) List(ctx context.Context, filter request.RequestFilter) ([]*request.Request, int64, error) {
	return nil, 0, nil
}
func (m *mockRequestRepository) FindByStatusSince(ctx context.Context, status vo.RequestStatus, since time.Time, limit int) ([]*request.Request, error) {
	return nil, nil
}

func (m *mockRequestRepository) SearchIssued(ctx context.Context, term string) (*request.Request, error) {
	if m.SearchIssuedFunc != nil {
		return m.SearchIssuedFunc(ctx, term)
	}
	return nil, nil
}

type mockLogRepository struct {
	AppendFunc          func(ctx context.Context, entry *verification.LogEntry) error
	ListFunc            func(ctx context.Context, filter verification.LogFilter, page, pageSize int) ([]*verification.LogEntry, int64, error)
	DeleteOlderThanFunc func(ctx context.Context, cutoff time.Time) (int64, error)
	appended            []*verification.LogEntry
}

func (m *mockLogRepository) Append(ctx context.Context, entry *verification.LogEntry) error {
	m.appended = append(m.appended, entry)
	if m.AppendFunc != nil {
		return m.AppendFunc(ctx, entry)
	}
	return nil
}

func (m *mockLogRepository) List(ctx context.Context, filter verification.LogFilter, page, pageSize int) ([]*verification.LogEntry, int64, error) {
	if m.ListFunc != nil {
		return m.ListFunc(ctx, filter, page, pageSize)
	}
	return nil, 0, nil
}

func (m *mockLogRepository) DeleteOlderThan(ctx context.Context, cutoff time.Time) (int64, error) {
	if m.DeleteOlderThanFunc != nil {
		return m.DeleteOlderThanFunc(ctx, cutoff)
	}
	return 0, nil
}

type mockRateLimiter struct {
	CheckAndRecordFunc func(ctx context.Context, identifier, action string, max int, window time.Duration) (ratelimit.Result, error)
	ResetFunc          func(ctx context.Context, identifier, action string) error
}

func (m *mockRateLimiter) CheckAndRecord(ctx context.Context, identifier, action string, max int, window time.Duration) (ratelimit.Result, error) {
	if m.CheckAndRecordFunc != nil {
		return m.CheckAndRecordFunc(ctx, identifier, action, max, window)
	}
	return ratelimit.Result{Allowed: true, Remaining: int64(max - 1)}, nil
}

func (m *mockRateLimiter) Reset(ctx context.Context, identifier, action string) error {
	if m.ResetFunc != nil {
		return m.ResetFunc(ctx, identifier, action)
	}
	return nil
}

type mockLogger struct {
	WarnwFunc  func(msg string, keysAndValues ...interface{})
	ErrorwFunc func(msg string, keysAndValues ...interface{})
}

func (m *mockLogger) Debug(msg string, args ...any)                   {}
func (m *mockLogger) Info(msg string, args ...any)                    {}
func (m *mockLogger) Warn(msg string, args ...any)                    {}
func (m *mockLogger) Error(msg string, args ...any)                   {}
func (m *mockLogger) With(args ...any) logger.Interface               { return m }
func (m *mockLogger) Named(name string) logger.Interface              { return m }
func (m *mockLogger) Debugw(msg string, keysAndValues ...interface{}) {}
func (m *mockLogger) Infow(msg string, keysAndValues ...interface{})  {}

func (m *mockLogger) Warnw(msg string, keysAndValues ...interface{}) {
	if m.WarnwFunc != nil {
		m.WarnwFunc(msg, keysAndValues...)
	}
}

func (m *mockLogger) Errorw(msg string, keysAndValues ...interface{}) {
	if m.ErrorwFunc != nil {
		m.ErrorwFunc(msg, keysAndValues...)
	}
}
