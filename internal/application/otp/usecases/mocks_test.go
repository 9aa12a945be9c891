package usecases

import (
	"context"
	"time"

	"certhub/internal/domain/event"
	"certhub/internal/domain/notification"
	"certhub/internal/domain/otp"
	"certhub/internal/shared/logger"
)

type mockCodeRepository struct {
	SaveFunc              func(ctx context.Context, code *otp.Code) error
	UpdateFunc            func(ctx context.Context, code *otp.Code) error
	CountCreatedSinceFunc func(ctx context.Context, email string, cutoff time.Time) (int64, error)
	FindMatchFunc         func(ctx context.Context, email, code string, eventDateID uint, now time.Time) (*otp.Code, error)
	FindLatestFunc        func(ctx context.Context, email, code string, eventDateID uint) (*otp.Code, error)
	DeleteOlderThanFunc   func(ctx context.Context, cutoff time.Time) (int64, error)
}

func (m *mockCodeRepository) Save(ctx context.Context, code *otp.Code) error {
	if m.SaveFunc != nil {
		return m.SaveFunc(ctx, code)
	}
	return nil
}

func (m *mockCodeRepository) Update(ctx context.Context, code *otp.Code) error {
	if m.UpdateFunc != nil {
		return m.UpdateFunc(ctx, code)
	}
	return nil
}

func (m *mockCodeRepository) CountCreatedSince(ctx context.Context, email string, cutoff time.Time) (int64, error) {
	if m.CountCreatedSinceFunc != nil {
		return m.CountCreatedSinceFunc(ctx, email, cutoff)
	}
	return 0, nil
}

func (m *mockCodeRepository) FindMatch(ctx context.Context, email, code string, eventDateID uint, now time.Time) (*otp.Code, error) {
	if m.FindMatchFunc != nil {
		return m.FindMatchFunc(ctx, email, code, eventDateID, now)
	}
	return nil, nil
}

func (m *mockCodeRepository) FindLatest(ctx context.Context, email, code string, eventDateID uint) (*otp.Code, error) {
	if m.FindLatestFunc != nil {
		return m.FindLatestFunc(ctx, email, code, eventDateID)
	}
	return nil, nil
}

func (m *mockCodeRepository) DeleteOlderThan(ctx context.Context, cutoff time.Time) (int64, error) {
	if m.DeleteOlderThanFunc != nil {
		return m.DeleteOlderThanFunc(ctx, cutoff)
	}
	return 0, nil
}

type mockEventDateRepository struct {
	GetByIDFunc func(ctx context.Context, eventDateID uint) (*event.EventDate, error)
}

func (m *mockEventDateRepository) Save(ctx context.Context, eventDate *event.EventDate) error {
	return nil
}

func (m *mockEventDateRepository) Update(ctx context.Context, eventDate *event.EventDate) error {
	return nil
}

func (m *mockEventDateRepository) Delete(ctx context.Context, eventDateID uint) error {
	return nil
}

func (m *mockEventDateRepository) GetByID(ctx context.Context, eventDateID uint) (*event.EventDate, error) {
	if m.GetByIDFunc != nil {
		return m.GetByIDFunc(ctx, eventDateID)
	}
	return event.ReconstructEventDate(eventDateID, 3, "Convocation", time.Now().UTC(), "", true, time.Now().UTC(), 1), nil
}

func (m *mockEventDateRepository) ListActiveByInstitution(ctx context.Context, institutionID uint) ([]*event.EventDate, error) {
	return nil, nil
}

type mockDispatcher struct {
	SendFunc func(ctx context.Context, msg notification.Message) error
	sent     []notification.Message
}

func (m *mockDispatcher) Send(ctx context.Context, msg notification.Message) error {
	m.sent = append(m.sent, msg)
	if m.SendFunc != nil {
		return m.SendFunc(ctx, msg)
	}
	return nil
}

type mockLogger struct {
	WarnwFunc  func(msg string, keysAndValues ...interface{})
	ErrorwFunc func(msg string, keysAndValues ...interface{})
}

func (m *mockLogger) Debug(msg string, args ...any)     {}
func (m *mockLogger) Info(msg string, args ...any)      {}
func (m *mockLogger) Warn(msg string, args ...any)      {}
func (m *mockLogger) Error(msg string, args ...any)     {}
func (m *mockLogger) With(args ...any) logger.Interface { return m }
func (m *mockLogger) Named(name string) logger.Interface {
	return m
}
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
