package usecases

import (
	"context"
	"time"

	"certhub/internal/domain/event"
	"certhub/internal/shared/logger"
)

type mockInstitutionRepository struct {
	SaveFunc       func(ctx context.Context, institution *event.Institution) error
	UpdateFunc     func(ctx context.Context, institution *event.Institution) error
	DeleteFunc     func(ctx context.Context, institutionID uint) error
	GetByIDFunc    func(ctx context.Context, institutionID uint) (*event.Institution, error)
	ListActiveFunc func(ctx context.Context) ([]*event.Institution, error)
}

func (m *mockInstitutionRepository) Save(ctx context.Context, institution *event.Institution) error {
	if m.SaveFunc != nil {
		return m.SaveFunc(ctx, institution)
	}
	return nil
}

func (m *mockInstitutionRepository) Update(ctx context.Context, institution *event.Institution) error {
	if m.UpdateFunc != nil {
		return m.UpdateFunc(ctx, institution)
	}
	return nil
}

func (m *mockInstitutionRepository) Delete(ctx context.Context, institutionID uint) error {
	if m.DeleteFunc != nil {
		return m.DeleteFunc(ctx, institutionID)
	}
	return nil
}

func (m *mockInstitutionRepository) GetByID(ctx context.Context, institutionID uint) (*event.Institution, error) {
	if m.GetByIDFunc != nil {
		return m.GetByIDFunc(ctx, institutionID)
	}
	return activeInstitution(institutionID), nil
}

func (m *mockInstitutionRepository) ListActive(ctx context.Context) ([]*event.Institution, error) {
	if m.ListActiveFunc != nil {
		return m.ListActiveFunc(ctx)
	}
	return nil, nil
}

type mockEventDateRepository struct {
	SaveFunc                    func(ctx context.Context, eventDate *event.EventDate) error
	UpdateFunc                  func(ctx context.Context, eventDate *event.EventDate) error
	DeleteFunc                  func(ctx context.Context, eventDateID uint) error
	GetByIDFunc                 func(ctx context.Context, eventDateID uint) (*event.EventDate, error)
	ListActiveByInstitutionFunc func(ctx context.Context, institutionID uint) ([]*event.EventDate, error)
}

func (m *mockEventDateRepository) Save(ctx context.Context, eventDate *event.EventDate) error {
	if m.SaveFunc != nil {
		return m.SaveFunc(ctx, eventDate)
	}
	return nil
}

func (m *mockEventDateRepository) Update(ctx context.Context, eventDate *event.EventDate) error {
	if m.UpdateFunc != nil {
		return m.UpdateFunc(ctx, eventDate)
	}
	return nil
}

func (m *mockEventDateRepository) Delete(ctx context.Context, eventDateID uint) error {
	if m.DeleteFunc != nil {
		return m.DeleteFunc(ctx, eventDateID)
	}
	return nil
}

func (m *mockEventDateRepository) GetByID(ctx context.Context, eventDateID uint) (*event.EventDate, error) {
	if m.GetByIDFunc != nil {
		return m.GetByIDFunc(ctx, eventDateID)
	}
	return activeEventDate(eventDateID, 3), nil
}

func (m *mockEventDateRepository) ListActiveByInstitution(ctx context.Context, institutionID uint) ([]*event.EventDate, error) {
	if m.ListActiveByInstitutionFunc != nil {
		return m.ListActiveByInstitutionFunc(ctx, institutionID)
	}
	return nil, nil
}

type mockParticipantRepository struct {
	SaveFunc             func(ctx context.Context, participant *event.Participant) error
	DeleteFunc           func(ctx context.Context, participantID uint) error
	ListByEventDateFunc  func(ctx context.Context, eventDateID uint) ([]*event.Participant, error)
	ExistsOnRosterFunc   func(ctx context.Context, eventDateID uint, fullName string) (bool, error)
	RemoveFromRosterFunc func(ctx context.Context, eventDateID uint, fullName string) (int64, error)
}

func (m *mockParticipantRepository) Save(ctx context.Context, participant *event.Participant) error {
	if m.SaveFunc != nil {
		return m.SaveFunc(ctx, participant)
	}
	return nil
}

func (m *mockParticipantRepository) Delete(ctx context.Context, participantID uint) error {
	if m.DeleteFunc != nil {
		return m.DeleteFunc(ctx, participantID)
	}
	return nil
}

func (m *mockParticipantRepository) ListByEventDate(ctx context.Context, eventDateID uint) ([]*event.Participant, error) {
	if m.ListByEventDateFunc != nil {
		return m.ListByEventDateFunc(ctx, eventDateID)
	}
	return nil, nil
}

func (m *mockParticipantRepository) ExistsOnRoster(ctx context.Context, eventDateID uint, fullName string) (bool, error) {
	if m.ExistsOnRosterFunc != nil {
		return m.ExistsOnRosterFunc(ctx, eventDateID, fullName)
	}
	return false, nil
}

func (m *mockParticipantRepository) RemoveFromRoster(ctx context.Context, eventDateID uint, fullName string) (int64, error) {
	if m.RemoveFromRosterFunc != nil {
		return m.RemoveFromRosterFunc(ctx, eventDateID, fullName)
	}
	return 0, nil
}

type mockLogger struct{}

func (m *mockLogger) Debug(msg string, args ...any)                   {}
func (m *mockLogger) Info(msg string, args ...any)                    {}
func (m *mockLogger) Warn(msg string, args ...any)                    {}
func (m *mockLogger) Error(msg string, args ...any)                   {}
func (m *mockLogger) With(args ...any) logger.Interface               { return m }
func (m *mockLogger) Named(name string) logger.Interface              { return m }
func (m *mockLogger) Debugw(msg string, keysAndValues ...interface{}) {}
func (m *mockLogger) Infow(msg string, keysAndValues ...interface{})  {}
func (m *mockLogger) Warnw(msg string, keysAndValues ...interface{})  {}
func (m *mockLogger) Errorw(msg string, keysAndValues ...interface{}) {}

func activeInstitution(id uint) *event.Institution {
	return event.ReconstructInstitution(id, "Unity College", "", true, time.Now().UTC(), 1)
}

func inactiveInstitution(id uint) *event.Institution {
	return event.ReconstructInstitution(id, "Unity College", "", false, time.Now().UTC(), 1)
}

func activeEventDate(id, institutionID uint) *event.EventDate {
	return event.ReconstructEventDate(id, institutionID, "Convocation", time.Now().UTC(), "Class of 2026", true, time.Now().UTC(), 1)
}
