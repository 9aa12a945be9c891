package event

import "context"

type InstitutionRepository interface {
	Save(ctx context.Context, institution *Institution) error
	Update(ctx context.Context, institution *Institution) error
	Delete(ctx context.Context, institutionID uint) error
	GetByID(ctx context.Context, institutionID uint) (*Institution, error)
	ListActive(ctx context.Context) ([]*Institution, error)
}

type EventDateRepository interface {
	Save(ctx context.Context, eventDate *EventDate) error
	Update(ctx context.Context, eventDate *EventDate) error
	Delete(ctx context.Context, eventDateID uint) error
	GetByID(ctx context.Context, eventDateID uint) (*EventDate, error)
	ListActiveByInstitution(ctx context.Context, institutionID uint) ([]*EventDate, error)
}

type ParticipantRepository interface {
	Save(ctx context.Context, participant *Participant) error
	Delete(ctx context.Context, participantID uint) error
	ListByEventDate(ctx context.Context, eventDateID uint) ([]*Participant, error)
	// ExistsOnRoster matches case-insensitively on the trimmed full name
	// within one event date.
	ExistsOnRoster(ctx context.Context, eventDateID uint, fullName string) (bool, error)
	// RemoveFromRoster deletes roster entries matching the full name
	// (case-insensitive) for the event date. Returns rows removed.
	RemoveFromRoster(ctx context.Context, eventDateID uint, fullName string) (int64, error)
}
