package usecases

import (
	"context"
	"testing"
	"time"

	"certhub/internal/domain/event"
	"certhub/internal/shared/errors"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCreateEventDateUseCase_Execute_Success(t *testing.T) {
	var saved *event.EventDate
	eventDateRepo := &mockEventDateRepository{
		SaveFunc: func(ctx context.Context, eventDate *event.EventDate) error {
			saved = eventDate
			eventDate.SetID(11)
			return nil
		},
	}
	uc := NewCreateEventDateUseCase(&mockInstitutionRepository{}, eventDateRepo, &mockLogger{})

	result, err := uc.Execute(context.Background(), CreateEventDateCommand{
		InstitutionID: 3,
		Name:          " Convocation ",
		Date:          time.Date(2026, 11, 20, 0, 0, 0, 0, time.UTC),
		Theme:         "Class of 2026",
		CreatedBy:     9,
	})

	require.NoError(t, err)
	assert.Equal(t, uint(11), result.EventDateID)
	assert.Equal(t, "Convocation", result.Name)
	require.NotNil(t, saved)
	assert.True(t, saved.Active())
	assert.Equal(t, "Class of 2026", saved.Theme())
}

func TestCreateEventDateUseCase_Execute_InactiveInstitution(t *testing.T) {
	institutionRepo := &mockInstitutionRepository{
		GetByIDFunc: func(ctx context.Context, institutionID uint) (*event.Institution, error) {
			return inactiveInstitution(institutionID), nil
		},
	}
	uc := NewCreateEventDateUseCase(institutionRepo, &mockEventDateRepository{}, &mockLogger{})

	result, err := uc.Execute(context.Background(), CreateEventDateCommand{
		InstitutionID: 3,
		Name:          "Convocation",
		Date:          time.Date(2026, 11, 20, 0, 0, 0, 0, time.UTC),
		CreatedBy:     9,
	})

	require.Error(t, err)
	assert.Nil(t, result)
	appErr := errors.GetAppError(err)
	require.NotNil(t, appErr)
	assert.Equal(t, errors.ErrorTypeConflict, appErr.Type)
}

func TestCreateEventDateUseCase_Execute_MissingDate(t *testing.T) {
	uc := NewCreateEventDateUseCase(&mockInstitutionRepository{}, &mockEventDateRepository{}, &mockLogger{})

	result, err := uc.Execute(context.Background(), CreateEventDateCommand{
		InstitutionID: 3,
		Name:          "Convocation",
		CreatedBy:     9,
	})

	require.Error(t, err)
	assert.Nil(t, result)
	appErr := errors.GetAppError(err)
	require.NotNil(t, appErr)
	assert.Equal(t, errors.ErrorTypeValidation, appErr.Type)
}

func TestDeleteEventDateUseCase_Execute_RemovesRosterFirst(t *testing.T) {
	roster := []*event.Participant{
		event.ReconstructParticipant(21, 11, "Ada Obi", "ada@example.com", time.Now().UTC(), 9),
		event.ReconstructParticipant(22, 11, "Chinedu Okeke", "", time.Now().UTC(), 9),
	}
	var deletedParticipants []uint
	eventDateDeleted := false
	participantRepo := &mockParticipantRepository{
		ListByEventDateFunc: func(ctx context.Context, eventDateID uint) ([]*event.Participant, error) {
			return roster, nil
		},
		DeleteFunc: func(ctx context.Context, participantID uint) error {
			assert.False(t, eventDateDeleted, "roster entries must be removed before the event date")
			deletedParticipants = append(deletedParticipants, participantID)
			return nil
		},
	}
	eventDateRepo := &mockEventDateRepository{
		DeleteFunc: func(ctx context.Context, eventDateID uint) error {
			eventDateDeleted = true
			return nil
		},
	}
	uc := NewDeleteEventDateUseCase(eventDateRepo, participantRepo, &mockLogger{})

	err := uc.Execute(context.Background(), DeleteEventDateCommand{EventDateID: 11})

	require.NoError(t, err)
	assert.Equal(t, []uint{21, 22}, deletedParticipants)
	assert.True(t, eventDateDeleted)
}
