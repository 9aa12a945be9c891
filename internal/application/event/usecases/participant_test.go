package usecases

import (
	"context"
	"testing"

	"certhub/internal/domain/event"
	"certhub/internal/shared/errors"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAddParticipantUseCase_Execute_Success(t *testing.T) {
	var saved *event.Participant
	participantRepo := &mockParticipantRepository{
		SaveFunc: func(ctx context.Context, participant *event.Participant) error {
			saved = participant
			participant.SetID(21)
			return nil
		},
	}
	uc := NewAddParticipantUseCase(&mockEventDateRepository{}, participantRepo, &mockLogger{})

	result, err := uc.Execute(context.Background(), AddParticipantCommand{
		EventDateID: 11,
		FullName:    "  Ada Obi  ",
		Email:       " ada@example.com ",
		AddedBy:     9,
	})

	require.NoError(t, err)
	assert.Equal(t, uint(21), result.ParticipantID)
	require.NotNil(t, saved)
	assert.Equal(t, "Ada Obi", saved.FullName())
	assert.Equal(t, "ada@example.com", saved.Email())
}

func TestAddParticipantUseCase_Execute_DuplicateOnRoster(t *testing.T) {
	participantRepo := &mockParticipantRepository{
		ExistsOnRosterFunc: func(ctx context.Context, eventDateID uint, fullName string) (bool, error) {
			assert.Equal(t, "Ada Obi", fullName)
			return true, nil
		},
		SaveFunc: func(ctx context.Context, participant *event.Participant) error {
			t.Fatal("save must not be reached for a duplicate")
			return nil
		},
	}
	uc := NewAddParticipantUseCase(&mockEventDateRepository{}, participantRepo, &mockLogger{})

	result, err := uc.Execute(context.Background(), AddParticipantCommand{
		EventDateID: 11,
		FullName:    "Ada Obi",
		AddedBy:     9,
	})

	require.Error(t, err)
	assert.Nil(t, result)
	appErr := errors.GetAppError(err)
	require.NotNil(t, appErr)
	assert.Equal(t, errors.ErrorTypeConflict, appErr.Type)
}

func TestAddParticipantUseCase_Execute_BlankName(t *testing.T) {
	uc := NewAddParticipantUseCase(&mockEventDateRepository{}, &mockParticipantRepository{}, &mockLogger{})

	result, err := uc.Execute(context.Background(), AddParticipantCommand{
		EventDateID: 11,
		FullName:    "   ",
		AddedBy:     9,
	})

	require.Error(t, err)
	assert.Nil(t, result)
	appErr := errors.GetAppError(err)
	require.NotNil(t, appErr)
	assert.Equal(t, errors.ErrorTypeValidation, appErr.Type)
}
