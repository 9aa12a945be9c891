package usecases

import (
	"context"
	"strings"

	"certhub/internal/domain/event"
	"certhub/internal/shared/errors"
	"certhub/internal/shared/logger"
)

type AddParticipantCommand struct {
	EventDateID uint
	FullName    string
	Email       string
	AddedBy     uint
}

type AddParticipantResult struct {
	ParticipantID uint
}

type AddParticipantUseCase struct {
	eventDateRepo   event.EventDateRepository
	participantRepo event.ParticipantRepository
	logger          logger.Interface
}

func NewAddParticipantUseCase(
	eventDateRepo event.EventDateRepository,
	participantRepo event.ParticipantRepository,
	logger logger.Interface,
) *AddParticipantUseCase {
	return &AddParticipantUseCase{
		eventDateRepo:   eventDateRepo,
		participantRepo: participantRepo,
		logger:          logger,
	}
}

func (uc *AddParticipantUseCase) Execute(ctx context.Context, cmd AddParticipantCommand) (*AddParticipantResult, error) {
	fullName := strings.TrimSpace(cmd.FullName)

	if _, err := uc.eventDateRepo.GetByID(ctx, cmd.EventDateID); err != nil {
		return nil, err
	}

	// Roster names are matched case-insensitively at eligibility time, so
	// duplicates differing only in case are rejected here.
	exists, err := uc.participantRepo.ExistsOnRoster(ctx, cmd.EventDateID, fullName)
	if err != nil {
		return nil, err
	}
	if exists {
		return nil, errors.NewConflictError("participant is already on the roster")
	}

	participant, err := event.NewParticipant(cmd.EventDateID, fullName, strings.TrimSpace(cmd.Email), cmd.AddedBy)
	if err != nil {
		return nil, errors.NewValidationError(err.Error())
	}

	if err := uc.participantRepo.Save(ctx, participant); err != nil {
		uc.logger.Errorw("failed to save participant", "event_date_id", cmd.EventDateID, "error", err)
		return nil, err
	}

	return &AddParticipantResult{ParticipantID: participant.ID()}, nil
}
