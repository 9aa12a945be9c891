package usecases

import (
	"context"

	"certhub/internal/domain/event"
	"certhub/internal/shared/errors"
	"certhub/internal/shared/logger"
)

type RemoveParticipantCommand struct {
	ParticipantID uint
}

type RemoveParticipantUseCase struct {
	participantRepo event.ParticipantRepository
	logger          logger.Interface
}

func NewRemoveParticipantUseCase(participantRepo event.ParticipantRepository, logger logger.Interface) *RemoveParticipantUseCase {
	return &RemoveParticipantUseCase{
		participantRepo: participantRepo,
		logger:          logger,
	}
}

func (uc *RemoveParticipantUseCase) Execute(ctx context.Context, cmd RemoveParticipantCommand) error {
	if cmd.ParticipantID == 0 {
		return errors.NewValidationError("participant ID is required")
	}

	if err := uc.participantRepo.Delete(ctx, cmd.ParticipantID); err != nil {
		uc.logger.Errorw("failed to remove participant", "participant_id", cmd.ParticipantID, "error", err)
		return err
	}

	return nil
}
