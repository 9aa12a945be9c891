package usecases

import (
	"context"

	"certhub/internal/domain/event"
	"certhub/internal/shared/errors"
	"certhub/internal/shared/logger"
)

type DeleteEventDateCommand struct {
	EventDateID uint
}

// DeleteEventDateUseCase removes an event date along with its roster.
type DeleteEventDateUseCase struct {
	eventDateRepo   event.EventDateRepository
	participantRepo event.ParticipantRepository
	logger          logger.Interface
}

func NewDeleteEventDateUseCase(
	eventDateRepo event.EventDateRepository,
	participantRepo event.ParticipantRepository,
	logger logger.Interface,
) *DeleteEventDateUseCase {
	return &DeleteEventDateUseCase{
		eventDateRepo:   eventDateRepo,
		participantRepo: participantRepo,
		logger:          logger,
	}
}

func (uc *DeleteEventDateUseCase) Execute(ctx context.Context, cmd DeleteEventDateCommand) error {
	if cmd.EventDateID == 0 {
		return errors.NewValidationError("event date ID is required")
	}

	if _, err := uc.eventDateRepo.GetByID(ctx, cmd.EventDateID); err != nil {
		return err
	}

	participants, err := uc.participantRepo.ListByEventDate(ctx, cmd.EventDateID)
	if err != nil {
		return err
	}
	for _, participant := range participants {
		if err := uc.participantRepo.Delete(ctx, participant.ID()); err != nil {
			uc.logger.Errorw("failed to delete participant",
				"participant_id", participant.ID(),
				"event_date_id", cmd.EventDateID,
				"error", err)
			return err
		}
	}

	if err := uc.eventDateRepo.Delete(ctx, cmd.EventDateID); err != nil {
		uc.logger.Errorw("failed to delete event date", "event_date_id", cmd.EventDateID, "error", err)
		return err
	}

	uc.logger.Infow("event date deleted", "event_date_id", cmd.EventDateID, "participants_removed", len(participants))
	return nil
}
