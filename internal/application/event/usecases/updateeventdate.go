package usecases

import (
	"context"

	"certhub/internal/domain/event"
	"certhub/internal/shared/errors"
	"certhub/internal/shared/logger"
)

type UpdateEventDateCommand struct {
	EventDateID uint
	Active      *bool
}

type UpdateEventDateUseCase struct {
	eventDateRepo event.EventDateRepository
	logger        logger.Interface
}

func NewUpdateEventDateUseCase(eventDateRepo event.EventDateRepository, logger logger.Interface) *UpdateEventDateUseCase {
	return &UpdateEventDateUseCase{
		eventDateRepo: eventDateRepo,
		logger:        logger,
	}
}

func (uc *UpdateEventDateUseCase) Execute(ctx context.Context, cmd UpdateEventDateCommand) error {
	if cmd.EventDateID == 0 {
		return errors.NewValidationError("event date ID is required")
	}

	eventDate, err := uc.eventDateRepo.GetByID(ctx, cmd.EventDateID)
	if err != nil {
		return err
	}

	if cmd.Active != nil {
		if *cmd.Active {
			eventDate.Activate()
		} else {
			eventDate.Deactivate()
		}
	}

	if err := uc.eventDateRepo.Update(ctx, eventDate); err != nil {
		uc.logger.Errorw("failed to update event date", "event_date_id", cmd.EventDateID, "error", err)
		return err
	}

	return nil
}
