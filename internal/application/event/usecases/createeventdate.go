package usecases

import (
	"context"
	"strings"
	"time"

	"certhub/internal/domain/event"
	"certhub/internal/shared/errors"
	"certhub/internal/shared/logger"
)

type CreateEventDateCommand struct {
	InstitutionID uint
	Name          string
	Date          time.Time
	Theme         string
	CreatedBy     uint
}

type CreateEventDateResult struct {
	EventDateID uint
	Name        string
}

type CreateEventDateUseCase struct {
	institutionRepo event.InstitutionRepository
	eventDateRepo   event.EventDateRepository
	logger          logger.Interface
}

func NewCreateEventDateUseCase(
	institutionRepo event.InstitutionRepository,
	eventDateRepo event.EventDateRepository,
	logger logger.Interface,
) *CreateEventDateUseCase {
	return &CreateEventDateUseCase{
		institutionRepo: institutionRepo,
		eventDateRepo:   eventDateRepo,
		logger:          logger,
	}
}

func (uc *CreateEventDateUseCase) Execute(ctx context.Context, cmd CreateEventDateCommand) (*CreateEventDateResult, error) {
	institution, err := uc.institutionRepo.GetByID(ctx, cmd.InstitutionID)
	if err != nil {
		return nil, err
	}
	if !institution.Active() {
		return nil, errors.NewConflictError("institution is not active")
	}

	eventDate, err := event.NewEventDate(cmd.InstitutionID, strings.TrimSpace(cmd.Name), cmd.Date, strings.TrimSpace(cmd.Theme), cmd.CreatedBy)
	if err != nil {
		return nil, errors.NewValidationError(err.Error())
	}

	if err := uc.eventDateRepo.Save(ctx, eventDate); err != nil {
		uc.logger.Errorw("failed to save event date", "institution_id", cmd.InstitutionID, "error", err)
		return nil, err
	}

	uc.logger.Infow("event date created",
		"event_date_id", eventDate.ID(),
		"institution_id", cmd.InstitutionID,
		"name", eventDate.Name())

	return &CreateEventDateResult{
		EventDateID: eventDate.ID(),
		Name:        eventDate.Name(),
	}, nil
}
