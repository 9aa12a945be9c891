package usecases

import (
	"context"
	"time"

	"certhub/internal/domain/event"
	"certhub/internal/shared/errors"
	"certhub/internal/shared/logger"
)

type ListEventDatesCommand struct {
	InstitutionID uint
}

type EventDateSummary struct {
	ID            uint
	InstitutionID uint
	Name          string
	Date          time.Time
	Theme         string
	Active        bool
}

type ListEventDatesUseCase struct {
	eventDateRepo event.EventDateRepository
	logger        logger.Interface
}

func NewListEventDatesUseCase(eventDateRepo event.EventDateRepository, logger logger.Interface) *ListEventDatesUseCase {
	return &ListEventDatesUseCase{
		eventDateRepo: eventDateRepo,
		logger:        logger,
	}
}

func (uc *ListEventDatesUseCase) Execute(ctx context.Context, cmd ListEventDatesCommand) ([]EventDateSummary, error) {
	if cmd.InstitutionID == 0 {
		return nil, errors.NewValidationError("institution ID is required")
	}

	dates, err := uc.eventDateRepo.ListActiveByInstitution(ctx, cmd.InstitutionID)
	if err != nil {
		uc.logger.Errorw("failed to list event dates", "institution_id", cmd.InstitutionID, "error", err)
		return nil, err
	}

	summaries := make([]EventDateSummary, 0, len(dates))
	for _, date := range dates {
		summaries = append(summaries, EventDateSummary{
			ID:            date.ID(),
			InstitutionID: date.InstitutionID(),
			Name:          date.Name(),
			Date:          date.Date(),
			Theme:         date.Theme(),
			Active:        date.Active(),
		})
	}

	return summaries, nil
}
