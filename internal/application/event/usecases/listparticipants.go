package usecases

import (
	"context"
	"time"

	"certhub/internal/domain/event"
	"certhub/internal/shared/errors"
	"certhub/internal/shared/logger"
)

type ListParticipantsCommand struct {
	EventDateID uint
}

type ParticipantSummary struct {
	ID       uint
	FullName string
	Email    string
	AddedAt  time.Time
}

type ListParticipantsUseCase struct {
	participantRepo event.ParticipantRepository
	logger          logger.Interface
}

func NewListParticipantsUseCase(participantRepo event.ParticipantRepository, logger logger.Interface) *ListParticipantsUseCase {
	return &ListParticipantsUseCase{
		participantRepo: participantRepo,
		logger:          logger,
	}
}

func (uc *ListParticipantsUseCase) Execute(ctx context.Context, cmd ListParticipantsCommand) ([]ParticipantSummary, error) {
	if cmd.EventDateID == 0 {
		return nil, errors.NewValidationError("event date ID is required")
	}

	participants, err := uc.participantRepo.ListByEventDate(ctx, cmd.EventDateID)
	if err != nil {
		uc.logger.Errorw("failed to list participants", "event_date_id", cmd.EventDateID, "error", err)
		return nil, err
	}

	summaries := make([]ParticipantSummary, 0, len(participants))
	for _, participant := range participants {
		summaries = append(summaries, ParticipantSummary{
			ID:       participant.ID(),
			FullName: participant.FullName(),
			Email:    participant.Email(),
			AddedAt:  participant.AddedAt(),
		})
	}

	return summaries, nil
}
