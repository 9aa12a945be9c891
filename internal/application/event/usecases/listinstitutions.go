package usecases

import (
	"context"
	"time"

	"certhub/internal/domain/event"
	"certhub/internal/shared/logger"
)

type InstitutionSummary struct {
	ID        uint
	Name      string
	LogoURL   string
	Active    bool
	CreatedAt time.Time
}

type ListInstitutionsUseCase struct {
	institutionRepo event.InstitutionRepository
	logger          logger.Interface
}

func NewListInstitutionsUseCase(institutionRepo event.InstitutionRepository, logger logger.Interface) *ListInstitutionsUseCase {
	return &ListInstitutionsUseCase{
		institutionRepo: institutionRepo,
		logger:          logger,
	}
}

func (uc *ListInstitutionsUseCase) Execute(ctx context.Context) ([]InstitutionSummary, error) {
	institutions, err := uc.institutionRepo.ListActive(ctx)
	if err != nil {
		uc.logger.Errorw("failed to list institutions", "error", err)
		return nil, err
	}

	summaries := make([]InstitutionSummary, 0, len(institutions))
	for _, institution := range institutions {
		summaries = append(summaries, InstitutionSummary{
			ID:        institution.ID(),
			Name:      institution.Name(),
			LogoURL:   institution.LogoURL(),
			Active:    institution.Active(),
			CreatedAt: institution.CreatedAt(),
		})
	}

	return summaries, nil
}
