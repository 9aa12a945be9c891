package usecases

import (
	"context"
	"strings"

	"certhub/internal/domain/event"
	"certhub/internal/shared/errors"
	"certhub/internal/shared/logger"
)

type CreateInstitutionCommand struct {
	Name      string
	LogoURL   string
	CreatedBy uint
}

type CreateInstitutionResult struct {
	InstitutionID uint
	Name          string
}

type CreateInstitutionUseCase struct {
	institutionRepo event.InstitutionRepository
	logger          logger.Interface
}

func NewCreateInstitutionUseCase(institutionRepo event.InstitutionRepository, logger logger.Interface) *CreateInstitutionUseCase {
	return &CreateInstitutionUseCase{
		institutionRepo: institutionRepo,
		logger:          logger,
	}
}

func (uc *CreateInstitutionUseCase) Execute(ctx context.Context, cmd CreateInstitutionCommand) (*CreateInstitutionResult, error) {
	name := strings.TrimSpace(cmd.Name)

	institution, err := event.NewInstitution(name, cmd.LogoURL, cmd.CreatedBy)
	if err != nil {
		return nil, errors.NewValidationError(err.Error())
	}

	if err := uc.institutionRepo.Save(ctx, institution); err != nil {
		uc.logger.Errorw("failed to save institution", "name", name, "error", err)
		return nil, err
	}

	uc.logger.Infow("institution created", "institution_id", institution.ID(), "name", name)

	return &CreateInstitutionResult{
		InstitutionID: institution.ID(),
		Name:          institution.Name(),
	}, nil
}
