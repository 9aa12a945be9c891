package usecases

import (
	"context"
	"strings"

	"certhub/internal/domain/event"
	"certhub/internal/shared/errors"
	"certhub/internal/shared/logger"
)

type UpdateInstitutionCommand struct {
	InstitutionID uint
	Name          *string
	Active        *bool
}

type UpdateInstitutionUseCase struct {
	institutionRepo event.InstitutionRepository
	logger          logger.Interface
}

func NewUpdateInstitutionUseCase(institutionRepo event.InstitutionRepository, logger logger.Interface) *UpdateInstitutionUseCase {
	return &UpdateInstitutionUseCase{
		institutionRepo: institutionRepo,
		logger:          logger,
	}
}

func (uc *UpdateInstitutionUseCase) Execute(ctx context.Context, cmd UpdateInstitutionCommand) error {
	if cmd.InstitutionID == 0 {
		return errors.NewValidationError("institution ID is required")
	}

	institution, err := uc.institutionRepo.GetByID(ctx, cmd.InstitutionID)
	if err != nil {
		return err
	}

	if cmd.Name != nil {
		if err := institution.Rename(strings.TrimSpace(*cmd.Name)); err != nil {
			return errors.NewValidationError(err.Error())
		}
	}
	if cmd.Active != nil {
		if *cmd.Active {
			institution.Activate()
		} else {
			institution.Deactivate()
		}
	}

	if err := uc.institutionRepo.Update(ctx, institution); err != nil {
		uc.logger.Errorw("failed to update institution", "institution_id", cmd.InstitutionID, "error", err)
		return err
	}

	return nil
}
