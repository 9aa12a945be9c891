package usecases

import (
	"context"

	"certhub/internal/domain/event"
	"certhub/internal/shared/errors"
	"certhub/internal/shared/logger"
)

type DeleteInstitutionCommand struct {
	InstitutionID uint
}

// DeleteInstitutionUseCase removes an institution. Institutions with active
// event dates cannot be deleted; deactivate them instead.
type DeleteInstitutionUseCase struct {
	institutionRepo event.InstitutionRepository
	eventDateRepo   event.EventDateRepository
	logger          logger.Interface
}

func NewDeleteInstitutionUseCase(
	institutionRepo event.InstitutionRepository,
	eventDateRepo event.EventDateRepository,
	logger logger.Interface,
) *DeleteInstitutionUseCase {
	return &DeleteInstitutionUseCase{
		institutionRepo: institutionRepo,
		eventDateRepo:   eventDateRepo,
		logger:          logger,
	}
}

func (uc *DeleteInstitutionUseCase) Execute(ctx context.Context, cmd DeleteInstitutionCommand) error {
	if cmd.InstitutionID == 0 {
		return errors.NewValidationError("institution ID is required")
	}

	if _, err := uc.institutionRepo.GetByID(ctx, cmd.InstitutionID); err != nil {
		return err
	}

	dates, err := uc.eventDateRepo.ListActiveByInstitution(ctx, cmd.InstitutionID)
	if err != nil {
		return err
	}
	if len(dates) > 0 {
		return errors.NewConflictError("institution still has active event dates")
	}

	if err := uc.institutionRepo.Delete(ctx, cmd.InstitutionID); err != nil {
		uc.logger.Errorw("failed to delete institution", "institution_id", cmd.InstitutionID, "error", err)
		return err
	}

	uc.logger.Infow("institution deleted", "institution_id", cmd.InstitutionID)
	return nil
}
