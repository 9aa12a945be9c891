package usecases

import (
	"context"

	"certhub/internal/domain/certificate"
	"certhub/internal/domain/request"
	"certhub/internal/shared/errors"
	"certhub/internal/shared/logger"
)

type DeleteRequestCommand struct {
	RequestID uint
}

// DeleteRequestUseCase removes a rejected request and its stored artifact,
// if any. Only rejected requests may be purged; issued certificates are
// permanent records.
type DeleteRequestUseCase struct {
	requestRepo request.RequestRepository
	artifacts   certificate.ArtifactStore
	logger      logger.Interface
}

func NewDeleteRequestUseCase(
	requestRepo request.RequestRepository,
	artifacts certificate.ArtifactStore,
	logger logger.Interface,
) *DeleteRequestUseCase {
	return &DeleteRequestUseCase{
		requestRepo: requestRepo,
		artifacts:   artifacts,
		logger:      logger,
	}
}

func (uc *DeleteRequestUseCase) Execute(ctx context.Context, cmd DeleteRequestCommand) error {
	uc.logger.Infow("executing delete request use case", "request_id", cmd.RequestID)

	if cmd.RequestID == 0 {
		return errors.NewValidationError("request ID is required")
	}

	req, err := uc.requestRepo.GetByID(ctx, cmd.RequestID)
	if err != nil {
		return err
	}

	if !req.Status().IsRejected() {
		return errors.NewConflictError("only rejected requests may be deleted")
	}

	if err := uc.requestRepo.Delete(ctx, req.ID()); err != nil {
		uc.logger.Errorw("failed to delete request", "request_id", req.ID(), "error", err)
		return err
	}

	if ref := req.ArtifactRef(); ref != nil {
		if err := uc.artifacts.Remove(*ref); err != nil {
			uc.logger.Warnw("failed to remove artifact for deleted request",
				"request_id", req.ID(),
				"artifact", *ref,
				"error", err)
		}
	}

	uc.logger.Infow("request deleted", "request_id", req.ID())
	return nil
}
