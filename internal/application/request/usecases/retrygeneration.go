package usecases

import (
	"context"
	"time"

	"certhub/internal/shared/errors"
	"certhub/internal/shared/logger"
)

type RetryGenerationCommand struct {
	RequestID uint
	// CompletionDate optionally overrides the stored completion date. Zero
	// means keep whatever the original approval recorded.
	CompletionDate time.Time
	DecidedBy      uint
}

// RetryGenerationUseCase re-enters the approval pipeline for a request whose
// render failed (or, administratively, one that is notification_failed or
// rejected and needs full reprocessing). Re-rendering overwrites the previous
// artifact reference.
type RetryGenerationUseCase struct {
	approveUC *ApproveRequestUseCase
	logger    logger.Interface
}

func NewRetryGenerationUseCase(
	approveUC *ApproveRequestUseCase,
	logger logger.Interface,
) *RetryGenerationUseCase {
	return &RetryGenerationUseCase{
		approveUC: approveUC,
		logger:    logger,
	}
}

func (uc *RetryGenerationUseCase) Execute(ctx context.Context, cmd RetryGenerationCommand) (*ApproveRequestResult, error) {
	uc.logger.Infow("executing retry generation use case", "request_id", cmd.RequestID)

	if cmd.RequestID == 0 {
		return nil, errors.NewValidationError("request ID is required")
	}

	completionDate := cmd.CompletionDate
	if completionDate.IsZero() {
		req, err := uc.approveUC.requestRepo.GetByID(ctx, cmd.RequestID)
		if err != nil {
			return nil, err
		}
		if req.CompletionDate() == nil {
			return nil, errors.NewValidationError("completion date is required for a request that was never approved")
		}
		completionDate = *req.CompletionDate()
	}

	return uc.approveUC.Execute(ctx, ApproveRequestCommand{
		RequestID:      cmd.RequestID,
		CompletionDate: completionDate,
		DecidedBy:      cmd.DecidedBy,
	})
}
