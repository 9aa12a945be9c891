package usecases

import (
	"context"
	"time"

	"certhub/internal/shared/errors"
	"certhub/internal/shared/logger"
)

type BulkApproveCommand struct {
	RequestIDs     []uint
	CompletionDate time.Time
	DecidedBy      uint
}

type BulkRejectCommand struct {
	RequestIDs []uint
	Reason     string
	DecidedBy  uint
}

// BulkDecideResult reports a per-batch success count. Individual failures do
// not stop the batch.
type BulkDecideResult struct {
	Succeeded int
	Failed    int
	Errors    map[uint]string
}

// BulkApproveUseCase approves many requests independently, continuing past
// individual failures.
type BulkApproveUseCase struct {
	approveUC *ApproveRequestUseCase
	logger    logger.Interface
}

func NewBulkApproveUseCase(approveUC *ApproveRequestUseCase, logger logger.Interface) *BulkApproveUseCase {
	return &BulkApproveUseCase{approveUC: approveUC, logger: logger}
}

func (uc *BulkApproveUseCase) Execute(ctx context.Context, cmd BulkApproveCommand) (*BulkDecideResult, error) {
	if len(cmd.RequestIDs) == 0 {
		return nil, errors.NewValidationError("at least one request ID is required")
	}

	result := &BulkDecideResult{Errors: make(map[uint]string)}
	for _, id := range cmd.RequestIDs {
		approveResult, err := uc.approveUC.Execute(ctx, ApproveRequestCommand{
			RequestID:      id,
			CompletionDate: cmd.CompletionDate,
			DecidedBy:      cmd.DecidedBy,
		})
		if err != nil {
			result.Failed++
			result.Errors[id] = err.Error()
			continue
		}
		if approveResult.Outcome == OutcomeGenerationFailed {
			result.Failed++
			result.Errors[id] = approveResult.FailureDetail
			continue
		}
		result.Succeeded++
	}

	uc.logger.Infow("bulk approve finished",
		"total", len(cmd.RequestIDs),
		"succeeded", result.Succeeded,
		"failed", result.Failed)

	return result, nil
}

// BulkRejectUseCase rejects many requests independently.
type BulkRejectUseCase struct {
	rejectUC *RejectRequestUseCase
	logger   logger.Interface
}

func NewBulkRejectUseCase(rejectUC *RejectRequestUseCase, logger logger.Interface) *BulkRejectUseCase {
	return &BulkRejectUseCase{rejectUC: rejectUC, logger: logger}
}

func (uc *BulkRejectUseCase) Execute(ctx context.Context, cmd BulkRejectCommand) (*BulkDecideResult, error) {
	if len(cmd.RequestIDs) == 0 {
		return nil, errors.NewValidationError("at least one request ID is required")
	}

	result := &BulkDecideResult{Errors: make(map[uint]string)}
	for _, id := range cmd.RequestIDs {
		if _, err := uc.rejectUC.Execute(ctx, RejectRequestCommand{
			RequestID: id,
			Reason:    cmd.Reason,
			DecidedBy: cmd.DecidedBy,
		}); err != nil {
			result.Failed++
			result.Errors[id] = err.Error()
			continue
		}
		result.Succeeded++
	}

	uc.logger.Infow("bulk reject finished",
		"total", len(cmd.RequestIDs),
		"succeeded", result.Succeeded,
		"failed", result.Failed)

	return result, nil
}
