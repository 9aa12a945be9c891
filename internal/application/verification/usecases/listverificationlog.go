package usecases

import (
	"context"
	"time"

	"certhub/internal/domain/verification"
	"certhub/internal/shared/errors"
	"certhub/internal/shared/logger"
)

type ListVerificationLogCommand struct {
	PublicID string
	Result   string
	Since    *time.Time
	Page     int
	PageSize int
}

type VerificationLogItem struct {
	ID         uint
	PublicID   string
	Method     string
	Query      string
	CallerIP   string
	CallerUser *uint
	Result     string
	VerifiedAt time.Time
}

type ListVerificationLogResult struct {
	Items    []VerificationLogItem
	Total    int64
	Page     int
	PageSize int
}

// ListVerificationLogUseCase serves the admin audit trail view.
type ListVerificationLogUseCase struct {
	logRepo verification.LogRepository
	logger  logger.Interface
}

func NewListVerificationLogUseCase(logRepo verification.LogRepository, logger logger.Interface) *ListVerificationLogUseCase {
	return &ListVerificationLogUseCase{
		logRepo: logRepo,
		logger:  logger,
	}
}

func (uc *ListVerificationLogUseCase) Execute(ctx context.Context, cmd ListVerificationLogCommand) (*ListVerificationLogResult, error) {
	filter := verification.LogFilter{}
	if cmd.PublicID != "" {
		filter.PublicID = &cmd.PublicID
	}
	if cmd.Result != "" {
		result := verification.Result(cmd.Result)
		if result != verification.ResultFound && result != verification.ResultNotFound {
			return nil, errors.NewValidationError("result must be found or not_found")
		}
		filter.Result = &result
	}
	filter.Since = cmd.Since

	page := cmd.Page
	if page < 1 {
		page = 1
	}
	pageSize := cmd.PageSize
	if pageSize < 1 {
		pageSize = 20
	}
	if pageSize > 100 {
		pageSize = 100
	}

	entries, total, err := uc.logRepo.List(ctx, filter, page, pageSize)
	if err != nil {
		uc.logger.Errorw("failed to list verification log", "error", err)
		return nil, err
	}

	items := make([]VerificationLogItem, 0, len(entries))
	for _, entry := range entries {
		items = append(items, VerificationLogItem{
			ID:         entry.ID(),
			PublicID:   entry.PublicID(),
			Method:     entry.Method(),
			Query:      entry.Query(),
			CallerIP:   entry.CallerIP(),
			CallerUser: entry.CallerUser(),
			Result:     string(entry.Result()),
			VerifiedAt: entry.VerifiedAt(),
		})
	}

	return &ListVerificationLogResult{
		Items:    items,
		Total:    total,
		Page:     page,
		PageSize: pageSize,
	}, nil
}
