package usecases

import (
	"context"
	"time"

	"certhub/internal/domain/request"
	vo "certhub/internal/domain/request/valueobjects"
	"certhub/internal/shared/errors"
	"certhub/internal/shared/logger"
)

type ListRequestsCommand struct {
	Status      string
	SubjectKind string
	RequesterID uint
	VendorID    uint
	Page        int
	PageSize    int
	SortBy      string
	SortOrder   string
}

type RequestSummary struct {
	RequestID      uint
	PublicID       string
	RequesterID    uint
	SubjectKind    string
	SubjectName    string
	RecipientName  string
	Email          string
	Status         string
	FailureDetail  string
	CompletionDate *time.Time
	SubmittedAt    time.Time
	DecidedAt      *time.Time
}

type ListRequestsResult struct {
	Requests []RequestSummary
	Total    int64
	Page     int
	PageSize int
}

type ListRequestsUseCase struct {
	requestRepo request.RequestRepository
	logger      logger.Interface
}

func NewListRequestsUseCase(
	requestRepo request.RequestRepository,
	logger logger.Interface,
) *ListRequestsUseCase {
	return &ListRequestsUseCase{
		requestRepo: requestRepo,
		logger:      logger,
	}
}

func (uc *ListRequestsUseCase) Execute(ctx context.Context, cmd ListRequestsCommand) (*ListRequestsResult, error) {
	filter := request.RequestFilter{
		Page:      cmd.Page,
		PageSize:  cmd.PageSize,
		SortBy:    cmd.SortBy,
		SortOrder: cmd.SortOrder,
	}
	if filter.Page < 1 {
		filter.Page = 1
	}
	if filter.PageSize < 1 || filter.PageSize > 100 {
		filter.PageSize = 20
	}

	if cmd.Status != "" {
		status, err := vo.NewRequestStatus(cmd.Status)
		if err != nil {
			return nil, errors.NewValidationError(err.Error())
		}
		filter.Status = &status
	}
	if cmd.SubjectKind != "" {
		kind, err := vo.NewSubjectKind(cmd.SubjectKind)
		if err != nil {
			return nil, errors.NewValidationError(err.Error())
		}
		filter.Kind = &kind
	}
	if cmd.RequesterID != 0 {
		filter.RequesterID = &cmd.RequesterID
	}
	if cmd.VendorID != 0 {
		filter.VendorID = &cmd.VendorID
	}

	requests, total, err := uc.requestRepo.List(ctx, filter)
	if err != nil {
		uc.logger.Errorw("failed to list requests", "error", err)
		return nil, err
	}

	summaries := make([]RequestSummary, len(requests))
	for i, req := range requests {
		summaries[i] = toSummary(req)
	}

	return &ListRequestsResult{
		Requests: summaries,
		Total:    total,
		Page:     filter.Page,
		PageSize: filter.PageSize,
	}, nil
}

func toSummary(req *request.Request) RequestSummary {
	summary := RequestSummary{
		RequestID:      req.ID(),
		PublicID:       req.PublicID(),
		RequesterID:    req.RequesterID(),
		SubjectKind:    req.Subject().Kind().String(),
		SubjectName:    displaySubject(req),
		RecipientName:  req.Contact().FullName(),
		Email:          req.Contact().Email,
		Status:         req.Status().String(),
		CompletionDate: req.CompletionDate(),
		SubmittedAt:    req.SubmittedAt(),
		DecidedAt:      req.DecidedAt(),
	}
	if fd := req.FailureDetail(); fd != nil {
		summary.FailureDetail = *fd
	}
	return summary
}
