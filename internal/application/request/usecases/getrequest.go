package usecases

import (
	"context"

	"certhub/internal/domain/request"
	"certhub/internal/shared/errors"
	"certhub/internal/shared/logger"
)

type GetRequestCommand struct {
	RequestID uint
	PublicID  string
}

type GetRequestResult struct {
	Summary        RequestSummary
	ProjectLink    string
	InstructorName string
	Phone          string
	ArtifactRef    string
	Version        int
}

type GetRequestUseCase struct {
	requestRepo request.RequestRepository
	logger      logger.Interface
}

func NewGetRequestUseCase(
	requestRepo request.RequestRepository,
	logger logger.Interface,
) *GetRequestUseCase {
	return &GetRequestUseCase{
		requestRepo: requestRepo,
		logger:      logger,
	}
}

func (uc *GetRequestUseCase) Execute(ctx context.Context, cmd GetRequestCommand) (*GetRequestResult, error) {
	var (
		req *request.Request
		err error
	)

	switch {
	case cmd.RequestID != 0:
		req, err = uc.requestRepo.GetByID(ctx, cmd.RequestID)
	case cmd.PublicID != "":
		req, err = uc.requestRepo.GetByPublicID(ctx, cmd.PublicID)
	default:
		return nil, errors.NewValidationError("a request ID or public ID is required")
	}
	if err != nil {
		return nil, err
	}

	result := &GetRequestResult{
		Summary:        toSummary(req),
		ProjectLink:    req.ProjectLink(),
		InstructorName: req.InstructorName(),
		Phone:          req.Contact().Phone,
		Version:        req.Version(),
	}
	if ref := req.ArtifactRef(); ref != nil {
		result.ArtifactRef = *ref
	}

	return result, nil
}
