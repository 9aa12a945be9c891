package usecases

import (
	"context"
	"crypto/subtle"
	"strings"

	"certhub/internal/domain/certificate"
	"certhub/internal/domain/request"
	vo "certhub/internal/domain/request/valueobjects"
	"certhub/internal/shared/errors"
	"certhub/internal/shared/logger"
)

type DownloadArtifactCommand struct {
	PublicID string
	Token    string
}

type DownloadArtifactResult struct {
	FilePath string
	Filename string
}

// DownloadArtifactUseCase serves rendered certificate files. Access requires
// the per-artifact token except for records issued before tokens existed,
// which are served with a flagged log entry rather than denied.
type DownloadArtifactUseCase struct {
	requestRepo request.RequestRepository
	artifacts   certificate.ArtifactStore
	logger      logger.Interface
}

func NewDownloadArtifactUseCase(
	requestRepo request.RequestRepository,
	artifacts certificate.ArtifactStore,
	logger logger.Interface,
) *DownloadArtifactUseCase {
	return &DownloadArtifactUseCase{
		requestRepo: requestRepo,
		artifacts:   artifacts,
		logger:      logger,
	}
}

func (uc *DownloadArtifactUseCase) Execute(ctx context.Context, cmd DownloadArtifactCommand) (*DownloadArtifactResult, error) {
	publicID := strings.TrimSpace(cmd.PublicID)
	if publicID == "" {
		return nil, errors.NewValidationError("public ID is required")
	}

	req, err := uc.requestRepo.GetByPublicID(ctx, publicID)
	if err != nil {
		return nil, err
	}

	if req.Status() != vo.StatusIssued || !req.HasArtifact() {
		return nil, errors.NewNotFoundError("no certificate is available for this ID")
	}

	switch token := req.AccessToken(); {
	case token == nil:
		// Legacy record from before per-artifact tokens were stored.
		uc.logger.Warnw("serving artifact without token check",
			"public_id", publicID,
			"artifact_ref", *req.ArtifactRef())
	case subtle.ConstantTimeCompare([]byte(*token), []byte(cmd.Token)) != 1:
		return nil, errors.NewNotFoundError("no certificate is available for this ID")
	}

	path, err := uc.artifacts.Path(*req.ArtifactRef())
	if err != nil {
		uc.logger.Errorw("failed to resolve artifact path",
			"public_id", publicID,
			"artifact_ref", *req.ArtifactRef(),
			"error", err)
		return nil, errors.NewNotFoundError("certificate file is unavailable")
	}

	return &DownloadArtifactResult{
		FilePath: path,
		Filename: *req.ArtifactRef(),
	}, nil
}
