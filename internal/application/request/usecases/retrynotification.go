package usecases

import (
	"context"

	"certhub/internal/domain/certificate"
	"certhub/internal/domain/notification"
	"certhub/internal/domain/request"
	"certhub/internal/shared/errors"
	"certhub/internal/shared/logger"
)

type RetryNotificationCommand struct {
	RequestID uint
}

type RetryNotificationResult struct {
	RequestID uint
	PublicID  string
	Status    string
	Delivered bool
}

// RetryNotificationUseCase re-sends the issuance notification using the
// stored artifact. It never re-renders; a request without an artifact cannot
// take this path. Valid from notification_failed, or from issued for a
// manual resend.
type RetryNotificationUseCase struct {
	requestRepo request.RequestRepository
	artifacts   certificate.ArtifactStore
	dispatcher  notification.Dispatcher
	logger      logger.Interface
}

func NewRetryNotificationUseCase(
	requestRepo request.RequestRepository,
	artifacts certificate.ArtifactStore,
	dispatcher notification.Dispatcher,
	logger logger.Interface,
) *RetryNotificationUseCase {
	return &RetryNotificationUseCase{
		requestRepo: requestRepo,
		artifacts:   artifacts,
		dispatcher:  dispatcher,
		logger:      logger,
	}
}

func (uc *RetryNotificationUseCase) Execute(ctx context.Context, cmd RetryNotificationCommand) (*RetryNotificationResult, error) {
	uc.logger.Infow("executing retry notification use case", "request_id", cmd.RequestID)

	if cmd.RequestID == 0 {
		return nil, errors.NewValidationError("request ID is required")
	}

	req, err := uc.requestRepo.GetByID(ctx, cmd.RequestID)
	if err != nil {
		return nil, err
	}

	status := req.Status()
	if !status.IsNotificationFailed() && !status.IsIssued() {
		return nil, errors.NewConflictError("request has no failed delivery to retry")
	}
	if !req.HasArtifact() {
		return nil, errors.NewConflictError("request has no stored artifact")
	}

	path, err := uc.artifacts.Path(*req.ArtifactRef())
	if err != nil {
		return nil, errors.NewNotificationFailedError(err.Error())
	}

	sendErr := uc.dispatcher.Send(ctx, notification.Message{
		Kind:      notification.KindIssuance,
		Recipient: req.Contact().Email,
		Fields: map[string]string{
			"name":         req.Contact().FullName(),
			"subject_name": displaySubject(req),
			"public_id":    req.PublicID(),
		},
		Attachment: path,
	})
	if sendErr != nil {
		uc.logger.Warnw("delivery retry failed",
			"request_id", req.ID(),
			"error", sendErr)
		return &RetryNotificationResult{
			RequestID: req.ID(),
			PublicID:  req.PublicID(),
			Status:    req.Status().String(),
			Delivered: false,
		}, nil
	}

	if status.IsNotificationFailed() {
		if err := req.ConfirmDelivery(); err != nil {
			return nil, errors.NewInternalError(err.Error())
		}
		if err := uc.requestRepo.UpdateWithStatusGuard(ctx, req, status); err != nil {
			return nil, err
		}
	}

	uc.logger.Infow("certificate delivered", "request_id", req.ID())

	return &RetryNotificationResult{
		RequestID: req.ID(),
		PublicID:  req.PublicID(),
		Status:    req.Status().String(),
		Delivered: true,
	}, nil
}
