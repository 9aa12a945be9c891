package usecases

import (
	"context"

	"certhub/internal/domain/notification"
	"certhub/internal/domain/request"
	"certhub/internal/shared/errors"
	"certhub/internal/shared/logger"
)

type RejectRequestCommand struct {
	RequestID uint
	Reason    string
	DecidedBy uint
}

type RejectRequestResult struct {
	RequestID uint
	PublicID  string
	Status    string
}

// RejectRequestUseCase declines a request. The rejection notification is
// fire-and-forget relative to the state transition.
type RejectRequestUseCase struct {
	requestRepo request.RequestRepository
	dispatcher  notification.Dispatcher
	logger      logger.Interface
}

func NewRejectRequestUseCase(
	requestRepo request.RequestRepository,
	dispatcher notification.Dispatcher,
	logger logger.Interface,
) *RejectRequestUseCase {
	return &RejectRequestUseCase{
		requestRepo: requestRepo,
		dispatcher:  dispatcher,
		logger:      logger,
	}
}

func (uc *RejectRequestUseCase) Execute(ctx context.Context, cmd RejectRequestCommand) (*RejectRequestResult, error) {
	uc.logger.Infow("executing reject request use case",
		"request_id", cmd.RequestID,
		"decided_by", cmd.DecidedBy)

	if cmd.RequestID == 0 {
		return nil, errors.NewValidationError("request ID is required")
	}
	if cmd.Reason == "" {
		return nil, errors.NewValidationError("rejection reason is required")
	}
	if cmd.DecidedBy == 0 {
		return nil, errors.NewValidationError("deciding user ID is required")
	}

	req, err := uc.requestRepo.GetByID(ctx, cmd.RequestID)
	if err != nil {
		return nil, err
	}

	priorStatus := req.Status()
	if err := req.Reject(cmd.Reason, cmd.DecidedBy); err != nil {
		return nil, errors.NewConflictError(err.Error())
	}

	if err := uc.requestRepo.UpdateWithStatusGuard(ctx, req, priorStatus); err != nil {
		return nil, err
	}

	if err := uc.dispatcher.Send(ctx, notification.Message{
		Kind:      notification.KindRejection,
		Recipient: req.Contact().Email,
		Fields: map[string]string{
			"name":         req.Contact().FullName(),
			"subject_name": displaySubject(req),
			"reason":       cmd.Reason,
		},
	}); err != nil {
		uc.logger.Warnw("failed to send rejection notice",
			"request_id", req.ID(),
			"error", err)
	}

	uc.logger.Infow("request rejected", "request_id", req.ID())

	return &RejectRequestResult{
		RequestID: req.ID(),
		PublicID:  req.PublicID(),
		Status:    req.Status().String(),
	}, nil
}
