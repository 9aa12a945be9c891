package usecases

import (
	"context"
	"time"

	"certhub/internal/domain/certificate"
	"certhub/internal/domain/event"
	"certhub/internal/domain/notification"
	"certhub/internal/domain/request"
	vo "certhub/internal/domain/request/valueobjects"
	"certhub/internal/domain/setting"
	"certhub/internal/shared/biztime"
	"certhub/internal/shared/errors"
	"certhub/internal/shared/logger"
)

// Approval outcomes. NotificationFailed is a partial success the caller must
// surface, not an error: the certificate exists and will be redelivered.
const (
	OutcomeIssued             = "issued"
	OutcomeNotificationFailed = "notification_failed"
	OutcomeGenerationFailed   = "generation_failed"
)

type ApproveRequestCommand struct {
	RequestID      uint
	CompletionDate time.Time
	DecidedBy      uint
}

type ApproveRequestResult struct {
	RequestID     uint
	PublicID      string
	Outcome       string
	Status        string
	ArtifactRef   string
	FailureDetail string
}

// ApproveRequestUseCase runs the generate-then-notify pipeline: record the
// decision, render the certificate, deliver it, and clean up the event roster.
// Render failure parks the request in generation_failed without attempting
// delivery; delivery failure keeps the artifact and parks it in
// notification_failed.
type ApproveRequestUseCase struct {
	requestRepo     request.RequestRepository
	institutionRepo event.InstitutionRepository
	eventDateRepo   event.EventDateRepository
	participantRepo event.ParticipantRepository
	renderer        certificate.Renderer
	artifacts       certificate.ArtifactStore
	dispatcher      notification.Dispatcher
	provider        setting.SettingProvider
	logger          logger.Interface
}

func NewApproveRequestUseCase(
	requestRepo request.RequestRepository,
	institutionRepo event.InstitutionRepository,
	eventDateRepo event.EventDateRepository,
	participantRepo event.ParticipantRepository,
	renderer certificate.Renderer,
	artifacts certificate.ArtifactStore,
	dispatcher notification.Dispatcher,
	provider setting.SettingProvider,
	logger logger.Interface,
) *ApproveRequestUseCase {
	return &ApproveRequestUseCase{
		requestRepo:     requestRepo,
		institutionRepo: institutionRepo,
		eventDateRepo:   eventDateRepo,
		participantRepo: participantRepo,
		renderer:        renderer,
		artifacts:       artifacts,
		dispatcher:      dispatcher,
		provider:        provider,
		logger:          logger,
	}
}

func (uc *ApproveRequestUseCase) Execute(ctx context.Context, cmd ApproveRequestCommand) (*ApproveRequestResult, error) {
	uc.logger.Infow("executing approve request use case",
		"request_id", cmd.RequestID,
		"decided_by", cmd.DecidedBy)

	if err := uc.validateCommand(cmd); err != nil {
		return nil, err
	}

	req, err := uc.requestRepo.GetByID(ctx, cmd.RequestID)
	if err != nil {
		return nil, err
	}

	if req.Status().IsIssued() {
		return nil, errors.NewConflictError("request is already issued")
	}

	priorStatus := req.Status()
	if err := req.BeginApproval(cmd.CompletionDate, cmd.DecidedBy); err != nil {
		return nil, errors.NewConflictError(err.Error())
	}

	// The guard pins the row to its pre-approval status. A concurrent
	// approve or reject loses exactly one of the two races.
	if err := uc.requestRepo.UpdateWithStatusGuard(ctx, req, priorStatus); err != nil {
		return nil, err
	}

	return uc.processApproved(ctx, req)
}

// processApproved renders and delivers a request already persisted in the
// approved state. Shared with the generation retry path.
func (uc *ApproveRequestUseCase) processApproved(ctx context.Context, req *request.Request) (*ApproveRequestResult, error) {
	kind, fields, err := uc.buildRenderInput(ctx, req)
	if err != nil {
		return uc.failGeneration(ctx, req, err.Error())
	}

	artifact, err := uc.renderer.Render(ctx, kind, req.PublicID(), fields)
	if err != nil {
		uc.logger.Errorw("certificate render failed",
			"request_id", req.ID(),
			"error", err)
		return uc.failGeneration(ctx, req, err.Error())
	}

	if err := req.AttachArtifact(artifact.Filename, artifact.AccessToken); err != nil {
		return nil, errors.NewInternalError(err.Error())
	}

	deliveryErr := uc.deliver(ctx, req, fields)

	if deliveryErr != nil {
		if err := req.MarkNotificationFailed(deliveryErr.Error()); err != nil {
			return nil, errors.NewInternalError(err.Error())
		}
	} else {
		if err := req.MarkIssued(); err != nil {
			return nil, errors.NewInternalError(err.Error())
		}
	}

	if err := uc.requestRepo.UpdateWithStatusGuard(ctx, req, vo.StatusApproved); err != nil {
		return nil, err
	}

	uc.cleanupRoster(ctx, req)
	uc.notifyVendor(ctx, req, fields)

	result := &ApproveRequestResult{
		RequestID:   req.ID(),
		PublicID:    req.PublicID(),
		Status:      req.Status().String(),
		ArtifactRef: artifact.Filename,
	}
	if deliveryErr != nil {
		result.Outcome = OutcomeNotificationFailed
		result.FailureDetail = deliveryErr.Error()
		uc.logger.Warnw("certificate issued but delivery failed",
			"request_id", req.ID(),
			"error", deliveryErr)
	} else {
		result.Outcome = OutcomeIssued
		uc.logger.Infow("certificate issued",
			"request_id", req.ID(),
			"public_id", req.PublicID())
	}

	return result, nil
}

func (uc *ApproveRequestUseCase) validateCommand(cmd ApproveRequestCommand) error {
	if cmd.RequestID == 0 {
		return errors.NewValidationError("request ID is required")
	}
	if cmd.CompletionDate.IsZero() {
		return errors.NewValidationError("completion date is required")
	}
	if cmd.DecidedBy == 0 {
		return errors.NewValidationError("deciding user ID is required")
	}
	return nil
}

func (uc *ApproveRequestUseCase) failGeneration(ctx context.Context, req *request.Request, detail string) (*ApproveRequestResult, error) {
	if err := req.MarkGenerationFailed(detail); err != nil {
		return nil, errors.NewInternalError(err.Error())
	}
	if err := uc.requestRepo.UpdateWithStatusGuard(ctx, req, vo.StatusApproved); err != nil {
		return nil, err
	}

	var failureDetail string
	if fd := req.FailureDetail(); fd != nil {
		failureDetail = *fd
	}

	return &ApproveRequestResult{
		RequestID:     req.ID(),
		PublicID:      req.PublicID(),
		Outcome:       OutcomeGenerationFailed,
		Status:        req.Status().String(),
		FailureDetail: failureDetail,
	}, nil
}

// buildRenderInput resolves the template kind and field values by subject
// kind. Event subjects pull institution and event names from their repos.
func (uc *ApproveRequestUseCase) buildRenderInput(ctx context.Context, req *request.Request) (certificate.TemplateKind, certificate.Fields, error) {
	subject := req.Subject()

	fields := certificate.Fields{
		RecipientName: req.Contact().FullName(),
		PublicID:      req.PublicID(),
		CompanyName:   uc.provider.GetCompanyName(ctx),
	}
	if req.CompletionDate() != nil {
		fields.CompletionDate = biztime.FormatDisplayDate(*req.CompletionDate())
	}

	if subject.Kind().IsCourse() {
		fields.SubjectName = subject.ProductName()
		fields.InstructorName = req.InstructorName()
		return certificate.TemplateCourse, fields, nil
	}

	eventDate, err := uc.eventDateRepo.GetByID(ctx, subject.EventDateID())
	if err != nil {
		return "", certificate.Fields{}, err
	}
	institution, err := uc.institutionRepo.GetByID(ctx, subject.InstitutionID())
	if err != nil {
		return "", certificate.Fields{}, err
	}

	fields.SubjectName = eventDate.Name()
	if eventDate.Theme() != "" {
		fields.SubjectName = eventDate.Name() + ": " + eventDate.Theme()
	}
	fields.InstructorName = institution.Name()
	return certificate.TemplateEvent, fields, nil
}

func (uc *ApproveRequestUseCase) deliver(ctx context.Context, req *request.Request, fields certificate.Fields) error {
	attachment := ""
	if ref := req.ArtifactRef(); ref != nil {
		path, err := uc.artifacts.Path(*ref)
		if err != nil {
			return err
		}
		attachment = path
	}

	return uc.dispatcher.Send(ctx, notification.Message{
		Kind:      notification.KindIssuance,
		Recipient: req.Contact().Email,
		Fields: map[string]string{
			"name":         fields.RecipientName,
			"subject_name": fields.SubjectName,
			"public_id":    req.PublicID(),
		},
		Attachment: attachment,
	})
}

// cleanupRoster removes the recipient from the event roster after issuance.
// Best effort; failures never alter the request state.
func (uc *ApproveRequestUseCase) cleanupRoster(ctx context.Context, req *request.Request) {
	subject := req.Subject()
	if !subject.Kind().IsEvent() {
		return
	}

	removed, err := uc.participantRepo.RemoveFromRoster(ctx, subject.EventDateID(), req.Contact().FullName())
	if err != nil {
		uc.logger.Warnw("failed to remove participant from roster",
			"request_id", req.ID(),
			"event_date_id", subject.EventDateID(),
			"error", err)
		return
	}
	if removed > 0 {
		uc.logger.Debugw("participant removed from roster",
			"request_id", req.ID(),
			"removed", removed)
	}
}

// notifyVendor tells the associated vendor a certificate was issued for their
// product. Fire-and-forget.
func (uc *ApproveRequestUseCase) notifyVendor(ctx context.Context, req *request.Request, fields certificate.Fields) {
	vendorEmail := uc.vendorEmail(ctx, req)
	if vendorEmail == "" {
		return
	}

	if err := uc.dispatcher.Send(ctx, notification.Message{
		Kind:      notification.KindVendorAlert,
		Recipient: vendorEmail,
		Fields: map[string]string{
			"name":         fields.RecipientName,
			"subject_name": fields.SubjectName,
		},
	}); err != nil {
		uc.logger.Warnw("failed to notify vendor",
			"request_id", req.ID(),
			"error", err)
	}
}

func (uc *ApproveRequestUseCase) vendorEmail(ctx context.Context, req *request.Request) string {
	if req.VendorID() == nil {
		return ""
	}
	// Vendor contact routing goes through the support address until vendor
	// accounts carry their own notification preferences.
	return uc.provider.GetSupportEmail(ctx)
}
