package usecases

import (
	"context"
	"time"

	"certhub/internal/domain/eligibility"
	"certhub/internal/domain/event"
	"certhub/internal/domain/notification"
	"certhub/internal/domain/request"
	vo "certhub/internal/domain/request/valueobjects"
	"certhub/internal/domain/setting"
	"certhub/internal/shared/biztime"
	"certhub/internal/shared/errors"
	"certhub/internal/shared/logger"
)

type SubmitRequestCommand struct {
	RequesterID    uint
	SubjectKind    string
	ProductID      uint
	ProductName    string
	InstitutionID  uint
	EventDateID    uint
	FirstName      string
	LastName       string
	Email          string
	Phone          string
	ProjectLink    string
	InstructorName string
	VendorID       uint
}

type SubmitRequestResult struct {
	RequestID   uint
	PublicID    string
	Status      string
	SubmittedAt time.Time
}

// SubmitRequestUseCase creates a new certificate request. The duplicate
// check and the insert run in one transaction so concurrent submissions for
// the same subject cannot both pass the check; the two submission
// notifications are fire-and-forget.
type SubmitRequestUseCase struct {
	requestRepo     request.RequestRepository
	participantRepo event.ParticipantRepository
	eventDateRepo   event.EventDateRepository
	idGenerator     request.PublicIDGenerator
	checker         eligibility.Checker
	provider        setting.SettingProvider
	dispatcher      notification.Dispatcher
	txRunner        TxRunner
	adminEmail      string
	logger          logger.Interface
}

func NewSubmitRequestUseCase(
	requestRepo request.RequestRepository,
	participantRepo event.ParticipantRepository,
	eventDateRepo event.EventDateRepository,
	idGenerator request.PublicIDGenerator,
	checker eligibility.Checker,
	provider setting.SettingProvider,
	dispatcher notification.Dispatcher,
	txRunner TxRunner,
	adminEmail string,
	logger logger.Interface,
) *SubmitRequestUseCase {
	return &SubmitRequestUseCase{
		requestRepo:     requestRepo,
		participantRepo: participantRepo,
		eventDateRepo:   eventDateRepo,
		idGenerator:     idGenerator,
		checker:         checker,
		provider:        provider,
		dispatcher:      dispatcher,
		txRunner:        txRunner,
		adminEmail:      adminEmail,
		logger:          logger,
	}
}

func (uc *SubmitRequestUseCase) Execute(ctx context.Context, cmd SubmitRequestCommand) (*SubmitRequestResult, error) {
	uc.logger.Infow("executing submit request use case",
		"requester_id", cmd.RequesterID,
		"subject_kind", cmd.SubjectKind)

	subject, err := uc.buildSubject(cmd)
	if err != nil {
		return nil, err
	}

	contact := request.Contact{
		FirstName: cmd.FirstName,
		LastName:  cmd.LastName,
		Email:     cmd.Email,
		Phone:     cmd.Phone,
	}

	newRequest, err := request.NewRequest(cmd.RequesterID, subject, contact)
	if err != nil {
		return nil, errors.NewValidationError(err.Error())
	}
	newRequest.SetProjectLink(cmd.ProjectLink)
	newRequest.SetInstructorName(cmd.InstructorName)
	newRequest.SetVendorID(cmd.VendorID)

	if err := uc.checkEligibility(ctx, cmd, subject, contact); err != nil {
		return nil, err
	}

	// The public ID allocation writes the shared sequence row first, which
	// serializes concurrent submissions for the transaction's duration. The
	// duplicate check therefore runs after any racing submission has either
	// committed (and is found) or rolled back.
	txErr := uc.txRunner.RunInTransaction(ctx, func(txCtx context.Context) error {
		publicID, err := uc.idGenerator.Generate(txCtx)
		if err != nil {
			uc.logger.Errorw("failed to generate public ID", "error", err)
			return err
		}
		if err := newRequest.SetPublicID(publicID); err != nil {
			return errors.NewInternalError(err.Error())
		}

		dup, err := uc.requestRepo.FindDuplicate(txCtx, cmd.RequesterID, subject.Ref(), vo.NonTerminalStatuses())
		if err != nil {
			uc.logger.Errorw("failed to check for duplicate request", "error", err)
			return err
		}
		if dup != nil {
			return errors.NewConflictError("a request for this subject is already in progress")
		}

		return uc.requestRepo.Save(txCtx, newRequest)
	})
	if txErr != nil {
		if errors.GetAppError(txErr) == nil {
			uc.logger.Errorw("failed to save request", "error", txErr)
		}
		return nil, txErr
	}

	uc.notifySubmission(ctx, newRequest)

	uc.logger.Infow("request submitted",
		"request_id", newRequest.ID(),
		"public_id", newRequest.PublicID())

	return &SubmitRequestResult{
		RequestID:   newRequest.ID(),
		PublicID:    newRequest.PublicID(),
		Status:      newRequest.Status().String(),
		SubmittedAt: newRequest.SubmittedAt(),
	}, nil
}

func (uc *SubmitRequestUseCase) buildSubject(cmd SubmitRequestCommand) (vo.Subject, error) {
	kind, err := vo.NewSubjectKind(cmd.SubjectKind)
	if err != nil {
		return vo.Subject{}, errors.NewValidationError(err.Error())
	}

	if kind.IsCourse() {
		subject, err := vo.NewCourseSubject(cmd.ProductID, cmd.ProductName)
		if err != nil {
			return vo.Subject{}, errors.NewValidationError(err.Error())
		}
		return subject, nil
	}

	subject, err := vo.NewEventSubject(cmd.InstitutionID, cmd.EventDateID)
	if err != nil {
		return vo.Subject{}, errors.NewValidationError(err.Error())
	}
	return subject, nil
}

func (uc *SubmitRequestUseCase) checkEligibility(ctx context.Context, cmd SubmitRequestCommand, subject vo.Subject, contact request.Contact) error {
	if subject.Kind().IsCourse() {
		minDays := uc.provider.GetMinDaysAfterPurchase(ctx)
		ok, err := uc.checker.HasCompletedPurchase(ctx, cmd.RequesterID, subject.ProductID(), minDays, biztime.NowUTC())
		if err != nil {
			uc.logger.Errorw("eligibility check failed", "error", err)
			return err
		}
		if !ok {
			return errors.NewValidationError("no qualifying purchase found for this course")
		}
		return nil
	}

	onRoster, err := uc.participantRepo.ExistsOnRoster(ctx, subject.EventDateID(), contact.FullName())
	if err != nil {
		uc.logger.Errorw("roster check failed", "error", err)
		return err
	}
	if !onRoster {
		return errors.NewValidationError("name not found on the event roster")
	}
	return nil
}

// notifySubmission sends the requester confirmation and admin alert. Failures
// are logged only; the request already exists and stays visible to the queue.
func (uc *SubmitRequestUseCase) notifySubmission(ctx context.Context, req *request.Request) {
	contact := req.Contact()
	fields := map[string]string{
		"name":         contact.FullName(),
		"subject_name": uc.subjectDisplayName(ctx, req),
		"email":        contact.Email,
		"phone":        contact.Phone,
		"public_id":    req.PublicID(),
	}

	if err := uc.dispatcher.Send(ctx, notification.Message{
		Kind:      notification.KindConfirmation,
		Recipient: contact.Email,
		Fields:    fields,
	}); err != nil {
		uc.logger.Warnw("failed to send submission confirmation",
			"request_id", req.ID(),
			"error", err)
	}

	if uc.adminEmail == "" {
		return
	}
	if err := uc.dispatcher.Send(ctx, notification.Message{
		Kind:      notification.KindAdminAlert,
		Recipient: uc.adminEmail,
		Fields:    fields,
	}); err != nil {
		uc.logger.Warnw("failed to send admin alert",
			"request_id", req.ID(),
			"error", err)
	}
}

func (uc *SubmitRequestUseCase) subjectDisplayName(ctx context.Context, req *request.Request) string {
	subject := req.Subject()
	if subject.Kind().IsCourse() {
		return subject.ProductName()
	}

	eventDate, err := uc.eventDateRepo.GetByID(ctx, subject.EventDateID())
	if err != nil {
		return "event participation"
	}
	return eventDate.Name()
}
