package usecases

import (
	"context"
	"time"

	"certhub/internal/domain/event"
	"certhub/internal/domain/notification"
	"certhub/internal/domain/otp"
	"certhub/internal/shared/biztime"
	"certhub/internal/shared/errors"
	"certhub/internal/shared/logger"
)

type SendOTPCommand struct {
	Email       string
	EventDateID uint
	OriginIP    string
}

type SendOTPResult struct {
	ExpiresAt time.Time
}

// SendOTPUseCase issues a one-time code for event identity verification.
// Issuance is capped per email address independently of the endpoint rate
// limiter; the cap counts stored rows, so a restart cannot reset it.
type SendOTPUseCase struct {
	codeRepo      otp.CodeRepository
	eventDateRepo event.EventDateRepository
	dispatcher    notification.Dispatcher
	logger        logger.Interface
}

func NewSendOTPUseCase(
	codeRepo otp.CodeRepository,
	eventDateRepo event.EventDateRepository,
	dispatcher notification.Dispatcher,
	logger logger.Interface,
) *SendOTPUseCase {
	return &SendOTPUseCase{
		codeRepo:      codeRepo,
		eventDateRepo: eventDateRepo,
		dispatcher:    dispatcher,
		logger:        logger,
	}
}

func (uc *SendOTPUseCase) Execute(ctx context.Context, cmd SendOTPCommand) (*SendOTPResult, error) {
	uc.logger.Infow("executing send otp use case",
		"email", cmd.Email,
		"event_date_id", cmd.EventDateID)

	if cmd.Email == "" {
		return nil, errors.NewValidationError("email is required")
	}
	if cmd.EventDateID == 0 {
		return nil, errors.NewValidationError("event date ID is required")
	}

	if _, err := uc.eventDateRepo.GetByID(ctx, cmd.EventDateID); err != nil {
		return nil, err
	}

	cutoff := biztime.NowUTC().Add(-time.Hour)
	issued, err := uc.codeRepo.CountCreatedSince(ctx, cmd.Email, cutoff)
	if err != nil {
		uc.logger.Errorw("failed to count issued codes", "error", err)
		return nil, err
	}
	if issued >= otp.MaxCodesPerHour {
		return nil, errors.NewRateLimitedError("too many verification codes requested, try again later", 3600)
	}

	code, err := otp.NewCode(cmd.Email, cmd.EventDateID, cmd.OriginIP)
	if err != nil {
		return nil, errors.NewValidationError(err.Error())
	}

	if err := uc.codeRepo.Save(ctx, code); err != nil {
		uc.logger.Errorw("failed to save otp code", "error", err)
		return nil, err
	}

	if err := uc.dispatcher.Send(ctx, notification.Message{
		Kind:      notification.KindOTP,
		Recipient: cmd.Email,
		Fields:    map[string]string{"code": code.Value()},
	}); err != nil {
		uc.logger.Errorw("failed to send otp code", "error", err)
		return nil, errors.NewNotificationFailedError("could not deliver the verification code")
	}

	uc.logger.Infow("otp code sent", "email", cmd.Email)

	return &SendOTPResult{ExpiresAt: code.ExpiresAt()}, nil
}
