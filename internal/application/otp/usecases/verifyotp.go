package usecases

import (
	"context"

	"certhub/internal/domain/otp"
	"certhub/internal/shared/biztime"
	"certhub/internal/shared/errors"
	"certhub/internal/shared/logger"
)

type VerifyOTPCommand struct {
	Email       string
	Code        string
	EventDateID uint
}

type VerifyOTPResult struct {
	Verified bool
}

// VerifyOTPUseCase consumes a one-time code. Consumption is one-way: a code
// that verified once never verifies again. An expired or already-consumed
// code is reported distinctly from one that never existed.
type VerifyOTPUseCase struct {
	codeRepo otp.CodeRepository
	logger   logger.Interface
}

func NewVerifyOTPUseCase(codeRepo otp.CodeRepository, logger logger.Interface) *VerifyOTPUseCase {
	return &VerifyOTPUseCase{
		codeRepo: codeRepo,
		logger:   logger,
	}
}

func (uc *VerifyOTPUseCase) Execute(ctx context.Context, cmd VerifyOTPCommand) (*VerifyOTPResult, error) {
	uc.logger.Infow("executing verify otp use case",
		"email", cmd.Email,
		"event_date_id", cmd.EventDateID)

	if cmd.Email == "" || cmd.Code == "" {
		return nil, errors.NewValidationError("email and code are required")
	}
	if cmd.EventDateID == 0 {
		return nil, errors.NewValidationError("event date ID is required")
	}

	now := biztime.NowUTC()

	code, err := uc.codeRepo.FindMatch(ctx, cmd.Email, cmd.Code, cmd.EventDateID, now)
	if err != nil {
		uc.logger.Errorw("failed to look up otp code", "error", err)
		return nil, err
	}
	if code == nil {
		// Distinguish a stale code from one that never existed.
		latest, err := uc.codeRepo.FindLatest(ctx, cmd.Email, cmd.Code, cmd.EventDateID)
		if err != nil {
			return nil, err
		}
		if latest != nil && (latest.Consumed() || latest.IsExpired(now)) {
			return nil, errors.NewValidationError("verification code has expired, request a new one")
		}
		return nil, errors.NewValidationError("invalid verification code")
	}

	if err := code.Consume(now); err != nil {
		return nil, errors.NewValidationError("verification code has expired, request a new one")
	}
	if err := uc.codeRepo.Update(ctx, code); err != nil {
		if err == otp.ErrCodeAlreadyConsumed {
			// A concurrent verification won the consumption write.
			return nil, errors.NewValidationError("verification code has expired, request a new one")
		}
		uc.logger.Errorw("failed to consume otp code", "error", err)
		return nil, err
	}

	uc.logger.Infow("otp code verified", "email", cmd.Email)

	return &VerifyOTPResult{Verified: true}, nil
}
