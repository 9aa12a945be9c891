package usecases

import (
	"context"
	"strings"
	"time"

	"certhub/internal/domain/request"
	"certhub/internal/domain/verification"
	"certhub/internal/infrastructure/ratelimit"
	"certhub/internal/shared/biztime"
	"certhub/internal/shared/errors"
	"certhub/internal/shared/logger"
)

// verifyAction names the rate limit bucket for public lookups.
const verifyAction = "verify"

type VerifyPublicCommand struct {
	Query      string
	CallerIP   string
	CallerUser *uint

	// MaxAttempts and Window come from configuration; the handler passes
	// them through so tests can tighten the window.
	MaxAttempts int
	Window      time.Duration
}

type VerifyPublicResult struct {
	Found          bool
	PublicID       string
	RecipientName  string
	SubjectName    string
	CompletionDate string
	IssuedFor      string
}

// VerifyPublicUseCase answers anonymous authenticity lookups. Every attempt,
// found or not, lands in the audit log. The result never exposes internal
// request state, contact details, or artifact locations.
type VerifyPublicUseCase struct {
	requestRepo request.RequestRepository
	logRepo     verification.LogRepository
	limiter     ratelimit.RateLimiter
	logger      logger.Interface
}

func NewVerifyPublicUseCase(
	requestRepo request.RequestRepository,
	logRepo verification.LogRepository,
	limiter ratelimit.RateLimiter,
	logger logger.Interface,
) *VerifyPublicUseCase {
	return &VerifyPublicUseCase{
		requestRepo: requestRepo,
		logRepo:     logRepo,
		limiter:     limiter,
		logger:      logger,
	}
}

func (uc *VerifyPublicUseCase) Execute(ctx context.Context, cmd VerifyPublicCommand) (*VerifyPublicResult, error) {
	query := strings.TrimSpace(cmd.Query)
	if query == "" {
		return nil, errors.NewValidationError("search query is required")
	}

	limit, err := uc.limiter.CheckAndRecord(ctx, cmd.CallerIP, verifyAction, cmd.MaxAttempts, cmd.Window)
	if err != nil {
		uc.logger.Errorw("rate limiter unavailable", "error", err)
		return nil, errors.NewStorageUnavailableError("verification is temporarily unavailable")
	}
	if !limit.Allowed {
		return nil, errors.NewRateLimitedError("too many verification attempts", int(limit.RetryAfter.Seconds()))
	}

	req, err := uc.requestRepo.SearchIssued(ctx, query)
	if err != nil {
		uc.logger.Errorw("verification search failed", "error", err)
		return nil, err
	}

	uc.audit(ctx, cmd, query, req)

	if req == nil {
		return &VerifyPublicResult{Found: false}, nil
	}

	result := &VerifyPublicResult{
		Found:         true,
		PublicID:      req.PublicID(),
		RecipientName: req.Contact().FullName(),
		SubjectName:   displaySubject(req),
		IssuedFor:     req.Subject().Kind().String(),
	}
	if req.CompletionDate() != nil {
		result.CompletionDate = biztime.FormatDisplayDate(*req.CompletionDate())
	}

	return result, nil
}

// audit appends the lookup to the verification log. A logging failure never
// blocks the lookup itself.
func (uc *VerifyPublicUseCase) audit(ctx context.Context, cmd VerifyPublicCommand, query string, req *request.Request) {
	outcome := verification.ResultNotFound
	publicID := ""
	if req != nil {
		outcome = verification.ResultFound
		publicID = req.PublicID()
	}

	entry, err := verification.NewLogEntry(publicID, classifyQuery(query), query, cmd.CallerIP, cmd.CallerUser, outcome)
	if err != nil {
		uc.logger.Warnw("failed to build verification log entry", "error", err)
		return
	}

	if err := uc.logRepo.Append(ctx, entry); err != nil {
		uc.logger.Warnw("failed to append verification log", "error", err)
	}
}

// classifyQuery guesses which search method the caller used, for the audit
// trail only. The lookup itself always tries all three.
func classifyQuery(query string) string {
	if strings.Contains(query, "@") {
		return "email"
	}
	if strings.Contains(query, " ") {
		return "full_name"
	}
	return "public_id"
}

func displaySubject(req *request.Request) string {
	subject := req.Subject()
	if subject.Kind().IsCourse() {
		return subject.ProductName()
	}
	return "event participation"
}
