package usecases

import (
	"context"
	"time"

	"certhub/internal/domain/otp"
	"certhub/internal/shared/biztime"
	"certhub/internal/shared/logger"
)

// codeRetention is how long spent and unspent codes stay on disk before the
// nightly cleanup removes them.
const codeRetention = 24 * time.Hour

// CleanupCodesJob purges one-time codes past the retention horizon. It
// satisfies the scheduler's BatchJob contract.
type CleanupCodesJob struct {
	codeRepo otp.CodeRepository
	logger   logger.Interface
}

func NewCleanupCodesJob(codeRepo otp.CodeRepository, logger logger.Interface) *CleanupCodesJob {
	return &CleanupCodesJob{
		codeRepo: codeRepo,
		logger:   logger,
	}
}

func (j *CleanupCodesJob) Execute(ctx context.Context) (int, error) {
	cutoff := biztime.NowUTC().Add(-codeRetention)

	removed, err := j.codeRepo.DeleteOlderThan(ctx, cutoff)
	if err != nil {
		return 0, err
	}

	if removed > 0 {
		j.logger.Infow("purged stale otp codes", "removed", removed)
	}

	return int(removed), nil
}
