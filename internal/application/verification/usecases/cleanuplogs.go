package usecases

import (
	"context"
	"time"

	"certhub/internal/domain/verification"
	"certhub/internal/shared/logger"
)

// logRetention is how long verification audit entries are kept.
const logRetention = 90 * 24 * time.Hour

// CleanupLogsJob purges verification log entries past the retention horizon.
// It runs from the scheduler as a nightly batch job.
type CleanupLogsJob struct {
	logRepo verification.LogRepository
	logger  logger.Interface
}

func NewCleanupLogsJob(logRepo verification.LogRepository, logger logger.Interface) *CleanupLogsJob {
	return &CleanupLogsJob{
		logRepo: logRepo,
		logger:  logger,
	}
}

func (j *CleanupLogsJob) Execute(ctx context.Context) (int, error) {
	cutoff := time.Now().Add(-logRetention)

	deleted, err := j.logRepo.DeleteOlderThan(ctx, cutoff)
	if err != nil {
		j.logger.Errorw("failed to purge verification log", "error", err)
		return 0, err
	}

	return int(deleted), nil
}
