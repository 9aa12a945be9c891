package usecases

import (
	"context"
	"time"

	"certhub/internal/domain/request"
	vo "certhub/internal/domain/request/valueobjects"
	"certhub/internal/shared/biztime"
	"certhub/internal/shared/logger"
)

const (
	// sweepBatchSize bounds how many failed deliveries one sweep touches.
	sweepBatchSize = 5
	// sweepHorizon is how far back the sweep looks. Older failures need a
	// manual retry from the admin dashboard.
	sweepHorizon = 24 * time.Hour
	// sweepPacing spaces the resends so a batch never bursts the mail
	// relay's outbound rate.
	sweepPacing = 2 * time.Second
)

// RetryNotificationSweep periodically redelivers certificates stuck in
// notification_failed. It satisfies the scheduler's BatchJob contract.
type RetryNotificationSweep struct {
	requestRepo request.RequestRepository
	retryUC     *RetryNotificationUseCase
	logger      logger.Interface
}

func NewRetryNotificationSweep(
	requestRepo request.RequestRepository,
	retryUC *RetryNotificationUseCase,
	logger logger.Interface,
) *RetryNotificationSweep {
	return &RetryNotificationSweep{
		requestRepo: requestRepo,
		retryUC:     retryUC,
		logger:      logger,
	}
}

func (s *RetryNotificationSweep) Execute(ctx context.Context) (int, error) {
	since := biztime.NowUTC().Add(-sweepHorizon)

	stuck, err := s.requestRepo.FindByStatusSince(ctx, vo.StatusNotificationFailed, since, sweepBatchSize)
	if err != nil {
		return 0, err
	}
	if len(stuck) == 0 {
		return 0, nil
	}

	delivered := 0
	for i, req := range stuck {
		if i > 0 {
			select {
			case <-ctx.Done():
				return delivered, ctx.Err()
			case <-time.After(sweepPacing):
			}
		}

		result, err := s.retryUC.Execute(ctx, RetryNotificationCommand{RequestID: req.ID()})
		if err != nil {
			s.logger.Warnw("sweep retry errored",
				"request_id", req.ID(),
				"error", err)
			continue
		}
		if result.Delivered {
			delivered++
		}
	}

	return delivered, nil
}
