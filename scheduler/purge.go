package scheduler

import (
	"context"
	"fmt"
	"time"

	"github.com/adhocore/gronx"

	"github.com/RamonMR95/auto-api/entity"
	"github.com/RamonMR95/auto-api/infra"
	"github.com/RamonMR95/auto-api/metrics"
)

// CarPurger is the slice of the car service the purge worker needs.
type CarPurger interface {
	ListFlaggedForDeletion(ctx context.Context) ([]entity.Car, error)
	Delete(ctx context.Context, rawID string) error
}

// CarPurgeScheduler hard-deletes every car flagged for deletion on a
// cron-driven schedule. It holds no state across ticks beyond the schedule
// itself.
type CarPurgeScheduler struct {
	cronExpr string
	cars     CarPurger
	logger   *infra.LoggerClient
}

// NewCarPurgeScheduler validates the six-field cron expression up front so a
// misconfigured schedule fails at startup, not at the first tick.
func NewCarPurgeScheduler(cronExpr string, cars CarPurger, logger *infra.LoggerClient) (*CarPurgeScheduler, error) {
	if !gronx.New().IsValid(cronExpr) {
		return nil, fmt.Errorf("invalid cron expression: %q", cronExpr)
	}
	return &CarPurgeScheduler{
		cronExpr: cronExpr,
		cars:     cars,
		logger:   logger,
	}, nil
}

// Start runs the schedule loop until the context is cancelled.
func (s *CarPurgeScheduler) Start(ctx context.Context) {
	go func() {
		s.logger.InfoWithContextf(ctx, "[Car Purge] Scheduler started with cron expression: %s", s.cronExpr)
		for {
			next, err := gronx.NextTick(s.cronExpr, false)
			if err != nil {
				s.logger.ErrorWithContextf(ctx, err, "[Car Purge] Failed to compute next tick: %v", err)
				return
			}

			timer := time.NewTimer(time.Until(next))
			select {
			case <-ctx.Done():
				timer.Stop()
				s.logger.InfoWithContextf(ctx, "[Car Purge] Scheduler shutting down...")
				return
			case <-timer.C:
				s.PurgeFlaggedCars(ctx)
			}
		}
	}()
}

// PurgeFlaggedCars deletes every flagged car. A failure on one car, such as
// losing the race against a direct delete, is logged and does not abort the
// rest of the batch.
func (s *CarPurgeScheduler) PurgeFlaggedCars(ctx context.Context) {
	cars, err := s.cars.ListFlaggedForDeletion(ctx)
	if err != nil {
		s.logger.ErrorWithContextf(ctx, err, "[Car Purge] Failed to list cars flagged for deletion: %v", err)
		return
	}

	for _, car := range cars {
		if err := s.cars.Delete(ctx, car.ID.String()); err != nil {
			metrics.CarsPurgeFailed.Inc()
			s.logger.ErrorWithContextf(ctx, err, "[Car Purge] Failed to delete car with id: %s: %v", car.ID, err)
			continue
		}
		metrics.CarsPurged.Inc()
		s.logger.InfoWithContextf(ctx, "[Car Purge] Deleted car with id: %s", car.ID)
	}
}
