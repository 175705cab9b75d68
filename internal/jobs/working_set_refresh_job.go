package jobs

import (
	"context"

	"github.com/robfig/cron/v3"
	"go.uber.org/zap"

	"servis/internal/core/application/session"
	"servis/internal/core/ports"
)

// WorkingSetRefreshJob periodically reloads the in-memory working set from
// the store, so orders created or deleted by other clients become visible
// without a restart. A failed refetch keeps the current state; the job just
// tries again on the next tick.
type WorkingSetRefreshJob struct {
	uowFactory ports.UnitOfWorkFactory
	workingSet *session.WorkingSet
	schedule   string
	cron       *cron.Cron
	logger     *zap.Logger
}

// NewWorkingSetRefreshJob creates the refresh job with a standard five-field
// cron schedule.
func NewWorkingSetRefreshJob(
	uowFactory ports.UnitOfWorkFactory,
	workingSet *session.WorkingSet,
	schedule string,
	logger *zap.Logger,
) *WorkingSetRefreshJob {
	return &WorkingSetRefreshJob{
		uowFactory: uowFactory,
		workingSet: workingSet,
		schedule:   schedule,
		cron:       cron.New(),
		logger:     logger.With(zap.String("component", "working_set_refresh_job")),
	}
}

// Start schedules the refresh.
func (j *WorkingSetRefreshJob) Start() error {
	_, err := j.cron.AddFunc(j.schedule, func() {
		j.Refresh(context.Background())
	})
	if err != nil {
		return err
	}

	j.cron.Start()
	j.logger.Info("working set refresh job started", zap.String("schedule", j.schedule))
	return nil
}

// Refresh performs one reload. Exposed so startup can prime the working set
// before the first tick.
func (j *WorkingSetRefreshJob) Refresh(ctx context.Context) {
	orders, err := j.uowFactory.Create().OrderRepository().GetAll(ctx)
	if err != nil {
		j.logger.Warn("working set refresh failed", zap.Error(err))
		return
	}

	j.workingSet.Replace(orders)
	j.logger.Debug("working set refreshed", zap.Int("orders", len(orders)))
}

// Stop stops the refresh job.
func (j *WorkingSetRefreshJob) Stop() {
	j.cron.Stop()
	j.logger.Info("working set refresh job stopped")
}
