package jobs

import (
	"context"
	"log/slog"

	"github.com/robfig/cron/v3"

	"servicearea/internal/core/application/usecases/queries"
)

// CoverageAuditJob periodically recomputes the partition advisory and logs a
// warning while a NATIONAL warehouse starves other active warehouses. The
// advisory endpoint shows the same state on demand; the job makes sure a
// misconfigured partition surfaces in the logs even when nobody is looking
// at the console.
type CoverageAuditJob struct {
	handler  queries.GetCoverageAdvisoryQueryHandler
	schedule string
	cron     *cron.Cron
	logger   *slog.Logger
}

// NewCoverageAuditJob creates a new coverage audit job with a cron schedule
// expression (with seconds field).
func NewCoverageAuditJob(
	handler queries.GetCoverageAdvisoryQueryHandler,
	schedule string,
	logger *slog.Logger,
) *CoverageAuditJob {
	return &CoverageAuditJob{
		handler:  handler,
		schedule: schedule,
		cron:     cron.New(cron.WithSeconds()),
		logger:   logger.With("component", "coverage_audit_job"),
	}
}

// Start begins the coverage audit job on its schedule.
func (j *CoverageAuditJob) Start() error {
	_, err := j.cron.AddFunc(j.schedule, func() {
		ctx := context.Background()

		advisory, handleErr := j.handler.Handle(ctx, queries.NewGetCoverageAdvisoryQuery())
		if handleErr != nil {
			j.logger.ErrorContext(ctx, "Coverage audit failed", "error", handleErr)
			return
		}

		if len(advisory.NationalWarehouses) == 0 {
			return
		}

		ids := make([]int64, len(advisory.NationalWarehouses))
		for i, id := range advisory.NationalWarehouses {
			ids[i] = id.Int64()
		}

		j.logger.WarnContext(ctx,
			"National warehouse detected while other active warehouses exist",
			"warehouse_ids", ids,
		)
	})

	if err != nil {
		return err
	}

	j.cron.Start()
	j.logger.InfoContext(context.Background(), "Coverage audit job started", "schedule", j.schedule)
	return nil
}

// Stop stops the coverage audit job.
func (j *CoverageAuditJob) Stop() {
	j.cron.Stop()
	j.logger.InfoContext(context.Background(), "Coverage audit job stopped")
}
