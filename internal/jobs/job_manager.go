// Package jobs provides scheduled background tasks for the partition engine,
// implemented with github.com/robfig/cron/v3 and managed through JobManager:
//
//	jobManager := jobs.NewJobManager(advisoryHandler, schedule, logger)
//	if err := jobManager.StartAll(); err != nil {
//	    log.Fatal("Failed to start jobs:", err)
//	}
//	defer jobManager.StopAll()
package jobs

import (
	"fmt"
	"log/slog"

	"servicearea/internal/core/application/usecases/queries"
)

// JobManager coordinates all scheduled jobs in the application.
type JobManager struct {
	coverageAuditJob *CoverageAuditJob
}

// NewJobManager creates a new job manager with all required jobs.
func NewJobManager(
	advisoryHandler queries.GetCoverageAdvisoryQueryHandler,
	auditSchedule string,
	logger *slog.Logger,
) *JobManager {
	return &JobManager{
		coverageAuditJob: NewCoverageAuditJob(advisoryHandler, auditSchedule, logger),
	}
}

// StartAll starts all scheduled jobs.
func (jm *JobManager) StartAll() error {
	if err := jm.coverageAuditJob.Start(); err != nil {
		return fmt.Errorf("failed to start coverage audit job: %w", err)
	}

	return nil
}

// StopAll stops all scheduled jobs gracefully.
func (jm *JobManager) StopAll() {
	jm.coverageAuditJob.Stop()
}
