package jobs

import (
	"fmt"
	"log/slog"

	"parcelflow/internal/core/application/usecases/queries"
)

// JobManager coordinates all scheduled jobs in the application.
// Provides a unified interface to start and stop all background jobs.
type JobManager struct {
	claimableDigestJob *ClaimableDigestJob
}

// NewJobManager creates a new job manager with all required jobs.
func NewJobManager(
	listClaimableTasksHandler queries.ListClaimableTasksQueryHandler,
	logger *slog.Logger,
) *JobManager {
	return &JobManager{
		claimableDigestJob: NewClaimableDigestJob(listClaimableTasksHandler, logger),
	}
}

// StartAll starts all scheduled jobs.
// Returns an error if any job fails to start.
func (jm *JobManager) StartAll() error {
	if err := jm.claimableDigestJob.Start(); err != nil {
		return fmt.Errorf("failed to start claimable digest job: %w", err)
	}

	return nil
}

// StopAll stops all scheduled jobs gracefully.
func (jm *JobManager) StopAll() {
	jm.claimableDigestJob.Stop()
}
