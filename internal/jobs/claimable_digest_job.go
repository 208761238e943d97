package jobs

import (
	"context"
	"log/slog"

	"parcelflow/internal/core/application/usecases/queries"

	"github.com/robfig/cron/v3"
)

// ClaimableDigestJob periodically surfaces the backlog of tasks waiting for
// a carrier. Auto-created pickup segments sit unclaimed until someone adopts
// them, so the digest keeps the backlog visible to operators.
type ClaimableDigestJob struct {
	handler queries.ListClaimableTasksQueryHandler
	cron    *cron.Cron
	logger  *slog.Logger
}

// NewClaimableDigestJob creates a job that logs the claimable-task backlog
// once a minute.
func NewClaimableDigestJob(handler queries.ListClaimableTasksQueryHandler, logger *slog.Logger) *ClaimableDigestJob {
	return &ClaimableDigestJob{
		handler: handler,
		cron:    cron.New(cron.WithSeconds()),
		logger:  logger.With("component", "claimable_digest_job"),
	}
}

// Start begins the digest job, running at the top of every minute.
func (j *ClaimableDigestJob) Start() error {
	_, err := j.cron.AddFunc("0 * * * * *", func() {
		ctx := context.Background()
		query := queries.NewListClaimableTasksQuery(true)

		tasks, err := j.handler.Handle(ctx, query)
		if err != nil {
			j.logger.ErrorContext(ctx, "Claimable digest job failed", "error", err)
			return
		}

		if len(tasks) == 0 {
			return
		}

		oldest := tasks[0]
		j.logger.InfoContext(ctx, "Tasks awaiting a carrier",
			"count", len(tasks),
			"oldest_task_id", oldest.TaskID.String(),
			"oldest_created_at", oldest.CreatedAt,
		)
	})

	if err != nil {
		return err
	}

	j.cron.Start()
	j.logger.InfoContext(context.Background(), "Claimable digest job started (running every minute)")
	return nil
}

// Stop stops the digest job.
func (j *ClaimableDigestJob) Stop() {
	j.cron.Stop()
	j.logger.InfoContext(context.Background(), "Claimable digest job stopped")
}
