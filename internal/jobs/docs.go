// Package jobs provides scheduled background tasks for the delivery system.
//
// This package implements cron-based jobs using github.com/robfig/cron/v3
// to handle periodic operations required for the delivery service.
//
// # Available Jobs
//
// 1. ClaimableDigestJob - Runs every minute to log the backlog of tasks
// waiting for a carrier, most importantly the auto-created pickup segments
// of goods already stored in a warehouse.
//
// # Usage
//
// Jobs are managed through JobManager which provides a unified interface:
//
//	// Create job manager with required handlers
//	jobManager := jobs.NewJobManager(listClaimableTasksHandler, logger)
//
//	// Start all jobs
//	if err := jobManager.StartAll(); err != nil {
//		log.Fatal("Failed to start jobs:", err)
//	}
//
//	// Stop all jobs when shutting down
//	defer jobManager.StopAll()
//
// # Error Handling
//
// The digest job logs query failures and keeps running; a failed job start
// is returned to the caller.
package jobs
