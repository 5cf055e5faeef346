// Package jobs provides scheduled background tasks for the order service.
//
// This package implements cron-based jobs using github.com/robfig/cron/v3
// to handle periodic operations required for order processing.
//
// # Available Jobs
//
// 1. OutboxRelayJob - Runs every second to publish pending outbox messages to the message bus
//
// # Usage
//
// Jobs are managed through JobManager which provides a unified interface:
//
//	// Create job manager with required dependencies
//	jobManager := jobs.NewJobManager(outboxRepository, eventPublisher, logger)
//
//	// Start all jobs
//	if err := jobManager.StartAll(); err != nil {
//		log.Fatal("Failed to start jobs:", err)
//	}
//
//	// Stop all jobs when shutting down
//	defer jobManager.StopAll()
//
// # Scheduling
//
// The relay uses the cron expression "* * * * * *" which means it runs every
// second. This frequency keeps the delay between a commit and the publication
// of its events short without putting load on an idle system.
//
// # Error Handling
//
// A publish failure stops the current batch; the failed message and everything
// behind it stay pending and are retried on the next tick, preserving the
// per-order event order.
package jobs
