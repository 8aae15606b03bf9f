// Package jobs provides scheduled background tasks for the locker service.
//
// This package implements cron-based jobs using github.com/robfig/cron/v3
// to handle periodic operations required for the order lifecycle.
//
// # Available Jobs
//
// 1. ReservationExpiryJob - Cancels orders whose drop-off was never confirmed
// within the reservation TTL and releases their compartments
//
// # Usage
//
// Jobs are managed through JobManager which provides a unified interface:
//
//	// Create job manager with required handlers
//	jobManager := jobs.NewJobManager(expireHandler, ttl, schedule, logger)
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
// The expiry sweep uses a six-field cron expression, "0 */5 * * * *" by
// default, so reservations lapse within minutes of their TTL passing.
//
// # Error Handling
//
// Sweep failures are logged and retried on the next tick; a failed run never
// stops the schedule.
package jobs
