// Package jobs provides scheduled background tasks for the service.
//
// This package implements cron-based jobs using github.com/robfig/cron/v3.
//
// # Available Jobs
//
// 1. WorkingSetRefreshJob - Periodically reloads the in-memory order working
// set from the database, picking up changes made by other clients.
//
// # Usage
//
// Jobs are managed through JobManager which provides a unified interface:
//
//	jobManager := jobs.NewJobManager(refreshJob)
//
//	if err := jobManager.StartAll(); err != nil {
//		log.Fatal("Failed to start jobs:", err)
//	}
//
//	defer jobManager.StopAll()
//
// # Error Handling
//
// A failed refresh keeps the current in-memory state and is retried on the
// next tick; it is logged but never escalates.
package jobs
