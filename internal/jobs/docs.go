// Package jobs provides scheduled background tasks for the procurement service.
//
// Jobs are cron-based (github.com/robfig/cron/v3, six-field expressions with
// seconds) and only read data.
//
// # Available Jobs
//
//  1. StalePendingOrdersJob - logs pending orders older than STALE_ORDER_AFTER
//     on STALE_ORDER_SCHEDULE (daily at 08:00 by default)
//
// # Usage
//
//	jobManager := jobs.NewJobManager(staleOrdersHandler, jobs.Settings{
//		StaleOrderAfter:    48 * time.Hour,
//		StaleOrderSchedule: "0 0 8 * * *",
//	}, logger)
//
//	if err := jobManager.StartAll(); err != nil {
//		log.Fatal("Failed to start jobs:", err)
//	}
//	defer jobManager.StopAll()
package jobs
