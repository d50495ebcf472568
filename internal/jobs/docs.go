// Package jobs provides scheduled background tasks for the kitchen service.
//
// Jobs are cron based (github.com/robfig/cron/v3 with a seconds field).
//
// # Available Jobs
//
// OrderRemovalJob runs every second. It claims the orders whose deferred
// removal is due (see MarkOrderReadyCommand) and deletes them through the
// DeleteOrderCommandHandler.
//
// # Usage
//
//	jobManager := jobs.NewJobManager(removalQueue, &deleteOrderHandler, logger)
//
//	if err := jobManager.StartAll(); err != nil {
//		log.Fatal("Failed to start jobs:", err)
//	}
//	defer jobManager.StopAll()
//
// # Error Handling
//
//   - An order deleted in the meantime is skipped silently
//   - Other failures are logged and the order is retried a few seconds later
//   - Failed job starts stop any already running jobs
package jobs
