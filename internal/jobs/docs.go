// Package jobs provides scheduled background tasks for the warehouse.
//
// Jobs use github.com/robfig/cron/v3 with a seconds field, so schedules
// such as "*/30 * * * * *" or "@every 1m" are accepted.
//
// # Available Jobs
//
// 1. SnapshotJob - saves the inventory levels and every loaded request to
// the database
// 2. ShortageReportJob - logs the levels that are below full stock
//
// # Usage
//
//	jobManager := jobs.NewJobManager(
//		jobs.NewSnapshotJob(snapshotHandler, "@every 1m", logger),
//		jobs.NewShortageReportJob(inventoryHandler, "@every 5m", logger),
//	)
//	if err := jobManager.StartAll(); err != nil {
//		log.Fatal("Failed to start jobs:", err)
//	}
//	defer jobManager.StopAll()
//
// # Error Handling
//
// A failed run is logged and the job keeps its schedule. A failed start
// stops the jobs that were already running.
package jobs
