// Package jobs provides scheduled background tasks for the dishly order core.
//
// This package implements cron-based jobs using github.com/robfig/cron/v3.
// Schedules are six-field expressions (with seconds) taken from configuration.
//
// # Available Jobs
//
// 1. OrderAuditJob - re-sums the line items of recently updated orders and logs
// every stored total that disagrees. Totals are never patched.
// 2. PopularityRankingJob - raises each food item's popularity score to the
// quantity delivered so far. Scores never go down.
//
// # Usage
//
//	audit := jobs.NewOrderAuditJob(auditHandler, "0 */15 * * * *", 24*time.Hour, logger)
//	ranking := jobs.NewPopularityRankingJob(rankHandler, "0 0 * * * *", logger)
//	jobManager := jobs.NewJobManager(audit, ranking)
//
//	if err := jobManager.StartAll(); err != nil {
//		return err
//	}
//	defer jobManager.StopAll()
//
// # Error Handling
//
// Both jobs log failures and wait for the next tick. A failed start stops any
// job that was already running.
package jobs
