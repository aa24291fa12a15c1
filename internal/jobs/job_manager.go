package jobs

import (
	"fmt"
)

type job interface {
	Start() error
	Stop()
}

// JobManager coordinates all scheduled jobs in the application.
// Provides a unified interface to start and stop all background jobs.
type JobManager struct {
	orderAuditJob        *OrderAuditJob
	popularityRankingJob *PopularityRankingJob
}

// NewJobManager creates a job manager over the already configured jobs.
func NewJobManager(orderAuditJob *OrderAuditJob, popularityRankingJob *PopularityRankingJob) *JobManager {
	return &JobManager{
		orderAuditJob:        orderAuditJob,
		popularityRankingJob: popularityRankingJob,
	}
}

// StartAll starts all scheduled jobs.
// Returns an error if any job fails to start.
func (jm *JobManager) StartAll() error {
	started := make([]job, 0, 2)

	for _, entry := range []struct {
		name string
		job  job
	}{
		{"order audit", jm.orderAuditJob},
		{"popularity ranking", jm.popularityRankingJob},
	} {
		if err := entry.job.Start(); err != nil {
			// Stop already started jobs if this one fails
			for _, j := range started {
				j.Stop()
			}
			return fmt.Errorf("failed to start %s job: %w", entry.name, err)
		}
		started = append(started, entry.job)
	}

	return nil
}

// StopAll stops all scheduled jobs and waits for running passes to finish.
func (jm *JobManager) StopAll() {
	jm.popularityRankingJob.Stop()
	jm.orderAuditJob.Stop()
}
