package jobs

import (
	"context"
	"log/slog"
	"time"

	"dishly/internal/core/application/usecases/queries"

	"github.com/robfig/cron/v3"
)

type OrderTotalsAuditor interface {
	Handle(ctx context.Context, query queries.AuditOrderTotalsQuery) (queries.AuditReport, error)
}

// OrderAuditJob re-sums the line items of recently touched orders and logs
// every order whose stored total disagrees. It never repairs a total.
type OrderAuditJob struct {
	auditor  OrderTotalsAuditor
	schedule string
	window   time.Duration
	now      func() time.Time
	cron     *cron.Cron
	logger   *slog.Logger
}

// NewOrderAuditJob creates a job that audits orders updated within window on
// every tick of schedule, a six-field cron expression.
func NewOrderAuditJob(auditor OrderTotalsAuditor, schedule string, window time.Duration, logger *slog.Logger) *OrderAuditJob {
	return &OrderAuditJob{
		auditor:  auditor,
		schedule: schedule,
		window:   window,
		now:      time.Now,
		cron:     cron.New(cron.WithSeconds()),
		logger:   logger.With("component", "order_audit_job"),
	}
}

// Start schedules the audit.
func (j *OrderAuditJob) Start() error {
	_, err := j.cron.AddFunc(j.schedule, func() {
		j.Run(context.Background())
	})
	if err != nil {
		return err
	}

	j.cron.Start()
	j.logger.InfoContext(context.Background(), "Order audit job started", "schedule", j.schedule)
	return nil
}

// Run performs one audit pass.
func (j *OrderAuditJob) Run(ctx context.Context) {
	query, err := queries.NewAuditOrderTotalsQuery(j.now().Add(-j.window), queries.MaxAuditBatch)
	if err != nil {
		j.logger.ErrorContext(ctx, "Order audit job misconfigured", "error", err)
		return
	}

	report, err := j.auditor.Handle(ctx, query)
	if err != nil {
		j.logger.ErrorContext(ctx, "Order audit job failed", "error", err)
		return
	}

	for _, violation := range report.Violations {
		j.logger.ErrorContext(ctx, "Order total does not match its line items",
			"order_id", violation.ID, "reason", violation.Reason)
	}
	j.logger.DebugContext(ctx, "Order audit finished", "checked", report.Checked, "violations", len(report.Violations))
}

// Stop stops the audit job.
func (j *OrderAuditJob) Stop() {
	<-j.cron.Stop().Done()
	j.logger.InfoContext(context.Background(), "Order audit job stopped")
}
