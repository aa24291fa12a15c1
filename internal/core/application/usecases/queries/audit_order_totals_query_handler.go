package queries

import (
	"context"
	"errors"

	"dishly/internal/pkg/errs"
)

// AuditReport lists the orders whose stored total disagrees with their line
// items. Nothing is corrected.
type AuditReport struct {
	Checked    int
	Violations []*errs.IntegrityError
}

type AuditOrderTotalsQueryHandler struct {
	orders OrderReader
}

func NewAuditOrderTotalsQueryHandler(orders OrderReader) AuditOrderTotalsQueryHandler {
	return AuditOrderTotalsQueryHandler{orders: orders}
}

func (h AuditOrderTotalsQueryHandler) Handle(ctx context.Context, query AuditOrderTotalsQuery) (AuditReport, error) {
	if err := query.Validate(); err != nil {
		return AuditReport{}, err
	}

	found, err := h.orders.ListForAudit(ctx, query.Since(), query.Limit())
	if err != nil {
		return AuditReport{}, err
	}

	report := AuditReport{Checked: len(found)}
	for _, o := range found {
		err := o.RecomputeTotal()
		if err == nil {
			continue
		}
		var integrityErr *errs.IntegrityError
		if !errors.As(err, &integrityErr) {
			return AuditReport{}, err
		}
		report.Violations = append(report.Violations, integrityErr)
	}
	return report, nil
}
