package queries

import (
	"errors"
	"time"

	"dishly/internal/pkg/errs"
	"dishly/internal/pkg/guard"
)

const MaxAuditBatch = 1000

var ErrAuditOrderTotalsQueryIsNotConstructed = errors.New(
	"AuditOrderTotalsQuery must be created via NewAuditOrderTotalsQuery constructor",
)

// AuditOrderTotalsQuery re-sums the line items of orders created since a
// point in time.
type AuditOrderTotalsQuery struct {
	since time.Time
	limit int

	guard guard.ConstructorGuard
}

func NewAuditOrderTotalsQuery(since time.Time, limit int) (AuditOrderTotalsQuery, error) {
	if since.IsZero() {
		return AuditOrderTotalsQuery{}, errs.NewValueIsRequiredError("since")
	}
	if limit < 1 || limit > MaxAuditBatch {
		return AuditOrderTotalsQuery{}, errs.NewValueIsOutOfRangeError("limit", limit, 1, MaxAuditBatch)
	}
	return AuditOrderTotalsQuery{since: since, limit: limit, guard: guard.NewConstructorGuard()}, nil
}

// Validate ensures the query was created through the constructor.
func (q AuditOrderTotalsQuery) Validate() error {
	return q.guard.Validate(ErrAuditOrderTotalsQueryIsNotConstructed)
}

func (q AuditOrderTotalsQuery) Since() time.Time { return q.since }
func (q AuditOrderTotalsQuery) Limit() int       { return q.limit }
