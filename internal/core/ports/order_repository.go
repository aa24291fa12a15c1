package ports

import (
	"context"
	"time"

	"dishly/internal/core/domain/model/kernel"
	"dishly/internal/core/domain/model/order"
)

// OrderRepository defines the persistence contract for order aggregates.
// Orders are never deleted, so no Delete is offered.
type OrderRepository interface {
	// Save upserts the order. A never-saved order (version 0) is inserted with
	// its line items. A stored order is updated only if its stored version
	// still equals aggregate.Version(); otherwise *errs.ConflictError is
	// returned. On success the aggregate's version is advanced.
	Save(ctx context.Context, aggregate *order.Order) error

	// Get returns *errs.ObjectNotFoundError when no order has the id.
	Get(ctx context.Context, id kernel.UUID) (*order.Order, error)

	// Find lists up to filter.Limit orders of the filtered customer and/or
	// vendor, newest first. A nil status returns every status.
	Find(ctx context.Context, filter order.ListFilter) ([]*order.Order, error)

	// ListRecent returns up to limit orders ordered by creation time descending.
	ListRecent(ctx context.Context, limit int) ([]*order.Order, error)

	// ListForAudit returns up to limit orders updated at or after since.
	ListForAudit(ctx context.Context, since time.Time, limit int) ([]*order.Order, error)

	// DeliveredQuantities sums line item quantities of delivered orders per food item.
	DeliveredQuantities(ctx context.Context) (map[kernel.UUID]int, error)
}
