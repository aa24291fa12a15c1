package ports

import (
	"context"

	"dishly/internal/core/domain/model/order"
)

// EventPublisher delivers committed order events to other services.
type EventPublisher interface {
	Publish(ctx context.Context, events ...order.Event) error
}
