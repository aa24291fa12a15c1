package order

import (
	"time"

	"dishly/internal/core/domain/model/kernel"
)

// EventName identifies what happened to an order.
type EventName string

const (
	EventCreated        EventName = "order.created"
	EventStatusChanged  EventName = "order.status_changed"
	EventPaymentChanged EventName = "order.payment_changed"
)

// Event is recorded by the aggregate on every state change and published by
// the unit of work once the change is committed.
type Event struct {
	Name       EventName
	OrderID    kernel.UUID
	CustomerID kernel.UUID
	VendorID   kernel.UUID
	From       string
	To         string
	Total      kernel.Money
	OccurredAt time.Time
}
