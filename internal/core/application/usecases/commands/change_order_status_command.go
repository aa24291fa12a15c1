package commands

import (
	"errors"

	"dishly/internal/core/domain/model/kernel"
	"dishly/internal/core/domain/model/order"
	"dishly/internal/core/domain/model/user"
	"dishly/internal/pkg/guard"
)

var ErrChangeOrderStatusCommandIsNotConstructed = errors.New(
	"ChangeOrderStatusCommand must be created via NewChangeOrderStatusCommand constructor",
)

// ChangeOrderStatusCommand requests one step of the order status machine.
//
// Example:
//
//	cmd, err := NewChangeOrderStatusCommand(principal, orderID,
//	    order.StatusChange{To: order.Cancelled, CancellationReason: "kitchen closed"})
type ChangeOrderStatusCommand struct { //nolint:recvcheck //using for validation
	principal user.Principal
	orderID   kernel.UUID
	change    order.StatusChange

	guard guard.ConstructorGuard
}

// NewChangeOrderStatusCommand validates identifiers and the target status.
// Whether the transition is allowed is decided by the aggregate.
func NewChangeOrderStatusCommand(
	principal user.Principal,
	orderID kernel.UUID,
	change order.StatusChange,
) (ChangeOrderStatusCommand, error) {
	if err := errors.Join(principal.ID.Validate(), orderID.Validate(), change.To.Validate()); err != nil {
		return ChangeOrderStatusCommand{}, err
	}

	if change.DeliveryTime != nil {
		t := change.DeliveryTime.UTC()
		change.DeliveryTime = &t
	}

	return ChangeOrderStatusCommand{
		principal: principal,
		orderID:   orderID,
		change:    change,
		guard:     guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the command was created through the constructor.
func (c ChangeOrderStatusCommand) Validate() error {
	return c.guard.Validate(ErrChangeOrderStatusCommandIsNotConstructed)
}

func (c ChangeOrderStatusCommand) Principal() user.Principal { return c.principal }
func (c ChangeOrderStatusCommand) OrderID() kernel.UUID      { return c.orderID }
func (c ChangeOrderStatusCommand) To() order.Status          { return c.change.To }

func (c ChangeOrderStatusCommand) Change() order.StatusChange {
	change := c.change
	if change.DeliveryTime != nil {
		t := *change.DeliveryTime
		change.DeliveryTime = &t
	}
	return change
}
