package commands

import (
	"errors"

	"dishly/internal/core/domain/model/kernel"
	"dishly/internal/core/domain/model/order"
	"dishly/internal/core/domain/model/user"
	"dishly/internal/pkg/guard"
)

var ErrChangePaymentStatusCommandIsNotConstructed = errors.New(
	"ChangePaymentStatusCommand must be created via NewChangePaymentStatusCommand constructor",
)

// ChangePaymentStatusCommand requests one step of the payment machine.
type ChangePaymentStatusCommand struct { //nolint:recvcheck //using for validation
	principal user.Principal
	orderID   kernel.UUID
	to        order.PaymentStatus

	guard guard.ConstructorGuard
}

func NewChangePaymentStatusCommand(
	principal user.Principal,
	orderID kernel.UUID,
	to order.PaymentStatus,
) (ChangePaymentStatusCommand, error) {
	if err := errors.Join(principal.ID.Validate(), orderID.Validate(), to.Validate()); err != nil {
		return ChangePaymentStatusCommand{}, err
	}

	return ChangePaymentStatusCommand{
		principal: principal,
		orderID:   orderID,
		to:        to,
		guard:     guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the command was created through the constructor.
func (c ChangePaymentStatusCommand) Validate() error {
	return c.guard.Validate(ErrChangePaymentStatusCommandIsNotConstructed)
}

func (c ChangePaymentStatusCommand) Principal() user.Principal { return c.principal }
func (c ChangePaymentStatusCommand) OrderID() kernel.UUID      { return c.orderID }
func (c ChangePaymentStatusCommand) To() order.PaymentStatus   { return c.to }
