package commands

import (
	"context"
	"time"
)

// ChangePaymentStatusCommandHandler applies a payment transition on behalf of
// the order's vendor. It shares
// the order's version counter with status changes, so a payment update and a
// status update racing on one order also conflict.
type ChangePaymentStatusCommandHandler struct {
	uowFactory OrderUoWFactory
	now        func() time.Time
}

func NewChangePaymentStatusCommandHandler(uowFactory OrderUoWFactory) ChangePaymentStatusCommandHandler {
	return ChangePaymentStatusCommandHandler{
		uowFactory: uowFactory,
		now:        func() time.Time { return time.Now().UTC() },
	}
}

func (h *ChangePaymentStatusCommandHandler) Handle(ctx context.Context, cmd ChangePaymentStatusCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	repo := uow.OrderRepository()
	o, err := repo.Get(ctx, cmd.OrderID())
	if err != nil {
		return err
	}

	if err = authorizePaymentChange(cmd.Principal(), o); err != nil {
		return err
	}

	if err = o.ChangePaymentStatus(cmd.To(), h.now()); err != nil {
		return err
	}

	if err = repo.Save(ctx, o); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
