package commands

import (
	"context"
	"time"
)

// ChangeOrderStatusCommandHandler loads the order, applies one transition and
// saves it under optimistic versioning. Two concurrent transitions from the
// same version cannot both commit: the loser gets *errs.ConflictError and is
// expected to retry with fresh state.
type ChangeOrderStatusCommandHandler struct {
	uowFactory OrderUoWFactory
	now        func() time.Time
}

func NewChangeOrderStatusCommandHandler(uowFactory OrderUoWFactory) ChangeOrderStatusCommandHandler {
	return ChangeOrderStatusCommandHandler{
		uowFactory: uowFactory,
		now:        func() time.Time { return time.Now().UTC() },
	}
}

// Handle applies the transition.
//
// Errors:
//   - *errs.ObjectNotFoundError when the order does not exist
//   - *errs.ForbiddenError when the caller may not make this change
//   - *errs.InvalidTransitionError, or a validation error for a missing cancellation reason
//   - *errs.ConflictError when another transition committed first
func (h *ChangeOrderStatusCommandHandler) Handle(ctx context.Context, cmd ChangeOrderStatusCommand) error {
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

	if err = authorizeStatusChange(cmd.Principal(), o, cmd.To()); err != nil {
		return err
	}

	if err = o.ChangeStatus(cmd.Change(), h.now()); err != nil {
		return err
	}

	if err = repo.Save(ctx, o); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
