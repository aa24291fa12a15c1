package commands

import (
	"context"
	"time"

	"dishly/internal/pkg/errs"
)

// UpdateFoodItemCommandHandler merges a patch onto a stored food item and
// re-runs validation and the business guards on the merged record. Existing
// orders are never touched: their line items carry their own prices.
type UpdateFoodItemCommandHandler struct {
	uowFactory CatalogUoWFactory
	now        func() time.Time
}

func NewUpdateFoodItemCommandHandler(uowFactory CatalogUoWFactory) UpdateFoodItemCommandHandler {
	return UpdateFoodItemCommandHandler{
		uowFactory: uowFactory,
		now:        func() time.Time { return time.Now().UTC() },
	}
}

func (h *UpdateFoodItemCommandHandler) Handle(ctx context.Context, cmd UpdateFoodItemCommand) error {
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

	items := uow.FoodItemRepository()
	item, err := items.GetForUpdate(ctx, cmd.FoodItemID())
	if err != nil {
		return err
	}

	if !cmd.Principal().IsVendor() || !item.VendorID().IsEqual(cmd.Principal().ID) {
		return errs.NewForbiddenError("update food item", "only the owning vendor may change it")
	}

	patch := cmd.Patch()
	if patch.CategoryID != nil && !patch.ClearCategory {
		if _, err = uow.CategoryRepository().GetForShare(ctx, *patch.CategoryID); err != nil {
			return err
		}
	}

	if err = item.Update(patch, h.now()); err != nil {
		return err
	}

	if err = items.Update(ctx, item); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
