package commands

import (
	"context"

	"dishly/internal/pkg/errs"
)

// DeleteCategoryCommandHandler removes a category in two explicit phases
// inside one transaction: lock the category row and count referencing food
// items, then delete. A food item creation racing the delete waits on the
// lock and then sees the category gone.
type DeleteCategoryCommandHandler struct {
	uowFactory CatalogUoWFactory
}

func NewDeleteCategoryCommandHandler(uowFactory CatalogUoWFactory) DeleteCategoryCommandHandler {
	return DeleteCategoryCommandHandler{uowFactory: uowFactory}
}

// Handle deletes the category.
//
// Errors:
//   - *errs.ObjectNotFoundError when the category does not exist
//   - *errs.ForbiddenError when the caller does not own it
//   - *errs.ReferentialIntegrityError when food items still reference it
func (h *DeleteCategoryCommandHandler) Handle(ctx context.Context, cmd DeleteCategoryCommand) error {
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

	categories := uow.CategoryRepository()
	category, err := categories.GetForUpdate(ctx, cmd.CategoryID())
	if err != nil {
		return err
	}

	if !category.CreatedBy().IsEqual(cmd.Principal().ID) {
		return errs.NewForbiddenError("delete category", "only the owner may delete it")
	}

	count, err := uow.FoodItemRepository().CountByCategory(ctx, cmd.CategoryID())
	if err != nil {
		return err
	}
	if count > 0 {
		return errs.NewReferentialIntegrityError("category", cmd.CategoryID().String(), "food items", count)
	}

	if err = categories.Delete(ctx, cmd.CategoryID()); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
