package commands

import (
	"context"
	"time"

	"dishly/internal/core/domain/model/catalog"
)

// CreateFoodItemCommandHandler validates a new food item, applies the
// business guards and stores it. A referenced category is locked in share
// mode so it cannot be deleted before this transaction commits.
type CreateFoodItemCommandHandler struct {
	uowFactory CatalogUoWFactory
	now        func() time.Time
}

func NewCreateFoodItemCommandHandler(uowFactory CatalogUoWFactory) CreateFoodItemCommandHandler {
	return CreateFoodItemCommandHandler{
		uowFactory: uowFactory,
		now:        func() time.Time { return time.Now().UTC() },
	}
}

func (h *CreateFoodItemCommandHandler) Handle(ctx context.Context, cmd CreateFoodItemCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	item, err := catalog.NewFoodItem(cmd.FoodItemID(), cmd.Params(), h.now())
	if err != nil {
		return err
	}

	uow := h.uowFactory.Create()
	if err = uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	if categoryID := item.CategoryID(); categoryID != nil {
		if _, err = uow.CategoryRepository().GetForShare(ctx, *categoryID); err != nil {
			return err
		}
	}

	if err = uow.FoodItemRepository().Add(ctx, item); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
