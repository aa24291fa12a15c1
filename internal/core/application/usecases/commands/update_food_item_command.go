package commands

import (
	"errors"

	"dishly/internal/core/domain/model/catalog"
	"dishly/internal/core/domain/model/kernel"
	"dishly/internal/core/domain/model/user"
	"dishly/internal/pkg/guard"
)

var ErrUpdateFoodItemCommandIsNotConstructed = errors.New(
	"UpdateFoodItemCommand must be created via NewUpdateFoodItemCommand constructor",
)

// UpdateFoodItemCommand carries a partial update of a food item.
type UpdateFoodItemCommand struct { //nolint:recvcheck //using for validation
	principal  user.Principal
	foodItemID kernel.UUID
	patch      catalog.FoodItemPatch

	guard guard.ConstructorGuard
}

func NewUpdateFoodItemCommand(
	principal user.Principal,
	foodItemID kernel.UUID,
	patch catalog.FoodItemPatch,
) (UpdateFoodItemCommand, error) {
	if err := errors.Join(principal.ID.Validate(), foodItemID.Validate()); err != nil {
		return UpdateFoodItemCommand{}, err
	}
	return UpdateFoodItemCommand{
		principal:  principal,
		foodItemID: foodItemID,
		patch:      patch,
		guard:      guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the command was created through the constructor.
func (c UpdateFoodItemCommand) Validate() error {
	return c.guard.Validate(ErrUpdateFoodItemCommandIsNotConstructed)
}

func (c UpdateFoodItemCommand) Principal() user.Principal    { return c.principal }
func (c UpdateFoodItemCommand) FoodItemID() kernel.UUID      { return c.foodItemID }
func (c UpdateFoodItemCommand) Patch() catalog.FoodItemPatch { return c.patch }
