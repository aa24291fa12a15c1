package commands

import (
	"errors"

	"dishly/internal/core/domain/model/catalog"
	"dishly/internal/core/domain/model/kernel"
	"dishly/internal/core/domain/model/user"
	"dishly/internal/pkg/errs"
	"dishly/internal/pkg/guard"
)

var ErrCreateFoodItemCommandIsNotConstructed = errors.New(
	"CreateFoodItemCommand must be created via NewCreateFoodItemCommand constructor",
)

// FoodItemInput is the client-supplied part of a new food item. A nil
// PreparationTime means catalog.DefaultPreparationTime and a nil IsAvailable
// means available.
type FoodItemInput struct {
	Name            string
	Description     string
	Price           kernel.Money
	Course          catalog.Course
	CategoryID      *kernel.UUID
	PreparationTime *int
	IsAvailable     *bool
	ImageURL        string
	Ingredients     []string
	DietaryTags     []catalog.DietaryTag
}

// CreateFoodItemCommand represents a vendor adding a dish to its menu.
type CreateFoodItemCommand struct { //nolint:recvcheck //using for validation
	foodItemID kernel.UUID
	params     catalog.FoodItemParams

	guard guard.ConstructorGuard
}

func NewCreateFoodItemCommand(
	principal user.Principal,
	foodItemID kernel.UUID,
	input FoodItemInput,
) (CreateFoodItemCommand, error) {
	if !principal.IsVendor() {
		return CreateFoodItemCommand{}, errs.NewForbiddenError("create food item", "only vendors manage the catalog")
	}
	if err := foodItemID.Validate(); err != nil {
		return CreateFoodItemCommand{}, err
	}

	preparationTime := catalog.DefaultPreparationTime
	if input.PreparationTime != nil {
		preparationTime = *input.PreparationTime
	}
	isAvailable := true
	if input.IsAvailable != nil {
		isAvailable = *input.IsAvailable
	}

	return CreateFoodItemCommand{
		foodItemID: foodItemID,
		params: catalog.FoodItemParams{
			Name:            input.Name,
			Description:     input.Description,
			Price:           input.Price,
			Course:          input.Course,
			CategoryID:      input.CategoryID,
			VendorID:        principal.ID,
			PreparationTime: preparationTime,
			IsAvailable:     isAvailable,
			ImageURL:        input.ImageURL,
			Ingredients:     input.Ingredients,
			DietaryTags:     input.DietaryTags,
		},
		guard: guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the command was created through the constructor.
func (c CreateFoodItemCommand) Validate() error {
	return c.guard.Validate(ErrCreateFoodItemCommandIsNotConstructed)
}

func (c CreateFoodItemCommand) FoodItemID() kernel.UUID        { return c.foodItemID }
func (c CreateFoodItemCommand) Params() catalog.FoodItemParams { return c.params }
