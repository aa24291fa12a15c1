package commands

import (
	"errors"

	"dishly/internal/core/domain/model/catalog"
	"dishly/internal/core/domain/model/kernel"
	"dishly/internal/core/domain/model/user"
	"dishly/internal/pkg/errs"
	"dishly/internal/pkg/guard"
)

var ErrCreateCategoryCommandIsNotConstructed = errors.New(
	"CreateCategoryCommand must be created via NewCreateCategoryCommand constructor",
)

// CategoryInput is the client-supplied part of a new category. A nil Status
// means active.
type CategoryInput struct {
	Name           string
	Description    string
	ImageURL       string
	DisplayOrder   int
	IsFeatured     bool
	VendorSpecific bool
	Status         *catalog.CategoryStatus
	Tags           []catalog.CategoryTag
}

// CreateCategoryCommand represents a vendor adding a category. The caller
// becomes its owner.
type CreateCategoryCommand struct { //nolint:recvcheck //using for validation
	categoryID kernel.UUID
	params     catalog.CategoryParams

	guard guard.ConstructorGuard
}

func NewCreateCategoryCommand(
	principal user.Principal,
	categoryID kernel.UUID,
	input CategoryInput,
) (CreateCategoryCommand, error) {
	if !principal.IsVendor() {
		return CreateCategoryCommand{}, errs.NewForbiddenError("create category", "only vendors manage the catalog")
	}
	if err := categoryID.Validate(); err != nil {
		return CreateCategoryCommand{}, err
	}

	status := catalog.CategoryActive
	if input.Status != nil {
		status = *input.Status
	}

	return CreateCategoryCommand{
		categoryID: categoryID,
		params: catalog.CategoryParams{
			Name:           input.Name,
			Description:    input.Description,
			ImageURL:       input.ImageURL,
			DisplayOrder:   input.DisplayOrder,
			IsFeatured:     input.IsFeatured,
			VendorSpecific: input.VendorSpecific,
			CreatedBy:      principal.ID,
			Status:         status,
			Tags:           input.Tags,
		},
		guard: guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the command was created through the constructor.
func (c CreateCategoryCommand) Validate() error {
	return c.guard.Validate(ErrCreateCategoryCommandIsNotConstructed)
}

func (c CreateCategoryCommand) CategoryID() kernel.UUID        { return c.categoryID }
func (c CreateCategoryCommand) Params() catalog.CategoryParams { return c.params }
