package commands

import (
	"errors"

	"dishly/internal/core/domain/model/kernel"
	"dishly/internal/core/domain/model/user"
	"dishly/internal/pkg/guard"
)

var ErrDeleteCategoryCommandIsNotConstructed = errors.New(
	"DeleteCategoryCommand must be created via NewDeleteCategoryCommand constructor",
)

// DeleteCategoryCommand requests removal of an unreferenced category.
type DeleteCategoryCommand struct { //nolint:recvcheck //using for validation
	principal  user.Principal
	categoryID kernel.UUID

	guard guard.ConstructorGuard
}

func NewDeleteCategoryCommand(principal user.Principal, categoryID kernel.UUID) (DeleteCategoryCommand, error) {
	if err := errors.Join(principal.ID.Validate(), categoryID.Validate()); err != nil {
		return DeleteCategoryCommand{}, err
	}
	return DeleteCategoryCommand{
		principal:  principal,
		categoryID: categoryID,
		guard:      guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the command was created through the constructor.
func (c DeleteCategoryCommand) Validate() error {
	return c.guard.Validate(ErrDeleteCategoryCommandIsNotConstructed)
}

func (c DeleteCategoryCommand) Principal() user.Principal { return c.principal }
func (c DeleteCategoryCommand) CategoryID() kernel.UUID   { return c.categoryID }
