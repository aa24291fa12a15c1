package commands

import (
	"context"
	"time"

	"dishly/internal/core/domain/model/catalog"
)

// CreateCategoryCommandHandler validates and stores a new category. Field
// errors are reported together; a taken name is reported by the repository.
type CreateCategoryCommandHandler struct {
	uowFactory CatalogUoWFactory
	now        func() time.Time
}

func NewCreateCategoryCommandHandler(uowFactory CatalogUoWFactory) CreateCategoryCommandHandler {
	return CreateCategoryCommandHandler{
		uowFactory: uowFactory,
		now:        func() time.Time { return time.Now().UTC() },
	}
}

func (h *CreateCategoryCommandHandler) Handle(ctx context.Context, cmd CreateCategoryCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	category, err := catalog.NewCategory(cmd.CategoryID(), cmd.Params(), h.now())
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

	if err = uow.CategoryRepository().Add(ctx, category); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
