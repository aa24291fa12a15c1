package ports

import (
	"context"

	"dishly/internal/core/domain/model/catalog"
	"dishly/internal/core/domain/model/kernel"
)

// CategoryRepository defines the persistence contract for categories.
type CategoryRepository interface {
	// Add returns a validation error when another category has the same name.
	Add(ctx context.Context, category *catalog.Category) error

	Get(ctx context.Context, id kernel.UUID) (*catalog.Category, error)

	// GetForUpdate reads the category and locks it against concurrent
	// references until the transaction ends.
	GetForUpdate(ctx context.Context, id kernel.UUID) (*catalog.Category, error)

	// GetForShare reads the category and keeps it from being deleted until
	// the transaction ends.
	GetForShare(ctx context.Context, id kernel.UUID) (*catalog.Category, error)

	// Delete removes the category. Callers check references first.
	Delete(ctx context.Context, id kernel.UUID) error
}

// FoodItemRepository defines the persistence contract for food items.
type FoodItemRepository interface {
	Add(ctx context.Context, item *catalog.FoodItem) error
	Update(ctx context.Context, item *catalog.FoodItem) error
	Get(ctx context.Context, id kernel.UUID) (*catalog.FoodItem, error)

	// GetForUpdate reads the item and locks its row until the unit of work ends.
	GetForUpdate(ctx context.Context, id kernel.UUID) (*catalog.FoodItem, error)

	// UpdatePopularity writes only the popularity score and never lowers the
	// stored one.
	UpdatePopularity(ctx context.Context, item *catalog.FoodItem) error

	// GetMany returns the items that exist among ids. Missing ids are skipped.
	GetMany(ctx context.Context, ids []kernel.UUID) ([]*catalog.FoodItem, error)

	// CountByCategory returns how many items reference the category.
	CountByCategory(ctx context.Context, categoryID kernel.UUID) (int64, error)

	// Search returns the items matching the filter, most popular first.
	Search(ctx context.Context, filter catalog.SearchFilter) ([]*catalog.FoodItem, error)
}
