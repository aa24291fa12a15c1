// Package commands contains business operations that modify system state.
// Implements the Command pattern for write operations in the CQRS architecture.
// All commands follow a consistent pattern: validation, transaction management, and persistence.
package commands

import (
	"context"

	"dishly/internal/core/ports"
)

// Unit of Work interfaces provide transaction management for command handlers.
// These abstractions ensure data consistency across aggregate boundaries.
type (
	// TxManager handles database transaction lifecycle.
	// Ensures atomic operations across multiple repository calls.
	TxManager interface {
		Begin(ctx context.Context) error
		Commit(ctx context.Context) error
		Rollback(ctx context.Context) error
	}

	// OrderRepoFactory provides access to order repository within a transaction.
	OrderRepoFactory interface {
		OrderRepository() ports.OrderRepository
	}

	// CategoryRepoFactory provides access to category repository within a transaction.
	CategoryRepoFactory interface {
		CategoryRepository() ports.CategoryRepository
	}

	// FoodItemRepoFactory provides access to food item repository within a transaction.
	FoodItemRepoFactory interface {
		FoodItemRepository() ports.FoodItemRepository
	}

	// OrderUoW manages transactions for order-only operations such as
	// status and payment transitions.
	OrderUoW interface {
		TxManager
		OrderRepoFactory
	}

	// OrderUoWFactory creates new order unit of work instances.
	OrderUoWFactory interface {
		Create() OrderUoW
	}

	// CatalogUoW manages transactions over categories and food items.
	// Category deletion and food item creation lock the category row
	// through it.
	CatalogUoW interface {
		TxManager
		CategoryRepoFactory
		FoodItemRepoFactory
	}

	// CatalogUoWFactory creates new catalog unit of work instances.
	CatalogUoWFactory interface {
		Create() CatalogUoW
	}

	// UoW manages transactions that read the catalog and write orders.
	//
	// Example:
	//   uow := factory.Create()
	//   err := uow.Begin(ctx)
	//   defer uow.Rollback(ctx)
	//
	//   items, err := uow.FoodItemRepository().GetMany(ctx, ids)
	//   // ... snapshot prices, build the order
	//   err = uow.OrderRepository().Save(ctx, o)
	//
	//   err = uow.Commit(ctx)
	UoW interface {
		TxManager
		OrderRepoFactory
		FoodItemRepoFactory
	}

	// UoWFactory creates new unit of work instances for cross-aggregate operations.
	UoWFactory interface {
		Create() UoW
	}
)
