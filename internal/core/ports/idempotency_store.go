package ports

import (
	"context"

	"dishly/internal/core/domain/model/kernel"
)

// IdempotencyStore remembers which order a client request key produced.
type IdempotencyStore interface {
	// Reserve binds key to orderID unless the key is already bound. It
	// returns the bound order id and whether this call made the binding.
	Reserve(ctx context.Context, key string, orderID kernel.UUID) (kernel.UUID, bool, error)

	// Release drops a binding whose order was never created.
	Release(ctx context.Context, key string) error
}
