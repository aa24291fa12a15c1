package queries

import (
	"errors"

	"dishly/internal/core/domain/model/kernel"
	"dishly/internal/core/domain/model/user"
	"dishly/internal/pkg/guard"
)

var ErrGetOrderQueryIsNotConstructed = errors.New(
	"GetOrderQuery must be created via NewGetOrderQuery constructor",
)

// GetOrderQuery fetches one order visible to the caller.
type GetOrderQuery struct {
	principal user.Principal
	orderID   kernel.UUID

	guard guard.ConstructorGuard
}

func NewGetOrderQuery(principal user.Principal, orderID kernel.UUID) (GetOrderQuery, error) {
	if err := errors.Join(principal.ID.Validate(), orderID.Validate()); err != nil {
		return GetOrderQuery{}, err
	}
	return GetOrderQuery{principal: principal, orderID: orderID, guard: guard.NewConstructorGuard()}, nil
}

// Validate ensures the query was created through the constructor.
func (q GetOrderQuery) Validate() error {
	return q.guard.Validate(ErrGetOrderQueryIsNotConstructed)
}

func (q GetOrderQuery) Principal() user.Principal { return q.principal }
func (q GetOrderQuery) OrderID() kernel.UUID      { return q.orderID }
