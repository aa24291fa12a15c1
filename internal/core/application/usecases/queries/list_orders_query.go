package queries

import (
	"errors"

	"dishly/internal/core/domain/model/kernel"
	"dishly/internal/core/domain/model/order"
	"dishly/internal/core/domain/model/user"
	"dishly/internal/pkg/errs"
	"dishly/internal/pkg/guard"
)

const (
	DefaultListLimit = 50
	MaxListLimit     = 200
)

var ErrListOrdersQueryIsNotConstructed = errors.New(
	"ListOrdersQuery must be created via NewListOrdersQuery constructor",
)

// ListOrdersFilter holds the optional query string filters. A zero Limit
// means DefaultListLimit.
type ListOrdersFilter struct {
	CustomerID *kernel.UUID
	VendorID   *kernel.UUID
	Status     *order.Status
	Limit      int
}

// ListOrdersQuery lists orders visible to the caller, newest first.
// Customers always see their own orders and vendors the orders placed with
// them; a filter naming somebody else is forbidden.
type ListOrdersQuery struct {
	principal user.Principal
	filter    ListOrdersFilter

	guard guard.ConstructorGuard
}

func NewListOrdersQuery(principal user.Principal, filter ListOrdersFilter) (ListOrdersQuery, error) {
	if err := principal.ID.Validate(); err != nil {
		return ListOrdersQuery{}, err
	}
	if filter.Limit == 0 {
		filter.Limit = DefaultListLimit
	}
	if filter.Limit < 1 || filter.Limit > MaxListLimit {
		return ListOrdersQuery{}, errs.NewValueIsOutOfRangeError("limit", filter.Limit, 1, MaxListLimit)
	}
	if filter.Status != nil {
		if err := filter.Status.Validate(); err != nil {
			return ListOrdersQuery{}, err
		}
	}

	switch {
	case principal.IsCustomer():
		if filter.CustomerID != nil && !filter.CustomerID.IsEqual(principal.ID) {
			return ListOrdersQuery{}, errs.NewForbiddenError("list orders", "customers only see their own orders")
		}
		id := principal.ID
		filter.CustomerID = &id
	case principal.IsVendor():
		if filter.VendorID != nil && !filter.VendorID.IsEqual(principal.ID) {
			return ListOrdersQuery{}, errs.NewForbiddenError("list orders", "vendors only see their own orders")
		}
		id := principal.ID
		filter.VendorID = &id
	default:
		return ListOrdersQuery{}, errs.NewForbiddenError("list orders", "unknown role")
	}

	return ListOrdersQuery{principal: principal, filter: filter, guard: guard.NewConstructorGuard()}, nil
}

// Validate ensures the query was created through the constructor.
func (q ListOrdersQuery) Validate() error {
	return q.guard.Validate(ErrListOrdersQueryIsNotConstructed)
}

func (q ListOrdersQuery) Filter() ListOrdersFilter { return q.filter }
