package queries

import (
	"errors"

	"dishly/internal/core/domain/model/catalog"
	"dishly/internal/core/domain/model/kernel"
	"dishly/internal/pkg/guard"
)

var ErrListCategoriesQueryIsNotConstructed = errors.New(
	"ListCategoriesQuery must be created via NewListCategoriesQuery constructor",
)

// ListCategoriesQuery lists categories together with the number of food
// items filed under each. A nil status lists every category.
type ListCategoriesQuery struct {
	status *catalog.CategoryStatus

	guard guard.ConstructorGuard
}

func NewListCategoriesQuery(status *catalog.CategoryStatus) (ListCategoriesQuery, error) {
	if status != nil {
		if err := status.Validate(); err != nil {
			return ListCategoriesQuery{}, err
		}
	}
	return ListCategoriesQuery{status: status, guard: guard.NewConstructorGuard()}, nil
}

// Validate ensures the query was created through the constructor.
func (q ListCategoriesQuery) Validate() error {
	return q.guard.Validate(ErrListCategoriesQueryIsNotConstructed)
}

func (q ListCategoriesQuery) Status() *catalog.CategoryStatus { return q.status }

type ListCategoriesQueryResponse struct {
	ID           kernel.UUID
	Name         string
	Description  string
	ImageURL     string
	DisplayOrder int
	IsFeatured   bool
	Status       catalog.CategoryStatus
	ItemCount    int64
}
