package queries

import (
	"errors"

	"dishly/internal/core/domain/model/catalog"
	"dishly/internal/core/domain/model/kernel"
	"dishly/internal/pkg/errs"
	"dishly/internal/pkg/guard"
)

const (
	DefaultSearchLimit = 20
	MaxSearchLimit     = 200
)

var ErrSearchFoodItemsQueryIsNotConstructed = errors.New(
	"SearchFoodItemsQuery must be created via NewSearchFoodItemsQuery constructor",
)

// SearchFoodItemsQuery finds dishes by the words of their name. The menu is
// public, so the query carries no principal.
type SearchFoodItemsQuery struct {
	filter catalog.SearchFilter

	guard guard.ConstructorGuard
}

// NewSearchFoodItemsQuery fills in DefaultSearchLimit for a zero limit.
func NewSearchFoodItemsQuery(filter catalog.SearchFilter) (SearchFoodItemsQuery, error) {
	if filter.Limit == 0 {
		filter.Limit = DefaultSearchLimit
	}
	if filter.Limit > MaxSearchLimit {
		return SearchFoodItemsQuery{}, errs.NewValueIsOutOfRangeError("limit", filter.Limit, 1, MaxSearchLimit)
	}
	if err := filter.Validate(); err != nil {
		return SearchFoodItemsQuery{}, err
	}
	return SearchFoodItemsQuery{filter: filter, guard: guard.NewConstructorGuard()}, nil
}

// Validate ensures the query was created through the constructor.
func (q SearchFoodItemsQuery) Validate() error {
	return q.guard.Validate(ErrSearchFoodItemsQueryIsNotConstructed)
}

func (q SearchFoodItemsQuery) Filter() catalog.SearchFilter { return q.filter }

// FoodItemResponse is a dish as listed on the public menu.
type FoodItemResponse struct {
	ID              kernel.UUID
	VendorID        kernel.UUID
	CategoryID      *kernel.UUID
	Name            string
	Description     string
	Price           kernel.Money
	FormattedPrice  string
	Course          catalog.Course
	PreparationTime int
	IsAvailable     bool
	ImageURL        string
	Ingredients     []string
	DietaryTags     []catalog.DietaryTag
	PopularityScore int
}

func newFoodItemResponse(item *catalog.FoodItem) FoodItemResponse {
	return FoodItemResponse{
		ID:              item.ID(),
		VendorID:        item.VendorID(),
		CategoryID:      item.CategoryID(),
		Name:            item.Name(),
		Description:     item.Description(),
		Price:           item.Price(),
		FormattedPrice:  item.FormattedPrice(),
		Course:          item.Course(),
		PreparationTime: item.PreparationTime(),
		IsAvailable:     item.IsAvailable(),
		ImageURL:        item.ImageURL(),
		Ingredients:     item.Ingredients(),
		DietaryTags:     item.DietaryTags(),
		PopularityScore: item.PopularityScore(),
	}
}
