package queries

import (
	"context"

	"dishly/internal/core/domain/model/catalog"
)

// FoodItemSearcher is the search side of ports.FoodItemRepository.
type FoodItemSearcher interface {
	Search(ctx context.Context, filter catalog.SearchFilter) ([]*catalog.FoodItem, error)
}

type SearchFoodItemsQueryHandler struct {
	items FoodItemSearcher
}

func NewSearchFoodItemsQueryHandler(items FoodItemSearcher) SearchFoodItemsQueryHandler {
	return SearchFoodItemsQueryHandler{items: items}
}

func (h SearchFoodItemsQueryHandler) Handle(
	ctx context.Context,
	query SearchFoodItemsQuery,
) ([]FoodItemResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	items, err := h.items.Search(ctx, query.Filter())
	if err != nil {
		return nil, err
	}

	out := make([]FoodItemResponse, 0, len(items))
	for _, item := range items {
		out = append(out, newFoodItemResponse(item))
	}
	return out, nil
}
