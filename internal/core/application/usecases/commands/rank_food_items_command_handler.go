package commands

import (
	"context"

	"dishly/internal/core/domain/model/kernel"
)

// RankFoodItemsCommandHandler sets each food item's popularity score to the
// total quantity delivered, if that is higher than the current score. Scores
// never go down.
type RankFoodItemsCommandHandler struct {
	uowFactory UoWFactory
}

func NewRankFoodItemsCommandHandler(uowFactory UoWFactory) RankFoodItemsCommandHandler {
	return RankFoodItemsCommandHandler{uowFactory: uowFactory}
}

// Handle returns how many items got a higher score.
func (h *RankFoodItemsCommandHandler) Handle(ctx context.Context, cmd RankFoodItemsCommand) (int, error) {
	if err := cmd.Validate(); err != nil {
		return 0, err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return 0, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	quantities, err := uow.OrderRepository().DeliveredQuantities(ctx)
	if err != nil {
		return 0, err
	}
	if len(quantities) == 0 {
		return 0, nil
	}

	ids := make([]kernel.UUID, 0, len(quantities))
	for id := range quantities {
		ids = append(ids, id)
	}

	repo := uow.FoodItemRepository()
	items, err := repo.GetMany(ctx, ids)
	if err != nil {
		return 0, err
	}

	raised := 0
	for _, item := range items {
		score := quantities[item.ID()]
		if score <= item.PopularityScore() {
			continue
		}
		if err = item.RaisePopularity(score); err != nil {
			return 0, err
		}
		if err = repo.UpdatePopularity(ctx, item); err != nil {
			return 0, err
		}
		raised++
	}

	if err = uow.Commit(ctx); err != nil {
		return 0, err
	}
	return raised, nil
}
