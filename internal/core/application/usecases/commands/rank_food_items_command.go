package commands

import (
	"errors"

	"dishly/internal/pkg/guard"
)

var ErrRankFoodItemsCommandIsNotConstructed = errors.New(
	"RankFoodItemsCommand must be created via NewRankFoodItemsCommand constructor",
)

// RankFoodItemsCommand asks for popularity scores to be raised from delivered
// order quantities.
type RankFoodItemsCommand struct {
	guard guard.ConstructorGuard
}

func NewRankFoodItemsCommand() RankFoodItemsCommand {
	return RankFoodItemsCommand{guard: guard.NewConstructorGuard()}
}

// Validate ensures the command was created through the constructor.
func (c RankFoodItemsCommand) Validate() error {
	return c.guard.Validate(ErrRankFoodItemsCommandIsNotConstructed)
}
