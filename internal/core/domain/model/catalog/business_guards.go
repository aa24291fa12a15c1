package catalog

import "dishly/internal/core/domain/model/kernel"

// beverageAvailabilityLimit is the price above which a beverage is treated as
// mispriced and taken off the menu.
var beverageAvailabilityLimit = kernel.MustMoney("100")

// ApplyBusinessGuards returns candidate with the catalog business guards
// applied. It is pure and runs on every food item write path, after
// validation and before the item is stored.
//
// Guards:
//   - a beverage priced above 100 is made unavailable, whatever the caller asked for
func ApplyBusinessGuards(candidate FoodItemParams) FoodItemParams {
	if candidate.Course == CourseBeverage && candidate.Price.GreaterThan(beverageAvailabilityLimit) {
		candidate.IsAvailable = false
	}
	return candidate
}
