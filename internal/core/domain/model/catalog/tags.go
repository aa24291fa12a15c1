package catalog

import (
	"fmt"
	"slices"

	"dishly/internal/pkg/errs"
)

// CategoryTag marks a category for merchandising.
type CategoryTag string

const (
	TagPopular  CategoryTag = "popular"
	TagSeasonal CategoryTag = "seasonal"
	TagHealthy  CategoryTag = "healthy"
	TagLocal    CategoryTag = "local"
)

var categoryTags = []CategoryTag{TagPopular, TagSeasonal, TagHealthy, TagLocal}

// DietaryTag describes a dietary property of a food item.
type DietaryTag string

const (
	DietVegetarian DietaryTag = "vegetarian"
	DietVegan      DietaryTag = "vegan"
	DietGlutenFree DietaryTag = "gluten-free"
	DietHalal      DietaryTag = "halal"
	DietKosher     DietaryTag = "kosher"
	DietSpicy      DietaryTag = "spicy"
)

var dietaryTags = []DietaryTag{DietVegetarian, DietVegan, DietGlutenFree, DietHalal, DietKosher, DietSpicy}

// normalizeTagSet validates every member against allowed and returns the set
// without duplicates, in first-seen order.
func normalizeTagSet[T ~string](param string, tags []T, allowed []T) ([]T, error) {
	out := make([]T, 0, len(tags))
	for _, tag := range tags {
		if !slices.Contains(allowed, tag) {
			return nil, errs.NewValueIsInvalidErrorWithCause(param, fmt.Errorf("%q is not an allowed tag", string(tag)))
		}
		if !slices.Contains(out, tag) {
			out = append(out, tag)
		}
	}
	return out, nil
}
