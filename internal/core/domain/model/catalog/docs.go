// Package catalog provides the Category and FoodItem entities vendors publish
// and customers order from.
//
// The package includes:
//   - Category: a named, image-backed grouping of food items with a display order
//   - FoodItem: a priced dish with preparation time, ingredients and dietary tags
//   - Course: the fixed enumeration every food item is classified by
//   - ApplyBusinessGuards: the explicit transformation every food item write goes through
//
// Key business rules:
//   - Category names are 3-50 characters and stored as "Leading capital, rest lower"
//   - Category images must be .jpg, .jpeg, .png or .webp
//   - Food item price is within [0, 1000] and preparation time within [5, 180] minutes
//   - A beverage priced above 100 is never available; the guard runs on create and on every update
//   - Popularity score only ever increases
//
// Uniqueness of category names and the rule that a category cannot be deleted
// while food items reference it are enforced by the store, not by the entities.
package catalog
