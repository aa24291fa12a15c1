package catalog

import (
	"errors"
	"fmt"
	"regexp"
	"strings"
	"time"
	"unicode/utf8"

	"dishly/internal/core/domain/model/kernel"
	"dishly/internal/pkg/errs"
	"dishly/internal/pkg/guard"
)

const (
	foodItemNameMaxLength        = 100
	foodItemDescriptionMaxLength = 500

	// DefaultPreparationTime is used when a vendor does not state one.
	DefaultPreparationTime = 15
	minPreparationTime     = 5
	maxPreparationTime     = 180
)

var (
	minFoodItemPrice = kernel.ZeroMoney
	maxFoodItemPrice = kernel.MustMoney("1000")

	imageURLPattern = regexp.MustCompile(`^(https?|ftp)://[^\s/$.?#].[^\s]*$`)
)

var (
	// ErrFoodItemIsNotConstructed is returned when a FoodItem was not created via NewFoodItem or RestoreFoodItem.
	ErrFoodItemIsNotConstructed = errors.New("FoodItem must be created via NewFoodItem constructor")
	// ErrPopularityCannotDecrease is returned when a ranking update would lower the score.
	ErrPopularityCannotDecrease = errs.NewValueIsInvalidErrorWithCause(
		"popularityScore", errors.New("popularity score can only increase"))
)

// FoodItemParams carries the writable fields of a FoodItem.
type FoodItemParams struct {
	Name            string
	Description     string
	Price           kernel.Money
	Course          Course
	CategoryID      *kernel.UUID
	VendorID        kernel.UUID
	PreparationTime int
	IsAvailable     bool
	ImageURL        string
	Ingredients     []string
	DietaryTags     []DietaryTag
}

// FoodItemPatch holds the fields a vendor may change. Nil fields are kept.
// ClearCategory detaches the item from its category.
type FoodItemPatch struct {
	Name            *string
	Description     *string
	Price           *kernel.Money
	Course          *Course
	CategoryID      *kernel.UUID
	ClearCategory   bool
	PreparationTime *int
	IsAvailable     *bool
	ImageURL        *string
	Ingredients     []string
	DietaryTags     []DietaryTag
}

// FoodItem is a dish offered by a vendor.
type FoodItem struct {
	id              kernel.UUID
	name            string
	description     string
	price           kernel.Money
	course          Course
	categoryID      *kernel.UUID
	vendorID        kernel.UUID
	preparationTime int
	isAvailable     bool
	imageURL        string
	ingredients     []string
	dietaryTags     []DietaryTag
	popularityScore int
	createdAt       time.Time
	updatedAt       time.Time

	guard guard.ConstructorGuard
}

// NewFoodItem validates params, applies the business guards and creates the item.
//
// Example:
//
//	item, err := catalog.NewFoodItem(kernel.NewUUID(), catalog.FoodItemParams{
//	    Name:            "Cola",
//	    Description:     "Chilled",
//	    Price:           kernel.MustMoney("120"),
//	    Course:          catalog.CourseBeverage,
//	    VendorID:        vendorID,
//	    PreparationTime: catalog.DefaultPreparationTime,
//	    IsAvailable:     true,
//	    Ingredients:     []string{"water", "sugar"},
//	}, time.Now())
//	// item.IsAvailable() == false: beverages above 100 are taken off the menu
func NewFoodItem(id kernel.UUID, params FoodItemParams, now time.Time) (*FoodItem, error) {
	item := &FoodItem{
		createdAt: now,
		updatedAt: now,
		guard:     guard.NewConstructorGuard(),
	}

	if err := errors.Join(id.Validate(), item.apply(params)); err != nil {
		return nil, err
	}
	item.id = id

	return item, nil
}

// RestoreFoodItem rebuilds a persisted item. Guards are applied again, so a
// row written before a guard existed is corrected on the next write.
func RestoreFoodItem(
	id kernel.UUID,
	params FoodItemParams,
	popularityScore int,
	createdAt, updatedAt time.Time,
) (*FoodItem, error) {
	item, err := NewFoodItem(id, params, createdAt)
	if err != nil {
		return nil, err
	}
	if popularityScore < 0 {
		return nil, errs.NewValueIsInvalidErrorWithCause("popularityScore", fmt.Errorf("%d is negative", popularityScore))
	}
	item.popularityScore = popularityScore
	item.updatedAt = updatedAt
	return item, nil
}

// Validate ensures the item was built by a constructor.
func (f *FoodItem) Validate() error {
	if f == nil {
		return ErrFoodItemIsNotConstructed
	}
	return f.guard.Validate(ErrFoodItemIsNotConstructed)
}

func (f *FoodItem) ID() kernel.UUID           { return f.id }
func (f *FoodItem) Name() string              { return f.name }
func (f *FoodItem) Description() string       { return f.description }
func (f *FoodItem) Price() kernel.Money       { return f.price }
func (f *FoodItem) Course() Course            { return f.course }
func (f *FoodItem) VendorID() kernel.UUID     { return f.vendorID }
func (f *FoodItem) PreparationTime() int      { return f.preparationTime }
func (f *FoodItem) IsAvailable() bool         { return f.isAvailable }
func (f *FoodItem) ImageURL() string          { return f.imageURL }
func (f *FoodItem) Ingredients() []string     { return append([]string(nil), f.ingredients...) }
func (f *FoodItem) DietaryTags() []DietaryTag { return append([]DietaryTag(nil), f.dietaryTags...) }
func (f *FoodItem) PopularityScore() int      { return f.popularityScore }
func (f *FoodItem) CreatedAt() time.Time      { return f.createdAt }
func (f *FoodItem) UpdatedAt() time.Time      { return f.updatedAt }

// CategoryID returns the referenced category, or nil.
func (f *FoodItem) CategoryID() *kernel.UUID {
	if f.categoryID == nil {
		return nil
	}
	id := *f.categoryID
	return &id
}

// FormattedPrice renders the price for display, e.g. "$12.50".
func (f *FoodItem) FormattedPrice() string {
	return f.price.Format()
}

// Params returns the writable fields of the item.
func (f *FoodItem) Params() FoodItemParams {
	return FoodItemParams{
		Name:            f.name,
		Description:     f.description,
		Price:           f.price,
		Course:          f.course,
		CategoryID:      f.CategoryID(),
		VendorID:        f.vendorID,
		PreparationTime: f.preparationTime,
		IsAvailable:     f.isAvailable,
		ImageURL:        f.imageURL,
		Ingredients:     f.Ingredients(),
		DietaryTags:     f.DietaryTags(),
	}
}

// Update merges patch onto the current fields, validates the merged record
// and re-applies the business guards. On error the item is left unchanged.
func (f *FoodItem) Update(patch FoodItemPatch, now time.Time) error {
	merged := patch.MergeInto(f.Params())

	next := *f
	if err := next.apply(merged); err != nil {
		return err
	}
	next.updatedAt = now
	*f = next
	return nil
}

// MergeInto returns params with the non-nil patch fields applied.
func (p FoodItemPatch) MergeInto(params FoodItemParams) FoodItemParams {
	if p.Name != nil {
		params.Name = *p.Name
	}
	if p.Description != nil {
		params.Description = *p.Description
	}
	if p.Price != nil {
		params.Price = *p.Price
	}
	if p.Course != nil {
		params.Course = *p.Course
	}
	if p.CategoryID != nil {
		id := *p.CategoryID
		params.CategoryID = &id
	}
	if p.ClearCategory {
		params.CategoryID = nil
	}
	if p.PreparationTime != nil {
		params.PreparationTime = *p.PreparationTime
	}
	if p.IsAvailable != nil {
		params.IsAvailable = *p.IsAvailable
	}
	if p.ImageURL != nil {
		params.ImageURL = *p.ImageURL
	}
	if p.Ingredients != nil {
		params.Ingredients = p.Ingredients
	}
	if p.DietaryTags != nil {
		params.DietaryTags = p.DietaryTags
	}
	return params
}

// RaisePopularity sets the popularity score. Lower scores are rejected.
func (f *FoodItem) RaisePopularity(score int) error {
	if score < f.popularityScore {
		return ErrPopularityCannotDecrease
	}
	f.popularityScore = score
	return nil
}

func (f *FoodItem) apply(p FoodItemParams) error {
	ingredients, ingredientsErr := normalizeIngredients(p.Ingredients)
	tags, tagsErr := normalizeTagSet("dietaryTags", p.DietaryTags, dietaryTags)

	if err := errors.Join(
		f.setName(p.Name),
		f.setDescription(p.Description),
		f.setPrice(p.Price),
		f.setCourse(p.Course),
		f.setCategoryID(p.CategoryID),
		f.setVendorID(p.VendorID),
		f.setPreparationTime(p.PreparationTime),
		f.setImageURL(p.ImageURL),
		ingredientsErr,
		tagsErr,
	); err != nil {
		return err
	}

	guarded := ApplyBusinessGuards(FoodItemParams{
		Price:       f.price,
		Course:      f.course,
		IsAvailable: p.IsAvailable,
	})
	f.isAvailable = guarded.IsAvailable
	f.ingredients = ingredients
	f.dietaryTags = tags
	return nil
}

func (f *FoodItem) setName(name string) error {
	name = strings.TrimSpace(name)
	if name == "" {
		return errs.NewValueIsRequiredError("name")
	}
	if n := utf8.RuneCountInString(name); n > foodItemNameMaxLength {
		return errs.NewValueIsOutOfRangeError("name length", n, 1, foodItemNameMaxLength)
	}
	f.name = name
	return nil
}

func (f *FoodItem) setDescription(description string) error {
	description = strings.TrimSpace(description)
	if description == "" {
		return errs.NewValueIsRequiredError("description")
	}
	if n := utf8.RuneCountInString(description); n > foodItemDescriptionMaxLength {
		return errs.NewValueIsOutOfRangeError("description length", n, 1, foodItemDescriptionMaxLength)
	}
	f.description = description
	return nil
}

func (f *FoodItem) setPrice(price kernel.Money) error {
	if price.LessThan(minFoodItemPrice) || price.GreaterThan(maxFoodItemPrice) {
		return errs.NewValueIsOutOfRangeError("price", price.String(), minFoodItemPrice.String(), maxFoodItemPrice.String())
	}
	f.price = price
	return nil
}

func (f *FoodItem) setCourse(course Course) error {
	if err := course.Validate(); err != nil {
		return err
	}
	f.course = course
	return nil
}

func (f *FoodItem) setCategoryID(categoryID *kernel.UUID) error {
	if categoryID == nil {
		f.categoryID = nil
		return nil
	}
	if err := categoryID.Validate(); err != nil {
		return errs.NewValueIsInvalidErrorWithCause("categoryId", err)
	}
	id := *categoryID
	f.categoryID = &id
	return nil
}

func (f *FoodItem) setVendorID(vendorID kernel.UUID) error {
	if err := vendorID.Validate(); err != nil {
		return errs.NewValueIsRequiredErrorWithCause("vendor", err)
	}
	f.vendorID = vendorID
	return nil
}

func (f *FoodItem) setPreparationTime(minutes int) error {
	if minutes < minPreparationTime || minutes > maxPreparationTime {
		return errs.NewValueIsOutOfRangeError("preparationTime", minutes, minPreparationTime, maxPreparationTime)
	}
	f.preparationTime = minutes
	return nil
}

func (f *FoodItem) setImageURL(imageURL string) error {
	imageURL = strings.TrimSpace(imageURL)
	if imageURL != "" && !imageURLPattern.MatchString(imageURL) {
		return errs.NewValueIsInvalidErrorWithCause("imageUrl", fmt.Errorf("%s is not a valid URL", imageURL))
	}
	f.imageURL = imageURL
	return nil
}

func normalizeIngredients(ingredients []string) ([]string, error) {
	out := make([]string, 0, len(ingredients))
	for _, ingredient := range ingredients {
		if ingredient = strings.TrimSpace(ingredient); ingredient != "" {
			out = append(out, ingredient)
		}
	}
	if len(out) == 0 {
		return nil, errs.NewValueIsRequiredErrorWithCause("ingredients", errors.New("at least one ingredient is required"))
	}
	return out, nil
}
