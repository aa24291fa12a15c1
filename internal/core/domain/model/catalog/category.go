package catalog

import (
	"errors"
	"fmt"
	"regexp"
	"strings"
	"time"
	"unicode"
	"unicode/utf8"

	"dishly/internal/core/domain/model/kernel"
	"dishly/internal/pkg/errs"
	"dishly/internal/pkg/guard"
)

const (
	categoryNameMinLength        = 3
	categoryNameMaxLength        = 50
	categoryDescriptionMaxLength = 200
)

var imageExtensionPattern = regexp.MustCompile(`(?i)\.(jpg|jpeg|png|webp)$`)

// ErrCategoryIsNotConstructed is returned when a Category was not created via NewCategory or RestoreCategory.
var ErrCategoryIsNotConstructed = errors.New("Category must be created via NewCategory constructor")

// CategoryParams carries the writable fields of a Category.
type CategoryParams struct {
	Name           string
	Description    string
	ImageURL       string
	DisplayOrder   int
	IsFeatured     bool
	VendorSpecific bool
	CreatedBy      kernel.UUID
	Status         CategoryStatus
	Tags           []CategoryTag
}

// Category groups food items for display.
type Category struct {
	id             kernel.UUID
	name           string
	description    string
	imageURL       string
	displayOrder   int
	isFeatured     bool
	vendorSpecific bool
	createdBy      kernel.UUID
	status         CategoryStatus
	tags           []CategoryTag
	createdAt      time.Time
	updatedAt      time.Time

	guard guard.ConstructorGuard
}

// NormalizeCategoryName trims name and rewrites it as a leading capital
// followed by lower case: "  sEAfood " becomes "Seafood".
func NormalizeCategoryName(name string) string {
	name = strings.TrimSpace(name)
	if name == "" {
		return name
	}
	first, size := utf8.DecodeRuneInString(name)
	return string(unicode.ToUpper(first)) + strings.ToLower(name[size:])
}

// NewCategory validates params and creates a category stamped with now.
func NewCategory(id kernel.UUID, params CategoryParams, now time.Time) (*Category, error) {
	c := &Category{
		createdAt: now,
		updatedAt: now,
		guard:     guard.NewConstructorGuard(),
	}

	if err := errors.Join(id.Validate(), c.apply(params)); err != nil {
		return nil, err
	}
	c.id = id

	return c, nil
}

// RestoreCategory rebuilds a persisted category. Stored values are
// re-validated so corrupt rows surface as errors.
func RestoreCategory(id kernel.UUID, params CategoryParams, createdAt, updatedAt time.Time) (*Category, error) {
	c, err := NewCategory(id, params, createdAt)
	if err != nil {
		return nil, err
	}
	c.updatedAt = updatedAt
	return c, nil
}

// Validate ensures the category was built by a constructor.
func (c *Category) Validate() error {
	if c == nil {
		return ErrCategoryIsNotConstructed
	}
	return c.guard.Validate(ErrCategoryIsNotConstructed)
}

func (c *Category) ID() kernel.UUID        { return c.id }
func (c *Category) Name() string           { return c.name }
func (c *Category) Description() string    { return c.description }
func (c *Category) ImageURL() string       { return c.imageURL }
func (c *Category) DisplayOrder() int      { return c.displayOrder }
func (c *Category) IsFeatured() bool       { return c.isFeatured }
func (c *Category) VendorSpecific() bool   { return c.vendorSpecific }
func (c *Category) CreatedBy() kernel.UUID { return c.createdBy }
func (c *Category) Status() CategoryStatus { return c.status }
func (c *Category) Tags() []CategoryTag    { return append([]CategoryTag(nil), c.tags...) }
func (c *Category) CreatedAt() time.Time   { return c.createdAt }
func (c *Category) UpdatedAt() time.Time   { return c.updatedAt }

// Params returns the writable fields, e.g. to merge a patch onto.
func (c *Category) Params() CategoryParams {
	return CategoryParams{
		Name:           c.name,
		Description:    c.description,
		ImageURL:       c.imageURL,
		DisplayOrder:   c.displayOrder,
		IsFeatured:     c.isFeatured,
		VendorSpecific: c.vendorSpecific,
		CreatedBy:      c.createdBy,
		Status:         c.status,
		Tags:           c.Tags(),
	}
}

// Update validates params and replaces every writable field. On error the
// category is left unchanged.
func (c *Category) Update(params CategoryParams, now time.Time) error {
	next := *c
	if err := next.apply(params); err != nil {
		return err
	}
	next.updatedAt = now
	*c = next
	return nil
}

func (c *Category) apply(p CategoryParams) error {
	tags, tagsErr := normalizeTagSet("tags", p.Tags, categoryTags)

	if err := errors.Join(
		c.setName(p.Name),
		c.setDescription(p.Description),
		c.setImageURL(p.ImageURL),
		c.setDisplayOrder(p.DisplayOrder),
		c.setCreatedBy(p.CreatedBy),
		c.setStatus(p.Status),
		tagsErr,
	); err != nil {
		return err
	}

	c.isFeatured = p.IsFeatured
	c.vendorSpecific = p.VendorSpecific
	c.tags = tags
	return nil
}

func (c *Category) setName(name string) error {
	name = NormalizeCategoryName(name)
	if name == "" {
		return errs.NewValueIsRequiredError("name")
	}
	if n := utf8.RuneCountInString(name); n < categoryNameMinLength || n > categoryNameMaxLength {
		return errs.NewValueIsOutOfRangeErrorWithCause("name length", n, categoryNameMinLength, categoryNameMaxLength,
			fmt.Errorf("category name must be %d-%d characters", categoryNameMinLength, categoryNameMaxLength))
	}
	c.name = name
	return nil
}

func (c *Category) setDescription(description string) error {
	description = strings.TrimSpace(description)
	if description == "" {
		return errs.NewValueIsRequiredError("description")
	}
	if n := utf8.RuneCountInString(description); n > categoryDescriptionMaxLength {
		return errs.NewValueIsOutOfRangeError("description length", n, 1, categoryDescriptionMaxLength)
	}
	c.description = description
	return nil
}

func (c *Category) setImageURL(imageURL string) error {
	imageURL = strings.TrimSpace(imageURL)
	if imageURL == "" {
		return errs.NewValueIsRequiredError("imageUrl")
	}
	if !imageExtensionPattern.MatchString(imageURL) {
		return errs.NewValueIsInvalidErrorWithCause("imageUrl", fmt.Errorf("%s is not a valid image URL", imageURL))
	}
	c.imageURL = imageURL
	return nil
}

func (c *Category) setDisplayOrder(order int) error {
	if order < 0 {
		return errs.NewValueIsInvalidErrorWithCause("displayOrder", fmt.Errorf("%d is negative", order))
	}
	c.displayOrder = order
	return nil
}

func (c *Category) setCreatedBy(createdBy kernel.UUID) error {
	if err := createdBy.Validate(); err != nil {
		return errs.NewValueIsRequiredErrorWithCause("createdBy", err)
	}
	c.createdBy = createdBy
	return nil
}

func (c *Category) setStatus(status CategoryStatus) error {
	if err := status.Validate(); err != nil {
		return err
	}
	c.status = status
	return nil
}
