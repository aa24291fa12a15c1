// Package catalogrepo persists categories and food items. The foreign key
// from food_items.category_id to categories.id backs up the reference check
// done by the delete command.
package catalogrepo

import (
	"time"

	"dishly/internal/core/domain/model/catalog"
	"dishly/internal/core/domain/model/kernel"

	"github.com/google/uuid"
	"github.com/lib/pq"
	"github.com/shopspring/decimal"
)

// CategoryDTO represents the database structure of a category. Names are
// stored normalized, so the unique index is case insensitive in effect.
type CategoryDTO struct {
	ID             uuid.UUID      `gorm:"type:uuid;primaryKey"`
	Name           string         `gorm:"type:varchar(50);uniqueIndex;not null"`
	Description    string         `gorm:"type:varchar(200);not null"`
	ImageURL       string         `gorm:"not null"`
	DisplayOrder   int            `gorm:"not null;default:0"`
	IsFeatured     bool           `gorm:"not null;default:false"`
	VendorSpecific bool           `gorm:"not null;default:false"`
	CreatedBy      uuid.UUID      `gorm:"type:uuid;index;not null"`
	Status         string         `gorm:"type:varchar(16);index;not null"`
	Tags           pq.StringArray `gorm:"type:text[]"`
	CreatedAt      time.Time      `gorm:"autoCreateTime:false;not null"`
	UpdatedAt      time.Time      `gorm:"autoUpdateTime:false;not null"`
}

func (CategoryDTO) TableName() string {
	return "categories"
}

// FoodItemDTO represents the database structure of a food item.
type FoodItemDTO struct {
	ID              uuid.UUID       `gorm:"type:uuid;primaryKey"`
	Name            string          `gorm:"type:varchar(100);not null"`
	Description     string          `gorm:"type:varchar(500);not null"`
	Price           decimal.Decimal `gorm:"type:numeric(10,2);not null"`
	Course          string          `gorm:"type:varchar(32);not null"`
	CategoryID      *uuid.UUID      `gorm:"type:uuid;index"`
	Category        *CategoryDTO    `gorm:"foreignKey:CategoryID;constraint:OnDelete:RESTRICT"`
	VendorID        uuid.UUID       `gorm:"type:uuid;index;not null"`
	PreparationTime int             `gorm:"not null"`
	IsAvailable     bool            `gorm:"not null"`
	ImageURL        string
	Ingredients     pq.StringArray `gorm:"type:text[];not null"`
	DietaryTags     pq.StringArray `gorm:"type:text[]"`
	PopularityScore int            `gorm:"not null;default:0"`
	CreatedAt       time.Time      `gorm:"autoCreateTime:false;not null"`
	UpdatedAt       time.Time      `gorm:"autoUpdateTime:false;not null"`
}

func (FoodItemDTO) TableName() string {
	return "food_items"
}

func categoryFromDomain(c *catalog.Category) CategoryDTO {
	return CategoryDTO{
		ID:             c.ID().Bytes(),
		Name:           c.Name(),
		Description:    c.Description(),
		ImageURL:       c.ImageURL(),
		DisplayOrder:   c.DisplayOrder(),
		IsFeatured:     c.IsFeatured(),
		VendorSpecific: c.VendorSpecific(),
		CreatedBy:      c.CreatedBy().Bytes(),
		Status:         c.Status().String(),
		Tags:           toStrings(c.Tags()),
		CreatedAt:      c.CreatedAt(),
		UpdatedAt:      c.UpdatedAt(),
	}
}

func categoryToDomain(dto CategoryDTO) (*catalog.Category, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}
	createdBy, err := kernel.UUIDFromBytes(dto.CreatedBy[:])
	if err != nil {
		return nil, err
	}
	status, err := catalog.ParseCategoryStatus(dto.Status)
	if err != nil {
		return nil, err
	}

	return catalog.RestoreCategory(id, catalog.CategoryParams{
		Name:           dto.Name,
		Description:    dto.Description,
		ImageURL:       dto.ImageURL,
		DisplayOrder:   dto.DisplayOrder,
		IsFeatured:     dto.IsFeatured,
		VendorSpecific: dto.VendorSpecific,
		CreatedBy:      createdBy,
		Status:         status,
		Tags:           fromStrings[catalog.CategoryTag](dto.Tags),
	}, dto.CreatedAt, dto.UpdatedAt)
}

func foodItemFromDomain(f *catalog.FoodItem) FoodItemDTO {
	var categoryID *uuid.UUID
	if id := f.CategoryID(); id != nil {
		raw := id.Bytes()
		categoryID = &raw
	}

	return FoodItemDTO{
		ID:              f.ID().Bytes(),
		Name:            f.Name(),
		Description:     f.Description(),
		Price:           f.Price().Amount(),
		Course:          f.Course().String(),
		CategoryID:      categoryID,
		VendorID:        f.VendorID().Bytes(),
		PreparationTime: f.PreparationTime(),
		IsAvailable:     f.IsAvailable(),
		ImageURL:        f.ImageURL(),
		Ingredients:     f.Ingredients(),
		DietaryTags:     toStrings(f.DietaryTags()),
		PopularityScore: f.PopularityScore(),
		CreatedAt:       f.CreatedAt(),
		UpdatedAt:       f.UpdatedAt(),
	}
}

// foodItemColumns lists the columns an update rewrites.
func foodItemColumns(dto FoodItemDTO) map[string]any {
	return map[string]any{
		"name":             dto.Name,
		"description":      dto.Description,
		"price":            dto.Price,
		"course":           dto.Course,
		"category_id":      dto.CategoryID,
		"preparation_time": dto.PreparationTime,
		"is_available":     dto.IsAvailable,
		"image_url":        dto.ImageURL,
		"ingredients":      dto.Ingredients,
		"dietary_tags":     dto.DietaryTags,
		"popularity_score": dto.PopularityScore,
		"updated_at":       dto.UpdatedAt,
	}
}

func foodItemToDomain(dto FoodItemDTO) (*catalog.FoodItem, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}
	vendorID, err := kernel.UUIDFromBytes(dto.VendorID[:])
	if err != nil {
		return nil, err
	}
	price, err := kernel.NewMoney(dto.Price)
	if err != nil {
		return nil, err
	}
	course, err := catalog.ParseCourse(dto.Course)
	if err != nil {
		return nil, err
	}

	var categoryID *kernel.UUID
	if dto.CategoryID != nil {
		cID, categoryErr := kernel.UUIDFromBytes((*dto.CategoryID)[:])
		if categoryErr != nil {
			return nil, categoryErr
		}
		categoryID = &cID
	}

	return catalog.RestoreFoodItem(id, catalog.FoodItemParams{
		Name:            dto.Name,
		Description:     dto.Description,
		Price:           price,
		Course:          course,
		CategoryID:      categoryID,
		VendorID:        vendorID,
		PreparationTime: dto.PreparationTime,
		IsAvailable:     dto.IsAvailable,
		ImageURL:        dto.ImageURL,
		Ingredients:     dto.Ingredients,
		DietaryTags:     fromStrings[catalog.DietaryTag](dto.DietaryTags),
	}, dto.PopularityScore, dto.CreatedAt, dto.UpdatedAt)
}

func toStrings[T ~string](values []T) pq.StringArray {
	out := make(pq.StringArray, 0, len(values))
	for _, v := range values {
		out = append(out, string(v))
	}
	return out
}

func fromStrings[T ~string](values []string) []T {
	out := make([]T, 0, len(values))
	for _, v := range values {
		out = append(out, T(v))
	}
	return out
}
