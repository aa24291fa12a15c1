package catalogrepo

import (
	"context"
	"errors"
	"strings"

	"dishly/internal/core/domain/model/catalog"
	"dishly/internal/core/domain/model/kernel"
	"dishly/internal/pkg/errs"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// GormFoodItemRepository implements FoodItemRepository using GORM.
type GormFoodItemRepository struct {
	db *gorm.DB
}

func NewGormFoodItemRepository(db *gorm.DB) *GormFoodItemRepository {
	return &GormFoodItemRepository{db: db}
}

// Add inserts the item. A category that vanished since it was checked
// trips the foreign key and is reported as not found.
func (r *GormFoodItemRepository) Add(ctx context.Context, item *catalog.FoodItem) error {
	if err := item.Validate(); err != nil {
		return err
	}

	dto := foodItemFromDomain(item)
	if err := r.db.WithContext(ctx).Omit("Category").Create(&dto).Error; err != nil {
		return translateCategoryReference(err, item)
	}
	return nil
}

// Update rewrites every mutable column of the item.
func (r *GormFoodItemRepository) Update(ctx context.Context, item *catalog.FoodItem) error {
	if err := item.Validate(); err != nil {
		return err
	}

	dto := foodItemFromDomain(item)
	result := r.db.WithContext(ctx).
		Model(&FoodItemDTO{}).
		Where("id = ?", dto.ID).
		Updates(foodItemColumns(dto))
	if result.Error != nil {
		return translateCategoryReference(result.Error, item)
	}

	if result.RowsAffected == 0 {
		return errs.NewObjectNotFoundError("food item", item.ID().String())
	}
	return nil
}

// UpdatePopularity raises popularity_score to the item's score. A higher
// stored score wins, and no other column is touched.
func (r *GormFoodItemRepository) UpdatePopularity(ctx context.Context, item *catalog.FoodItem) error {
	if err := item.Validate(); err != nil {
		return err
	}

	result := r.db.WithContext(ctx).
		Model(&FoodItemDTO{}).
		Where("id = ?", item.ID().Bytes()).
		UpdateColumn("popularity_score", gorm.Expr("GREATEST(popularity_score, ?)", item.PopularityScore()))
	if result.Error != nil {
		return result.Error
	}

	if result.RowsAffected == 0 {
		return errs.NewObjectNotFoundError("food item", item.ID().String())
	}
	return nil
}

// Get retrieves a food item by ID.
func (r *GormFoodItemRepository) Get(ctx context.Context, id kernel.UUID) (*catalog.FoodItem, error) {
	return r.get(ctx, id, nil)
}

// GetForUpdate reads the food item with SELECT ... FOR UPDATE.
func (r *GormFoodItemRepository) GetForUpdate(ctx context.Context, id kernel.UUID) (*catalog.FoodItem, error) {
	return r.get(ctx, id, &clause.Locking{Strength: clause.LockingStrengthUpdate})
}

func (r *GormFoodItemRepository) get(
	ctx context.Context,
	id kernel.UUID,
	locking *clause.Locking,
) (*catalog.FoodItem, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}

	query := r.db.WithContext(ctx)
	if locking != nil {
		query = query.Clauses(*locking)
	}

	var dto FoodItemDTO
	if err := query.First(&dto, "id = ?", id.Bytes()).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("food item", id.String())
		}
		return nil, err
	}

	return foodItemToDomain(dto)
}

// GetMany returns the stored items among ids, in no particular order.
func (r *GormFoodItemRepository) GetMany(ctx context.Context, ids []kernel.UUID) ([]*catalog.FoodItem, error) {
	if len(ids) == 0 {
		return []*catalog.FoodItem{}, nil
	}

	raw := make([]uuid.UUID, 0, len(ids))
	for _, id := range ids {
		if err := id.Validate(); err != nil {
			return nil, err
		}
		raw = append(raw, id.Bytes())
	}

	var dtos []FoodItemDTO
	if err := r.db.WithContext(ctx).Where("id IN ?", raw).Find(&dtos).Error; err != nil {
		return nil, err
	}

	items := make([]*catalog.FoodItem, 0, len(dtos))
	for _, dto := range dtos {
		item, err := foodItemToDomain(dto)
		if err != nil {
			return nil, err
		}
		items = append(items, item)
	}
	return items, nil
}

// CountByCategory counts the items filed under the category.
func (r *GormFoodItemRepository) CountByCategory(ctx context.Context, categoryID kernel.UUID) (int64, error) {
	if err := categoryID.Validate(); err != nil {
		return 0, err
	}

	var count int64
	err := r.db.WithContext(ctx).
		Model(&FoodItemDTO{}).
		Where("category_id = ?", categoryID.Bytes()).
		Count(&count).Error
	return count, err
}

// Search matches the words of the filter text against the item name with
// Postgres full text search and applies the remaining filters in SQL.
func (r *GormFoodItemRepository) Search(
	ctx context.Context,
	filter catalog.SearchFilter,
) ([]*catalog.FoodItem, error) {
	if err := filter.Validate(); err != nil {
		return nil, err
	}

	query := r.db.WithContext(ctx)
	if text := strings.TrimSpace(filter.Text); text != "" {
		query = query.Where(nameSearchVector+" @@ plainto_tsquery('simple', ?)", text)
	}
	if filter.VendorID != nil {
		query = query.Where("vendor_id = ?", filter.VendorID.Bytes())
	}
	if filter.CategoryID != nil {
		query = query.Where("category_id = ?", filter.CategoryID.Bytes())
	}
	if filter.AvailableOnly {
		query = query.Where("is_available = ?", true)
	}

	var dtos []FoodItemDTO
	err := query.
		Order("popularity_score DESC").
		Order("name").
		Limit(filter.Limit).
		Find(&dtos).Error
	if err != nil {
		return nil, err
	}

	items := make([]*catalog.FoodItem, 0, len(dtos))
	for _, dto := range dtos {
		item, err := foodItemToDomain(dto)
		if err != nil {
			return nil, err
		}
		items = append(items, item)
	}
	return items, nil
}

func translateCategoryReference(err error, item *catalog.FoodItem) error {
	if pgCode(err) != pgForeignKeyViolation {
		return err
	}
	var categoryID string
	if id := item.CategoryID(); id != nil {
		categoryID = id.String()
	}
	return errs.NewObjectNotFoundErrorWithCause("category", categoryID, err)
}
