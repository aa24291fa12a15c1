package catalogrepo

import (
	"context"
	"errors"

	"dishly/internal/core/domain/model/catalog"
	"dishly/internal/core/domain/model/kernel"
	"dishly/internal/pkg/errs"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// GormCategoryRepository implements CategoryRepository using GORM.
type GormCategoryRepository struct {
	db *gorm.DB
}

func NewGormCategoryRepository(db *gorm.DB) *GormCategoryRepository {
	return &GormCategoryRepository{db: db}
}

// Add inserts the category. A taken name is reported as a validation error.
func (r *GormCategoryRepository) Add(ctx context.Context, category *catalog.Category) error {
	if err := category.Validate(); err != nil {
		return err
	}

	dto := categoryFromDomain(category)
	if err := r.db.WithContext(ctx).Create(&dto).Error; err != nil {
		if pgCode(err) == pgUniqueViolation {
			return errs.NewValueIsInvalidErrorWithCause("name", duplicateNameCause(dto.Name))
		}
		return err
	}
	return nil
}

// Get retrieves a category by ID.
func (r *GormCategoryRepository) Get(ctx context.Context, id kernel.UUID) (*catalog.Category, error) {
	return r.get(ctx, id, nil)
}

// GetForUpdate reads the category with SELECT ... FOR UPDATE.
func (r *GormCategoryRepository) GetForUpdate(ctx context.Context, id kernel.UUID) (*catalog.Category, error) {
	return r.get(ctx, id, &clause.Locking{Strength: clause.LockingStrengthUpdate})
}

// GetForShare reads the category with SELECT ... FOR SHARE.
func (r *GormCategoryRepository) GetForShare(ctx context.Context, id kernel.UUID) (*catalog.Category, error) {
	return r.get(ctx, id, &clause.Locking{Strength: clause.LockingStrengthShare})
}

func (r *GormCategoryRepository) get(
	ctx context.Context,
	id kernel.UUID,
	locking *clause.Locking,
) (*catalog.Category, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}

	query := r.db.WithContext(ctx)
	if locking != nil {
		query = query.Clauses(*locking)
	}

	var dto CategoryDTO
	if err := query.First(&dto, "id = ?", id.Bytes()).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("category", id.String())
		}
		return nil, err
	}

	return categoryToDomain(dto)
}

// Delete removes the category. A food item inserted after the caller's
// reference check trips the foreign key and is reported as a referential
// integrity error.
func (r *GormCategoryRepository) Delete(ctx context.Context, id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}

	result := r.db.WithContext(ctx).Delete(&CategoryDTO{}, "id = ?", id.Bytes())
	if result.Error != nil {
		if pgCode(result.Error) == pgForeignKeyViolation {
			return errs.NewReferentialIntegrityErrorWithCause("category", id.String(), "food items", result.Error)
		}
		return result.Error
	}

	if result.RowsAffected == 0 {
		return errs.NewObjectNotFoundError("category", id.String())
	}
	return nil
}
