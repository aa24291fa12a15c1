package queries

import (
	"context"

	"dishly/internal/core/domain/model/catalog"
	"dishly/internal/core/domain/model/kernel"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// ListCategoriesQueryHandler reads categories straight from the database.
// The item count is derived with a join, never stored.
//
// Example:
//
//	handler := NewListCategoriesQueryHandler(db)
//	query, _ := NewListCategoriesQuery(nil)
//
//	categories, err := handler.Handle(ctx, query)
type ListCategoriesQueryHandler struct {
	db *gorm.DB
}

func NewListCategoriesQueryHandler(db *gorm.DB) ListCategoriesQueryHandler {
	return ListCategoriesQueryHandler{db: db}
}

func (h ListCategoriesQueryHandler) Handle(
	ctx context.Context,
	query ListCategoriesQuery,
) ([]ListCategoriesQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	sql := `
		SELECT
			c.id,
			c.name,
			c.description,
			c.image_url,
			c.display_order,
			c.is_featured,
			c.status,
			COUNT(f.id) AS item_count
		FROM categories c
		LEFT JOIN food_items f ON f.category_id = c.id`
	var args []any
	if status := query.Status(); status != nil {
		sql += `
		WHERE c.status = ?`
		args = append(args, status.String())
	}
	sql += `
		GROUP BY c.id
		ORDER BY c.display_order, c.name`

	rows, err := h.db.WithContext(ctx).Raw(sql, args...).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	categories := make([]ListCategoriesQueryResponse, 0)
	for rows.Next() {
		var (
			category ListCategoriesQueryResponse
			id       uuid.UUID
			status   string
		)
		err = rows.Scan(
			&id,
			&category.Name,
			&category.Description,
			&category.ImageURL,
			&category.DisplayOrder,
			&category.IsFeatured,
			&status,
			&category.ItemCount,
		)
		if err != nil {
			return nil, err
		}

		categoryID, idErr := kernel.UUIDFromBytes(id[:])
		if idErr != nil {
			return nil, idErr
		}
		category.ID = categoryID

		parsed, statusErr := catalog.ParseCategoryStatus(status)
		if statusErr != nil {
			return nil, statusErr
		}
		category.Status = parsed

		categories = append(categories, category)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return categories, nil
}
