package orderrepo

import (
	"context"
	"errors"
	"time"

	"dishly/internal/core/domain/model/kernel"
	"dishly/internal/core/domain/model/order"
	"dishly/internal/pkg/errs"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgconn"
	"gorm.io/gorm"
)

const pgUniqueViolation = "23505"

// GormOrderRepository implements OrderRepository using GORM.
type GormOrderRepository struct {
	db      *gorm.DB
	tracker aggregateTracker
}

// aggregateTracker defines the interface for tracking aggregates.
type aggregateTracker interface {
	TrackAggregate(id kernel.UUID, aggregate any)
}

// NewGormOrderRepository creates a new GORM order repository.
func NewGormOrderRepository(db *gorm.DB, tracker aggregateTracker) *GormOrderRepository {
	return &GormOrderRepository{
		db:      db,
		tracker: tracker,
	}
}

// Save inserts a new order with its line items, or updates the mutable
// columns of a stored one guarded by its version.
func (r *GormOrderRepository) Save(ctx context.Context, aggregate *order.Order) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	var err error
	if aggregate.Version() == 0 {
		err = r.insert(ctx, aggregate)
	} else {
		err = r.update(ctx, aggregate)
	}
	if err != nil {
		return err
	}

	aggregate.CommitVersion()
	r.tracker.TrackAggregate(aggregate.ID(), aggregate)
	return nil
}

func (r *GormOrderRepository) insert(ctx context.Context, aggregate *order.Order) error {
	dto := fromDomain(aggregate, 1)
	if err := r.db.WithContext(ctx).Create(&dto).Error; err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == pgUniqueViolation {
			return errs.NewConflictError("order", aggregate.ID().String(), 0)
		}
		return err
	}
	return nil
}

func (r *GormOrderRepository) update(ctx context.Context, aggregate *order.Order) error {
	dto := fromDomain(aggregate, aggregate.Version()+1)
	result := r.db.WithContext(ctx).
		Model(&OrderDTO{}).
		Where("id = ? AND version = ?", dto.ID, aggregate.Version()).
		Updates(mutableColumns(dto))
	if result.Error != nil {
		return result.Error
	}

	if result.RowsAffected == 0 {
		return errs.NewConflictError("order", aggregate.ID().String(), aggregate.Version())
	}
	return nil
}

// Get retrieves an order by ID.
func (r *GormOrderRepository) Get(ctx context.Context, id kernel.UUID) (*order.Order, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}

	var dto OrderDTO
	if err := r.withLineItems(ctx).First(&dto, "id = ?", id.Bytes()).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("order", id.String())
		}
		return nil, err
	}

	return toDomain(dto)
}

// Find lists the orders matching filter, newest first. Party, status and
// limit are all applied in SQL, so line items are loaded only for the
// returned page.
func (r *GormOrderRepository) Find(ctx context.Context, filter order.ListFilter) ([]*order.Order, error) {
	if err := filter.Validate(); err != nil {
		return nil, err
	}

	query := r.withLineItems(ctx)
	if filter.CustomerID != nil {
		query = query.Where("customer_id = ?", filter.CustomerID.Bytes())
	}
	if filter.VendorID != nil {
		query = query.Where("vendor_id = ?", filter.VendorID.Bytes())
	}
	if filter.Status != nil {
		query = query.Where("status = ?", filter.Status.String())
	}

	var dtos []OrderDTO
	if err := query.Order("created_at DESC").Limit(filter.Limit).Find(&dtos).Error; err != nil {
		return nil, err
	}
	return toDomainAll(dtos)
}

// ListRecent returns up to limit orders, newest first.
func (r *GormOrderRepository) ListRecent(ctx context.Context, limit int) ([]*order.Order, error) {
	if limit < 1 {
		return nil, errs.NewValueIsOutOfRangeError("limit", limit, 1, "∞")
	}

	var dtos []OrderDTO
	if err := r.withLineItems(ctx).Order("created_at DESC").Limit(limit).Find(&dtos).Error; err != nil {
		return nil, err
	}
	return toDomainAll(dtos)
}

// ListForAudit returns up to limit orders touched since the given instant,
// most recently updated first.
func (r *GormOrderRepository) ListForAudit(ctx context.Context, since time.Time, limit int) ([]*order.Order, error) {
	if limit < 1 {
		return nil, errs.NewValueIsOutOfRangeError("limit", limit, 1, "∞")
	}

	var dtos []OrderDTO
	err := r.withLineItems(ctx).
		Where("updated_at >= ?", since).
		Order("updated_at DESC").
		Limit(limit).
		Find(&dtos).Error
	if err != nil {
		return nil, err
	}
	return toDomainAll(dtos)
}

// DeliveredQuantities sums the quantities of delivered orders per food item.
func (r *GormOrderRepository) DeliveredQuantities(ctx context.Context) (map[kernel.UUID]int, error) {
	var rows []struct {
		FoodItemID uuid.UUID
		Quantity   int
	}
	err := r.db.WithContext(ctx).
		Table("order_line_items AS li").
		Select("li.food_item_id, SUM(li.quantity) AS quantity").
		Joins("JOIN orders o ON o.id = li.order_id").
		Where("o.status = ?", order.Delivered.String()).
		Group("li.food_item_id").
		Scan(&rows).Error
	if err != nil {
		return nil, err
	}

	quantities := make(map[kernel.UUID]int, len(rows))
	for _, row := range rows {
		id, idErr := kernel.UUIDFromBytes(row.FoodItemID[:])
		if idErr != nil {
			return nil, idErr
		}
		quantities[id] = row.Quantity
	}
	return quantities, nil
}

func (r *GormOrderRepository) withLineItems(ctx context.Context) *gorm.DB {
	return r.db.WithContext(ctx).Preload("LineItems", func(db *gorm.DB) *gorm.DB {
		return db.Order("position")
	})
}

func toDomainAll(dtos []OrderDTO) ([]*order.Order, error) {
	orders := make([]*order.Order, 0, len(dtos))
	for _, dto := range dtos {
		o, err := toDomain(dto)
		if err != nil {
			return nil, err
		}
		orders = append(orders, o)
	}
	return orders, nil
}
