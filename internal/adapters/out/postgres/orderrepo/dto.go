// Package orderrepo persists order aggregates. An order row carries the
// stored total and the optimistic version; its line items live in their own
// table and are written once, when the order is inserted.
package orderrepo

import (
	"time"

	"dishly/internal/core/domain/model/kernel"
	"dishly/internal/core/domain/model/order"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// OrderDTO represents the database structure for persisting order aggregates.
// Timestamps are owned by the domain, so GORM's automatic time tracking is off.
type OrderDTO struct {
	ID                 uuid.UUID       `gorm:"type:uuid;primaryKey"`
	CustomerID         uuid.UUID       `gorm:"type:uuid;index;not null"`
	VendorID           uuid.UUID       `gorm:"type:uuid;index;not null"`
	TotalAmount        decimal.Decimal `gorm:"type:numeric(12,2);not null"`
	DeliveryAddress    string          `gorm:"not null"`
	Status             string          `gorm:"type:varchar(32);index;not null"`
	PaymentStatus      string          `gorm:"type:varchar(16);not null"`
	DeliveryTime       *time.Time
	CancellationReason string
	CreatedAt          time.Time     `gorm:"autoCreateTime:false;index;not null"`
	UpdatedAt          time.Time     `gorm:"autoUpdateTime:false;index;not null"`
	Version            int           `gorm:"not null"`
	LineItems          []LineItemDTO `gorm:"foreignKey:OrderID;constraint:OnDelete:CASCADE"`
}

// TableName specifies the database table name for order entities.
func (OrderDTO) TableName() string {
	return "orders"
}

// LineItemDTO is one line of an order. Position keeps the order of the lines.
type LineItemDTO struct {
	OrderID             uuid.UUID       `gorm:"type:uuid;primaryKey"`
	Position            int             `gorm:"primaryKey"`
	FoodItemID          uuid.UUID       `gorm:"type:uuid;index;not null"`
	Quantity            int             `gorm:"not null"`
	PriceAtOrder        decimal.Decimal `gorm:"type:numeric(10,2);not null"`
	SpecialInstructions string          `gorm:"type:varchar(200)"`
}

func (LineItemDTO) TableName() string {
	return "order_line_items"
}

// fromDomain maps the aggregate to its row. version is the value the row
// will hold once the write succeeds.
func fromDomain(o *order.Order, version int) OrderDTO {
	id := o.ID().Bytes()
	items := o.LineItems()
	lineItems := make([]LineItemDTO, 0, len(items))
	for i, item := range items {
		lineItems = append(lineItems, LineItemDTO{
			OrderID:             id,
			Position:            i,
			FoodItemID:          item.FoodItemID().Bytes(),
			Quantity:            item.Quantity(),
			PriceAtOrder:        item.PriceAtOrder().Amount(),
			SpecialInstructions: item.SpecialInstructions(),
		})
	}

	return OrderDTO{
		ID:                 id,
		CustomerID:         o.CustomerID().Bytes(),
		VendorID:           o.VendorID().Bytes(),
		TotalAmount:        o.TotalAmount().Amount(),
		DeliveryAddress:    o.DeliveryAddress(),
		Status:             o.Status().String(),
		PaymentStatus:      o.PaymentStatus().String(),
		DeliveryTime:       o.DeliveryTime(),
		CancellationReason: o.CancellationReason(),
		CreatedAt:          o.CreatedAt(),
		UpdatedAt:          o.UpdatedAt(),
		Version:            version,
		LineItems:          lineItems,
	}
}

// mutableColumns lists what a status or payment change may touch. Line
// items and the total are never rewritten.
func mutableColumns(dto OrderDTO) map[string]any {
	return map[string]any{
		"status":              dto.Status,
		"payment_status":      dto.PaymentStatus,
		"delivery_time":       dto.DeliveryTime,
		"cancellation_reason": dto.CancellationReason,
		"updated_at":          dto.UpdatedAt,
		"version":             dto.Version,
	}
}

// toDomain rebuilds the aggregate through order.RestoreOrder.
func toDomain(dto OrderDTO) (*order.Order, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}
	customerID, err := kernel.UUIDFromBytes(dto.CustomerID[:])
	if err != nil {
		return nil, err
	}
	vendorID, err := kernel.UUIDFromBytes(dto.VendorID[:])
	if err != nil {
		return nil, err
	}
	total, err := kernel.NewMoney(dto.TotalAmount)
	if err != nil {
		return nil, err
	}
	status, err := order.ParseStatus(dto.Status)
	if err != nil {
		return nil, err
	}
	paymentStatus, err := order.ParsePaymentStatus(dto.PaymentStatus)
	if err != nil {
		return nil, err
	}

	lineItems := make([]order.LineItem, 0, len(dto.LineItems))
	for _, itemDTO := range dto.LineItems {
		item, itemErr := lineItemToDomain(itemDTO)
		if itemErr != nil {
			return nil, itemErr
		}
		lineItems = append(lineItems, item)
	}

	return order.RestoreOrder(order.State{
		ID:                 id,
		CustomerID:         customerID,
		VendorID:           vendorID,
		LineItems:          lineItems,
		TotalAmount:        total,
		DeliveryAddress:    dto.DeliveryAddress,
		Status:             status,
		PaymentStatus:      paymentStatus,
		DeliveryTime:       dto.DeliveryTime,
		CancellationReason: dto.CancellationReason,
		CreatedAt:          dto.CreatedAt,
		UpdatedAt:          dto.UpdatedAt,
		Version:            dto.Version,
	})
}

func lineItemToDomain(dto LineItemDTO) (order.LineItem, error) {
	foodItemID, err := kernel.UUIDFromBytes(dto.FoodItemID[:])
	if err != nil {
		return order.LineItem{}, err
	}
	price, err := kernel.NewMoney(dto.PriceAtOrder)
	if err != nil {
		return order.LineItem{}, err
	}
	return order.NewLineItem(foodItemID, dto.Quantity, price, dto.SpecialInstructions)
}
