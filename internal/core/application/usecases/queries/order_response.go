// Package queries contains read-only operations. Handlers never open a unit
// of work and never change state.
package queries

import (
	"context"
	"time"

	"dishly/internal/core/domain/model/kernel"
	"dishly/internal/core/domain/model/order"
)

// OrderReader is the read side of ports.OrderRepository.
type OrderReader interface {
	Get(ctx context.Context, id kernel.UUID) (*order.Order, error)
	Find(ctx context.Context, filter order.ListFilter) ([]*order.Order, error)
	ListRecent(ctx context.Context, limit int) ([]*order.Order, error)
	ListForAudit(ctx context.Context, since time.Time, limit int) ([]*order.Order, error)
}

// LineItemResponse is one line of an order as shown to clients.
type LineItemResponse struct {
	FoodItemID          kernel.UUID
	Quantity            int
	PriceAtOrder        kernel.Money
	Subtotal            kernel.Money
	SpecialInstructions string
}

// OrderResponse is the read model of an order.
type OrderResponse struct {
	ID                 kernel.UUID
	CustomerID         kernel.UUID
	VendorID           kernel.UUID
	Items              []LineItemResponse
	TotalAmount        kernel.Money
	DeliveryAddress    string
	Status             order.Status
	PaymentStatus      order.PaymentStatus
	DeliveryTime       *time.Time
	CancellationReason string
	// Duration is set only for delivered orders with a delivery time.
	Duration  *time.Duration
	CreatedAt time.Time
	UpdatedAt time.Time
	Version   int
}

func newOrderResponse(o *order.Order) OrderResponse {
	lineItems := o.LineItems()
	items := make([]LineItemResponse, 0, len(lineItems))
	for _, item := range lineItems {
		items = append(items, LineItemResponse{
			FoodItemID:          item.FoodItemID(),
			Quantity:            item.Quantity(),
			PriceAtOrder:        item.PriceAtOrder(),
			Subtotal:            item.Subtotal(),
			SpecialInstructions: item.SpecialInstructions(),
		})
	}

	resp := OrderResponse{
		ID:                 o.ID(),
		CustomerID:         o.CustomerID(),
		VendorID:           o.VendorID(),
		Items:              items,
		TotalAmount:        o.TotalAmount(),
		DeliveryAddress:    o.DeliveryAddress(),
		Status:             o.Status(),
		PaymentStatus:      o.PaymentStatus(),
		DeliveryTime:       o.DeliveryTime(),
		CancellationReason: o.CancellationReason(),
		CreatedAt:          o.CreatedAt(),
		UpdatedAt:          o.UpdatedAt(),
		Version:            o.Version(),
	}
	if d, ok := o.Duration(); ok {
		resp.Duration = &d
	}
	return resp
}
