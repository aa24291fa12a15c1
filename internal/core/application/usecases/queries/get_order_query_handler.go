package queries

import (
	"context"

	"dishly/internal/pkg/errs"
)

// GetOrderQueryHandler returns an order to its customer or vendor. Anyone
// else gets *errs.ObjectNotFoundError, so ids of foreign orders are not
// confirmed.
type GetOrderQueryHandler struct {
	orders OrderReader
}

func NewGetOrderQueryHandler(orders OrderReader) GetOrderQueryHandler {
	return GetOrderQueryHandler{orders: orders}
}

func (h GetOrderQueryHandler) Handle(ctx context.Context, query GetOrderQuery) (OrderResponse, error) {
	if err := query.Validate(); err != nil {
		return OrderResponse{}, err
	}

	o, err := h.orders.Get(ctx, query.OrderID())
	if err != nil {
		return OrderResponse{}, err
	}

	p := query.Principal()
	visible := (p.IsCustomer() && o.CustomerID().IsEqual(p.ID)) || (p.IsVendor() && o.VendorID().IsEqual(p.ID))
	if !visible {
		return OrderResponse{}, errs.NewObjectNotFoundError("order", query.OrderID().String())
	}

	return newOrderResponse(o), nil
}
