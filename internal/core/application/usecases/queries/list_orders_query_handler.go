package queries

import (
	"context"

	"dishly/internal/core/domain/model/order"
)

// ListOrdersQueryHandler hands the caller's filter to the repository, which
// applies the limit in the query itself.
type ListOrdersQueryHandler struct {
	orders OrderReader
}

func NewListOrdersQueryHandler(orders OrderReader) ListOrdersQueryHandler {
	return ListOrdersQueryHandler{orders: orders}
}

func (h ListOrdersQueryHandler) Handle(ctx context.Context, query ListOrdersQuery) ([]OrderResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	f := query.Filter()
	found, err := h.orders.Find(ctx, order.ListFilter{
		CustomerID: f.CustomerID,
		VendorID:   f.VendorID,
		Status:     f.Status,
		Limit:      f.Limit,
	})
	if err != nil {
		return nil, err
	}

	resp := make([]OrderResponse, 0, len(found))
	for _, o := range found {
		resp = append(resp, newOrderResponse(o))
	}
	return resp, nil
}
