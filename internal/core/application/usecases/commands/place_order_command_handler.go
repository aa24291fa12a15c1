package commands

import (
	"context"
	"errors"
	"time"

	"dishly/internal/core/domain/model/kernel"
	"dishly/internal/core/domain/model/order"
	"dishly/internal/core/domain/services"
	"dishly/internal/core/ports"
)

// PlaceOrderResult tells the caller which order now represents the request.
// Replayed is true when an earlier request with the same idempotency key
// already created it.
type PlaceOrderResult struct {
	OrderID  kernel.UUID
	Replayed bool
}

// PlaceOrderCommandHandler snapshots catalog prices and persists a new
// pending order in one transaction.
//
// Example:
//
//	handler := NewPlaceOrderCommandHandler(uowFactory, idempotency)
//	res, err := handler.Handle(ctx, cmd)
//	if errors.Is(err, errs.ErrObjectNotFound) {
//	    // an item is missing or unavailable
//	}
type PlaceOrderCommandHandler struct {
	uowFactory  UoWFactory
	idempotency ports.IdempotencyStore
	snapshot    services.PricingSnapshot
	now         func() time.Time
}

// NewPlaceOrderCommandHandler creates the handler. idempotency may be nil,
// in which case idempotency keys are ignored.
func NewPlaceOrderCommandHandler(uowFactory UoWFactory, idempotency ports.IdempotencyStore) PlaceOrderCommandHandler {
	return PlaceOrderCommandHandler{
		uowFactory:  uowFactory,
		idempotency: idempotency,
		snapshot:    services.NewPricingSnapshot(),
		now:         func() time.Time { return time.Now().UTC() },
	}
}

// Handle places the order. With an idempotency key, a repeated request from
// the same customer returns the order of the first one instead of creating
// another. Keys of different customers never collide.
func (h *PlaceOrderCommandHandler) Handle(ctx context.Context, cmd PlaceOrderCommand) (PlaceOrderResult, error) {
	if err := cmd.Validate(); err != nil {
		return PlaceOrderResult{}, err
	}

	if cmd.IdempotencyKey() != "" && h.idempotency != nil {
		key := idempotencyScope(cmd)
		boundID, reserved, err := h.idempotency.Reserve(ctx, key, cmd.OrderID())
		if err != nil {
			return PlaceOrderResult{}, err
		}
		if !reserved {
			return PlaceOrderResult{OrderID: boundID, Replayed: true}, nil
		}

		if err = h.place(ctx, cmd); err != nil {
			return PlaceOrderResult{}, errors.Join(err, h.idempotency.Release(ctx, key))
		}
		return PlaceOrderResult{OrderID: cmd.OrderID()}, nil
	}

	if err := h.place(ctx, cmd); err != nil {
		return PlaceOrderResult{}, err
	}
	return PlaceOrderResult{OrderID: cmd.OrderID()}, nil
}

// idempotencyScope namespaces the client key by the customer who sent it.
func idempotencyScope(cmd PlaceOrderCommand) string {
	return cmd.CustomerID().String() + ":" + cmd.IdempotencyKey()
}

func (h *PlaceOrderCommandHandler) place(ctx context.Context, cmd PlaceOrderCommand) error {
	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	items, err := uow.FoodItemRepository().GetMany(ctx, cmd.FoodItemIDs())
	if err != nil {
		return err
	}

	lineItems, err := h.snapshot.SnapshotAll(cmd.VendorID(), cmd.Items(), items)
	if err != nil {
		return err
	}

	o, err := order.NewOrder(cmd.OrderID(), cmd.CustomerID(), cmd.VendorID(), lineItems, cmd.DeliveryAddress(), h.now())
	if err != nil {
		return err
	}

	if err = uow.OrderRepository().Save(ctx, o); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
