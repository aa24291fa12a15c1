package commands

import (
	"errors"
	"fmt"
	"strings"

	"dishly/internal/core/domain/model/kernel"
	"dishly/internal/core/domain/model/user"
	"dishly/internal/core/domain/services"
	"dishly/internal/pkg/errs"
	"dishly/internal/pkg/guard"
)

const maxIdempotencyKeyLength = 128

var ErrPlaceOrderCommandIsNotConstructed = errors.New(
	"PlaceOrderCommand must be created via NewPlaceOrderCommand constructor",
)

// PlaceOrderCommand represents a customer placing an order with one vendor.
// Prices are not part of the command: they are snapshotted from the catalog.
//
// Example:
//
//	cmd, err := NewPlaceOrderCommand(principal, kernel.NewUUID(), vendorID,
//	    []services.LineItemRequest{{FoodItemID: colaID, Quantity: 2}},
//	    "1 Main St", r.Header.Get("Idempotency-Key"))
//	if err != nil {
//	    return fmt.Errorf("invalid order data: %w", err)
//	}
type PlaceOrderCommand struct { //nolint:recvcheck //using for validation
	orderID         kernel.UUID
	customerID      kernel.UUID
	vendorID        kernel.UUID
	items           []services.LineItemRequest
	deliveryAddress string
	idempotencyKey  string

	guard guard.ConstructorGuard
}

// NewPlaceOrderCommand validates the request. Only customers place orders.
// orderID is chosen by the caller so a retried request can be recognized.
func NewPlaceOrderCommand(
	principal user.Principal,
	orderID, vendorID kernel.UUID,
	items []services.LineItemRequest,
	deliveryAddress, idempotencyKey string,
) (PlaceOrderCommand, error) {
	if !principal.IsCustomer() {
		return PlaceOrderCommand{}, errs.NewForbiddenError("place order", "only customers place orders")
	}

	cmd := PlaceOrderCommand{
		customerID: principal.ID,
		guard:      guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setOrderID(orderID),
		cmd.setVendorID(vendorID),
		cmd.setItems(items),
		cmd.setDeliveryAddress(deliveryAddress),
		cmd.setIdempotencyKey(idempotencyKey),
	); err != nil {
		return PlaceOrderCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c PlaceOrderCommand) Validate() error {
	return c.guard.Validate(ErrPlaceOrderCommandIsNotConstructed)
}

func (c PlaceOrderCommand) OrderID() kernel.UUID    { return c.orderID }
func (c PlaceOrderCommand) CustomerID() kernel.UUID { return c.customerID }
func (c PlaceOrderCommand) VendorID() kernel.UUID   { return c.vendorID }
func (c PlaceOrderCommand) DeliveryAddress() string { return c.deliveryAddress }

// IdempotencyKey is empty when the client sent none.
func (c PlaceOrderCommand) IdempotencyKey() string { return c.idempotencyKey }

func (c PlaceOrderCommand) Items() []services.LineItemRequest {
	return append([]services.LineItemRequest(nil), c.items...)
}

// FoodItemIDs returns the distinct requested item ids.
func (c PlaceOrderCommand) FoodItemIDs() []kernel.UUID {
	seen := make(map[kernel.UUID]struct{}, len(c.items))
	ids := make([]kernel.UUID, 0, len(c.items))
	for _, item := range c.items {
		if _, ok := seen[item.FoodItemID]; ok {
			continue
		}
		seen[item.FoodItemID] = struct{}{}
		ids = append(ids, item.FoodItemID)
	}
	return ids
}

func (c *PlaceOrderCommand) setOrderID(orderID kernel.UUID) error {
	if err := orderID.Validate(); err != nil {
		return err
	}
	c.orderID = orderID
	return nil
}

func (c *PlaceOrderCommand) setVendorID(vendorID kernel.UUID) error {
	if err := vendorID.Validate(); err != nil {
		return errs.NewValueIsRequiredErrorWithCause("vendor", err)
	}
	c.vendorID = vendorID
	return nil
}

func (c *PlaceOrderCommand) setItems(items []services.LineItemRequest) error {
	if len(items) == 0 {
		return errs.NewValueIsRequiredErrorWithCause("items", errors.New("order must have at least one item"))
	}
	for i, item := range items {
		if err := item.FoodItemID.Validate(); err != nil {
			return errs.NewValueIsRequiredErrorWithCause(fmt.Sprintf("items[%d].foodItem", i), err)
		}
	}
	c.items = append([]services.LineItemRequest(nil), items...)
	return nil
}

func (c *PlaceOrderCommand) setDeliveryAddress(address string) error {
	address = strings.TrimSpace(address)
	if address == "" {
		return errs.NewValueIsRequiredError("deliveryAddress")
	}
	c.deliveryAddress = address
	return nil
}

func (c *PlaceOrderCommand) setIdempotencyKey(key string) error {
	key = strings.TrimSpace(key)
	if len(key) > maxIdempotencyKeyLength {
		return errs.NewValueIsOutOfRangeError("idempotencyKey length", len(key), 0, maxIdempotencyKeyLength)
	}
	c.idempotencyKey = key
	return nil
}
