package services

import (
	"errors"
	"fmt"

	"dishly/internal/core/domain/model/catalog"
	"dishly/internal/core/domain/model/kernel"
	"dishly/internal/core/domain/model/order"
	"dishly/internal/pkg/errs"
)

// ErrFoodItemUnavailable is the cause attached to the not-found error for an
// item that exists but is switched off.
var ErrFoodItemUnavailable = errors.New("food item is not available")

// LineItemRequest is what a customer asks for: an item, a quantity and
// optional instructions. The price is never part of the request.
type LineItemRequest struct {
	FoodItemID          kernel.UUID
	Quantity            int
	SpecialInstructions string
}

// PricingSnapshot turns line item requests into immutable line items carrying
// the price the item had at that instant.
//
// Example usage:
//
//	snapshot := services.NewPricingSnapshot()
//	items, err := snapshot.SnapshotAll(vendorID, requests, loadedFoodItems)
//	if errors.Is(err, errs.ErrObjectNotFound) {
//	    // an item is missing or unavailable
//	}
//	o, err := order.NewOrder(kernel.NewUUID(), customerID, vendorID, items, address, now)
type PricingSnapshot struct{}

func NewPricingSnapshot() PricingSnapshot {
	return PricingSnapshot{}
}

// Snapshot captures one line item. item is the catalog entry loaded for
// request.FoodItemID, or nil when it does not exist.
//
// Errors:
//   - *errs.ObjectNotFoundError when item is nil or not available
//   - validation errors when the quantity is outside [1,20] or the instructions exceed 200 characters
func (PricingSnapshot) Snapshot(item *catalog.FoodItem, request LineItemRequest) (order.LineItem, error) {
	if item == nil || item.Validate() != nil {
		return order.LineItem{}, errs.NewObjectNotFoundError("food item", request.FoodItemID.String())
	}
	if !item.IsAvailable() {
		return order.LineItem{}, errs.NewObjectNotFoundErrorWithCause("food item", item.ID().String(), ErrFoodItemUnavailable)
	}

	return order.NewLineItem(item.ID(), request.Quantity, item.Price(), request.SpecialInstructions)
}

// SnapshotAll captures every request against items, the catalog entries the
// caller loaded. All requested items must belong to vendorID. Errors for
// individual lines are joined.
func (s PricingSnapshot) SnapshotAll(
	vendorID kernel.UUID,
	requests []LineItemRequest,
	items []*catalog.FoodItem,
) ([]order.LineItem, error) {
	if len(requests) == 0 {
		return nil, errs.NewValueIsRequiredErrorWithCause("items", errors.New("order must have at least one item"))
	}

	byID := make(map[kernel.UUID]*catalog.FoodItem, len(items))
	for _, item := range items {
		if item != nil {
			byID[item.ID()] = item
		}
	}

	lineItems := make([]order.LineItem, 0, len(requests))
	var errList []error
	for i, request := range requests {
		item := byID[request.FoodItemID]
		if item != nil && !item.VendorID().IsEqual(vendorID) {
			errList = append(errList, errs.NewValueIsInvalidErrorWithCause(fmt.Sprintf("items[%d]", i),
				fmt.Errorf("food item %s belongs to another vendor", item.ID())))
			continue
		}

		lineItem, err := s.Snapshot(item, request)
		if err != nil {
			errList = append(errList, err)
			continue
		}
		lineItems = append(lineItems, lineItem)
	}
	if err := errors.Join(errList...); err != nil {
		return nil, err
	}

	return lineItems, nil
}
