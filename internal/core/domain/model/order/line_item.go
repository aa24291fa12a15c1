package order

import (
	"errors"
	"strings"
	"unicode/utf8"

	"dishly/internal/core/domain/model/kernel"
	"dishly/internal/pkg/errs"
	"dishly/internal/pkg/guard"
)

const (
	MinQuantity                = 1
	MaxQuantity                = 20
	MaxSpecialInstructionsSize = 200
)

// ErrLineItemIsNotConstructed is returned when a LineItem was not created via NewLineItem.
var ErrLineItemIsNotConstructed = errors.New("LineItem must be created via NewLineItem constructor")

// LineItem is an immutable snapshot of one ordered food item. The price is
// captured when the order is placed and never re-derived from the catalog.
type LineItem struct {
	foodItemID          kernel.UUID
	quantity            int
	priceAtOrder        kernel.Money
	specialInstructions string

	guard guard.ConstructorGuard
}

// NewLineItem validates the snapshot fields.
func NewLineItem(foodItemID kernel.UUID, quantity int, priceAtOrder kernel.Money, specialInstructions string) (LineItem, error) {
	specialInstructions = strings.TrimSpace(specialInstructions)

	var errList []error
	if err := foodItemID.Validate(); err != nil {
		errList = append(errList, errs.NewValueIsRequiredErrorWithCause("foodItem", err))
	}
	if quantity < MinQuantity || quantity > MaxQuantity {
		errList = append(errList, errs.NewValueIsOutOfRangeError("quantity", quantity, MinQuantity, MaxQuantity))
	}
	if priceAtOrder.IsNegative() {
		errList = append(errList, errs.NewValueIsOutOfRangeError("priceAtOrder", priceAtOrder.String(), "0.00", "∞"))
	}
	if n := utf8.RuneCountInString(specialInstructions); n > MaxSpecialInstructionsSize {
		errList = append(errList,
			errs.NewValueIsOutOfRangeError("specialInstructions length", n, 0, MaxSpecialInstructionsSize))
	}
	if err := errors.Join(errList...); err != nil {
		return LineItem{}, err
	}

	return LineItem{
		foodItemID:          foodItemID,
		quantity:            quantity,
		priceAtOrder:        priceAtOrder,
		specialInstructions: specialInstructions,
		guard:               guard.NewConstructorGuard(),
	}, nil
}

func (l LineItem) Validate() error {
	return l.guard.Validate(ErrLineItemIsNotConstructed)
}

func (l LineItem) FoodItemID() kernel.UUID     { return l.foodItemID }
func (l LineItem) Quantity() int               { return l.quantity }
func (l LineItem) PriceAtOrder() kernel.Money  { return l.priceAtOrder }
func (l LineItem) SpecialInstructions() string { return l.specialInstructions }

// Subtotal is quantity × priceAtOrder.
func (l LineItem) Subtotal() kernel.Money {
	return l.priceAtOrder.Mul(l.quantity)
}

// SumLineItems returns Σ quantity × priceAtOrder.
func SumLineItems(items []LineItem) kernel.Money {
	total := kernel.ZeroMoney
	for _, item := range items {
		total = total.Add(item.Subtotal())
	}
	return total
}
