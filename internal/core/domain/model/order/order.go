package order

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"dishly/internal/core/domain/model/kernel"
	"dishly/internal/pkg/errs"
	"dishly/internal/pkg/guard"
)

// ErrOrderIsNotConstructed is returned when an Order instance was not created through
// NewOrder or RestoreOrder.
var ErrOrderIsNotConstructed = errors.New("Order must be created via NewOrder constructor")

// Order is the aggregate root of the ordering lifecycle. It owns the line
// item snapshots and both state machines.
//
// Order follows these invariants:
//   - At least one line item
//   - Total amount equals Σ quantity × priceAtOrder and is never negative
//   - Status changes only along the status machine, payment only along the payment machine
//   - A cancellation reason exists if and only if the status is Cancelled
//   - Orders are never deleted
type Order struct {
	id                 kernel.UUID
	customerID         kernel.UUID
	vendorID           kernel.UUID
	lineItems          []LineItem
	totalAmount        kernel.Money
	deliveryAddress    string
	status             Status
	paymentStatus      PaymentStatus
	deliveryTime       *time.Time
	cancellationReason string
	createdAt          time.Time
	updatedAt          time.Time

	// version is the optimistic concurrency counter of the stored row.
	// Zero means the order has never been saved.
	version int

	events []Event
	guard  guard.ConstructorGuard
}

// State is the full persisted form of an Order, used by RestoreOrder.
type State struct {
	ID                 kernel.UUID
	CustomerID         kernel.UUID
	VendorID           kernel.UUID
	LineItems          []LineItem
	TotalAmount        kernel.Money
	DeliveryAddress    string
	Status             Status
	PaymentStatus      PaymentStatus
	DeliveryTime       *time.Time
	CancellationReason string
	CreatedAt          time.Time
	UpdatedAt          time.Time
	Version            int
}

// StatusChange requests a status transition. CancellationReason is required
// when To is Cancelled. DeliveryTime is used when To is Delivered and
// defaults to the transition instant.
type StatusChange struct {
	To                 Status
	CancellationReason string
	DeliveryTime       *time.Time
}

// NewOrder assembles a pending order from already snapshotted line items.
// The total is computed here and never supplied by the caller.
//
// Example:
//
//	item, _ := order.NewLineItem(colaID, 2, kernel.MustMoney("120"), "")
//	o, err := order.NewOrder(kernel.NewUUID(), customerID, vendorID,
//	    []order.LineItem{item}, "1 Main St", time.Now())
//	// o.TotalAmount() == 240, o.Status() == order.Pending
func NewOrder(
	id, customerID, vendorID kernel.UUID,
	lineItems []LineItem,
	deliveryAddress string,
	now time.Time,
) (*Order, error) {
	o := &Order{
		status:        Pending,
		paymentStatus: PaymentPending,
		createdAt:     now,
		updatedAt:     now,
		guard:         guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		o.setIDs(id, customerID, vendorID),
		o.setLineItems(lineItems),
		o.setDeliveryAddress(deliveryAddress),
	); err != nil {
		return nil, err
	}

	o.totalAmount = SumLineItems(o.lineItems)
	if o.totalAmount.IsNegative() {
		return nil, errs.NewValueIsOutOfRangeError("totalAmount", o.totalAmount.String(), "0.00", "∞")
	}

	o.record(EventCreated, "", Pending.String(), now)
	return o, nil
}

// RestoreOrder rebuilds a persisted order. The stored total is kept as is:
// a disagreement with the line items is reported by RecomputeTotal, not here.
func RestoreOrder(s State) (*Order, error) {
	o := &Order{
		createdAt: s.CreatedAt,
		updatedAt: s.UpdatedAt,
		version:   s.Version,
		guard:     guard.NewConstructorGuard(),
	}

	var errList []error
	errList = append(errList,
		o.setIDs(s.ID, s.CustomerID, s.VendorID),
		o.setLineItems(s.LineItems),
		o.setDeliveryAddress(s.DeliveryAddress),
		s.Status.Validate(),
		s.PaymentStatus.Validate(),
	)
	if s.TotalAmount.IsNegative() {
		errList = append(errList, errs.NewValueIsOutOfRangeError("totalAmount", s.TotalAmount.String(), "0.00", "∞"))
	}
	if s.Version < 0 {
		errList = append(errList, errs.NewValueIsInvalidErrorWithCause("version", fmt.Errorf("%d is negative", s.Version)))
	}
	reason := strings.TrimSpace(s.CancellationReason)
	if s.Status == Cancelled && reason == "" {
		errList = append(errList, errs.NewValueIsRequiredError("cancellationReason"))
	}
	if s.Status != Cancelled && reason != "" {
		errList = append(errList, errs.NewValueIsInvalidErrorWithCause(
			"cancellationReason", fmt.Errorf("order is %s, not cancelled", s.Status)))
	}
	if err := errors.Join(errList...); err != nil {
		return nil, err
	}

	o.totalAmount = s.TotalAmount
	o.status = s.Status
	o.paymentStatus = s.PaymentStatus
	o.cancellationReason = reason
	if s.DeliveryTime != nil {
		t := *s.DeliveryTime
		o.deliveryTime = &t
	}
	return o, nil
}

// Validate ensures the Order instance was properly constructed.
func (o *Order) Validate() error {
	if o == nil {
		return ErrOrderIsNotConstructed
	}
	return o.guard.Validate(ErrOrderIsNotConstructed)
}

// IsEqual compares two orders by their identifiers.
func (o *Order) IsEqual(other *Order) bool {
	return other != nil && o.id.IsEqual(other.id)
}

func (o *Order) ID() kernel.UUID              { return o.id }
func (o *Order) CustomerID() kernel.UUID      { return o.customerID }
func (o *Order) VendorID() kernel.UUID        { return o.vendorID }
func (o *Order) TotalAmount() kernel.Money    { return o.totalAmount }
func (o *Order) DeliveryAddress() string      { return o.deliveryAddress }
func (o *Order) Status() Status               { return o.status }
func (o *Order) PaymentStatus() PaymentStatus { return o.paymentStatus }
func (o *Order) CancellationReason() string   { return o.cancellationReason }
func (o *Order) CreatedAt() time.Time         { return o.createdAt }
func (o *Order) UpdatedAt() time.Time         { return o.updatedAt }
func (o *Order) Version() int                 { return o.version }

// LineItems returns a copy of the line items in order.
func (o *Order) LineItems() []LineItem {
	return append([]LineItem(nil), o.lineItems...)
}

// DeliveryTime returns the delivery instant, or nil.
func (o *Order) DeliveryTime() *time.Time {
	if o.deliveryTime == nil {
		return nil
	}
	t := *o.deliveryTime
	return &t
}

// Duration is deliveryTime - createdAt. It is only defined for delivered
// orders with a delivery time.
func (o *Order) Duration() (time.Duration, bool) {
	if o.status != Delivered || o.deliveryTime == nil {
		return 0, false
	}
	return o.deliveryTime.Sub(o.createdAt), true
}

// ChangeStatus applies a status transition. On any error the order is left
// unchanged.
//
// Errors:
//   - *errs.InvalidTransitionError when the transition is not in the relation
//   - *errs.ValueIsRequiredError when cancelling without a reason
func (o *Order) ChangeStatus(change StatusChange, now time.Time) error {
	next, err := o.status.TransitionTo(change.To)
	if err != nil {
		return err
	}

	var reason string
	deliveryTime := o.deliveryTime
	switch next {
	case Cancelled:
		reason = strings.TrimSpace(change.CancellationReason)
		if reason == "" {
			return errs.NewValueIsRequiredErrorWithCause("cancellationReason",
				errors.New("cancelling an order requires a reason"))
		}
	case Delivered:
		t := now
		if change.DeliveryTime != nil {
			t = *change.DeliveryTime
		}
		if t.Before(o.createdAt) {
			return errs.NewValueIsInvalidErrorWithCause("deliveryTime",
				fmt.Errorf("%s is before the order was created", t.Format(time.RFC3339)))
		}
		deliveryTime = &t
	default:
	}

	from := o.status
	o.status = next
	o.cancellationReason = reason
	o.deliveryTime = deliveryTime
	o.updatedAt = now
	o.record(EventStatusChanged, from.String(), next.String(), now)
	return nil
}

// Confirm moves a pending order to Confirmed.
func (o *Order) Confirm(now time.Time) error {
	return o.ChangeStatus(StatusChange{To: Confirmed}, now)
}

// StartPreparing moves a confirmed order to Preparing.
func (o *Order) StartPreparing(now time.Time) error {
	return o.ChangeStatus(StatusChange{To: Preparing}, now)
}

// SendOut moves a preparing order to OutForDelivery.
func (o *Order) SendOut(now time.Time) error {
	return o.ChangeStatus(StatusChange{To: OutForDelivery}, now)
}

// Deliver completes the order. A nil deliveryTime means now.
func (o *Order) Deliver(deliveryTime *time.Time, now time.Time) error {
	return o.ChangeStatus(StatusChange{To: Delivered, DeliveryTime: deliveryTime}, now)
}

// Cancel cancels a pending, confirmed or preparing order.
func (o *Order) Cancel(reason string, now time.Time) error {
	return o.ChangeStatus(StatusChange{To: Cancelled, CancellationReason: reason}, now)
}

// ChangePaymentStatus applies a payment transition. On error the order is
// left unchanged.
func (o *Order) ChangePaymentStatus(next PaymentStatus, now time.Time) error {
	to, err := o.paymentStatus.TransitionTo(next)
	if err != nil {
		return err
	}

	from := o.paymentStatus
	o.paymentStatus = to
	o.updatedAt = now
	o.record(EventPaymentChanged, from.String(), to.String(), now)
	return nil
}

// RecomputeTotal re-sums the line items and reports an *errs.IntegrityError
// if the stored total disagrees. The stored total is never corrected.
func (o *Order) RecomputeTotal() error {
	sum := SumLineItems(o.lineItems)
	if !sum.IsEqual(o.totalAmount) {
		return errs.NewIntegrityError("order", o.id.String(),
			fmt.Sprintf("total %s does not match line items %s", o.totalAmount, sum))
	}
	return nil
}

// CommitVersion is called by the repository once a save succeeded.
func (o *Order) CommitVersion() {
	o.version++
}

// DomainEvents returns the events recorded since the last ClearDomainEvents.
func (o *Order) DomainEvents() []Event {
	return append([]Event(nil), o.events...)
}

func (o *Order) ClearDomainEvents() {
	o.events = nil
}

func (o *Order) record(name EventName, from, to string, at time.Time) {
	o.events = append(o.events, Event{
		Name:       name,
		OrderID:    o.id,
		CustomerID: o.customerID,
		VendorID:   o.vendorID,
		From:       from,
		To:         to,
		Total:      o.totalAmount,
		OccurredAt: at,
	})
}

func (o *Order) setIDs(id, customerID, vendorID kernel.UUID) error {
	var errList []error
	if err := id.Validate(); err != nil {
		errList = append(errList, err)
	}
	if err := customerID.Validate(); err != nil {
		errList = append(errList, errs.NewValueIsRequiredErrorWithCause("customer", err))
	}
	if err := vendorID.Validate(); err != nil {
		errList = append(errList, errs.NewValueIsRequiredErrorWithCause("vendor", err))
	}
	if err := errors.Join(errList...); err != nil {
		return err
	}
	o.id = id
	o.customerID = customerID
	o.vendorID = vendorID
	return nil
}

func (o *Order) setLineItems(items []LineItem) error {
	if len(items) == 0 {
		return errs.NewValueIsRequiredErrorWithCause("lineItems", errors.New("order must have at least one item"))
	}
	for i, item := range items {
		if err := item.Validate(); err != nil {
			return errs.NewValueIsInvalidErrorWithCause(fmt.Sprintf("lineItems[%d]", i), err)
		}
	}
	o.lineItems = append([]LineItem(nil), items...)
	return nil
}

func (o *Order) setDeliveryAddress(address string) error {
	address = strings.TrimSpace(address)
	if address == "" {
		return errs.NewValueIsRequiredError("deliveryAddress")
	}
	o.deliveryAddress = address
	return nil
}
