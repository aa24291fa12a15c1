package order

import (
	"fmt"

	"dishly/internal/pkg/errs"
)

// Status represents the delivery lifecycle state of an order.
//
// State transitions:
//
//	Pending ──> Confirmed ──> Preparing ──> OutForDelivery ──> Delivered
//	   │            │             │
//	   └────────────┴─────────────┴──> Cancelled
//
// Delivered and Cancelled are terminal.
type Status int

const (
	// Unknown represents an invalid or undefined status.
	// This value (0) helps catch uninitialized Status values.
	Unknown Status = iota

	// Pending is the initial status of every order.
	Pending

	// Confirmed means the vendor accepted the order.
	Confirmed

	// Preparing means the kitchen is working on the order.
	Preparing

	// OutForDelivery means the order left the restaurant.
	OutForDelivery

	// Delivered is terminal. The delivery time is set on entry.
	Delivered

	// Cancelled is terminal. A cancellation reason is set on entry.
	Cancelled
)

func getStatusStrings() map[Status]string {
	//nolint:exhaustive // Unknown is intentionally excluded as it's invalid
	return map[Status]string{
		Pending:        "pending",
		Confirmed:      "confirmed",
		Preparing:      "preparing",
		OutForDelivery: "out-for-delivery",
		Delivered:      "delivered",
		Cancelled:      "cancelled",
	}
}

// statusTransitions is the allowed-transition relation. Anything absent is rejected.
func statusTransitions() map[Status][]Status {
	//nolint:exhaustive // terminal statuses have no outgoing transitions
	return map[Status][]Status{
		Pending:        {Confirmed, Cancelled},
		Confirmed:      {Preparing, Cancelled},
		Preparing:      {OutForDelivery, Cancelled},
		OutForDelivery: {Delivered},
	}
}

// ParseStatus maps a wire value such as "out-for-delivery" to a Status.
func ParseStatus(s string) (Status, error) {
	for st, str := range getStatusStrings() {
		if str == s {
			return st, nil
		}
	}
	return Unknown, errs.NewValueIsInvalidErrorWithCause("status", fmt.Errorf("%q is not a valid status", s))
}

// Validate checks if the Status value is valid.
// Unknown (0) and any value outside the enumeration are invalid.
func (s Status) Validate() error {
	if _, ok := getStatusStrings()[s]; !ok {
		return errs.NewValueIsInvalidErrorWithCause("status", fmt.Errorf("%d is not a valid status", s))
	}
	return nil
}

// String returns the wire name of the status, or "unknown".
func (s Status) String() string {
	if str, ok := getStatusStrings()[s]; ok {
		return str
	}
	return "unknown"
}

// IsTerminal reports whether no transition leaves s.
func (s Status) IsTerminal() bool {
	return s == Delivered || s == Cancelled
}

// CanTransitionTo reports whether s -> next is in the transition relation.
func (s Status) CanTransitionTo(next Status) bool {
	for _, allowed := range statusTransitions()[s] {
		if allowed == next {
			return true
		}
	}
	return false
}

// TransitionTo returns next if s -> next is allowed.
//
// Example:
//
//	next, err := order.Pending.TransitionTo(order.Delivered)
//	// err is *errs.InvalidTransitionError: pending -> delivered
func (s Status) TransitionTo(next Status) (Status, error) {
	if err := next.Validate(); err != nil {
		return Unknown, err
	}
	if !s.CanTransitionTo(next) {
		return Unknown, errs.NewInvalidTransitionError("status", s.String(), next.String())
	}
	return next, nil
}
