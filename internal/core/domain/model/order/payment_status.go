package order

import (
	"fmt"

	"dishly/internal/pkg/errs"
)

// PaymentStatus tracks payment independently of delivery.
//
//	PaymentPending ──> Paid ──> Refunded
//	       │
//	       └──> Failed
type PaymentStatus int

const (
	PaymentUnknown PaymentStatus = iota
	PaymentPending
	Paid
	Refunded
	Failed
)

func getPaymentStatusStrings() map[PaymentStatus]string {
	//nolint:exhaustive // PaymentUnknown is intentionally excluded as it's invalid
	return map[PaymentStatus]string{
		PaymentPending: "pending",
		Paid:           "paid",
		Refunded:       "refunded",
		Failed:         "failed",
	}
}

func paymentTransitions() map[PaymentStatus][]PaymentStatus {
	//nolint:exhaustive // terminal statuses have no outgoing transitions
	return map[PaymentStatus][]PaymentStatus{
		PaymentPending: {Paid, Failed},
		Paid:           {Refunded},
	}
}

// ParsePaymentStatus maps "pending", "paid", "refunded" or "failed" to a PaymentStatus.
func ParsePaymentStatus(s string) (PaymentStatus, error) {
	for st, str := range getPaymentStatusStrings() {
		if str == s {
			return st, nil
		}
	}
	return PaymentUnknown, errs.NewValueIsInvalidErrorWithCause(
		"paymentStatus", fmt.Errorf("%q is not a valid payment status", s))
}

func (s PaymentStatus) Validate() error {
	if _, ok := getPaymentStatusStrings()[s]; !ok {
		return errs.NewValueIsInvalidErrorWithCause("paymentStatus", fmt.Errorf("%d is not a valid payment status", s))
	}
	return nil
}

func (s PaymentStatus) String() string {
	if str, ok := getPaymentStatusStrings()[s]; ok {
		return str
	}
	return "unknown"
}

// TransitionTo returns next if s -> next is allowed.
func (s PaymentStatus) TransitionTo(next PaymentStatus) (PaymentStatus, error) {
	if err := next.Validate(); err != nil {
		return PaymentUnknown, err
	}
	for _, allowed := range paymentTransitions()[s] {
		if allowed == next {
			return next, nil
		}
	}
	return PaymentUnknown, errs.NewInvalidTransitionError("payment", s.String(), next.String())
}
