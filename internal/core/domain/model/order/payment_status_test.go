package order_test

import (
	"testing"

	"dishly/internal/core/domain/model/order"
	"dishly/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPaymentStatus_TransitionTo(t *testing.T) {
	tests := []struct {
		from order.PaymentStatus
		to   order.PaymentStatus
		ok   bool
	}{
		{order.PaymentPending, order.Paid, true},
		{order.PaymentPending, order.Failed, true},
		{order.Paid, order.Refunded, true},
		{order.PaymentPending, order.Refunded, false},
		{order.PaymentPending, order.PaymentPending, false},
		{order.Paid, order.Failed, false},
		{order.Paid, order.PaymentPending, false},
		{order.Refunded, order.Paid, false},
		{order.Failed, order.Paid, false},
		{order.Failed, order.PaymentPending, false},
	}

	for _, tt := range tests {
		t.Run(tt.from.String()+" to "+tt.to.String(), func(t *testing.T) {
			next, err := tt.from.TransitionTo(tt.to)

			if tt.ok {
				require.NoError(t, err)
				assert.Equal(t, tt.to, next)
				return
			}
			require.ErrorIs(t, err, errs.ErrInvalidTransition)
			assert.Contains(t, err.Error(), "payment")
		})
	}
}

func TestParsePaymentStatus(t *testing.T) {
	s, err := order.ParsePaymentStatus("refunded")
	require.NoError(t, err)
	assert.Equal(t, order.Refunded, s)

	_, err = order.ParsePaymentStatus("chargeback")
	require.ErrorIs(t, err, errs.ErrValueIsInvalid)

	require.Error(t, order.PaymentUnknown.Validate())
	assert.Equal(t, "unknown", order.PaymentUnknown.String())
}
