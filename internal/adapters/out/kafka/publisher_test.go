package kafka_test

import (
	"context"
	"encoding/json"
	"errors"
	"testing"
	"time"

	adapter "dishly/internal/adapters/out/kafka"
	"dishly/internal/core/domain/model/kernel"
	"dishly/internal/core/domain/model/order"

	"github.com/segmentio/kafka-go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type MockWriter struct {
	mock.Mock
}

func (m *MockWriter) WriteMessages(ctx context.Context, msgs ...kafka.Message) error {
	args := m.Called(ctx, msgs)
	return args.Error(0)
}

func (m *MockWriter) Close() error {
	return m.Called().Error(0)
}

func statusChanged(orderID kernel.UUID) order.Event {
	return order.Event{
		Name:       order.EventStatusChanged,
		OrderID:    orderID,
		CustomerID: kernel.NewUUID(),
		VendorID:   kernel.NewUUID(),
		From:       order.Pending.String(),
		To:         order.Confirmed.String(),
		Total:      kernel.MustMoney("240"),
		OccurredAt: time.Date(2025, 3, 1, 18, 5, 0, 0, time.UTC),
	}
}

func TestPublisher_Publish(t *testing.T) {
	t.Run("should key messages by order id", func(t *testing.T) {
		writer := &MockWriter{}
		orderID := kernel.NewUUID()
		event := statusChanged(orderID)

		var written []kafka.Message
		writer.On("WriteMessages", mock.Anything, mock.Anything).
			Run(func(args mock.Arguments) { written = args.Get(1).([]kafka.Message) }).
			Return(nil).Once()

		err := adapter.NewPublisher(writer).Publish(t.Context(), event)

		require.NoError(t, err)
		require.Len(t, written, 1)
		assert.Equal(t, orderID.String(), string(written[0].Key))
		assert.Equal(t, "event", written[0].Headers[0].Key)
		assert.Equal(t, "order.status_changed", string(written[0].Headers[0].Value))

		var msg adapter.EventMessage
		require.NoError(t, json.Unmarshal(written[0].Value, &msg))
		assert.Equal(t, "pending", msg.From)
		assert.Equal(t, "confirmed", msg.To)
		assert.Equal(t, "240.00", msg.Total)
		assert.Equal(t, event.OccurredAt, msg.OccurredAt)
		writer.AssertExpectations(t)
	})

	t.Run("should write a batch in one call", func(t *testing.T) {
		writer := &MockWriter{}
		writer.On("WriteMessages", mock.Anything, mock.MatchedBy(func(msgs []kafka.Message) bool {
			return len(msgs) == 2
		})).Return(nil).Once()

		err := adapter.NewPublisher(writer).Publish(t.Context(),
			statusChanged(kernel.NewUUID()), statusChanged(kernel.NewUUID()))

		require.NoError(t, err)
		writer.AssertExpectations(t)
	})

	t.Run("should skip the writer without events", func(t *testing.T) {
		writer := &MockWriter{}

		require.NoError(t, adapter.NewPublisher(writer).Publish(t.Context()))
		writer.AssertNotCalled(t, "WriteMessages", mock.Anything, mock.Anything)
	})

	t.Run("should wrap writer errors", func(t *testing.T) {
		writer := &MockWriter{}
		boom := errors.New("leader not available")
		writer.On("WriteMessages", mock.Anything, mock.Anything).Return(boom)

		err := adapter.NewPublisher(writer).Publish(t.Context(), statusChanged(kernel.NewUUID()))

		require.ErrorIs(t, err, boom)
		assert.Contains(t, err.Error(), "write 1 order events")
	})
}

func TestNoopPublisher(t *testing.T) {
	p := adapter.NewNoopPublisher()

	require.NoError(t, p.Publish(t.Context(), statusChanged(kernel.NewUUID())))
	require.NoError(t, p.Close())
}

func TestNewWriter(t *testing.T) {
	w := adapter.NewWriter([]string{"localhost:9092"}, "orders")

	assert.Equal(t, "orders", w.Topic)
	assert.IsType(t, &kafka.Hash{}, w.Balancer)
}
