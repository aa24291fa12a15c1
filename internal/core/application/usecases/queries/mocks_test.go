package queries_test

import (
	"context"
	"testing"
	"time"

	"dishly/internal/core/domain/model/catalog"
	"dishly/internal/core/domain/model/kernel"
	"dishly/internal/core/domain/model/order"
	"dishly/internal/core/domain/model/user"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type MockOrderReader struct {
	mock.Mock
}

func (m *MockOrderReader) Get(ctx context.Context, id kernel.UUID) (*order.Order, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*order.Order), args.Error(1)
}

func (m *MockOrderReader) Find(ctx context.Context, filter order.ListFilter) ([]*order.Order, error) {
	args := m.Called(ctx, filter)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*order.Order), args.Error(1)
}

func (m *MockOrderReader) ListRecent(ctx context.Context, limit int) ([]*order.Order, error) {
	args := m.Called(ctx, limit)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*order.Order), args.Error(1)
}

func (m *MockOrderReader) ListForAudit(ctx context.Context, since time.Time, limit int) ([]*order.Order, error) {
	args := m.Called(ctx, since, limit)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*order.Order), args.Error(1)
}

var placedAt = time.Date(2025, 3, 1, 18, 0, 0, 0, time.UTC)

func principal(role user.Role) user.Principal {
	return user.Principal{ID: kernel.NewUUID(), Role: role}
}

func restoreOrder(t *testing.T, customerID, vendorID kernel.UUID, total string, status order.Status) *order.Order {
	t.Helper()

	item, err := order.NewLineItem(kernel.NewUUID(), 2, kernel.MustMoney("120"), "no ice")
	require.NoError(t, err)

	state := order.State{
		ID:              kernel.NewUUID(),
		CustomerID:      customerID,
		VendorID:        vendorID,
		LineItems:       []order.LineItem{item},
		TotalAmount:     kernel.MustMoney(total),
		DeliveryAddress: "1 Main St",
		Status:          status,
		PaymentStatus:   order.PaymentPending,
		CreatedAt:       placedAt,
		UpdatedAt:       placedAt,
		Version:         1,
	}
	if status == order.Delivered {
		delivered := placedAt.Add(40 * time.Minute)
		state.DeliveryTime = &delivered
		state.PaymentStatus = order.Paid
	}
	if status == order.Cancelled {
		state.CancellationReason = "kitchen closed"
	}

	o, err := order.RestoreOrder(state)
	require.NoError(t, err)
	return o
}

type MockFoodItemSearcher struct {
	mock.Mock
}

func (m *MockFoodItemSearcher) Search(ctx context.Context, filter catalog.SearchFilter) ([]*catalog.FoodItem, error) {
	args := m.Called(ctx, filter)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*catalog.FoodItem), args.Error(1)
}
