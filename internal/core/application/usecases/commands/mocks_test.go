package commands_test

import (
	"context"
	"time"

	"dishly/internal/core/application/usecases/commands"
	"dishly/internal/core/domain/model/catalog"
	"dishly/internal/core/domain/model/kernel"
	"dishly/internal/core/domain/model/order"
	"dishly/internal/core/ports"

	"github.com/stretchr/testify/mock"
)

type MockOrderRepository struct{ mock.Mock }

func (m *MockOrderRepository) Save(ctx context.Context, o *order.Order) error {
	args := m.Called(ctx, o)
	return args.Error(0)
}

func (m *MockOrderRepository) Get(ctx context.Context, id kernel.UUID) (*order.Order, error) {
	args := m.Called(ctx, id)
	o, _ := args.Get(0).(*order.Order)
	return o, args.Error(1)
}

func (m *MockOrderRepository) Find(ctx context.Context, filter order.ListFilter) ([]*order.Order, error) {
	args := m.Called(ctx, filter)
	orders, _ := args.Get(0).([]*order.Order)
	return orders, args.Error(1)
}

func (m *MockOrderRepository) ListRecent(ctx context.Context, limit int) ([]*order.Order, error) {
	args := m.Called(ctx, limit)
	orders, _ := args.Get(0).([]*order.Order)
	return orders, args.Error(1)
}

func (m *MockOrderRepository) ListForAudit(ctx context.Context, since time.Time, limit int) ([]*order.Order, error) {
	args := m.Called(ctx, since, limit)
	orders, _ := args.Get(0).([]*order.Order)
	return orders, args.Error(1)
}

func (m *MockOrderRepository) DeliveredQuantities(ctx context.Context) (map[kernel.UUID]int, error) {
	args := m.Called(ctx)
	q, _ := args.Get(0).(map[kernel.UUID]int)
	return q, args.Error(1)
}

type MockFoodItemRepository struct{ mock.Mock }

func (m *MockFoodItemRepository) Add(ctx context.Context, item *catalog.FoodItem) error {
	return m.Called(ctx, item).Error(0)
}

func (m *MockFoodItemRepository) Update(ctx context.Context, item *catalog.FoodItem) error {
	return m.Called(ctx, item).Error(0)
}

func (m *MockFoodItemRepository) Get(ctx context.Context, id kernel.UUID) (*catalog.FoodItem, error) {
	args := m.Called(ctx, id)
	item, _ := args.Get(0).(*catalog.FoodItem)
	return item, args.Error(1)
}

func (m *MockFoodItemRepository) GetForUpdate(ctx context.Context, id kernel.UUID) (*catalog.FoodItem, error) {
	args := m.Called(ctx, id)
	item, _ := args.Get(0).(*catalog.FoodItem)
	return item, args.Error(1)
}

func (m *MockFoodItemRepository) UpdatePopularity(ctx context.Context, item *catalog.FoodItem) error {
	return m.Called(ctx, item).Error(0)
}

func (m *MockFoodItemRepository) GetMany(ctx context.Context, ids []kernel.UUID) ([]*catalog.FoodItem, error) {
	args := m.Called(ctx, ids)
	items, _ := args.Get(0).([]*catalog.FoodItem)
	return items, args.Error(1)
}

func (m *MockFoodItemRepository) CountByCategory(ctx context.Context, categoryID kernel.UUID) (int64, error) {
	args := m.Called(ctx, categoryID)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockFoodItemRepository) Search(ctx context.Context, filter catalog.SearchFilter) ([]*catalog.FoodItem, error) {
	args := m.Called(ctx, filter)
	items, _ := args.Get(0).([]*catalog.FoodItem)
	return items, args.Error(1)
}

type MockCategoryRepository struct{ mock.Mock }

func (m *MockCategoryRepository) Add(ctx context.Context, c *catalog.Category) error {
	return m.Called(ctx, c).Error(0)
}

func (m *MockCategoryRepository) Get(ctx context.Context, id kernel.UUID) (*catalog.Category, error) {
	args := m.Called(ctx, id)
	c, _ := args.Get(0).(*catalog.Category)
	return c, args.Error(1)
}

func (m *MockCategoryRepository) GetForUpdate(ctx context.Context, id kernel.UUID) (*catalog.Category, error) {
	args := m.Called(ctx, id)
	c, _ := args.Get(0).(*catalog.Category)
	return c, args.Error(1)
}

func (m *MockCategoryRepository) GetForShare(ctx context.Context, id kernel.UUID) (*catalog.Category, error) {
	args := m.Called(ctx, id)
	c, _ := args.Get(0).(*catalog.Category)
	return c, args.Error(1)
}

func (m *MockCategoryRepository) Delete(ctx context.Context, id kernel.UUID) error {
	return m.Called(ctx, id).Error(0)
}

// MockUoW satisfies every unit of work flavor used by the handlers.
type MockUoW struct{ mock.Mock }

func (m *MockUoW) Begin(ctx context.Context) error    { return m.Called(ctx).Error(0) }
func (m *MockUoW) Commit(ctx context.Context) error   { return m.Called(ctx).Error(0) }
func (m *MockUoW) Rollback(ctx context.Context) error { return m.Called(ctx).Error(0) }

func (m *MockUoW) OrderRepository() ports.OrderRepository {
	return m.Called().Get(0).(ports.OrderRepository)
}

func (m *MockUoW) CategoryRepository() ports.CategoryRepository {
	return m.Called().Get(0).(ports.CategoryRepository)
}

func (m *MockUoW) FoodItemRepository() ports.FoodItemRepository {
	return m.Called().Get(0).(ports.FoodItemRepository)
}

type MockOrderUoWFactory struct{ mock.Mock }

func (m *MockOrderUoWFactory) Create() commands.OrderUoW {
	return m.Called().Get(0).(commands.OrderUoW)
}

type MockCatalogUoWFactory struct{ mock.Mock }

func (m *MockCatalogUoWFactory) Create() commands.CatalogUoW {
	return m.Called().Get(0).(commands.CatalogUoW)
}

type MockUoWFactory struct{ mock.Mock }

func (m *MockUoWFactory) Create() commands.UoW {
	return m.Called().Get(0).(commands.UoW)
}

type MockIdempotencyStore struct{ mock.Mock }

func (m *MockIdempotencyStore) Reserve(ctx context.Context, key string, orderID kernel.UUID) (kernel.UUID, bool, error) {
	args := m.Called(ctx, key, orderID)
	return args.Get(0).(kernel.UUID), args.Bool(1), args.Error(2)
}

func (m *MockIdempotencyStore) Release(ctx context.Context, key string) error {
	return m.Called(ctx, key).Error(0)
}
