package postgres_test

import (
	"context"
	"errors"
	"log/slog"
	"testing"
	"time"

	postgres_adapter "dishly/internal/adapters/out/postgres"
	"dishly/internal/core/domain/model/catalog"
	"dishly/internal/core/domain/model/kernel"
	"dishly/internal/core/domain/model/order"
	"dishly/internal/core/ports"
	"dishly/internal/pkg/errs"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"
	gorm_postgres "gorm.io/driver/postgres"
	"gorm.io/gorm"
)

type MockEventPublisher struct {
	mock.Mock
}

func (m *MockEventPublisher) Publish(ctx context.Context, events ...order.Event) error {
	args := m.Called(ctx, events)
	return args.Error(0)
}

// UnitOfWorkIntegrationTestSuite runs the unit of work against a real
// PostgreSQL database.
type UnitOfWorkIntegrationTestSuite struct {
	suite.Suite
	container *postgres.PostgresContainer
	db        *gorm.DB
	publisher *MockEventPublisher
	factory   ports.UnitOfWorkFactory
}

func (suite *UnitOfWorkIntegrationTestSuite) SetupSuite() {
	ctx := context.Background()

	container, err := postgres.Run(ctx,
		"postgres:15-alpine",
		postgres.WithDatabase("testdb"),
		postgres.WithUsername("testuser"),
		postgres.WithPassword("testpass"),
		testcontainers.WithWaitStrategy(wait.ForLog("database system is ready to accept connections").
			WithOccurrence(2)),
	)
	suite.Require().NoError(err)
	suite.container = container

	dsn, err := container.ConnectionString(ctx, "sslmode=disable")
	suite.Require().NoError(err)

	db, err := gorm.Open(gorm_postgres.Open(dsn), &gorm.Config{})
	suite.Require().NoError(err)
	suite.db = db

	suite.Require().NoError(postgres_adapter.Migrate(db))
}

func (suite *UnitOfWorkIntegrationTestSuite) SetupTest() {
	err := suite.db.Exec("TRUNCATE TABLE orders, order_line_items, food_items, categories").Error
	suite.Require().NoError(err)

	suite.publisher = new(MockEventPublisher)
	suite.factory = postgres_adapter.NewGormUnitOfWorkFactory(suite.db, suite.publisher, slog.Default())
}

func (suite *UnitOfWorkIntegrationTestSuite) TearDownSuite() {
	if suite.container != nil {
		err := suite.container.Terminate(context.Background())
		suite.Require().NoError(err)
	}
}

func (suite *UnitOfWorkIntegrationTestSuite) newOrder() *order.Order {
	item, err := order.NewLineItem(kernel.NewUUID(), 2, kernel.MustMoney("6.25"), "")
	suite.Require().NoError(err)
	o, err := order.NewOrder(kernel.NewUUID(), kernel.NewUUID(), kernel.NewUUID(),
		[]order.LineItem{item}, "1 Main St", time.Now().UTC())
	suite.Require().NoError(err)
	return o
}

func (suite *UnitOfWorkIntegrationTestSuite) TestUnitOfWorkFactory_Create() {
	uow1 := suite.factory.Create()
	uow2 := suite.factory.Create()

	suite.NotSame(uow1, uow2, "Factory should create separate instances")
	suite.NotNil(uow1.OrderRepository())
	suite.NotNil(uow1.CategoryRepository())
	suite.NotNil(uow2.FoodItemRepository())
}

func (suite *UnitOfWorkIntegrationTestSuite) TestUnitOfWork_TransactionLifecycle() {
	ctx := context.Background()
	uow := suite.factory.Create()

	suite.Require().NoError(uow.Begin(ctx))
	suite.Require().NoError(uow.Begin(ctx), "Multiple begin calls should be safe")
	suite.Require().NoError(uow.Commit(ctx))

	suite.Require().NoError(uow.Begin(ctx))
	suite.Require().NoError(uow.Rollback(ctx))

	suite.publisher.AssertNotCalled(suite.T(), "Publish", mock.Anything, mock.Anything)
}

func (suite *UnitOfWorkIntegrationTestSuite) TestUnitOfWork_TransactionErrors() {
	ctx := context.Background()
	uow := suite.factory.Create()

	suite.Require().ErrorIs(uow.Commit(ctx), gorm.ErrInvalidTransaction)
	suite.Require().ErrorIs(uow.Rollback(ctx), gorm.ErrInvalidTransaction)
}

func (suite *UnitOfWorkIntegrationTestSuite) TestCommit_PublishesEventsOfSavedOrders() {
	ctx := context.Background()
	o := suite.newOrder()
	suite.publisher.On("Publish", mock.Anything, mock.MatchedBy(func(events []order.Event) bool {
		return len(events) == 1 && events[0].Name == order.EventCreated && events[0].OrderID.IsEqual(o.ID())
	})).Return(nil).Once()

	uow := suite.factory.Create()
	suite.Require().NoError(uow.Begin(ctx))
	suite.Require().NoError(uow.OrderRepository().Save(ctx, o))
	suite.Require().NoError(uow.Commit(ctx))

	suite.publisher.AssertExpectations(suite.T())
	suite.Empty(o.DomainEvents())

	stored, err := suite.factory.Create().OrderRepository().Get(ctx, o.ID())
	suite.Require().NoError(err)
	suite.Equal(1, stored.Version())
}

func (suite *UnitOfWorkIntegrationTestSuite) TestCommit_PublishingFailureKeepsTheCommit() {
	ctx := context.Background()
	o := suite.newOrder()
	suite.publisher.On("Publish", mock.Anything, mock.Anything).Return(errors.New("broker down")).Once()

	uow := suite.factory.Create()
	suite.Require().NoError(uow.Begin(ctx))
	suite.Require().NoError(uow.OrderRepository().Save(ctx, o))
	suite.Require().NoError(uow.Commit(ctx))

	_, err := suite.factory.Create().OrderRepository().Get(ctx, o.ID())
	suite.Require().NoError(err)
}

func (suite *UnitOfWorkIntegrationTestSuite) TestRollback_DropsChangesAndEvents() {
	ctx := context.Background()
	o := suite.newOrder()

	uow := suite.factory.Create()
	suite.Require().NoError(uow.Begin(ctx))
	suite.Require().NoError(uow.OrderRepository().Save(ctx, o))
	suite.Require().NoError(uow.Rollback(ctx))

	_, err := suite.factory.Create().OrderRepository().Get(ctx, o.ID())
	suite.Require().ErrorIs(err, errs.ErrObjectNotFound)
	suite.publisher.AssertNotCalled(suite.T(), "Publish", mock.Anything, mock.Anything)
}

func (suite *UnitOfWorkIntegrationTestSuite) TestMultiRepositoryTransaction_IsAtomic() {
	ctx := context.Background()
	now := time.Now().UTC()
	category, err := catalog.NewCategory(kernel.NewUUID(), catalog.CategoryParams{
		Name:        "Desserts",
		Description: "Sweet things",
		ImageURL:    "cake.webp",
		CreatedBy:   kernel.NewUUID(),
		Status:      catalog.CategoryActive,
	}, now)
	suite.Require().NoError(err)
	categoryID := category.ID()
	item, err := catalog.NewFoodItem(kernel.NewUUID(), catalog.FoodItemParams{
		Name:            "Cheesecake",
		Description:     "New York style",
		Price:           kernel.MustMoney("7.50"),
		Course:          catalog.CourseDessert,
		CategoryID:      &categoryID,
		VendorID:        category.CreatedBy(),
		PreparationTime: 10,
		IsAvailable:     true,
		Ingredients:     []string{"cheese", "biscuit"},
	}, now)
	suite.Require().NoError(err)

	uow := suite.factory.Create()
	suite.Require().NoError(uow.Begin(ctx))
	suite.Require().NoError(uow.CategoryRepository().Add(ctx, category))
	_, err = uow.CategoryRepository().GetForShare(ctx, categoryID)
	suite.Require().NoError(err)
	suite.Require().NoError(uow.FoodItemRepository().Add(ctx, item))
	suite.Require().NoError(uow.Rollback(ctx))

	check := suite.factory.Create()
	_, err = check.CategoryRepository().Get(ctx, categoryID)
	suite.Require().ErrorIs(err, errs.ErrObjectNotFound)
	_, err = check.FoodItemRepository().Get(ctx, item.ID())
	suite.Require().ErrorIs(err, errs.ErrObjectNotFound)

	suite.Require().NoError(uow.Begin(ctx))
	suite.Require().NoError(uow.CategoryRepository().Add(ctx, category))
	suite.Require().NoError(uow.FoodItemRepository().Add(ctx, item))
	suite.Require().NoError(uow.Commit(ctx))

	count, err := check.FoodItemRepository().CountByCategory(ctx, categoryID)
	suite.Require().NoError(err)
	suite.Equal(int64(1), count)
}

func TestUnitOfWorkIntegrationTestSuite(t *testing.T) {
	suite.Run(t, new(UnitOfWorkIntegrationTestSuite))
}
