package cmd

import (
	"context"
	"log/slog"

	httpadapter "dishly/internal/adapters/in/http"
	"dishly/internal/adapters/out/postgres"
	"dishly/internal/core/application/usecases/commands"
	"dishly/internal/core/application/usecases/queries"
	"dishly/internal/core/ports"
	"dishly/internal/jobs"

	"gorm.io/gorm"
)

type CompositionRoot struct {
	cfg         Config
	gormDB      *gorm.DB
	uowFactory  *postgres.GormUnitOfWorkFactory
	idempotency ports.IdempotencyStore
	logger      *slog.Logger
}

// NewCompositionRoot wires the adapters around the use cases. idempotency
// may be nil.
func NewCompositionRoot(
	cfg Config,
	gormDB *gorm.DB,
	publisher ports.EventPublisher,
	idempotency ports.IdempotencyStore,
	logger *slog.Logger,
) CompositionRoot {
	return CompositionRoot{
		cfg:         cfg,
		gormDB:      gormDB,
		uowFactory:  postgres.NewGormUnitOfWorkFactory(gormDB, publisher, logger),
		idempotency: idempotency,
		logger:      logger,
	}
}

func (c *CompositionRoot) orderUoWFactory() commands.OrderUoWFactory {
	return FuncOrderUoWFactory(func() commands.OrderUoW {
		return c.uowFactory.Create()
	})
}

func (c *CompositionRoot) catalogUoWFactory() commands.CatalogUoWFactory {
	return FuncCatalogUoWFactory(func() commands.CatalogUoW {
		return c.uowFactory.Create()
	})
}

func (c *CompositionRoot) uoWFactory() commands.UoWFactory {
	return FuncUoWFactory(func() commands.UoW {
		return c.uowFactory.Create()
	})
}

// orderReader reads outside any transaction.
func (c *CompositionRoot) orderReader() queries.OrderReader {
	return c.uowFactory.Create().OrderRepository()
}

func (c *CompositionRoot) CreatePlaceOrderCommandHandler() *commands.PlaceOrderCommandHandler {
	h := commands.NewPlaceOrderCommandHandler(c.uoWFactory(), c.idempotency)
	return &h
}

func (c *CompositionRoot) CreateChangeOrderStatusCommandHandler() *commands.ChangeOrderStatusCommandHandler {
	h := commands.NewChangeOrderStatusCommandHandler(c.orderUoWFactory())
	return &h
}

func (c *CompositionRoot) CreateChangePaymentStatusCommandHandler() *commands.ChangePaymentStatusCommandHandler {
	h := commands.NewChangePaymentStatusCommandHandler(c.orderUoWFactory())
	return &h
}

func (c *CompositionRoot) CreateCreateCategoryCommandHandler() *commands.CreateCategoryCommandHandler {
	h := commands.NewCreateCategoryCommandHandler(c.catalogUoWFactory())
	return &h
}

func (c *CompositionRoot) CreateDeleteCategoryCommandHandler() *commands.DeleteCategoryCommandHandler {
	h := commands.NewDeleteCategoryCommandHandler(c.catalogUoWFactory())
	return &h
}

func (c *CompositionRoot) CreateCreateFoodItemCommandHandler() *commands.CreateFoodItemCommandHandler {
	h := commands.NewCreateFoodItemCommandHandler(c.catalogUoWFactory())
	return &h
}

func (c *CompositionRoot) CreateUpdateFoodItemCommandHandler() *commands.UpdateFoodItemCommandHandler {
	h := commands.NewUpdateFoodItemCommandHandler(c.catalogUoWFactory())
	return &h
}

func (c *CompositionRoot) CreateRankFoodItemsCommandHandler() *commands.RankFoodItemsCommandHandler {
	h := commands.NewRankFoodItemsCommandHandler(c.uoWFactory())
	return &h
}

func (c *CompositionRoot) CreateGetOrderQueryHandler() queries.GetOrderQueryHandler {
	return queries.NewGetOrderQueryHandler(c.orderReader())
}

func (c *CompositionRoot) CreateListOrdersQueryHandler() queries.ListOrdersQueryHandler {
	return queries.NewListOrdersQueryHandler(c.orderReader())
}

func (c *CompositionRoot) CreateAuditOrderTotalsQueryHandler() queries.AuditOrderTotalsQueryHandler {
	return queries.NewAuditOrderTotalsQueryHandler(c.orderReader())
}

func (c *CompositionRoot) CreateListCategoriesQueryHandler() queries.ListCategoriesQueryHandler {
	return queries.NewListCategoriesQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateSearchFoodItemsQueryHandler() queries.SearchFoodItemsQueryHandler {
	return queries.NewSearchFoodItemsQueryHandler(c.uowFactory.Create().FoodItemRepository())
}

func (c *CompositionRoot) CreateHTTPServer() *httpadapter.Server {
	return httpadapter.NewServer(httpadapter.Handlers{
		PlaceOrder:          c.CreatePlaceOrderCommandHandler(),
		ChangeOrderStatus:   c.CreateChangeOrderStatusCommandHandler(),
		ChangePaymentStatus: c.CreateChangePaymentStatusCommandHandler(),
		CreateCategory:      c.CreateCreateCategoryCommandHandler(),
		DeleteCategory:      c.CreateDeleteCategoryCommandHandler(),
		CreateFoodItem:      c.CreateCreateFoodItemCommandHandler(),
		UpdateFoodItem:      c.CreateUpdateFoodItemCommandHandler(),
		GetOrder:            c.CreateGetOrderQueryHandler(),
		ListOrders:          c.CreateListOrdersQueryHandler(),
		ListCategories:      c.CreateListCategoriesQueryHandler(),
		SearchFoodItems:     c.CreateSearchFoodItemsQueryHandler(),
	}, c.logger)
}

func (c *CompositionRoot) CreateRouterConfig() httpadapter.RouterConfig {
	return httpadapter.RouterConfig{
		JWTSecret: []byte(c.cfg.Auth.JWTSecret),
		RateLimit: httpadapter.RateLimitConfig{
			RequestsPerSecond: c.cfg.HTTP.RateLimitRPS,
			Burst:             c.cfg.HTTP.RateLimitBurst,
		},
	}
}

// CreateDatabaseHealthCheck pings the connection pool behind gorm.
func (c *CompositionRoot) CreateDatabaseHealthCheck() httpadapter.HealthCheck {
	return httpadapter.HealthCheck{
		Name: "postgres",
		Check: func(ctx context.Context) error {
			sqlDB, err := c.gormDB.DB()
			if err != nil {
				return err
			}
			return sqlDB.PingContext(ctx)
		},
	}
}

func (c *CompositionRoot) CreateJobManager() *jobs.JobManager {
	return jobs.NewJobManager(
		jobs.NewOrderAuditJob(c.CreateAuditOrderTotalsQueryHandler(),
			c.cfg.Jobs.AuditSchedule, c.cfg.Jobs.AuditWindow, c.logger),
		jobs.NewPopularityRankingJob(c.CreateRankFoodItemsCommandHandler(),
			c.cfg.Jobs.RankingSchedule, c.logger),
	)
}

type FuncOrderUoWFactory func() commands.OrderUoW

func (f FuncOrderUoWFactory) Create() commands.OrderUoW {
	return f()
}

type FuncCatalogUoWFactory func() commands.CatalogUoW

func (f FuncCatalogUoWFactory) Create() commands.CatalogUoW {
	return f()
}

type FuncUoWFactory func() commands.UoW

func (f FuncUoWFactory) Create() commands.UoW {
	return f()
}
