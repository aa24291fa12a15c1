package http

import (
	"context"
	"errors"
	"log/slog"
	"net/http"

	"dishly/internal/core/application/usecases/commands"
	"dishly/internal/core/application/usecases/queries"
	"dishly/internal/core/domain/model/kernel"
	"dishly/internal/core/domain/model/user"
	"dishly/internal/generated/servers"
	"dishly/internal/pkg/errs"

	"github.com/labstack/echo/v4"
	openapi_types "github.com/oapi-codegen/runtime/types"
)

type PlaceOrderHandler interface {
	Handle(ctx context.Context, cmd commands.PlaceOrderCommand) (commands.PlaceOrderResult, error)
}

type ChangeOrderStatusHandler interface {
	Handle(ctx context.Context, cmd commands.ChangeOrderStatusCommand) error
}

type ChangePaymentStatusHandler interface {
	Handle(ctx context.Context, cmd commands.ChangePaymentStatusCommand) error
}

type CreateCategoryHandler interface {
	Handle(ctx context.Context, cmd commands.CreateCategoryCommand) error
}

type DeleteCategoryHandler interface {
	Handle(ctx context.Context, cmd commands.DeleteCategoryCommand) error
}

type CreateFoodItemHandler interface {
	Handle(ctx context.Context, cmd commands.CreateFoodItemCommand) error
}

type UpdateFoodItemHandler interface {
	Handle(ctx context.Context, cmd commands.UpdateFoodItemCommand) error
}

type GetOrderHandler interface {
	Handle(ctx context.Context, query queries.GetOrderQuery) (queries.OrderResponse, error)
}

type ListOrdersHandler interface {
	Handle(ctx context.Context, query queries.ListOrdersQuery) ([]queries.OrderResponse, error)
}

type ListCategoriesHandler interface {
	Handle(ctx context.Context, query queries.ListCategoriesQuery) ([]queries.ListCategoriesQueryResponse, error)
}

type SearchFoodItemsHandler interface {
	Handle(ctx context.Context, query queries.SearchFoodItemsQuery) ([]queries.FoodItemResponse, error)
}

// Handlers groups the use cases the HTTP surface dispatches to.
type Handlers struct {
	// Command handlers
	PlaceOrder          PlaceOrderHandler
	ChangeOrderStatus   ChangeOrderStatusHandler
	ChangePaymentStatus ChangePaymentStatusHandler
	CreateCategory      CreateCategoryHandler
	DeleteCategory      DeleteCategoryHandler
	CreateFoodItem      CreateFoodItemHandler
	UpdateFoodItem      UpdateFoodItemHandler

	// Query handlers
	GetOrder        GetOrderHandler
	ListOrders      ListOrdersHandler
	ListCategories  ListCategoriesHandler
	SearchFoodItems SearchFoodItemsHandler
}

// Server implements servers.ServerInterface.
// It coordinates between HTTP handlers and application use cases.
type Server struct {
	handlers Handlers
	logger   *slog.Logger
}

var _ servers.ServerInterface = (*Server)(nil)

// NewServer creates a new HTTP server with the required command and query handlers.
func NewServer(handlers Handlers, logger *slog.Logger) *Server {
	return &Server{
		handlers: handlers,
		logger:   logger.With("component", "http_server"),
	}
}

// PlaceOrder handles POST /api/v1/orders. A replayed idempotency key answers
// 200 with the order placed the first time.
func (s *Server) PlaceOrder(ctx echo.Context, params servers.PlaceOrderParams) error {
	principal, err := principalFrom(ctx)
	if err != nil {
		return s.writeError(ctx, err)
	}

	var body servers.PlaceOrderJSONRequestBody
	if err = ctx.Bind(&body); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	vendorID, err := toKernelUUID("vendorId", body.VendorId)
	if err != nil {
		return s.writeError(ctx, err)
	}
	items, err := toLineItemRequests(body.Items)
	if err != nil {
		return s.writeError(ctx, err)
	}

	idempotencyKey := ""
	if params.IdempotencyKey != nil {
		idempotencyKey = *params.IdempotencyKey
	}

	cmd, err := commands.NewPlaceOrderCommand(
		principal, kernel.NewUUID(), vendorID, items, body.DeliveryAddress, idempotencyKey)
	if err != nil {
		return s.writeError(ctx, err)
	}

	result, err := s.handlers.PlaceOrder.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return s.writeError(ctx, err)
	}

	if !result.Replayed {
		return s.respondWithOrder(ctx, principal, result.OrderID, http.StatusCreated)
	}

	// The first request holding the key has not committed its order yet.
	query, err := queries.NewGetOrderQuery(principal, result.OrderID)
	if err != nil {
		return s.writeError(ctx, err)
	}
	o, err := s.handlers.GetOrder.Handle(ctx.Request().Context(), query)
	if errors.Is(err, errs.ErrObjectNotFound) {
		return ctx.JSON(http.StatusConflict, servers.Error{
			Code:    http.StatusConflict,
			Message: "A request with this Idempotency-Key is still in progress",
		})
	}
	if err != nil {
		return s.writeError(ctx, err)
	}
	return ctx.JSON(http.StatusOK, toOrder(o))
}

// ListOrders handles GET /api/v1/orders.
func (s *Server) ListOrders(ctx echo.Context, params servers.ListOrdersParams) error {
	principal, err := principalFrom(ctx)
	if err != nil {
		return s.writeError(ctx, err)
	}

	filter, err := toListOrdersFilter(params)
	if err != nil {
		return s.writeError(ctx, err)
	}

	query, err := queries.NewListOrdersQuery(principal, filter)
	if err != nil {
		return s.writeError(ctx, err)
	}

	orders, err := s.handlers.ListOrders.Handle(ctx.Request().Context(), query)
	if err != nil {
		return s.writeError(ctx, err)
	}

	response := make([]servers.Order, len(orders))
	for i, o := range orders {
		response[i] = toOrder(o)
	}

	return ctx.JSON(http.StatusOK, response)
}

// GetOrder handles GET /api/v1/orders/{orderId}.
func (s *Server) GetOrder(ctx echo.Context, orderID openapi_types.UUID) error {
	principal, err := principalFrom(ctx)
	if err != nil {
		return s.writeError(ctx, err)
	}

	id, err := toKernelUUID("orderId", orderID)
	if err != nil {
		return s.writeError(ctx, err)
	}

	return s.respondWithOrder(ctx, principal, id, http.StatusOK)
}

// ChangeOrderStatus handles PATCH /api/v1/orders/{orderId}/status.
func (s *Server) ChangeOrderStatus(ctx echo.Context, orderID openapi_types.UUID) error {
	principal, err := principalFrom(ctx)
	if err != nil {
		return s.writeError(ctx, err)
	}

	var body servers.ChangeOrderStatusJSONRequestBody
	if err = ctx.Bind(&body); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	id, err := toKernelUUID("orderId", orderID)
	if err != nil {
		return s.writeError(ctx, err)
	}
	change, err := toStatusChange(body)
	if err != nil {
		return s.writeError(ctx, err)
	}

	cmd, err := commands.NewChangeOrderStatusCommand(principal, id, change)
	if err != nil {
		return s.writeError(ctx, err)
	}

	if err = s.handlers.ChangeOrderStatus.Handle(ctx.Request().Context(), cmd); err != nil {
		return s.writeError(ctx, err)
	}

	return s.respondWithOrder(ctx, principal, id, http.StatusOK)
}

// ChangePaymentStatus handles PATCH /api/v1/orders/{orderId}/payment.
func (s *Server) ChangePaymentStatus(ctx echo.Context, orderID openapi_types.UUID) error {
	principal, err := principalFrom(ctx)
	if err != nil {
		return s.writeError(ctx, err)
	}

	var body servers.ChangePaymentStatusJSONRequestBody
	if err = ctx.Bind(&body); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	id, err := toKernelUUID("orderId", orderID)
	if err != nil {
		return s.writeError(ctx, err)
	}
	to, err := toPaymentStatus(body.PaymentStatus)
	if err != nil {
		return s.writeError(ctx, err)
	}

	cmd, err := commands.NewChangePaymentStatusCommand(principal, id, to)
	if err != nil {
		return s.writeError(ctx, err)
	}

	if err = s.handlers.ChangePaymentStatus.Handle(ctx.Request().Context(), cmd); err != nil {
		return s.writeError(ctx, err)
	}

	return s.respondWithOrder(ctx, principal, id, http.StatusOK)
}

// ListCategories handles GET /api/v1/categories. It needs no principal.
func (s *Server) ListCategories(ctx echo.Context, params servers.ListCategoriesParams) error {
	status, err := toOptionalCategoryStatus(params.Status)
	if err != nil {
		return s.writeError(ctx, err)
	}

	query, err := queries.NewListCategoriesQuery(status)
	if err != nil {
		return s.writeError(ctx, err)
	}

	categories, err := s.handlers.ListCategories.Handle(ctx.Request().Context(), query)
	if err != nil {
		return s.writeError(ctx, err)
	}

	response := make([]servers.CategorySummary, len(categories))
	for i, c := range categories {
		response[i] = toCategorySummary(c)
	}

	return ctx.JSON(http.StatusOK, response)
}

// CreateCategory handles POST /api/v1/categories.
func (s *Server) CreateCategory(ctx echo.Context) error {
	principal, err := principalFrom(ctx)
	if err != nil {
		return s.writeError(ctx, err)
	}

	var body servers.CreateCategoryJSONRequestBody
	if err = ctx.Bind(&body); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	input, err := toCategoryInput(body)
	if err != nil {
		return s.writeError(ctx, err)
	}

	categoryID := kernel.NewUUID()
	cmd, err := commands.NewCreateCategoryCommand(principal, categoryID, input)
	if err != nil {
		return s.writeError(ctx, err)
	}

	if err = s.handlers.CreateCategory.Handle(ctx.Request().Context(), cmd); err != nil {
		return s.writeError(ctx, err)
	}

	return ctx.JSON(http.StatusCreated, servers.Created{Id: categoryID.Bytes()})
}

// DeleteCategory handles DELETE /api/v1/categories/{categoryId}.
func (s *Server) DeleteCategory(ctx echo.Context, categoryID openapi_types.UUID) error {
	principal, err := principalFrom(ctx)
	if err != nil {
		return s.writeError(ctx, err)
	}

	id, err := toKernelUUID("categoryId", categoryID)
	if err != nil {
		return s.writeError(ctx, err)
	}

	cmd, err := commands.NewDeleteCategoryCommand(principal, id)
	if err != nil {
		return s.writeError(ctx, err)
	}

	if err = s.handlers.DeleteCategory.Handle(ctx.Request().Context(), cmd); err != nil {
		return s.writeError(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// SearchFoodItems handles GET /api/v1/food-items. The menu is public.
func (s *Server) SearchFoodItems(ctx echo.Context, params servers.SearchFoodItemsParams) error {
	filter, err := toSearchFilter(params)
	if err != nil {
		return s.writeError(ctx, err)
	}

	query, err := queries.NewSearchFoodItemsQuery(filter)
	if err != nil {
		return s.writeError(ctx, err)
	}

	items, err := s.handlers.SearchFoodItems.Handle(ctx.Request().Context(), query)
	if err != nil {
		return s.writeError(ctx, err)
	}

	response := make([]servers.FoodItem, len(items))
	for i, item := range items {
		response[i] = toFoodItem(item)
	}

	return ctx.JSON(http.StatusOK, response)
}

// CreateFoodItem handles POST /api/v1/food-items.
func (s *Server) CreateFoodItem(ctx echo.Context) error {
	principal, err := principalFrom(ctx)
	if err != nil {
		return s.writeError(ctx, err)
	}

	var body servers.CreateFoodItemJSONRequestBody
	if err = ctx.Bind(&body); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	input, err := toFoodItemInput(body)
	if err != nil {
		return s.writeError(ctx, err)
	}

	foodItemID := kernel.NewUUID()
	cmd, err := commands.NewCreateFoodItemCommand(principal, foodItemID, input)
	if err != nil {
		return s.writeError(ctx, err)
	}

	if err = s.handlers.CreateFoodItem.Handle(ctx.Request().Context(), cmd); err != nil {
		return s.writeError(ctx, err)
	}

	return ctx.JSON(http.StatusCreated, servers.Created{Id: foodItemID.Bytes()})
}

// UpdateFoodItem handles PATCH /api/v1/food-items/{foodItemId}.
func (s *Server) UpdateFoodItem(ctx echo.Context, foodItemID openapi_types.UUID) error {
	principal, err := principalFrom(ctx)
	if err != nil {
		return s.writeError(ctx, err)
	}

	var body servers.UpdateFoodItemJSONRequestBody
	if err = ctx.Bind(&body); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	id, err := toKernelUUID("foodItemId", foodItemID)
	if err != nil {
		return s.writeError(ctx, err)
	}
	patch, err := toFoodItemPatch(body)
	if err != nil {
		return s.writeError(ctx, err)
	}

	cmd, err := commands.NewUpdateFoodItemCommand(principal, id, patch)
	if err != nil {
		return s.writeError(ctx, err)
	}

	if err = s.handlers.UpdateFoodItem.Handle(ctx.Request().Context(), cmd); err != nil {
		return s.writeError(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

func (s *Server) respondWithOrder(ctx echo.Context, principal user.Principal, orderID kernel.UUID, status int) error {
	query, err := queries.NewGetOrderQuery(principal, orderID)
	if err != nil {
		return s.writeError(ctx, err)
	}

	o, err := s.handlers.GetOrder.Handle(ctx.Request().Context(), query)
	if err != nil {
		return s.writeError(ctx, err)
	}

	return ctx.JSON(status, toOrder(o))
}
