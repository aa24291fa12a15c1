// Package servers holds the HTTP contract of the service: transport models,
// the ServerInterface every handler set implements, and the echo glue that
// binds path, query and header parameters before dispatch. It mirrors
// openapi.yaml, which is embedded and served through GetSwagger.
package servers

import (
	"fmt"
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/oapi-codegen/runtime"
	openapi_types "github.com/oapi-codegen/runtime/types"
)

// ServerInterface represents all server handlers.
type ServerInterface interface {
	// List orders visible to the caller
	// (GET /api/v1/orders)
	ListOrders(ctx echo.Context, params ListOrdersParams) error
	// Place an order with a vendor
	// (POST /api/v1/orders)
	PlaceOrder(ctx echo.Context, params PlaceOrderParams) error
	// Fetch one order
	// (GET /api/v1/orders/{orderId})
	GetOrder(ctx echo.Context, orderId openapi_types.UUID) error
	// Record a payment outcome
	// (PATCH /api/v1/orders/{orderId}/payment)
	ChangePaymentStatus(ctx echo.Context, orderId openapi_types.UUID) error
	// Move an order through its lifecycle
	// (PATCH /api/v1/orders/{orderId}/status)
	ChangeOrderStatus(ctx echo.Context, orderId openapi_types.UUID) error
	// List categories with their item counts
	// (GET /api/v1/categories)
	ListCategories(ctx echo.Context, params ListCategoriesParams) error
	// Create a category
	// (POST /api/v1/categories)
	CreateCategory(ctx echo.Context) error
	// Delete a category that no food item references
	// (DELETE /api/v1/categories/{categoryId})
	DeleteCategory(ctx echo.Context, categoryId openapi_types.UUID) error
	// Search dishes by name
	// (GET /api/v1/food-items)
	SearchFoodItems(ctx echo.Context, params SearchFoodItemsParams) error
	// Add a dish to the caller's menu
	// (POST /api/v1/food-items)
	CreateFoodItem(ctx echo.Context) error
	// Change fields of a dish
	// (PATCH /api/v1/food-items/{foodItemId})
	UpdateFoodItem(ctx echo.Context, foodItemId openapi_types.UUID) error
}

// ServerInterfaceWrapper converts echo contexts to parameters.
type ServerInterfaceWrapper struct {
	Handler ServerInterface
}

// ListOrders converts echo context to params.
func (w *ServerInterfaceWrapper) ListOrders(ctx echo.Context) error {
	var err error

	ctx.Set(BearerAuthScopes, []string{})

	var params ListOrdersParams

	err = runtime.BindQueryParameter("form", true, false, "customer", ctx.QueryParams(), &params.Customer)
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, fmt.Sprintf("Invalid format for parameter customer: %s", err))
	}

	err = runtime.BindQueryParameter("form", true, false, "vendor", ctx.QueryParams(), &params.Vendor)
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, fmt.Sprintf("Invalid format for parameter vendor: %s", err))
	}

	err = runtime.BindQueryParameter("form", true, false, "status", ctx.QueryParams(), &params.Status)
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, fmt.Sprintf("Invalid format for parameter status: %s", err))
	}

	err = runtime.BindQueryParameter("form", true, false, "limit", ctx.QueryParams(), &params.Limit)
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, fmt.Sprintf("Invalid format for parameter limit: %s", err))
	}

	return w.Handler.ListOrders(ctx, params)
}

// PlaceOrder converts echo context to params.
func (w *ServerInterfaceWrapper) PlaceOrder(ctx echo.Context) error {
	var err error

	ctx.Set(BearerAuthScopes, []string{})

	var params PlaceOrderParams

	headers := ctx.Request().Header
	if valueList, found := headers[http.CanonicalHeaderKey("Idempotency-Key")]; found {
		var idempotencyKey string
		n := len(valueList)
		if n != 1 {
			return echo.NewHTTPError(http.StatusBadRequest,
				fmt.Sprintf("Expected one value for Idempotency-Key, got %d", n))
		}

		err = runtime.BindStyledParameterWithOptions("simple", "Idempotency-Key", valueList[0], &idempotencyKey,
			runtime.BindStyledParameterOptions{ParamLocation: runtime.ParamLocationHeader, Explode: false, Required: false})
		if err != nil {
			return echo.NewHTTPError(http.StatusBadRequest,
				fmt.Sprintf("Invalid format for parameter Idempotency-Key: %s", err))
		}

		params.IdempotencyKey = &idempotencyKey
	}

	return w.Handler.PlaceOrder(ctx, params)
}

// GetOrder converts echo context to params.
func (w *ServerInterfaceWrapper) GetOrder(ctx echo.Context) error {
	orderID, err := bindUUIDPathParam(ctx, "orderId")
	if err != nil {
		return err
	}

	ctx.Set(BearerAuthScopes, []string{})

	return w.Handler.GetOrder(ctx, orderID)
}

// ChangePaymentStatus converts echo context to params.
func (w *ServerInterfaceWrapper) ChangePaymentStatus(ctx echo.Context) error {
	orderID, err := bindUUIDPathParam(ctx, "orderId")
	if err != nil {
		return err
	}

	ctx.Set(BearerAuthScopes, []string{})

	return w.Handler.ChangePaymentStatus(ctx, orderID)
}

// ChangeOrderStatus converts echo context to params.
func (w *ServerInterfaceWrapper) ChangeOrderStatus(ctx echo.Context) error {
	orderID, err := bindUUIDPathParam(ctx, "orderId")
	if err != nil {
		return err
	}

	ctx.Set(BearerAuthScopes, []string{})

	return w.Handler.ChangeOrderStatus(ctx, orderID)
}

// ListCategories converts echo context to params.
func (w *ServerInterfaceWrapper) ListCategories(ctx echo.Context) error {
	var params ListCategoriesParams

	err := runtime.BindQueryParameter("form", true, false, "status", ctx.QueryParams(), &params.Status)
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, fmt.Sprintf("Invalid format for parameter status: %s", err))
	}

	return w.Handler.ListCategories(ctx, params)
}

// CreateCategory converts echo context to params.
func (w *ServerInterfaceWrapper) CreateCategory(ctx echo.Context) error {
	ctx.Set(BearerAuthScopes, []string{})

	return w.Handler.CreateCategory(ctx)
}

// DeleteCategory converts echo context to params.
func (w *ServerInterfaceWrapper) DeleteCategory(ctx echo.Context) error {
	categoryID, err := bindUUIDPathParam(ctx, "categoryId")
	if err != nil {
		return err
	}

	ctx.Set(BearerAuthScopes, []string{})

	return w.Handler.DeleteCategory(ctx, categoryID)
}

// SearchFoodItems converts echo context to params.
func (w *ServerInterfaceWrapper) SearchFoodItems(ctx echo.Context) error {
	var err error

	var params SearchFoodItemsParams

	err = runtime.BindQueryParameter("form", true, false, "q", ctx.QueryParams(), &params.Q)
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, fmt.Sprintf("Invalid format for parameter q: %s", err))
	}

	err = runtime.BindQueryParameter("form", true, false, "vendor", ctx.QueryParams(), &params.Vendor)
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, fmt.Sprintf("Invalid format for parameter vendor: %s", err))
	}

	err = runtime.BindQueryParameter("form", true, false, "category", ctx.QueryParams(), &params.Category)
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, fmt.Sprintf("Invalid format for parameter category: %s", err))
	}

	err = runtime.BindQueryParameter("form", true, false, "available", ctx.QueryParams(), &params.Available)
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, fmt.Sprintf("Invalid format for parameter available: %s", err))
	}

	err = runtime.BindQueryParameter("form", true, false, "limit", ctx.QueryParams(), &params.Limit)
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, fmt.Sprintf("Invalid format for parameter limit: %s", err))
	}

	return w.Handler.SearchFoodItems(ctx, params)
}

// CreateFoodItem converts echo context to params.
func (w *ServerInterfaceWrapper) CreateFoodItem(ctx echo.Context) error {
	ctx.Set(BearerAuthScopes, []string{})

	return w.Handler.CreateFoodItem(ctx)
}

// UpdateFoodItem converts echo context to params.
func (w *ServerInterfaceWrapper) UpdateFoodItem(ctx echo.Context) error {
	foodItemID, err := bindUUIDPathParam(ctx, "foodItemId")
	if err != nil {
		return err
	}

	ctx.Set(BearerAuthScopes, []string{})

	return w.Handler.UpdateFoodItem(ctx, foodItemID)
}

func bindUUIDPathParam(ctx echo.Context, name string) (openapi_types.UUID, error) {
	var id openapi_types.UUID

	err := runtime.BindStyledParameterWithOptions("simple", name, ctx.Param(name), &id,
		runtime.BindStyledParameterOptions{ParamLocation: runtime.ParamLocationPath, Explode: false, Required: true})
	if err != nil {
		return id, echo.NewHTTPError(http.StatusBadRequest, fmt.Sprintf("Invalid format for parameter %s: %s", name, err))
	}

	return id, nil
}

// EchoRouter is the subset of echo.Echo and echo.Group used for registration.
type EchoRouter interface {
	DELETE(path string, h echo.HandlerFunc, m ...echo.MiddlewareFunc) *echo.Route
	GET(path string, h echo.HandlerFunc, m ...echo.MiddlewareFunc) *echo.Route
	PATCH(path string, h echo.HandlerFunc, m ...echo.MiddlewareFunc) *echo.Route
	POST(path string, h echo.HandlerFunc, m ...echo.MiddlewareFunc) *echo.Route
}

// RegisterHandlers adds each server route to the EchoRouter.
func RegisterHandlers(router EchoRouter, si ServerInterface) {
	RegisterHandlersWithBaseURL(router, si, "")
}

// RegisterHandlersWithBaseURL registers handlers, and prepends BaseURL to the
// paths, so that the paths can be served under a prefix.
func RegisterHandlersWithBaseURL(router EchoRouter, si ServerInterface, baseURL string) {
	wrapper := ServerInterfaceWrapper{
		Handler: si,
	}

	router.GET(baseURL+"/api/v1/orders", wrapper.ListOrders)
	router.POST(baseURL+"/api/v1/orders", wrapper.PlaceOrder)
	router.GET(baseURL+"/api/v1/orders/:orderId", wrapper.GetOrder)
	router.PATCH(baseURL+"/api/v1/orders/:orderId/payment", wrapper.ChangePaymentStatus)
	router.PATCH(baseURL+"/api/v1/orders/:orderId/status", wrapper.ChangeOrderStatus)
	router.GET(baseURL+"/api/v1/categories", wrapper.ListCategories)
	router.POST(baseURL+"/api/v1/categories", wrapper.CreateCategory)
	router.DELETE(baseURL+"/api/v1/categories/:categoryId", wrapper.DeleteCategory)
	router.GET(baseURL+"/api/v1/food-items", wrapper.SearchFoodItems)
	router.POST(baseURL+"/api/v1/food-items", wrapper.CreateFoodItem)
	router.PATCH(baseURL+"/api/v1/food-items/:foodItemId", wrapper.UpdateFoodItem)
}
