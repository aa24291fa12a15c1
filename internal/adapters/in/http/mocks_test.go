package http_test

import (
	"context"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	httpadapter "dishly/internal/adapters/in/http"
	"dishly/internal/core/application/usecases/commands"
	"dishly/internal/core/application/usecases/queries"
	"dishly/internal/core/domain/model/kernel"
	"dishly/internal/core/domain/model/order"

	"github.com/golang-jwt/jwt/v5"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

var testSecret = []byte("test-secret")

// MockCommandHandler is a mock for command handlers that return only an error.
type MockCommandHandler[C any] struct {
	mock.Mock
}

func (m *MockCommandHandler[C]) Handle(ctx context.Context, cmd C) error {
	args := m.Called(ctx, cmd)
	return args.Error(0)
}

// MockResultHandler is a mock for handlers that return a value and an error.
type MockResultHandler[Q, R any] struct {
	mock.Mock
}

func (m *MockResultHandler[Q, R]) Handle(ctx context.Context, query Q) (R, error) {
	args := m.Called(ctx, query)
	var zero R
	if args.Get(0) == nil {
		return zero, args.Error(1)
	}
	return args.Get(0).(R), args.Error(1)
}

type handlerMocks struct {
	placeOrder          *MockResultHandler[commands.PlaceOrderCommand, commands.PlaceOrderResult]
	changeOrderStatus   *MockCommandHandler[commands.ChangeOrderStatusCommand]
	changePaymentStatus *MockCommandHandler[commands.ChangePaymentStatusCommand]
	createCategory      *MockCommandHandler[commands.CreateCategoryCommand]
	deleteCategory      *MockCommandHandler[commands.DeleteCategoryCommand]
	createFoodItem      *MockCommandHandler[commands.CreateFoodItemCommand]
	updateFoodItem      *MockCommandHandler[commands.UpdateFoodItemCommand]
	getOrder            *MockResultHandler[queries.GetOrderQuery, queries.OrderResponse]
	listOrders          *MockResultHandler[queries.ListOrdersQuery, []queries.OrderResponse]
	listCategories      *MockResultHandler[queries.ListCategoriesQuery, []queries.ListCategoriesQueryResponse]
	searchFoodItems     *MockResultHandler[queries.SearchFoodItemsQuery, []queries.FoodItemResponse]
}

func newHandlerMocks() *handlerMocks {
	return &handlerMocks{
		placeOrder:          &MockResultHandler[commands.PlaceOrderCommand, commands.PlaceOrderResult]{},
		changeOrderStatus:   &MockCommandHandler[commands.ChangeOrderStatusCommand]{},
		changePaymentStatus: &MockCommandHandler[commands.ChangePaymentStatusCommand]{},
		createCategory:      &MockCommandHandler[commands.CreateCategoryCommand]{},
		deleteCategory:      &MockCommandHandler[commands.DeleteCategoryCommand]{},
		createFoodItem:      &MockCommandHandler[commands.CreateFoodItemCommand]{},
		updateFoodItem:      &MockCommandHandler[commands.UpdateFoodItemCommand]{},
		getOrder:            &MockResultHandler[queries.GetOrderQuery, queries.OrderResponse]{},
		listOrders:          &MockResultHandler[queries.ListOrdersQuery, []queries.OrderResponse]{},
		listCategories:      &MockResultHandler[queries.ListCategoriesQuery, []queries.ListCategoriesQueryResponse]{},
		searchFoodItems:     &MockResultHandler[queries.SearchFoodItemsQuery, []queries.FoodItemResponse]{},
	}
}

func (m *handlerMocks) handlers() httpadapter.Handlers {
	return httpadapter.Handlers{
		PlaceOrder:          m.placeOrder,
		ChangeOrderStatus:   m.changeOrderStatus,
		ChangePaymentStatus: m.changePaymentStatus,
		CreateCategory:      m.createCategory,
		DeleteCategory:      m.deleteCategory,
		CreateFoodItem:      m.createFoodItem,
		UpdateFoodItem:      m.updateFoodItem,
		GetOrder:            m.getOrder,
		ListOrders:          m.listOrders,
		ListCategories:      m.listCategories,
		SearchFoodItems:     m.searchFoodItems,
	}
}

func (m *handlerMocks) assertExpectations(t *testing.T) {
	t.Helper()
	m.placeOrder.AssertExpectations(t)
	m.changeOrderStatus.AssertExpectations(t)
	m.changePaymentStatus.AssertExpectations(t)
	m.createCategory.AssertExpectations(t)
	m.deleteCategory.AssertExpectations(t)
	m.createFoodItem.AssertExpectations(t)
	m.updateFoodItem.AssertExpectations(t)
	m.getOrder.AssertExpectations(t)
	m.listOrders.AssertExpectations(t)
	m.listCategories.AssertExpectations(t)
	m.searchFoodItems.AssertExpectations(t)
}

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func newTestRouter(
	t *testing.T,
	mocks *handlerMocks,
	rateLimit httpadapter.RateLimitConfig,
	checks ...httpadapter.HealthCheck,
) *echo.Echo {
	t.Helper()

	server := httpadapter.NewServer(mocks.handlers(), discardLogger())
	e, err := httpadapter.NewRouter(httpadapter.RouterConfig{
		JWTSecret: testSecret,
		RateLimit: rateLimit,
	}, server, discardLogger(), checks...)
	require.NoError(t, err)

	return e
}

func signToken(t *testing.T, subject, role string, ttl time.Duration) string {
	t.Helper()

	claims := httpadapter.Claims{
		Role: role,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   subject,
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(ttl)),
		},
	}
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(testSecret)
	require.NoError(t, err)

	return token
}

func doRequest(e *echo.Echo, method, path, body, token string, headers ...string) *httptest.ResponseRecorder {
	var reader io.Reader
	if body != "" {
		reader = strings.NewReader(body)
	}

	req := httptest.NewRequest(method, path, reader)
	if body != "" {
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	}
	if token != "" {
		req.Header.Set(echo.HeaderAuthorization, "Bearer "+token)
	}
	for i := 0; i+1 < len(headers); i += 2 {
		req.Header.Set(headers[i], headers[i+1])
	}

	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)
	return rec
}

var placedAt = time.Date(2026, 3, 14, 12, 0, 0, 0, time.UTC)

func orderResponse(id, customerID, vendorID kernel.UUID, status order.Status) queries.OrderResponse {
	return queries.OrderResponse{
		ID:         id,
		CustomerID: customerID,
		VendorID:   vendorID,
		Items: []queries.LineItemResponse{{
			FoodItemID:   kernel.NewUUID(),
			Quantity:     2,
			PriceAtOrder: kernel.MustMoney("12.50"),
			Subtotal:     kernel.MustMoney("25.00"),
		}},
		TotalAmount:     kernel.MustMoney("25.00"),
		DeliveryAddress: "1 Main St",
		Status:          status,
		PaymentStatus:   order.PaymentPending,
		CreatedAt:       placedAt,
		UpdatedAt:       placedAt,
		Version:         1,
	}
}

func unavailable(context.Context) error {
	return http.ErrServerClosed
}
