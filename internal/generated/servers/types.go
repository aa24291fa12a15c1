package servers

import (
	"time"

	openapi_types "github.com/oapi-codegen/runtime/types"
)

const (
	BearerAuthScopes = "bearerAuth.Scopes"
)

// Defines values for CategoryStatus.
const (
	CategoryStatusActive   CategoryStatus = "active"
	CategoryStatusArchived CategoryStatus = "archived"
	CategoryStatusInactive CategoryStatus = "inactive"
)

// Defines values for OrderStatus.
const (
	OrderStatusCancelled      OrderStatus = "cancelled"
	OrderStatusConfirmed      OrderStatus = "confirmed"
	OrderStatusDelivered      OrderStatus = "delivered"
	OrderStatusOutForDelivery OrderStatus = "out-for-delivery"
	OrderStatusPending        OrderStatus = "pending"
	OrderStatusPreparing      OrderStatus = "preparing"
)

// Defines values for PaymentStatus.
const (
	PaymentStatusFailed   PaymentStatus = "failed"
	PaymentStatusPaid     PaymentStatus = "paid"
	PaymentStatusPending  PaymentStatus = "pending"
	PaymentStatusRefunded PaymentStatus = "refunded"
)

// CategoryStatus defines model for CategoryStatus.
type CategoryStatus string

// OrderStatus defines model for OrderStatus.
type OrderStatus string

// PaymentStatus defines model for PaymentStatus.
type PaymentStatus string

// Money is a decimal amount with at most two fraction digits, e.g. "12.50".
type Money = string

// Error defines model for Error.
type Error struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}

// Created defines model for Created.
type Created struct {
	Id openapi_types.UUID `json:"id"`
}

// NewLineItem defines model for NewLineItem.
type NewLineItem struct {
	FoodItemId          openapi_types.UUID `json:"foodItemId"`
	Quantity            int                `json:"quantity"`
	SpecialInstructions *string            `json:"specialInstructions,omitempty"`
}

// NewOrder defines model for NewOrder.
type NewOrder struct {
	DeliveryAddress string             `json:"deliveryAddress"`
	Items           []NewLineItem      `json:"items"`
	VendorId        openapi_types.UUID `json:"vendorId"`
}

// LineItem defines model for LineItem.
type LineItem struct {
	FoodItemId          openapi_types.UUID `json:"foodItemId"`
	PriceAtOrder        Money              `json:"priceAtOrder"`
	Quantity            int                `json:"quantity"`
	SpecialInstructions *string            `json:"specialInstructions,omitempty"`
	Subtotal            Money              `json:"subtotal"`
}

// Order defines model for Order.
type Order struct {
	CancellationReason *string            `json:"cancellationReason,omitempty"`
	CreatedAt          time.Time          `json:"createdAt"`
	CustomerId         openapi_types.UUID `json:"customerId"`
	DeliveryAddress    string             `json:"deliveryAddress"`
	DeliveryTime       *time.Time         `json:"deliveryTime,omitempty"`
	DurationSeconds    *int64             `json:"durationSeconds,omitempty"`
	Id                 openapi_types.UUID `json:"id"`
	Items              []LineItem         `json:"items"`
	PaymentStatus      PaymentStatus      `json:"paymentStatus"`
	Status             OrderStatus        `json:"status"`
	TotalAmount        Money              `json:"totalAmount"`
	UpdatedAt          time.Time          `json:"updatedAt"`
	VendorId           openapi_types.UUID `json:"vendorId"`
	Version            int                `json:"version"`
}

// StatusChange defines model for StatusChange.
type StatusChange struct {
	CancellationReason *string     `json:"cancellationReason,omitempty"`
	DeliveryTime       *time.Time  `json:"deliveryTime,omitempty"`
	Status             OrderStatus `json:"status"`
}

// PaymentChange defines model for PaymentChange.
type PaymentChange struct {
	PaymentStatus PaymentStatus `json:"paymentStatus"`
}

// NewCategory defines model for NewCategory.
type NewCategory struct {
	Description    string          `json:"description"`
	DisplayOrder   *int            `json:"displayOrder,omitempty"`
	ImageUrl       *string         `json:"imageUrl,omitempty"`
	IsFeatured     *bool           `json:"isFeatured,omitempty"`
	Name           string          `json:"name"`
	Status         *CategoryStatus `json:"status,omitempty"`
	Tags           *[]string       `json:"tags,omitempty"`
	VendorSpecific *bool           `json:"vendorSpecific,omitempty"`
}

// CategorySummary defines model for CategorySummary.
type CategorySummary struct {
	Description  string             `json:"description"`
	DisplayOrder int                `json:"displayOrder"`
	Id           openapi_types.UUID `json:"id"`
	ImageUrl     *string            `json:"imageUrl,omitempty"`
	IsFeatured   bool               `json:"isFeatured"`
	ItemCount    int64              `json:"itemCount"`
	Name         string             `json:"name"`
	Status       CategoryStatus     `json:"status"`
}

// NewFoodItem defines model for NewFoodItem.
type NewFoodItem struct {
	CategoryId      *openapi_types.UUID `json:"categoryId,omitempty"`
	Course          string              `json:"course"`
	Description     string              `json:"description"`
	DietaryTags     *[]string           `json:"dietaryTags,omitempty"`
	ImageUrl        *string             `json:"imageUrl,omitempty"`
	Ingredients     *[]string           `json:"ingredients,omitempty"`
	IsAvailable     *bool               `json:"isAvailable,omitempty"`
	Name            string              `json:"name"`
	PreparationTime *int                `json:"preparationTime,omitempty"`
	Price           Money               `json:"price"`
}

// FoodItem defines model for FoodItem.
type FoodItem struct {
	CategoryId      *openapi_types.UUID `json:"categoryId,omitempty"`
	Course          string              `json:"course"`
	Description     string              `json:"description"`
	DietaryTags     []string            `json:"dietaryTags"`
	FormattedPrice  string              `json:"formattedPrice"`
	Id              openapi_types.UUID  `json:"id"`
	ImageUrl        *string             `json:"imageUrl,omitempty"`
	Ingredients     []string            `json:"ingredients"`
	IsAvailable     bool                `json:"isAvailable"`
	Name            string              `json:"name"`
	PopularityScore int                 `json:"popularityScore"`
	PreparationTime int                 `json:"preparationTime"`
	Price           Money               `json:"price"`
	VendorId        openapi_types.UUID  `json:"vendorId"`
}

// FoodItemPatch defines model for FoodItemPatch.
type FoodItemPatch struct {
	CategoryId      *openapi_types.UUID `json:"categoryId,omitempty"`
	ClearCategory   *bool               `json:"clearCategory,omitempty"`
	Course          *string             `json:"course,omitempty"`
	Description     *string             `json:"description,omitempty"`
	DietaryTags     *[]string           `json:"dietaryTags,omitempty"`
	ImageUrl        *string             `json:"imageUrl,omitempty"`
	Ingredients     *[]string           `json:"ingredients,omitempty"`
	IsAvailable     *bool               `json:"isAvailable,omitempty"`
	Name            *string             `json:"name,omitempty"`
	PreparationTime *int                `json:"preparationTime,omitempty"`
	Price           *Money              `json:"price,omitempty"`
}

// PlaceOrderParams defines parameters for PlaceOrder.
type PlaceOrderParams struct {
	IdempotencyKey *string `json:"Idempotency-Key,omitempty"`
}

// ListOrdersParams defines parameters for ListOrders.
type ListOrdersParams struct {
	Customer *openapi_types.UUID `form:"customer,omitempty" json:"customer,omitempty"`
	Vendor   *openapi_types.UUID `form:"vendor,omitempty" json:"vendor,omitempty"`
	Status   *OrderStatus        `form:"status,omitempty" json:"status,omitempty"`
	Limit    *int                `form:"limit,omitempty" json:"limit,omitempty"`
}

// ListCategoriesParams defines parameters for ListCategories.
type ListCategoriesParams struct {
	Status *CategoryStatus `form:"status,omitempty" json:"status,omitempty"`
}

// SearchFoodItemsParams defines parameters for SearchFoodItems.
type SearchFoodItemsParams struct {
	Q         *string             `form:"q,omitempty" json:"q,omitempty"`
	Vendor    *openapi_types.UUID `form:"vendor,omitempty" json:"vendor,omitempty"`
	Category  *openapi_types.UUID `form:"category,omitempty" json:"category,omitempty"`
	Available *bool               `form:"available,omitempty" json:"available,omitempty"`
	Limit     *int                `form:"limit,omitempty" json:"limit,omitempty"`
}

// PlaceOrderJSONRequestBody defines body for PlaceOrder for application/json ContentType.
type PlaceOrderJSONRequestBody = NewOrder

// ChangeOrderStatusJSONRequestBody defines body for ChangeOrderStatus for application/json ContentType.
type ChangeOrderStatusJSONRequestBody = StatusChange

// ChangePaymentStatusJSONRequestBody defines body for ChangePaymentStatus for application/json ContentType.
type ChangePaymentStatusJSONRequestBody = PaymentChange

// CreateCategoryJSONRequestBody defines body for CreateCategory for application/json ContentType.
type CreateCategoryJSONRequestBody = NewCategory

// CreateFoodItemJSONRequestBody defines body for CreateFoodItem for application/json ContentType.
type CreateFoodItemJSONRequestBody = NewFoodItem

// UpdateFoodItemJSONRequestBody defines body for UpdateFoodItem for application/json ContentType.
type UpdateFoodItemJSONRequestBody = FoodItemPatch
