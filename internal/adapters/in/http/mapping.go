package http

import (
	"dishly/internal/core/application/usecases/commands"
	"dishly/internal/core/application/usecases/queries"
	"dishly/internal/core/domain/model/catalog"
	"dishly/internal/core/domain/model/kernel"
	"dishly/internal/core/domain/model/order"
	"dishly/internal/core/domain/services"
	"dishly/internal/generated/servers"
	"dishly/internal/pkg/errs"

	openapi_types "github.com/oapi-codegen/runtime/types"
)

func toKernelUUID(param string, id openapi_types.UUID) (kernel.UUID, error) {
	u, err := kernel.UUIDFromBytes(id[:])
	if err != nil {
		return kernel.UUID{}, errs.NewValueIsInvalidErrorWithCause(param, err)
	}
	return u, nil
}

func toOptionalKernelUUID(param string, id *openapi_types.UUID) (*kernel.UUID, error) {
	if id == nil {
		return nil, nil //nolint:nilnil // absent optional value
	}
	u, err := toKernelUUID(param, *id)
	if err != nil {
		return nil, err
	}
	return &u, nil
}

func toLineItemRequests(items []servers.NewLineItem) ([]services.LineItemRequest, error) {
	requests := make([]services.LineItemRequest, 0, len(items))
	for _, item := range items {
		foodItemID, err := toKernelUUID("foodItemId", item.FoodItemId)
		if err != nil {
			return nil, err
		}
		requests = append(requests, services.LineItemRequest{
			FoodItemID:          foodItemID,
			Quantity:            item.Quantity,
			SpecialInstructions: deref(item.SpecialInstructions),
		})
	}
	return requests, nil
}

func toListOrdersFilter(params servers.ListOrdersParams) (queries.ListOrdersFilter, error) {
	customerID, err := toOptionalKernelUUID("customer", params.Customer)
	if err != nil {
		return queries.ListOrdersFilter{}, err
	}
	vendorID, err := toOptionalKernelUUID("vendor", params.Vendor)
	if err != nil {
		return queries.ListOrdersFilter{}, err
	}

	filter := queries.ListOrdersFilter{
		CustomerID: customerID,
		VendorID:   vendorID,
	}
	if params.Status != nil {
		status, err := order.ParseStatus(string(*params.Status))
		if err != nil {
			return queries.ListOrdersFilter{}, err
		}
		filter.Status = &status
	}
	if params.Limit != nil {
		filter.Limit = *params.Limit
	}
	return filter, nil
}

func toSearchFilter(params servers.SearchFoodItemsParams) (catalog.SearchFilter, error) {
	vendorID, err := toOptionalKernelUUID("vendor", params.Vendor)
	if err != nil {
		return catalog.SearchFilter{}, err
	}
	categoryID, err := toOptionalKernelUUID("category", params.Category)
	if err != nil {
		return catalog.SearchFilter{}, err
	}

	return catalog.SearchFilter{
		Text:          deref(params.Q),
		VendorID:      vendorID,
		CategoryID:    categoryID,
		AvailableOnly: deref(params.Available),
		Limit:         deref(params.Limit),
	}, nil
}

func toStatusChange(body servers.StatusChange) (order.StatusChange, error) {
	to, err := order.ParseStatus(string(body.Status))
	if err != nil {
		return order.StatusChange{}, err
	}
	return order.StatusChange{
		To:                 to,
		CancellationReason: deref(body.CancellationReason),
		DeliveryTime:       body.DeliveryTime,
	}, nil
}

func toPaymentStatus(s servers.PaymentStatus) (order.PaymentStatus, error) {
	return order.ParsePaymentStatus(string(s))
}

func toOptionalCategoryStatus(s *servers.CategoryStatus) (*catalog.CategoryStatus, error) {
	if s == nil {
		return nil, nil //nolint:nilnil // absent optional value
	}
	status, err := catalog.ParseCategoryStatus(string(*s))
	if err != nil {
		return nil, err
	}
	return &status, nil
}

func toCategoryInput(body servers.NewCategory) (commands.CategoryInput, error) {
	status, err := toOptionalCategoryStatus(body.Status)
	if err != nil {
		return commands.CategoryInput{}, err
	}

	input := commands.CategoryInput{
		Name:           body.Name,
		Description:    body.Description,
		ImageURL:       deref(body.ImageUrl),
		DisplayOrder:   deref(body.DisplayOrder),
		IsFeatured:     deref(body.IsFeatured),
		VendorSpecific: deref(body.VendorSpecific),
		Status:         status,
	}
	if body.Tags != nil {
		input.Tags = toTags[catalog.CategoryTag](*body.Tags)
	}
	return input, nil
}

func toFoodItemInput(body servers.NewFoodItem) (commands.FoodItemInput, error) {
	price, err := kernel.MoneyFromString(body.Price)
	if err != nil {
		return commands.FoodItemInput{}, err
	}
	course, err := catalog.ParseCourse(body.Course)
	if err != nil {
		return commands.FoodItemInput{}, err
	}
	categoryID, err := toOptionalKernelUUID("categoryId", body.CategoryId)
	if err != nil {
		return commands.FoodItemInput{}, err
	}

	input := commands.FoodItemInput{
		Name:            body.Name,
		Description:     body.Description,
		Price:           price,
		Course:          course,
		CategoryID:      categoryID,
		PreparationTime: body.PreparationTime,
		IsAvailable:     body.IsAvailable,
		ImageURL:        deref(body.ImageUrl),
	}
	if body.Ingredients != nil {
		input.Ingredients = *body.Ingredients
	}
	if body.DietaryTags != nil {
		input.DietaryTags = toTags[catalog.DietaryTag](*body.DietaryTags)
	}
	return input, nil
}

func toFoodItemPatch(body servers.FoodItemPatch) (catalog.FoodItemPatch, error) {
	categoryID, err := toOptionalKernelUUID("categoryId", body.CategoryId)
	if err != nil {
		return catalog.FoodItemPatch{}, err
	}

	patch := catalog.FoodItemPatch{
		Name:            body.Name,
		Description:     body.Description,
		CategoryID:      categoryID,
		ClearCategory:   deref(body.ClearCategory),
		PreparationTime: body.PreparationTime,
		IsAvailable:     body.IsAvailable,
		ImageURL:        body.ImageUrl,
	}
	if body.Price != nil {
		price, err := kernel.MoneyFromString(*body.Price)
		if err != nil {
			return catalog.FoodItemPatch{}, err
		}
		patch.Price = &price
	}
	if body.Course != nil {
		course, err := catalog.ParseCourse(*body.Course)
		if err != nil {
			return catalog.FoodItemPatch{}, err
		}
		patch.Course = &course
	}
	if body.Ingredients != nil {
		patch.Ingredients = *body.Ingredients
	}
	if body.DietaryTags != nil {
		patch.DietaryTags = toTags[catalog.DietaryTag](*body.DietaryTags)
	}
	return patch, nil
}

func toOrder(o queries.OrderResponse) servers.Order {
	items := make([]servers.LineItem, len(o.Items))
	for i, item := range o.Items {
		items[i] = servers.LineItem{
			FoodItemId:          item.FoodItemID.Bytes(),
			Quantity:            item.Quantity,
			PriceAtOrder:        item.PriceAtOrder.String(),
			Subtotal:            item.Subtotal.String(),
			SpecialInstructions: optional(item.SpecialInstructions),
		}
	}

	response := servers.Order{
		Id:                 o.ID.Bytes(),
		CustomerId:         o.CustomerID.Bytes(),
		VendorId:           o.VendorID.Bytes(),
		Items:              items,
		TotalAmount:        o.TotalAmount.String(),
		DeliveryAddress:    o.DeliveryAddress,
		Status:             servers.OrderStatus(o.Status.String()),
		PaymentStatus:      servers.PaymentStatus(o.PaymentStatus.String()),
		DeliveryTime:       o.DeliveryTime,
		CancellationReason: optional(o.CancellationReason),
		CreatedAt:          o.CreatedAt,
		UpdatedAt:          o.UpdatedAt,
		Version:            o.Version,
	}
	if o.Duration != nil {
		seconds := int64(o.Duration.Seconds())
		response.DurationSeconds = &seconds
	}
	return response
}

func toCategorySummary(c queries.ListCategoriesQueryResponse) servers.CategorySummary {
	return servers.CategorySummary{
		Id:           c.ID.Bytes(),
		Name:         c.Name,
		Description:  c.Description,
		ImageUrl:     optional(c.ImageURL),
		DisplayOrder: c.DisplayOrder,
		IsFeatured:   c.IsFeatured,
		Status:       servers.CategoryStatus(c.Status.String()),
		ItemCount:    c.ItemCount,
	}
}

func toFoodItem(item queries.FoodItemResponse) servers.FoodItem {
	response := servers.FoodItem{
		Id:              item.ID.Bytes(),
		VendorId:        item.VendorID.Bytes(),
		Name:            item.Name,
		Description:     item.Description,
		Price:           item.Price.String(),
		FormattedPrice:  item.FormattedPrice,
		Course:          item.Course.String(),
		PreparationTime: item.PreparationTime,
		IsAvailable:     item.IsAvailable,
		ImageUrl:        optional(item.ImageURL),
		Ingredients:     item.Ingredients,
		DietaryTags:     make([]string, len(item.DietaryTags)),
		PopularityScore: item.PopularityScore,
	}
	if item.CategoryID != nil {
		id := item.CategoryID.Bytes()
		response.CategoryId = &id
	}
	for i, tag := range item.DietaryTags {
		response.DietaryTags[i] = string(tag)
	}
	return response
}

func toTags[T ~string](values []string) []T {
	tags := make([]T, len(values))
	for i, v := range values {
		tags[i] = T(v)
	}
	return tags
}

func deref[T any](p *T) T {
	var zero T
	if p == nil {
		return zero
	}
	return *p
}

func optional(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}
