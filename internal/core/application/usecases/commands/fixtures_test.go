package commands_test

import (
	"testing"
	"time"

	"dishly/internal/core/domain/model/catalog"
	"dishly/internal/core/domain/model/kernel"
	"dishly/internal/core/domain/model/order"
	"dishly/internal/core/domain/model/user"

	"github.com/stretchr/testify/require"
)

func customer() user.Principal {
	return user.Principal{ID: kernel.NewUUID(), Role: user.RoleCustomer}
}

func vendor() user.Principal {
	return user.Principal{ID: kernel.NewUUID(), Role: user.RoleVendor}
}

func newFoodItem(t *testing.T, vendorID kernel.UUID, course catalog.Course, price string) *catalog.FoodItem {
	t.Helper()
	item, err := catalog.NewFoodItem(kernel.NewUUID(), catalog.FoodItemParams{
		Name:            "Dish",
		Description:     "A dish",
		Price:           kernel.MustMoney(price),
		Course:          course,
		VendorID:        vendorID,
		PreparationTime: catalog.DefaultPreparationTime,
		IsAvailable:     true,
		Ingredients:     []string{"salt"},
	}, time.Now())
	require.NoError(t, err)
	return item
}

func newCategory(t *testing.T, owner kernel.UUID) *catalog.Category {
	t.Helper()
	c, err := catalog.NewCategory(kernel.NewUUID(), catalog.CategoryParams{
		Name:        "Drinks",
		Description: "Cold drinks",
		ImageURL:    "https://cdn.example.com/drinks.png",
		CreatedBy:   owner,
		Status:      catalog.CategoryActive,
	}, time.Now())
	require.NoError(t, err)
	return c
}

func newOrder(t *testing.T, customerID, vendorID kernel.UUID) *order.Order {
	t.Helper()
	line, err := order.NewLineItem(kernel.NewUUID(), 2, kernel.MustMoney("120"), "")
	require.NoError(t, err)
	o, err := order.NewOrder(kernel.NewUUID(), customerID, vendorID, []order.LineItem{line}, "1 Main St", time.Now())
	require.NoError(t, err)
	o.ClearDomainEvents()
	return o
}
