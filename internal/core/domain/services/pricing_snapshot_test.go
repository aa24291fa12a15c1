package services_test

import (
	"testing"
	"time"

	"dishly/internal/core/domain/model/catalog"
	"dishly/internal/core/domain/model/kernel"
	"dishly/internal/core/domain/model/order"
	"dishly/internal/core/domain/services"
	"dishly/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newFoodItem(t *testing.T, vendorID kernel.UUID, name string, course catalog.Course, price string) *catalog.FoodItem {
	t.Helper()
	item, err := catalog.NewFoodItem(kernel.NewUUID(), catalog.FoodItemParams{
		Name:            name,
		Description:     name + " from the house",
		Price:           kernel.MustMoney(price),
		Course:          course,
		VendorID:        vendorID,
		PreparationTime: catalog.DefaultPreparationTime,
		IsAvailable:     true,
		Ingredients:     []string{"love"},
	}, time.Now())
	require.NoError(t, err)
	return item
}

func TestPricingSnapshot_Snapshot(t *testing.T) {
	vendorID := kernel.NewUUID()
	snapshot := services.NewPricingSnapshot()

	t.Run("should freeze the live price", func(t *testing.T) {
		item := newFoodItem(t, vendorID, "Burger", catalog.CourseMainCourse, "9.50")

		line, err := snapshot.Snapshot(item, services.LineItemRequest{
			FoodItemID: item.ID(), Quantity: 3, SpecialInstructions: "no onions",
		})

		require.NoError(t, err)
		assert.True(t, line.PriceAtOrder().IsEqual(kernel.MustMoney("9.50")))
		assert.Equal(t, "no onions", line.SpecialInstructions())

		price := kernel.MustMoney("20")
		require.NoError(t, item.Update(catalog.FoodItemPatch{Price: &price}, time.Now()))
		assert.True(t, line.PriceAtOrder().IsEqual(kernel.MustMoney("9.50")))
	})

	t.Run("should fail with not found for a missing item", func(t *testing.T) {
		id := kernel.NewUUID()

		_, err := snapshot.Snapshot(nil, services.LineItemRequest{FoodItemID: id, Quantity: 1})

		require.ErrorIs(t, err, errs.ErrObjectNotFound)
		assert.Contains(t, err.Error(), id.String())
	})

	t.Run("should fail with not found for an unavailable item", func(t *testing.T) {
		cola := newFoodItem(t, vendorID, "Cola", catalog.CourseBeverage, "120")
		require.False(t, cola.IsAvailable())

		_, err := snapshot.Snapshot(cola, services.LineItemRequest{FoodItemID: cola.ID(), Quantity: 1})

		require.ErrorIs(t, err, errs.ErrObjectNotFound)
		assert.Contains(t, err.Error(), services.ErrFoodItemUnavailable.Error())
	})

	t.Run("should fail validation for quantity 21", func(t *testing.T) {
		item := newFoodItem(t, vendorID, "Fries", catalog.CourseSideDish, "3")

		_, err := snapshot.Snapshot(item, services.LineItemRequest{FoodItemID: item.ID(), Quantity: 21})

		require.ErrorIs(t, err, errs.ErrValueIsOutOfRange)
	})
}

func TestPricingSnapshot_SnapshotAll(t *testing.T) {
	vendorID := kernel.NewUUID()
	snapshot := services.NewPricingSnapshot()
	burger := newFoodItem(t, vendorID, "Burger", catalog.CourseMainCourse, "9.50")
	fries := newFoodItem(t, vendorID, "Fries", catalog.CourseSideDish, "3")
	items := []*catalog.FoodItem{burger, fries}

	t.Run("should keep request order", func(t *testing.T) {
		lines, err := snapshot.SnapshotAll(vendorID, []services.LineItemRequest{
			{FoodItemID: fries.ID(), Quantity: 2},
			{FoodItemID: burger.ID(), Quantity: 1},
		}, items)

		require.NoError(t, err)
		require.Len(t, lines, 2)
		assert.True(t, lines[0].FoodItemID().IsEqual(fries.ID()))
		assert.True(t, order.SumLineItems(lines).IsEqual(kernel.MustMoney("15.50")))
	})

	t.Run("should require at least one request", func(t *testing.T) {
		_, err := snapshot.SnapshotAll(vendorID, nil, items)

		require.ErrorIs(t, err, errs.ErrValueIsRequired)
	})

	t.Run("should reject items of another vendor", func(t *testing.T) {
		foreign := newFoodItem(t, kernel.NewUUID(), "Sushi", catalog.CourseMainCourse, "15")

		_, err := snapshot.SnapshotAll(vendorID, []services.LineItemRequest{
			{FoodItemID: foreign.ID(), Quantity: 1},
		}, append(items, foreign))

		require.ErrorIs(t, err, errs.ErrValueIsInvalid)
		assert.Contains(t, err.Error(), "belongs to another vendor")
	})

	t.Run("should join errors of every bad line", func(t *testing.T) {
		missing := kernel.NewUUID()

		_, err := snapshot.SnapshotAll(vendorID, []services.LineItemRequest{
			{FoodItemID: missing, Quantity: 1},
			{FoodItemID: burger.ID(), Quantity: 0},
		}, items)

		require.ErrorIs(t, err, errs.ErrObjectNotFound)
		require.ErrorIs(t, err, errs.ErrValueIsOutOfRange)
	})
}

// An overpriced cola is hidden from ordering, and an order captured at 120
// keeps its snapshot after the catalog price drops.
func TestPricingSnapshot_PriceChangeDoesNotTouchOrders(t *testing.T) {
	vendorID := kernel.NewUUID()
	cola := newFoodItem(t, vendorID, "Cola", catalog.CourseBeverage, "120")
	require.False(t, cola.IsAvailable())

	_, err := services.NewPricingSnapshot().Snapshot(cola, services.LineItemRequest{FoodItemID: cola.ID(), Quantity: 2})
	require.ErrorIs(t, err, errs.ErrObjectNotFound)

	line, err := order.NewLineItem(cola.ID(), 2, cola.Price(), "")
	require.NoError(t, err)
	o, err := order.NewOrder(kernel.NewUUID(), kernel.NewUUID(), vendorID, []order.LineItem{line}, "1 Main St", time.Now())
	require.NoError(t, err)
	assert.Equal(t, "120.00", o.LineItems()[0].PriceAtOrder().String())
	assert.Equal(t, "240.00", o.TotalAmount().String())

	price := kernel.MustMoney("50")
	require.NoError(t, cola.Update(catalog.FoodItemPatch{Price: &price}, time.Now()))
	assert.False(t, cola.IsAvailable(), "guards never re-enable an item")

	assert.Equal(t, "120.00", o.LineItems()[0].PriceAtOrder().String())
	assert.Equal(t, "240.00", o.TotalAmount().String())
	require.NoError(t, o.RecomputeTotal())
}
