package service

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/mayrii101/Project-D-Lafeber-sub000/internal/models"
)

func orderInput(customerID uint, lines ...OrderLineInput) CreateOrderInput {
	return CreateOrderInput{
		CustomerID:           customerID,
		OrderDate:            "15-03-2025",
		OrderTime:            "09:30",
		DeliveryAddress:      "Dock 7, Rotterdam",
		ExpectedDeliveryDate: "18-03-2025",
		ExpectedDeliveryTime: "14:00",
		Status:               "Pending",
		Lines:                lines,
	}
}

func TestOrderCreateExactStock(t *testing.T) {
	db := newTestDB(t)
	svc := NewOrderService(db)
	ctx := context.Background()

	customer := seedCustomer(t, db, "Lafeber BV")
	product := seedProduct(t, db, "Pallet", 10, 20)
	warehouse := seedWarehouse(t, db, "Rotterdam")
	seedInventory(t, db, product.ID, warehouse.ID, 5, time.Now())

	result, err := svc.Create(ctx, orderInput(customer.ID, OrderLineInput{ProductID: product.ID, Quantity: 5}))
	require.NoError(t, err)
	require.NotZero(t, result.OrderID)
	require.Equal(t, OrderConfirmationMessage, result.Message)
	require.Equal(t, 0, result.RemainingStock[product.ID])

	order, err := svc.Get(ctx, result.OrderID)
	require.NoError(t, err)
	require.Len(t, order.Lines, 1)
	require.Equal(t, 5, order.Lines[0].Quantity)
	require.Equal(t, models.OrderPending, order.Status)
	require.True(t, order.OrderDate.Equal(time.Date(2025, 3, 15, 9, 30, 0, 0, time.UTC)))
}

func TestOrderCreateInsufficientStockPersistsNothing(t *testing.T) {
	db := newTestDB(t)
	svc := NewOrderService(db)
	ctx := context.Background()

	customer := seedCustomer(t, db, "Lafeber BV")
	product := seedProduct(t, db, "Pallet", 10, 20)
	warehouse := seedWarehouse(t, db, "Rotterdam")
	inv := seedInventory(t, db, product.ID, warehouse.ID, 4, time.Now())

	_, err := svc.Create(ctx, orderInput(customer.ID, OrderLineInput{ProductID: product.ID, Quantity: 5}))
	require.Error(t, err)

	var stockErr *InsufficientStockError
	require.ErrorAs(t, err, &stockErr)
	require.Equal(t, product.ID, stockErr.ProductID)
	require.Equal(t, 5, stockErr.Requested)
	require.Equal(t, 4, stockErr.Available)

	var orderCount, lineCount int64
	require.NoError(t, db.Model(&models.Order{}).Count(&orderCount).Error)
	require.NoError(t, db.Model(&models.OrderLine{}).Count(&lineCount).Error)
	require.Zero(t, orderCount)
	require.Zero(t, lineCount)

	var row models.Inventory
	require.NoError(t, db.First(&row, inv.ID).Error)
	require.Equal(t, 4, row.QuantityOnHand)
}

func TestOrderCreateDeductsOldestFirst(t *testing.T) {
	db := newTestDB(t)
	svc := NewOrderService(db)
	ctx := context.Background()

	customer := seedCustomer(t, db, "Lafeber BV")
	product := seedProduct(t, db, "Pallet", 10, 20)
	warehouse := seedWarehouse(t, db, "Rotterdam")

	yesterday := time.Now().Add(-24 * time.Hour)
	older := seedInventory(t, db, product.ID, warehouse.ID, 3, yesterday)
	newer := seedInventory(t, db, product.ID, warehouse.ID, 10, time.Now())

	result, err := svc.Create(ctx, orderInput(customer.ID, OrderLineInput{ProductID: product.ID, Quantity: 5}))
	require.NoError(t, err)
	require.Equal(t, 8, result.RemainingStock[product.ID])

	var olderRow, newerRow models.Inventory
	require.NoError(t, db.First(&olderRow, older.ID).Error)
	require.NoError(t, db.First(&newerRow, newer.ID).Error)
	require.Equal(t, 0, olderRow.QuantityOnHand)
	require.Equal(t, 8, newerRow.QuantityOnHand)
	// Touched rows get a fresh LastUpdated.
	require.True(t, olderRow.LastUpdated.After(yesterday))
}

func TestOrderCreateIgnoresDeletedInventory(t *testing.T) {
	db := newTestDB(t)
	svc := NewOrderService(db)
	ctx := context.Background()

	customer := seedCustomer(t, db, "Lafeber BV")
	product := seedProduct(t, db, "Pallet", 10, 20)
	warehouse := seedWarehouse(t, db, "Rotterdam")

	ghost := seedInventory(t, db, product.ID, warehouse.ID, 100, time.Now())
	require.NoError(t, db.Model(ghost).Update("is_deleted", true).Error)
	seedInventory(t, db, product.ID, warehouse.ID, 2, time.Now())

	_, err := svc.Create(ctx, orderInput(customer.ID, OrderLineInput{ProductID: product.ID, Quantity: 3}))
	var stockErr *InsufficientStockError
	require.ErrorAs(t, err, &stockErr)
	require.Equal(t, 2, stockErr.Available)
}

func TestOrderCreateMalformedDate(t *testing.T) {
	db := newTestDB(t)
	svc := NewOrderService(db)
	ctx := context.Background()

	customer := seedCustomer(t, db, "Lafeber BV")

	input := orderInput(customer.ID, OrderLineInput{ProductID: 1, Quantity: 1})
	input.OrderDate = "2025-03-15"

	_, err := svc.Create(ctx, input)
	require.ErrorIs(t, err, ErrInvalidDateTime)
}

func TestOrderLineLineTotal(t *testing.T) {
	product := &models.Product{Price: 12.5}

	line := &models.OrderLine{Product: product, Quantity: 4}
	require.Equal(t, 50.0, line.LineTotal())

	line.Quantity = 0
	require.Equal(t, 0.0, line.LineTotal())
}

func TestOrderTotalWeight(t *testing.T) {
	heavy := &models.Product{WeightKg: 20}
	light := &models.Product{WeightKg: 0.5}

	order := &models.Order{Lines: []models.OrderLine{
		{Product: heavy, Quantity: 2},
		{Product: light, Quantity: 4},
	}}
	require.Equal(t, 42.0, order.TotalWeight())

	empty := &models.Order{}
	require.Equal(t, 0.0, empty.TotalWeight())
}
