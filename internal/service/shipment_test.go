package service

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/mayrii101/Project-D-Lafeber-sub000/internal/models"
)

func TestShipmentCreateBuildsJoinRows(t *testing.T) {
	db := newTestDB(t)
	svc := NewShipmentService(db)
	ctx := context.Background()

	customer := seedCustomer(t, db, "Lafeber BV")
	driver := &models.Employee{Name: "D. Vries", Role: "Driver"}
	require.NoError(t, db.Create(driver).Error)
	vehicle := &models.Vehicle{LicensePlate: "AB-12-CD", Type: models.VehicleFlatbedTrailer, Status: models.VehicleAvailable}
	require.NoError(t, db.Create(vehicle).Error)

	orderA := &models.Order{CustomerID: customer.ID, Status: models.OrderPending}
	orderB := &models.Order{CustomerID: customer.ID, Status: models.OrderPending}
	require.NoError(t, db.Create(orderA).Error)
	require.NoError(t, db.Create(orderB).Error)

	created, err := svc.Create(ctx, CreateShipmentInput{
		VehicleID:            vehicle.ID,
		DriverID:             driver.ID,
		Status:               "Preparing",
		DepartureDate:        "20-03-2025",
		DepartureTime:        "06:00",
		ExpectedDeliveryDate: "20-03-2025",
		ExpectedDeliveryTime: "16:00",
		OrderIDs:             []uint{orderA.ID, orderB.ID},
	})
	require.NoError(t, err)
	require.NotZero(t, created.ID)
	require.Equal(t, models.ShipmentPreparing, created.Status)

	var joins []models.ShipmentOrder
	require.NoError(t, db.Where("shipment_id = ?", created.ID).Find(&joins).Error)
	require.Len(t, joins, 2)
}

func TestShipmentUpdateAddsOrdersNeverRemoves(t *testing.T) {
	db := newTestDB(t)
	svc := NewShipmentService(db)
	ctx := context.Background()

	customer := seedCustomer(t, db, "Lafeber BV")
	driver := &models.Employee{Name: "D. Vries", Role: "Driver"}
	require.NoError(t, db.Create(driver).Error)
	vehicle := &models.Vehicle{LicensePlate: "AB-12-CD", Type: models.VehicleFlatbedTrailer, Status: models.VehicleAvailable}
	require.NoError(t, db.Create(vehicle).Error)

	orderA := &models.Order{CustomerID: customer.ID, Status: models.OrderPending}
	orderB := &models.Order{CustomerID: customer.ID, Status: models.OrderPending}
	require.NoError(t, db.Create(orderA).Error)
	require.NoError(t, db.Create(orderB).Error)

	created, err := svc.Create(ctx, CreateShipmentInput{
		VehicleID:            vehicle.ID,
		DriverID:             driver.ID,
		Status:               "Preparing",
		DepartureDate:        "20-03-2025",
		DepartureTime:        "06:00",
		ExpectedDeliveryDate: "20-03-2025",
		ExpectedDeliveryTime: "16:00",
		OrderIDs:             []uint{orderA.ID},
	})
	require.NoError(t, err)

	// The incoming object names only orderB; orderA stays linked.
	incoming := &models.Shipment{
		VehicleID:            vehicle.ID,
		DriverID:             driver.ID,
		Status:               models.ShipmentOutForDelivery,
		DepartureDate:        created.DepartureDate,
		ExpectedDeliveryDate: created.ExpectedDeliveryDate,
		ShipmentOrders: []models.ShipmentOrder{
			{OrderID: orderB.ID},
		},
	}

	updated, err := svc.Update(ctx, created.ID, incoming)
	require.NoError(t, err)
	require.Equal(t, models.ShipmentOutForDelivery, updated.Status)

	var joins []models.ShipmentOrder
	require.NoError(t, db.Where("shipment_id = ?", created.ID).Find(&joins).Error)
	require.Len(t, joins, 2)

	// Repeating the same update is a no-op on the join set.
	_, err = svc.Update(ctx, created.ID, incoming)
	require.NoError(t, err)
	require.NoError(t, db.Where("shipment_id = ?", created.ID).Find(&joins).Error)
	require.Len(t, joins, 2)
}

func TestShipmentSoftDelete(t *testing.T) {
	db := newTestDB(t)
	svc := NewShipmentService(db)
	ctx := context.Background()

	shipment := &models.Shipment{Status: models.ShipmentPreparing, DepartureDate: time.Now()}
	require.NoError(t, db.Create(shipment).Error)

	deleted, err := svc.SoftDelete(ctx, shipment.ID)
	require.NoError(t, err)
	require.True(t, deleted)

	deleted, err = svc.SoftDelete(ctx, shipment.ID)
	require.NoError(t, err)
	require.False(t, deleted)

	_, err = svc.Get(ctx, shipment.ID)
	require.ErrorIs(t, err, ErrNotFound)
}
