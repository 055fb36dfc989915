package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/mayrii101/Project-D-Lafeber-sub000/internal/models"
)

func TestVehicleUpdateOnlyTouchesTypeAndStatus(t *testing.T) {
	db := newTestDB(t)
	svc := NewVehicleService(db)
	ctx := context.Background()

	vehicle := &models.Vehicle{
		LicensePlate: "AB-12-CD",
		CapacityKg:   12000,
		Type:         models.VehicleFlatbedTrailer,
		Status:       models.VehicleAvailable,
	}
	require.NoError(t, db.Create(vehicle).Error)

	updated, err := svc.Update(ctx, vehicle.ID, &models.Vehicle{
		LicensePlate: "XX-99-XX",
		CapacityKg:   1,
		Type:         models.VehicleKipper,
		Status:       models.VehicleMaintenance,
	})
	require.NoError(t, err)
	require.Equal(t, models.VehicleKipper, updated.Type)
	require.Equal(t, models.VehicleMaintenance, updated.Status)
	// License plate and capacity are fixed after creation.
	require.Equal(t, "AB-12-CD", updated.LicensePlate)
	require.Equal(t, float64(12000), updated.CapacityKg)
}

func TestVehicleSoftDeleteExcludesFromList(t *testing.T) {
	db := newTestDB(t)
	svc := NewVehicleService(db)
	ctx := context.Background()

	vehicle := &models.Vehicle{LicensePlate: "AB-12-CD", Type: models.VehicleKipper, Status: models.VehicleInUse}
	require.NoError(t, db.Create(vehicle).Error)

	deleted, err := svc.SoftDelete(ctx, vehicle.ID)
	require.NoError(t, err)
	require.True(t, deleted)

	vehicles, err := svc.List(ctx)
	require.NoError(t, err)
	require.Empty(t, vehicles)

	_, err = svc.Get(ctx, vehicle.ID)
	require.ErrorIs(t, err, ErrNotFound)
}
