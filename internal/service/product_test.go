package service

import (
	"context"
	"testing"

	"github.com/go-playground/validator/v10"
	"github.com/stretchr/testify/require"

	"github.com/mayrii101/Project-D-Lafeber-sub000/internal/models"
)

func TestProductCreateRejectsNegativePrice(t *testing.T) {
	db := newTestDB(t)
	svc := NewProductService(db)
	ctx := context.Background()

	_, err := svc.Create(ctx, &models.Product{Name: "Pallet", Price: -1})
	require.Error(t, err)
	var verrs validator.ValidationErrors
	require.ErrorAs(t, err, &verrs)

	var count int64
	require.NoError(t, db.Model(&models.Product{}).Count(&count).Error)
	require.Zero(t, count)
}

func TestProductCreateAndGet(t *testing.T) {
	db := newTestDB(t)
	svc := NewProductService(db)
	ctx := context.Background()

	created, err := svc.Create(ctx, &models.Product{Name: "Pallet", SKU: "PLT-1", Price: 12.50, WeightKg: 20})
	require.NoError(t, err)
	require.NotZero(t, created.ID)

	got, err := svc.Get(ctx, created.ID)
	require.NoError(t, err)
	require.Equal(t, "PLT-1", got.SKU)
	require.Equal(t, 12.50, got.Price)
}

func TestProductUpdateOverwritesFields(t *testing.T) {
	db := newTestDB(t)
	svc := NewProductService(db)
	ctx := context.Background()

	product := seedProduct(t, db, "Crate", 5, 2)

	updated, err := svc.Update(ctx, product.ID, &models.Product{
		Name:     "Crate XL",
		SKU:      "CRT-XL",
		Price:    7.5,
		WeightKg: 3,
		Material: "wood",
	})
	require.NoError(t, err)
	require.Equal(t, "Crate XL", updated.Name)
	require.Equal(t, "wood", updated.Material)

	_, err = svc.Update(ctx, product.ID, &models.Product{Name: "Bad", Price: -0.01})
	require.Error(t, err)
}
