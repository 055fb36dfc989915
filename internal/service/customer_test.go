package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/mayrii101/Project-D-Lafeber-sub000/internal/models"
)

func TestCustomerListExcludesDeleted(t *testing.T) {
	db := newTestDB(t)
	svc := NewCustomerService(db)
	ctx := context.Background()

	active := seedCustomer(t, db, "Active BV")
	deleted := seedCustomer(t, db, "Gone BV")
	require.NoError(t, db.Model(deleted).Update("is_deleted", true).Error)

	customers, err := svc.List(ctx)
	require.NoError(t, err)
	require.Len(t, customers, 1)
	require.Equal(t, active.ID, customers[0].ID)
}

func TestCustomerGetDeletedOrMissing(t *testing.T) {
	db := newTestDB(t)
	svc := NewCustomerService(db)
	ctx := context.Background()

	deleted := seedCustomer(t, db, "Gone BV")
	require.NoError(t, db.Model(deleted).Update("is_deleted", true).Error)

	_, err := svc.Get(ctx, deleted.ID)
	require.ErrorIs(t, err, ErrNotFound)

	_, err = svc.Get(ctx, 9999)
	require.ErrorIs(t, err, ErrNotFound)
}

func TestCustomerUpdate(t *testing.T) {
	db := newTestDB(t)
	svc := NewCustomerService(db)
	ctx := context.Background()

	customer := seedCustomer(t, db, "Before BV")

	updated, err := svc.Update(ctx, customer.ID, &models.Customer{
		CompanyName:   "After BV",
		ContactPerson: "J. Jansen",
		Email:         "after@example.com",
		Phone:         "0101234567",
		Address:       "Dock 4",
	})
	require.NoError(t, err)
	require.Equal(t, "After BV", updated.CompanyName)
	require.Equal(t, "J. Jansen", updated.ContactPerson)

	_, err = svc.Update(ctx, 9999, &models.Customer{CompanyName: "Nobody"})
	require.ErrorIs(t, err, ErrNotFound)
}

func TestCustomerSoftDeleteIdempotent(t *testing.T) {
	db := newTestDB(t)
	svc := NewCustomerService(db)
	ctx := context.Background()

	customer := seedCustomer(t, db, "Once BV")

	deleted, err := svc.SoftDelete(ctx, customer.ID)
	require.NoError(t, err)
	require.True(t, deleted)

	// Second delete reports failure and changes nothing.
	deleted, err = svc.SoftDelete(ctx, customer.ID)
	require.NoError(t, err)
	require.False(t, deleted)

	deleted, err = svc.SoftDelete(ctx, 9999)
	require.NoError(t, err)
	require.False(t, deleted)

	var row models.Customer
	require.NoError(t, db.First(&row, customer.ID).Error)
	require.True(t, row.IsDeleted)
}
