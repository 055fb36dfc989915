package service

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/mayrii101/Project-D-Lafeber-sub000/internal/database"
	"github.com/mayrii101/Project-D-Lafeber-sub000/internal/models"
)

// newTestDB opens an in-memory SQLite database migrated with the full
// schema. One connection only, so every query sees the same database.
func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open("file::memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)

	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)

	require.NoError(t, database.Migrate(db))
	return db
}

// seedProduct inserts a product with the given price and weight.
func seedProduct(t *testing.T, db *gorm.DB, name string, price, weightKg float64) *models.Product {
	t.Helper()
	product := &models.Product{Name: name, SKU: name + "-sku", Price: price, WeightKg: weightKg}
	require.NoError(t, db.Create(product).Error)
	return product
}

// seedWarehouse inserts a warehouse.
func seedWarehouse(t *testing.T, db *gorm.DB, name string) *models.Warehouse {
	t.Helper()
	warehouse := &models.Warehouse{Name: name, Location: name + " site"}
	require.NoError(t, db.Create(warehouse).Error)
	return warehouse
}

// seedInventory inserts an inventory row for a product/warehouse pair.
func seedInventory(t *testing.T, db *gorm.DB, productID, warehouseID uint, qty int, updated time.Time) *models.Inventory {
	t.Helper()
	row := &models.Inventory{
		ProductID:      productID,
		WarehouseID:    warehouseID,
		QuantityOnHand: qty,
		LastUpdated:    updated,
	}
	require.NoError(t, db.Create(row).Error)
	return row
}

// seedCustomer inserts a customer.
func seedCustomer(t *testing.T, db *gorm.DB, company string) *models.Customer {
	t.Helper()
	customer := &models.Customer{CompanyName: company, Email: company + "@example.com"}
	require.NoError(t, db.Create(customer).Error)
	return customer
}
