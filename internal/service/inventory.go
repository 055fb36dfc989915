package service

import (
	"context"
	"time"

	"github.com/pkg/errors"
	"gorm.io/gorm"

	"github.com/mayrii101/Project-D-Lafeber-sub000/internal/database"
	"github.com/mayrii101/Project-D-Lafeber-sub000/internal/models"
)

// InventoryService provides soft-delete CRUD over inventory rows
type InventoryService struct {
	db *gorm.DB
}

// NewInventoryService creates a new inventory service
func NewInventoryService(db *gorm.DB) *InventoryService {
	return &InventoryService{db: db}
}

// List returns all non-deleted inventory rows with product and warehouse
func (s *InventoryService) List(ctx context.Context) ([]models.Inventory, error) {
	var rows []models.Inventory
	err := s.db.WithContext(ctx).
		Preload("Product").
		Preload("Warehouse").
		Where("is_deleted = ?", false).
		Find(&rows).Error
	if err != nil {
		return nil, errors.Wrap(err, "failed to list inventory")
	}
	return rows, nil
}

// Get returns a non-deleted inventory row by id
func (s *InventoryService) Get(ctx context.Context, id uint) (*models.Inventory, error) {
	var row models.Inventory
	err := s.db.WithContext(ctx).
		Preload("Product").
		Preload("Warehouse").
		Where("id = ? AND is_deleted = ?", id, false).
		First(&row).Error
	if err != nil {
		if database.IsRecordNotFoundError(err) {
			return nil, ErrNotFound
		}
		return nil, errors.Wrap(err, "failed to get inventory")
	}
	return &row, nil
}

// Create inserts a new inventory row, stamping LastUpdated when unset
func (s *InventoryService) Create(ctx context.Context, row *models.Inventory) (*models.Inventory, error) {
	if row.LastUpdated.IsZero() {
		row.LastUpdated = time.Now()
	}
	if err := s.db.WithContext(ctx).Create(row).Error; err != nil {
		return nil, errors.Wrap(err, "failed to create inventory")
	}
	return row, nil
}

// Update overwrites an inventory row's fields by id and refreshes
// LastUpdated
func (s *InventoryService) Update(ctx context.Context, id uint, in *models.Inventory) (*models.Inventory, error) {
	existing, err := s.Get(ctx, id)
	if err != nil {
		return nil, err
	}

	existing.ProductID = in.ProductID
	existing.WarehouseID = in.WarehouseID
	existing.QuantityOnHand = in.QuantityOnHand
	existing.LastUpdated = time.Now()

	if err := s.db.WithContext(ctx).Save(existing).Error; err != nil {
		return nil, errors.Wrap(err, "failed to update inventory")
	}
	return existing, nil
}

// SoftDelete flags an inventory row as deleted. Returns false when the row
// is missing or already deleted.
func (s *InventoryService) SoftDelete(ctx context.Context, id uint) (bool, error) {
	existing, err := s.Get(ctx, id)
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			return false, nil
		}
		return false, err
	}

	existing.IsDeleted = true
	if err := s.db.WithContext(ctx).Save(existing).Error; err != nil {
		return false, errors.Wrap(err, "failed to soft delete inventory")
	}
	return true, nil
}
