package service

import (
	"context"

	"github.com/pkg/errors"
	"gorm.io/gorm"

	"github.com/mayrii101/Project-D-Lafeber-sub000/internal/database"
	"github.com/mayrii101/Project-D-Lafeber-sub000/internal/models"
)

// WarehouseService provides soft-delete CRUD over warehouses
type WarehouseService struct {
	db *gorm.DB
}

// NewWarehouseService creates a new warehouse service
func NewWarehouseService(db *gorm.DB) *WarehouseService {
	return &WarehouseService{db: db}
}

// List returns all non-deleted warehouses
func (s *WarehouseService) List(ctx context.Context) ([]models.Warehouse, error) {
	var warehouses []models.Warehouse
	if err := s.db.WithContext(ctx).Where("is_deleted = ?", false).Find(&warehouses).Error; err != nil {
		return nil, errors.Wrap(err, "failed to list warehouses")
	}
	return warehouses, nil
}

// Get returns a non-deleted warehouse by id
func (s *WarehouseService) Get(ctx context.Context, id uint) (*models.Warehouse, error) {
	var warehouse models.Warehouse
	err := s.db.WithContext(ctx).Where("id = ? AND is_deleted = ?", id, false).First(&warehouse).Error
	if err != nil {
		if database.IsRecordNotFoundError(err) {
			return nil, ErrNotFound
		}
		return nil, errors.Wrap(err, "failed to get warehouse")
	}
	return &warehouse, nil
}

// Create inserts a new warehouse
func (s *WarehouseService) Create(ctx context.Context, warehouse *models.Warehouse) (*models.Warehouse, error) {
	if err := s.db.WithContext(ctx).Create(warehouse).Error; err != nil {
		return nil, errors.Wrap(err, "failed to create warehouse")
	}
	return warehouse, nil
}

// Update overwrites a warehouse's fields by id
func (s *WarehouseService) Update(ctx context.Context, id uint, in *models.Warehouse) (*models.Warehouse, error) {
	existing, err := s.Get(ctx, id)
	if err != nil {
		return nil, err
	}

	existing.Name = in.Name
	existing.Location = in.Location
	existing.ContactPerson = in.ContactPerson
	existing.Phone = in.Phone

	if err := s.db.WithContext(ctx).Save(existing).Error; err != nil {
		return nil, errors.Wrap(err, "failed to update warehouse")
	}
	return existing, nil
}

// SoftDelete flags a warehouse as deleted. Returns false when the warehouse
// is missing or already deleted.
func (s *WarehouseService) SoftDelete(ctx context.Context, id uint) (bool, error) {
	existing, err := s.Get(ctx, id)
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			return false, nil
		}
		return false, err
	}

	existing.IsDeleted = true
	if err := s.db.WithContext(ctx).Save(existing).Error; err != nil {
		return false, errors.Wrap(err, "failed to soft delete warehouse")
	}
	return true, nil
}
