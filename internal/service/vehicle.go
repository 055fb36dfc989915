package service

import (
	"context"

	"github.com/pkg/errors"
	"gorm.io/gorm"

	"github.com/mayrii101/Project-D-Lafeber-sub000/internal/database"
	"github.com/mayrii101/Project-D-Lafeber-sub000/internal/models"
)

// VehicleService provides soft-delete CRUD over vehicles
type VehicleService struct {
	db *gorm.DB
}

// NewVehicleService creates a new vehicle service
func NewVehicleService(db *gorm.DB) *VehicleService {
	return &VehicleService{db: db}
}

// List returns all non-deleted vehicles
func (s *VehicleService) List(ctx context.Context) ([]models.Vehicle, error) {
	var vehicles []models.Vehicle
	if err := s.db.WithContext(ctx).Where("is_deleted = ?", false).Find(&vehicles).Error; err != nil {
		return nil, errors.Wrap(err, "failed to list vehicles")
	}
	return vehicles, nil
}

// Get returns a non-deleted vehicle by id
func (s *VehicleService) Get(ctx context.Context, id uint) (*models.Vehicle, error) {
	var vehicle models.Vehicle
	err := s.db.WithContext(ctx).Where("id = ? AND is_deleted = ?", id, false).First(&vehicle).Error
	if err != nil {
		if database.IsRecordNotFoundError(err) {
			return nil, ErrNotFound
		}
		return nil, errors.Wrap(err, "failed to get vehicle")
	}
	return &vehicle, nil
}

// Create inserts a new vehicle
func (s *VehicleService) Create(ctx context.Context, vehicle *models.Vehicle) (*models.Vehicle, error) {
	if err := s.db.WithContext(ctx).Create(vehicle).Error; err != nil {
		return nil, errors.Wrap(err, "failed to create vehicle")
	}
	return vehicle, nil
}

// Update overwrites a vehicle's type and status by id. License plate and
// capacity are fixed after creation.
func (s *VehicleService) Update(ctx context.Context, id uint, in *models.Vehicle) (*models.Vehicle, error) {
	existing, err := s.Get(ctx, id)
	if err != nil {
		return nil, err
	}

	existing.Type = in.Type
	existing.Status = in.Status

	if err := s.db.WithContext(ctx).Save(existing).Error; err != nil {
		return nil, errors.Wrap(err, "failed to update vehicle")
	}
	return existing, nil
}

// SoftDelete flags a vehicle as deleted. Returns false when the vehicle is
// missing or already deleted.
func (s *VehicleService) SoftDelete(ctx context.Context, id uint) (bool, error) {
	existing, err := s.Get(ctx, id)
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			return false, nil
		}
		return false, err
	}

	existing.IsDeleted = true
	if err := s.db.WithContext(ctx).Save(existing).Error; err != nil {
		return false, errors.Wrap(err, "failed to soft delete vehicle")
	}
	return true, nil
}
