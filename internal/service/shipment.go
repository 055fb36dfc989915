package service

import (
	"context"

	"github.com/pkg/errors"
	"gorm.io/gorm"

	"github.com/mayrii101/Project-D-Lafeber-sub000/internal/database"
	"github.com/mayrii101/Project-D-Lafeber-sub000/internal/models"
)

// CreateShipmentInput carries the shipment-creation request.
type CreateShipmentInput struct {
	VehicleID            uint
	DriverID             uint
	Status               string
	DepartureDate        string
	DepartureTime        string
	ExpectedDeliveryDate string
	ExpectedDeliveryTime string
	OrderIDs             []uint
}

// ShipmentService provides soft-delete CRUD over shipments and maintains
// the shipment/order join rows.
type ShipmentService struct {
	db *gorm.DB
}

// NewShipmentService creates a new shipment service
func NewShipmentService(db *gorm.DB) *ShipmentService {
	return &ShipmentService{db: db}
}

// List returns all non-deleted shipments with vehicle, driver, and orders
func (s *ShipmentService) List(ctx context.Context) ([]models.Shipment, error) {
	var shipments []models.Shipment
	err := s.db.WithContext(ctx).
		Preload("Vehicle").
		Preload("Driver").
		Preload("ShipmentOrders.Order").
		Where("is_deleted = ?", false).
		Find(&shipments).Error
	if err != nil {
		return nil, errors.Wrap(err, "failed to list shipments")
	}
	return shipments, nil
}

// Get returns a non-deleted shipment by id with vehicle, driver, and orders
func (s *ShipmentService) Get(ctx context.Context, id uint) (*models.Shipment, error) {
	var shipment models.Shipment
	err := s.db.WithContext(ctx).
		Preload("Vehicle").
		Preload("Driver").
		Preload("ShipmentOrders.Order").
		Where("id = ? AND is_deleted = ?", id, false).
		First(&shipment).Error
	if err != nil {
		if database.IsRecordNotFoundError(err) {
			return nil, ErrNotFound
		}
		return nil, errors.Wrap(err, "failed to get shipment")
	}
	return &shipment, nil
}

// Create persists a shipment and one ShipmentOrder join row per order id.
func (s *ShipmentService) Create(ctx context.Context, in CreateShipmentInput) (*models.Shipment, error) {
	departure, err := parseDateTime(in.DepartureDate, in.DepartureTime)
	if err != nil {
		return nil, err
	}
	expected, err := parseDateTime(in.ExpectedDeliveryDate, in.ExpectedDeliveryTime)
	if err != nil {
		return nil, err
	}

	shipment := models.Shipment{
		VehicleID:            in.VehicleID,
		DriverID:             in.DriverID,
		Status:               models.ShipmentStatusFromString(in.Status),
		DepartureDate:        departure,
		ExpectedDeliveryDate: expected,
	}
	for _, orderID := range in.OrderIDs {
		shipment.ShipmentOrders = append(shipment.ShipmentOrders, models.ShipmentOrder{
			OrderID: orderID,
		})
	}

	if err := s.db.WithContext(ctx).Create(&shipment).Error; err != nil {
		return nil, errors.Wrap(err, "failed to create shipment")
	}
	return &shipment, nil
}

// Update overwrites a shipment's fields by id and reconciles its orders
// additively: any order present in the incoming object but absent from the
// existing join set is linked. Existing links are never removed.
func (s *ShipmentService) Update(ctx context.Context, id uint, in *models.Shipment) (*models.Shipment, error) {
	existing, err := s.Get(ctx, id)
	if err != nil {
		return nil, err
	}

	existing.VehicleID = in.VehicleID
	existing.DriverID = in.DriverID
	existing.Status = in.Status
	existing.DepartureDate = in.DepartureDate
	existing.ExpectedDeliveryDate = in.ExpectedDeliveryDate
	existing.ActualDeliveryDate = in.ActualDeliveryDate

	err = s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Omit("ShipmentOrders").Save(existing).Error; err != nil {
			return errors.Wrap(err, "failed to update shipment")
		}

		linked := make(map[uint]bool, len(existing.ShipmentOrders))
		for _, join := range existing.ShipmentOrders {
			linked[join.OrderID] = true
		}
		for _, join := range in.ShipmentOrders {
			if linked[join.OrderID] {
				continue
			}
			row := models.ShipmentOrder{ShipmentID: existing.ID, OrderID: join.OrderID}
			if err := tx.Create(&row).Error; err != nil {
				return errors.Wrap(err, "failed to link order to shipment")
			}
			existing.ShipmentOrders = append(existing.ShipmentOrders, row)
			linked[join.OrderID] = true
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return existing, nil
}

// SoftDelete flags a shipment as deleted. Returns false when the shipment
// is missing or already deleted.
func (s *ShipmentService) SoftDelete(ctx context.Context, id uint) (bool, error) {
	var shipment models.Shipment
	err := s.db.WithContext(ctx).Where("id = ? AND is_deleted = ?", id, false).First(&shipment).Error
	if err != nil {
		if database.IsRecordNotFoundError(err) {
			return false, nil
		}
		return false, errors.Wrap(err, "failed to get shipment")
	}

	shipment.IsDeleted = true
	if err := s.db.WithContext(ctx).Save(&shipment).Error; err != nil {
		return false, errors.Wrap(err, "failed to soft delete shipment")
	}
	return true, nil
}
