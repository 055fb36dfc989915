package service

import (
	"context"
	"time"

	"github.com/pkg/errors"
	"gorm.io/gorm"

	"github.com/mayrii101/Project-D-Lafeber-sub000/internal/database"
	"github.com/mayrii101/Project-D-Lafeber-sub000/internal/models"
)

// InventoryTransactionService provides soft-delete CRUD over the
// transaction ledger. The ledger is recorded independently of the
// Inventory table.
type InventoryTransactionService struct {
	db *gorm.DB
}

// NewInventoryTransactionService creates a new inventory transaction service
func NewInventoryTransactionService(db *gorm.DB) *InventoryTransactionService {
	return &InventoryTransactionService{db: db}
}

// List returns all non-deleted transactions with product and employee
func (s *InventoryTransactionService) List(ctx context.Context) ([]models.InventoryTransaction, error) {
	var rows []models.InventoryTransaction
	err := s.db.WithContext(ctx).
		Preload("Product").
		Preload("Employee").
		Where("is_deleted = ?", false).
		Find(&rows).Error
	if err != nil {
		return nil, errors.Wrap(err, "failed to list inventory transactions")
	}
	return rows, nil
}

// Get returns a non-deleted transaction by id
func (s *InventoryTransactionService) Get(ctx context.Context, id uint) (*models.InventoryTransaction, error) {
	var row models.InventoryTransaction
	err := s.db.WithContext(ctx).
		Preload("Product").
		Preload("Employee").
		Where("id = ? AND is_deleted = ?", id, false).
		First(&row).Error
	if err != nil {
		if database.IsRecordNotFoundError(err) {
			return nil, ErrNotFound
		}
		return nil, errors.Wrap(err, "failed to get inventory transaction")
	}
	return &row, nil
}

// Create inserts a new transaction, stamping Timestamp when unset
func (s *InventoryTransactionService) Create(ctx context.Context, row *models.InventoryTransaction) (*models.InventoryTransaction, error) {
	if row.Timestamp.IsZero() {
		row.Timestamp = time.Now()
	}
	if err := s.db.WithContext(ctx).Create(row).Error; err != nil {
		return nil, errors.Wrap(err, "failed to create inventory transaction")
	}
	return row, nil
}

// Update overwrites a transaction's fields by id
func (s *InventoryTransactionService) Update(ctx context.Context, id uint, in *models.InventoryTransaction) (*models.InventoryTransaction, error) {
	existing, err := s.Get(ctx, id)
	if err != nil {
		return nil, err
	}

	existing.ProductID = in.ProductID
	existing.EmployeeID = in.EmployeeID
	existing.Quantity = in.Quantity
	existing.Type = in.Type
	existing.Source = in.Source
	existing.Destination = in.Destination

	if err := s.db.WithContext(ctx).Save(existing).Error; err != nil {
		return nil, errors.Wrap(err, "failed to update inventory transaction")
	}
	return existing, nil
}

// SoftDelete flags a transaction as deleted. Returns false when the
// transaction is missing or already deleted.
func (s *InventoryTransactionService) SoftDelete(ctx context.Context, id uint) (bool, error) {
	existing, err := s.Get(ctx, id)
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			return false, nil
		}
		return false, err
	}

	existing.IsDeleted = true
	if err := s.db.WithContext(ctx).Save(existing).Error; err != nil {
		return false, errors.Wrap(err, "failed to soft delete inventory transaction")
	}
	return true, nil
}
