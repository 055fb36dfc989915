package service

import (
	"context"

	"github.com/pkg/errors"
	"gorm.io/gorm"

	"github.com/mayrii101/Project-D-Lafeber-sub000/internal/database"
	"github.com/mayrii101/Project-D-Lafeber-sub000/internal/models"
)

// CustomerService provides soft-delete CRUD over customers
type CustomerService struct {
	db *gorm.DB
}

// NewCustomerService creates a new customer service
func NewCustomerService(db *gorm.DB) *CustomerService {
	return &CustomerService{db: db}
}

// List returns all non-deleted customers
func (s *CustomerService) List(ctx context.Context) ([]models.Customer, error) {
	var customers []models.Customer
	if err := s.db.WithContext(ctx).Where("is_deleted = ?", false).Find(&customers).Error; err != nil {
		return nil, errors.Wrap(err, "failed to list customers")
	}
	return customers, nil
}

// Get returns a non-deleted customer by id
func (s *CustomerService) Get(ctx context.Context, id uint) (*models.Customer, error) {
	var customer models.Customer
	err := s.db.WithContext(ctx).Where("id = ? AND is_deleted = ?", id, false).First(&customer).Error
	if err != nil {
		if database.IsRecordNotFoundError(err) {
			return nil, ErrNotFound
		}
		return nil, errors.Wrap(err, "failed to get customer")
	}
	return &customer, nil
}

// Create inserts a new customer
func (s *CustomerService) Create(ctx context.Context, customer *models.Customer) (*models.Customer, error) {
	if err := s.db.WithContext(ctx).Create(customer).Error; err != nil {
		return nil, errors.Wrap(err, "failed to create customer")
	}
	return customer, nil
}

// Update overwrites a customer's fields by id
func (s *CustomerService) Update(ctx context.Context, id uint, in *models.Customer) (*models.Customer, error) {
	existing, err := s.Get(ctx, id)
	if err != nil {
		return nil, err
	}

	existing.CompanyName = in.CompanyName
	existing.ContactPerson = in.ContactPerson
	existing.Email = in.Email
	existing.Phone = in.Phone
	existing.Address = in.Address

	if err := s.db.WithContext(ctx).Save(existing).Error; err != nil {
		return nil, errors.Wrap(err, "failed to update customer")
	}
	return existing, nil
}

// SoftDelete flags a customer as deleted. Returns false when the customer
// is missing or already deleted.
func (s *CustomerService) SoftDelete(ctx context.Context, id uint) (bool, error) {
	existing, err := s.Get(ctx, id)
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			return false, nil
		}
		return false, err
	}

	existing.IsDeleted = true
	if err := s.db.WithContext(ctx).Save(existing).Error; err != nil {
		return false, errors.Wrap(err, "failed to soft delete customer")
	}
	return true, nil
}
