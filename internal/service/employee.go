package service

import (
	"context"

	"github.com/pkg/errors"
	"gorm.io/gorm"

	"github.com/mayrii101/Project-D-Lafeber-sub000/internal/database"
	"github.com/mayrii101/Project-D-Lafeber-sub000/internal/models"
)

// EmployeeService provides soft-delete CRUD over employees
type EmployeeService struct {
	db *gorm.DB
}

// NewEmployeeService creates a new employee service
func NewEmployeeService(db *gorm.DB) *EmployeeService {
	return &EmployeeService{db: db}
}

// List returns all non-deleted employees
func (s *EmployeeService) List(ctx context.Context) ([]models.Employee, error) {
	var employees []models.Employee
	if err := s.db.WithContext(ctx).Where("is_deleted = ?", false).Find(&employees).Error; err != nil {
		return nil, errors.Wrap(err, "failed to list employees")
	}
	return employees, nil
}

// Get returns a non-deleted employee by id
func (s *EmployeeService) Get(ctx context.Context, id uint) (*models.Employee, error) {
	var employee models.Employee
	err := s.db.WithContext(ctx).Where("id = ? AND is_deleted = ?", id, false).First(&employee).Error
	if err != nil {
		if database.IsRecordNotFoundError(err) {
			return nil, ErrNotFound
		}
		return nil, errors.Wrap(err, "failed to get employee")
	}
	return &employee, nil
}

// Create inserts a new employee
func (s *EmployeeService) Create(ctx context.Context, employee *models.Employee) (*models.Employee, error) {
	if err := s.db.WithContext(ctx).Create(employee).Error; err != nil {
		return nil, errors.Wrap(err, "failed to create employee")
	}
	return employee, nil
}

// Update overwrites an employee's fields by id
func (s *EmployeeService) Update(ctx context.Context, id uint, in *models.Employee) (*models.Employee, error) {
	existing, err := s.Get(ctx, id)
	if err != nil {
		return nil, err
	}

	existing.Name = in.Name
	existing.Role = in.Role
	existing.Email = in.Email

	if err := s.db.WithContext(ctx).Save(existing).Error; err != nil {
		return nil, errors.Wrap(err, "failed to update employee")
	}
	return existing, nil
}

// SoftDelete flags an employee as deleted. Returns false when the employee
// is missing or already deleted.
func (s *EmployeeService) SoftDelete(ctx context.Context, id uint) (bool, error) {
	existing, err := s.Get(ctx, id)
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			return false, nil
		}
		return false, err
	}

	existing.IsDeleted = true
	if err := s.db.WithContext(ctx).Save(existing).Error; err != nil {
		return false, errors.Wrap(err, "failed to soft delete employee")
	}
	return true, nil
}
