package service

import (
	"context"

	"github.com/go-playground/validator/v10"
	"github.com/pkg/errors"
	"gorm.io/gorm"

	"github.com/mayrii101/Project-D-Lafeber-sub000/internal/database"
	"github.com/mayrii101/Project-D-Lafeber-sub000/internal/models"
)

var validate = validator.New()

// ProductService provides soft-delete CRUD over products
type ProductService struct {
	db *gorm.DB
}

// NewProductService creates a new product service
func NewProductService(db *gorm.DB) *ProductService {
	return &ProductService{db: db}
}

// List returns all non-deleted products
func (s *ProductService) List(ctx context.Context) ([]models.Product, error) {
	var products []models.Product
	if err := s.db.WithContext(ctx).Where("is_deleted = ?", false).Find(&products).Error; err != nil {
		return nil, errors.Wrap(err, "failed to list products")
	}
	return products, nil
}

// Get returns a non-deleted product by id
func (s *ProductService) Get(ctx context.Context, id uint) (*models.Product, error) {
	var product models.Product
	err := s.db.WithContext(ctx).Where("id = ? AND is_deleted = ?", id, false).First(&product).Error
	if err != nil {
		if database.IsRecordNotFoundError(err) {
			return nil, ErrNotFound
		}
		return nil, errors.Wrap(err, "failed to get product")
	}
	return &product, nil
}

// Create inserts a new product after validating its price range
func (s *ProductService) Create(ctx context.Context, product *models.Product) (*models.Product, error) {
	if err := validate.StructCtx(ctx, product); err != nil {
		return nil, err
	}
	if err := s.db.WithContext(ctx).Create(product).Error; err != nil {
		return nil, errors.Wrap(err, "failed to create product")
	}
	return product, nil
}

// Update overwrites a product's fields by id
func (s *ProductService) Update(ctx context.Context, id uint, in *models.Product) (*models.Product, error) {
	if err := validate.StructCtx(ctx, in); err != nil {
		return nil, err
	}

	existing, err := s.Get(ctx, id)
	if err != nil {
		return nil, err
	}

	existing.Name = in.Name
	existing.SKU = in.SKU
	existing.WeightKg = in.WeightKg
	existing.Material = in.Material
	existing.BatchNumber = in.BatchNumber
	existing.Price = in.Price
	existing.Category = in.Category
	existing.ExpirationDate = in.ExpirationDate

	if err := s.db.WithContext(ctx).Save(existing).Error; err != nil {
		return nil, errors.Wrap(err, "failed to update product")
	}
	return existing, nil
}

// SoftDelete flags a product as deleted. Returns false when the product is
// missing or already deleted.
func (s *ProductService) SoftDelete(ctx context.Context, id uint) (bool, error) {
	existing, err := s.Get(ctx, id)
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			return false, nil
		}
		return false, err
	}

	existing.IsDeleted = true
	if err := s.db.WithContext(ctx).Save(existing).Error; err != nil {
		return false, errors.Wrap(err, "failed to soft delete product")
	}
	return true, nil
}
