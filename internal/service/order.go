package service

import (
	"context"
	"time"

	"github.com/pkg/errors"
	"github.com/rs/zerolog/log"
	"gorm.io/gorm"

	"github.com/mayrii101/Project-D-Lafeber-sub000/internal/database"
	"github.com/mayrii101/Project-D-Lafeber-sub000/internal/models"
)

// OrderConfirmationMessage is returned on every successful order creation.
const OrderConfirmationMessage = "Order created successfully"

// OrderLineInput is one requested product/quantity pair.
type OrderLineInput struct {
	ProductID uint
	Quantity  int
}

// CreateOrderInput carries the order-creation request. Dates arrive as
// day-month-year strings and times as hour-minute strings.
type CreateOrderInput struct {
	CustomerID           uint
	OrderDate            string
	OrderTime            string
	DeliveryAddress      string
	ExpectedDeliveryDate string
	ExpectedDeliveryTime string
	Status               string
	Lines                []OrderLineInput
}

// CreateOrderResult is the order-creation summary: the created order's id,
// a fixed confirmation message, and post-deduction stock per product.
type CreateOrderResult struct {
	OrderID        uint
	Message        string
	RemainingStock map[uint]int
}

// OrderService implements the order-creation workflow and soft-delete CRUD
// over orders.
type OrderService struct {
	db *gorm.DB
}

// NewOrderService creates a new order service
func NewOrderService(db *gorm.DB) *OrderService {
	return &OrderService{db: db}
}

// List returns all non-deleted orders with lines and products
func (s *OrderService) List(ctx context.Context) ([]models.Order, error) {
	var orders []models.Order
	err := s.db.WithContext(ctx).
		Preload("Customer").
		Preload("Lines.Product").
		Where("is_deleted = ?", false).
		Find(&orders).Error
	if err != nil {
		return nil, errors.Wrap(err, "failed to list orders")
	}
	return orders, nil
}

// Get returns a non-deleted order by id with lines and products
func (s *OrderService) Get(ctx context.Context, id uint) (*models.Order, error) {
	var order models.Order
	err := s.db.WithContext(ctx).
		Preload("Customer").
		Preload("Lines.Product").
		Where("id = ? AND is_deleted = ?", id, false).
		First(&order).Error
	if err != nil {
		if database.IsRecordNotFoundError(err) {
			return nil, ErrNotFound
		}
		return nil, errors.Wrap(err, "failed to get order")
	}
	return &order, nil
}

// Create validates stock, persists the order with its lines, and deducts
// the requested quantities from inventory oldest-first. The whole
// check-then-deduct sequence runs inside one transaction so an
// insufficient-stock failure leaves nothing persisted and concurrent
// requests cannot both pass the stock check on the same rows.
func (s *OrderService) Create(ctx context.Context, in CreateOrderInput) (*CreateOrderResult, error) {
	orderDate, err := parseDateTime(in.OrderDate, in.OrderTime)
	if err != nil {
		return nil, err
	}
	expectedDate, err := parseDateTime(in.ExpectedDeliveryDate, in.ExpectedDeliveryTime)
	if err != nil {
		return nil, err
	}

	order := models.Order{
		CustomerID:           in.CustomerID,
		OrderDate:            orderDate,
		ExpectedDeliveryDate: expectedDate,
		DeliveryAddress:      in.DeliveryAddress,
		Status:               models.OrderStatusFromString(in.Status),
	}
	for _, line := range in.Lines {
		order.Lines = append(order.Lines, models.OrderLine{
			ProductID: line.ProductID,
			Quantity:  line.Quantity,
		})
	}

	err = s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		// Validate every line against aggregate stock before any mutation.
		for _, line := range in.Lines {
			available, err := productStock(tx, line.ProductID)
			if err != nil {
				return err
			}
			if available < line.Quantity {
				return &InsufficientStockError{
					ProductID: line.ProductID,
					Requested: line.Quantity,
					Available: available,
				}
			}
		}

		if err := tx.Create(&order).Error; err != nil {
			return errors.Wrap(err, "failed to create order")
		}

		for _, line := range in.Lines {
			if err := deductStock(tx, line.ProductID, line.Quantity); err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	remaining := make(map[uint]int, len(in.Lines))
	for _, line := range in.Lines {
		stock, err := productStock(s.db.WithContext(ctx), line.ProductID)
		if err != nil {
			return nil, err
		}
		remaining[line.ProductID] = stock
	}

	log.Info().Uint("order_id", order.ID).Int("lines", len(order.Lines)).Msg("Order created")

	return &CreateOrderResult{
		OrderID:        order.ID,
		Message:        OrderConfirmationMessage,
		RemainingStock: remaining,
	}, nil
}

// Update overwrites an order's mutable fields by id. Lines are not touched.
func (s *OrderService) Update(ctx context.Context, id uint, in *models.Order) (*models.Order, error) {
	existing, err := s.Get(ctx, id)
	if err != nil {
		return nil, err
	}

	existing.CustomerID = in.CustomerID
	existing.DeliveryAddress = in.DeliveryAddress
	existing.Status = in.Status
	existing.ExpectedDeliveryDate = in.ExpectedDeliveryDate
	existing.ActualDeliveryDate = in.ActualDeliveryDate

	if err := s.db.WithContext(ctx).Save(existing).Error; err != nil {
		return nil, errors.Wrap(err, "failed to update order")
	}
	return existing, nil
}

// SoftDelete flags an order as deleted. Returns false when the order is
// missing or already deleted.
func (s *OrderService) SoftDelete(ctx context.Context, id uint) (bool, error) {
	var order models.Order
	err := s.db.WithContext(ctx).Where("id = ? AND is_deleted = ?", id, false).First(&order).Error
	if err != nil {
		if database.IsRecordNotFoundError(err) {
			return false, nil
		}
		return false, errors.Wrap(err, "failed to get order")
	}

	order.IsDeleted = true
	if err := s.db.WithContext(ctx).Save(&order).Error; err != nil {
		return false, errors.Wrap(err, "failed to soft delete order")
	}
	return true, nil
}

// productStock sums quantity on hand across all non-deleted inventory rows
// for a product.
func productStock(tx *gorm.DB, productID uint) (int, error) {
	var total int64
	err := tx.Model(&models.Inventory{}).
		Where("product_id = ? AND is_deleted = ?", productID, false).
		Select("COALESCE(SUM(quantity_on_hand), 0)").
		Scan(&total).Error
	if err != nil {
		return 0, errors.Wrap(err, "failed to sum product stock")
	}
	return int(total), nil
}

// deductStock consumes the requested quantity greedily from the product's
// non-deleted, positive-quantity inventory rows, oldest LastUpdated first.
// Every touched row gets its LastUpdated refreshed.
func deductStock(tx *gorm.DB, productID uint, quantity int) error {
	var rows []models.Inventory
	err := tx.
		Where("product_id = ? AND is_deleted = ? AND quantity_on_hand > 0", productID, false).
		Order("last_updated ASC, id ASC").
		Find(&rows).Error
	if err != nil {
		return errors.Wrap(err, "failed to load inventory for deduction")
	}

	remaining := quantity
	now := time.Now()
	for i := range rows {
		if remaining <= 0 {
			break
		}
		take := rows[i].QuantityOnHand
		if take > remaining {
			take = remaining
		}
		rows[i].QuantityOnHand -= take
		rows[i].LastUpdated = now
		remaining -= take

		if err := tx.Save(&rows[i]).Error; err != nil {
			return errors.Wrap(err, "failed to deduct inventory")
		}
	}

	// Stock was validated up front in the same transaction, so this only
	// trips when rows changed underneath a transaction-less backend.
	if remaining > 0 {
		return &InsufficientStockError{
			ProductID: productID,
			Requested: quantity,
			Available: quantity - remaining,
		}
	}
	return nil
}
