package service

import (
	"errors"
	"fmt"
)

// ErrNotFound is returned when a record is missing or soft-deleted.
var ErrNotFound = errors.New("record not found")

// InsufficientStockError is the business-rule failure raised by order
// creation when requested quantities exceed on-hand stock. Maps to HTTP 422.
type InsufficientStockError struct {
	ProductID uint
	Requested int
	Available int
}

func (e *InsufficientStockError) Error() string {
	return fmt.Sprintf("insufficient stock for product %d: requested %d, available %d",
		e.ProductID, e.Requested, e.Available)
}
