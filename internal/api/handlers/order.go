package handlers

import (
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/mayrii101/Project-D-Lafeber-sub000/internal/models"
	"github.com/mayrii101/Project-D-Lafeber-sub000/internal/service"
)

// OrderHandler handles order HTTP requests
type OrderHandler struct {
	svc *service.OrderService
}

// NewOrderHandler creates a new order handler
func NewOrderHandler(svc *service.OrderService) *OrderHandler {
	return &OrderHandler{svc: svc}
}

// RegisterRoutes registers the handler's routes
func (h *OrderHandler) RegisterRoutes(api *gin.RouterGroup) {
	routes := api.Group("/order")
	routes.GET("", h.List)
	routes.GET("/:id", h.Get)
	routes.POST("", h.Create)
	routes.PUT("/:id", h.Update)
	routes.DELETE("/:id", h.Delete)
}

// OrderLineRequest is one product/quantity pair on a create request.
type OrderLineRequest struct {
	ProductID uint `json:"productId" binding:"required"`
	Quantity  int  `json:"quantity" binding:"required,gt=0"`
}

// CreateOrderRequest is the order-creation DTO. Dates are day-month-year,
// times hour-minute.
type CreateOrderRequest struct {
	CustomerID           uint               `json:"customerId" binding:"required"`
	OrderDate            string             `json:"orderDate" binding:"required"`
	OrderTime            string             `json:"orderTime" binding:"required"`
	DeliveryAddress      string             `json:"deliveryAddress" binding:"required"`
	ExpectedDeliveryDate string             `json:"expectedDeliveryDate" binding:"required"`
	ExpectedDeliveryTime string             `json:"expectedDeliveryTime" binding:"required"`
	Status               string             `json:"status"`
	Lines                []OrderLineRequest `json:"lines" binding:"required,min=1,dive"`
}

// CreateOrderResponse echoes the request with the assigned id, a
// confirmation message, and remaining stock per product.
type CreateOrderResponse struct {
	CreateOrderRequest
	ID             uint         `json:"id"`
	Message        string       `json:"message"`
	RemainingStock map[uint]int `json:"remainingStock"`
}

// List returns all non-deleted orders
func (h *OrderHandler) List(c *gin.Context) {
	orders, err := h.svc.List(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, orders)
}

// Get returns an order by id
func (h *OrderHandler) Get(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	order, err := h.svc.Get(c.Request.Context(), id)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, order)
}

// Create runs the order-creation workflow. Insufficient stock yields 422.
func (h *OrderHandler) Create(c *gin.Context) {
	var req CreateOrderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	input := service.CreateOrderInput{
		CustomerID:           req.CustomerID,
		OrderDate:            req.OrderDate,
		OrderTime:            req.OrderTime,
		DeliveryAddress:      req.DeliveryAddress,
		ExpectedDeliveryDate: req.ExpectedDeliveryDate,
		ExpectedDeliveryTime: req.ExpectedDeliveryTime,
		Status:               req.Status,
	}
	for _, line := range req.Lines {
		input.Lines = append(input.Lines, service.OrderLineInput{
			ProductID: line.ProductID,
			Quantity:  line.Quantity,
		})
	}

	result, err := h.svc.Create(c.Request.Context(), input)
	if err != nil {
		respondError(c, err)
		return
	}

	c.Header("Location", fmt.Sprintf("/api/order/%d", result.OrderID))
	c.JSON(http.StatusCreated, CreateOrderResponse{
		CreateOrderRequest: req,
		ID:                 result.OrderID,
		Message:            result.Message,
		RemainingStock:     result.RemainingStock,
	})
}

// Update overwrites an order by id
func (h *OrderHandler) Update(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	var order models.Order
	if err := c.ShouldBindJSON(&order); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	updated, err := h.svc.Update(c.Request.Context(), id, &order)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, updated)
}

// Delete soft-deletes an order by id
func (h *OrderHandler) Delete(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	deleted, err := h.svc.SoftDelete(c.Request.Context(), id)
	if err != nil {
		respondError(c, err)
		return
	}
	if !deleted {
		c.JSON(http.StatusNotFound, gin.H{"error": "not found"})
		return
	}
	c.Status(http.StatusNoContent)
}
