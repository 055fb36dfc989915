package handlers

import (
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/mayrii101/Project-D-Lafeber-sub000/internal/models"
	"github.com/mayrii101/Project-D-Lafeber-sub000/internal/service"
)

// ShipmentHandler handles shipment HTTP requests
type ShipmentHandler struct {
	svc *service.ShipmentService
}

// NewShipmentHandler creates a new shipment handler
func NewShipmentHandler(svc *service.ShipmentService) *ShipmentHandler {
	return &ShipmentHandler{svc: svc}
}

// RegisterRoutes registers the handler's routes
func (h *ShipmentHandler) RegisterRoutes(api *gin.RouterGroup) {
	routes := api.Group("/shipment")
	routes.GET("", h.List)
	routes.GET("/:id", h.Get)
	routes.POST("", h.Create)
	routes.PUT("/:id", h.Update)
	routes.DELETE("/:id", h.Delete)
}

// CreateShipmentRequest is the shipment-creation DTO.
type CreateShipmentRequest struct {
	VehicleID            uint   `json:"vehicleId" binding:"required"`
	DriverID             uint   `json:"driverId" binding:"required"`
	Status               string `json:"status"`
	DepartureDate        string `json:"departureDate" binding:"required"`
	DepartureTime        string `json:"departureTime" binding:"required"`
	ExpectedDeliveryDate string `json:"expectedDeliveryDate" binding:"required"`
	ExpectedDeliveryTime string `json:"expectedDeliveryTime" binding:"required"`
	OrderIDs             []uint `json:"orderIds"`
}

// List returns all non-deleted shipments
func (h *ShipmentHandler) List(c *gin.Context) {
	shipments, err := h.svc.List(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, shipments)
}

// Get returns a shipment by id
func (h *ShipmentHandler) Get(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	shipment, err := h.svc.Get(c.Request.Context(), id)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, shipment)
}

// Create persists a shipment and links the supplied orders
func (h *ShipmentHandler) Create(c *gin.Context) {
	var req CreateShipmentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	created, err := h.svc.Create(c.Request.Context(), service.CreateShipmentInput{
		VehicleID:            req.VehicleID,
		DriverID:             req.DriverID,
		Status:               req.Status,
		DepartureDate:        req.DepartureDate,
		DepartureTime:        req.DepartureTime,
		ExpectedDeliveryDate: req.ExpectedDeliveryDate,
		ExpectedDeliveryTime: req.ExpectedDeliveryTime,
		OrderIDs:             req.OrderIDs,
	})
	if err != nil {
		respondError(c, err)
		return
	}

	c.Header("Location", fmt.Sprintf("/api/shipment/%d", created.ID))
	c.JSON(http.StatusCreated, created)
}

// Update overwrites a shipment by id and links any new orders
func (h *ShipmentHandler) Update(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	var shipment models.Shipment
	if err := c.ShouldBindJSON(&shipment); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	updated, err := h.svc.Update(c.Request.Context(), id, &shipment)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, updated)
}

// Delete soft-deletes a shipment by id
func (h *ShipmentHandler) Delete(c *gin.Context) {
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
