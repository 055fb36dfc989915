package handlers

import (
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/mayrii101/Project-D-Lafeber-sub000/internal/models"
	"github.com/mayrii101/Project-D-Lafeber-sub000/internal/service"
)

// InventoryTransactionHandler handles inventory transaction HTTP requests
type InventoryTransactionHandler struct {
	svc *service.InventoryTransactionService
}

// NewInventoryTransactionHandler creates a new inventory transaction handler
func NewInventoryTransactionHandler(svc *service.InventoryTransactionService) *InventoryTransactionHandler {
	return &InventoryTransactionHandler{svc: svc}
}

// RegisterRoutes registers the handler's routes
func (h *InventoryTransactionHandler) RegisterRoutes(api *gin.RouterGroup) {
	routes := api.Group("/inventorytransaction")
	routes.GET("", h.List)
	routes.GET("/:id", h.Get)
	routes.POST("", h.Create)
	routes.PUT("/:id", h.Update)
	routes.DELETE("/:id", h.Delete)
}

// List returns all non-deleted transactions
func (h *InventoryTransactionHandler) List(c *gin.Context) {
	transactions, err := h.svc.List(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, transactions)
}

// Get returns an inventory transaction by id
func (h *InventoryTransactionHandler) Get(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	transaction, err := h.svc.Get(c.Request.Context(), id)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, transaction)
}

// Create inserts a new inventory transaction
func (h *InventoryTransactionHandler) Create(c *gin.Context) {
	var transaction models.InventoryTransaction
	if err := c.ShouldBindJSON(&transaction); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	created, err := h.svc.Create(c.Request.Context(), &transaction)
	if err != nil {
		respondError(c, err)
		return
	}
	c.Header("Location", fmt.Sprintf("/api/inventorytransaction/%d", created.ID))
	c.JSON(http.StatusCreated, created)
}

// Update overwrites an inventory transaction by id
func (h *InventoryTransactionHandler) Update(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	var transaction models.InventoryTransaction
	if err := c.ShouldBindJSON(&transaction); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	updated, err := h.svc.Update(c.Request.Context(), id, &transaction)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, updated)
}

// Delete soft-deletes an inventory transaction by id
func (h *InventoryTransactionHandler) Delete(c *gin.Context) {
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
