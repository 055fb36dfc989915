// Package handlers maps the HTTP surface onto the service layer: uniform
// CRUD routes per entity plus the order-creation, shipment-creation,
// XML-import, and sticky-note endpoints.
package handlers

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
	"github.com/rs/zerolog/log"

	"github.com/mayrii101/Project-D-Lafeber-sub000/internal/service"
)

// parseID reads the :id route parameter. Replies 400 and returns false on
// malformed input.
func parseID(c *gin.Context) (uint, bool) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid id"})
		return 0, false
	}
	return uint(id), true
}

// respondError maps service errors onto the HTTP taxonomy: not-found 404,
// validation 400, insufficient stock 422, everything else 500.
func respondError(c *gin.Context, err error) {
	var stockErr *service.InsufficientStockError
	var validationErrs validator.ValidationErrors
	switch {
	case errors.Is(err, service.ErrNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": "not found"})
	case errors.As(err, &stockErr):
		c.JSON(http.StatusUnprocessableEntity, gin.H{"error": stockErr.Error()})
	case errors.Is(err, service.ErrInvalidDateTime) || errors.As(err, &validationErrs):
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
	default:
		log.Error().Err(err).Str("path", c.Request.URL.Path).Msg("Request failed")
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
	}
}
