package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/mayrii101/Project-D-Lafeber-sub000/internal/service"
)

// StickyNoteHandler handles the singleton sticky note endpoints
type StickyNoteHandler struct {
	svc *service.StickyNoteService
}

// NewStickyNoteHandler creates a new sticky note handler
func NewStickyNoteHandler(svc *service.StickyNoteService) *StickyNoteHandler {
	return &StickyNoteHandler{svc: svc}
}

// RegisterRoutes registers the handler's routes
func (h *StickyNoteHandler) RegisterRoutes(api *gin.RouterGroup) {
	routes := api.Group("/stickynote")
	routes.GET("", h.Get)
	routes.POST("", h.Save)
}

// SaveStickyNoteRequest carries the new note content.
type SaveStickyNoteRequest struct {
	Content string `json:"content"`
}

// Get returns the note
func (h *StickyNoteHandler) Get(c *gin.Context) {
	note, err := h.svc.Get(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, note)
}

// Save overwrites the note content
func (h *StickyNoteHandler) Save(c *gin.Context) {
	var req SaveStickyNoteRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	note, err := h.svc.Save(c.Request.Context(), req.Content)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, note)
}
