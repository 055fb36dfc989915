package handlers

import (
	"io"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"

	"github.com/mayrii101/Project-D-Lafeber-sub000/internal/importer"
)

// XMLImportHandler handles the bulk XML upload endpoint
type XMLImportHandler struct {
	imp *importer.Importer
}

// NewXMLImportHandler creates a new XML import handler
func NewXMLImportHandler(imp *importer.Importer) *XMLImportHandler {
	return &XMLImportHandler{imp: imp}
}

// RegisterRoutes registers the handler's routes
func (h *XMLImportHandler) RegisterRoutes(api *gin.RouterGroup) {
	api.POST("/XmlImport/upload", h.Upload)
}

// Upload accepts two multipart XML files and runs the bulk import. Any
// import failure rolls back and surfaces as a 500.
func (h *XMLImportHandler) Upload(c *gin.Context) {
	xml1, ok := readFormFile(c, "file1")
	if !ok {
		return
	}
	xml2, ok := readFormFile(c, "file2")
	if !ok {
		return
	}

	if err := h.imp.Run(c.Request.Context(), xml1, xml2); err != nil {
		log.Error().Err(err).Msg("XML import request failed")
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Import failed", "error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Import successful"})
}

// readFormFile reads one multipart file field into a string. Replies 400
// and returns false when the field is missing or unreadable.
func readFormFile(c *gin.Context, field string) (string, bool) {
	file, err := c.FormFile(field)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": field + " is required"})
		return "", false
	}

	f, err := file.Open()
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "failed to open " + field})
		return "", false
	}
	defer f.Close()

	data, err := io.ReadAll(f)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "failed to read " + field})
		return "", false
	}
	return string(data), true
}
