package handlers

import (
	"net/http"

	"convite-premium-backend/internal/models"
	"convite-premium-backend/internal/service"

	"github.com/gin-gonic/gin"
)

// ExternalHandler exposes the host overlay over HTTP for hosts that do not
// keep a bridge connection open.
type ExternalHandler struct {
	externalService *service.ExternalService
}

func NewExternalHandler(externalService *service.ExternalService) *ExternalHandler {
	return &ExternalHandler{
		externalService: externalService,
	}
}

// SetFieldValue records a host-supplied value for one form field.
// PUT /api/layouts/:id/external/values
func (h *ExternalHandler) SetFieldValue(c *gin.Context) {
	var req struct {
		SectionID string      `json:"section_id" binding:"required"`
		FieldKey  string      `json:"field_key" binding:"required"`
		Value     interface{} `json:"value"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format"})
		return
	}

	h.externalService.SetValue(c.Param("id"), req.SectionID, req.FieldKey, req.Value)
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}

// GetFieldValue returns the host-supplied value for one form field.
// GET /api/layouts/:id/external/values?section_id=...&field_key=...
func (h *ExternalHandler) GetFieldValue(c *gin.Context) {
	sectionID := c.Query("section_id")
	fieldKey := c.Query("field_key")
	if sectionID == "" || fieldKey == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "section_id and field_key are required"})
		return
	}

	value, found := h.externalService.Value(c.Param("id"), sectionID, fieldKey)
	c.JSON(http.StatusOK, gin.H{
		"section_id": sectionID,
		"field_key":  fieldKey,
		"value":      value,
		"found":      found,
	})
}

// SetFieldStatus records display flags for one form field.
// PUT /api/layouts/:id/external/statuses
func (h *ExternalHandler) SetFieldStatus(c *gin.Context) {
	var req struct {
		SectionID string             `json:"section_id" binding:"required"`
		FieldKey  string             `json:"field_key" binding:"required"`
		Status    models.FieldStatus `json:"status"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format"})
		return
	}

	h.externalService.SetStatus(c.Param("id"), req.SectionID, req.FieldKey, req.Status)
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}
