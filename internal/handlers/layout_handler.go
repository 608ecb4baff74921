package handlers

import (
	"net/http"

	"convite-premium-backend/internal/models"
	"convite-premium-backend/internal/service"
	"convite-premium-backend/pkg/logger"

	"github.com/gin-gonic/gin"
)

type LayoutHandler struct {
	layoutService *service.LayoutService
}

func NewLayoutHandler(layoutService *service.LayoutService) *LayoutHandler {
	return &LayoutHandler{
		layoutService: layoutService,
	}
}

// ListTemplates returns the predefined invitation layouts.
// GET /api/templates
func (h *LayoutHandler) ListTemplates(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"templates": h.layoutService.LayoutTemplates()})
}

// CreateLayout creates a layout from a template.
// POST /api/layouts
func (h *LayoutHandler) CreateLayout(c *gin.Context) {
	var req struct {
		TemplateID string `json:"template_id" binding:"required"`
		Name       string `json:"name"`
		Language   string `json:"language"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format"})
		return
	}

	layout, err := h.layoutService.CreateFromTemplate(req.TemplateID, req.Name, req.Language)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusCreated, gin.H{"layout": layout})
}

// LoadLayout replaces the whole document with a host-supplied one.
// PUT /api/layouts
func (h *LayoutHandler) LoadLayout(c *gin.Context) {
	var layout models.EventLayout
	if err := c.ShouldBindJSON(&layout); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format"})
		return
	}

	stored, err := h.layoutService.Load(&layout)
	if err != nil {
		logger.Error(err, "Failed to load layout", map[string]interface{}{"layout_id": layout.ID})
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load layout"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"layout": stored})
}

// GetLayout returns the current document.
// GET /api/layouts/:id
func (h *LayoutHandler) GetLayout(c *gin.Context) {
	layout, err := h.layoutService.GetByID(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "layout not found"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"layout": layout,
		"meta": gin.H{
			"total_sections":    len(layout.Sections),
			"active_section_id": h.layoutService.ActiveSection(layout.ID),
		},
	})
}

// UpdateSettings replaces layout-level metadata.
// PATCH /api/layouts/:id/settings
func (h *LayoutHandler) UpdateSettings(c *gin.Context) {
	var req models.UpdateLayoutSettingsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format"})
		return
	}

	layout, err := h.layoutService.UpdateSettings(c.Param("id"), req)
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "layout not found"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"layout": layout})
}

// UpdateGlobalStyles replaces layout-wide design tokens.
// PATCH /api/layouts/:id/styles
func (h *LayoutHandler) UpdateGlobalStyles(c *gin.Context) {
	var req models.UpdateGlobalStylesRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format"})
		return
	}

	layout, err := h.layoutService.UpdateGlobalStyles(c.Param("id"), req)
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "layout not found"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"layout": layout})
}

// SetActiveSection marks the editing target.
// PUT /api/layouts/:id/active-section
func (h *LayoutHandler) SetActiveSection(c *gin.Context) {
	var req struct {
		SectionID string `json:"section_id"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format"})
		return
	}

	h.layoutService.SetActiveSection(c.Param("id"), req.SectionID)
	c.JSON(http.StatusOK, gin.H{"active_section_id": h.layoutService.ActiveSection(c.Param("id"))})
}

// AddSection adds a section to the layout.
// POST /api/layouts/:id/sections
func (h *LayoutHandler) AddSection(c *gin.Context) {
	var req models.AddSectionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format"})
		return
	}

	layout, err := h.layoutService.AddSection(c.Param("id"), req.Type)
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "layout not found"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"layout": layout})
}

// DeleteLayout removes a layout and releases its per-layout surface state.
// DELETE /api/layouts/:id
func (h *LayoutHandler) DeleteLayout(c *gin.Context) {
	if err := h.layoutService.Delete(c.Param("id")); err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "layout not found"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Layout deleted successfully"})
}

// DeleteSection removes a section by id.
// DELETE /api/layouts/:id/sections/:sectionId
func (h *LayoutHandler) DeleteSection(c *gin.Context) {
	layout, err := h.layoutService.DeleteSection(c.Param("id"), c.Param("sectionId"))
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "layout not found"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"layout": layout})
}

// UpdateSectionContent shallow-merges a content patch into a section.
// PATCH /api/layouts/:id/sections/:sectionId/content
func (h *LayoutHandler) UpdateSectionContent(c *gin.Context) {
	var req models.UpdateSectionContentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format"})
		return
	}

	layout, err := h.layoutService.UpdateSectionContent(c.Param("id"), c.Param("sectionId"), req.Content)
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "layout not found"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"layout": layout})
}

// UpdateSectionStyles shallow-merges a style patch into a section.
// PATCH /api/layouts/:id/sections/:sectionId/styles
func (h *LayoutHandler) UpdateSectionStyles(c *gin.Context) {
	var req models.UpdateSectionStylesRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format"})
		return
	}

	layout, err := h.layoutService.UpdateSectionStyles(c.Param("id"), c.Param("sectionId"), req.Styles)
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "layout not found"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"layout": layout})
}

// MoveSection swaps the section at index with its neighbour.
// POST /api/layouts/:id/sections/move
func (h *LayoutHandler) MoveSection(c *gin.Context) {
	var req models.MoveSectionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format"})
		return
	}

	layout, err := h.layoutService.MoveSection(c.Param("id"), req.Index, req.Direction)
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "layout not found"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"layout": layout})
}

// ReorderSections moves the section at from to position to.
// POST /api/layouts/:id/sections/reorder
func (h *LayoutHandler) ReorderSections(c *gin.Context) {
	var req models.ReorderSectionsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format"})
		return
	}

	layout, err := h.layoutService.ReorderSections(c.Param("id"), req.From, req.To)
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "layout not found"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"layout": layout})
}

// DuplicateSection inserts a copy of the section after the original.
// POST /api/layouts/:id/sections/:sectionId/duplicate
func (h *LayoutHandler) DuplicateSection(c *gin.Context) {
	layout, err := h.layoutService.DuplicateSection(c.Param("id"), c.Param("sectionId"))
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "layout not found"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"layout": layout})
}

// ToggleSectionVisibility flips a section's hidden flag.
// POST /api/layouts/:id/sections/:sectionId/visibility
func (h *LayoutHandler) ToggleSectionVisibility(c *gin.Context) {
	layout, err := h.layoutService.ToggleSectionVisibility(c.Param("id"), c.Param("sectionId"))
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "layout not found"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"layout": layout})
}
