package handlers

import (
	"net/http"

	"convite-premium-backend/internal/sections"
	"convite-premium-backend/internal/service"

	"github.com/gin-gonic/gin"
)

type BuilderHandler struct {
	layoutService *service.LayoutService
}

func NewBuilderHandler(layoutService *service.LayoutService) *BuilderHandler {
	return &BuilderHandler{
		layoutService: layoutService,
	}
}

// GetBuilderConfig returns everything the editor UI needs to draw its
// palette: the available section types with their metadata and typed field
// descriptors, plus the predefined layout templates.
// GET /api/builder/config
func (h *BuilderHandler) GetBuilderConfig(c *gin.Context) {
	sectionTemplates := sections.Templates()

	available := make([]gin.H, 0, len(sectionTemplates))
	for _, tmpl := range sectionTemplates {
		available = append(available, gin.H{
			"type":         tmpl.Type,
			"name":         tmpl.Name,
			"description":  tmpl.Description,
			"icon":         tmpl.Icon,
			"default_data": tmpl.DefaultData,
			"fields":       tmpl.Fields,
		})
	}

	c.JSON(http.StatusOK, gin.H{
		"sections":         available,
		"layout_templates": h.layoutService.LayoutTemplates(),
	})
}
