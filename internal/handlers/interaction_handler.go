package handlers

import (
	"net/http"

	"convite-premium-backend/internal/models"
	"convite-premium-backend/internal/service"

	"github.com/gin-gonic/gin"
)

// InteractionHandler receives guest-side form submissions and click
// tracking from the public surface.
type InteractionHandler struct {
	layoutService *service.LayoutService
}

func NewInteractionHandler(layoutService *service.LayoutService) *InteractionHandler {
	return &InteractionHandler{
		layoutService: layoutService,
	}
}

// SubmitRSVP validates and forwards an RSVP submission.
// POST /api/layouts/:id/rsvp
func (h *InteractionHandler) SubmitRSVP(c *gin.Context) {
	var submission models.RSVPSubmission
	if err := c.ShouldBindJSON(&submission); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format"})
		return
	}

	if err := h.layoutService.SubmitRSVP(c.Param("id"), submission); err != nil {
		// Validation failures carry a guest-facing localized message.
		c.JSON(http.StatusUnprocessableEntity, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}

// SubmitGuestbook validates and forwards a guestbook entry.
// POST /api/layouts/:id/guestbook
func (h *InteractionHandler) SubmitGuestbook(c *gin.Context) {
	var submission models.GuestbookSubmission
	if err := c.ShouldBindJSON(&submission); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format"})
		return
	}

	if err := h.layoutService.SubmitGuestbook(c.Param("id"), submission); err != nil {
		c.JSON(http.StatusUnprocessableEntity, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}

// RecordClick records a guest click on an interactive element.
// POST /api/layouts/:id/clicks
func (h *InteractionHandler) RecordClick(c *gin.Context) {
	var req struct {
		SectionID string `json:"section_id"`
		Target    string `json:"target"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format"})
		return
	}

	if err := h.layoutService.RecordClick(c.Param("id"), req.SectionID, req.Target); err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "layout not found"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}
