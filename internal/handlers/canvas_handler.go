package handlers

import (
	"net/http"

	"convite-premium-backend/internal/models"
	"convite-premium-backend/internal/service"

	"github.com/gin-gonic/gin"
)

type CanvasHandler struct {
	canvasService *service.CanvasService
}

func NewCanvasHandler(canvasService *service.CanvasService) *CanvasHandler {
	return &CanvasHandler{
		canvasService: canvasService,
	}
}

// CreatePage creates an empty canvas page.
// POST /api/pages
func (h *CanvasHandler) CreatePage(c *gin.Context) {
	var req struct {
		Name string `json:"name"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format"})
		return
	}

	page, err := h.canvasService.CreatePage(req.Name)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create page"})
		return
	}

	c.JSON(http.StatusCreated, gin.H{"page": page})
}

// GetPage returns the canvas page with the current selection.
// GET /api/pages/:id
func (h *CanvasHandler) GetPage(c *gin.Context) {
	page, err := h.canvasService.GetByID(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "page not found"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"page":         page,
		"selected_ids": h.canvasService.SelectedIDs(page.ID),
	})
}

// AddNode attaches a new node to the page.
// POST /api/pages/:id/nodes
func (h *CanvasHandler) AddNode(c *gin.Context) {
	var req models.AddNodeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format"})
		return
	}

	page, err := h.canvasService.AddNode(c.Param("id"), req)
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "page not found"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"page": page})
}

// UpdateNode shallow-merges a patch into one node.
// PATCH /api/pages/:id/nodes/:nodeId
func (h *CanvasHandler) UpdateNode(c *gin.Context) {
	var req models.UpdateNodeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format"})
		return
	}

	page, err := h.canvasService.UpdateNode(c.Param("id"), c.Param("nodeId"), req.Patch)
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "page not found"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"page": page})
}

// DeleteNodes removes the listed nodes.
// POST /api/pages/:id/nodes/delete
func (h *CanvasHandler) DeleteNodes(c *gin.Context) {
	var req models.DeleteNodesRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format"})
		return
	}

	page, err := h.canvasService.DeleteNodes(c.Param("id"), req.IDs)
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "page not found"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"page": page})
}

// MoveNodes offsets the listed nodes by (dx, dy).
// POST /api/pages/:id/nodes/move
func (h *CanvasHandler) MoveNodes(c *gin.Context) {
	var req models.MoveNodesRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format"})
		return
	}

	page, err := h.canvasService.MoveNodes(c.Param("id"), req.IDs, req.DX, req.DY)
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "page not found"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"page": page})
}

// Select updates the selection; additive toggles membership (ctrl-click).
// POST /api/pages/:id/selection
func (h *CanvasHandler) Select(c *gin.Context) {
	var req struct {
		NodeID   string `json:"node_id"`
		Additive bool   `json:"additive"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format"})
		return
	}

	pageID := c.Param("id")
	if req.NodeID == "" {
		h.canvasService.ClearSelection(pageID)
	} else {
		h.canvasService.Select(pageID, req.NodeID, req.Additive)
	}

	c.JSON(http.StatusOK, gin.H{"selected_ids": h.canvasService.SelectedIDs(pageID)})
}
