package canvas

import (
	"github.com/google/uuid"

	"convite-premium-backend/internal/models"
)

// Default element dimensions, matching the editor's insertion presets.
const (
	defaultTextWidth       = 200
	defaultTextHeight      = 40
	defaultImageWidth      = 240
	defaultImageHeight     = 180
	defaultInputWidth      = 220
	defaultInputHeight     = 44
	defaultContainerWidth  = 320
	defaultContainerHeight = 240
)

// NewNode creates a canvas node of the given type at (x, y) with a fresh
// uuid. Ids generated here are unique under arbitrarily rapid calls.
func NewNode(nodeType models.NodeType, x, y float64) models.EditorNode {
	node := models.EditorNode{
		ID:   uuid.New().String(),
		Type: nodeType,
		X:    x,
		Y:    y,
	}

	switch nodeType {
	case models.TextNode:
		node.Content = "Novo texto"
		node.Width = defaultTextWidth
		node.Height = defaultTextHeight
	case models.ImageNode:
		node.Width = defaultImageWidth
		node.Height = defaultImageHeight
	case models.InputNode:
		node.Content = "Digite aqui"
		node.Width = defaultInputWidth
		node.Height = defaultInputHeight
	case models.ContainerNode:
		node.Width = defaultContainerWidth
		node.Height = defaultContainerHeight
		node.Children = []models.EditorNode{}
	}

	return node
}

// NewPage creates an empty canvas page with editor-default dimensions.
func NewPage(name string) *models.Page {
	return &models.Page{
		ID:       uuid.New().String(),
		Name:     name,
		Width:    1280,
		Height:   2400,
		Children: []models.EditorNode{},
	}
}
