// Package canvas implements the pure mutators for the free-form editor node
// tree. Every function returns a fresh tree and leaves its input untouched;
// unknown ids are no-ops so the state controller stays total.
package canvas

import (
	"convite-premium-backend/internal/models"
)

// maxTreeDepth bounds every recursive walk. Real pages nest a handful of
// containers at most; a tree deeper than this is malformed and the walk
// stops descending instead of risking the stack.
const maxTreeDepth = 64

// UpdateNode rewrites the node matching id by shallow-merging patch into it,
// descending into container children. Absent ids leave the tree structurally
// unchanged. Duplicate ids should not occur, but every match is patched so a
// malformed tree never crashes the walk.
func UpdateNode(tree []models.EditorNode, id string, patch models.NodePatch) []models.EditorNode {
	return updateNode(tree, id, patch, 0)
}

func updateNode(tree []models.EditorNode, id string, patch models.NodePatch, depth int) []models.EditorNode {
	result := make([]models.EditorNode, len(tree))
	for i, node := range tree {
		updated := node.Clone()
		if updated.ID == id {
			applyPatch(&updated, patch)
		}
		if updated.IsContainer() && len(updated.Children) > 0 && depth < maxTreeDepth {
			updated.Children = updateNode(updated.Children, id, patch, depth+1)
		}
		result[i] = updated
	}
	return result
}

func applyPatch(node *models.EditorNode, patch models.NodePatch) {
	if patch.Content != nil {
		node.Content = *patch.Content
	}
	if patch.X != nil {
		node.X = *patch.X
	}
	if patch.Y != nil {
		node.Y = *patch.Y
	}
	if patch.Width != nil {
		node.Width = *patch.Width
	}
	if patch.Height != nil {
		node.Height = *patch.Height
	}
	if patch.Styles != nil {
		if node.Styles == nil {
			node.Styles = models.StyleMap{}
		}
		for key, value := range patch.Styles {
			node.Styles[key] = value
		}
	}
	if patch.ResponsiveStyles != nil {
		if node.ResponsiveStyles == nil {
			node.ResponsiveStyles = make(map[models.DeviceType]models.StyleMap)
		}
		for device, styles := range patch.ResponsiveStyles {
			merged := node.ResponsiveStyles[device]
			if merged == nil {
				merged = models.StyleMap{}
			}
			for key, value := range styles {
				merged[key] = value
			}
			node.ResponsiveStyles[device] = merged
		}
	}
}

// DeleteNode removes the node matching id at any depth. Deleting a container
// drops its entire subtree.
func DeleteNode(tree []models.EditorNode, id string) []models.EditorNode {
	return DeleteNodes(tree, map[string]struct{}{id: {}})
}

// DeleteNodes filters every node whose id is in ids, recursing into the
// containers that remain.
func DeleteNodes(tree []models.EditorNode, ids map[string]struct{}) []models.EditorNode {
	return deleteNodes(tree, ids, 0)
}

func deleteNodes(tree []models.EditorNode, ids map[string]struct{}, depth int) []models.EditorNode {
	result := make([]models.EditorNode, 0, len(tree))
	for _, node := range tree {
		if _, drop := ids[node.ID]; drop {
			continue
		}
		kept := node.Clone()
		if kept.IsContainer() && len(kept.Children) > 0 && depth < maxTreeDepth {
			kept.Children = deleteNodes(kept.Children, ids, depth+1)
		}
		result = append(result, kept)
	}
	return result
}

// MoveBy offsets x/y of every node whose id is in ids, at any depth. Each id
// is matched independently wherever it occurs: moving a selected container
// does not re-move its unselected children.
func MoveBy(tree []models.EditorNode, ids map[string]struct{}, dx, dy float64) []models.EditorNode {
	return moveBy(tree, ids, dx, dy, 0)
}

func moveBy(tree []models.EditorNode, ids map[string]struct{}, dx, dy float64, depth int) []models.EditorNode {
	result := make([]models.EditorNode, len(tree))
	for i, node := range tree {
		moved := node.Clone()
		if _, selected := ids[moved.ID]; selected {
			moved.X += dx
			moved.Y += dy
		}
		if moved.IsContainer() && len(moved.Children) > 0 && depth < maxTreeDepth {
			moved.Children = moveBy(moved.Children, ids, dx, dy, depth+1)
		}
		result[i] = moved
	}
	return result
}

// FindNode returns the first node matching id, searching depth-first.
func FindNode(tree []models.EditorNode, id string) (models.EditorNode, bool) {
	return findNode(tree, id, 0)
}

func findNode(tree []models.EditorNode, id string, depth int) (models.EditorNode, bool) {
	for _, node := range tree {
		if node.ID == id {
			return node, true
		}
		if node.IsContainer() && len(node.Children) > 0 && depth < maxTreeDepth {
			if found, ok := findNode(node.Children, id, depth+1); ok {
				return found, true
			}
		}
	}
	return models.EditorNode{}, false
}

// AppendNode inserts child at the end of the container matching parentID, or
// at the top level when parentID is empty or absent from the tree.
func AppendNode(tree []models.EditorNode, parentID string, child models.EditorNode) []models.EditorNode {
	if parentID == "" {
		result := models.CloneNodes(tree)
		return append(result, child)
	}

	result, attached := appendNode(tree, parentID, child, 0)
	if !attached {
		result = append(result, child)
	}
	return result
}

func appendNode(tree []models.EditorNode, parentID string, child models.EditorNode, depth int) ([]models.EditorNode, bool) {
	attached := false
	result := make([]models.EditorNode, len(tree))
	for i, node := range tree {
		updated := node.Clone()
		if !attached && updated.ID == parentID && updated.IsContainer() {
			updated.Children = append(updated.Children, child)
			attached = true
		} else if !attached && updated.IsContainer() && len(updated.Children) > 0 && depth < maxTreeDepth {
			updated.Children, attached = appendNode(updated.Children, parentID, child, depth+1)
		}
		result[i] = updated
	}
	return result, attached
}

// CollectIDs gathers every id in the tree, depth-first. Used to assert the
// tree-wide uniqueness invariant.
func CollectIDs(tree []models.EditorNode) []string {
	return collectIDs(tree, 0)
}

func collectIDs(tree []models.EditorNode, depth int) []string {
	ids := make([]string, 0, len(tree))
	for _, node := range tree {
		ids = append(ids, node.ID)
		if node.IsContainer() && len(node.Children) > 0 && depth < maxTreeDepth {
			ids = append(ids, collectIDs(node.Children, depth+1)...)
		}
	}
	return ids
}
