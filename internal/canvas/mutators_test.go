package canvas

import (
	"testing"

	"convite-premium-backend/internal/models"
)

func sampleTree() []models.EditorNode {
	return []models.EditorNode{
		{ID: "a", Type: models.TextNode, Content: "hello", X: 10, Y: 20, Width: 100, Height: 40},
		{
			ID: "box", Type: models.ContainerNode, X: 50, Y: 50, Width: 300, Height: 200,
			Children: []models.EditorNode{
				{ID: "b", Type: models.TextNode, Content: "nested", X: 5, Y: 5},
				{ID: "c", Type: models.ImageNode, X: 15, Y: 25},
			},
		},
	}
}

func TestUpdateNode_PatchesNestedNode(t *testing.T) {
	tree := sampleTree()
	content := "updated"
	result := UpdateNode(tree, "b", models.NodePatch{Content: &content})

	node, ok := FindNode(result, "b")
	if !ok {
		t.Fatalf("expected node b to exist after update")
	}
	if node.Content != "updated" {
		t.Fatalf("expected patched content, got %q", node.Content)
	}

	original, _ := FindNode(tree, "b")
	if original.Content != "nested" {
		t.Fatalf("input tree was mutated: %q", original.Content)
	}
}

func TestUpdateNode_AbsentIDIsNoOp(t *testing.T) {
	tree := sampleTree()
	x := 999.0
	result := UpdateNode(tree, "missing", models.NodePatch{X: &x})

	if len(result) != len(tree) {
		t.Fatalf("expected structurally unchanged tree, got %d roots", len(result))
	}
	for _, id := range CollectIDs(result) {
		node, _ := FindNode(result, id)
		orig, _ := FindNode(tree, id)
		if node.X != orig.X || node.Y != orig.Y {
			t.Fatalf("node %s changed position on absent-id update", id)
		}
	}
}

func TestUpdateNode_MergesStyles(t *testing.T) {
	tree := []models.EditorNode{
		{ID: "a", Type: models.TextNode, Styles: models.StyleMap{"color": "red", "fontSize": 14}},
	}
	result := UpdateNode(tree, "a", models.NodePatch{Styles: models.StyleMap{"color": "blue"}})

	node, _ := FindNode(result, "a")
	if node.Styles["color"] != "blue" {
		t.Fatalf("expected color override, got %v", node.Styles["color"])
	}
	if node.Styles["fontSize"] != 14 {
		t.Fatalf("expected untouched fontSize, got %v", node.Styles["fontSize"])
	}
	if tree[0].Styles["color"] != "red" {
		t.Fatalf("input styles were mutated: %v", tree[0].Styles["color"])
	}
}

func TestDeleteNodes_RemovesNestedChild(t *testing.T) {
	tree := sampleTree()
	result := DeleteNodes(tree, map[string]struct{}{"b": {}})

	if len(result) != 2 {
		t.Fatalf("expected 2 top-level nodes, got %d", len(result))
	}
	if _, ok := FindNode(result, "b"); ok {
		t.Fatalf("expected b to be deleted")
	}
	if _, ok := FindNode(result, "c"); !ok {
		t.Fatalf("expected sibling c to survive")
	}
}

func TestDeleteNode_ContainerDropsSubtree(t *testing.T) {
	tree := sampleTree()
	result := DeleteNode(tree, "box")

	if len(result) != 1 || result[0].ID != "a" {
		t.Fatalf("expected only node a to remain, got %d nodes", len(result))
	}
	if _, ok := FindNode(result, "c"); ok {
		t.Fatalf("expected container child c to be gone")
	}
}

func TestDeleteNode_AbsentIDIsNoOp(t *testing.T) {
	tree := sampleTree()
	result := DeleteNode(tree, "missing")

	if len(CollectIDs(result)) != len(CollectIDs(tree)) {
		t.Fatalf("expected unchanged tree on absent-id delete")
	}
}

func TestMoveBy_MatchesEachIDIndependently(t *testing.T) {
	tree := sampleTree()
	result := MoveBy(tree, map[string]struct{}{"box": {}, "c": {}}, 10, -5)

	box, _ := FindNode(result, "box")
	if box.X != 60 || box.Y != 45 {
		t.Fatalf("expected box moved to (60,45), got (%v,%v)", box.X, box.Y)
	}
	// Unselected child keeps its own coordinates.
	b, _ := FindNode(result, "b")
	if b.X != 5 || b.Y != 5 {
		t.Fatalf("expected unselected child b untouched, got (%v,%v)", b.X, b.Y)
	}
	c, _ := FindNode(result, "c")
	if c.X != 25 || c.Y != 20 {
		t.Fatalf("expected selected child c moved to (25,20), got (%v,%v)", c.X, c.Y)
	}
}

func TestMutators_ToleratesDuplicateIDs(t *testing.T) {
	tree := []models.EditorNode{
		{ID: "dup", Type: models.TextNode, X: 0},
		{ID: "dup", Type: models.TextNode, X: 100},
	}

	moved := MoveBy(tree, map[string]struct{}{"dup": {}}, 1, 1)
	if moved[0].X != 1 || moved[1].X != 101 {
		t.Fatalf("expected both duplicates moved, got %v and %v", moved[0].X, moved[1].X)
	}

	deleted := DeleteNode(tree, "dup")
	if len(deleted) != 0 {
		t.Fatalf("expected both duplicates deleted, got %d nodes", len(deleted))
	}
}

func TestAppendNode_AttachesToContainer(t *testing.T) {
	tree := sampleTree()
	child := NewNode(models.TextNode, 1, 2)
	result := AppendNode(tree, "box", child)

	box, _ := FindNode(result, "box")
	if len(box.Children) != 3 {
		t.Fatalf("expected 3 children in container, got %d", len(box.Children))
	}
}

func TestAppendNode_UnknownParentFallsBackToRoot(t *testing.T) {
	tree := sampleTree()
	child := NewNode(models.TextNode, 1, 2)
	result := AppendNode(tree, "missing", child)

	if len(result) != 3 {
		t.Fatalf("expected child appended at root, got %d roots", len(result))
	}
	box, _ := FindNode(result, "box")
	if len(box.Children) != 2 {
		t.Fatalf("container must not absorb the fallback child, got %d children", len(box.Children))
	}
}

func TestMutators_BoundDescentOnDeepTrees(t *testing.T) {
	tree := []models.EditorNode{{ID: "leaf", Type: models.TextNode}}
	for i := 0; i < maxTreeDepth*2; i++ {
		tree = []models.EditorNode{{ID: "wrap", Type: models.ContainerNode, Children: tree}}
	}

	content := "still fine"
	UpdateNode(tree, "leaf", models.NodePatch{Content: &content})
	DeleteNodes(tree, map[string]struct{}{"leaf": {}})
	MoveBy(tree, map[string]struct{}{"leaf": {}}, 1, 1)
	CollectIDs(tree)
}

func TestNewNode_GeneratesUniqueIDs(t *testing.T) {
	seen := make(map[string]struct{})
	for i := 0; i < 1000; i++ {
		node := NewNode(models.TextNode, 0, 0)
		if _, dup := seen[node.ID]; dup {
			t.Fatalf("duplicate id generated: %s", node.ID)
		}
		seen[node.ID] = struct{}{}
	}
}
