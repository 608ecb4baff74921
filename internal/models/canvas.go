package models

// NodeType identifies a free-form canvas element kind.
type NodeType string

const (
	TextNode      NodeType = "text"
	ImageNode     NodeType = "image"
	InputNode     NodeType = "input"
	ContainerNode NodeType = "container"
)

// DeviceType is one render target for responsive style resolution.
type DeviceType string

const (
	DeviceDesktop DeviceType = "desktop"
	DeviceTablet  DeviceType = "tablet"
	DeviceMobile  DeviceType = "mobile"
)

// EditorNode is one absolutely positioned item on the free-form canvas.
// Containers own their children exclusively: a node never appears under two
// parents and ids are unique across the entire tree.
type EditorNode struct {
	ID               string                  `json:"id"`
	Type             NodeType                `json:"type"`
	Content          string                  `json:"content,omitempty"`
	X                float64                 `json:"x"`
	Y                float64                 `json:"y"`
	Width            float64                 `json:"width"`
	Height           float64                 `json:"height"`
	Styles           StyleMap                `json:"styles,omitempty"`
	ResponsiveStyles map[DeviceType]StyleMap `json:"responsive_styles,omitempty"`
	Children         []EditorNode            `json:"children,omitempty"`
}

// IsContainer reports whether the node may hold children.
func (n EditorNode) IsContainer() bool {
	return n.Type == ContainerNode
}

// Clone returns a deep copy of the node and its subtree.
func (n EditorNode) Clone() EditorNode {
	cloned := n
	if n.Styles != nil {
		cloned.Styles = StyleMap(cloneValueMap(ContentMap(n.Styles)))
	}
	if n.ResponsiveStyles != nil {
		cloned.ResponsiveStyles = make(map[DeviceType]StyleMap, len(n.ResponsiveStyles))
		for device, styles := range n.ResponsiveStyles {
			cloned.ResponsiveStyles[device] = StyleMap(cloneValueMap(ContentMap(styles)))
		}
	}
	if n.Children != nil {
		cloned.Children = CloneNodes(n.Children)
	}
	return cloned
}

// CloneNodes deep-copies a node list.
func CloneNodes(nodes []EditorNode) []EditorNode {
	if nodes == nil {
		return nil
	}
	cloned := make([]EditorNode, len(nodes))
	for i, node := range nodes {
		cloned[i] = node.Clone()
	}
	return cloned
}

// Page is the root of the free-form canvas model. It owns the top-level
// node list; one instance exists per editor session.
type Page struct {
	ID       string       `json:"id"`
	Name     string       `json:"name"`
	Width    float64      `json:"width"`
	Height   float64      `json:"height"`
	Children []EditorNode `json:"children"`
}

// Clone returns a deep copy of the page.
func (p *Page) Clone() *Page {
	if p == nil {
		return nil
	}
	cloned := *p
	cloned.Children = CloneNodes(p.Children)
	return &cloned
}
