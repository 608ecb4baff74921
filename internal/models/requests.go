package models

// AddSectionRequest represents a request to add a new section to the layout.
type AddSectionRequest struct {
	Type SectionType `json:"type" binding:"required"`
}

// UpdateSectionContentRequest carries a shallow content patch for a section.
type UpdateSectionContentRequest struct {
	Content ContentMap `json:"content" binding:"required"`
}

// UpdateSectionStylesRequest carries a shallow style patch for a section.
type UpdateSectionStylesRequest struct {
	Styles StyleMap `json:"styles" binding:"required"`
}

// MoveSectionRequest moves the section at Index one step up or down.
type MoveSectionRequest struct {
	Index     int    `json:"index"`
	Direction string `json:"direction" binding:"required,oneof=up down"`
}

// ReorderSectionsRequest removes the section at From and reinserts it at To.
type ReorderSectionsRequest struct {
	From int `json:"from"`
	To   int `json:"to"`
}

// UpdateGlobalStylesRequest replaces selected layout-wide design tokens.
type UpdateGlobalStylesRequest struct {
	PrimaryColor          *string      `json:"primary_color,omitempty"`
	SecondaryColor        *string      `json:"secondary_color,omitempty"`
	FontFamilyTitle       *string      `json:"font_family_title,omitempty"`
	FontFamilyBody        *string      `json:"font_family_body,omitempty"`
	BackgroundColor       *string      `json:"background_color,omitempty"`
	LayoutMode            *LayoutMode  `json:"layout_mode,omitempty"`
	ContainerBorderRadius *int         `json:"container_border_radius,omitempty"`
	ThemeShades           *ThemeShades `json:"theme_shades,omitempty"`
}

// UpdateLayoutSettingsRequest replaces layout-level metadata.
type UpdateLayoutSettingsRequest struct {
	Name      *string     `json:"name,omitempty"`
	EventType *string     `json:"event_type,omitempty"`
	Language  *string     `json:"language,omitempty"`
	MusicURL  *string     `json:"music_url,omitempty"`
	Effects   *EffectType `json:"effects,omitempty"`
}

// UpdateNodeRequest carries a shallow patch for one canvas node.
type UpdateNodeRequest struct {
	Patch NodePatch `json:"patch" binding:"required"`
}

// NodePatch is a partial EditorNode; nil fields are left untouched.
type NodePatch struct {
	Content          *string                 `json:"content,omitempty"`
	X                *float64                `json:"x,omitempty"`
	Y                *float64                `json:"y,omitempty"`
	Width            *float64                `json:"width,omitempty"`
	Height           *float64                `json:"height,omitempty"`
	Styles           StyleMap                `json:"styles,omitempty"`
	ResponsiveStyles map[DeviceType]StyleMap `json:"responsive_styles,omitempty"`
}

// MoveNodesRequest offsets every selected node by (dx, dy).
type MoveNodesRequest struct {
	IDs []string `json:"ids" binding:"required"`
	DX  float64  `json:"dx"`
	DY  float64  `json:"dy"`
}

// DeleteNodesRequest removes the listed nodes wherever they occur.
type DeleteNodesRequest struct {
	IDs []string `json:"ids" binding:"required"`
}

// AddNodeRequest creates a new canvas node of the given type.
type AddNodeRequest struct {
	Type   NodeType `json:"type" binding:"required"`
	X      float64  `json:"x"`
	Y      float64  `json:"y"`
	Parent string   `json:"parent,omitempty"`
}

// RSVPSubmission is the public RSVP form payload.
type RSVPSubmission struct {
	Name      string `json:"name" binding:"required"`
	Email     string `json:"email"`
	Phone     string `json:"phone"`
	Attending bool   `json:"attending"`
	Guests    int    `json:"guests"`
	Message   string `json:"message"`
}

// GuestbookSubmission is the public guestbook form payload.
type GuestbookSubmission struct {
	Name    string `json:"name" binding:"required"`
	Message string `json:"message" binding:"required"`
}
