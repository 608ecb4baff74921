package models

// SectionType identifies one of the structured invitation blocks.
type SectionType string

const (
	SplashSection    SectionType = "splash"
	HeroSection      SectionType = "hero"
	AgendaSection    SectionType = "agenda"
	RSVPSection      SectionType = "rsvp"
	GuestbookSection SectionType = "guestbook"
	CountdownSection SectionType = "countdown"
	SeparatorSection SectionType = "separator"
	NavSection       SectionType = "nav"
	GiftsSection     SectionType = "gifts"
	CustomSection    SectionType = "custom"
)

// SectionTypes lists every known section type in display order.
func SectionTypes() []SectionType {
	return []SectionType{
		SplashSection,
		HeroSection,
		AgendaSection,
		RSVPSection,
		GuestbookSection,
		CountdownSection,
		SeparatorSection,
		NavSection,
		GiftsSection,
		CustomSection,
	}
}

// Valid reports whether t is a member of the closed section type set.
func (t SectionType) Valid() bool {
	for _, known := range SectionTypes() {
		if t == known {
			return true
		}
	}
	return false
}

// ContentMap holds the schema-driven content bag of a section.
type ContentMap map[string]interface{}

// StyleMap holds CSS-like style overrides keyed by property name.
type StyleMap map[string]interface{}

// Section is one structured, typed block of an invitation page.
type Section struct {
	ID       string      `json:"id"`
	Type     SectionType `json:"type"`
	Content  ContentMap  `json:"content"`
	Styles   StyleMap    `json:"styles,omitempty"`
	IsHidden bool        `json:"is_hidden,omitempty"`
}

// ThemeShade holds the background/text pair for one theme variant.
type ThemeShade struct {
	Background string `json:"background"`
	Text       string `json:"text"`
}

// ThemeShades groups the light and dark shade pairs.
type ThemeShades struct {
	Light ThemeShade `json:"light"`
	Dark  ThemeShade `json:"dark"`
}

// LayoutMode selects between a boxed (card) and full-width page frame.
type LayoutMode string

const (
	LayoutBoxed LayoutMode = "boxed"
	LayoutFull  LayoutMode = "full"
)

// GlobalStyles carries the layout-wide design tokens.
type GlobalStyles struct {
	PrimaryColor          string       `json:"primary_color"`
	SecondaryColor        string       `json:"secondary_color"`
	FontFamilyTitle       string       `json:"font_family_title"`
	FontFamilyBody        string       `json:"font_family_body"`
	BackgroundColor       string       `json:"background_color"`
	LayoutMode            LayoutMode   `json:"layout_mode,omitempty"`
	ContainerBorderRadius *int         `json:"container_border_radius,omitempty"`
	ThemeShades           *ThemeShades `json:"theme_shades,omitempty"`
}

// EffectType names an ambient page effect (particles, petals, ...).
type EffectType string

// EventLayout is the canonical section-based invitation document. The layout
// exclusively owns its section list and global style record.
type EventLayout struct {
	ID           string       `json:"id"`
	Name         string       `json:"name"`
	EventType    string       `json:"event_type"`
	Language     string       `json:"language"`
	GlobalStyles GlobalStyles `json:"global_styles"`
	Sections     []Section    `json:"sections"`
	MusicURL     string       `json:"music_url,omitempty"`
	Effects      EffectType   `json:"effects,omitempty"`
}

// SplashIndex returns the index of the splash section, or -1 when absent.
// The splash pin invariant keeps it at 0 whenever it exists.
func (l *EventLayout) SplashIndex() int {
	for i, section := range l.Sections {
		if section.Type == SplashSection {
			return i
		}
	}
	return -1
}

// HasSplash reports whether the layout contains a splash section.
func (l *EventLayout) HasSplash() bool {
	return l.SplashIndex() >= 0
}

// SectionByID returns a pointer into the section list, or nil when absent.
func (l *EventLayout) SectionByID(id string) *Section {
	for i := range l.Sections {
		if l.Sections[i].ID == id {
			return &l.Sections[i]
		}
	}
	return nil
}

// Clone returns a deep copy of the layout so mutators can return fresh
// snapshots without sharing content or style maps.
func (l *EventLayout) Clone() *EventLayout {
	if l == nil {
		return nil
	}

	cloned := *l
	cloned.Sections = make([]Section, len(l.Sections))
	for i, section := range l.Sections {
		cloned.Sections[i] = section.Clone()
	}
	if l.GlobalStyles.ContainerBorderRadius != nil {
		radius := *l.GlobalStyles.ContainerBorderRadius
		cloned.GlobalStyles.ContainerBorderRadius = &radius
	}
	if l.GlobalStyles.ThemeShades != nil {
		shades := *l.GlobalStyles.ThemeShades
		cloned.GlobalStyles.ThemeShades = &shades
	}
	return &cloned
}

// Clone returns a deep copy of the section.
func (s Section) Clone() Section {
	cloned := s
	cloned.Content = cloneValueMap(s.Content)
	if s.Styles != nil {
		cloned.Styles = StyleMap(cloneValueMap(ContentMap(s.Styles)))
	}
	return cloned
}

func cloneValueMap(m ContentMap) ContentMap {
	if m == nil {
		return nil
	}
	cloned := make(ContentMap, len(m))
	for key, value := range m {
		cloned[key] = cloneValue(value)
	}
	return cloned
}

func cloneValue(value interface{}) interface{} {
	switch v := value.(type) {
	case map[string]interface{}:
		return map[string]interface{}(cloneValueMap(v))
	case ContentMap:
		return cloneValueMap(v)
	case []interface{}:
		cloned := make([]interface{}, len(v))
		for i, item := range v {
			cloned[i] = cloneValue(item)
		}
		return cloned
	default:
		return v
	}
}
