package sections

import (
	"fmt"
	"sync"

	"convite-premium-backend/internal/models"
)

// Mode selects between the editable and the read-only render surface.
type Mode string

const (
	ModeEditor Mode = "editor"
	ModePublic Mode = "public"
)

// RenderInput carries one section with its content and styles already
// resolved. Renderers must not consult the raw section content directly, so
// precedence stays decided in one place.
type RenderInput struct {
	Section  models.Section
	Content  models.ContentMap
	Styles   models.StyleMap
	Statuses map[string]models.FieldStatus
	Layout   *models.EventLayout
	Mode     Mode
	Active   bool
	Lang     string
}

// RenderContext exposes the minimal capabilities required by section renderers.
type RenderContext interface {
	// SanitizeHTML should clean potentially unsafe markup before rendering.
	SanitizeHTML(input string) string
	// Translate resolves a localized UI string for the given language.
	Translate(lang, key string) string
}

// Renderer renders one resolved section into HTML.
type Renderer func(ctx RenderContext, prefix string, input RenderInput) string

// Registry stores the mapping between section types and their renderers.
type Registry struct {
	mu        sync.RWMutex
	renderers map[models.SectionType]Renderer
}

// NewRegistry creates an empty section renderer registry.
func NewRegistry() *Registry {
	return &Registry{renderers: make(map[models.SectionType]Renderer)}
}

// Register associates a renderer with a section type. It returns an error
// when the input is invalid.
func (r *Registry) Register(sectionType models.SectionType, renderer Renderer) error {
	if r == nil {
		return fmt.Errorf("registry is nil")
	}
	if sectionType == "" {
		return fmt.Errorf("section type is empty")
	}
	if renderer == nil {
		return fmt.Errorf("renderer is nil for type %s", sectionType)
	}

	r.mu.Lock()
	defer r.mu.Unlock()
	if r.renderers == nil {
		r.renderers = make(map[models.SectionType]Renderer)
	}
	r.renderers[sectionType] = renderer
	return nil
}

// MustRegister registers the renderer and panics if registration fails.
func (r *Registry) MustRegister(sectionType models.SectionType, renderer Renderer) {
	if err := r.Register(sectionType, renderer); err != nil {
		panic(err)
	}
}

// Get retrieves a renderer for the provided section type if it exists.
func (r *Registry) Get(sectionType models.SectionType) (Renderer, bool) {
	if r == nil {
		return nil, false
	}

	r.mu.RLock()
	defer r.mu.RUnlock()
	renderer, ok := r.renderers[sectionType]
	return renderer, ok
}

// DefaultRegistry returns a registry with every built-in renderer installed.
func DefaultRegistry() *Registry {
	reg := NewRegistry()
	RegisterSplash(reg)
	RegisterHero(reg)
	RegisterAgenda(reg)
	RegisterRSVP(reg)
	RegisterGuestbook(reg)
	RegisterCountdown(reg)
	RegisterSeparator(reg)
	RegisterNav(reg)
	RegisterGifts(reg)
	RegisterCustom(reg)
	return reg
}
