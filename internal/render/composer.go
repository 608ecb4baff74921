package render

import (
	"fmt"
	"html/template"
	"strings"

	"convite-premium-backend/internal/models"
	"convite-premium-backend/internal/sections"
)

// ClassPrefix is the BEM block prefix shared by every rendered section.
const ClassPrefix = "convite"

// SanitizeFunc cleans potentially unsafe markup.
type SanitizeFunc func(string) string

// TranslateFunc resolves a localized UI string.
type TranslateFunc func(lang, key string) string

// Composer walks a layout's sections and emits the editable or the read-only
// surface. Both modes flow through the identical per-type renderers; the only
// divergences are interaction affordances, the public splash gate, and
// hidden-section handling.
type Composer struct {
	registry  *sections.Registry
	sanitize  SanitizeFunc
	translate TranslateFunc
}

// NewComposer builds a composer over the given renderer registry.
func NewComposer(registry *sections.Registry, sanitize SanitizeFunc, translate TranslateFunc) *Composer {
	if registry == nil {
		registry = sections.DefaultRegistry()
	}
	return &Composer{
		registry:  registry,
		sanitize:  sanitize,
		translate: translate,
	}
}

// SanitizeHTML implements sections.RenderContext.
func (c *Composer) SanitizeHTML(input string) string {
	if c.sanitize == nil {
		return template.HTMLEscapeString(input)
	}
	return c.sanitize(input)
}

// Translate implements sections.RenderContext.
func (c *Composer) Translate(lang, key string) string {
	if c.translate == nil {
		return key
	}
	return c.translate(lang, key)
}

// ComposeOptions selects the render surface for one pass.
type ComposeOptions struct {
	Mode            sections.Mode
	Device          models.DeviceType
	ActiveSectionID string
	External        *models.ExternalInputState
	// Gate drives the public splash reveal; ignored in editor mode.
	Gate *SplashGate
}

// Compose renders the whole layout into HTML.
func (c *Composer) Compose(layout *models.EventLayout, opts ComposeOptions) string {
	if layout == nil {
		return ""
	}
	if opts.Device == "" {
		opts.Device = models.DeviceDesktop
	}

	var sb strings.Builder
	sb.WriteString(c.openLayout(layout, opts))

	gateOpen := opts.Mode != sections.ModePublic || opts.Gate == nil || opts.Gate.Opened()

	var nav *models.Section
	for i := range layout.Sections {
		section := layout.Sections[i]

		if section.Type == models.NavSection {
			// Rendered once, outside the scroll flow.
			if nav == nil {
				nav = &layout.Sections[i]
			}
			continue
		}

		if opts.Mode == sections.ModePublic {
			if section.IsHidden {
				continue
			}
			// Until the gate opens only the splash is shown.
			if !gateOpen && section.Type != models.SplashSection {
				continue
			}
			// Once opened the splash leaves the flow.
			if gateOpen && section.Type == models.SplashSection {
				continue
			}
		}

		sb.WriteString(c.RenderSection(layout, section, opts))
	}

	if nav != nil && (gateOpen || opts.Mode == sections.ModeEditor) {
		if opts.Mode != sections.ModePublic || !nav.IsHidden {
			sb.WriteString(c.RenderSection(layout, *nav, opts))
		}
	}

	if opts.Mode == sections.ModePublic && gateOpen && layout.MusicURL != "" {
		sb.WriteString(`<audio class="` + ClassPrefix + `__music" src="` + template.HTMLEscapeString(layout.MusicURL) + `" autoplay loop></audio>`)
	}

	sb.WriteString(`</div>`)
	return sb.String()
}

// RenderSection renders one section through its registered renderer, falling
// back to a visible placeholder for unknown types so the walk never fails.
func (c *Composer) RenderSection(layout *models.EventLayout, section models.Section, opts ComposeOptions) string {
	input := sections.RenderInput{
		Section: section,
		Styles:  ResolveSectionStyle(section, opts.Device),
		Layout:  layout,
		Mode:    opts.Mode,
		Active:  opts.Mode == sections.ModeEditor && section.ID == opts.ActiveSectionID,
		Lang:    layout.Language,
	}

	def, known := sections.Template(section.Type)

	var external map[string]interface{}
	if opts.Mode == sections.ModePublic && opts.External != nil {
		external = opts.External.ValuesFor(section.ID)
		if statuses := opts.External.Statuses[section.ID]; statuses != nil {
			input.Statuses = statuses
		}
	}
	input.Content = ResolveContent(section, def, external)

	renderer, ok := c.registry.Get(section.Type)
	if !ok || !known {
		return c.renderPlaceholder(section)
	}
	return renderer(c, ClassPrefix, input)
}

func (c *Composer) renderPlaceholder(section models.Section) string {
	return fmt.Sprintf(
		`<section class="%s__section %s__section--unknown" id="section-%s"><p>%s</p></section>`,
		ClassPrefix, ClassPrefix,
		template.HTMLEscapeString(section.ID),
		template.HTMLEscapeString(fmt.Sprintf("Seção desconhecida: %s", section.Type)),
	)
}

func (c *Composer) openLayout(layout *models.EventLayout, opts ComposeOptions) string {
	styles := layout.GlobalStyles

	classes := []string{ClassPrefix}
	if styles.LayoutMode == models.LayoutBoxed {
		classes = append(classes, ClassPrefix+"--boxed")
	}
	classes = append(classes, fmt.Sprintf("%s--%s", ClassPrefix, opts.Device))
	if opts.Mode == sections.ModeEditor {
		classes = append(classes, ClassPrefix+"--editing")
	}
	if opts.Mode == sections.ModePublic && opts.Gate != nil && opts.Gate.State() == GateTransitioning {
		classes = append(classes, ClassPrefix+"--transitioning")
	}

	var inline strings.Builder
	writeCSSVar(&inline, "--primary-color", styles.PrimaryColor)
	writeCSSVar(&inline, "--secondary-color", styles.SecondaryColor)
	writeCSSVar(&inline, "--font-title", styles.FontFamilyTitle)
	writeCSSVar(&inline, "--font-body", styles.FontFamilyBody)
	writeCSSVar(&inline, "--background-color", styles.BackgroundColor)
	if styles.ContainerBorderRadius != nil {
		writeCSSVar(&inline, "--container-radius", fmt.Sprintf("%dpx", *styles.ContainerBorderRadius))
	}

	var sb strings.Builder
	sb.WriteString(`<div class="` + strings.Join(classes, " ") + `"`)
	if inline.Len() > 0 {
		sb.WriteString(` style="` + inline.String() + `"`)
	}
	sb.WriteString(`>`)
	return sb.String()
}

func writeCSSVar(sb *strings.Builder, name, value string) {
	if strings.TrimSpace(value) == "" {
		return
	}
	sb.WriteString(name)
	sb.WriteString(":")
	sb.WriteString(template.HTMLEscapeString(value))
	sb.WriteString(";")
}
