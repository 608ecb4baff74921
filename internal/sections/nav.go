package sections

import (
	"fmt"
	"strings"

	"convite-premium-backend/internal/models"
)

// RegisterNav registers the floating navigation renderer. The nav section
// participates in list ordering like any other section but is rendered once,
// outside the scroll flow, by the composer.
func RegisterNav(reg *Registry) {
	if reg == nil {
		return
	}
	reg.MustRegister(models.NavSection, renderNav)
}

func renderNav(ctx RenderContext, prefix string, input RenderInput) string {
	position := contentString(input.Content, "position")
	if position != "top" {
		position = "bottom"
	}
	items := contentList(input.Content, "items")

	navClass := fmt.Sprintf("%s__nav %s__nav--%s", prefix, prefix, position)
	itemClass := fmt.Sprintf("%s__nav-item", prefix)

	var sb strings.Builder
	sb.WriteString(`<nav class="` + navClass + `" id="section-` + escape(input.Section.ID) + `"`)
	if input.Mode == ModeEditor {
		sb.WriteString(` data-section-id="` + escape(input.Section.ID) + `" data-section-type="nav"`)
	}
	sb.WriteString(`>`)

	for _, item := range items {
		label := itemString(item, "label")
		target := itemString(item, "target")
		if strings.TrimSpace(label) == "" {
			continue
		}
		sb.WriteString(`<a class="` + itemClass + `" href="#section-` + escape(target) + `">` + escape(label) + `</a>`)
	}

	sb.WriteString(`</nav>`)
	return sb.String()
}
