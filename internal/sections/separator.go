package sections

import (
	"fmt"
	"strings"

	"convite-premium-backend/internal/models"
)

// RegisterSeparator registers the separator section renderer.
func RegisterSeparator(reg *Registry) {
	if reg == nil {
		return
	}
	reg.MustRegister(models.SeparatorSection, renderSeparator)
}

func renderSeparator(ctx RenderContext, prefix string, input RenderInput) string {
	style := contentString(input.Content, "style")
	height := contentString(input.Content, "height")
	if style == "" {
		style = "line"
	}
	if height == "" {
		height = "48"
	}

	separatorClass := fmt.Sprintf("%s__separator %s__separator--%s", prefix, prefix, style)

	var sb strings.Builder
	sb.WriteString(sectionOpen(prefix, input, "separator"))
	sb.WriteString(`<div class="` + separatorClass + `" style="height:` + escape(height) + `px">`)
	if style == "line" {
		sb.WriteString(`<hr />`)
	}
	sb.WriteString(`</div>`)
	sb.WriteString(sectionClose())
	return sb.String()
}
