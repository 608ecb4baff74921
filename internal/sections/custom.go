package sections

import (
	"fmt"
	"strings"

	"convite-premium-backend/internal/models"
)

// RegisterCustom registers the free-form HTML section renderer.
func RegisterCustom(reg *Registry) {
	if reg == nil {
		return
	}
	reg.MustRegister(models.CustomSection, renderCustom)
}

// renderCustom emits caller-authored HTML. The markup always passes through
// the sanitizer before reaching the page.
func renderCustom(ctx RenderContext, prefix string, input RenderInput) string {
	html := contentString(input.Content, "html")

	customClass := fmt.Sprintf("%s__custom", prefix)

	var sb strings.Builder
	sb.WriteString(sectionOpen(prefix, input, "custom"))
	sb.WriteString(`<div class="` + customClass + `">`)
	if strings.TrimSpace(html) != "" {
		sb.WriteString(ctx.SanitizeHTML(html))
	}
	sb.WriteString(`</div>`)
	sb.WriteString(sectionClose())
	return sb.String()
}
