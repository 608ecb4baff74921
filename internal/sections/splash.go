package sections

import (
	"fmt"
	"strings"

	"convite-premium-backend/internal/models"
)

// RegisterSplash registers the splash (welcome gate) section renderer.
func RegisterSplash(reg *Registry) {
	if reg == nil {
		return
	}
	reg.MustRegister(models.SplashSection, renderSplash)
}

func renderSplash(ctx RenderContext, prefix string, input RenderInput) string {
	title := contentString(input.Content, "title")
	subtitle := contentString(input.Content, "subtitle")
	buttonText := contentString(input.Content, "buttonText")
	backgroundURL := contentString(input.Content, "backgroundUrl")
	overlayColor := contentString(input.Content, "overlayColor")

	if strings.TrimSpace(buttonText) == "" {
		buttonText = ctx.Translate(input.Lang, "splash.open")
	}

	splashClass := fmt.Sprintf("%s__splash", prefix)
	overlayClass := fmt.Sprintf("%s__splash-overlay", prefix)
	titleClass := fmt.Sprintf("%s__splash-title", prefix)
	subtitleClass := fmt.Sprintf("%s__splash-subtitle", prefix)
	buttonClass := fmt.Sprintf("%s__splash-button", prefix)

	var sb strings.Builder
	sb.WriteString(sectionOpen(prefix, input, "splash"))
	sb.WriteString(`<div class="` + splashClass + `"`)
	if strings.TrimSpace(backgroundURL) != "" {
		sb.WriteString(` style="background-image:url('` + escape(backgroundURL) + `')"`)
	}
	sb.WriteString(`>`)

	sb.WriteString(`<div class="` + overlayClass + `"`)
	if strings.TrimSpace(overlayColor) != "" {
		sb.WriteString(` style="background-color:` + escape(overlayColor) + `"`)
	}
	sb.WriteString(`>`)

	if strings.TrimSpace(title) != "" {
		sb.WriteString(`<h1 class="` + titleClass + `">` + ctx.SanitizeHTML(title) + `</h1>`)
	}
	if strings.TrimSpace(subtitle) != "" {
		sb.WriteString(`<p class="` + subtitleClass + `">` + ctx.SanitizeHTML(subtitle) + `</p>`)
	}

	// In public mode the button drives the open-invitation gate; in the editor
	// it is inert.
	sb.WriteString(`<button type="button" class="` + buttonClass + `"`)
	if input.Mode == ModePublic {
		sb.WriteString(` data-action="open-invitation"`)
	}
	sb.WriteString(`>` + escape(buttonText) + `</button>`)

	sb.WriteString(`</div>`)
	sb.WriteString(`</div>`)
	sb.WriteString(sectionClose())
	return sb.String()
}
