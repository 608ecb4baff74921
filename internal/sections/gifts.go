package sections

import (
	"fmt"
	"strings"

	"convite-premium-backend/internal/models"
)

// RegisterGifts registers the gift list section renderer.
func RegisterGifts(reg *Registry) {
	if reg == nil {
		return
	}
	reg.MustRegister(models.GiftsSection, renderGifts)
}

func renderGifts(ctx RenderContext, prefix string, input RenderInput) string {
	title := contentString(input.Content, "title")
	description := contentString(input.Content, "description")
	items := contentList(input.Content, "items")

	giftsClass := fmt.Sprintf("%s__gifts", prefix)
	titleClass := fmt.Sprintf("%s__gifts-title", prefix)
	descClass := fmt.Sprintf("%s__gifts-description", prefix)
	gridClass := fmt.Sprintf("%s__gifts-grid", prefix)
	itemClass := fmt.Sprintf("%s__gifts-item", prefix)

	var sb strings.Builder
	sb.WriteString(sectionOpen(prefix, input, "gifts"))
	sb.WriteString(`<div class="` + giftsClass + `">`)

	if strings.TrimSpace(title) != "" {
		sb.WriteString(`<h2 class="` + titleClass + `">` + ctx.SanitizeHTML(title) + `</h2>`)
	}
	if strings.TrimSpace(description) != "" {
		sb.WriteString(`<p class="` + descClass + `">` + ctx.SanitizeHTML(description) + `</p>`)
	}

	sb.WriteString(`<div class="` + gridClass + `">`)
	for _, item := range items {
		label := itemString(item, "label")
		url := itemString(item, "url")
		imageURL := itemString(item, "imageUrl")

		sb.WriteString(`<a class="` + itemClass + `"`)
		if strings.TrimSpace(url) != "" {
			sb.WriteString(` href="` + escape(url) + `" target="_blank" rel="noopener"`)
			if input.Mode == ModePublic {
				sb.WriteString(` data-track="gift-click"`)
			}
		}
		sb.WriteString(`>`)
		if strings.TrimSpace(imageURL) != "" {
			sb.WriteString(`<img src="` + escape(imageURL) + `" alt="" />`)
		}
		sb.WriteString(`<span>` + escape(label) + `</span>`)
		sb.WriteString(`</a>`)
	}
	sb.WriteString(`</div>`)

	sb.WriteString(`</div>`)
	sb.WriteString(sectionClose())
	return sb.String()
}
