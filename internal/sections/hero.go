package sections

import (
	"fmt"
	"strings"

	"convite-premium-backend/internal/models"
)

// RegisterHero registers the hero section renderer.
func RegisterHero(reg *Registry) {
	if reg == nil {
		return
	}
	reg.MustRegister(models.HeroSection, renderHero)
}

func renderHero(ctx RenderContext, prefix string, input RenderInput) string {
	title := contentString(input.Content, "title")
	subtitle := contentString(input.Content, "subtitle")
	date := contentString(input.Content, "date")
	location := contentString(input.Content, "location")
	imageURL := contentString(input.Content, "imageUrl")
	alignment := contentString(input.Content, "alignment")

	if alignment != "left" && alignment != "right" {
		alignment = "center"
	}

	heroClass := fmt.Sprintf("%s__hero %s__hero--%s", prefix, prefix, alignment)
	titleClass := fmt.Sprintf("%s__hero-title", prefix)
	subtitleClass := fmt.Sprintf("%s__hero-subtitle", prefix)
	metaClass := fmt.Sprintf("%s__hero-meta", prefix)
	imageClass := fmt.Sprintf("%s__hero-image", prefix)

	var sb strings.Builder
	sb.WriteString(sectionOpen(prefix, input, "hero"))
	sb.WriteString(`<div class="` + heroClass + `">`)

	if strings.TrimSpace(imageURL) != "" {
		sb.WriteString(`<img class="` + imageClass + `" src="` + escape(imageURL) + `" alt="" />`)
	}
	if strings.TrimSpace(title) != "" {
		sb.WriteString(`<h1 class="` + titleClass + `">` + ctx.SanitizeHTML(title) + `</h1>`)
	}
	if strings.TrimSpace(subtitle) != "" {
		sb.WriteString(`<h2 class="` + subtitleClass + `">` + ctx.SanitizeHTML(subtitle) + `</h2>`)
	}
	if strings.TrimSpace(date) != "" || strings.TrimSpace(location) != "" {
		sb.WriteString(`<div class="` + metaClass + `">`)
		if strings.TrimSpace(date) != "" {
			sb.WriteString(`<time datetime="` + escape(date) + `">` + escape(date) + `</time>`)
		}
		if strings.TrimSpace(location) != "" {
			sb.WriteString(`<span>` + escape(location) + `</span>`)
		}
		sb.WriteString(`</div>`)
	}

	sb.WriteString(`</div>`)
	sb.WriteString(sectionClose())
	return sb.String()
}
