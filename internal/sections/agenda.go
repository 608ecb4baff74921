package sections

import (
	"fmt"
	"strings"

	"convite-premium-backend/internal/models"
)

// RegisterAgenda registers the agenda (event timeline) section renderer.
func RegisterAgenda(reg *Registry) {
	if reg == nil {
		return
	}
	reg.MustRegister(models.AgendaSection, renderAgenda)
}

func renderAgenda(ctx RenderContext, prefix string, input RenderInput) string {
	title := contentString(input.Content, "title")
	items := contentList(input.Content, "items")

	agendaClass := fmt.Sprintf("%s__agenda", prefix)
	titleClass := fmt.Sprintf("%s__agenda-title", prefix)
	listClass := fmt.Sprintf("%s__agenda-list", prefix)
	itemClass := fmt.Sprintf("%s__agenda-item", prefix)
	timeClass := fmt.Sprintf("%s__agenda-time", prefix)
	labelClass := fmt.Sprintf("%s__agenda-label", prefix)

	var sb strings.Builder
	sb.WriteString(sectionOpen(prefix, input, "agenda"))
	sb.WriteString(`<div class="` + agendaClass + `">`)

	if strings.TrimSpace(title) != "" {
		sb.WriteString(`<h2 class="` + titleClass + `">` + ctx.SanitizeHTML(title) + `</h2>`)
	}

	sb.WriteString(`<ol class="` + listClass + `">`)
	for _, item := range items {
		timeValue := itemString(item, "time")
		label := itemString(item, "label")
		if strings.TrimSpace(label) == "" {
			continue
		}
		sb.WriteString(`<li class="` + itemClass + `">`)
		if strings.TrimSpace(timeValue) != "" {
			sb.WriteString(`<span class="` + timeClass + `">` + escape(timeValue) + `</span>`)
		}
		sb.WriteString(`<span class="` + labelClass + `">` + escape(label) + `</span>`)
		sb.WriteString(`</li>`)
	}
	sb.WriteString(`</ol>`)

	sb.WriteString(`</div>`)
	sb.WriteString(sectionClose())
	return sb.String()
}
