package sections

import (
	"fmt"
	"strings"

	"convite-premium-backend/internal/models"
)

// RegisterCountdown registers the countdown section renderer.
func RegisterCountdown(reg *Registry) {
	if reg == nil {
		return
	}
	reg.MustRegister(models.CountdownSection, renderCountdown)
}

// renderCountdown emits the countdown shell with the target date as data
// attributes; ticking happens client-side, independent per section.
func renderCountdown(ctx RenderContext, prefix string, input RenderInput) string {
	title := contentString(input.Content, "title")
	targetDate := contentString(input.Content, "targetDate")

	countdownClass := fmt.Sprintf("%s__countdown", prefix)
	titleClass := fmt.Sprintf("%s__countdown-title", prefix)
	timerClass := fmt.Sprintf("%s__countdown-timer", prefix)
	unitClass := fmt.Sprintf("%s__countdown-unit", prefix)

	var sb strings.Builder
	sb.WriteString(sectionOpen(prefix, input, "countdown"))
	sb.WriteString(`<div class="` + countdownClass + `" data-countdown-target="` + escape(targetDate) + `">`)

	if strings.TrimSpace(title) != "" {
		sb.WriteString(`<h2 class="` + titleClass + `">` + ctx.SanitizeHTML(title) + `</h2>`)
	}

	sb.WriteString(`<div class="` + timerClass + `">`)
	if contentBool(input.Content, "showDays") {
		sb.WriteString(`<span class="` + unitClass + `" data-unit="days">0</span>`)
	}
	if contentBool(input.Content, "showHours") {
		sb.WriteString(`<span class="` + unitClass + `" data-unit="hours">0</span>`)
	}
	sb.WriteString(`<span class="` + unitClass + `" data-unit="minutes">0</span>`)
	sb.WriteString(`<span class="` + unitClass + `" data-unit="seconds">0</span>`)
	sb.WriteString(`</div>`)

	sb.WriteString(`</div>`)
	sb.WriteString(sectionClose())
	return sb.String()
}
