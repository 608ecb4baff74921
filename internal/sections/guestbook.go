package sections

import (
	"fmt"
	"strings"

	"convite-premium-backend/internal/models"
)

// RegisterGuestbook registers the guestbook section renderer.
func RegisterGuestbook(reg *Registry) {
	if reg == nil {
		return
	}
	reg.MustRegister(models.GuestbookSection, renderGuestbook)
}

func renderGuestbook(ctx RenderContext, prefix string, input RenderInput) string {
	title := contentString(input.Content, "title")
	placeholder := contentString(input.Content, "placeholder")
	buttonText := contentString(input.Content, "buttonText")
	if strings.TrimSpace(buttonText) == "" {
		buttonText = ctx.Translate(input.Lang, "guestbook.submit")
	}

	guestbookClass := fmt.Sprintf("%s__guestbook", prefix)
	titleClass := fmt.Sprintf("%s__guestbook-title", prefix)
	formClass := fmt.Sprintf("%s__guestbook-form", prefix)
	textareaClass := fmt.Sprintf("%s__guestbook-message", prefix)
	buttonClass := fmt.Sprintf("%s__guestbook-button", prefix)

	var sb strings.Builder
	sb.WriteString(sectionOpen(prefix, input, "guestbook"))
	sb.WriteString(`<div class="` + guestbookClass + `">`)

	if strings.TrimSpace(title) != "" {
		sb.WriteString(`<h2 class="` + titleClass + `">` + ctx.SanitizeHTML(title) + `</h2>`)
	}

	sb.WriteString(`<form class="` + formClass + `" data-section-id="` + escape(input.Section.ID) + `" data-form="guestbook">`)
	sb.WriteString(formField(prefix, input, "name", "text", ctx.Translate(input.Lang, "field.name"), true))
	sb.WriteString(`<textarea class="` + textareaClass + `" name="message" required placeholder="` + escape(placeholder) + `"></textarea>`)
	sb.WriteString(`<button type="submit" class="` + buttonClass + `"`)
	if input.Mode == ModeEditor {
		sb.WriteString(` disabled`)
	}
	sb.WriteString(`>` + escape(buttonText) + `</button>`)
	sb.WriteString(`</form>`)

	sb.WriteString(`</div>`)
	sb.WriteString(sectionClose())
	return sb.String()
}
