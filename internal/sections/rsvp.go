package sections

import (
	"fmt"
	"strings"

	"convite-premium-backend/internal/models"
)

// RegisterRSVP registers the RSVP form section renderer.
func RegisterRSVP(reg *Registry) {
	if reg == nil {
		return
	}
	reg.MustRegister(models.RSVPSection, renderRSVP)
}

func renderRSVP(ctx RenderContext, prefix string, input RenderInput) string {
	title := contentString(input.Content, "title")
	description := contentString(input.Content, "description")
	buttonText := contentString(input.Content, "buttonText")
	if strings.TrimSpace(buttonText) == "" {
		buttonText = ctx.Translate(input.Lang, "rsvp.submit")
	}

	rsvpClass := fmt.Sprintf("%s__rsvp", prefix)
	titleClass := fmt.Sprintf("%s__rsvp-title", prefix)
	descClass := fmt.Sprintf("%s__rsvp-description", prefix)
	formClass := fmt.Sprintf("%s__rsvp-form", prefix)
	buttonClass := fmt.Sprintf("%s__rsvp-button", prefix)

	var sb strings.Builder
	sb.WriteString(sectionOpen(prefix, input, "rsvp"))
	sb.WriteString(`<div class="` + rsvpClass + `">`)

	if strings.TrimSpace(title) != "" {
		sb.WriteString(`<h2 class="` + titleClass + `">` + ctx.SanitizeHTML(title) + `</h2>`)
	}
	if strings.TrimSpace(description) != "" {
		sb.WriteString(`<p class="` + descClass + `">` + ctx.SanitizeHTML(description) + `</p>`)
	}

	sb.WriteString(`<form class="` + formClass + `" data-section-id="` + escape(input.Section.ID) + `" data-form="rsvp">`)

	sb.WriteString(formField(prefix, input, "name", "text", ctx.Translate(input.Lang, "field.name"), true))
	if contentBool(input.Content, "askEmail") {
		sb.WriteString(formField(prefix, input, "email", "email", ctx.Translate(input.Lang, "field.email"), false))
	}
	if contentBool(input.Content, "askPhone") {
		sb.WriteString(formField(prefix, input, "phone", "tel", ctx.Translate(input.Lang, "field.phone"), false))
	}
	if contentBool(input.Content, "askGuests") {
		sb.WriteString(formField(prefix, input, "guests", "number", ctx.Translate(input.Lang, "field.guests"), false))
	}
	sb.WriteString(formField(prefix, input, "message", "text", ctx.Translate(input.Lang, "field.message"), false))

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

// formField renders one labelled input, applying host-supplied external field
// state: a hidden status suppresses the field, values prefill it, and
// disabled/readOnly become the matching attributes.
func formField(prefix string, input RenderInput, key, inputType, label string, required bool) string {
	status := models.FieldStatus{}
	if input.Statuses != nil {
		status = input.Statuses[key]
	}
	if status.Hidden {
		return ""
	}

	fieldClass := fmt.Sprintf("%s__field", prefix)
	labelClass := fmt.Sprintf("%s__field-label", prefix)
	inputClass := fmt.Sprintf("%s__field-input", prefix)

	var sb strings.Builder
	sb.WriteString(`<label class="` + fieldClass + `">`)
	sb.WriteString(`<span class="` + labelClass + `">` + escape(label) + `</span>`)
	sb.WriteString(`<input class="` + inputClass + `" type="` + inputType + `" name="` + escape(key) + `"`)

	if value, ok := input.Content[key]; ok {
		if text, isString := value.(string); isString && text != "" {
			sb.WriteString(` value="` + escape(text) + `"`)
		}
	}
	if required {
		sb.WriteString(` required`)
	}
	if status.Disabled {
		sb.WriteString(` disabled`)
	}
	if status.ReadOnly {
		sb.WriteString(` readonly`)
	}
	sb.WriteString(` />`)
	sb.WriteString(`</label>`)
	return sb.String()
}
