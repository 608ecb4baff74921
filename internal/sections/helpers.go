package sections

import (
	"fmt"
	"html/template"
	"sort"
	"strings"

	"convite-premium-backend/internal/models"
)

func contentString(content models.ContentMap, key string) string {
	if content == nil {
		return ""
	}
	if value, ok := content[key].(string); ok {
		return value
	}
	return ""
}

func contentBool(content models.ContentMap, key string) bool {
	if content == nil {
		return false
	}
	if value, ok := content[key].(bool); ok {
		return value
	}
	return false
}

func contentInt(content models.ContentMap, key string, fallback int) int {
	if content == nil {
		return fallback
	}
	switch v := content[key].(type) {
	case int:
		return v
	case float64:
		return int(v)
	default:
		return fallback
	}
}

func contentList(content models.ContentMap, key string) []map[string]interface{} {
	if content == nil {
		return nil
	}
	raw, ok := content[key].([]interface{})
	if !ok {
		return nil
	}
	items := make([]map[string]interface{}, 0, len(raw))
	for _, entry := range raw {
		if item, ok := entry.(map[string]interface{}); ok {
			items = append(items, item)
		}
	}
	return items
}

func itemString(item map[string]interface{}, key string) string {
	if value, ok := item[key].(string); ok {
		return value
	}
	return ""
}

// styleAttr renders a StyleMap into an inline style attribute. Keys are
// emitted in sorted order so output is deterministic.
func styleAttr(styles models.StyleMap) string {
	if len(styles) == 0 {
		return ""
	}

	keys := make([]string, 0, len(styles))
	for key := range styles {
		keys = append(keys, key)
	}
	sort.Strings(keys)

	var sb strings.Builder
	for _, key := range keys {
		value := fmt.Sprintf("%v", styles[key])
		sb.WriteString(template.HTMLEscapeString(cssProperty(key)))
		sb.WriteString(":")
		sb.WriteString(template.HTMLEscapeString(value))
		sb.WriteString(";")
	}
	return ` style="` + sb.String() + `"`
}

// cssProperty converts a camelCase style key to its kebab-case CSS name.
func cssProperty(key string) string {
	var sb strings.Builder
	for _, r := range key {
		if r >= 'A' && r <= 'Z' {
			sb.WriteByte('-')
			sb.WriteRune(r + ('a' - 'A'))
			continue
		}
		sb.WriteRune(r)
	}
	return sb.String()
}

// sectionOpen emits the wrapper div shared by every section renderer. Editor
// mode adds the selection data attributes the canvas uses for highlighting.
func sectionOpen(prefix string, input RenderInput, kind string) string {
	classes := []string{
		fmt.Sprintf("%s__section", prefix),
		fmt.Sprintf("%s__section--%s", prefix, kind),
	}
	if input.Section.IsHidden && input.Mode == ModeEditor {
		classes = append(classes, fmt.Sprintf("%s__section--hidden", prefix))
	}
	if input.Active && input.Mode == ModeEditor {
		classes = append(classes, fmt.Sprintf("%s__section--active", prefix))
	}

	var sb strings.Builder
	sb.WriteString(`<section class="` + strings.Join(classes, " ") + `"`)
	sb.WriteString(` id="section-` + template.HTMLEscapeString(input.Section.ID) + `"`)
	if input.Mode == ModeEditor {
		sb.WriteString(` data-section-id="` + template.HTMLEscapeString(input.Section.ID) + `"`)
		sb.WriteString(` data-section-type="` + template.HTMLEscapeString(string(input.Section.Type)) + `"`)
	}
	sb.WriteString(styleAttr(input.Styles))
	sb.WriteString(`>`)
	return sb.String()
}

func sectionClose() string {
	return `</section>`
}

func escape(s string) string {
	return template.HTMLEscapeString(s)
}
