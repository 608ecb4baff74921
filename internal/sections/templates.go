package sections

import (
	"github.com/google/uuid"

	"convite-premium-backend/internal/models"
)

// TemplateDefinition maps a section type to its display metadata, default
// content and editable field table.
type TemplateDefinition struct {
	Type        models.SectionType `json:"type"`
	Name        string             `json:"name"`
	Description string             `json:"description,omitempty"`
	Icon        string             `json:"icon,omitempty"`
	DefaultData models.ContentMap  `json:"default_data"`
	Fields      []FieldDescriptor  `json:"fields"`
}

// Template returns the definition registered for the given type.
func Template(sectionType models.SectionType) (TemplateDefinition, bool) {
	def, ok := templates[sectionType]
	return def, ok
}

// Templates returns every registered definition in display order.
func Templates() []TemplateDefinition {
	result := make([]TemplateDefinition, 0, len(templates))
	for _, sectionType := range models.SectionTypes() {
		if def, ok := templates[sectionType]; ok {
			result = append(result, def)
		}
	}
	return result
}

// CreateSection instantiates a new section of the given type with a fresh
// uuid and a deep copy of the template defaults. Unknown types produce an
// empty content bag rather than an error; two sections created from the same
// template never share mutable references.
func CreateSection(sectionType models.SectionType) models.Section {
	section := models.Section{
		ID:      uuid.New().String(),
		Type:    sectionType,
		Content: models.ContentMap{},
	}

	if def, ok := templates[sectionType]; ok {
		section.Content = deepCopyContent(def.DefaultData)
	}
	return section
}

func deepCopyContent(content models.ContentMap) models.ContentMap {
	copied := models.ContentMap{}
	for key, value := range content {
		copied[key] = deepCopyValue(value)
	}
	return copied
}

func deepCopyValue(value interface{}) interface{} {
	switch v := value.(type) {
	case models.ContentMap:
		return deepCopyContent(v)
	case map[string]interface{}:
		return map[string]interface{}(deepCopyContent(models.ContentMap(v)))
	case []interface{}:
		copied := make([]interface{}, len(v))
		for i, item := range v {
			copied[i] = deepCopyValue(item)
		}
		return copied
	default:
		return v
	}
}
