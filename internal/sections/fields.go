package sections

// FieldKind tags how a content field is edited and resolved. The kind lives
// in the descriptor table, so renderers and the property editor never infer
// it from the key name.
type FieldKind string

const (
	FieldText      FieldKind = "text"
	FieldMultiline FieldKind = "multiline"
	FieldColor     FieldKind = "color"
	FieldBool      FieldKind = "bool"
	FieldURL       FieldKind = "url"
	FieldEnum      FieldKind = "enum"
	FieldDateTime  FieldKind = "datetime"
	FieldList      FieldKind = "list"
	FieldSize      FieldKind = "size"
)

// FieldDescriptor describes one editable content key of a section template.
// Options constrains enum and size kinds; ItemFields describes the entries
// of a list kind.
type FieldDescriptor struct {
	Key        string            `json:"key"`
	Kind       FieldKind         `json:"kind"`
	Label      string            `json:"label"`
	Required   bool              `json:"required,omitempty"`
	Options    []string          `json:"options,omitempty"`
	ItemFields []FieldDescriptor `json:"item_fields,omitempty"`
}

// FieldByKey returns the descriptor for key among fields.
func FieldByKey(fields []FieldDescriptor, key string) (FieldDescriptor, bool) {
	for _, field := range fields {
		if field.Key == key {
			return field, true
		}
	}
	return FieldDescriptor{}, false
}
