package models

// FieldStatus carries host-supplied display flags for one form field.
type FieldStatus struct {
	Hidden   bool `json:"hidden,omitempty"`
	Disabled bool `json:"disabled,omitempty"`
	ReadOnly bool `json:"read_only,omitempty"`
}

// ExternalInputState is the overlay an embedding host uses to prefill or lock
// public-mode form fields without mutating the stored layout. Values take
// precedence over section content, which takes precedence over template
// defaults.
type ExternalInputState struct {
	Values   map[string]map[string]interface{} `json:"values"`
	Statuses map[string]map[string]FieldStatus `json:"statuses"`
}

// NewExternalInputState returns an empty overlay.
func NewExternalInputState() *ExternalInputState {
	return &ExternalInputState{
		Values:   make(map[string]map[string]interface{}),
		Statuses: make(map[string]map[string]FieldStatus),
	}
}

// Clone returns a deep copy of the overlay.
func (s *ExternalInputState) Clone() *ExternalInputState {
	cloned := NewExternalInputState()
	if s == nil {
		return cloned
	}
	for sectionID, fields := range s.Values {
		copied := make(map[string]interface{}, len(fields))
		for key, value := range fields {
			copied[key] = value
		}
		cloned.Values[sectionID] = copied
	}
	for sectionID, fields := range s.Statuses {
		copied := make(map[string]FieldStatus, len(fields))
		for key, status := range fields {
			copied[key] = status
		}
		cloned.Statuses[sectionID] = copied
	}
	return cloned
}

// SetValue records a host-supplied value for (sectionID, fieldKey).
func (s *ExternalInputState) SetValue(sectionID, fieldKey string, value interface{}) {
	if s.Values == nil {
		s.Values = make(map[string]map[string]interface{})
	}
	fields, ok := s.Values[sectionID]
	if !ok {
		fields = make(map[string]interface{})
		s.Values[sectionID] = fields
	}
	fields[fieldKey] = value
}

// Value returns the host-supplied value for (sectionID, fieldKey) if present.
func (s *ExternalInputState) Value(sectionID, fieldKey string) (interface{}, bool) {
	if s == nil || s.Values == nil {
		return nil, false
	}
	fields, ok := s.Values[sectionID]
	if !ok {
		return nil, false
	}
	value, ok := fields[fieldKey]
	return value, ok
}

// ValuesFor returns all host-supplied values for a section. The returned map
// is the live overlay entry and must not be mutated by callers.
func (s *ExternalInputState) ValuesFor(sectionID string) map[string]interface{} {
	if s == nil || s.Values == nil {
		return nil
	}
	return s.Values[sectionID]
}

// SetStatus records display flags for (sectionID, fieldKey).
func (s *ExternalInputState) SetStatus(sectionID, fieldKey string, status FieldStatus) {
	if s.Statuses == nil {
		s.Statuses = make(map[string]map[string]FieldStatus)
	}
	fields, ok := s.Statuses[sectionID]
	if !ok {
		fields = make(map[string]FieldStatus)
		s.Statuses[sectionID] = fields
	}
	fields[fieldKey] = status
}

// Status returns the display flags for (sectionID, fieldKey); the zero value
// means the field renders normally.
func (s *ExternalInputState) Status(sectionID, fieldKey string) FieldStatus {
	if s == nil || s.Statuses == nil {
		return FieldStatus{}
	}
	return s.Statuses[sectionID][fieldKey]
}
