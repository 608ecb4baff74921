package bridge

import (
	"encoding/json"

	"convite-premium-backend/internal/models"
)

// Inbound command actions. The embedding host drives the editor exclusively
// through these; delivering a command twice must leave the document in the
// same state as delivering it once.
const (
	ActionLoadLayout           = "load_layout"
	ActionGetLayout            = "get_layout"
	ActionUpdateSectionContent = "update_section_content"
	ActionUpdateSectionStyles  = "update_section_styles"
	ActionRequestSave          = "request_save"
	ActionAddSection           = "add_section"
	ActionRemoveSection        = "remove_section"
	ActionMoveSection          = "move_section"
	ActionSetExternalValue     = "set_external_value"
	ActionGetExternalValue     = "get_external_value"
	ActionSetExternalStatus    = "set_external_status"
)

// Outbound message actions.
const (
	ActionReady       = "ready"
	ActionLayout      = "layout"
	ActionSave        = "save"
	ActionInteraction = "interaction"
	ActionValue       = "value"
	ActionError       = "error"
)

// MessageEnvelope is one multiplexed bridge message in either direction.
// RequestID is echoed on responses so the host can correlate request/response
// pairs (get_layout, get_external_value, request_save).
type MessageEnvelope struct {
	Action    string          `json:"action"`
	LayoutID  string          `json:"layout_id,omitempty"`
	RequestID string          `json:"request_id,omitempty"`
	Data      json.RawMessage `json:"data,omitempty"`
}

// LoadLayoutPayload carries a full document for load_layout.
type LoadLayoutPayload struct {
	Layout *models.EventLayout `json:"layout"`
}

// SectionContentPayload patches one section's content or styles.
type SectionContentPayload struct {
	SectionID string            `json:"section_id"`
	Content   models.ContentMap `json:"content,omitempty"`
	Styles    models.StyleMap   `json:"styles,omitempty"`
}

// AddSectionPayload creates a section over the bridge.
type AddSectionPayload struct {
	Type models.SectionType `json:"type"`
}

// RemoveSectionPayload deletes a section by id.
type RemoveSectionPayload struct {
	SectionID string `json:"section_id"`
}

// MoveSectionPayload moves a section one step.
type MoveSectionPayload struct {
	SectionID string `json:"section_id"`
	Direction string `json:"direction"` // "up" or "down"
}

// ExternalFieldPayload addresses one external form field, optionally with a
// value or display status.
type ExternalFieldPayload struct {
	SectionID string              `json:"section_id"`
	FieldKey  string              `json:"field_key"`
	Value     interface{}         `json:"value,omitempty"`
	Status    *models.FieldStatus `json:"status,omitempty"`
}

// ExternalValueResponse answers get_external_value.
type ExternalValueResponse struct {
	SectionID string      `json:"section_id"`
	FieldKey  string      `json:"field_key"`
	Value     interface{} `json:"value"`
	Found     bool        `json:"found"`
}

// ErrorPayload carries a command failure back to the host.
type ErrorPayload struct {
	Message string `json:"message"`
}

func mustMarshal(v interface{}) json.RawMessage {
	data, err := json.Marshal(v)
	if err != nil {
		return json.RawMessage(`{}`)
	}
	return data
}
