package bridge

import (
	"encoding/json"
	"testing"

	"convite-premium-backend/internal/models"
	"convite-premium-backend/internal/repository"
	"convite-premium-backend/internal/service"
)

func newTestHandler(t *testing.T) (*Handler, *service.LayoutService, string) {
	t.Helper()

	hub := NewHub()
	layouts := service.NewLayoutService(repository.NewLayoutRepository(), hub)
	external := service.NewExternalService()
	handler := NewHandler(hub, layouts, external)

	layout, err := layouts.Load(&models.EventLayout{Name: "Teste", Language: "pt-BR"})
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	return handler, layouts, layout.ID
}

func command(t *testing.T, action, layoutID, requestID string, payload interface{}) MessageEnvelope {
	t.Helper()

	data, err := json.Marshal(payload)
	if err != nil {
		t.Fatalf("marshal payload: %v", err)
	}
	return MessageEnvelope{Action: action, LayoutID: layoutID, RequestID: requestID, Data: data}
}

func TestDispatch_AddRemoveMoveSection(t *testing.T) {
	handler, layouts, layoutID := newTestHandler(t)

	if responses := handler.Dispatch(command(t, ActionAddSection, layoutID, "", AddSectionPayload{Type: models.HeroSection})); len(responses) != 0 {
		t.Fatalf("expected no direct response, got %v", responses)
	}
	handler.Dispatch(command(t, ActionAddSection, layoutID, "", AddSectionPayload{Type: models.AgendaSection}))

	layout, _ := layouts.GetByID(layoutID)
	if len(layout.Sections) != 2 {
		t.Fatalf("expected 2 sections, got %d", len(layout.Sections))
	}
	agendaID := layout.Sections[1].ID

	handler.Dispatch(command(t, ActionMoveSection, layoutID, "", MoveSectionPayload{SectionID: agendaID, Direction: "up"}))
	layout, _ = layouts.GetByID(layoutID)
	if layout.Sections[0].ID != agendaID {
		t.Fatal("expected agenda moved to the top")
	}

	handler.Dispatch(command(t, ActionRemoveSection, layoutID, "", RemoveSectionPayload{SectionID: agendaID}))
	layout, _ = layouts.GetByID(layoutID)
	if len(layout.Sections) != 1 {
		t.Fatalf("expected 1 section after remove, got %d", len(layout.Sections))
	}
}

func TestDispatch_DuplicateDeliveryIsHarmless(t *testing.T) {
	handler, layouts, layoutID := newTestHandler(t)

	handler.Dispatch(command(t, ActionAddSection, layoutID, "", AddSectionPayload{Type: models.HeroSection}))
	layout, _ := layouts.GetByID(layoutID)
	heroID := layout.Sections[0].ID

	remove := command(t, ActionRemoveSection, layoutID, "", RemoveSectionPayload{SectionID: heroID})
	handler.Dispatch(remove)
	handler.Dispatch(remove) // redelivery

	layout, _ = layouts.GetByID(layoutID)
	if len(layout.Sections) != 0 {
		t.Fatalf("expected empty layout, got %d sections", len(layout.Sections))
	}

	patch := command(t, ActionUpdateSectionContent, layoutID, "", SectionContentPayload{
		SectionID: heroID,
		Content:   models.ContentMap{"title": "x"},
	})
	for i := 0; i < 2; i++ {
		if responses := handler.Dispatch(patch); len(responses) != 0 {
			t.Fatalf("expected patch of a removed section to be a silent no-op, got %v", responses)
		}
	}
}

func TestDispatch_GetLayoutAndRequestSave(t *testing.T) {
	handler, _, layoutID := newTestHandler(t)

	responses := handler.Dispatch(MessageEnvelope{Action: ActionGetLayout, LayoutID: layoutID, RequestID: "req-1"})
	if len(responses) != 1 {
		t.Fatalf("expected 1 response, got %d", len(responses))
	}
	if responses[0].Action != ActionLayout || responses[0].RequestID != "req-1" {
		t.Fatalf("unexpected response %+v", responses[0])
	}

	var layout models.EventLayout
	if err := json.Unmarshal(responses[0].Data, &layout); err != nil {
		t.Fatalf("response data is not a layout: %v", err)
	}
	if layout.ID != layoutID {
		t.Fatalf("expected layout %s, got %s", layoutID, layout.ID)
	}

	saves := handler.Dispatch(MessageEnvelope{Action: ActionRequestSave, LayoutID: layoutID, RequestID: "req-2"})
	if len(saves) != 1 || saves[0].Action != ActionSave || saves[0].RequestID != "req-2" {
		t.Fatalf("unexpected save response %+v", saves)
	}
}

func TestDispatch_LoadLayout(t *testing.T) {
	handler, layouts, _ := newTestHandler(t)

	incoming := &models.EventLayout{
		ID:       "host-layout",
		Name:     "Casamento Ana & Pedro",
		Language: "pt-BR",
		Sections: []models.Section{{ID: "s1", Type: models.HeroSection}},
	}
	responses := handler.Dispatch(command(t, ActionLoadLayout, "", "", LoadLayoutPayload{Layout: incoming}))
	if len(responses) != 0 {
		t.Fatalf("expected no direct response, got %v", responses)
	}

	loaded, err := layouts.GetByID("host-layout")
	if err != nil {
		t.Fatalf("expected loaded layout stored: %v", err)
	}
	if len(loaded.Sections) != 1 || loaded.Sections[0].Type != models.HeroSection {
		t.Fatal("expected the host document stored verbatim")
	}

	missing := handler.Dispatch(MessageEnvelope{Action: ActionLoadLayout, Data: json.RawMessage(`{}`)})
	if len(missing) != 1 || missing[0].Action != ActionError {
		t.Fatalf("expected error for empty load, got %v", missing)
	}
}

func TestDispatch_ExternalFieldRoundTrip(t *testing.T) {
	handler, _, layoutID := newTestHandler(t)

	set := command(t, ActionSetExternalValue, layoutID, "", ExternalFieldPayload{
		SectionID: "rsvp-1",
		FieldKey:  "name",
		Value:     "Maria Silva",
	})
	if responses := handler.Dispatch(set); len(responses) != 0 {
		t.Fatalf("expected no direct response, got %v", responses)
	}

	get := command(t, ActionGetExternalValue, layoutID, "req-9", ExternalFieldPayload{
		SectionID: "rsvp-1",
		FieldKey:  "name",
	})
	responses := handler.Dispatch(get)
	if len(responses) != 1 || responses[0].Action != ActionValue || responses[0].RequestID != "req-9" {
		t.Fatalf("unexpected response %v", responses)
	}

	var value ExternalValueResponse
	if err := json.Unmarshal(responses[0].Data, &value); err != nil {
		t.Fatalf("unmarshal value response: %v", err)
	}
	if !value.Found || value.Value != "Maria Silva" {
		t.Fatalf("expected stored value back, got %+v", value)
	}

	status := command(t, ActionSetExternalStatus, layoutID, "", ExternalFieldPayload{
		SectionID: "rsvp-1",
		FieldKey:  "name",
		Status:    &models.FieldStatus{ReadOnly: true},
	})
	if responses := handler.Dispatch(status); len(responses) != 0 {
		t.Fatalf("expected no direct response, got %v", responses)
	}
}

func TestDispatch_UnknownActionAndMalformedPayload(t *testing.T) {
	handler, _, layoutID := newTestHandler(t)

	responses := handler.Dispatch(MessageEnvelope{Action: "explode", LayoutID: layoutID})
	if len(responses) != 1 || responses[0].Action != ActionError {
		t.Fatalf("expected error for unknown action, got %v", responses)
	}

	responses = handler.Dispatch(MessageEnvelope{
		Action:   ActionAddSection,
		LayoutID: layoutID,
		Data:     json.RawMessage(`{"type":`),
	})
	if len(responses) != 1 || responses[0].Action != ActionError {
		t.Fatalf("expected error for malformed payload, got %v", responses)
	}
}
