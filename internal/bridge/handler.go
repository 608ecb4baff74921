package bridge

import (
	"encoding/json"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"

	"convite-premium-backend/internal/service"
	"convite-premium-backend/pkg/logger"
	"convite-premium-backend/pkg/metrics"
)

var upgrader = websocket.Upgrader{
	CheckOrigin: func(r *http.Request) bool {
		// The HTTP layer enforces origins via CORS config; the bridge accepts
		// the upgrade and relies on the same deployment boundary.
		return true
	},
}

// Handler terminates host WebSocket connections and dispatches protocol
// commands to the state controllers.
type Handler struct {
	hub      *Hub
	layouts  *service.LayoutService
	external *service.ExternalService
}

func NewHandler(hub *Hub, layouts *service.LayoutService, external *service.ExternalService) *Handler {
	return &Handler{hub: hub, layouts: layouts, external: external}
}

// Attach upgrades the request and runs the read loop until the host detaches.
func (h *Handler) Attach(c *gin.Context) {
	conn, err := upgrader.Upgrade(c.Writer, c.Request, nil)
	if err != nil {
		logger.Error(err, "Failed to upgrade bridge connection", nil)
		return
	}

	cl := &client{conn: conn}
	h.hub.register(cl)
	defer func() {
		h.hub.unregister(cl)
		conn.Close()
	}()

	// Announce readiness so the host knows it may start sending commands.
	cl.send(MessageEnvelope{Action: ActionReady})

	for {
		_, message, err := conn.ReadMessage()
		if err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseNormalClosure) {
				logger.Warn("Bridge connection closed unexpectedly", map[string]interface{}{"error": err.Error()})
			}
			return
		}

		var envelope MessageEnvelope
		if err := json.Unmarshal(message, &envelope); err != nil {
			cl.send(errorEnvelope("", "", "malformed message"))
			continue
		}

		for _, response := range h.Dispatch(envelope) {
			cl.send(response)
		}
	}
}

// Dispatch executes one host command and returns the direct responses for
// the issuing connection. Layout broadcasts go through the hub separately.
func (h *Handler) Dispatch(envelope MessageEnvelope) []MessageEnvelope {
	metrics.BridgeCommands.WithLabelValues(envelope.Action).Inc()

	switch envelope.Action {
	case ActionLoadLayout:
		var payload LoadLayoutPayload
		if err := json.Unmarshal(envelope.Data, &payload); err != nil || payload.Layout == nil {
			return []MessageEnvelope{errorEnvelope(envelope.LayoutID, envelope.RequestID, "load_layout requires a layout")}
		}
		if _, err := h.layouts.Load(payload.Layout); err != nil {
			return []MessageEnvelope{errorEnvelope(envelope.LayoutID, envelope.RequestID, err.Error())}
		}
		return nil

	case ActionGetLayout, ActionRequestSave:
		layout, err := h.layouts.GetByID(envelope.LayoutID)
		if err != nil {
			return []MessageEnvelope{errorEnvelope(envelope.LayoutID, envelope.RequestID, "layout not found")}
		}
		action := ActionLayout
		if envelope.Action == ActionRequestSave {
			action = ActionSave
		}
		return []MessageEnvelope{{
			Action:    action,
			LayoutID:  layout.ID,
			RequestID: envelope.RequestID,
			Data:      mustMarshal(layout),
		}}

	case ActionUpdateSectionContent:
		var payload SectionContentPayload
		if err := json.Unmarshal(envelope.Data, &payload); err != nil {
			return []MessageEnvelope{errorEnvelope(envelope.LayoutID, envelope.RequestID, "malformed payload")}
		}
		if _, err := h.layouts.UpdateSectionContent(envelope.LayoutID, payload.SectionID, payload.Content); err != nil {
			return []MessageEnvelope{errorEnvelope(envelope.LayoutID, envelope.RequestID, err.Error())}
		}
		return nil

	case ActionUpdateSectionStyles:
		var payload SectionContentPayload
		if err := json.Unmarshal(envelope.Data, &payload); err != nil {
			return []MessageEnvelope{errorEnvelope(envelope.LayoutID, envelope.RequestID, "malformed payload")}
		}
		if _, err := h.layouts.UpdateSectionStyles(envelope.LayoutID, payload.SectionID, payload.Styles); err != nil {
			return []MessageEnvelope{errorEnvelope(envelope.LayoutID, envelope.RequestID, err.Error())}
		}
		return nil

	case ActionAddSection:
		var payload AddSectionPayload
		if err := json.Unmarshal(envelope.Data, &payload); err != nil {
			return []MessageEnvelope{errorEnvelope(envelope.LayoutID, envelope.RequestID, "malformed payload")}
		}
		if _, err := h.layouts.AddSection(envelope.LayoutID, payload.Type); err != nil {
			return []MessageEnvelope{errorEnvelope(envelope.LayoutID, envelope.RequestID, err.Error())}
		}
		return nil

	case ActionRemoveSection:
		var payload RemoveSectionPayload
		if err := json.Unmarshal(envelope.Data, &payload); err != nil {
			return []MessageEnvelope{errorEnvelope(envelope.LayoutID, envelope.RequestID, "malformed payload")}
		}
		if _, err := h.layouts.DeleteSection(envelope.LayoutID, payload.SectionID); err != nil {
			return []MessageEnvelope{errorEnvelope(envelope.LayoutID, envelope.RequestID, err.Error())}
		}
		return nil

	case ActionMoveSection:
		var payload MoveSectionPayload
		if err := json.Unmarshal(envelope.Data, &payload); err != nil {
			return []MessageEnvelope{errorEnvelope(envelope.LayoutID, envelope.RequestID, "malformed payload")}
		}
		if _, err := h.layouts.MoveSectionByID(envelope.LayoutID, payload.SectionID, payload.Direction); err != nil {
			return []MessageEnvelope{errorEnvelope(envelope.LayoutID, envelope.RequestID, err.Error())}
		}
		return nil

	case ActionSetExternalValue:
		var payload ExternalFieldPayload
		if err := json.Unmarshal(envelope.Data, &payload); err != nil || payload.SectionID == "" || payload.FieldKey == "" {
			return []MessageEnvelope{errorEnvelope(envelope.LayoutID, envelope.RequestID, "malformed payload")}
		}
		h.external.SetValue(envelope.LayoutID, payload.SectionID, payload.FieldKey, payload.Value)
		return nil

	case ActionGetExternalValue:
		var payload ExternalFieldPayload
		if err := json.Unmarshal(envelope.Data, &payload); err != nil {
			return []MessageEnvelope{errorEnvelope(envelope.LayoutID, envelope.RequestID, "malformed payload")}
		}
		value, found := h.external.Value(envelope.LayoutID, payload.SectionID, payload.FieldKey)
		return []MessageEnvelope{{
			Action:    ActionValue,
			LayoutID:  envelope.LayoutID,
			RequestID: envelope.RequestID,
			Data: mustMarshal(ExternalValueResponse{
				SectionID: payload.SectionID,
				FieldKey:  payload.FieldKey,
				Value:     value,
				Found:     found,
			}),
		}}

	case ActionSetExternalStatus:
		var payload ExternalFieldPayload
		if err := json.Unmarshal(envelope.Data, &payload); err != nil || payload.Status == nil {
			return []MessageEnvelope{errorEnvelope(envelope.LayoutID, envelope.RequestID, "malformed payload")}
		}
		h.external.SetStatus(envelope.LayoutID, payload.SectionID, payload.FieldKey, *payload.Status)
		return nil

	default:
		return []MessageEnvelope{errorEnvelope(envelope.LayoutID, envelope.RequestID, "unknown action: "+envelope.Action)}
	}
}

func errorEnvelope(layoutID, requestID, message string) MessageEnvelope {
	return MessageEnvelope{
		Action:    ActionError,
		LayoutID:  layoutID,
		RequestID: requestID,
		Data:      mustMarshal(ErrorPayload{Message: message}),
	}
}
