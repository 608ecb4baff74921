package service

import (
	"time"

	"convite-premium-backend/internal/models"
)

// Interaction event types broadcast to the embedding host.
const (
	EventClick            = "click"
	EventInvitationOpened = "invitation_opened"
	EventRSVPSubmit       = "rsvp_submit"
	EventGuestbookSubmit  = "guestbook_submit"
)

// InteractionEvent is one discrete guest interaction, forwarded to the host
// for tracking.
type InteractionEvent struct {
	Type      string                 `json:"type"`
	LayoutID  string                 `json:"layout_id"`
	Payload   map[string]interface{} `json:"payload,omitempty"`
	Timestamp time.Time              `json:"timestamp"`
}

// Broadcaster receives outbound notifications from the state controllers.
// Implementations must not call back into the services.
type Broadcaster interface {
	// LayoutChanged fires after every successful layout mutation with the
	// new snapshot.
	LayoutChanged(layout *models.EventLayout)
	// Interaction fires for every guest interaction event.
	Interaction(event InteractionEvent)
}

// NopBroadcaster discards every notification.
type NopBroadcaster struct{}

func (NopBroadcaster) LayoutChanged(*models.EventLayout) {}
func (NopBroadcaster) Interaction(InteractionEvent)      {}
