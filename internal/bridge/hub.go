package bridge

import (
	"encoding/json"
	"sync"

	"github.com/gorilla/websocket"

	"convite-premium-backend/internal/models"
	"convite-premium-backend/internal/service"
	"convite-premium-backend/pkg/logger"
	"convite-premium-backend/pkg/metrics"
)

// Hub fans outbound messages out to every attached host connection. It is
// the service layer's Broadcaster, so each successful mutation reaches every
// host without the services knowing about sockets.
type Hub struct {
	mu      sync.RWMutex
	clients map[*client]struct{}

	// onLayoutChanged runs before the broadcast (cache invalidation hook).
	onLayoutChanged func(layoutID string)
}

type client struct {
	conn *websocket.Conn
	mu   sync.Mutex
}

func NewHub() *Hub {
	return &Hub{
		clients: make(map[*client]struct{}),
	}
}

// OnLayoutChanged registers a hook run for every layout broadcast.
func (h *Hub) OnLayoutChanged(hook func(layoutID string)) {
	h.onLayoutChanged = hook
}

func (h *Hub) register(c *client) {
	h.mu.Lock()
	h.clients[c] = struct{}{}
	count := len(h.clients)
	h.mu.Unlock()

	metrics.BridgeConnections.Set(float64(count))
}

func (h *Hub) unregister(c *client) {
	h.mu.Lock()
	delete(h.clients, c)
	count := len(h.clients)
	h.mu.Unlock()

	metrics.BridgeConnections.Set(float64(count))
}

// ClientCount returns the number of attached hosts.
func (h *Hub) ClientCount() int {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return len(h.clients)
}

// LayoutChanged broadcasts the new snapshot to every attached host.
func (h *Hub) LayoutChanged(layout *models.EventLayout) {
	if h.onLayoutChanged != nil {
		h.onLayoutChanged(layout.ID)
	}
	h.broadcast(MessageEnvelope{
		Action:   ActionLayout,
		LayoutID: layout.ID,
		Data:     mustMarshal(layout),
	})
}

// Interaction forwards a guest interaction event to every attached host.
func (h *Hub) Interaction(event service.InteractionEvent) {
	metrics.InteractionEvents.WithLabelValues(event.Type).Inc()
	h.broadcast(MessageEnvelope{
		Action:   ActionInteraction,
		LayoutID: event.LayoutID,
		Data:     mustMarshal(event),
	})
}

func (h *Hub) broadcast(envelope MessageEnvelope) {
	h.mu.RLock()
	clients := make([]*client, 0, len(h.clients))
	for c := range h.clients {
		clients = append(clients, c)
	}
	h.mu.RUnlock()

	for _, c := range clients {
		c.send(envelope)
	}
}

func (c *client) send(envelope MessageEnvelope) {
	data, err := json.Marshal(envelope)
	if err != nil {
		logger.Error(err, "Failed to marshal bridge message", nil)
		return
	}

	c.mu.Lock()
	defer c.mu.Unlock()
	if err := c.conn.WriteMessage(websocket.TextMessage, data); err != nil {
		logger.Error(err, "Failed to send bridge message", nil)
	}
}
