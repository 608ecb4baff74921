package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// BridgeCommands counts host bridge commands by action.
	BridgeCommands = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "convite",
		Name:      "bridge_commands_total",
		Help:      "Host bridge commands processed, by action.",
	}, []string{"action"})

	// BridgeConnections tracks currently attached host connections.
	BridgeConnections = promauto.NewGauge(prometheus.GaugeOpts{
		Namespace: "convite",
		Name:      "bridge_connections",
		Help:      "Currently attached host bridge connections.",
	})

	// InteractionEvents counts guest interaction events by type.
	InteractionEvents = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "convite",
		Name:      "interaction_events_total",
		Help:      "Guest interaction events emitted, by type.",
	}, []string{"type"})

	// Renders counts composed documents by surface mode.
	Renders = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "convite",
		Name:      "renders_total",
		Help:      "Documents rendered, by mode.",
	}, []string{"mode"})

	// RenderCacheHits counts public render cache hits.
	RenderCacheHits = promauto.NewCounter(prometheus.CounterOpts{
		Namespace: "convite",
		Name:      "render_cache_hits_total",
		Help:      "Public renders served from the cache.",
	})
)
