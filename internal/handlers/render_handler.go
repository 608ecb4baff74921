package handlers

import (
	"net/http"
	"strconv"
	"sync"

	"convite-premium-backend/internal/config"
	"convite-premium-backend/internal/export"
	"convite-premium-backend/internal/models"
	"convite-premium-backend/internal/render"
	"convite-premium-backend/internal/sections"
	"convite-premium-backend/internal/service"
	"convite-premium-backend/pkg/cache"
	"convite-premium-backend/pkg/logger"
	"convite-premium-backend/pkg/metrics"

	"github.com/gin-gonic/gin"
)

// RenderHandler serves both composer surfaces over HTTP. The editor surface
// is the default; the public invitation is selected with ?mode=public. It
// also owns the per-layout splash gates, since the reveal transition is
// public-surface state rather than document state.
type RenderHandler struct {
	layoutService   *service.LayoutService
	externalService *service.ExternalService
	composer        *render.Composer
	exporter        *export.Exporter
	cache           *cache.Cache
	cfg             *config.Config

	mu    sync.Mutex
	gates map[string]*render.SplashGate // layoutID -> gate
}

func NewRenderHandler(
	layoutService *service.LayoutService,
	externalService *service.ExternalService,
	composer *render.Composer,
	exporter *export.Exporter,
	renderCache *cache.Cache,
	cfg *config.Config,
) *RenderHandler {
	return &RenderHandler{
		layoutService:   layoutService,
		externalService: externalService,
		composer:        composer,
		exporter:        exporter,
		cache:           renderCache,
		cfg:             cfg,
		gates:           make(map[string]*render.SplashGate),
	}
}

// RenderLayout composes the layout into HTML.
// GET /api/layouts/:id/render?mode=public&width=800
func (h *RenderHandler) RenderLayout(c *gin.Context) {
	layoutID := c.Param("id")
	layout, err := h.layoutService.GetByID(layoutID)
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "layout not found"})
		return
	}

	mode := sections.ModeEditor
	if c.Query("mode") == "public" {
		mode = sections.ModePublic
	}

	device := models.DeviceDesktop
	if widthStr := c.Query("width"); widthStr != "" {
		if width, err := strconv.ParseFloat(widthStr, 64); err == nil {
			device = render.DeviceForWidth(width)
		}
	}

	opts := render.ComposeOptions{
		Mode:   mode,
		Device: device,
	}

	if mode == sections.ModePublic {
		opts.External = h.externalService.StateFor(layoutID)
		opts.Gate = h.gate(layoutID)

		// Only the resting public surface is cacheable: gate state and the
		// editor selection vary per request.
		if opts.Gate.Opened() {
			if cached, err := h.cache.GetCachedRender(layoutID, string(device)); err == nil && cached != "" {
				metrics.RenderCacheHits.Inc()
				c.Data(http.StatusOK, "text/html; charset=utf-8", []byte(cached))
				return
			}
		}
	} else {
		opts.ActiveSectionID = h.layoutService.ActiveSection(layoutID)
	}

	html := h.composer.Compose(layout, opts)
	metrics.Renders.WithLabelValues(string(mode)).Inc()

	if mode == sections.ModePublic && opts.Gate.Opened() {
		if err := h.cache.CacheRender(layoutID, string(device), html); err != nil {
			logger.Warn("Failed to cache render", map[string]interface{}{"layout_id": layoutID})
		}
	}

	c.Data(http.StatusOK, "text/html; charset=utf-8", []byte(html))
}

// OpenInvitation starts the splash reveal and records the interaction.
// POST /api/layouts/:id/open
func (h *RenderHandler) OpenInvitation(c *gin.Context) {
	layoutID := c.Param("id")
	if err := h.layoutService.OpenInvitation(layoutID); err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "layout not found"})
		return
	}

	gate := h.gate(layoutID)
	gate.Open()

	c.JSON(http.StatusOK, gin.H{"gate": gate.State()})
}

// GateState reports the public reveal state.
// GET /api/layouts/:id/gate
func (h *RenderHandler) GateState(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"gate": h.gate(c.Param("id")).State()})
}

// ExportLayout downloads the invitation as one self-contained HTML document.
// GET /api/layouts/:id/export
func (h *RenderHandler) ExportLayout(c *gin.Context) {
	layoutID := c.Param("id")
	layout, err := h.layoutService.GetByID(layoutID)
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "layout not found"})
		return
	}

	result, err := h.exporter.Export(layout, h.externalService.StateFor(layoutID))
	if err != nil {
		logger.Error(err, "Failed to export layout", map[string]interface{}{"layout_id": layoutID})
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to export layout"})
		return
	}

	c.Header("Content-Disposition", `attachment; filename="`+result.Filename+`"`)
	c.Data(http.StatusOK, result.ContentType, result.Data)
}

// InvalidateRender drops cached public HTML for a layout. Wired as the hub's
// layout-changed hook.
func (h *RenderHandler) InvalidateRender(layoutID string) {
	if err := h.cache.InvalidateRender(layoutID); err != nil {
		logger.Warn("Failed to invalidate render cache", map[string]interface{}{"layout_id": layoutID})
	}
}

// DropGate releases the splash gate held for a layout, cancelling any
// pending reveal transition. Wired to layout deletion so the gate map does
// not accumulate entries for documents that no longer exist.
func (h *RenderHandler) DropGate(layoutID string) {
	h.mu.Lock()
	gate, ok := h.gates[layoutID]
	if ok {
		delete(h.gates, layoutID)
	}
	h.mu.Unlock()

	if ok {
		gate.Close()
	}
	h.InvalidateRender(layoutID)
}

func (h *RenderHandler) gate(layoutID string) *render.SplashGate {
	h.mu.Lock()
	defer h.mu.Unlock()

	gate, ok := h.gates[layoutID]
	if !ok {
		gate = render.NewSplashGate(h.cfg.SplashTransition, nil)
		h.gates[layoutID] = gate
	}
	return gate
}
