package app

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"convite-premium-backend/internal/bridge"
	"convite-premium-backend/internal/config"
	"convite-premium-backend/internal/export"
	"convite-premium-backend/internal/handlers"
	"convite-premium-backend/internal/middleware"
	"convite-premium-backend/internal/render"
	"convite-premium-backend/internal/repository"
	"convite-premium-backend/internal/sections"
	"convite-premium-backend/internal/service"
	"convite-premium-backend/pkg/cache"
	"convite-premium-backend/pkg/lang"
	"convite-premium-backend/pkg/logger"
	"convite-premium-backend/pkg/validator"
)

type Application struct {
	cfg *config.Config

	cache *cache.Cache
	hub   *bridge.Hub

	repositories repositoryContainer
	services     serviceContainer
	handlers     handlerContainer

	router *gin.Engine
	server *http.Server
}

type repositoryContainer struct {
	Layout repository.LayoutRepository
	Page   repository.PageRepository
}

type serviceContainer struct {
	Layout   *service.LayoutService
	Canvas   *service.CanvasService
	External *service.ExternalService
}

type handlerContainer struct {
	Layout      *handlers.LayoutHandler
	Canvas      *handlers.CanvasHandler
	Render      *handlers.RenderHandler
	Builder     *handlers.BuilderHandler
	Interaction *handlers.InteractionHandler
	External    *handlers.ExternalHandler
	Bridge      *bridge.Handler
}

func New(cfg *config.Config) (*Application, error) {
	if cfg == nil {
		return nil, fmt.Errorf("config is required")
	}

	app := &Application{
		cfg: cfg,
		hub: bridge.NewHub(),
	}

	if err := app.initCache(); err != nil {
		return nil, err
	}
	app.initRepositories()
	app.initServices()
	app.initHandlers()
	app.initRouter()

	app.server = &http.Server{
		Addr:           ":" + cfg.Port,
		Handler:        app.router,
		ReadTimeout:    10 * time.Second,
		WriteTimeout:   10 * time.Second,
		MaxHeaderBytes: 1 << 20,
	}

	return app, nil
}

func (a *Application) Run() error {
	logger.Info("Server starting", map[string]interface{}{
		"port":        a.cfg.Port,
		"environment": a.cfg.Environment,
	})

	return a.server.ListenAndServe()
}

func (a *Application) Shutdown(ctx context.Context) error {
	if a.server != nil {
		if err := a.server.Shutdown(ctx); err != nil {
			return err
		}
	}

	if a.cache != nil {
		if err := a.cache.Close(); err != nil {
			logger.Error(err, "Failed to close cache connection", nil)
		}
	}

	return nil
}

func (a *Application) Router() *gin.Engine {
	return a.router
}

func (a *Application) initCache() error {
	renderCache, err := cache.NewCache(a.cfg.RedisURL, a.cfg.EnableCache)
	if err != nil {
		return fmt.Errorf("failed to initialize cache: %w", err)
	}
	a.cache = renderCache
	return nil
}

func (a *Application) initRepositories() {
	a.repositories = repositoryContainer{
		Layout: repository.NewLayoutRepository(),
		Page:   repository.NewPageRepository(),
	}
}

func (a *Application) initServices() {
	a.services = serviceContainer{
		Layout:   service.NewLayoutService(a.repositories.Layout, a.hub),
		Canvas:   service.NewCanvasService(a.repositories.Page),
		External: service.NewExternalService(),
	}
}

func (a *Application) initHandlers() {
	composer := render.NewComposer(sections.DefaultRegistry(), validator.SanitizeHTML, lang.Translate)
	exporter := export.NewExporter(composer)

	renderHandler := handlers.NewRenderHandler(
		a.services.Layout,
		a.services.External,
		composer,
		exporter,
		a.cache,
		a.cfg,
	)

	// Every committed mutation drops the cached public HTML before the new
	// snapshot reaches attached hosts.
	a.hub.OnLayoutChanged(renderHandler.InvalidateRender)

	// Deleting a layout releases its splash gate and external overlay.
	a.services.Layout.OnDeleted(func(layoutID string) {
		renderHandler.DropGate(layoutID)
		a.services.External.Clear(layoutID)
	})

	a.handlers = handlerContainer{
		Layout:      handlers.NewLayoutHandler(a.services.Layout),
		Canvas:      handlers.NewCanvasHandler(a.services.Canvas),
		Render:      renderHandler,
		Builder:     handlers.NewBuilderHandler(a.services.Layout),
		Interaction: handlers.NewInteractionHandler(a.services.Layout),
		External:    handlers.NewExternalHandler(a.services.External),
		Bridge:      bridge.NewHandler(a.hub, a.services.Layout, a.services.External),
	}
}

func (a *Application) initRouter() {
	if a.cfg.Environment == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(logger.GinLogger())
	if a.cfg.EnableMetrics {
		router.Use(middleware.MetricsMiddleware())
	}

	router.Use(cors.New(cors.Config{
		AllowOrigins:     a.cfg.CORSOrigins,
		AllowMethods:     []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type"},
		ExposeHeaders:    []string{"Content-Length", "Content-Disposition"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	router.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"status": "healthy",
			"time":   time.Now().Format(time.RFC3339),
		})
	})

	if a.cfg.EnableMetrics {
		router.GET("/metrics", gin.WrapH(promhttp.Handler()))
	}

	router.GET("/ws", a.handlers.Bridge.Attach)

	api := router.Group("/api")
	{
		api.GET("/builder/config", a.handlers.Builder.GetBuilderConfig)
		api.GET("/templates", a.handlers.Layout.ListTemplates)

		api.POST("/layouts", a.handlers.Layout.CreateLayout)
		api.PUT("/layouts", a.handlers.Layout.LoadLayout)

		layouts := api.Group("/layouts/:id")
		{
			layouts.GET("", a.handlers.Layout.GetLayout)
			layouts.DELETE("", a.handlers.Layout.DeleteLayout)
			layouts.PATCH("/settings", a.handlers.Layout.UpdateSettings)
			layouts.PATCH("/styles", a.handlers.Layout.UpdateGlobalStyles)
			layouts.PUT("/active-section", a.handlers.Layout.SetActiveSection)

			layouts.POST("/sections", a.handlers.Layout.AddSection)
			layouts.POST("/sections/move", a.handlers.Layout.MoveSection)
			layouts.POST("/sections/reorder", a.handlers.Layout.ReorderSections)
			layouts.DELETE("/sections/:sectionId", a.handlers.Layout.DeleteSection)
			layouts.PATCH("/sections/:sectionId/content", a.handlers.Layout.UpdateSectionContent)
			layouts.PATCH("/sections/:sectionId/styles", a.handlers.Layout.UpdateSectionStyles)
			layouts.POST("/sections/:sectionId/duplicate", a.handlers.Layout.DuplicateSection)
			layouts.POST("/sections/:sectionId/visibility", a.handlers.Layout.ToggleSectionVisibility)

			layouts.GET("/render", a.handlers.Render.RenderLayout)
			layouts.GET("/gate", a.handlers.Render.GateState)
			layouts.POST("/open", a.handlers.Render.OpenInvitation)
			layouts.GET("/export", a.handlers.Render.ExportLayout)

			layouts.POST("/rsvp", a.handlers.Interaction.SubmitRSVP)
			layouts.POST("/guestbook", a.handlers.Interaction.SubmitGuestbook)
			layouts.POST("/clicks", a.handlers.Interaction.RecordClick)

			layouts.PUT("/external/values", a.handlers.External.SetFieldValue)
			layouts.GET("/external/values", a.handlers.External.GetFieldValue)
			layouts.PUT("/external/statuses", a.handlers.External.SetFieldStatus)
		}

		api.POST("/pages", a.handlers.Canvas.CreatePage)
		pages := api.Group("/pages/:id")
		{
			pages.GET("", a.handlers.Canvas.GetPage)
			pages.POST("/nodes", a.handlers.Canvas.AddNode)
			pages.PATCH("/nodes/:nodeId", a.handlers.Canvas.UpdateNode)
			pages.POST("/nodes/delete", a.handlers.Canvas.DeleteNodes)
			pages.POST("/nodes/move", a.handlers.Canvas.MoveNodes)
			pages.POST("/selection", a.handlers.Canvas.Select)
		}
	}

	a.router = router
}
