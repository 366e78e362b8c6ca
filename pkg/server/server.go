package server

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	handlers "github.com/de-tools/destiny-report/pkg/handlers/session"
	"github.com/de-tools/destiny-report/pkg/services/report"
	"github.com/de-tools/destiny-report/pkg/services/session"

	destinymiddleware "github.com/de-tools/destiny-report/pkg/server/middleware"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/rs/zerolog"
)

type WebAPI struct {
	router          http.Handler
	logger          *zerolog.Logger
	server          *http.Server
	shutdownTimeout time.Duration
}

type Dependencies struct {
	Sessions session.Registry
	Reports  report.Client
	// Drafts is optional.
	Drafts  session.DraftStore
	Logger  zerolog.Logger
	Metrics *destinymiddleware.Metrics
	// Gatherer serves /metrics; nil disables the endpoint.
	Gatherer prometheus.Gatherer
}

type Config struct {
	Addr            string
	ShutdownTimeout time.Duration
	CorsOrigins     []string
	Dependencies    Dependencies
}

func ConfigureRouter(config Config) http.Handler {
	deps := config.Dependencies
	h := handlers.NewHandler(deps.Sessions, deps.Reports, deps.Drafts)

	router := chi.NewRouter()

	router.Use(middleware.RequestID)
	router.Use(destinymiddleware.Logger(&deps.Logger))
	router.Use(middleware.Recoverer)
	router.Use(cors.Handler(cors.Options{
		AllowedOrigins:   config.CorsOrigins,
		AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type", "X-Request-Id"},
		ExposedHeaders:   []string{"Content-Disposition", "Link"},
		AllowCredentials: false,
		MaxAge:           300,
	}))
	if deps.Metrics != nil {
		router.Use(deps.Metrics.Handler)
	}

	if deps.Gatherer != nil {
		router.Handle("/metrics", promhttp.HandlerFor(deps.Gatherer, promhttp.HandlerOpts{}))
	}
	router.Get("/health", h.Health)

	router.Route("/api/v1", func(r chi.Router) {
		r.Get("/health", h.Health)

		r.Get("/lookup/planets/{planet}", h.GetPlanet)
		r.Get("/lookup/nakshatras/{nakshatra}", h.GetNakshatra)
		r.Get("/lookup/directions/{direction}", h.GetDirection)

		r.Get("/drafts", h.ListDrafts)
		r.Delete("/drafts/{draft}", h.DeleteDraft)

		r.Post("/sessions", h.CreateSession)
		r.Get("/sessions", h.ListSessions)
		r.Route("/sessions/{session}", func(r chi.Router) {
			r.Get("/", h.GetSession)
			r.Delete("/", h.DeleteSession)

			r.Get("/form", h.GetForm)
			r.Get("/fields/{field}", h.GetField)
			r.Put("/fields/{field}", h.SetField)

			r.Post("/house-aspects", h.AddHouseAspect)
			r.Put("/house-aspects/{aspect}", h.SetHouseAspect)
			r.Delete("/house-aspects/{aspect}", h.RemoveHouseAspect)
			r.Post("/house-aspects/{aspect}/groups", h.AddHouseGroup)
			r.Put("/house-aspects/{aspect}/groups/{group}", h.SetHouseGroup)
			r.Delete("/house-aspects/{aspect}/groups/{group}", h.RemoveHouseGroup)

			r.Post("/planet-aspects", h.AddPlanetAspect)
			r.Put("/planet-aspects/{aspect}", h.SetPlanetAspect)
			r.Delete("/planet-aspects/{aspect}", h.RemovePlanetAspect)
			r.Post("/planet-aspects/{aspect}/groups", h.AddPlanetGroup)
			r.Put("/planet-aspects/{aspect}/groups/{group}", h.SetPlanetGroup)
			r.Delete("/planet-aspects/{aspect}/groups/{group}", h.RemovePlanetGroup)

			r.Post("/removals/{removal}/slots", h.AddDirectionSlot)
			r.Put("/removals/{removal}/slots/{slot}", h.SetRemovalDirection)
			r.Delete("/removals/{removal}/slots/{slot}", h.RemoveDirectionSlot)
			r.Put("/placements/{placement}", h.SetPlacementDirection)

			r.Post("/relations/{relation}", h.AddRelationLink)
			r.Put("/relations/{relation}/{link}", h.SetRelationLink)
			r.Delete("/relations/{relation}/{link}", h.RemoveRelationLink)

			r.Post("/house-maps", h.AddHouseMap)
			r.Post("/house-maps/upload", h.UploadHouseMap)
			r.Delete("/house-maps/{map}", h.RemoveHouseMap)
			r.Put("/house-maps/{map}/rooms/{room}", h.SetRoomDirection)

			r.Post("/kundli", h.UploadKundli)
			r.Post("/preview", h.Preview)
			r.Post("/export", h.Export)

			r.Post("/draft", h.SaveDraft)
			r.Post("/drafts/{draft}/restore", h.RestoreDraft)
		})
	})

	return router
}

func NewWebAPI(logger zerolog.Logger, config Config) *WebAPI {
	config.Dependencies.Logger = logger
	router := ConfigureRouter(config)

	timeout := config.ShutdownTimeout
	if timeout <= 0 {
		timeout = 10 * time.Second
	}

	return &WebAPI{
		router:          router,
		logger:          &logger,
		shutdownTimeout: timeout,
		server: &http.Server{
			Addr:              config.Addr,
			Handler:           router,
			ReadHeaderTimeout: 10 * time.Second,
		},
	}
}

func (w *WebAPI) Start() error {
	serverErrors := make(chan error, 1)
	shutdown := make(chan os.Signal, 1)
	signal.Notify(shutdown, os.Interrupt, syscall.SIGTERM)

	go func() {
		w.logger.Info().Str("addr", w.server.Addr).Msg("starting server")
		serverErrors <- w.server.ListenAndServe()
	}()

	select {
	case err := <-serverErrors:
		return err
	case <-shutdown:
		w.logger.Info().Msg("shutdown initiated")

		// Give outstanding exports a deadline for completion.
		ctx, cancel := context.WithTimeout(context.Background(), w.shutdownTimeout)
		defer cancel()

		err := w.server.Shutdown(ctx)
		if err != nil {
			w.logger.Error().Err(err).Msg("graceful shutdown failed")
			err = w.server.Close()
		}

		if err != nil {
			return err
		}
	}

	return nil
}
