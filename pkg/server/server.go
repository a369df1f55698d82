package server

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	batchhandler "github.com/de-tools/video-curator/pkg/handlers/batch"
	curatorhandler "github.com/de-tools/video-curator/pkg/handlers/curator"
	"github.com/de-tools/video-curator/pkg/handlers/health"
	curatormiddleware "github.com/de-tools/video-curator/pkg/server/middleware"
	"github.com/de-tools/video-curator/pkg/services/curator"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/rs/zerolog"
)

const defaultShutdownTimeout = 10 * time.Second

type WebAPI struct {
	router          *chi.Mux
	logger          *zerolog.Logger
	server          *http.Server
	shutdownTimeout time.Duration
}

type Dependencies struct {
	Curator curator.Curator
	Runner  batchhandler.Runner
	// DB is pinged by /healthz; leave nil to skip the check.
	DB     health.Pinger
	Logger zerolog.Logger
}

type Config struct {
	Addr            string
	ShutdownTimeout time.Duration
	APIKey          string
	Dependencies    Dependencies
}

func ConfigureRouter(config Config) *chi.Mux {
	logger := config.Dependencies.Logger
	curatorHandler := curatorhandler.NewHandler(config.Dependencies.Curator)
	batchHandler := batchhandler.NewHandler(config.Dependencies.Runner)
	healthHandler := health.NewHandler(config.Dependencies.DB)

	router := chi.NewRouter()

	router.Use(middleware.RequestID)
	router.Use(curatormiddleware.Logger(&logger))
	router.Use(curatormiddleware.Metrics())
	router.Use(curatormiddleware.Recoverer)

	router.Get("/healthz", healthHandler.Check)
	router.Handle("/metrics", promhttp.Handler())

	router.Route("/api/v1", func(r chi.Router) {
		r.Use(curatormiddleware.BearerAuth(config.APIKey))
		r.Post("/curate", curatorHandler.Curate)
		r.Post("/batch", batchHandler.RunBatch)
	})

	return router
}

func NewWebAPI(config Config) *WebAPI {
	router := ConfigureRouter(config)
	logger := config.Dependencies.Logger

	shutdownTimeout := config.ShutdownTimeout
	if shutdownTimeout <= 0 {
		shutdownTimeout = defaultShutdownTimeout
	}

	return &WebAPI{
		router: router,
		logger: &logger,
		server: &http.Server{
			Addr:              config.Addr,
			Handler:           router,
			ReadHeaderTimeout: 10 * time.Second,
		},
		shutdownTimeout: shutdownTimeout,
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

		// Give outstanding requests a deadline for completion.
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
