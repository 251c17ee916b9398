// Package server assembles the static site server: router, middleware,
// metrics exporter, and the optional scheduled refresh.
package server

import (
	"context"
	"log/slog"
	"net/http"

	"fbcw-data-service/internal/app"
	"fbcw-data-service/internal/config"
	httpserver "fbcw-data-service/internal/http"
	"fbcw-data-service/internal/metrics"
	"fbcw-data-service/internal/pipeline"
)

var metricsSetup = metrics.Setup

type refresher interface {
	Start(ctx context.Context)
	Stop(ctx context.Context) error
}

type Server struct {
	cfg           config.Config
	logger        *slog.Logger
	metrics       *metrics.Recorder
	httpServer    httpServer
	metricsServer httpServer
	refresher     refresher
	metricsStop   func(context.Context) error
}

// New constructs a server with default wiring. When scheduled refresh is
// enabled, the configured providers must be buildable; a missing credential
// surfaces here rather than at the first scheduled run.
func New(ctx context.Context, cfg config.Config, logger *slog.Logger) (*Server, error) {
	recorder, metricsSrv, metricsShutdown := buildMetrics(cfg, logger)

	var rfr refresher
	if cfg.Refresh.Enabled {
		league, stats, err := app.BuildProviders(ctx, cfg, logger, recorder)
		if err != nil {
			return nil, err
		}
		runner := pipeline.NewRunner(league, stats, cfg.DataDir, cfg.League, logger, recorder)
		rfr = NewRefresher(cfg.Refresh.Schedule, runner.Full, logger)
	}

	return newServerWithDeps(cfg, logger, recorder, buildHTTPServer(cfg, logger, recorder), metricsSrv, rfr, metricsShutdown), nil
}

// newServerWithDeps is used for testing to inject custom components.
func newServerWithDeps(cfg config.Config, logger *slog.Logger, recorder *metrics.Recorder, httpSrv httpServer, metricsSrv httpServer, rfr refresher, metricsStop func(context.Context) error) *Server {
	return &Server{
		cfg:           cfg,
		logger:        logger,
		metrics:       recorder,
		httpServer:    httpSrv,
		metricsServer: metricsSrv,
		refresher:     rfr,
		metricsStop:   metricsStop,
	}
}

func buildHTTPServer(cfg config.Config, logger *slog.Logger, recorder *metrics.Recorder) httpServer {
	handler := httpserver.NewHandler(cfg.DataDir, cfg.PublicDir, logger)
	router := httpserver.NewRouter(handler)
	wrapped := httpserver.LoggingMiddleware(logger, recorder, httpserver.NoCacheMiddleware(router))

	return netHTTPServer{srv: &http.Server{
		Addr:         ":" + cfg.Port,
		Handler:      wrapped,
		ReadTimeout:  readTimeout,
		WriteTimeout: writeTimeout,
		IdleTimeout:  idleTimeout,
	}}
}

func buildMetrics(cfg config.Config, logger *slog.Logger) (*metrics.Recorder, httpServer, func(context.Context) error) {
	recCfg := metrics.TelemetryConfig{
		Enabled:      cfg.Metrics.Enabled,
		Port:         cfg.Metrics.Port,
		ServiceName:  cfg.Metrics.ServiceName,
		OtlpEndpoint: cfg.Metrics.OtlpEndpoint,
		OtlpInsecure: cfg.Metrics.OtlpInsecure,
	}

	rec, handler, shutdown, err := metricsSetup(context.Background(), recCfg)
	if err != nil {
		if logger != nil {
			logger.Warn("metrics setup failed, continuing without telemetry", "error", err)
		}
		return metrics.NewRecorder(), nil, nil
	}

	var metricsSrv httpServer
	if handler != nil && recCfg.Enabled {
		metricsSrv = netHTTPServer{srv: &http.Server{
			Addr:    ":" + recCfg.Port,
			Handler: handler,
		}}
	}

	return rec, metricsSrv, shutdown
}

// Run starts the HTTP server and scheduled refresh, then waits for context
// cancellation to shut down gracefully.
func (s *Server) Run(ctx context.Context, stop context.CancelFunc) {
	s.startMetrics()
	s.startServer(stop)
	if s.refresher != nil {
		s.refresher.Start(ctx)
	}

	<-ctx.Done()
	if s.logger != nil {
		s.logger.Info("shutdown signal received")
	}

	s.gracefulShutdown()
}

func (s *Server) startServer(stop context.CancelFunc) {
	launchServer("http", s.httpServer, s.logger, func(err error) {
		if stop != nil {
			stop()
		}
	})
}

func (s *Server) startMetrics() {
	if s.metricsServer == nil {
		return
	}
	launchServer("metrics", s.metricsServer, s.logger, nil)
}

func (s *Server) gracefulShutdown() {
	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	if s.refresher != nil {
		if err := s.refresher.Stop(shutdownCtx); err != nil && s.logger != nil {
			s.logger.Warn("refresher shutdown failed", "error", err)
		}
	}

	if s.metricsStop != nil {
		if err := s.metricsStop(shutdownCtx); err != nil && s.logger != nil {
			s.logger.Warn("metrics shutdown failed", "error", err)
		}
	}

	if s.metricsServer != nil {
		if err := s.metricsServer.Shutdown(shutdownCtx); err != nil && s.logger != nil {
			s.logger.Warn("metrics server shutdown failed", "error", err)
		}
	}

	if err := s.httpServer.Shutdown(shutdownCtx); err != nil && s.logger != nil {
		s.logger.Error("graceful shutdown failed", "error", err)
	}

	if s.logger != nil {
		s.logger.Info("shutdown complete")
	}
}

func launchServer(name string, srv httpServer, logger *slog.Logger, onError func(error)) {
	go func() {
		if logger != nil {
			logger.Info("starting "+name+" server", slog.String("addr", srv.Addr()))
		}
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			if logger != nil {
				logger.Warn(name+" server failed", "error", err)
			}
			if onError != nil {
				onError(err)
			}
		}
	}()
}

// Handler exposes the HTTP handler (useful for tests).
func (s *Server) Handler() http.Handler {
	return s.httpServer.Handler()
}
