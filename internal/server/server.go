// Package server exposes the metric catalog and evaluator over HTTP.
package server

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/huangsam/mktcalc/internal/contract"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"
)

// ShutdownTimeout bounds how long in-flight requests may run after the server is asked to stop.
const ShutdownTimeout = 5 * time.Second

// maxBodyBytes caps request bodies for the evaluation endpoints.
const maxBodyBytes = 1 << 20

// Server wires the evaluator into a chi router with logging and metrics.
type Server struct {
	evaluator contract.Evaluator
	log       *zap.Logger
	metrics   *Metrics
	gatherer  prometheus.Gatherer
	workers   int
}

// New builds a Server. A nil registry selects the Prometheus default registry.
func New(evaluator contract.Evaluator, log *zap.Logger, registry *prometheus.Registry, workers int) *Server {
	var (
		registerer prometheus.Registerer = prometheus.DefaultRegisterer
		gatherer   prometheus.Gatherer   = prometheus.DefaultGatherer
	)
	if registry != nil {
		registerer, gatherer = registry, registry
	}
	if log == nil {
		log = zap.NewNop()
	}
	if workers <= 0 {
		workers = contract.DefaultWorkers
	}
	return &Server{
		evaluator: evaluator,
		log:       log,
		metrics:   NewMetrics(registerer),
		gatherer:  gatherer,
		workers:   workers,
	}
}

// Handler returns the HTTP routes of the API.
func (s *Server) Handler() http.Handler {
	r := chi.NewRouter()
	r.Use(requestIDMiddleware)
	// Logging wraps recover so panics are logged and counted as 500s
	r.Use(s.loggingMiddleware)
	r.Use(s.recoverMiddleware)

	r.Get("/healthz", func(w http.ResponseWriter, _ *http.Request) {
		writeSuccess(w, http.StatusOK, map[string]string{"status": "ok"})
	})
	r.Handle("/metrics", promhttp.HandlerFor(s.gatherer, promhttp.HandlerOpts{}))

	r.Route("/v1", func(r chi.Router) {
		r.Get("/metrics", s.listMetrics)
		r.Get("/metrics/{id}", s.describeMetric)
		r.Post("/metrics/{id}/evaluate", s.evaluateMetric)
		r.Post("/batch", s.evaluateBatch)
	})

	return r
}

// Run serves on addr until ctx is cancelled, then shuts down gracefully.
func (s *Server) Run(ctx context.Context, addr string) error {
	srv := &http.Server{
		Addr:              addr,
		Handler:           s.Handler(),
		ReadHeaderTimeout: 10 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		s.log.Info("http server started", zap.String("addr", addr))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), ShutdownTimeout)
	defer cancel()
	s.log.Info("http server stopping", zap.Duration("timeout", ShutdownTimeout))
	return srv.Shutdown(shutdownCtx)
}
