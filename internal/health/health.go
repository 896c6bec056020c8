// Package health provides a simple HTTP health check endpoint.
//
// Docker and Kubernetes use these endpoints to monitor the daemon.
// /healthz reports liveness; /readyz additionally runs the registered
// readiness checks (transports up, media index built).
package health

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
	"sync/atomic"
	"time"
)

// Check is a named readiness probe.
type Check struct {
	Name  string
	Probe func() bool
}

// Server is a lightweight HTTP server that exposes /healthz and /readyz.
type Server struct {
	port   int
	ready  atomic.Bool
	checks []Check
	server *http.Server
}

// New creates a new health check server. Checks are evaluated on every
// /readyz request; register them before ListenAndServe.
func New(port int, checks ...Check) *Server {
	return &Server{port: port, checks: checks}
}

// SetReady marks the daemon as ready to accept traffic.
func (s *Server) SetReady(ready bool) {
	s.ready.Store(ready)
}

// ListenAndServe starts the health check HTTP server.
// It blocks until the context is cancelled.
func (s *Server) ListenAndServe(ctx context.Context) error {
	mux := http.NewServeMux()

	mux.HandleFunc("GET /healthz", func(w http.ResponseWriter, r *http.Request) {
		if !s.ready.Load() {
			w.WriteHeader(http.StatusServiceUnavailable)
			_ = json.NewEncoder(w).Encode(map[string]string{"status": "not_ready"})
			return
		}
		w.WriteHeader(http.StatusOK)
		_ = json.NewEncoder(w).Encode(map[string]string{"status": "ok"})
	})

	mux.HandleFunc("GET /readyz", func(w http.ResponseWriter, r *http.Request) {
		status := map[string]string{"status": "ok"}
		code := http.StatusOK

		if !s.ready.Load() {
			status["status"] = "not_ready"
			code = http.StatusServiceUnavailable
		}
		for _, c := range s.checks {
			if c.Probe() {
				status[c.Name] = "ok"
			} else {
				status[c.Name] = "not_ready"
				status["status"] = "not_ready"
				code = http.StatusServiceUnavailable
			}
		}

		w.WriteHeader(code)
		_ = json.NewEncoder(w).Encode(status)
	})

	s.server = &http.Server{
		Addr:              fmt.Sprintf(":%d", s.port),
		Handler:           mux,
		ReadHeaderTimeout: 5 * time.Second,
	}

	slog.Info("health server listening", "port", s.port)

	go func() {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
		defer cancel()
		_ = s.server.Shutdown(shutdownCtx)
	}()

	if err := s.server.ListenAndServe(); err != http.ErrServerClosed {
		return fmt.Errorf("health server: %w", err)
	}
	return nil
}
