// Package server exposes the planforge HTTP API: the assistant endpoint
// (step insights and plan generation), the completion relay endpoint, and
// Kubernetes-style health probes with graceful shutdown.
package server

import (
	"context"
	"net/http"
	"sync/atomic"
	"time"

	"github.com/felixgeelhaar/planforge/internal/health"
	"github.com/felixgeelhaar/planforge/internal/log"
	"github.com/felixgeelhaar/planforge/internal/plan"
	"github.com/felixgeelhaar/planforge/internal/synth"
	"github.com/felixgeelhaar/planforge/internal/wizard"
)

// Deps are the collaborators the handlers dispatch into.
type Deps struct {
	// Synthesizer generates plans; required.
	Synthesizer wizard.Synthesizer

	// Relay backs the completion endpoint; may be nil when no credential
	// is configured, in which case relay requests fail with a 500.
	Relay synth.Completer

	// Store resolves plan lookups by ID; required.
	Store plan.Store

	// Probes tracks liveness/readiness/startup state; required.
	Probes *health.ProbeManager

	// Logger receives request diagnostics; defaults to the global logger.
	Logger *log.Logger
}

// Config holds server configuration.
type Config struct {
	// Address is the listen address (e.g. ":8787")
	Address string

	// ShutdownTimeout is the maximum time to wait for connections to drain.
	// Defaults to 30 seconds.
	ShutdownTimeout time.Duration

	// ReadTimeout is the maximum duration for reading the entire request.
	// Defaults to 10 seconds.
	ReadTimeout time.Duration

	// WriteTimeout is the maximum duration before timing out response
	// writes. Defaults to 120 seconds: plan generation holds the
	// connection open for the full provider round trip.
	WriteTimeout time.Duration

	// IdleTimeout is the maximum time to wait for the next request.
	// Defaults to 60 seconds.
	IdleTimeout time.Duration
}

// Server provides the planforge HTTP API.
type Server struct {
	httpServer      *http.Server
	deps            Deps
	probes          *health.ProbeManager
	logger          *log.Logger
	inShutdown      atomic.Bool
	shutdownTimeout time.Duration
}

// NewServer creates a new HTTP server with the API and health endpoints.
func NewServer(deps Deps, cfg Config) *Server {
	if cfg.ShutdownTimeout == 0 {
		cfg.ShutdownTimeout = 30 * time.Second
	}
	if cfg.ReadTimeout == 0 {
		cfg.ReadTimeout = 10 * time.Second
	}
	if cfg.WriteTimeout == 0 {
		cfg.WriteTimeout = 120 * time.Second
	}
	if cfg.IdleTimeout == 0 {
		cfg.IdleTimeout = 60 * time.Second
	}
	if deps.Logger == nil {
		deps.Logger = log.DefaultLogger()
	}

	s := &Server{
		deps:            deps,
		probes:          deps.Probes,
		logger:          deps.Logger,
		shutdownTimeout: cfg.ShutdownTimeout,
	}

	s.httpServer = &http.Server{
		Addr:         cfg.Address,
		Handler:      s.Handler(),
		ReadTimeout:  cfg.ReadTimeout,
		WriteTimeout: cfg.WriteTimeout,
		IdleTimeout:  cfg.IdleTimeout,
	}

	return s
}

// Handler returns the route table. Exposed for tests.
func (s *Server) Handler() http.Handler {
	mux := http.NewServeMux()

	mux.HandleFunc("/api/assistant", s.handleAssistant)
	mux.HandleFunc("/api/relay", s.handleRelay)

	mux.HandleFunc("/health/live", s.handleLiveness)
	mux.HandleFunc("/health/ready", s.handleReadiness)
	mux.HandleFunc("/health/startup", s.handleStartup)
	mux.HandleFunc("/healthz", s.handleReadiness)

	return mux
}

// Start starts the HTTP server. It blocks until the server stops and
// returns http.ErrServerClosed on graceful shutdown.
func (s *Server) Start() error {
	s.probes.MarkInitialized()
	return s.httpServer.ListenAndServe()
}

// Shutdown performs graceful shutdown: readiness probes fail first, then
// keep-alives stop, then connections drain up to ShutdownTimeout.
func (s *Server) Shutdown(ctx context.Context) error {
	s.inShutdown.Store(true)
	s.probes.MarkShutdown()

	s.httpServer.SetKeepAlivesEnabled(false)

	shutdownCtx, cancel := context.WithTimeout(ctx, s.shutdownTimeout)
	defer cancel()

	return s.httpServer.Shutdown(shutdownCtx)
}

// IsShuttingDown returns whether the server is shutting down.
func (s *Server) IsShuttingDown() bool {
	return s.inShutdown.Load()
}

func (s *Server) handleLiveness(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}
	s.writeProbeResponse(w, s.probes.CheckLiveness(r.Context()), http.StatusOK)
}

func (s *Server) handleReadiness(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}
	s.writeProbeResponse(w, s.probes.CheckReadiness(r.Context()), http.StatusServiceUnavailable)
}

func (s *Server) handleStartup(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}
	s.writeProbeResponse(w, s.probes.CheckStartup(r.Context()), http.StatusServiceUnavailable)
}

func (s *Server) writeProbeResponse(w http.ResponseWriter, result *health.ProbeResult, unhealthyStatus int) {
	status := http.StatusOK
	if result.Status == health.StatusUnhealthy {
		status = unhealthyStatus
	}
	writeJSON(w, status, result)
}
