// internal/api/server.go
package api

import (
	"context"
	"fmt"
	"net/http"
	"time"

	apihandler "github.com/dwhitmore/finlens/internal/api/handler/api"
	"github.com/dwhitmore/finlens/internal/api/handler/web"
	"github.com/dwhitmore/finlens/internal/api/middleware"
	"github.com/dwhitmore/finlens/internal/core"
	"github.com/dwhitmore/finlens/internal/metrics"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"
)

// Analyzer runs one full analysis for a ticker.
type Analyzer interface {
	Analyze(ctx context.Context, ticker string) (*core.Report, error)
}

// Server represents the FinLens HTTP server
type Server struct {
	httpServer *http.Server
	logger     *zap.Logger
	mux        *http.ServeMux
}

// Config holds server configuration
type Config struct {
	Host           string
	Port           int
	APIKey         string
	MetricsEnabled bool
	MetricsPath    string
}

// Dependencies holds the collaborators the server routes requests to.
type Dependencies struct {
	Analyzer Analyzer
	Metrics  *metrics.Registry
}

// NewServer creates a new HTTP server
func NewServer(cfg Config, deps Dependencies, logger *zap.Logger) (*Server, error) {
	if logger == nil {
		logger = zap.NewNop()
	}

	mux := http.NewServeMux()

	var handler http.Handler = mux
	if deps.Metrics != nil {
		handler = metrics.HTTPMiddleware(deps.Metrics)(handler)
	}

	s := &Server{
		httpServer: &http.Server{
			Addr:         fmt.Sprintf("%s:%d", cfg.Host, cfg.Port),
			Handler:      handler,
			ReadTimeout: 15 * time.Second,
			// Narrative generation can take minutes on local models, so the
			// write timeout must cover a full LLM round trip.
			WriteTimeout: 5 * time.Minute,
			IdleTimeout:  60 * time.Second,
		},
		logger: logger,
		mux:    mux,
	}

	if err := s.setupRoutes(cfg, deps); err != nil {
		return nil, fmt.Errorf("setting up routes: %w", err)
	}

	return s, nil
}

// setupRoutes configures all HTTP routes
func (s *Server) setupRoutes(cfg Config, deps Dependencies) error {
	// Web UI routes
	webHandler, err := web.NewHandler(deps.Analyzer)
	if err != nil {
		return fmt.Errorf("creating web handler: %w", err)
	}

	s.mux.HandleFunc("/", webHandler.Index)
	s.mux.HandleFunc("/analyze", webHandler.Analyze)

	// JSON API routes, behind optional key auth
	auth := middleware.APIKeyAuth(cfg.APIKey)
	analysisHandler := apihandler.NewAnalysisHandler(deps.Analyzer)
	s.mux.Handle("/api/v1/analysis", auth(http.HandlerFunc(analysisHandler.Analyze)))
	s.mux.HandleFunc("/api/health", s.handleHealth)

	if cfg.MetricsEnabled && deps.Metrics != nil {
		path := cfg.MetricsPath
		if path == "" {
			path = "/metrics"
		}
		s.mux.Handle(path, promhttp.HandlerFor(deps.Metrics.Registry, promhttp.HandlerOpts{}))
	}

	return nil
}

// Start starts the HTTP server
func (s *Server) Start() error {
	s.logger.Info("starting HTTP server", zap.String("addr", s.httpServer.Addr))
	if err := s.httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		return fmt.Errorf("server error: %w", err)
	}
	return nil
}

// Shutdown gracefully shuts down the server
func (s *Server) Shutdown(ctx context.Context) error {
	s.logger.Info("shutting down HTTP server")
	return s.httpServer.Shutdown(ctx)
}

// Handler exposes the server's root handler for tests.
func (s *Server) Handler() http.Handler {
	return s.httpServer.Handler
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	w.Write([]byte(`{"status":"ok"}`))
}
