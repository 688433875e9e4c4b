// Package server exposes the colour analysis engine over HTTP.
package server

import (
	"context"
	"net/http"
	"time"

	"github.com/hashicorp/go-hclog"

	"github.com/afalcongonzalez/chromaviews/internal/analyzer"
	"github.com/afalcongonzalez/chromaviews/internal/config"
)

// Server serves the analysis API: POST /api/analyze, GET /api/name and
// GET /healthz.
type Server struct {
	cfg      *config.Config
	logger   hclog.Logger
	analyzer *analyzer.Analyzer
	http     *http.Server
}

// New creates a Server around the given analyzer.
func New(cfg *config.Config, logger hclog.Logger, a *analyzer.Analyzer) *Server {
	s := &Server{
		cfg:      cfg,
		logger:   logger,
		analyzer: a,
	}

	mux := http.NewServeMux()
	mux.HandleFunc("GET /healthz", s.handleHealthz)
	mux.HandleFunc("POST /api/analyze", s.handleAnalyze)
	mux.HandleFunc("GET /api/name", s.handleName)

	s.http = &http.Server{
		Addr:              cfg.ListenAddr,
		Handler:           s.withCORS(s.withLogging(mux)),
		ReadHeaderTimeout: 10 * time.Second,
		// Analysis is CPU-bound; allow the full analysis timeout plus upload
		// headroom before the connection is cut.
		WriteTimeout: cfg.AnalysisTimeout + 30*time.Second,
	}

	return s
}

// Handler returns the fully wrapped HTTP handler. Exposed for tests.
func (s *Server) Handler() http.Handler {
	return s.http.Handler
}

// ListenAndServe starts the server and blocks until ctx is cancelled or the
// listener fails. On cancellation the server drains in-flight requests.
func (s *Server) ListenAndServe(ctx context.Context) error {
	errc := make(chan error, 1)
	go func() {
		s.logger.Info("listening", "addr", s.cfg.ListenAddr)
		errc <- s.http.ListenAndServe()
	}()

	select {
	case err := <-errc:
		return err
	case <-ctx.Done():
		s.logger.Info("shutting down")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		return s.http.Shutdown(shutdownCtx)
	}
}
