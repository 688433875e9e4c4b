package cli

import (
	"errors"
	"fmt"
	"net/http"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/afalcongonzalez/chromaviews/internal/analyzer"
	"github.com/afalcongonzalez/chromaviews/internal/config"
	"github.com/afalcongonzalez/chromaviews/internal/server"
)

// serveCmd represents the serve command.
var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Serve the colour analysis HTTP API",
	Long: `Serve the colour analysis API over HTTP.

Endpoints:
  POST /api/analyze   multipart image upload, optional k query parameter
  GET  /api/name      nearest colour name for a hex value
  GET  /healthz       health check

Configuration comes from CHROMAVIEWS_-prefixed environment variables:
listen address, allowed CORS origins, upload size limit, analysis timeout
and log level.

Examples:
  # Serve on the default address (:8080)
  chromaviews serve

  # Serve on another port with open CORS
  CHROMAVIEWS_LISTEN_ADDR=:9000 CHROMAVIEWS_ALLOWED_ORIGINS='*' chromaviews serve`,
	Args: cobra.NoArgs,
	RunE: runServe,
}

// runServe executes the serve command.
func runServe(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("invalid configuration: %w", err)
	}

	logger := newLogger(cmd.Flags(), cfg.LogLevel)
	logger.Info("starting",
		"addr", cfg.ListenAddr,
		"origins", cfg.AllowedOrigins,
		"max_image_mb", cfg.MaxImageMB,
		"timeout", cfg.AnalysisTimeout,
	)

	ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	srv := server.New(cfg, logger, analyzer.New(analyzer.WithSeed(cfg.Seed)))
	if err := srv.ListenAndServe(ctx); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return fmt.Errorf("server failed: %w", err)
	}
	return nil
}
