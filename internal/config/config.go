// Package config loads service configuration from the environment.
package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/spf13/viper"
)

// Config holds the runtime settings of the ChromaViews service.
type Config struct {
	// ListenAddr is the HTTP listen address, e.g. ":8080".
	ListenAddr string

	// AllowedOrigins are the CORS origins permitted to call the API.
	AllowedOrigins []string

	// MaxImageMB caps the size of an uploaded image in megabytes.
	MaxImageMB int

	// AnalysisTimeout bounds a single analysis request.
	AnalysisTimeout time.Duration

	// DefaultClusters is the cluster count used when a request omits k.
	DefaultClusters int

	// Seed seeds k-means initialisation.
	Seed int64

	// LogLevel is the hclog level name (trace, debug, info, warn, error).
	LogLevel string
}

// Load reads configuration from CHROMAVIEWS_-prefixed environment variables,
// falling back to the unprefixed names the original deployment used
// (ALLOWED_ORIGINS, MAX_IMAGE_MB, LOG_LEVEL) and then to defaults.
func Load() (*Config, error) {
	v := viper.New()
	v.SetEnvPrefix("chromaviews")
	v.AutomaticEnv()

	v.SetDefault("listen_addr", ":8080")
	v.SetDefault("allowed_origins", "http://localhost:5173")
	v.SetDefault("max_image_mb", 10)
	v.SetDefault("analysis_timeout", "15s")
	v.SetDefault("default_clusters", 8)
	v.SetDefault("seed", 42)
	v.SetDefault("log_level", "info")

	// Legacy unprefixed names take effect when the prefixed ones are unset.
	for key, legacy := range map[string]string{
		"allowed_origins": "ALLOWED_ORIGINS",
		"max_image_mb":    "MAX_IMAGE_MB",
		"log_level":       "LOG_LEVEL",
	} {
		if err := v.BindEnv(key, "CHROMAVIEWS_"+strings.ToUpper(key), legacy); err != nil {
			return nil, fmt.Errorf("failed to bind %s: %w", key, err)
		}
	}

	cfg := &Config{
		ListenAddr:      v.GetString("listen_addr"),
		AllowedOrigins:  splitOrigins(v.GetString("allowed_origins")),
		MaxImageMB:      v.GetInt("max_image_mb"),
		AnalysisTimeout: v.GetDuration("analysis_timeout"),
		DefaultClusters: v.GetInt("default_clusters"),
		Seed:            v.GetInt64("seed"),
		LogLevel:        v.GetString("log_level"),
	}

	if cfg.MaxImageMB < 1 {
		return nil, fmt.Errorf("max_image_mb must be at least 1, got %d", cfg.MaxImageMB)
	}
	if cfg.AnalysisTimeout <= 0 {
		return nil, fmt.Errorf("analysis_timeout must be positive, got %s", cfg.AnalysisTimeout)
	}

	return cfg, nil
}

// MaxImageBytes returns the upload size cap in bytes.
func (c *Config) MaxImageBytes() int64 {
	return int64(c.MaxImageMB) << 20
}

// splitOrigins parses a comma-separated origin list, dropping empty entries.
func splitOrigins(s string) []string {
	var origins []string
	for _, origin := range strings.Split(s, ",") {
		if trimmed := strings.TrimSpace(origin); trimmed != "" {
			origins = append(origins, trimmed)
		}
	}
	return origins
}
