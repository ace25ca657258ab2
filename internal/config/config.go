package config

import (
	"fmt"
	"os"
	"strconv"
	"time"
)

// Config holds all service settings, populated from environment variables.
type Config struct {
	HTTPAddr        string
	DataPath        string
	LogLevel        string
	LogFormat       string
	ShutdownTimeout time.Duration

	// Presentation knobs for the 3D figure.
	MarkerSize int
	ColorScale string
}

// Load reads configuration from environment variables, applying defaults
// where unset.
func Load() (*Config, error) {
	shutdownTimeout, err := parseDuration("SHUTDOWN_TIMEOUT", "10s")
	if err != nil {
		return nil, err
	}

	markerSize, err := parsePositiveInt("MARKER_SIZE", 5)
	if err != nil {
		return nil, err
	}

	cfg := &Config{
		HTTPAddr:        envOrDefault("HTTP_ADDR", ":8080"),
		DataPath:        envOrDefault("OMNI_DATA_PATH", "omni_web_data1.lst"),
		LogLevel:        envOrDefault("LOG_LEVEL", "info"),
		LogFormat:       envOrDefault("LOG_FORMAT", "json"),
		ShutdownTimeout: shutdownTimeout,
		MarkerSize:      markerSize,
		ColorScale:      envOrDefault("COLOR_SCALE", "Viridis"),
	}

	if cfg.DataPath == "" {
		return nil, fmt.Errorf("OMNI_DATA_PATH is required")
	}
	switch cfg.LogFormat {
	case "json", "text", "pretty":
	default:
		return nil, fmt.Errorf("invalid LOG_FORMAT %q: must be json, text, or pretty", cfg.LogFormat)
	}
	switch cfg.LogLevel {
	case "debug", "info", "warn", "error":
	default:
		return nil, fmt.Errorf("invalid LOG_LEVEL %q: must be debug, info, warn, or error", cfg.LogLevel)
	}
	if cfg.ColorScale == "" {
		return nil, fmt.Errorf("COLOR_SCALE must not be empty")
	}

	return cfg, nil
}

func envOrDefault(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func parseDuration(key, def string) (time.Duration, error) {
	s := envOrDefault(key, def)
	d, err := time.ParseDuration(s)
	if err != nil || d <= 0 {
		return 0, fmt.Errorf("invalid %s %q: must be a positive duration", key, s)
	}
	return d, nil
}

func parsePositiveInt(key string, def int) (int, error) {
	s := os.Getenv(key)
	if s == "" {
		return def, nil
	}
	n, err := strconv.Atoi(s)
	if err != nil || n <= 0 {
		return 0, fmt.Errorf("invalid %s %q: must be a positive integer", key, s)
	}
	return n, nil
}
