package config

import (
	"fmt"
	"os"
	"strconv"
	"time"
)

// Config holds the runtime configuration of the API process.
type Config struct {
	Addr            string        // HTTP_ADDR
	ShutdownTimeout time.Duration // SHUTDOWN_TIMEOUT
	Development     bool          // APP_ENV=development
	LogsEnabled     bool          // OTEL_LOGS_ENABLED, export logs over OTLP
}

// Default returns the configuration used when no variables are set.
func Default() Config {
	return Config{
		Addr:            ":8080",
		ShutdownTimeout: 5 * time.Second,
	}
}

// Load reads the configuration from the environment. Unset variables keep
// their defaults; malformed ones are reported.
func Load() (Config, error) {
	return load(os.Getenv)
}

func load(getenv func(string) string) (Config, error) {
	cfg := Default()

	if v := getenv("HTTP_ADDR"); v != "" {
		cfg.Addr = v
	}

	if v := getenv("SHUTDOWN_TIMEOUT"); v != "" {
		d, err := time.ParseDuration(v)
		if err != nil {
			return cfg, fmt.Errorf("parse SHUTDOWN_TIMEOUT: %w", err)
		}
		cfg.ShutdownTimeout = d
	}

	cfg.Development = getenv("APP_ENV") == "development"

	if v := getenv("OTEL_LOGS_ENABLED"); v != "" {
		b, err := strconv.ParseBool(v)
		if err != nil {
			return cfg, fmt.Errorf("parse OTEL_LOGS_ENABLED: %w", err)
		}
		cfg.LogsEnabled = b
	}

	return cfg, nil
}
