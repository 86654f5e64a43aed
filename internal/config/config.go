// Package config holds the flat, flag-populated configuration shared by
// the asn1ctl CLI and its debug HTTP server.
package config

import (
	"fmt"
	"time"
)

// Config is the full set of tunables the CLI's serve command exposes as
// flags and passes down to the debug server.
type Config struct {
	// Server
	ServerHost string
	ServerPort int

	// Performance
	MaxRequestSize  int64
	ReadTimeout     time.Duration
	WriteTimeout    time.Duration
	IdleTimeout     time.Duration
	ShutdownTimeout time.Duration

	// Security
	EnableCORS  bool
	CORSOrigins []string

	// Observability
	LogLevel  string
	LogFormat string // "text" or "json"

	// Adapter behavior
	AllowUndefined bool
}

// Default returns the configuration the serve command starts from before
// flags are applied.
func Default() Config {
	return Config{
		ServerHost:      "localhost",
		ServerPort:      8080,
		MaxRequestSize:  1 << 20, // 1 MiB
		ReadTimeout:     15 * time.Second,
		WriteTimeout:    15 * time.Second,
		IdleTimeout:     60 * time.Second,
		ShutdownTimeout: 10 * time.Second,
		EnableCORS:      false,
		CORSOrigins:     []string{"*"},
		LogLevel:        "info",
		LogFormat:       "text",
		AllowUndefined:  false,
	}
}

// Validate rejects configurations the server can't start with.
func (c Config) Validate() error {
	if c.ServerPort < 1 || c.ServerPort > 65535 {
		return fmt.Errorf("invalid port: %d", c.ServerPort)
	}
	if c.MaxRequestSize <= 0 {
		return fmt.Errorf("max request size must be positive, got %d", c.MaxRequestSize)
	}
	switch c.LogFormat {
	case "text", "json":
	default:
		return fmt.Errorf("invalid log format %q, want \"text\" or \"json\"", c.LogFormat)
	}
	switch c.LogLevel {
	case "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("invalid log level %q", c.LogLevel)
	}
	return nil
}
