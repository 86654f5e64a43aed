package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/keetanet/asn1ber/internal/config"
	"github.com/keetanet/asn1ber/server"
	"github.com/keetanet/asn1ber/server/api"
)

func newServeCmd() *cobra.Command {
	cfg := config.Default()

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Start the codec debug HTTP server",
		Example: `  # Start on the default port
  asn1ctl serve

  # Bind on all interfaces with JSON logs
  asn1ctl serve --host 0.0.0.0 --port 9090 --log-format json`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runServe(&cfg)
		},
	}

	cmd.Flags().StringVar(&cfg.ServerHost, "host", cfg.ServerHost, "host to bind to")
	cmd.Flags().IntVarP(&cfg.ServerPort, "port", "p", cfg.ServerPort, "port to listen on")
	cmd.Flags().Int64Var(&cfg.MaxRequestSize, "max-request-size", cfg.MaxRequestSize, "maximum request body size in bytes")
	cmd.Flags().DurationVar(&cfg.ReadTimeout, "read-timeout", cfg.ReadTimeout, "HTTP read timeout")
	cmd.Flags().DurationVar(&cfg.WriteTimeout, "write-timeout", cfg.WriteTimeout, "HTTP write timeout")
	cmd.Flags().DurationVar(&cfg.IdleTimeout, "idle-timeout", cfg.IdleTimeout, "HTTP idle timeout")
	cmd.Flags().DurationVar(&cfg.ShutdownTimeout, "shutdown-timeout", cfg.ShutdownTimeout, "graceful shutdown timeout")
	cmd.Flags().BoolVar(&cfg.EnableCORS, "enable-cors", cfg.EnableCORS, "enable CORS middleware")
	cmd.Flags().StringSliceVar(&cfg.CORSOrigins, "cors-origins", cfg.CORSOrigins, "allowed CORS origins (comma-separated)")
	cmd.Flags().StringVar(&cfg.LogLevel, "log-level", cfg.LogLevel, "log level (debug, info, warn, error)")
	cmd.Flags().StringVar(&cfg.LogFormat, "log-format", cfg.LogFormat, "log format (text, json)")
	cmd.Flags().BoolVar(&cfg.AllowUndefined, "allow-undefined", cfg.AllowUndefined, "elide undefined array elements instead of rejecting them")

	return cmd
}

func runServe(cfg *config.Config) error {
	if err := cfg.Validate(); err != nil {
		return fmt.Errorf("invalid configuration: %w", err)
	}

	logger := server.SetupLogger(cfg.LogLevel, cfg.LogFormat)

	srv := api.NewServer(cfg.AllowUndefined)
	router := server.NewRouter(srv, *cfg, logger)

	addr := fmt.Sprintf("%s:%d", cfg.ServerHost, cfg.ServerPort)
	httpServer := &http.Server{
		Addr:         addr,
		Handler:      router,
		ReadTimeout:  cfg.ReadTimeout,
		WriteTimeout: cfg.WriteTimeout,
		IdleTimeout:  cfg.IdleTimeout,
	}

	serverErr := make(chan error, 1)
	go func() {
		logger.Info("server listening", "addr", addr)
		if err := httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			serverErr <- err
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	select {
	case <-quit:
		logger.Info("shutdown signal received")
	case err := <-serverErr:
		return fmt.Errorf("server error: %w", err)
	}

	ctx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
	defer cancel()

	logger.Info("shutting down server gracefully")
	if err := httpServer.Shutdown(ctx); err != nil {
		return fmt.Errorf("server shutdown failed: %w", err)
	}

	logger.Info("server stopped")
	return nil
}
