package server

import (
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"

	"github.com/keetanet/asn1ber/internal/config"
	"github.com/keetanet/asn1ber/server/api"
)

// NewRouter wires the chi middleware stack and routes for the debug
// server: request ID/real IP tracking, structured request logging,
// panic recovery, request timeouts and size limits, optional CORS, and
// response compression.
func NewRouter(srv *api.Server, cfg config.Config, logger Logger) *chi.Mux {
	r := chi.NewRouter()

	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(loggingMiddleware(logger))
	r.Use(middleware.Recoverer)
	r.Use(middleware.Timeout(cfg.WriteTimeout))
	r.Use(middleware.RequestSize(cfg.MaxRequestSize))

	if cfg.EnableCORS {
		r.Use(cors.Handler(cors.Options{
			AllowedOrigins:   cfg.CORSOrigins,
			AllowedMethods:   []string{"GET", "POST"},
			AllowedHeaders:   []string{"Accept", "Content-Type"},
			ExposedHeaders:   []string{"X-Request-ID"},
			AllowCredentials: false,
			MaxAge:           300,
		}))
	}

	r.Use(middleware.Compress(5))

	r.Get("/health", srv.HandleHealth)
	r.Get("/oids", srv.HandleOids)
	r.Post("/encode", srv.HandleEncode)
	r.Post("/decode", srv.HandleDecode)

	return r
}
