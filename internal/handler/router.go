package handler

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/vaultpass/passgen-go/internal/middleware"
	"github.com/vaultpass/passgen-go/internal/service"
)

// RouterOptions configures the HTTP surface.
type RouterOptions struct {
	RateLimitRPS   float64
	RateLimitBurst int
	// AuthSecret enables bearer-token auth on the API routes when non-empty.
	AuthSecret string
}

// NewRouter wires the health check and the generator API.
func NewRouter(svc *service.GeneratorService, opts RouterOptions) http.Handler {
	genHandler := NewGeneratorHandler(svc)

	r := chi.NewRouter()
	r.Use(middleware.Logger)

	r.Get("/health", HandleHealth)

	r.Route("/api/v1", func(r chi.Router) {
		if opts.RateLimitRPS > 0 {
			r.Use(middleware.RateLimit(opts.RateLimitRPS, opts.RateLimitBurst))
		}
		if opts.AuthSecret != "" {
			r.Use(middleware.BearerAuth(opts.AuthSecret))
		}
		r.Post("/generate", genHandler.HandleGenerate)
	})

	return r
}
