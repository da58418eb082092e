package http

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"eagles-events/go_backend/internal/app/config"
	"eagles-events/go_backend/internal/app/http/handlers"
	"eagles-events/go_backend/internal/app/http/middleware"
)

func NewRouter(cfg config.Config, h *handlers.Handlers) http.Handler {
	r := chi.NewRouter()

	r.Use(middleware.Logging)
	r.Use(middleware.CORS(cfg.CORSAllowOrigin))

	r.Get("/health", h.Health)

	r.Route("/v1", func(r chi.Router) {
		r.Group(func(r chi.Router) {
			r.Use(middleware.AdminAuth(cfg.JWTSecret, cfg.InternalToken))

			r.Post("/quotes", h.CreateQuote)
			r.Post("/quotes/pdf", h.PreviewQuotePDF)
			r.Get("/quotes/{id}", h.GetQuote)
			r.Get("/quotes/{id}/pdf", h.QuotePDF)
		})
	})

	return r
}
