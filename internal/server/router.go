package server

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// NewRouter assembles the chi router with the standard middleware
// chain and all API routes. allowedOrigins defaults to "*" when empty.
func NewRouter(h *Handler, allowedOrigins []string) *chi.Mux {
	if len(allowedOrigins) == 0 {
		allowedOrigins = []string{"*"}
	}

	r := chi.NewRouter()

	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(requestLogger(h.logger))
	r.Use(middleware.Recoverer)
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   allowedOrigins,
		AllowedMethods:   []string{"GET", "POST", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Content-Type"},
		AllowCredentials: false,
		MaxAge:           300,
	}))

	r.Get("/health", h.Health)
	r.Get("/ready", h.Ready)
	r.Method(http.MethodGet, "/metrics", promhttp.Handler())

	r.Route("/api", func(r chi.Router) {
		r.Post("/generate", h.Generate)

		r.Route("/interviews", func(r chi.Router) {
			r.Post("/", h.CreateInterview)
			r.Route("/{interviewID}", func(r chi.Router) {
				r.Get("/", h.GetInterview)
				r.Post("/answers", h.SubmitAnswer)
				r.Get("/plan", h.GetPlan)
				r.Get("/plan/download", h.DownloadPlan)
			})
		})

		r.Get("/templates", h.ListTemplates)
		r.Get("/templates/{templateID}/questions", h.ListQuestions)
		r.Get("/funding/match", h.MatchFunding)
		r.Get("/tax/upcoming", h.UpcomingTaxEvents)
	})

	return r
}
