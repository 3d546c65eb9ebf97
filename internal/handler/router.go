package handler

import (
	"net/http"

	"github.com/Shivanand-hulikatti/activity-signup/internal/logger"
	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// NewRouter builds the full HTTP surface. staticDir may be empty to skip
// serving the front-end.
func NewRouter(h *ActivityHandler, log logger.Logger, staticDir string) http.Handler {
	r := chi.NewRouter()

	r.Use(chimiddleware.Recoverer)
	r.Use(chimiddleware.RequestID)
	r.Use(chimiddleware.RealIP)
	r.Use(Logger(log))
	r.Use(CORS)

	r.Get("/health", HealthCheck)
	r.Handle("/metrics", promhttp.Handler())

	r.Route("/activities", func(r chi.Router) {
		r.Get("/", h.ListActivities)
		r.Post("/{activity_name}/signup", h.Signup)
		r.Delete("/{activity_name}/unregister", h.Unregister)
	})

	if staticDir != "" {
		r.Get("/", func(w http.ResponseWriter, r *http.Request) {
			http.Redirect(w, r, "/static/", http.StatusTemporaryRedirect)
		})
		r.Handle("/static/*", http.StripPrefix("/static/", http.FileServer(http.Dir(staticDir))))
	}

	return r
}
