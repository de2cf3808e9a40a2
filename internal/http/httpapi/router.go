package httpapi

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"

	"github.com/Ghost3nexus/FASTSHOOTINGAI/internal/http/handlers"
	"github.com/Ghost3nexus/FASTSHOOTINGAI/internal/middleware"
)

// NewRouter wires all routes and middleware. CORS and rate limiting are
// opt-in through configuration; with the defaults every method on
// /api/generate reaches the handler so it can serve the 405 contract itself.
func NewRouter(app *handlers.App) http.Handler {
	r := chi.NewRouter()

	r.Use(
		chimw.RealIP,
		chimw.Recoverer,
		middleware.RequestID,
		middleware.Logger(app.Logger),
		middleware.Metrics(app.Metrics),
	)
	if len(app.Config.CORSAllowedOrigins) > 0 {
		r.Use(middleware.CORS(app.Config.CORSAllowedOrigins))
	}
	if app.Config.RateLimitPerMin > 0 {
		r.Use(middleware.RateLimit(app.Config.RateLimitPerMin, time.Minute))
	}

	r.Get("/v1/healthz", app.Health)
	r.Get("/v1/options", app.StyleOptions)
	r.Handle("/metrics", app.Metrics.Handler())

	// Mounted for every method; the handler answers non-POST with 405.
	r.HandleFunc("/api/generate", app.Generate)

	return r
}
