package httpapi

import (
	stdhttp "net/http"
	"time"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	"github.com/rs/zerolog"

	"wallpaper/internal/http/handlers"
	"wallpaper/internal/middleware"
)

// Options tunes the cross-cutting middleware.
type Options struct {
	CORSOrigins     []string
	RateLimitPerMin int
}

func NewRouter(app *handlers.App, logger zerolog.Logger, opts Options) stdhttp.Handler {
	r := chi.NewRouter()
	r.Use(middleware.RequestID, chimw.RealIP, chimw.Recoverer, middleware.Logger(logger))
	r.Use(middleware.CORS(opts.CORSOrigins))

	// Health & docs
	r.Get("/v1/healthz", app.Health)
	r.Get("/v1/openapi.json", app.OpenAPIJSON)
	r.Get("/v1/openapi.yaml", app.OpenAPIYAML)
	r.Get("/v1/docs", app.OpenAPIDocs)

	r.Route("/api", func(r chi.Router) {
		r.Post("/token", app.CreateToken)
		r.Get("/locate", app.Locate)
		r.With(middleware.RateLimit(opts.RateLimitPerMin, time.Minute)).
			Get("/wallpaper/{token}", app.Wallpaper)
	})

	r.Route("/setup/{token}", func(r chi.Router) {
		r.Get("/", app.Setup)
		r.Get("/qr.png", app.SetupQR)
	})

	return r
}
