package handlers

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/rs/zerolog"

	"wallpaper/internal/domain"
	"wallpaper/internal/wallpaper"
)

// Wallpapers renders tokens.
type Wallpapers interface {
	Produce(ctx context.Context, tok string, width, height int, at time.Time) (*wallpaper.Image, error)
	Vector(ctx context.Context, tok string, width, height int, at time.Time) (*wallpaper.Image, error)
}

// Geocoder resolves a free-text city query.
type Geocoder interface {
	Geocode(ctx context.Context, query string) (*domain.GeocodedCity, error)
}

// Locator resolves an approximate place for a client IP.
type Locator interface {
	Locate(ip string) (domain.GeocodedCity, error)
}

type App struct {
	Wallpapers    Wallpapers
	Geocoder      Geocoder
	Locator       Locator
	Logger        zerolog.Logger
	PublicBaseURL string
	Now           func() time.Time
}

func NewApp(wallpapers Wallpapers, geocoder Geocoder, locator Locator, logger zerolog.Logger, publicBaseURL string) *App {
	return &App{
		Wallpapers:    wallpapers,
		Geocoder:      geocoder,
		Locator:       locator,
		Logger:        logger,
		PublicBaseURL: strings.TrimRight(publicBaseURL, "/"),
		Now:           time.Now,
	}
}

func (a *App) json(w http.ResponseWriter, code int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	enc := json.NewEncoder(w)
	enc.SetEscapeHTML(false)
	_ = enc.Encode(v)
}

// error writes {"error": message, "code": code}.
func (a *App) error(w http.ResponseWriter, status int, code, message string) {
	a.json(w, status, map[string]string{"error": message, "code": code})
}

// text writes a plain-text body, as the image routes answer failures.
func (a *App) text(w http.ResponseWriter, status int, message string) {
	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	w.Header().Set("Cache-Control", "no-store, max-age=0")
	w.WriteHeader(status)
	_, _ = io.WriteString(w, message)
}

func (a *App) now() time.Time {
	if a.Now != nil {
		return a.Now()
	}
	return time.Now()
}

// origin is the public scheme and host the caller reached us on. Proxies'
// X-Forwarded-* headers win; without any host the configured base URL is used.
func (a *App) origin(r *http.Request) string {
	proto := firstHeaderValue(r.Header.Get("X-Forwarded-Proto"))
	if proto == "" {
		proto = "https"
	}
	host := firstHeaderValue(r.Header.Get("X-Forwarded-Host"))
	if host == "" {
		host = r.Host
	}
	if host == "" {
		return a.PublicBaseURL
	}
	return proto + "://" + host
}

func firstHeaderValue(v string) string {
	first, _, _ := strings.Cut(v, ",")
	return strings.TrimSpace(first)
}
