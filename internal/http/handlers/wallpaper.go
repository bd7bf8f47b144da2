package handlers

import (
	"errors"
	"math"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/go-chi/chi/v5"

	"wallpaper/internal/domain"
	"wallpaper/internal/wallpaper"
)

// Wallpaper renders the wallpaper for the token in the path. A ".svg" suffix
// or format=svg returns vector markup instead of PNG.
func (a *App) Wallpaper(w http.ResponseWriter, r *http.Request) {
	tok, ext := splitExtension(chi.URLParam(r, "token"))
	q := r.URL.Query()
	if strings.EqualFold(q.Get("format"), "svg") {
		ext = "svg"
	}
	width := readDimension(q.Get("w"), wallpaper.DefaultWidth, wallpaper.MinWidth, wallpaper.MaxWidth)
	height := readDimension(q.Get("h"), wallpaper.DefaultHeight, wallpaper.MinHeight, wallpaper.MaxHeight)
	at := readTimestamp(q.Get("at"), a.now())

	render := a.Wallpapers.Produce
	if ext == "svg" {
		render = a.Wallpapers.Vector
	}
	img, err := render(r.Context(), tok, width, height, at)
	switch {
	case errors.Is(err, domain.ErrInvalidToken):
		a.text(w, http.StatusBadRequest, "Invalid token")
		return
	case errors.Is(err, domain.ErrTimingsUnavailable):
		a.text(w, http.StatusBadGateway, "Could not fetch ramadan timings for this city.")
		return
	case err != nil:
		a.Logger.Error().Err(err).Msg("render wallpaper")
		a.text(w, http.StatusInternalServerError, "Could not render wallpaper.")
		return
	}

	w.Header().Set("Content-Type", img.ContentType)
	w.Header().Set("Cache-Control", "no-store, max-age=0")
	w.Header().Set("Content-Disposition", `inline; filename="`+img.Filename+`"`)
	w.Header().Set("Content-Length", strconv.Itoa(len(img.Body)))
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write(img.Body)
}

// splitExtension strips a trailing ".png" or ".svg", case-insensitively.
func splitExtension(raw string) (tok, ext string) {
	lower := strings.ToLower(raw)
	for _, e := range []string{"png", "svg"} {
		if strings.HasSuffix(lower, "."+e) {
			return raw[:len(raw)-len(e)-1], e
		}
	}
	return raw, "png"
}

// readDimension parses a query size. Missing or unparseable values give
// fallback; numbers are clamped into [lo, hi] and rounded.
func readDimension(v string, fallback, lo, hi int) int {
	v = strings.TrimSpace(v)
	if v == "" {
		return fallback
	}
	f, err := strconv.ParseFloat(v, 64)
	if err != nil {
		return fallback
	}
	return wallpaper.ClampFloat(f, fallback, lo, hi)
}

var timestampLayouts = []string{time.RFC3339Nano, "2006-01-02T15:04:05", time.DateOnly}

// readTimestamp accepts epoch milliseconds or an RFC 3339 style timestamp.
// Anything else yields now.
func readTimestamp(v string, now time.Time) time.Time {
	v = strings.TrimSpace(v)
	if v == "" {
		return now
	}
	if ms, err := strconv.ParseFloat(v, 64); err == nil {
		if math.IsNaN(ms) || math.IsInf(ms, 0) || math.Abs(ms) > 8.64e15 {
			return now
		}
		return time.UnixMilli(int64(ms)).UTC()
	}
	for _, layout := range timestampLayouts {
		if t, err := time.Parse(layout, v); err == nil {
			return t
		}
	}
	return now
}
