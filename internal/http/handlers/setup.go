package handlers

import (
	_ "embed"
	"fmt"
	"html/template"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/skip2/go-qrcode"

	"wallpaper/internal/domain/wallconfig"
	"wallpaper/internal/token"
)

const (
	defaultQRSize = 256
	minQRSize     = 128
	maxQRSize     = 1024
)

//go:embed setup.html
var setupHTML string

var setupTemplate = template.Must(template.New("setup").Parse(setupHTML))

type setupPage struct {
	Heading      string
	WallpaperURL string
	QRPath       string
	Summary      []string
}

// Setup serves the device setup instructions for a token.
func (a *App) Setup(w http.ResponseWriter, r *http.Request) {
	tok := chi.URLParam(r, "token")
	cfg, ok := token.Decode(tok)
	if !ok {
		a.text(w, http.StatusNotFound, "Not found")
		return
	}

	page := setupPage{
		Heading:      "Wallpaper Setup",
		WallpaperURL: a.origin(r) + wallpaperPath(tok),
		QRPath:       "/setup/" + tok + "/qr.png",
	}
	switch c := cfg.(type) {
	case wallconfig.Ramadan:
		page.Heading = "Ramadan Wallpaper Setup"
		page.Summary = []string{
			"Mode: Ramadan Calendar",
			"Location label: " + c.City,
			fmt.Sprintf("Coordinates (exact): %.6f, %.6f", c.Latitude, c.Longitude),
			"Time zone: " + c.TimeZone,
			"Calculation method: " + strconv.Itoa(c.CalculationMethod),
			"Theme: " + string(c.Theme),
		}
	case wallconfig.Life:
		page.Summary = []string{
			"Mode: Life Calendar",
			"Date of birth: " + c.DateOfBirth,
			"Time zone: " + c.TimeZone,
		}
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(http.StatusOK)
	if err := setupTemplate.Execute(w, page); err != nil {
		a.Logger.Error().Err(err).Msg("render setup page")
	}
}

// SetupQR encodes the token's wallpaper URL as a QR code PNG.
func (a *App) SetupQR(w http.ResponseWriter, r *http.Request) {
	tok := chi.URLParam(r, "token")
	if _, ok := token.Decode(tok); !ok {
		a.text(w, http.StatusNotFound, "Not found")
		return
	}
	size := defaultQRSize
	if v, err := strconv.Atoi(r.URL.Query().Get("size")); err == nil {
		size = min(max(v, minQRSize), maxQRSize)
	}

	qr, err := qrcode.New(a.origin(r)+wallpaperPath(tok), qrcode.Medium)
	if err != nil {
		a.Logger.Error().Err(err).Msg("build qr code")
		a.text(w, http.StatusInternalServerError, "Could not build QR code.")
		return
	}
	png, err := qr.PNG(size)
	if err != nil {
		a.Logger.Error().Err(err).Msg("encode qr code")
		a.text(w, http.StatusInternalServerError, "Could not build QR code.")
		return
	}
	w.Header().Set("Content-Type", "image/png")
	w.Header().Set("Cache-Control", "public, max-age=86400")
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write(png)
}
