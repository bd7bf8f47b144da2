// Package wallpaper turns a token into a rendered wallpaper.
package wallpaper

import (
	"context"
	"fmt"
	"math"
	"strings"
	"time"

	"github.com/rs/zerolog"

	"wallpaper/internal/compose"
	"wallpaper/internal/domain"
	"wallpaper/internal/domain/wallconfig"
	"wallpaper/internal/scene"
	"wallpaper/internal/token"
)

const (
	DefaultWidth  = 1290
	DefaultHeight = 2796
	MinWidth      = 720
	MaxWidth      = 2200
	MinHeight     = 1280
	MaxHeight     = 4200
)

// TimingsLookup returns prayer times for the calendar day of q.At in q.TimeZone.
type TimingsLookup interface {
	Timings(ctx context.Context, q domain.TimingsQuery) (*domain.RamadanTimings, error)
}

// Rasterizer encodes a document as PNG at the given pixel width.
type Rasterizer interface {
	Rasterize(doc *scene.Document, width int) ([]byte, error)
}

// Image is a rendered wallpaper.
type Image struct {
	Mode        wallconfig.Mode
	Body        []byte
	ContentType string
	Filename    string
}

// Service renders wallpapers. It holds no per-request state.
type Service struct {
	timings TimingsLookup
	raster  Rasterizer
	logger  zerolog.Logger
}

func NewService(timings TimingsLookup, raster Rasterizer, logger zerolog.Logger) *Service {
	return &Service{timings: timings, raster: raster, logger: logger}
}

// ClampDimensions bounds a requested canvas size. Non-positive values select
// the defaults.
func ClampDimensions(width, height int) (int, int) {
	if width <= 0 {
		width = DefaultWidth
	}
	if height <= 0 {
		height = DefaultHeight
	}
	return min(max(width, MinWidth), MaxWidth), min(max(height, MinHeight), MaxHeight)
}

// ClampFloat bounds a parsed query value into [lo, hi], rounding half up.
// Non-finite values select fallback.
func ClampFloat(v float64, fallback, lo, hi int) int {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return fallback
	}
	return int(math.Floor(math.Min(math.Max(v, float64(lo)), float64(hi)) + 0.5))
}

// Document decodes tok and composes its wallpaper at the clamped size.
// Errors wrap domain.ErrInvalidToken or domain.ErrTimingsUnavailable.
func (s *Service) Document(ctx context.Context, tok string, width, height int, at time.Time) (*scene.Document, wallconfig.Config, error) {
	cfg, ok := token.Decode(tok)
	if !ok {
		return nil, nil, domain.ErrInvalidToken
	}
	width, height = ClampDimensions(width, height)
	if at.IsZero() {
		at = time.Now()
	}
	opts := compose.Options{Width: width, Height: height, Now: at}

	switch c := cfg.(type) {
	case wallconfig.Life:
		return compose.Life(c, opts), cfg, nil
	case wallconfig.Ramadan:
		if s.timings == nil {
			return nil, nil, domain.ErrTimingsUnavailable
		}
		timings, err := s.timings.Timings(ctx, domain.TimingsQuery{
			Latitude:  c.Latitude,
			Longitude: c.Longitude,
			TimeZone:  c.TimeZone,
			Method:    c.CalculationMethod,
			At:        at,
		})
		if err != nil {
			return nil, nil, fmt.Errorf("%w: %v", domain.ErrTimingsUnavailable, err)
		}
		if timings == nil {
			return nil, nil, domain.ErrTimingsUnavailable
		}
		return compose.Ramadan(c, timings, opts), cfg, nil
	}
	return nil, nil, domain.ErrInvalidToken
}

// Produce renders tok as a PNG.
func (s *Service) Produce(ctx context.Context, tok string, width, height int, at time.Time) (*Image, error) {
	doc, cfg, err := s.Document(ctx, tok, width, height, at)
	if err != nil {
		return nil, err
	}
	start := time.Now()
	png, err := s.raster.Rasterize(doc, doc.Width)
	if err != nil {
		return nil, fmt.Errorf("wallpaper: rasterize: %w", err)
	}
	s.logger.Debug().
		Str("mode", string(cfg.Mode())).
		Int("width", doc.Width).
		Int("height", doc.Height).
		Dur("elapsed", time.Since(start)).
		Msg("wallpaper rendered")
	return &Image{
		Mode:        cfg.Mode(),
		Body:        png,
		ContentType: "image/png",
		Filename:    Filename(cfg.Mode(), tok, "png"),
	}, nil
}

// Vector renders tok as standalone SVG markup.
func (s *Service) Vector(ctx context.Context, tok string, width, height int, at time.Time) (*Image, error) {
	doc, cfg, err := s.Document(ctx, tok, width, height, at)
	if err != nil {
		return nil, err
	}
	return &Image{
		Mode:        cfg.Mode(),
		Body:        doc.SVG(),
		ContentType: "image/svg+xml",
		Filename:    Filename(cfg.Mode(), tok, "svg"),
	}, nil
}

// Filename is "{mode}-calendar-{first ten token characters}.{ext}".
func Filename(mode wallconfig.Mode, tok, ext string) string {
	tok = strings.TrimSpace(tok)
	if len(tok) > 10 {
		tok = tok[:10]
	}
	return string(mode) + "-calendar-" + tok + "." + ext
}
