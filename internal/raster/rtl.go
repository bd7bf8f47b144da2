package raster

import (
	"image/color"
	"image/draw"
	"math"

	"github.com/fogleman/gg"
	"github.com/go-text/render"
	"github.com/go-text/typesetting/di"
	"github.com/go-text/typesetting/language"
	"github.com/go-text/typesetting/shaping"
	"golang.org/x/image/math/fixed"

	"wallpaper/internal/scene"
)

var urdu = language.NewLanguage("ur")

// drawRTL shapes t right to left so joined Arabic script forms render
// correctly, then draws the glyph run with its baseline at y.
func (c *canvas) drawRTL(dc *gg.Context, t scene.Text, x, y float64, col color.Color) {
	fs := c.faces.fonts
	size := t.Font.Size * c.scale
	runes := []rune(t.Content)

	fs.shapingMu.Lock()
	defer fs.shapingMu.Unlock()

	var shaper shaping.HarfbuzzShaper
	out := shaper.Shape(shaping.Input{
		Text:      runes,
		RunStart:  0,
		RunEnd:    len(runes),
		Direction: di.DirectionRTL,
		Face:      fs.shaping,
		Size:      fixed.Int26_6(math.Round(size * 64)),
		Script:    language.Arabic,
		Language:  urdu,
	})
	w := math.Abs(float64(out.Advance) / 64)

	// For right-to-left runs the logical start is the right edge.
	anchor := t.Anchor
	switch anchor {
	case scene.AnchorStart:
		anchor = scene.AnchorEnd
	case scene.AnchorEnd:
		anchor = scene.AnchorStart
	}
	left := anchorX(x, w, anchor)

	img, ok := dc.Image().(draw.Image)
	if !ok {
		return
	}
	r := render.Renderer{FontSize: float32(size), PixScale: 1, Color: col}
	r.DrawShapedRunAt(out, img, int(math.Round(left)), int(math.Round(y)))
}
