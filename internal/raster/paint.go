package raster

import (
	"image/color"
	"math"
	"strconv"
	"strings"

	"github.com/fogleman/gg"

	"wallpaper/internal/scene"
)

// hexColor parses "#RRGGBB" and applies opacity. Malformed input yields transparent black.
func hexColor(hex string, opacity float64) color.NRGBA {
	hex = strings.TrimPrefix(hex, "#")
	if len(hex) != 6 {
		return color.NRGBA{}
	}
	v, err := strconv.ParseUint(hex, 16, 32)
	if err != nil {
		return color.NRGBA{}
	}
	a := math.Max(0, math.Min(1, opacity))
	return color.NRGBA{R: uint8(v >> 16), G: uint8(v >> 8), B: uint8(v), A: uint8(math.Round(a * 255))}
}

// pattern resolves p into a gg fill source. dx and dy shift document-space
// gradients when drawing into an offset layer. It reports false when p paints nothing.
func (c *canvas) pattern(p scene.Paint, alpha, dx, dy float64) (gg.Pattern, bool) {
	s := c.scale
	if p.Ref == "" {
		if p.Color == "" {
			return nil, false
		}
		return gg.NewSolidPattern(hexColor(p.Color, p.Opacity*alpha)), true
	}
	alpha *= p.Opacity
	switch d := c.doc.Def(p.Ref).(type) {
	case scene.LinearGradient:
		g := gg.NewLinearGradient(d.X1*s+dx, d.Y1*s+dy, d.X2*s+dx, d.Y2*s+dy)
		addStops(g, d.Stops, alpha)
		return g, true
	case scene.RadialGradient:
		w, h := float64(c.width), float64(c.height)
		cx, cy := d.CX*w+dx, d.CY*h+dy
		r := d.R * math.Hypot(w, h) / math.Sqrt2
		g := gg.NewRadialGradient(cx, cy, 0, cx, cy, r)
		addStops(g, d.Stops, alpha)
		return g, true
	case scene.Pattern:
		return gg.NewSurfacePattern(c.tile(d, alpha).Image(), gg.RepeatBoth), true
	}
	return nil, false
}

func addStops(g gg.Gradient, stops []scene.Stop, alpha float64) {
	for _, st := range stops {
		g.AddColorStop(st.Offset, hexColor(st.Color, st.Opacity*alpha))
	}
}

// tile paints one repetition of a pattern.
func (c *canvas) tile(p scene.Pattern, alpha float64) *gg.Context {
	w := max(1, int(math.Round(p.Width*c.scale)))
	h := max(1, int(math.Round(p.Height*c.scale)))
	tc := gg.NewContext(w, h)
	sub := &canvas{doc: c.doc, dc: tc, scale: c.scale, width: w, height: h, faces: c.faces, logger: c.logger}
	for _, n := range p.Nodes {
		if circle, ok := n.(scene.Circle); ok {
			circle.Fill.Opacity *= alpha
			sub.circle(circle)
		}
	}
	return tc
}

func fmtFloat(v float64) string { return strconv.FormatFloat(v, 'f', -1, 64) }
