package raster

import (
	"image/color"

	"github.com/fogleman/gg"
	"golang.org/x/image/font"

	"wallpaper/internal/scene"
)

// text draws a single line. Solid fills go straight to the canvas; gradient
// fills are drawn as a mask and the gradient is painted through it.
func (c *canvas) text(t scene.Text) {
	if t.Content == "" || t.Fill.None() {
		return
	}
	alpha := scene.Alpha(t.Opacity)
	if t.Fill.Ref == "" {
		col := hexColor(t.Fill.Color, t.Fill.Opacity*alpha)
		c.drawText(c.dc, t, col)
		return
	}
	p, ok := c.pattern(t.Fill, alpha, 0, 0)
	if !ok {
		return
	}
	mask := gg.NewContext(c.width, c.height)
	c.drawText(mask, t, color.White)
	if err := c.dc.SetMask(mask.AsMask()); err != nil {
		c.logger.Warn().Err(err).Str("fill", t.Fill.Ref).Msg("skip text mask")
		return
	}
	c.dc.DrawRectangle(0, 0, float64(c.width), float64(c.height))
	c.dc.SetFillStyle(p)
	c.dc.Fill()
	c.dc.ResetClip()
}

func (c *canvas) drawText(dc *gg.Context, t scene.Text, col color.Color) {
	s := c.scale
	x, y := t.X*s, t.Y*s
	if t.RTL {
		c.drawRTL(dc, t, x, y, col)
		return
	}
	face := c.faces.face(t.Font, s)
	dc.SetFontFace(face)
	dc.SetColor(col)

	spacing := t.LetterSpacing * s
	if spacing == 0 {
		w, _ := dc.MeasureString(t.Content)
		dc.DrawString(t.Content, anchorX(x, w, t.Anchor), y)
		return
	}
	runes := []rune(t.Content)
	advances := make([]float64, len(runes))
	var w float64
	for i, r := range runes {
		advances[i] = advance(face, r)
		w += advances[i] + spacing
	}
	cx := anchorX(x, w, t.Anchor)
	for i, r := range runes {
		dc.DrawString(string(r), cx, y)
		cx += advances[i] + spacing
	}
}

func advance(face font.Face, r rune) float64 {
	adv, ok := face.GlyphAdvance(r)
	if !ok {
		return 0
	}
	return float64(adv) / 64
}

// anchorX returns the left edge of a run of width w anchored at x.
func anchorX(x, w float64, a scene.Anchor) float64 {
	switch a {
	case scene.AnchorMiddle:
		return x - w/2
	case scene.AnchorEnd:
		return x - w
	}
	return x
}
