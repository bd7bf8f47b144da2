package raster

import (
	"image"
	"math"

	"github.com/anthonynsimon/bild/blur"
	"github.com/fogleman/gg"

	"wallpaper/internal/scene"
)

// glowMargin matches the filter region: 12% on each side of the shape.
const glowMargin = 0.12

// glow paints r into an offscreen layer, blurs it and composites the result at
// the filter opacity.
func (c *canvas) glow(r scene.Rect, f scene.GlowFilter) {
	s := c.scale
	x, y, w, h := r.X*s, r.Y*s, r.W*s, r.H*s
	ox := math.Floor(x - w*glowMargin)
	oy := math.Floor(y - h*glowMargin)
	lw := int(math.Ceil(w*(1+2*glowMargin))) + 1
	lh := int(math.Ceil(h*(1+2*glowMargin))) + 1
	if lw <= 0 || lh <= 0 {
		return
	}

	layer := gg.NewContext(lw, lh)
	c.rect(layer, r, -ox, -oy)

	// bild weighs kernel taps by exp(-x²/4r), so r = σ²/2 gives a Gaussian of σ.
	sigma := f.StdDeviation * s
	blurred := blur.Gaussian(layer.Image(), math.Max(0.5, sigma*sigma/2))
	fade(blurred, scene.Alpha(f.Opacity))
	c.dc.DrawImage(blurred, int(ox), int(oy))
}

// fade multiplies every premultiplied channel by a.
func fade(img *image.RGBA, a float64) {
	if a >= 1 {
		return
	}
	for i := range img.Pix {
		img.Pix[i] = uint8(float64(img.Pix[i])*a + 0.5)
	}
}
