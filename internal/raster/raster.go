// Package raster turns a scene.Document into PNG bytes.
package raster

import (
	"bytes"
	"fmt"
	"image/png"
	"math"
	"time"

	"github.com/fogleman/gg"
	"github.com/rs/zerolog"
	"golang.org/x/image/font"

	"wallpaper/internal/scene"
)

// Rasterizer renders documents at a requested pixel width. It is safe for
// concurrent use.
type Rasterizer struct {
	logger zerolog.Logger
}

func New(logger zerolog.Logger) *Rasterizer {
	return &Rasterizer{logger: logger}
}

// canvas is the state of a single render.
type canvas struct {
	doc    *scene.Document
	dc     *gg.Context
	scale  float64
	width  int
	height int
	faces  *faceCache
	logger zerolog.Logger
}

// Rasterize paints doc scaled to width pixels and encodes it as PNG. A
// non-positive width keeps the document size.
func (r *Rasterizer) Rasterize(doc *scene.Document, width int) ([]byte, error) {
	if doc == nil || doc.Width <= 0 || doc.Height <= 0 {
		return nil, fmt.Errorf("raster: empty document")
	}
	fs, err := loadFonts()
	if err != nil {
		return nil, err
	}
	if width <= 0 {
		width = doc.Width
	}
	start := time.Now()
	scale := float64(width) / float64(doc.Width)
	height := int(math.Round(float64(doc.Height) * scale))

	c := &canvas{
		doc:    doc,
		dc:     gg.NewContext(width, height),
		scale:  scale,
		width:  width,
		height: height,
		faces:  &faceCache{fonts: fs, faces: map[faceKey]font.Face{}},
		logger: r.logger,
	}
	for _, n := range doc.Nodes {
		c.node(n)
	}

	var buf bytes.Buffer
	enc := png.Encoder{CompressionLevel: png.BestCompression}
	if err := enc.Encode(&buf, c.dc.Image()); err != nil {
		return nil, fmt.Errorf("raster: encode png: %w", err)
	}
	r.logger.Debug().
		Int("width", width).
		Int("height", height).
		Int("nodes", len(doc.Nodes)).
		Int("bytes", buf.Len()).
		Dur("elapsed", time.Since(start)).
		Msg("rasterized")
	return buf.Bytes(), nil
}

func (c *canvas) node(n scene.Node) {
	switch n := n.(type) {
	case scene.Rect:
		if f, ok := c.doc.Def(n.Filter).(scene.GlowFilter); ok {
			c.glow(n, f)
			return
		}
		c.rect(c.dc, n, 0, 0)
	case scene.Circle:
		c.circle(n)
	case scene.Polygon:
		c.polygon(n)
	case scene.Text:
		c.text(n)
	case scene.Use:
		c.use(n)
	}
}

// rect paints r into dc, shifted by (dx, dy) pixels.
func (c *canvas) rect(dc *gg.Context, r scene.Rect, dx, dy float64) {
	s := c.scale
	path := func() {
		x, y, w, h := r.X*s+dx, r.Y*s+dy, r.W*s, r.H*s
		if r.RX > 0 {
			dc.DrawRoundedRectangle(x, y, w, h, r.RX*s)
		} else {
			dc.DrawRectangle(x, y, w, h)
		}
	}
	if p, ok := c.pattern(r.Fill, 1, dx, dy); ok {
		path()
		dc.SetFillStyle(p)
		dc.Fill()
	}
	if p, ok := c.pattern(r.Stroke, 1, dx, dy); ok && r.StrokeWidth > 0 {
		path()
		dc.SetStrokeStyle(p)
		dc.SetLineWidth(r.StrokeWidth * s)
		dc.Stroke()
	}
}

func (c *canvas) circle(ci scene.Circle) {
	p, ok := c.pattern(ci.Fill, 1, 0, 0)
	if !ok {
		return
	}
	s := c.scale
	c.dc.DrawCircle(ci.CX*s, ci.CY*s, ci.R*s)
	c.dc.SetFillStyle(p)
	c.dc.Fill()
}

func (c *canvas) polygon(pg scene.Polygon) {
	p, ok := c.pattern(pg.Fill, 1, 0, 0)
	if !ok || len(pg.Points) < 3 {
		return
	}
	s := c.scale
	c.dc.NewSubPath()
	for i, pt := range pg.Points {
		if i == 0 {
			c.dc.MoveTo(pt.X*s, pt.Y*s)
			continue
		}
		c.dc.LineTo(pt.X*s, pt.Y*s)
	}
	c.dc.ClosePath()
	c.dc.SetFillStyle(p)
	c.dc.Fill()
}
