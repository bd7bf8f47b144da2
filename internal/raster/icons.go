package raster

import (
	"image"
	"image/draw"
	"strings"

	"github.com/srwiley/oksvg"
	"github.com/srwiley/rasterx"

	"wallpaper/internal/scene"
)

// use draws a symbol instance through oksvg.
func (c *canvas) use(u scene.Use) {
	sym, ok := c.doc.Def(u.Href).(scene.Symbol)
	if !ok || sym.ViewBox <= 0 {
		return
	}
	stroke := u.Stroke
	if sym.Stroke != nil {
		stroke = sym.Stroke
	}
	if stroke == nil {
		return
	}
	s := c.scale
	x, y, w, h := u.Bounds()
	x, y, w, h = x*s, y*s, w*s, h*s

	// rasterx strokes after the view transform, so widths are given in pixels.
	markup := symbolMarkup(sym, stroke, stroke.Width*w/sym.ViewBox)
	icon, err := oksvg.ReadIconStream(strings.NewReader(markup), oksvg.WarnErrorMode)
	if err != nil {
		c.logger.Warn().Err(err).Str("symbol", u.Href).Msg("skip symbol")
		return
	}
	img, ok := c.dc.Image().(draw.Image)
	if !ok {
		return
	}
	icon.SetTarget(x, y, w, h)
	scanner := rasterx.NewScannerGV(c.width, c.height, img, image.Rect(0, 0, c.width, c.height))
	dasher := rasterx.NewDasher(c.width, c.height, scanner)
	icon.Draw(dasher, scene.Alpha(stroke.Opacity))
}

func symbolMarkup(sym scene.Symbol, st *scene.Stroke, width float64) string {
	var b strings.Builder
	vb := fmtFloat(sym.ViewBox)
	b.WriteString(`<svg xmlns="http://www.w3.org/2000/svg" viewBox="0 0 ` + vb + " " + vb + `">`)
	b.WriteString(`<g fill="none" stroke="` + st.Color + `" stroke-width="` + fmtFloat(width) + `"`)
	if st.Linecap != "" {
		b.WriteString(` stroke-linecap="` + st.Linecap + `"`)
	}
	if st.Linejoin != "" {
		b.WriteString(` stroke-linejoin="` + st.Linejoin + `"`)
	}
	b.WriteString(">")
	for _, ci := range sym.Circles {
		b.WriteString(`<circle cx="` + fmtFloat(ci.CX) + `" cy="` + fmtFloat(ci.CY) + `" r="` + fmtFloat(ci.R) + `"/>`)
	}
	for _, p := range sym.Paths {
		b.WriteString(`<path d="` + p + `"/>`)
	}
	b.WriteString("</g></svg>")
	return b.String()
}
