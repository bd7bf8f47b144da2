package scene

import (
	"bytes"
	"encoding/xml"
	"strconv"
	"strings"
)

// Escape makes s safe for SVG text content and attribute values. Runes that
// XML cannot carry become U+FFFD.
func Escape(s string) string {
	var b strings.Builder
	_ = xml.EscapeText(&b, []byte(s))
	return b.String()
}

// Num formats a coordinate with two decimals.
func Num(v float64) string { return strconv.FormatFloat(v, 'f', 2, 64) }

func num5(v float64) string { return strconv.FormatFloat(v, 'f', 5, 64) }

// short formats style constants (opacities, stroke widths) without trailing zeros.
func short(v float64) string { return strconv.FormatFloat(v, 'f', -1, 64) }

var fontStacks = map[Family]string{
	FamilySans:   `&quot;SF Pro Display&quot;, &quot;Avenir Next&quot;, sans-serif`,
	FamilySerif:  `&quot;Cinzel&quot;, &quot;Times New Roman&quot;, serif`,
	FamilyArabic: `&quot;Noto Naskh Arabic&quot;, &quot;DejaVu Sans&quot;, serif`,
}

var anchors = map[Anchor]string{
	AnchorStart:  "start",
	AnchorMiddle: "middle",
	AnchorEnd:    "end",
}

type svgWriter struct {
	buf bytes.Buffer
}

func (w *svgWriter) str(parts ...string) {
	for _, p := range parts {
		w.buf.WriteString(p)
	}
}

func (w *svgWriter) attr(name, value string) {
	w.str(" ", name, `="`, value, `"`)
}

func (w *svgWriter) paint(name string, p Paint) {
	switch {
	case p.Ref != "":
		w.attr(name, "url(#"+p.Ref+")")
	case p.Color != "":
		w.attr(name, p.Color)
	default:
		w.attr(name, "none")
		return
	}
	if p.Opacity != 1 {
		w.attr(name+"-opacity", short(p.Opacity))
	}
}

func (w *svgWriter) stroke(s *Stroke) {
	if s == nil {
		return
	}
	w.attr("fill", "none")
	w.attr("stroke", s.Color)
	w.attr("stroke-width", short(s.Width))
	if s.Linecap != "" {
		w.attr("stroke-linecap", s.Linecap)
	}
	if s.Linejoin != "" {
		w.attr("stroke-linejoin", s.Linejoin)
	}
	if s.Opacity != 0 && s.Opacity != 1 {
		w.attr("opacity", short(s.Opacity))
	}
}

// SVG renders d as standalone SVG 1.1 markup. Equal documents give equal bytes.
func (d *Document) SVG() []byte {
	w := &svgWriter{}
	width, height := strconv.Itoa(d.Width), strconv.Itoa(d.Height)
	w.str(`<?xml version="1.0" encoding="UTF-8"?>`, "\n")
	w.str(`<svg width="`, width, `" height="`, height, `" viewBox="0 0 `, width, " ", height,
		`" fill="none" xmlns="http://www.w3.org/2000/svg">`, "\n")
	if len(d.Defs) > 0 {
		w.str("<defs>\n")
		for _, def := range d.Defs {
			def.writeSVG(w)
		}
		w.str("</defs>\n")
	}
	for _, n := range d.Nodes {
		n.writeSVG(w)
	}
	w.str("</svg>\n")
	return w.buf.Bytes()
}

func writeStops(w *svgWriter, stops []Stop) {
	for _, s := range stops {
		w.str("<stop")
		w.attr("offset", short(s.Offset*100)+"%")
		w.attr("stop-color", s.Color)
		if s.Opacity != 1 {
			w.attr("stop-opacity", short(s.Opacity))
		}
		w.str("/>")
	}
}

func (g LinearGradient) writeSVG(w *svgWriter) {
	w.str("<linearGradient")
	w.attr("id", g.ID)
	w.attr("gradientUnits", "userSpaceOnUse")
	w.attr("x1", Num(g.X1))
	w.attr("y1", Num(g.Y1))
	w.attr("x2", Num(g.X2))
	w.attr("y2", Num(g.Y2))
	w.str(">")
	writeStops(w, g.Stops)
	w.str("</linearGradient>\n")
}

func (g RadialGradient) writeSVG(w *svgWriter) {
	w.str("<radialGradient")
	w.attr("id", g.ID)
	w.attr("cx", short(g.CX*100)+"%")
	w.attr("cy", short(g.CY*100)+"%")
	w.attr("r", short(g.R*100)+"%")
	w.str(">")
	writeStops(w, g.Stops)
	w.str("</radialGradient>\n")
}

func (p Pattern) writeSVG(w *svgWriter) {
	w.str("<pattern")
	w.attr("id", p.ID)
	w.attr("width", short(p.Width))
	w.attr("height", short(p.Height))
	w.attr("patternUnits", "userSpaceOnUse")
	w.str(">")
	for _, n := range p.Nodes {
		n.writeSVG(w)
	}
	w.str("</pattern>\n")
}

func (f GlowFilter) writeSVG(w *svgWriter) {
	w.str(`<filter id="`, f.ID, `" x="-12%" y="-12%" width="124%" height="124%">`)
	w.str(`<feGaussianBlur stdDeviation="`, short(f.StdDeviation), `"/>`)
	w.str(`<feColorMatrix type="matrix" values="1 0 0 0 0 0 1 0 0 0 0 0 1 0 0 0 0 0 `, short(f.Opacity), ` 0"/>`)
	w.str("</filter>\n")
}

func (s Symbol) writeSVG(w *svgWriter) {
	vb := short(s.ViewBox)
	w.str(`<symbol id="`, s.ID, `" viewBox="0 0 `, vb, " ", vb, `">`)
	if s.Stroke != nil {
		w.str("<g")
		w.stroke(s.Stroke)
		w.str(">")
	}
	for _, c := range s.Circles {
		w.str(`<circle cx="`, short(c.CX), `" cy="`, short(c.CY), `" r="`, short(c.R), `"/>`)
	}
	for _, p := range s.Paths {
		w.str(`<path d="`, p, `"/>`)
	}
	if s.Stroke != nil {
		w.str("</g>")
	}
	w.str("</symbol>\n")
}

func (r Rect) writeSVG(w *svgWriter) {
	w.str("<rect")
	w.attr("x", Num(r.X))
	w.attr("y", Num(r.Y))
	w.attr("width", Num(r.W))
	w.attr("height", Num(r.H))
	if r.RX > 0 {
		w.attr("rx", Num(r.RX))
	}
	w.paint("fill", r.Fill)
	if !r.Stroke.None() {
		w.paint("stroke", r.Stroke)
		w.attr("stroke-width", short(r.StrokeWidth))
	}
	if r.Filter != "" {
		w.attr("filter", "url(#"+r.Filter+")")
	}
	w.str("/>\n")
}

func (c Circle) writeSVG(w *svgWriter) {
	w.str("<circle")
	w.attr("cx", Num(c.CX))
	w.attr("cy", Num(c.CY))
	w.attr("r", Num(c.R))
	w.paint("fill", c.Fill)
	w.str("/>\n")
}

func (p Polygon) writeSVG(w *svgWriter) {
	var d strings.Builder
	for i, pt := range p.Points {
		if i == 0 {
			d.WriteString("M ")
		} else {
			d.WriteString(" L ")
		}
		d.WriteString(Num(pt.X) + " " + Num(pt.Y))
	}
	d.WriteString(" Z")
	w.str("<path")
	w.attr("d", d.String())
	w.paint("fill", p.Fill)
	w.str("/>\n")
}

func (t Text) writeSVG(w *svgWriter) {
	w.str("<text")
	w.attr("x", Num(t.X))
	w.attr("y", Num(t.Y))
	w.attr("font-family", fontStacks[t.Font.Family])
	w.attr("font-weight", strconv.Itoa(t.Font.Weight))
	w.attr("font-size", short(t.Font.Size))
	w.paint("fill", t.Fill)
	w.attr("text-anchor", anchors[t.Anchor])
	if t.LetterSpacing != 0 {
		w.attr("letter-spacing", short(t.LetterSpacing))
	}
	if t.Opacity != 0 && t.Opacity != 1 {
		w.attr("opacity", short(t.Opacity))
	}
	if t.RTL {
		w.attr("direction", "rtl")
		w.attr("unicode-bidi", "plaintext")
	}
	w.str(">", Escape(t.Content), "</text>\n")
}

func (u Use) writeSVG(w *svgWriter) {
	if u.Scale > 0 {
		w.str(`<g transform="translate(`, Num(u.X), ", ", Num(u.Y), ") scale(", num5(u.Scale), `)">`)
		w.str(`<use href="#`, u.Href, `" width="`, short(u.W), `" height="`, short(u.H), `"`)
		w.stroke(u.Stroke)
		w.str("/></g>\n")
		return
	}
	w.str(`<use href="#`, u.Href, `"`)
	w.attr("x", Num(u.X))
	w.attr("y", Num(u.Y))
	w.attr("width", Num(u.W))
	w.attr("height", Num(u.H))
	w.stroke(u.Stroke)
	w.str("/>\n")
}
