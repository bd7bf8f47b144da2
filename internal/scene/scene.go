// Package scene is the vector drawing list produced by the compositor and
// consumed by the rasterizer. Nodes paint in order; later nodes cover earlier ones.
package scene

// Document is a complete wallpaper in pixel coordinates.
type Document struct {
	Width  int
	Height int
	Defs   []Def
	Nodes  []Node
}

// Def is a reusable resource referenced by id: a gradient, pattern, filter or symbol.
type Def interface {
	DefID() string
	writeSVG(w *svgWriter)
}

// Node is a drawable element.
type Node interface {
	writeSVG(w *svgWriter)
}

// Def returns the definition with the given id, or nil.
func (d *Document) Def(id string) Def {
	for _, def := range d.Defs {
		if def.DefID() == id {
			return def
		}
	}
	return nil
}

// Add appends nodes in paint order.
func (d *Document) Add(nodes ...Node) {
	d.Nodes = append(d.Nodes, nodes...)
}

// Define appends definitions.
func (d *Document) Define(defs ...Def) {
	d.Defs = append(d.Defs, defs...)
}

// Paint is a fill or stroke source. The zero value paints nothing.
type Paint struct {
	Color   string // #RRGGBB
	Ref     string // id of a gradient or pattern
	Opacity float64
}

func Solid(color string) Paint { return Paint{Color: color, Opacity: 1} }

func SolidAlpha(color string, opacity float64) Paint {
	return Paint{Color: color, Opacity: opacity}
}

func URL(id string) Paint { return Paint{Ref: id, Opacity: 1} }

// None reports whether p paints nothing.
func (p Paint) None() bool { return p.Color == "" && p.Ref == "" }

type Stop struct {
	Offset  float64 // 0..1
	Color   string
	Opacity float64
}

func StopAt(offset float64, color string) Stop {
	return Stop{Offset: offset, Color: color, Opacity: 1}
}

// LinearGradient runs from (X1,Y1) to (X2,Y2) in document coordinates.
type LinearGradient struct {
	ID             string
	X1, Y1, X2, Y2 float64
	Stops          []Stop
}

// RadialGradient is positioned in fractions of the painted shape's bounds.
type RadialGradient struct {
	ID        string
	CX, CY, R float64
	Stops     []Stop
}

// Pattern tiles its nodes every Width x Height units.
type Pattern struct {
	ID            string
	Width, Height float64
	Nodes         []Node
}

// GlowFilter replaces the filtered shape with a blurred copy at reduced alpha.
type GlowFilter struct {
	ID           string
	StdDeviation float64
	Opacity      float64
}

// Stroke styles outline drawings.
type Stroke struct {
	Color    string
	Width    float64
	Linecap  string
	Linejoin string
	Opacity  float64 // 0 means opaque
}

// Symbol is a square line drawing in its own ViewBox x ViewBox space.
type Symbol struct {
	ID      string
	ViewBox float64
	Paths   []string
	Circles []Circle
	// Stroke, when set, is baked into the symbol and wins over the instance stroke.
	Stroke *Stroke
}

func (g LinearGradient) DefID() string { return g.ID }
func (g RadialGradient) DefID() string { return g.ID }
func (p Pattern) DefID() string        { return p.ID }
func (f GlowFilter) DefID() string     { return f.ID }
func (s Symbol) DefID() string         { return s.ID }

type Rect struct {
	X, Y, W, H  float64
	RX          float64
	Fill        Paint
	Stroke      Paint
	StrokeWidth float64
	Filter      string
}

type Circle struct {
	CX, CY, R float64
	Fill      Paint
}

type Point struct{ X, Y float64 }

// Polygon is a closed straight-edged path.
type Polygon struct {
	Points []Point
	Fill   Paint
}

type Family int

const (
	FamilySans Family = iota
	FamilySerif
	FamilyArabic
)

type Font struct {
	Family Family
	Weight int
	Size   float64
}

// Bold reports whether the weight maps to a bold face.
func (f Font) Bold() bool { return f.Weight >= 600 }

type Anchor int

const (
	AnchorStart Anchor = iota
	AnchorMiddle
	AnchorEnd
)

// Text is a single line whose baseline sits at Y.
type Text struct {
	X, Y          float64
	Content       string
	Font          Font
	Fill          Paint
	Anchor        Anchor
	LetterSpacing float64
	Opacity       float64 // 0 means opaque
	RTL           bool
}

// Use places a symbol into the W x H box at (X,Y). A non-zero Scale is applied
// around the box origin after placement.
type Use struct {
	Href       string
	X, Y, W, H float64
	Scale      float64
	Stroke     *Stroke
}

// Bounds returns the placed box in document coordinates.
func (u Use) Bounds() (x, y, w, h float64) {
	if u.Scale > 0 {
		return u.X, u.Y, u.W * u.Scale, u.H * u.Scale
	}
	return u.X, u.Y, u.W, u.H
}

// Alpha resolves an optional opacity where 0 stands for opaque.
func Alpha(opacity float64) float64 {
	if opacity <= 0 || opacity > 1 {
		return 1
	}
	return opacity
}
