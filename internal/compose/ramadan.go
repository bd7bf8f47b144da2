package compose

import (
	"math"

	"wallpaper/internal/domain"
	"wallpaper/internal/domain/wallconfig"
	"wallpaper/internal/scene"
	"wallpaper/internal/theme"
)

// RamadanSubtitle is the right-to-left greeting under the Hijri date.
const RamadanSubtitle = "رمضان کریم"

type entry struct {
	label string
	value string
	icon  string
	// iconNudge shifts the icon down by this fraction of the card height.
	iconNudge float64
}

func entries(t *domain.RamadanTimings) []entry {
	return []entry{
		{label: "Sehri", value: t.Sehri, icon: "icon-sehri", iconNudge: 0.006},
		{label: "Fajr", value: t.Fajr, icon: "icon-fajr", iconNudge: 0.012},
		{label: "Zohar", value: t.Dhuhr, icon: "icon-zohar", iconNudge: 0.006},
		{label: "Asr", value: t.Asr, icon: "icon-asr", iconNudge: 0.006},
		{label: "Maghrib", value: t.Maghrib, icon: "icon-maghrib", iconNudge: 0.012},
		{label: "Isha", value: t.Isha, icon: "icon-isha"},
	}
}

// ramadanLayout holds every theme-dependent proportion of the Ramadan wallpaper.
type ramadanLayout struct {
	grid       bool // two-column rows instead of a single strip
	panelLeft  float64
	panelWidth float64
	columns    int
	gapX, gapY float64
	cardW      float64
	cardH      float64
	cardTop    float64
	iconSize   float64

	mosqueScale float64
	mosqueX     float64
	mosqueY     float64

	titleOffset, hijriOffset, subOffset float64
}

func newRamadanLayout(th wallconfig.Theme, width, height int) ramadanLayout {
	w, h := float64(width), float64(height)
	l := ramadanLayout{grid: th == wallconfig.ThemeGirly}

	var mosqueMaxW, mosqueMaxH, mosqueInset float64
	if l.grid {
		l.panelWidth = w * 0.87
		l.columns = 2
		l.gapX, l.gapY = w*0.02, h*0.016
		l.cardH = h * 0.076
		l.cardTop = h * 0.565
		mosqueMaxW, mosqueMaxH, mosqueInset = w*0.72, h*0.24, h*0.006
		l.titleOffset, l.hijriOffset, l.subOffset = h*0.175, h*0.136, h*0.104
	} else {
		l.panelWidth = w * 0.928
		l.columns = 6
		l.gapX = w * 0.009
		l.cardH = h * 0.093
		l.cardTop = h * 0.572
		mosqueMaxW, mosqueMaxH, mosqueInset = w*0.78, h*0.29, h*0.012
		l.titleOffset, l.hijriOffset, l.subOffset = h*0.142, h*0.104, h*0.072
	}
	l.panelLeft = (w - l.panelWidth) / 2
	l.cardW = (l.panelWidth - l.gapX*float64(l.columns-1)) / float64(l.columns)
	if l.grid {
		l.iconSize = math.Min(l.cardW*0.16, l.cardH*0.45)
	} else {
		l.iconSize = math.Min(l.cardW*0.34, l.cardH*0.22)
	}

	l.mosqueScale = math.Min(mosqueMaxW/mosqueBase, mosqueMaxH/mosqueBase)
	size := mosqueBase * l.mosqueScale
	l.mosqueX = (w - size) / 2
	l.mosqueY = h - size - mosqueInset
	return l
}

// card returns the top-left corner of the i-th card.
func (l ramadanLayout) card(i int) (x, y float64) {
	row, col := 0, i
	if l.grid {
		row, col = i/l.columns, i%l.columns
	}
	return l.panelLeft + float64(col)*(l.cardW+l.gapX), l.cardTop + float64(row)*(l.cardH+l.gapY)
}

func (l ramadanLayout) rows() int {
	if l.grid {
		return 3
	}
	return 1
}

func (l ramadanLayout) rowCenterY() float64 { return l.cardTop + l.cardH/2 }

// Ramadan lays out the prayer-time wallpaper for cfg using the given day's timings.
func Ramadan(cfg wallconfig.Ramadan, timings *domain.RamadanTimings, opts Options) *scene.Document {
	tk := theme.For(cfg.Theme)
	l := newRamadanLayout(tk.ID, opts.Width, opts.Height)
	w, h := float64(opts.Width), float64(opts.Height)
	panelBottom := l.cardTop + float64(l.rows())*l.cardH + float64(l.rows()-1)*l.gapY

	doc := &scene.Document{Width: opts.Width, Height: opts.Height}
	doc.Define(
		scene.LinearGradient{
			ID: "bgMain", X2: w, Y2: h,
			Stops: []scene.Stop{
				scene.StopAt(0, tk.Background.Start),
				scene.StopAt(0.5, tk.Background.Mid),
				scene.StopAt(1, tk.Background.End),
			},
		},
		scene.RadialGradient{
			ID: "vignette", CX: 0.5, CY: 0.42, R: 0.72,
			Stops: []scene.Stop{
				{Offset: 0, Color: tk.Vignette.Inner, Opacity: tk.Vignette.InnerOpacity},
				{Offset: 0.68, Color: tk.Vignette.Mid, Opacity: tk.Vignette.MidOpacity},
				{Offset: 1, Color: tk.Vignette.Outer, Opacity: tk.Vignette.OuterOpacity},
			},
		},
		scene.Pattern{
			ID: "grain", Width: 8, Height: 8,
			Nodes: []scene.Node{
				scene.Circle{CX: 1, CY: 1, R: 0.45, Fill: scene.SolidAlpha(tk.Grain.A, tk.Grain.AOpacity)},
				scene.Circle{CX: 6, CY: 2, R: 0.4, Fill: scene.SolidAlpha(tk.Grain.B, tk.Grain.BOpacity)},
				scene.Circle{CX: 3, CY: 5, R: 0.5, Fill: scene.SolidAlpha(tk.Grain.C, tk.Grain.COpacity)},
				scene.Circle{CX: 7, CY: 7, R: 0.35, Fill: scene.SolidAlpha(tk.Grain.D, tk.Grain.DOpacity)},
			},
		},
		scene.LinearGradient{
			ID: "card", X1: l.panelLeft, Y1: l.cardTop, X2: l.panelLeft + l.panelWidth, Y2: panelBottom,
			Stops: []scene.Stop{scene.StopAt(0, tk.Card.Start), scene.StopAt(1, tk.Card.End)},
		},
		scene.LinearGradient{
			ID: "goldBorder", X1: l.panelLeft, X2: l.panelLeft + l.panelWidth,
			Stops: []scene.Stop{
				scene.StopAt(0, tk.Card.BorderStart),
				scene.StopAt(0.5, tk.Card.BorderMid),
				scene.StopAt(1, tk.Card.BorderEnd),
			},
		},
		scene.LinearGradient{
			ID: "goldText", X2: w,
			Stops: []scene.Stop{
				scene.StopAt(0, tk.Text.GoldStart),
				scene.StopAt(0.5, tk.Text.GoldMid),
				scene.StopAt(1, tk.Text.GoldEnd),
			},
		},
		scene.GlowFilter{ID: "cardGlow", StdDeviation: tk.Card.GlowStdDeviation, Opacity: tk.Card.GlowOpacity},
	)
	for _, s := range iconSymbols {
		doc.Define(s)
	}
	doc.Define(mosqueSymbol(tk))

	doc.Add(
		scene.Rect{W: w, H: h, Fill: scene.URL("bgMain")},
		scene.Rect{W: w, H: h, Fill: scene.URL("vignette")},
		scene.Rect{W: w, H: h, Fill: scene.URL("grain")},
	)
	if tk.HasMotif() {
		doc.Add(motif(tk, w, h)...)
	}

	title := cfg.Title
	if title == "" {
		title = wallconfig.DefaultRamadanTitle
	}
	cx, center := w/2, l.rowCenterY()
	serif := func(weight int, ratio float64) scene.Font {
		return scene.Font{Family: scene.FamilySerif, Weight: weight, Size: fontPx(opts.Width, ratio)}
	}
	doc.Add(
		scene.Text{
			X: cx, Y: center - l.titleOffset, Content: title,
			Font: serif(500, 0.026), Fill: scene.Solid(tk.Text.ModeTitle),
			Anchor: scene.AnchorMiddle, LetterSpacing: 2.2, Opacity: 0.9,
		},
		scene.Text{
			X: cx, Y: center - l.hijriOffset, Content: timings.HijriDate,
			Font: serif(600, 0.062), Fill: scene.URL("goldText"),
			Anchor: scene.AnchorMiddle, LetterSpacing: 0.7,
		},
		scene.Text{
			X: cx, Y: center - l.subOffset, Content: RamadanSubtitle,
			Font:   scene.Font{Family: scene.FamilyArabic, Weight: 500, Size: fontPx(opts.Width, 0.032)},
			Fill:   scene.Solid(tk.Text.HeaderSub),
			Anchor: scene.AnchorMiddle, Opacity: 0.84, RTL: true,
		},
	)

	for i, e := range entries(timings) {
		x, y := l.card(i)
		doc.Add(
			scene.Rect{
				X: x, Y: y, W: l.cardW, H: l.cardH, RX: l.cardW * tk.Card.OuterRadiusScale,
				Fill: scene.URL("card"), Stroke: scene.URL("goldBorder"), StrokeWidth: tk.Card.BorderWidth,
				Filter: "cardGlow",
			},
			scene.Rect{
				X: x + 2, Y: y + 2, W: l.cardW - 4, H: l.cardH - 4, RX: l.cardW * tk.Card.InnerRadiusScale,
				Stroke: scene.SolidAlpha(tk.Card.InnerStroke, tk.Card.InnerStrokeOpacity), StrokeWidth: 1,
			},
		)

		icon := scene.Use{Href: e.icon, W: l.iconSize, H: l.iconSize, Stroke: iconStroke(tk)}
		label := scene.Text{Content: e.label, Fill: scene.Solid(tk.Text.ColLabel)}
		value := scene.Text{Content: To12Hour(e.value), Fill: scene.Solid(tk.Text.ColValue)}
		if l.grid {
			icon.X = x + l.cardW*0.08
			icon.Y = y + (l.cardH-l.iconSize)/2
			label.X, label.Y = x+l.cardW*0.24, y+l.cardH*0.59
			label.Font, label.Anchor, label.LetterSpacing = serif(560, 0.029), scene.AnchorStart, 0.1
			value.X, value.Y = x+l.cardW*0.92, y+l.cardH*0.59
			value.Font, value.Anchor, value.LetterSpacing = serif(640, 0.028), scene.AnchorEnd, 0.08
		} else {
			icon.X = x + (l.cardW-l.iconSize)/2
			icon.Y = y + l.cardH*0.13
			label.X, label.Y = x+l.cardW/2, y+l.cardH*0.58
			label.Font, label.Anchor, label.LetterSpacing = serif(560, 0.027), scene.AnchorMiddle, 0.15
			value.X, value.Y = x+l.cardW/2, y+l.cardH*0.83
			value.Font, value.Anchor, value.LetterSpacing = serif(680, 0.031), scene.AnchorMiddle, 0.12
		}
		icon.Y += l.cardH * e.iconNudge
		doc.Add(icon, label, value)
	}

	doc.Add(scene.Use{
		Href: "mosque-outline", X: l.mosqueX, Y: l.mosqueY,
		W: mosqueBase, H: mosqueBase, Scale: l.mosqueScale,
	})
	return doc
}

// motif draws a crescent and three small stars above the header.
func motif(tk theme.Tokens, w, h float64) []scene.Node {
	cx, cy := w*0.84, h*0.22
	crescent := scene.SolidAlpha(tk.Motif.CrescentColor, tk.Motif.CrescentOpacity)
	star := scene.SolidAlpha(tk.Motif.StarColor, tk.Motif.StarOpacity)
	diamond := func(x0, x1, x2, yMid, yLow, yHigh float64) scene.Polygon {
		return scene.Polygon{
			Points: []scene.Point{{X: x0, Y: yMid}, {X: x1, Y: yLow}, {X: x2, Y: yMid}, {X: x1, Y: yHigh}},
			Fill:   star,
		}
	}
	return []scene.Node{
		scene.Circle{CX: cx, CY: cy, R: w * 0.102, Fill: crescent},
		scene.Circle{CX: cx + w*0.038, CY: cy - w*0.008, R: w * 0.086, Fill: scene.URL("bgMain")},
		diamond(w*0.17, w*0.178, w*0.186, h*0.2, h*0.214, h*0.186),
		diamond(w*0.24, w*0.247, w*0.255, h*0.14, h*0.152, h*0.128),
		diamond(w*0.77, w*0.777, w*0.785, h*0.1, h*0.112, h*0.088),
	}
}
