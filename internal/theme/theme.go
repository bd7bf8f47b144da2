// Package theme holds the static palette and proportions of each Ramadan theme.
package theme

import "wallpaper/internal/domain/wallconfig"

type Background struct {
	Start, Mid, End string
}

type Vignette struct {
	Inner        string
	InnerOpacity float64
	Mid          string
	MidOpacity   float64
	Outer        string
	OuterOpacity float64
}

// Grain is the four-dot noise tile laid over the background.
type Grain struct {
	A        string
	AOpacity float64
	B        string
	BOpacity float64
	C        string
	COpacity float64
	D        string
	DOpacity float64
}

type Card struct {
	Start              string
	End                string
	BorderStart        string
	BorderMid          string
	BorderEnd          string
	BorderWidth        float64
	InnerStroke        string
	InnerStrokeOpacity float64
	// Corner radii as a fraction of the card width.
	OuterRadiusScale float64
	InnerRadiusScale float64
	GlowColor        string
	GlowOpacity      float64
	GlowStdDeviation float64
}

type Text struct {
	GoldStart string
	GoldMid   string
	GoldEnd   string
	HeaderSub string
	ModeTitle string
	ColLabel  string
	ColValue  string
}

type Mosque struct {
	Stroke   string
	Width    float64
	Linecap  string
	Linejoin string
	Opacity  float64
}

type Motif struct {
	StarColor       string
	StarOpacity     float64
	CrescentColor   string
	CrescentOpacity float64
}

// Tokens is the complete look of one theme.
type Tokens struct {
	ID         wallconfig.Theme
	Background Background
	Vignette   Vignette
	Grain      Grain
	Card       Card
	Text       Text
	IconStroke string
	Mosque     Mosque
	Motif      Motif
}

var classic = Tokens{
	ID:         wallconfig.ThemeClassic,
	Background: Background{Start: "#030509", Mid: "#071226", End: "#020307"},
	Vignette: Vignette{
		Inner: "#15294D", InnerOpacity: 0.26,
		Mid: "#070D1C", MidOpacity: 0.14,
		Outer: "#000000", OuterOpacity: 0.55,
	},
	Grain: Grain{
		A: "#FFFFFF", AOpacity: 0.02,
		B: "#C8D4F2", BOpacity: 0.015,
		C: "#FFFFFF", COpacity: 0.018,
		D: "#9CB2DD", DOpacity: 0.012,
	},
	Card: Card{
		Start:              "#12213B",
		End:                "#0A1426",
		BorderStart:        "#8D6C3B",
		BorderMid:          "#DAB887",
		BorderEnd:          "#8A6838",
		BorderWidth:        1.35,
		InnerStroke:        "#D9BA86",
		InnerStrokeOpacity: 0.11,
		OuterRadiusScale:   0.14,
		InnerRadiusScale:   0.12,
		GlowColor:          "#DAB887",
		GlowOpacity:        0.08,
		GlowStdDeviation:   1.1,
	},
	Text: Text{
		GoldStart: "#9A7742",
		GoldMid:   "#E1C28F",
		GoldEnd:   "#9A7742",
		HeaderSub: "#B89E70",
		ModeTitle: "#AC946A",
		ColLabel:  "#C3A36D",
		ColValue:  "#F8EFD9",
	},
	IconStroke: "#C5A164",
	Mosque:     Mosque{Stroke: "#B58E52", Width: 3.6, Linecap: "round", Linejoin: "round", Opacity: 0.94},
	Motif:      Motif{StarColor: "#DAB887", CrescentColor: "#DAB887"},
}

var girly = Tokens{
	ID:         wallconfig.ThemeGirly,
	Background: Background{Start: "#241327", Mid: "#3A1C3F", End: "#160A1B"},
	Vignette: Vignette{
		Inner: "#6A3F78", InnerOpacity: 0.3,
		Mid: "#2A1332", MidOpacity: 0.18,
		Outer: "#07020A", OuterOpacity: 0.56,
	},
	Grain: Grain{
		A: "#FFE9F5", AOpacity: 0.018,
		B: "#FFD5E6", BOpacity: 0.014,
		C: "#FFF3DE", COpacity: 0.016,
		D: "#F3C8D9", DOpacity: 0.012,
	},
	Card: Card{
		Start:              "#4A294F",
		End:                "#2C1636",
		BorderStart:        "#D6AFC4",
		BorderMid:          "#F1D7C1",
		BorderEnd:          "#C38AA9",
		BorderWidth:        1.2,
		InnerStroke:        "#F0C6D9",
		InnerStrokeOpacity: 0.2,
		OuterRadiusScale:   0.19,
		InnerRadiusScale:   0.16,
		GlowColor:          "#F6C1D5",
		GlowOpacity:        0.22,
		GlowStdDeviation:   1.75,
	},
	Text: Text{
		GoldStart: "#D9A6BF",
		GoldMid:   "#F5DEC4",
		GoldEnd:   "#D9A6BF",
		HeaderSub: "#E8BFD3",
		ModeTitle: "#D7ADC1",
		ColLabel:  "#F0CADB",
		ColValue:  "#FFF1E5",
	},
	IconStroke: "#F1C9DC",
	Mosque:     Mosque{Stroke: "#E7BCD0", Width: 4.6, Linecap: "round", Linejoin: "round", Opacity: 0.9},
	Motif:      Motif{StarColor: "#FCE3EF", StarOpacity: 0.62, CrescentColor: "#F6C8DB", CrescentOpacity: 0.09},
}

// For returns the tokens of t, falling back to classic for unknown ids.
func For(t wallconfig.Theme) Tokens {
	if t == wallconfig.ThemeGirly {
		return girly
	}
	return classic
}

// HasMotif reports whether the theme draws decorative shapes behind the header.
func (t Tokens) HasMotif() bool {
	return t.Motif.StarOpacity > 0 || t.Motif.CrescentOpacity > 0
}
