package compose

import (
	"math"
	"time"

	"github.com/dustin/go-humanize"

	"wallpaper/internal/domain/wallconfig"
	"wallpaper/internal/scene"
)

const (
	lifeColumns = 52
	lifeRows    = 100
	// TotalWeeks is the number of cells in the life grid.
	TotalWeeks = lifeColumns * lifeRows
)

const (
	cellCurrent      = "#8d9299"
	cellDone         = "#e6e8ec"
	cellFuture       = "#050608"
	cellFutureStroke = "#2a2d32"
)

// WeeksLived counts whole weeks between the birth date and the calendar day
// containing now in the config's zone, clamped to the grid.
func WeeksLived(cfg wallconfig.Life, now time.Time) int {
	birth, err := time.Parse(time.DateOnly, cfg.DateOfBirth)
	if err != nil {
		return 0
	}
	y, m, d := now.In(cfg.Location()).Date()
	today := time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
	days := (today.Unix() - birth.Unix()) / 86400
	if days < 0 {
		days = 0
	}
	weeks := int(days / 7)
	return min(max(weeks, 0), TotalWeeks)
}

// Life lays out the week grid wallpaper.
func Life(cfg wallconfig.Life, opts Options) *scene.Document {
	w, h := float64(opts.Width), float64(opts.Height)
	loc := cfg.Location()
	weeks := WeeksLived(cfg, opts.Now)
	current := min(max(weeks-1, 0), TotalWeeks-1)

	doc := &scene.Document{Width: opts.Width, Height: opts.Height}
	doc.Define(scene.LinearGradient{
		ID: "bg", X2: w, Y2: h,
		Stops: []scene.Stop{scene.StopAt(0, "#030405"), scene.StopAt(1, "#000000")},
	})
	doc.Add(scene.Rect{W: w, H: h, Fill: scene.URL("bg")})

	cx := w / 2
	doc.Add(
		scene.Text{
			X: cx, Y: h * 0.098, Content: DateLabel(opts.Now, loc),
			Font:   scene.Font{Family: scene.FamilySans, Weight: 700, Size: fontPx(opts.Width, 0.053)},
			Fill:   scene.Solid("#7a7d83"),
			Anchor: scene.AnchorMiddle,
		},
		scene.Text{
			X: cx, Y: h * 0.257, Content: ClockLabel(opts.Now, loc),
			Font:          scene.Font{Family: scene.FamilySans, Weight: 680, Size: fontPx(opts.Width, 0.335)},
			Fill:          scene.Solid("#4b4f55"),
			Anchor:        scene.AnchorMiddle,
			LetterSpacing: 2,
		},
		scene.Text{
			X: cx, Y: h * 0.312, Content: cfg.Title,
			Font:          scene.Font{Family: scene.FamilySans, Weight: 520, Size: fontPx(opts.Width, 0.056)},
			Fill:          scene.Solid("#f1f3f7"),
			Anchor:        scene.AnchorMiddle,
			LetterSpacing: 8,
		},
		scene.Text{
			X: cx, Y: h * 0.336,
			Content: humanize.Comma(int64(weeks)) + " of " + humanize.Comma(TotalWeeks) + " weeks lived",
			Font:    scene.Font{Family: scene.FamilySans, Weight: 500, Size: fontPx(opts.Width, 0.022)},
			Fill:    scene.Solid("#676d75"),
			Anchor:  scene.AnchorMiddle,
		},
	)

	unit := math.Min(w*0.82/lifeColumns, h*0.47/lifeRows)
	dot := math.Max(3, unit*0.65)
	offset := (unit - dot) / 2
	left := (w - lifeColumns*unit) / 2
	top := h * 0.372
	radius := math.Max(1.8, dot*0.18)

	for row := 0; row < lifeRows; row++ {
		for col := 0; col < lifeColumns; col++ {
			idx := row*lifeColumns + col
			cell := scene.Rect{
				X:  left + float64(col)*unit + offset,
				Y:  top + float64(row)*unit + offset,
				W:  dot,
				H:  dot,
				RX: radius,
			}
			switch {
			case idx == current && weeks > 0:
				cell.Fill = scene.Solid(cellCurrent)
			case idx < weeks:
				cell.Fill = scene.Solid(cellDone)
			default:
				cell.Fill = scene.Solid(cellFuture)
				cell.Stroke = scene.Solid(cellFutureStroke)
				cell.StrokeWidth = 1.2
			}
			doc.Add(cell)
		}
	}
	return doc
}
