package compose

import (
	"bytes"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"wallpaper/internal/domain"
	"wallpaper/internal/domain/wallconfig"
	"wallpaper/internal/scene"
)

func sampleTimings() *domain.RamadanTimings {
	return &domain.RamadanTimings{
		GregorianDate: "01 Mar 2026",
		HijriDate:     "11 Ramaḍān 1447 AH",
		HijriMonth:    "Ramaḍān",
		HijriDay:      11,
		Sehri:         "05:12",
		Fajr:          "05:22",
		Dhuhr:         "12:35",
		Asr:           "16:48",
		Maghrib:       "18:31",
		Isha:          "19:45",
		Iftar:         "18:31",
	}
}

func sampleRamadan(t *testing.T, th wallconfig.Theme) wallconfig.Ramadan {
	t.Helper()
	cfg, ok := wallconfig.NormalizeRamadan(wallconfig.RamadanInput{
		City: "Karachi", Latitude: 24.86, Longitude: 67.0, TimeZone: "Asia/Karachi", Theme: string(th),
	})
	require.True(t, ok)
	return cfg
}

func texts(doc *scene.Document) []scene.Text {
	var out []scene.Text
	for _, n := range doc.Nodes {
		if t, ok := n.(scene.Text); ok {
			out = append(out, t)
		}
	}
	return out
}

func TestTo12Hour(t *testing.T) {
	cases := map[string]string{
		"00:15":       "12:15 AM",
		"13:05":       "1:05 PM",
		"23:59":       "11:59 PM",
		"12:00":       "12:00 PM",
		"7:03":        "7:03 AM",
		"N/A":         "N/A",
		"05:12 (PKT)": "05:12 (PKT)",
	}
	for in, want := range cases {
		assert.Equal(t, want, To12Hour(in), in)
	}
}

func TestLabels(t *testing.T) {
	loc, err := time.LoadLocation("America/New_York")
	require.NoError(t, err)
	instant := time.Date(2026, 1, 5, 3, 7, 0, 0, time.UTC)

	assert.Equal(t, "Sun, Jan 4", DateLabel(instant, loc))
	assert.Equal(t, "22:07", ClockLabel(instant, loc))
	assert.Equal(t, "Mon, Jan 5", DateLabel(instant, time.UTC))
}

func TestWeeksLived(t *testing.T) {
	cfg := wallconfig.Life{DateOfBirth: "2000-01-01", TimeZone: "UTC", Title: "T"}
	birth := time.Date(2000, 1, 1, 0, 0, 0, 0, time.UTC)

	t.Run("should count whole weeks", func(t *testing.T) {
		assert.Equal(t, 100, WeeksLived(cfg, birth.AddDate(0, 0, 700)))
		assert.Equal(t, 99, WeeksLived(cfg, birth.AddDate(0, 0, 699)))
	})
	t.Run("should clamp before birth and past the grid", func(t *testing.T) {
		assert.Equal(t, 0, WeeksLived(cfg, birth.AddDate(-1, 0, 0)))
		assert.Equal(t, TotalWeeks, WeeksLived(cfg, birth.AddDate(150, 0, 0)))
	})
	t.Run("should use the calendar day of the configured zone", func(t *testing.T) {
		// 700 days later at 02:00 UTC is still the previous day in New York.
		ny := cfg
		ny.TimeZone = "America/New_York"
		assert.Equal(t, 99, WeeksLived(ny, birth.AddDate(0, 0, 700).Add(2*time.Hour)))
	})
}

func TestLife(t *testing.T) {
	cfg := wallconfig.Life{DateOfBirth: "2000-01-01", TimeZone: "UTC", Title: "LIFE CALENDAR"}
	now := time.Date(2000, 1, 1, 12, 0, 0, 0, time.UTC).AddDate(0, 0, 700)
	doc := Life(cfg, Options{Width: 1290, Height: 2796, Now: now})

	t.Run("should draw one cell per week", func(t *testing.T) {
		var done, current, future int
		for _, n := range doc.Nodes {
			r, ok := n.(scene.Rect)
			if !ok || r.W == 1290 {
				continue
			}
			switch r.Fill.Color {
			case cellDone:
				done++
			case cellCurrent:
				current++
			case cellFuture:
				future++
				assert.Equal(t, cellFutureStroke, r.Stroke.Color)
			}
		}
		assert.Equal(t, 99, done)
		assert.Equal(t, 1, current)
		assert.Equal(t, TotalWeeks-100, future)
	})
	t.Run("should caption with separators", func(t *testing.T) {
		ts := texts(doc)
		require.Len(t, ts, 4)
		assert.Equal(t, "100 of 5,200 weeks lived", ts[3].Content)
		assert.Equal(t, "12:00", ts[1].Content)
		assert.Equal(t, 68.0, ts[0].Font.Size)
	})
	t.Run("should be deterministic", func(t *testing.T) {
		again := Life(cfg, Options{Width: 1290, Height: 2796, Now: now})
		assert.True(t, bytes.Equal(doc.SVG(), again.SVG()))
	})
	t.Run("should leave every cell future at birth", func(t *testing.T) {
		fresh := Life(cfg, Options{Width: 720, Height: 1280, Now: time.Date(2000, 1, 1, 0, 0, 0, 0, time.UTC)})
		for _, n := range fresh.Nodes {
			if r, ok := n.(scene.Rect); ok && r.W != 720 {
				assert.Equal(t, cellFuture, r.Fill.Color)
			}
		}
	})
}

func TestRamadan(t *testing.T) {
	opts := Options{Width: 1290, Height: 2796, Now: time.Date(2026, 3, 1, 22, 30, 0, 0, time.UTC)}
	classic := Ramadan(sampleRamadan(t, wallconfig.ThemeClassic), sampleTimings(), opts)
	girly := Ramadan(sampleRamadan(t, wallconfig.ThemeGirly), sampleTimings(), opts)

	labels := func(doc *scene.Document) []string {
		var out []string
		for _, tx := range texts(doc) {
			switch tx.Content {
			case "Sehri", "Fajr", "Zohar", "Asr", "Maghrib", "Isha":
				out = append(out, tx.Content)
			}
		}
		return out
	}

	t.Run("should keep the same entries in order for both themes", func(t *testing.T) {
		want := []string{"Sehri", "Fajr", "Zohar", "Asr", "Maghrib", "Isha"}
		assert.Equal(t, want, labels(classic))
		assert.Equal(t, want, labels(girly))
	})
	t.Run("should convert values to 12-hour clock", func(t *testing.T) {
		var values []string
		for _, tx := range texts(classic) {
			if tx.Fill.Color == "#F8EFD9" {
				values = append(values, tx.Content)
			}
		}
		assert.Equal(t, []string{"5:12 AM", "5:22 AM", "12:35 PM", "4:48 PM", "6:31 PM", "7:45 PM"}, values)
	})
	t.Run("should change geometry between themes", func(t *testing.T) {
		lc := newRamadanLayout(wallconfig.ThemeClassic, 1290, 2796)
		lg := newRamadanLayout(wallconfig.ThemeGirly, 1290, 2796)
		assert.Equal(t, 6, lc.columns)
		assert.Equal(t, 2, lg.columns)
		assert.InDelta(t, 1290*0.928, lc.panelWidth, 1e-9)
		assert.InDelta(t, 1290*0.87, lg.panelWidth, 1e-9)

		_, y0 := lg.card(0)
		_, y2 := lg.card(2)
		assert.InDelta(t, lg.cardH+lg.gapY, y2-y0, 1e-9)
		_, c5 := lc.card(5)
		assert.Equal(t, lc.cardTop, c5)
	})
	t.Run("should only draw the motif for girly", func(t *testing.T) {
		countPolygons := func(doc *scene.Document) int {
			n := 0
			for _, node := range doc.Nodes {
				if _, ok := node.(scene.Polygon); ok {
					n++
				}
			}
			return n
		}
		assert.Equal(t, 0, countPolygons(classic))
		assert.Equal(t, 3, countPolygons(girly))
	})
	t.Run("should take colors from the theme", func(t *testing.T) {
		assert.Contains(t, string(classic.SVG()), "#C5A164")
		assert.NotContains(t, string(girly.SVG()), "#C5A164")
		assert.Contains(t, string(girly.SVG()), "#F1C9DC")
	})
	t.Run("should fit the mosque at the bottom", func(t *testing.T) {
		last, ok := classic.Nodes[len(classic.Nodes)-1].(scene.Use)
		require.True(t, ok)
		x, y, w, h := last.Bounds()
		assert.InDelta(t, 1290, x*2+w, 1e-6)
		assert.InDelta(t, 2796-2796*0.012, y+h, 1e-6)
		assert.LessOrEqual(t, w, 1290*0.78+1e-9)
		assert.LessOrEqual(t, h, 2796*0.29+1e-9)
	})
	t.Run("should place the subtitle right to left", func(t *testing.T) {
		var found bool
		for _, tx := range texts(girly) {
			if tx.Content == RamadanSubtitle {
				found = tx.RTL
			}
		}
		assert.True(t, found)
	})
	t.Run("should be deterministic", func(t *testing.T) {
		again := Ramadan(sampleRamadan(t, wallconfig.ThemeGirly), sampleTimings(), opts)
		assert.Equal(t, string(girly.SVG()), string(again.SVG()))
	})
}
