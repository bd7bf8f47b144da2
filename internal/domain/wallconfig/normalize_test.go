package wallconfig

import (
	"encoding/json"
	"math"
	"strings"
	"testing"
)

func TestNormalizeLifeDefaults(t *testing.T) {
	cfg := NormalizeLife(LifeInput{})

	if cfg.DateOfBirth != DefaultDateOfBirth {
		t.Fatalf("DateOfBirth = %q, want %q", cfg.DateOfBirth, DefaultDateOfBirth)
	}
	if cfg.TimeZone != DefaultTimeZone {
		t.Fatalf("TimeZone = %q, want %q", cfg.TimeZone, DefaultTimeZone)
	}
	if cfg.Title != DefaultLifeTitle {
		t.Fatalf("Title = %q, want %q", cfg.Title, DefaultLifeTitle)
	}
}

func TestNormalizeLifeRejectsImpossibleDates(t *testing.T) {
	for _, in := range []any{"2023-02-30", "2023-13-01", "1990-1-5", "05/01/1990", 19900105.0, nil} {
		cfg := NormalizeLife(LifeInput{DateOfBirth: in})
		if cfg.DateOfBirth != DefaultDateOfBirth {
			t.Fatalf("DateOfBirth(%v) = %q, want default", in, cfg.DateOfBirth)
		}
	}
	cfg := NormalizeLife(LifeInput{DateOfBirth: "2024-02-29"})
	if cfg.DateOfBirth != "2024-02-29" {
		t.Fatalf("leap day rejected: %q", cfg.DateOfBirth)
	}
}

func TestNormalizeLifeTimeZone(t *testing.T) {
	if got := NormalizeLife(LifeInput{TimeZone: "Not/AZone"}).TimeZone; got != DefaultTimeZone {
		t.Fatalf("TimeZone = %q, want default", got)
	}
	if got := NormalizeLife(LifeInput{TimeZone: "Local"}).TimeZone; got != DefaultTimeZone {
		t.Fatalf("Local zone accepted: %q", got)
	}
	if got := NormalizeLife(LifeInput{TimeZone: "Asia/Karachi"}).TimeZone; got != "Asia/Karachi" {
		t.Fatalf("TimeZone = %q, want Asia/Karachi", got)
	}
}

func TestNormalizeLifeTitleCleanup(t *testing.T) {
	cfg := NormalizeLife(LifeInput{Title: "   my \t\n  life   "})
	if cfg.Title != "my life" {
		t.Fatalf("Title = %q, want %q", cfg.Title, "my life")
	}

	cfg = NormalizeLife(LifeInput{Title: strings.Repeat("x", 40)})
	if len(cfg.Title) != MaxTitleLength {
		t.Fatalf("Title length = %d, want %d", len(cfg.Title), MaxTitleLength)
	}

	cfg = NormalizeLife(LifeInput{Title: strings.Repeat("a", MaxTitleLength-1) + " bcd"})
	if want := strings.Repeat("a", MaxTitleLength-1); cfg.Title != want {
		t.Fatalf("Title cut after a space = %q, want %q", cfg.Title, want)
	}

	cfg = NormalizeLife(LifeInput{Title: "A\x01B\x7f \x00"})
	if cfg.Title != "AB" {
		t.Fatalf("Title with control characters = %q, want %q", cfg.Title, "AB")
	}

	cfg = NormalizeLife(LifeInput{Title: "    "})
	if cfg.Title != DefaultLifeTitle {
		t.Fatalf("blank Title = %q, want default", cfg.Title)
	}

	cfg = NormalizeLife(LifeInput{Title: 42.0})
	if cfg.Title != DefaultLifeTitle {
		t.Fatalf("numeric Title = %q, want default", cfg.Title)
	}
}

func validRamadanInput() RamadanInput {
	return RamadanInput{
		City:      "Karachi",
		Country:   "Pakistan",
		Latitude:  24.8607,
		Longitude: 67.0011,
		TimeZone:  "Asia/Karachi",
	}
}

func TestNormalizeRamadanDefaults(t *testing.T) {
	cfg, ok := NormalizeRamadan(RamadanInput{Latitude: 1.0, Longitude: 2.0, TimeZone: "UTC"})
	if !ok {
		t.Fatalf("expected valid config")
	}
	if cfg.City != DefaultCity {
		t.Fatalf("City = %q, want %q", cfg.City, DefaultCity)
	}
	if cfg.Country != "" {
		t.Fatalf("Country = %q, want empty", cfg.Country)
	}
	if cfg.CalculationMethod != DefaultCalculationMethod {
		t.Fatalf("CalculationMethod = %d, want %d", cfg.CalculationMethod, DefaultCalculationMethod)
	}
	if cfg.Title != DefaultRamadanTitle {
		t.Fatalf("Title = %q, want %q", cfg.Title, DefaultRamadanTitle)
	}
	if cfg.Theme != ThemeClassic {
		t.Fatalf("Theme = %q, want classic", cfg.Theme)
	}
}

func TestNormalizeRamadanClamps(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*RamadanInput)
		check   func(Ramadan) bool
		explain string
	}{
		{"latitude saturates", func(in *RamadanInput) { in.Latitude = 200.0 }, func(c Ramadan) bool { return c.Latitude == 90 }, "lat 200 -> 90"},
		{"longitude saturates", func(in *RamadanInput) { in.Longitude = -500.0 }, func(c Ramadan) bool { return c.Longitude == -180 }, "lon -500 -> -180"},
		{"method above range", func(in *RamadanInput) { in.CalculationMethod = 99.0 }, func(c Ramadan) bool { return c.CalculationMethod == 23 }, "method 99 -> 23"},
		{"method below range", func(in *RamadanInput) { in.CalculationMethod = -5.0 }, func(c Ramadan) bool { return c.CalculationMethod == 0 }, "method -5 -> 0"},
		{"method rounds half up", func(in *RamadanInput) { in.CalculationMethod = 3.5 }, func(c Ramadan) bool { return c.CalculationMethod == 4 }, "method 3.5 -> 4"},
		{"method numeric string", func(in *RamadanInput) { in.CalculationMethod = " 7 " }, func(c Ramadan) bool { return c.CalculationMethod == 7 }, "method \" 7 \" -> 7"},
		{"method garbage", func(in *RamadanInput) { in.CalculationMethod = "abc" }, func(c Ramadan) bool { return c.CalculationMethod == DefaultCalculationMethod }, "method abc -> default"},
		{"coordinates as strings", func(in *RamadanInput) { in.Latitude = "21.4225"; in.Longitude = "39.8262" }, func(c Ramadan) bool { return c.Latitude == 21.4225 && c.Longitude == 39.8262 }, "string coordinates parse"},
		{"theme girly", func(in *RamadanInput) { in.Theme = "girly" }, func(c Ramadan) bool { return c.Theme == ThemeGirly }, "girly kept"},
		{"theme unknown", func(in *RamadanInput) { in.Theme = "GIRLY" }, func(c Ramadan) bool { return c.Theme == ThemeClassic }, "unknown theme -> classic"},
		{"long city truncated", func(in *RamadanInput) { in.City = strings.Repeat("k", 50) }, func(c Ramadan) bool { return len(c.City) == MaxPlaceLength }, "city capped"},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			in := validRamadanInput()
			tc.mutate(&in)
			cfg, ok := NormalizeRamadan(in)
			if !ok {
				t.Fatalf("expected valid config")
			}
			if !tc.check(cfg) {
				t.Fatalf("%s: got %+v", tc.explain, cfg)
			}
		})
	}
}

func TestNormalizeRamadanInvalid(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*RamadanInput)
	}{
		{"unknown zone", func(in *RamadanInput) { in.TimeZone = "Not/AZone" }},
		{"missing zone", func(in *RamadanInput) { in.TimeZone = nil }},
		{"missing latitude", func(in *RamadanInput) { in.Latitude = nil }},
		{"blank longitude", func(in *RamadanInput) { in.Longitude = "" }},
		{"text latitude", func(in *RamadanInput) { in.Latitude = "north" }},
		{"infinite longitude", func(in *RamadanInput) { in.Longitude = math.Inf(1) }},
		{"bool latitude", func(in *RamadanInput) { in.Latitude = true }},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			in := validRamadanInput()
			tc.mutate(&in)
			if cfg, ok := NormalizeRamadan(in); ok {
				t.Fatalf("expected invalid config, got %+v", cfg)
			}
		})
	}
}

func TestNormalizationIsIdempotent(t *testing.T) {
	for _, title := range []any{"  days   left ", strings.Repeat("a", MaxTitleLength-1) + " bcd", "x\x01 \x02y"} {
		life := NormalizeLife(LifeInput{DateOfBirth: "1988-07-14", TimeZone: "Europe/Berlin", Title: title})
		if again := NormalizeLife(life.Input()); again != life {
			t.Fatalf("life not idempotent for %q: %+v vs %+v", title, again, life)
		}
	}

	long := validRamadanInput()
	long.City = strings.Repeat("c", MaxPlaceLength-1) + " d"
	long.Country = strings.Repeat("n", MaxPlaceLength-1) + " d"
	long.Title = strings.Repeat("t", MaxTitleLength-1) + " d"
	cut, ok := NormalizeRamadan(long)
	if !ok {
		t.Fatalf("expected valid config")
	}
	if strings.HasSuffix(cut.City, " ") || strings.HasSuffix(cut.Country, " ") || strings.HasSuffix(cut.Title, " ") {
		t.Fatalf("truncated fields keep a trailing space: %+v", cut)
	}
	if again, ok := NormalizeRamadan(cut.Input()); !ok || again != cut {
		t.Fatalf("truncated ramadan not idempotent: %+v vs %+v", again, cut)
	}

	in := validRamadanInput()
	in.Latitude = 123.0
	in.CalculationMethod = 41.2
	in.Theme = "girly"
	ramadan, ok := NormalizeRamadan(in)
	if !ok {
		t.Fatalf("expected valid config")
	}
	again, ok := NormalizeRamadan(ramadan.Input())
	if !ok || again != ramadan {
		t.Fatalf("ramadan not idempotent: %+v vs %+v", again, ramadan)
	}
}

func TestConfigJSONCarriesMode(t *testing.T) {
	raw, err := json.Marshal(NormalizeLife(LifeInput{}))
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	var out map[string]any
	if err := json.Unmarshal(raw, &out); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if out["mode"] != "life" || out["dateOfBirth"] != DefaultDateOfBirth {
		t.Fatalf("unexpected json: %s", raw)
	}
}
