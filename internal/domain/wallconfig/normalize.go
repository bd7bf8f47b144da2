package wallconfig

import (
	"encoding/json"
	"math"
	"regexp"
	"strconv"
	"strings"
	"time"
	_ "time/tzdata"
	"unicode"
)

var isoDatePattern = regexp.MustCompile(`^\d{4}-\d{2}-\d{2}$`)

// NormalizeLife turns any input into a valid life config, substituting defaults field by field.
func NormalizeLife(in LifeInput) Life {
	cfg := Life{
		DateOfBirth: DefaultDateOfBirth,
		TimeZone:    DefaultTimeZone,
		Title:       cleanText(in.Title, DefaultLifeTitle, MaxTitleLength),
	}
	if s, ok := in.DateOfBirth.(string); ok && IsISODate(s) {
		cfg.DateOfBirth = s
	}
	if s, ok := in.TimeZone.(string); ok && ValidTimeZone(s) {
		cfg.TimeZone = s
	}
	return cfg
}

// NormalizeRamadan validates in. It reports false when the time zone is not
// recognised or either coordinate is not a finite number; every other field
// is defaulted or clamped.
func NormalizeRamadan(in RamadanInput) (Ramadan, bool) {
	zone, _ := in.TimeZone.(string)
	if !ValidTimeZone(zone) {
		return Ramadan{}, false
	}
	lat, ok := toNumber(in.Latitude)
	if !ok {
		return Ramadan{}, false
	}
	lon, ok := toNumber(in.Longitude)
	if !ok {
		return Ramadan{}, false
	}

	method := DefaultCalculationMethod
	if m, ok := toNumber(in.CalculationMethod); ok {
		method = int(clamp(roundHalfUp(m), MinCalculationMethod, MaxCalculationMethod))
	}

	theme, _ := in.Theme.(string)
	return Ramadan{
		City:              cleanText(in.City, DefaultCity, MaxPlaceLength),
		Country:           cleanText(in.Country, "", MaxPlaceLength),
		Latitude:          clamp(lat, -90, 90),
		Longitude:         clamp(lon, -180, 180),
		TimeZone:          zone,
		CalculationMethod: method,
		Title:             cleanText(in.Title, DefaultRamadanTitle, MaxTitleLength),
		Theme:             NormalizeTheme(theme),
	}, true
}

// NormalizeTheme maps anything other than the literal "girly" to the default theme.
func NormalizeTheme(v string) Theme {
	if Theme(v) == ThemeGirly {
		return ThemeGirly
	}
	return DefaultTheme
}

// IsISODate reports whether s is a YYYY-MM-DD string naming a real calendar day.
func IsISODate(s string) bool {
	if !isoDatePattern.MatchString(s) {
		return false
	}
	_, err := time.Parse(time.DateOnly, s)
	return err == nil
}

// ValidTimeZone reports whether name is an IANA zone id known to the embedded database.
func ValidTimeZone(name string) bool {
	if name == "" || name == "Local" {
		return false
	}
	_, err := time.LoadLocation(name)
	return err == nil
}

func loadLocation(name string) *time.Location {
	if !ValidTimeZone(name) {
		return time.UTC
	}
	loc, err := time.LoadLocation(name)
	if err != nil {
		return time.UTC
	}
	return loc
}

// cleanText drops control characters, collapses whitespace runs and
// truncates to max runes. The result never ends in a space.
func cleanText(v any, fallback string, max int) string {
	s, ok := v.(string)
	if !ok {
		return fallback
	}
	s = strings.Map(func(r rune) rune {
		if unicode.IsControl(r) && !unicode.IsSpace(r) {
			return -1
		}
		return r
	}, s)
	s = strings.Join(strings.Fields(s), " ")
	if r := []rune(s); len(r) > max {
		s = strings.TrimRightFunc(string(r[:max]), unicode.IsSpace)
	}
	if s == "" {
		return fallback
	}
	return s
}

// toNumber coerces JSON numbers and numeric strings. Blank strings, bools and
// nil are not numbers here.
func toNumber(v any) (float64, bool) {
	var f float64
	switch x := v.(type) {
	case float64:
		f = x
	case float32:
		f = float64(x)
	case int:
		f = float64(x)
	case int64:
		f = float64(x)
	case json.Number:
		parsed, err := x.Float64()
		if err != nil {
			return 0, false
		}
		f = parsed
	case string:
		s := strings.TrimSpace(x)
		if s == "" {
			return 0, false
		}
		parsed, err := strconv.ParseFloat(s, 64)
		if err != nil {
			return 0, false
		}
		f = parsed
	default:
		return 0, false
	}
	if math.IsNaN(f) || math.IsInf(f, 0) {
		return 0, false
	}
	return f, true
}

func roundHalfUp(v float64) float64 {
	return math.Floor(v + 0.5)
}

func clamp(v, lo, hi float64) float64 {
	return math.Min(math.Max(v, lo), hi)
}

// Number coerces v the way coordinates are read: finite JSON numbers and
// numeric strings.
func Number(v any) (float64, bool) { return toNumber(v) }
