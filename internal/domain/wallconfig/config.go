package wallconfig

import (
	"encoding/json"
	"time"
)

// Mode tags the wallpaper kind a configuration describes.
type Mode string

const (
	ModeLife    Mode = "life"
	ModeRamadan Mode = "ramadan"
)

// Theme selects the Ramadan visual variant.
type Theme string

const (
	ThemeClassic Theme = "classic"
	ThemeGirly   Theme = "girly"
)

const (
	// DefaultDateOfBirth is used when the input date is missing or not a real calendar date.
	DefaultDateOfBirth = "1996-01-01"
	// DefaultTimeZone is applied to life configs without a usable zone.
	DefaultTimeZone = "America/New_York"
	// DefaultLifeTitle is the life calendar heading.
	DefaultLifeTitle = "LIFE CALENDAR"
	// DefaultRamadanTitle is the Ramadan calendar heading.
	DefaultRamadanTitle = "RAMADAN CALENDAR"
	// DefaultCity labels Ramadan configs built from raw coordinates.
	DefaultCity = "Current Location"
	// DefaultCalculationMethod is the AlAdhan method id used when none is given.
	DefaultCalculationMethod = 2
	// DefaultTheme is the Ramadan theme used unless "girly" is requested.
	DefaultTheme = ThemeClassic

	MaxTitleLength = 28
	MaxPlaceLength = 40

	MinCalculationMethod = 0
	MaxCalculationMethod = 23
)

// Config is one of Life or Ramadan.
type Config interface {
	Mode() Mode
	isConfig()
}

// Life configures the week-grid wallpaper.
type Life struct {
	DateOfBirth string `json:"dateOfBirth"`
	TimeZone    string `json:"timeZone"`
	Title       string `json:"title"`
}

// Ramadan configures the prayer-time wallpaper.
type Ramadan struct {
	City              string  `json:"city"`
	Country           string  `json:"country"`
	Latitude          float64 `json:"latitude"`
	Longitude         float64 `json:"longitude"`
	TimeZone          string  `json:"timeZone"`
	CalculationMethod int     `json:"calculationMethod"`
	Title             string  `json:"title"`
	Theme             Theme   `json:"theme"`
}

func (Life) Mode() Mode    { return ModeLife }
func (Ramadan) Mode() Mode { return ModeRamadan }
func (Life) isConfig()     {}
func (Ramadan) isConfig()  {}

// Location returns the configured zone. Normalized configs always carry a loadable zone.
func (c Life) Location() *time.Location { return loadLocation(c.TimeZone) }

// Location returns the configured zone.
func (c Ramadan) Location() *time.Location { return loadLocation(c.TimeZone) }

// Input returns the loosely typed bag that normalizes back to c.
func (c Life) Input() LifeInput {
	return LifeInput{DateOfBirth: c.DateOfBirth, TimeZone: c.TimeZone, Title: c.Title}
}

// Input returns the loosely typed bag that normalizes back to c.
func (c Ramadan) Input() RamadanInput {
	return RamadanInput{
		City:              c.City,
		Country:           c.Country,
		Latitude:          c.Latitude,
		Longitude:         c.Longitude,
		TimeZone:          c.TimeZone,
		CalculationMethod: float64(c.CalculationMethod),
		Title:             c.Title,
		Theme:             string(c.Theme),
	}
}

// WithTheme returns a copy of c using theme t.
func (c Ramadan) WithTheme(t Theme) Ramadan {
	c.Theme = NormalizeTheme(string(t))
	return c
}

func (c Life) MarshalJSON() ([]byte, error) {
	type plain Life
	return json.Marshal(struct {
		Mode Mode `json:"mode"`
		plain
	}{ModeLife, plain(c)})
}

func (c Ramadan) MarshalJSON() ([]byte, error) {
	type plain Ramadan
	return json.Marshal(struct {
		Mode Mode `json:"mode"`
		plain
	}{ModeRamadan, plain(c)})
}

// LifeInput is the unvalidated form of Life. Fields hold whatever a JSON
// decoder produced: strings, float64s, bools or nil.
type LifeInput struct {
	DateOfBirth any `json:"dateOfBirth"`
	TimeZone    any `json:"timeZone"`
	Title       any `json:"title"`
}

// RamadanInput is the unvalidated form of Ramadan.
type RamadanInput struct {
	City              any `json:"city"`
	Country           any `json:"country"`
	Latitude          any `json:"latitude"`
	Longitude         any `json:"longitude"`
	TimeZone          any `json:"timeZone"`
	CalculationMethod any `json:"calculationMethod"`
	Title             any `json:"title"`
	Theme             any `json:"theme"`
}
