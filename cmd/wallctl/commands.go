package main

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/dustin/go-humanize"
	"github.com/goccy/go-yaml"

	"wallpaper/internal/domain/wallconfig"
	"wallpaper/internal/raster"
	"wallpaper/internal/storage"
	"wallpaper/internal/token"
	"wallpaper/internal/wallpaper"
)

func (e *env) encodeLife(args []string) error {
	fs := newFlagSet("encode-life")
	dob := fs.String("dob", "", "date of birth, YYYY-MM-DD")
	tz := fs.String("tz", "UTC", "IANA time zone")
	title := fs.String("title", "", "headline (default \"Life Calendar\")")
	if err := parse(fs, args); err != nil {
		return err
	}

	cfg := wallconfig.NormalizeLife(wallconfig.LifeInput{DateOfBirth: *dob, TimeZone: *tz, Title: *title})
	if *dob != "" && cfg.DateOfBirth != *dob {
		e.logger.Warn().Str("dob", *dob).Str("used", cfg.DateOfBirth).Msg("date of birth replaced by default")
	}
	tok, err := token.Encode(cfg)
	if err != nil {
		return fmt.Errorf("encode token: %w", err)
	}
	e.row("date of birth", cfg.DateOfBirth)
	e.row("time zone", cfg.TimeZone)
	e.row("title", cfg.Title)
	e.links(tok)
	return nil
}

func (e *env) encodeRamadan(ctx context.Context, args []string) error {
	fs := newFlagSet("encode-ramadan")
	city := fs.String("city", "", "city label, or the search query when no coordinates are given")
	country := fs.String("country", "", "country label")
	lat := fs.String("lat", "", "latitude")
	lon := fs.String("lon", "", "longitude")
	tz := fs.String("tz", "", "IANA time zone (required with -lat/-lon)")
	method := fs.Int("method", wallconfig.DefaultCalculationMethod, "AlAdhan calculation method 0..23")
	title := fs.String("title", "", "headline (default \"Ramadan Calendar\")")
	theme := fs.String("theme", string(wallconfig.ThemeClassic), "classic or girly")
	if err := parse(fs, args); err != nil {
		return err
	}

	in := wallconfig.RamadanInput{
		City:              *city,
		Country:           *country,
		Latitude:          *lat,
		Longitude:         *lon,
		TimeZone:          *tz,
		CalculationMethod: float64(*method),
		Title:             *title,
		Theme:             *theme,
	}
	if *lat == "" || *lon == "" {
		if strings.TrimSpace(*city) == "" {
			return errors.New("provide -lat and -lon, or -city to search for")
		}
		_, geocoder := e.upstreams()
		found, err := geocoder.Geocode(ctx, *city)
		if err != nil {
			return fmt.Errorf("geocode %q: %w", *city, err)
		}
		in.City, in.Country = found.City, found.Country
		in.Latitude, in.Longitude = found.Latitude, found.Longitude
		in.TimeZone = found.TimeZone
	}
	cfg, ok := wallconfig.NormalizeRamadan(in)
	if !ok {
		return errors.New("could not build ramadan config: check coordinates and time zone")
	}
	tok, err := token.Encode(cfg)
	if err != nil {
		return fmt.Errorf("encode token: %w", err)
	}

	place := cfg.City
	if cfg.Country != "" {
		place += ", " + cfg.Country
	}
	e.row("place", place)
	e.row("coordinates", fmt.Sprintf("%.6f, %.6f", cfg.Latitude, cfg.Longitude))
	e.row("time zone", cfg.TimeZone)
	e.row("method", strconv.Itoa(cfg.CalculationMethod))
	e.row("theme", string(cfg.Theme))
	e.links(tok)
	return nil
}

func (e *env) links(tok string) {
	path := "/api/wallpaper/" + tok + "?w=" + strconv.Itoa(wallpaper.DefaultWidth) + "&h=" + strconv.Itoa(wallpaper.DefaultHeight)
	e.row("token", styles.token.Render(tok))
	e.row("wallpaper", e.baseURL+path)
	e.row("setup", e.baseURL+"/setup/"+tok)
}

type lifeView struct {
	Mode        string `yaml:"mode"`
	DateOfBirth string `yaml:"dateOfBirth"`
	TimeZone    string `yaml:"timeZone"`
	Title       string `yaml:"title"`
}

type ramadanView struct {
	Mode              string  `yaml:"mode"`
	City              string  `yaml:"city"`
	Country           string  `yaml:"country,omitempty"`
	Latitude          float64 `yaml:"latitude"`
	Longitude         float64 `yaml:"longitude"`
	TimeZone          string  `yaml:"timeZone"`
	CalculationMethod int     `yaml:"calculationMethod"`
	Title             string  `yaml:"title"`
	Theme             string  `yaml:"theme"`
}

// configYAML renders cfg with the same field names the HTTP API uses.
func configYAML(cfg wallconfig.Config) ([]byte, error) {
	var view any
	switch c := cfg.(type) {
	case wallconfig.Life:
		view = lifeView{string(c.Mode()), c.DateOfBirth, c.TimeZone, c.Title}
	case wallconfig.Ramadan:
		view = ramadanView{
			string(c.Mode()), c.City, c.Country, c.Latitude, c.Longitude,
			c.TimeZone, c.CalculationMethod, c.Title, string(c.Theme),
		}
	default:
		return nil, fmt.Errorf("unsupported config %T", cfg)
	}
	return yaml.Marshal(view)
}

func (e *env) decode(args []string) error {
	fs := newFlagSet("decode")
	if err := parse(fs, args); err != nil {
		return err
	}
	if fs.NArg() != 1 {
		return errors.New("decode takes exactly one token")
	}
	cfg, ok := token.Decode(fs.Arg(0))
	if !ok {
		return errors.New("invalid token")
	}
	out, err := configYAML(cfg)
	if err != nil {
		return err
	}
	_, err = e.out.Write(out)
	return err
}

func (e *env) render(ctx context.Context, args []string) error {
	fs := newFlagSet("render")
	width := fs.Int("w", wallpaper.DefaultWidth, "width in pixels")
	height := fs.Int("h", wallpaper.DefaultHeight, "height in pixels")
	atFlag := fs.String("at", "", "render instant, RFC 3339 or YYYY-MM-DD (default now)")
	format := fs.String("format", "png", "png or svg")
	outDir := fs.String("out", ".", "output directory")
	name := fs.String("name", "", "output file name (default {mode}-calendar-{token prefix}.{format})")
	if err := parse(fs, args); err != nil {
		return err
	}
	if fs.NArg() != 1 {
		return errors.New("render takes exactly one token")
	}
	tok := fs.Arg(0)
	at, err := parseInstant(*atFlag, time.Now())
	if err != nil {
		return err
	}

	timings, _ := e.upstreams()
	svc := wallpaper.NewService(timings, raster.New(e.logger), e.logger)
	var img *wallpaper.Image
	switch strings.ToLower(*format) {
	case "png":
		img, err = svc.Produce(ctx, tok, *width, *height, at)
	case "svg":
		img, err = svc.Vector(ctx, tok, *width, *height, at)
	default:
		return fmt.Errorf("unsupported format %q", *format)
	}
	if err != nil {
		return fmt.Errorf("render: %w", err)
	}

	dir, err := storage.NewOutputDir(*outDir)
	if err != nil {
		return err
	}
	file := *name
	if file == "" {
		file = img.Filename
	}
	path, err := dir.Save(ctx, file, img.Body)
	if err != nil {
		return err
	}
	e.row("wrote", path)
	e.row("size", humanize.Bytes(uint64(len(img.Body))))
	return nil
}

// parseInstant reads an RFC 3339 timestamp or a UTC calendar date; empty means now.
func parseInstant(v string, now time.Time) (time.Time, error) {
	v = strings.TrimSpace(v)
	if v == "" {
		return now, nil
	}
	for _, layout := range []string{time.RFC3339, time.DateOnly} {
		if t, err := time.Parse(layout, v); err == nil {
			return t, nil
		}
	}
	return time.Time{}, fmt.Errorf("invalid -at %q: want RFC 3339 or YYYY-MM-DD", v)
}

