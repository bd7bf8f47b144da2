package handlers

import (
	"encoding/json"
	"errors"
	"net/http"
	"strings"

	"wallpaper/internal/domain"
	"wallpaper/internal/domain/wallconfig"
	"wallpaper/internal/token"
)

const maxTokenBody = 64 << 10

// tokenRequest keeps every field loosely typed; normalization decides what is usable.
type tokenRequest struct {
	Mode              any `json:"mode"`
	DateOfBirth       any `json:"dateOfBirth"`
	TimeZone          any `json:"timeZone"`
	Title             any `json:"title"`
	City              any `json:"city"`
	Country           any `json:"country"`
	Latitude          any `json:"latitude"`
	Longitude         any `json:"longitude"`
	CalculationMethod any `json:"calculationMethod"`
	Theme             any `json:"theme"`
}

type lifeTokenResponse struct {
	Mode   wallconfig.Mode `json:"mode"`
	Token  string          `json:"token"`
	Config wallconfig.Life `json:"config"`
	links
}

type themeVariant struct {
	Theme wallconfig.Theme `json:"theme"`
	Token string           `json:"token"`
	links
}

type ramadanTokenResponse struct {
	Mode     wallconfig.Mode                   `json:"mode"`
	Theme    wallconfig.Theme                  `json:"theme"`
	Token    string                            `json:"token"`
	Config   wallconfig.Ramadan                `json:"config"`
	Variants map[wallconfig.Theme]themeVariant `json:"variants"`
	links
}

// CreateToken normalizes a wallpaper configuration and returns its token and URLs.
func (a *App) CreateToken(w http.ResponseWriter, r *http.Request) {
	var req tokenRequest
	dec := json.NewDecoder(http.MaxBytesReader(w, r.Body, maxTokenBody))
	if err := dec.Decode(&req); err != nil {
		a.error(w, http.StatusBadRequest, "bad_request", "Invalid JSON body.")
		return
	}

	mode := wallconfig.ModeRamadan
	if req.Mode != nil {
		s, _ := req.Mode.(string)
		mode = wallconfig.Mode(s)
	}
	switch mode {
	case wallconfig.ModeLife:
		a.createLifeToken(w, r, req)
	case wallconfig.ModeRamadan:
		a.createRamadanToken(w, r, req)
	default:
		a.error(w, http.StatusBadRequest, "unsupported_mode", "Unsupported mode.")
	}
}

func (a *App) createLifeToken(w http.ResponseWriter, r *http.Request, req tokenRequest) {
	cfg := wallconfig.NormalizeLife(wallconfig.LifeInput{
		DateOfBirth: req.DateOfBirth,
		TimeZone:    req.TimeZone,
		Title:       req.Title,
	})
	tok, err := token.Encode(cfg)
	if err != nil {
		a.error(w, http.StatusInternalServerError, "internal", "Could not encode token.")
		return
	}
	a.json(w, http.StatusOK, lifeTokenResponse{
		Mode:   wallconfig.ModeLife,
		Token:  tok,
		Config: cfg,
		links:  linksFor(a.origin(r), tok),
	})
}

func (a *App) createRamadanToken(w http.ResponseWriter, r *http.Request, req tokenRequest) {
	var (
		cfg wallconfig.Ramadan
		ok  bool
	)
	lat, latOK := wallconfig.Number(req.Latitude)
	lon, lonOK := wallconfig.Number(req.Longitude)
	if latOK && lonOK {
		cfg, ok = wallconfig.NormalizeRamadan(wallconfig.RamadanInput{
			City:              req.City,
			Country:           req.Country,
			Latitude:          lat,
			Longitude:         lon,
			TimeZone:          req.TimeZone,
			CalculationMethod: req.CalculationMethod,
			Title:             req.Title,
			Theme:             req.Theme,
		})
	}

	if !ok {
		query, _ := req.City.(string)
		query = strings.TrimSpace(query)
		if query == "" {
			a.error(w, http.StatusBadRequest, "bad_request", "Provide exact latitude/longitude, or enter a city name.")
			return
		}
		if a.Geocoder == nil {
			a.error(w, http.StatusServiceUnavailable, "unavailable", "City search is not available.")
			return
		}
		city, err := a.Geocoder.Geocode(r.Context(), query)
		switch {
		case errors.Is(err, domain.ErrCityNotFound):
			a.error(w, http.StatusNotFound, "not_found", "City not found. Try with city and country, for example: Karachi Pakistan.")
			return
		case err != nil:
			a.Logger.Error().Err(err).Str("query", query).Msg("geocode failed")
			a.error(w, http.StatusBadGateway, "upstream_error", "City search failed.")
			return
		}
		cfg, ok = wallconfig.NormalizeRamadan(wallconfig.RamadanInput{
			City:              city.City,
			Country:           city.Country,
			Latitude:          city.Latitude,
			Longitude:         city.Longitude,
			TimeZone:          city.TimeZone,
			CalculationMethod: req.CalculationMethod,
			Title:             req.Title,
			Theme:             req.Theme,
		})
	}
	if !ok {
		a.error(w, http.StatusBadRequest, "bad_request", "Could not build ramadan config.")
		return
	}

	origin := a.origin(r)
	variants := make(map[wallconfig.Theme]themeVariant, 2)
	for _, th := range []wallconfig.Theme{wallconfig.ThemeClassic, wallconfig.ThemeGirly} {
		tok, err := token.Encode(cfg.WithTheme(th))
		if err != nil {
			a.error(w, http.StatusBadRequest, "bad_request", "Could not build themed ramadan config.")
			return
		}
		variants[th] = themeVariant{Theme: th, Token: tok, links: linksFor(origin, tok)}
	}

	primary := variants[cfg.Theme]
	a.json(w, http.StatusOK, ramadanTokenResponse{
		Mode:     wallconfig.ModeRamadan,
		Theme:    cfg.Theme,
		Token:    primary.Token,
		Config:   cfg,
		Variants: variants,
		links:    primary.links,
	})
}
