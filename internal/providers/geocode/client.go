// Package geocode resolves city names through the Open-Meteo geocoding API.
package geocode

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/rs/zerolog"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"wallpaper/internal/domain"
	"wallpaper/internal/infra"
	"wallpaper/internal/providers/memo"
)

const (
	defaultBaseURL = "https://geocoding-api.open-meteo.com/v1"
	userAgent      = "wallpaper-renderer/1.0"
)

// Options configures the geocoding client.
type Options struct {
	BaseURL        string
	HTTPClient     *http.Client
	Logger         *infra.Logger
	RequestTimeout time.Duration
	// CacheTTL keeps resolved names. Zero uses 24 hours; negative disables caching.
	CacheTTL time.Duration
}

// Client looks up cities by name.
type Client struct {
	baseURL    string
	httpClient *http.Client
	logger     *infra.Logger
	cache      *memo.Cache[*domain.GeocodedCity]
}

type searchResponse struct {
	Results []struct {
		Name      string  `json:"name"`
		Country   string  `json:"country"`
		Latitude  float64 `json:"latitude"`
		Longitude float64 `json:"longitude"`
		Timezone  string  `json:"timezone"`
	} `json:"results"`
}

// NewClient constructs a client with sane defaults and injected dependencies.
func NewClient(opts Options) *Client {
	httpClient := opts.HTTPClient
	if httpClient == nil {
		timeout := opts.RequestTimeout
		if timeout <= 0 {
			timeout = 10 * time.Second
		}
		httpClient = &http.Client{Timeout: timeout}
	}
	baseURL := strings.TrimRight(opts.BaseURL, "/")
	if baseURL == "" {
		baseURL = defaultBaseURL
	}
	logger := opts.Logger
	if logger == nil {
		l := infra.Logger(zerolog.New(io.Discard))
		logger = &l
	}
	ttl := opts.CacheTTL
	if ttl == 0 {
		ttl = 24 * time.Hour
	}
	return &Client{
		baseURL:    baseURL,
		httpClient: httpClient,
		logger:     logger,
		cache:      memo.New[*domain.GeocodedCity](ttl),
	}
}

// Geocode resolves query, retrying with the text before the first comma and
// then with the first word when the full query finds nothing.
func (c *Client) Geocode(ctx context.Context, query string) (*domain.GeocodedCity, error) {
	normalized := strings.TrimSpace(query)
	if normalized == "" {
		return nil, domain.ErrCityNotFound
	}
	for _, candidate := range candidates(normalized) {
		city, err := c.cache.Do(ctx, strings.ToLower(candidate), func(ctx context.Context) (*domain.GeocodedCity, error) {
			return c.search(ctx, candidate)
		})
		if err != nil {
			return nil, err
		}
		if city != nil {
			return city, nil
		}
	}
	c.logger.Debug().Str("query", normalized).Msg("geocode: no match")
	return nil, domain.ErrCityNotFound
}

// candidates lists the lookups to try in order, skipping repeats.
func candidates(q string) []string {
	out := []string{q}
	if comma, _, _ := strings.Cut(q, ","); strings.TrimSpace(comma) != "" && strings.TrimSpace(comma) != q {
		out = append(out, strings.TrimSpace(comma))
	}
	if fields := strings.Fields(q); len(fields) > 0 && fields[0] != q {
		out = append(out, fields[0])
	}
	return out
}

// search performs one lookup. A nil city with a nil error means no match;
// upstream failures count as no match so the next candidate is tried.
func (c *Client) search(ctx context.Context, name string) (*domain.GeocodedCity, error) {
	params := url.Values{}
	params.Set("name", name)
	params.Set("count", "1")
	params.Set("language", "en")
	params.Set("format", "json")
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+"/search?"+params.Encode(), nil)
	if err != nil {
		return nil, fmt.Errorf("geocode: build request: %w", err)
	}
	req.Header.Set("User-Agent", userAgent)
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		if ctx.Err() != nil {
			return nil, fmt.Errorf("geocode: http request: %w", err)
		}
		c.logger.Warn().Err(err).Str("name", name).Msg("geocode: request failed")
		return nil, nil
	}
	defer resp.Body.Close()
	if resp.StatusCode >= 300 {
		c.logger.Warn().Int("status", resp.StatusCode).Str("name", name).Msg("geocode: upstream error")
		return nil, nil
	}

	var decoded searchResponse
	if err := json.NewDecoder(resp.Body).Decode(&decoded); err != nil {
		c.logger.Warn().Err(err).Str("name", name).Msg("geocode: decode response")
		return nil, nil
	}
	if len(decoded.Results) == 0 {
		return nil, nil
	}
	first := decoded.Results[0]
	return &domain.GeocodedCity{
		City:      titleCase(first.Name),
		Country:   first.Country,
		Latitude:  first.Latitude,
		Longitude: first.Longitude,
		TimeZone:  first.Timezone,
	}, nil
}

func titleCase(v string) string {
	return cases.Title(language.English).String(strings.Join(strings.Fields(v), " "))
}
