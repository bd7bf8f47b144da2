// Package aladhan fetches daily prayer times from the AlAdhan timings API.
package aladhan

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"regexp"
	"strconv"
	"strings"
	"time"
	_ "time/tzdata"

	"github.com/rs/zerolog"

	"wallpaper/internal/domain"
	"wallpaper/internal/infra"
	"wallpaper/internal/providers/memo"
)

const (
	defaultBaseURL = "https://api.aladhan.com/v1"
	userAgent      = "wallpaper-renderer/1.0"
)

// Options configures the AlAdhan client.
type Options struct {
	BaseURL        string
	HTTPClient     *http.Client
	Logger         *infra.Logger
	RequestTimeout time.Duration
	// CacheTTL keeps successful lookups for the same day and place. Zero uses
	// 30 minutes; negative disables caching.
	CacheTTL time.Duration
}

// Client performs timings lookups.
type Client struct {
	baseURL    string
	httpClient *http.Client
	logger     *infra.Logger
	cache      *memo.Cache[*domain.RamadanTimings]
}

type timingsResponse struct {
	Code int `json:"code"`
	Data *struct {
		Timings struct {
			Fajr    string `json:"Fajr"`
			Dhuhr   string `json:"Dhuhr"`
			Asr     string `json:"Asr"`
			Maghrib string `json:"Maghrib"`
			Isha    string `json:"Isha"`
			Imsak   string `json:"Imsak"`
		} `json:"timings"`
		Date struct {
			Readable string `json:"readable"`
			Hijri    struct {
				Day   string `json:"day"`
				Month struct {
					En string `json:"en"`
				} `json:"month"`
				Year string `json:"year"`
			} `json:"hijri"`
		} `json:"date"`
	} `json:"data"`
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
		ttl = 30 * time.Minute
	}
	return &Client{
		baseURL:    baseURL,
		httpClient: httpClient,
		logger:     logger,
		cache:      memo.New[*domain.RamadanTimings](ttl),
	}
}

// Timings returns the prayer times for the calendar day of q.At in q.TimeZone.
// Every failure wraps domain.ErrTimingsUnavailable.
func (c *Client) Timings(ctx context.Context, q domain.TimingsQuery) (*domain.RamadanTimings, error) {
	endpoint, err := c.endpoint(q)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrTimingsUnavailable, err)
	}
	t, err := c.cache.Do(ctx, endpoint, func(ctx context.Context) (*domain.RamadanTimings, error) {
		return c.fetch(ctx, endpoint)
	})
	if err != nil {
		c.logger.Warn().Err(err).
			Float64("latitude", q.Latitude).
			Float64("longitude", q.Longitude).
			Str("time_zone", q.TimeZone).
			Msg("aladhan: timings lookup failed")
		return nil, fmt.Errorf("%w: %v", domain.ErrTimingsUnavailable, err)
	}
	return t, nil
}

func (c *Client) endpoint(q domain.TimingsQuery) (string, error) {
	loc, err := time.LoadLocation(q.TimeZone)
	if err != nil {
		return "", fmt.Errorf("aladhan: load zone: %w", err)
	}
	at := q.At
	if at.IsZero() {
		at = time.Now()
	}
	params := url.Values{}
	params.Set("latitude", strconv.FormatFloat(q.Latitude, 'f', -1, 64))
	params.Set("longitude", strconv.FormatFloat(q.Longitude, 'f', -1, 64))
	params.Set("method", strconv.Itoa(q.Method))
	params.Set("timezonestring", q.TimeZone)
	return c.baseURL + "/timings/" + at.In(loc).Format("02-01-2006") + "?" + params.Encode(), nil
}

func (c *Client) fetch(ctx context.Context, endpoint string) (*domain.RamadanTimings, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return nil, fmt.Errorf("aladhan: build request: %w", err)
	}
	req.Header.Set("User-Agent", userAgent)
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("aladhan: http request: %w", err)
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("aladhan: read response: %w", err)
	}
	if resp.StatusCode >= 300 {
		return nil, fmt.Errorf("aladhan: status %d", resp.StatusCode)
	}

	var decoded timingsResponse
	if err := json.Unmarshal(raw, &decoded); err != nil {
		return nil, fmt.Errorf("aladhan: decode response: %w", err)
	}
	if decoded.Code != http.StatusOK || decoded.Data == nil {
		return nil, fmt.Errorf("aladhan: unexpected code %d", decoded.Code)
	}

	d := decoded.Data
	hijriDay, _ := strconv.Atoi(strings.TrimSpace(d.Date.Hijri.Day))
	month := d.Date.Hijri.Month.En
	t := &domain.RamadanTimings{
		GregorianDate: d.Date.Readable,
		HijriDate:     fmt.Sprintf("%d %s %s AH", hijriDay, month, d.Date.Hijri.Year),
		HijriMonth:    month,
		HijriDay:      hijriDay,
		Sehri:         cleanTime(d.Timings.Imsak),
		Fajr:          cleanTime(d.Timings.Fajr),
		Dhuhr:         cleanTime(d.Timings.Dhuhr),
		Asr:           cleanTime(d.Timings.Asr),
		Maghrib:       cleanTime(d.Timings.Maghrib),
		Isha:          cleanTime(d.Timings.Isha),
		Iftar:         cleanTime(d.Timings.Maghrib),
	}
	c.logger.Debug().
		Str("gregorian", t.GregorianDate).
		Str("hijri", t.HijriDate).
		Msg("aladhan: fetched timings")
	return t, nil
}

var clockPattern = regexp.MustCompile(`\d{1,2}:\d{2}`)

// cleanTime keeps the first clock reading, dropping zone suffixes such as " (PKT)".
func cleanTime(v string) string {
	if m := clockPattern.FindString(v); m != "" {
		return m
	}
	return v
}
