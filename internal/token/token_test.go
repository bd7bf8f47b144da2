package token

import (
	"encoding/base64"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"wallpaper/internal/domain/wallconfig"
)

func rawToken(json string) string {
	return base64.RawURLEncoding.EncodeToString([]byte(json))
}

func karachi(t *testing.T, theme wallconfig.Theme) wallconfig.Ramadan {
	t.Helper()
	cfg, ok := wallconfig.NormalizeRamadan(wallconfig.RamadanInput{
		City:              "Karachi",
		Country:           "Pakistan",
		Latitude:          24.8607,
		Longitude:         67.0011,
		TimeZone:          "Asia/Karachi",
		CalculationMethod: 1.0,
		Theme:             string(theme),
	})
	require.True(t, ok)
	return cfg
}

// longPlace has every text field cut right after a space.
func longPlace(t *testing.T) wallconfig.Ramadan {
	t.Helper()
	cfg, ok := wallconfig.NormalizeRamadan(wallconfig.RamadanInput{
		City:      strings.Repeat("c", wallconfig.MaxPlaceLength-1) + " d",
		Country:   strings.Repeat("n", wallconfig.MaxPlaceLength-1) + " d",
		Latitude:  24.8607,
		Longitude: 67.0011,
		TimeZone:  "Asia/Karachi",
		Title:     strings.Repeat("t", wallconfig.MaxTitleLength-1) + " d",
	})
	require.True(t, ok)
	return cfg
}

func TestEncode(t *testing.T) {
	t.Run("should write the life payload with short keys", func(t *testing.T) {
		// given
		cfg := wallconfig.NormalizeLife(wallconfig.LifeInput{})
		// when
		tok, err := Encode(cfg)
		// then
		require.NoError(t, err)
		assert.Equal(t, rawToken(`{"v":2,"m":"life","d":"1996-01-01","z":"America/New_York","t":"LIFE CALENDAR"}`), tok)
	})
	t.Run("should omit the theme key for classic ramadan tokens", func(t *testing.T) {
		tok, err := Encode(karachi(t, wallconfig.ThemeClassic))
		require.NoError(t, err)
		assert.Equal(t, rawToken(`{"v":2,"m":"ramadan","c":"Karachi","n":"Pakistan","la":24.8607,"lo":67.0011,"z":"Asia/Karachi","cm":1,"t":"RAMADAN CALENDAR"}`), tok)
	})
	t.Run("should not html-escape titles", func(t *testing.T) {
		cfg := wallconfig.NormalizeLife(wallconfig.LifeInput{Title: "<me & you>"})
		tok, err := Encode(cfg)
		require.NoError(t, err)
		assert.Equal(t, rawToken(`{"v":2,"m":"life","d":"1996-01-01","z":"America/New_York","t":"<me & you>"}`), tok)
	})
	t.Run("should refuse an invalid ramadan config", func(t *testing.T) {
		_, err := Encode(wallconfig.Ramadan{TimeZone: "Not/AZone"})
		assert.ErrorIs(t, err, ErrInvalidRamadanConfig)
		assert.Panics(t, func() { MustEncode(wallconfig.Ramadan{}) })
	})
	t.Run("should produce url safe text", func(t *testing.T) {
		cfg := wallconfig.NormalizeLife(wallconfig.LifeInput{Title: "???>>>~~~"})
		tok := MustEncode(cfg)
		assert.NotContains(t, tok, "+")
		assert.NotContains(t, tok, "/")
		assert.NotContains(t, tok, "=")
	})
}

func TestRoundTrip(t *testing.T) {
	configs := []wallconfig.Config{
		wallconfig.NormalizeLife(wallconfig.LifeInput{}),
		wallconfig.NormalizeLife(wallconfig.LifeInput{DateOfBirth: "2001-09-30", TimeZone: "Asia/Tokyo", Title: "ünïcødé ☾ title"}),
		wallconfig.NormalizeLife(wallconfig.LifeInput{Title: strings.Repeat("a", wallconfig.MaxTitleLength-1) + " bcd"}),
		longPlace(t),
		karachi(t, wallconfig.ThemeClassic),
		karachi(t, wallconfig.ThemeGirly),
	}
	for _, cfg := range configs {
		got, ok := Decode(MustEncode(cfg))
		require.True(t, ok)
		assert.Equal(t, cfg, got)
	}
}

func TestDecode(t *testing.T) {
	t.Run("should read legacy v1 tokens as life configs", func(t *testing.T) {
		// given
		legacy := rawToken(`{"v":1,"d":"1990-05-17","z":"Europe/London","t":"MY WEEKS"}`)
		current := rawToken(`{"v":2,"m":"life","d":"1990-05-17","z":"Europe/London","t":"MY WEEKS"}`)
		// when
		a, okA := Decode(legacy)
		b, okB := Decode(current)
		// then
		require.True(t, okA)
		require.True(t, okB)
		assert.Equal(t, b, a)
		assert.Equal(t, wallconfig.Life{DateOfBirth: "1990-05-17", TimeZone: "Europe/London", Title: "MY WEEKS"}, a)
	})
	t.Run("should default the theme when the key is absent", func(t *testing.T) {
		cfg, ok := Decode(rawToken(`{"v":2,"m":"ramadan","c":"Cairo","n":"Egypt","la":30.04,"lo":31.24,"z":"Africa/Cairo","cm":5,"t":"R"}`))
		require.True(t, ok)
		r := cfg.(wallconfig.Ramadan)
		assert.Equal(t, wallconfig.ThemeClassic, r.Theme)
		assert.Equal(t, 5, r.CalculationMethod)
	})
	t.Run("should normalize decoded values", func(t *testing.T) {
		cfg, ok := Decode(rawToken(`{"v":2,"m":"ramadan","la":"200","lo":-500,"z":"UTC","cm":99}`))
		require.True(t, ok)
		r := cfg.(wallconfig.Ramadan)
		assert.Equal(t, 90.0, r.Latitude)
		assert.Equal(t, -180.0, r.Longitude)
		assert.Equal(t, 23, r.CalculationMethod)
		assert.Equal(t, wallconfig.DefaultCity, r.City)
	})
	t.Run("should accept padded input", func(t *testing.T) {
		tok := base64.URLEncoding.EncodeToString([]byte(`{"v":2,"m":"life","d":"2000-01-01","z":"UTC","t":"x"}`))
		_, ok := Decode(tok)
		assert.True(t, ok)
	})
	t.Run("should reject malformed tokens", func(t *testing.T) {
		tokens := map[string]string{
			"empty":           "",
			"garbage":         "not-a-token!!",
			"not json":        rawToken("hello"),
			"json array":      rawToken(`[1,2]`),
			"json null":       rawToken(`null`),
			"truncated":       rawToken(`{"v":2,"m":"life"`),
			"unknown version": rawToken(`{"v":3,"m":"life"}`),
			"string version":  rawToken(`{"v":"2","m":"life"}`),
			"unknown mode":    rawToken(`{"v":2,"m":"moon"}`),
			"missing mode":    rawToken(`{"v":2,"d":"1990-01-01"}`),
			"bad ramadan":     rawToken(`{"v":2,"m":"ramadan","la":1,"lo":2,"z":"Not/AZone"}`),
			"no coordinates":  rawToken(`{"v":2,"m":"ramadan","z":"UTC"}`),
		}
		for name, tok := range tokens {
			cfg, ok := Decode(tok)
			assert.False(t, ok, name)
			assert.Nil(t, cfg, name)
		}
	})
}
