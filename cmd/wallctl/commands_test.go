package main

import (
	"bytes"
	"io"
	"strings"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"wallpaper/internal/domain/wallconfig"
	"wallpaper/internal/token"
)

func testEnv() (*env, *bytes.Buffer) {
	var buf bytes.Buffer
	e := newEnv(zerolog.New(io.Discard))
	e.out = &buf
	e.baseURL = "https://walls.example"
	return e, &buf
}

func TestConfigYAML(t *testing.T) {
	cfg, ok := wallconfig.NormalizeRamadan(wallconfig.RamadanInput{
		City: "Karachi", Latitude: 24.86, Longitude: 67.01, TimeZone: "Asia/Karachi", Theme: "girly",
	})
	require.True(t, ok)
	out, err := configYAML(cfg)
	require.NoError(t, err)
	text := string(out)
	assert.True(t, strings.HasPrefix(text, "mode: ramadan\n"), text)
	assert.Contains(t, text, "city: Karachi\n")
	assert.Contains(t, text, "timeZone: Asia/Karachi\n")
	assert.Contains(t, text, "theme: girly\n")
	assert.NotContains(t, text, "country:")
}

func TestDecodeWritesYAML(t *testing.T) {
	e, buf := testEnv()
	tok := token.MustEncode(wallconfig.NormalizeLife(wallconfig.LifeInput{DateOfBirth: "1990-05-01", TimeZone: "UTC"}))
	require.NoError(t, e.decode([]string{tok}))
	assert.Contains(t, buf.String(), "mode: life\n")
	assert.Contains(t, buf.String(), "1990-05-01")

	assert.Error(t, e.decode([]string{"garbage"}))
	assert.Error(t, e.decode(nil))
}

func TestEncodeLifePrintsLinks(t *testing.T) {
	e, buf := testEnv()
	require.NoError(t, e.encodeLife([]string{"-dob", "1990-05-01", "-tz", "Asia/Karachi"}))
	out := buf.String()
	assert.Contains(t, out, "https://walls.example/api/wallpaper/")
	assert.Contains(t, out, "?w=1290&h=2796")
	assert.Contains(t, out, "https://walls.example/setup/")
}

func TestEncodeRamadanWithCoordinates(t *testing.T) {
	e, buf := testEnv()
	require.NoError(t, e.encodeRamadan(t.Context(), []string{
		"-city", "Home", "-lat", "24.8607", "-lon", "67.0011", "-tz", "Asia/Karachi", "-method", "1",
	}))
	assert.Contains(t, buf.String(), "24.860700, 67.001100")

	err := e.encodeRamadan(t.Context(), []string{"-lat", "24", "-lon", "67", "-tz", "Nowhere/Else"})
	assert.Error(t, err)
	assert.Error(t, e.encodeRamadan(t.Context(), nil))
}

func TestParseInstant(t *testing.T) {
	now := time.Date(2026, 3, 1, 0, 0, 0, 0, time.UTC)
	got, err := parseInstant("", now)
	require.NoError(t, err)
	assert.Equal(t, now, got)

	got, err = parseInstant("2026-02-20", now)
	require.NoError(t, err)
	assert.True(t, got.Equal(time.Date(2026, 2, 20, 0, 0, 0, 0, time.UTC)))

	_, err = parseInstant("soon", now)
	assert.Error(t, err)
}

func TestBundleJobs(t *testing.T) {
	cfg, ok := wallconfig.NormalizeRamadan(wallconfig.RamadanInput{
		City: "Karachi", Latitude: 24.86, Longitude: 67.01, TimeZone: "Asia/Karachi", Theme: "girly",
	})
	require.True(t, ok)
	jobs, err := bundleJobs(token.MustEncode(cfg), cfg)
	require.NoError(t, err)
	require.Len(t, jobs, 2)
	assert.Equal(t, "ramadan-classic.png", jobs[0].name)
	assert.Equal(t, "ramadan-girly.png", jobs[1].name)
	classic, ok := token.Decode(jobs[0].tok)
	require.True(t, ok)
	assert.Equal(t, wallconfig.ThemeClassic, classic.(wallconfig.Ramadan).Theme)

	life := wallconfig.NormalizeLife(wallconfig.LifeInput{DateOfBirth: "1990-05-01", TimeZone: "UTC"})
	tok := token.MustEncode(life)
	jobs, err = bundleJobs(tok, life)
	require.NoError(t, err)
	require.Len(t, jobs, 2)
	assert.False(t, jobs[0].vector)
	assert.True(t, jobs[1].vector)
	assert.Equal(t, tok, jobs[1].tok)
}
