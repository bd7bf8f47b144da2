package main

import (
	"errors"
	"flag"
	"io"
	"os"
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"
	"github.com/rs/zerolog"

	"wallpaper/internal/infra"
	"wallpaper/internal/providers/aladhan"
	"wallpaper/internal/providers/geocode"
)

// errUsage reports that flag parsing already printed its own message.
var errUsage = errors.New("usage")

var styles = struct {
	label, value, token, err lipgloss.Style
}{
	label: lipgloss.NewStyle().Foreground(lipgloss.Color("111")).Bold(true),
	value: lipgloss.NewStyle().Foreground(lipgloss.Color("252")),
	token: lipgloss.NewStyle().Foreground(lipgloss.Color("213")),
	err:   lipgloss.NewStyle().Foreground(lipgloss.Color("203")).Bold(true),
}

// env carries what every command shares. Upstream clients are built lazily
// since only some commands talk to the network.
type env struct {
	logger  zerolog.Logger
	out     io.Writer
	baseURL string
	timeout time.Duration
	retries int

	timingsBase string
	geocodeBase string

	timings  *aladhan.Client
	geocoder *geocode.Client
}

func newEnv(logger zerolog.Logger) *env {
	e := &env{
		logger:  logger,
		out:     os.Stdout,
		baseURL: "http://localhost:8080",
		timeout: 10 * time.Second,
		retries: 2,
	}
	if cfg, err := infra.LoadConfig(); err == nil {
		e.baseURL = cfg.PublicBaseURL
		e.timeout = cfg.UpstreamTimeout
		e.retries = cfg.UpstreamRetryMax
		e.timingsBase = cfg.AladhanBaseURL
		e.geocodeBase = cfg.GeocodingBaseURL
	}
	return e
}

func (e *env) upstreams() (*aladhan.Client, *geocode.Client) {
	if e.timings == nil {
		client := infra.NewRetryingHTTPClient(e.logger, e.timeout, e.retries)
		e.timings = aladhan.NewClient(aladhan.Options{
			BaseURL: e.timingsBase, HTTPClient: client, Logger: &e.logger, RequestTimeout: e.timeout,
		})
		e.geocoder = geocode.NewClient(geocode.Options{
			BaseURL: e.geocodeBase, HTTPClient: client, Logger: &e.logger, RequestTimeout: e.timeout,
		})
	}
	return e.timings, e.geocoder
}

func newFlagSet(name string) *flag.FlagSet {
	fs := flag.NewFlagSet("wallctl "+name, flag.ContinueOnError)
	fs.SetOutput(os.Stderr)
	return fs
}

// parse maps -h and bad flags onto errUsage.
func parse(fs *flag.FlagSet, args []string) error {
	if err := fs.Parse(args); err != nil {
		return errUsage
	}
	return nil
}

// row prints an aligned "label  value" line.
func (e *env) row(label, value string) {
	_, _ = io.WriteString(e.out, styles.label.Render(padRight(label, 14))+styles.value.Render(value)+"\n")
}

func padRight(s string, n int) string {
	if len(s) >= n {
		return s + " "
	}
	return s + strings.Repeat(" ", n-len(s))
}
