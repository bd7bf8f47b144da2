// Command themecheck asks a running server for a Ramadan token and renders
// both theme variants side by side, failing if either is not a PNG.
package main

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"flag"
	"fmt"
	"io"
	"net/http"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"golang.org/x/sync/errgroup"

	"wallpaper/internal/infra"
)

type variant struct {
	Theme        string `json:"theme"`
	Token        string `json:"token"`
	WallpaperURL string `json:"wallpaperUrl"`
}

type tokenResponse struct {
	Token    string             `json:"token"`
	Variants map[string]variant `json:"variants"`
}

type result struct {
	theme  string
	status int
	kind   string
	bytes  int
}

func main() {
	_ = godotenv.Load()

	var (
		baseFlag    string
		cityFlag    string
		atFlag      string
		timeoutFlag time.Duration
	)
	flag.StringVar(&baseFlag, "base", "http://localhost:8080", "server base URL")
	flag.StringVar(&cityFlag, "city", "Karachi Pakistan", "city to request a token for")
	flag.StringVar(&atFlag, "at", "2026-02-20T12:00:00Z", "fixed render instant (RFC 3339)")
	flag.DurationVar(&timeoutFlag, "timeout", 60*time.Second, "overall deadline")
	flag.Parse()

	at, err := time.Parse(time.RFC3339, atFlag)
	if err != nil {
		exitWithError(fmt.Errorf("invalid -at: %w", err))
	}

	logger := infra.NewLogger("cli", "").With().Str("cmd", "themecheck").Logger()
	client := infra.NewRetryingHTTPClient(logger, 30*time.Second, 1)

	ctx, cancel := context.WithTimeout(context.Background(), timeoutFlag)
	defer cancel()

	tr, err := requestToken(ctx, client, strings.TrimRight(baseFlag, "/"), cityFlag)
	if err != nil {
		exitWithError(err)
	}
	results, err := fetchVariants(ctx, client, tr, at)
	if err != nil {
		exitWithError(err)
	}
	for _, r := range results {
		logger.Info().Str("theme", r.theme).Int("status", r.status).Str("content_type", r.kind).Int("bytes", r.bytes).Msg("variant ok")
	}
}

func requestToken(ctx context.Context, client *http.Client, base, city string) (*tokenResponse, error) {
	body, _ := json.Marshal(map[string]string{"mode": "ramadan", "city": city})
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, base+"/api/token", bytes.NewReader(body))
	if err != nil {
		return nil, err
	}
	req.Header.Set("Content-Type", "application/json")
	res, err := client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("request token: %w", err)
	}
	defer res.Body.Close()
	if res.StatusCode != http.StatusOK {
		msg, _ := io.ReadAll(io.LimitReader(res.Body, 512))
		return nil, fmt.Errorf("request token: status %d: %s", res.StatusCode, bytes.TrimSpace(msg))
	}
	var tr tokenResponse
	if err := json.NewDecoder(res.Body).Decode(&tr); err != nil {
		return nil, fmt.Errorf("decode token response: %w", err)
	}
	if len(tr.Variants) == 0 {
		return nil, errors.New("token response has no theme variants")
	}
	return &tr, nil
}

// fetchVariants renders every variant concurrently at the same instant.
func fetchVariants(ctx context.Context, client *http.Client, tr *tokenResponse, at time.Time) ([]result, error) {
	themes := []string{"classic", "girly"}
	results := make([]result, len(themes))
	g, ctx := errgroup.WithContext(ctx)
	for i, theme := range themes {
		v, ok := tr.Variants[theme]
		if !ok {
			return nil, fmt.Errorf("variant %q missing", theme)
		}
		g.Go(func() error {
			r, err := fetchPNG(ctx, client, v.WallpaperURL+"&at="+strconv.FormatInt(at.UnixMilli(), 10))
			if err != nil {
				return fmt.Errorf("%s: %w", theme, err)
			}
			r.theme = theme
			results[i] = r
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return results, nil
}

var pngMagic = []byte("\x89PNG\r\n\x1a\n")

func fetchPNG(ctx context.Context, client *http.Client, url string) (result, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return result{}, err
	}
	res, err := client.Do(req)
	if err != nil {
		return result{}, err
	}
	defer res.Body.Close()
	body, err := io.ReadAll(res.Body)
	if err != nil {
		return result{}, err
	}
	r := result{status: res.StatusCode, kind: res.Header.Get("Content-Type"), bytes: len(body)}
	switch {
	case res.StatusCode != http.StatusOK:
		return r, fmt.Errorf("status %d: %s", res.StatusCode, bytes.TrimSpace(body))
	case r.kind != "image/png":
		return r, fmt.Errorf("content type %q, want image/png", r.kind)
	case !bytes.HasPrefix(body, pngMagic):
		return r, errors.New("body is not a PNG")
	}
	return r, nil
}

func exitWithError(err error) {
	fmt.Fprintln(os.Stderr, err)
	os.Exit(1)
}
