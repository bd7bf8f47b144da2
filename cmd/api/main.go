package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/joho/godotenv"

	"wallpaper/internal/http/handlers"
	httpapi "wallpaper/internal/http/httpapi"
	"wallpaper/internal/infra"
	"wallpaper/internal/infra/geoip"
	"wallpaper/internal/providers/aladhan"
	"wallpaper/internal/providers/geocode"
	"wallpaper/internal/raster"
	"wallpaper/internal/wallpaper"
)

func main() {
	// Load .env (optional)
	_ = godotenv.Load()

	cfg, err := infra.LoadConfig()
	if err != nil {
		panic(err)
	}
	logger := infra.NewLogger(cfg.AppEnv, cfg.LogFile)

	// Upstreams share one retrying client
	httpClient := infra.NewRetryingHTTPClient(logger, cfg.UpstreamTimeout, cfg.UpstreamRetryMax)
	timings := aladhan.NewClient(aladhan.Options{
		BaseURL:        cfg.AladhanBaseURL,
		HTTPClient:     httpClient,
		Logger:         &logger,
		RequestTimeout: cfg.UpstreamTimeout,
	})
	geocoder := geocode.NewClient(geocode.Options{
		BaseURL:        cfg.GeocodingBaseURL,
		HTTPClient:     httpClient,
		Logger:         &logger,
		RequestTimeout: cfg.UpstreamTimeout,
	})

	locator, err := geoip.NewResolver(cfg.GeoIPDBPath)
	if err != nil {
		logger.Fatal().Err(err).Str("path", cfg.GeoIPDBPath).Msg("failed to open geoip database")
	}
	defer locator.Close()

	service := wallpaper.NewService(timings, raster.New(logger), logger)
	app := handlers.NewApp(service, geocoder, locator, logger, cfg.PublicBaseURL)
	router := httpapi.NewRouter(app, logger, httpapi.Options{
		CORSOrigins:     cfg.CORSOrigins,
		RateLimitPerMin: cfg.RateLimitPerMin,
	})

	server := infra.NewHTTPServer(cfg, router, logger)

	go func() {
		logger.Info().Str("addr", server.Addr()).Str("env", cfg.AppEnv).Msg("API listening")
		if err := server.Start(); err != nil {
			logger.Fatal().Err(err).Msg("http server failed")
		}
	}()

	// Graceful shutdown
	stop := make(chan os.Signal, 1)
	signal.Notify(stop, syscall.SIGINT, syscall.SIGTERM)
	<-stop

	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.HTTPIdleTimeout)
	defer cancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		logger.Error().Err(err).Msg("failed to shutdown server")
	}
	logger.Info().Msg("server stopped")
}
