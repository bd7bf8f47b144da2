package infra

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"
)

// Config represents application configuration loaded from environment variables.
type Config struct {
	AppEnv           string
	Port             string
	PublicBaseURL    string
	LogFile          string
	GeoIPDBPath      string
	AladhanBaseURL   string
	GeocodingBaseURL string
	CORSOrigins      []string
	HTTPReadTimeout  time.Duration
	HTTPWriteTimeout time.Duration
	HTTPIdleTimeout  time.Duration
	UpstreamTimeout  time.Duration
	UpstreamRetryMax int
	RateLimitPerMin  int
}

// LoadConfig loads configuration from environment variables and applies defaults where needed.
func LoadConfig() (*Config, error) {
	port := getEnv("PORT", "8080")
	cfg := &Config{
		AppEnv:           getEnv("APP_ENV", "development"),
		Port:             port,
		PublicBaseURL:    strings.TrimRight(getEnv("PUBLIC_BASE_URL", "http://localhost:"+port), "/"),
		LogFile:          os.Getenv("LOG_FILE"),
		GeoIPDBPath:      os.Getenv("GEOIP_DB_PATH"),
		AladhanBaseURL:   strings.TrimRight(getEnv("ALADHAN_BASE_URL", "https://api.aladhan.com/v1"), "/"),
		GeocodingBaseURL: strings.TrimRight(getEnv("GEOCODING_BASE_URL", "https://geocoding-api.open-meteo.com/v1"), "/"),
		CORSOrigins:      getEnvList("CORS_ALLOWED_ORIGINS"),
		HTTPReadTimeout:  time.Second * time.Duration(getEnvInt("HTTP_READ_TIMEOUT_SECONDS", 15)),
		HTTPWriteTimeout: time.Second * time.Duration(getEnvInt("HTTP_WRITE_TIMEOUT_SECONDS", 30)),
		HTTPIdleTimeout:  time.Second * time.Duration(getEnvInt("HTTP_IDLE_TIMEOUT_SECONDS", 60)),
		UpstreamTimeout:  time.Second * time.Duration(getEnvInt("UPSTREAM_TIMEOUT_SECONDS", 10)),
		UpstreamRetryMax: getEnvInt("UPSTREAM_RETRY_MAX", 2),
		RateLimitPerMin:  getEnvInt("RATE_LIMIT_PER_MINUTE", 60),
	}

	if n, err := strconv.Atoi(cfg.Port); err != nil || n <= 0 || n > 65535 {
		return nil, fmt.Errorf("PORT must be a valid port number, got %q", cfg.Port)
	}

	if cfg.UpstreamRetryMax < 0 {
		return nil, fmt.Errorf("UPSTREAM_RETRY_MAX must not be negative")
	}

	return cfg, nil
}

func getEnv(key, fallback string) string {
	if v, ok := os.LookupEnv(key); ok && v != "" {
		return v
	}
	return fallback
}

func getEnvInt(key string, fallback int) int {
	if v, ok := os.LookupEnv(key); ok && v != "" {
		if i, err := strconv.Atoi(v); err == nil {
			return i
		}
	}
	return fallback
}

// getEnvList splits a comma separated variable, dropping blanks.
func getEnvList(key string) []string {
	var out []string
	for _, part := range strings.Split(os.Getenv(key), ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}
