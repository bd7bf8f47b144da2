package infra

import (
	"net/http"
	"time"

	"github.com/hashicorp/go-retryablehttp"
	"github.com/rs/zerolog"
)

// NewRetryingHTTPClient returns a standard *http.Client that retries transient
// upstream failures and logs every response.
func NewRetryingHTTPClient(logger zerolog.Logger, timeout time.Duration, retryMax int) *http.Client {
	return NewRetryableClient(logger, timeout, retryMax).StandardClient()
}

func NewRetryableClient(logger zerolog.Logger, timeout time.Duration, retryMax int) *retryablehttp.Client {
	rc := retryablehttp.NewClient()
	rc.RetryMax = retryMax
	rc.RetryWaitMin = 200 * time.Millisecond
	rc.RetryWaitMax = 2 * time.Second
	rc.HTTPClient.Timeout = timeout
	rc.Logger = nil
	rc.ResponseLogHook = ResponseLogHook(logger)
	return rc
}

// ResponseLogHook logs upstream responses: warnings for error statuses,
// debug lines otherwise.
func ResponseLogHook(logger zerolog.Logger) retryablehttp.ResponseLogHook {
	return func(_ retryablehttp.Logger, r *http.Response) {
		ev := logger.Debug()
		if r.StatusCode >= 400 {
			ev = logger.Warn()
		}
		ev.Str("method", r.Request.Method).
			Str("url", r.Request.URL.Redacted()).
			Int("status", r.StatusCode).
			Msg("upstream response")
	}
}
