package infra

import (
	"bytes"
	"net/http"
	"testing"
	"time"

	"github.com/jarcoal/httpmock"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRetryableClient(t *testing.T) {
	var logBuf bytes.Buffer
	logger := zerolog.New(&logBuf).Level(zerolog.DebugLevel)
	rc := NewRetryableClient(logger, time.Second, 1)
	rc.RetryWaitMin = time.Millisecond
	rc.RetryWaitMax = time.Millisecond
	httpmock.ActivateNonDefault(rc.HTTPClient)
	defer httpmock.DeactivateAndReset()

	t.Run("should log successful responses at debug level", func(t *testing.T) {
		// given
		logBuf.Reset()
		httpmock.Reset()
		httpmock.RegisterResponder("GET", "https://upstream.example.com/ok",
			httpmock.NewStringResponder(http.StatusOK, "fine"))

		// when
		r, err := rc.Get("https://upstream.example.com/ok")

		// then
		require.NoError(t, err)
		assert.Equal(t, http.StatusOK, r.StatusCode)
		assert.Contains(t, logBuf.String(), `"level":"debug"`)
		assert.Contains(t, logBuf.String(), `"status":200`)
	})
	t.Run("should retry server errors and warn", func(t *testing.T) {
		// given
		logBuf.Reset()
		httpmock.Reset()
		httpmock.RegisterResponder("GET", "https://upstream.example.com/down",
			httpmock.NewStringResponder(http.StatusServiceUnavailable, "busy"))

		// when
		_, err := rc.Get("https://upstream.example.com/down")

		// then
		assert.Error(t, err)
		assert.Equal(t, 2, httpmock.GetTotalCallCount())
		assert.Contains(t, logBuf.String(), `"level":"warn"`)
	})
}
