package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"lobby/config"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func serveLimited(t *testing.T, limiter echo.MiddlewareFunc, remoteAddr string) error {
	t.Helper()

	e := echo.New()
	req := httptest.NewRequest(http.MethodPost, "/api/auth", nil)
	req.RemoteAddr = remoteAddr
	c := e.NewContext(req, httptest.NewRecorder())

	return limiter(func(c echo.Context) error {
		return c.NoContent(http.StatusOK)
	})(c)
}

func TestNewCredentialRateLimiter_Disabled(t *testing.T) {
	limiter := NewCredentialRateLimiter(config.RateLimitConfig{})

	for range 20 {
		require.NoError(t, serveLimited(t, limiter, "10.0.0.1:1234"))
	}
}

func TestNewCredentialRateLimiter_DeniesBurstOverflow(t *testing.T) {
	limiter := NewCredentialRateLimiter(config.RateLimitConfig{
		Enabled:           true,
		RequestsPerSecond: 0.001,
		Burst:             2,
		ExpiresIn:         time.Minute,
	})

	require.NoError(t, serveLimited(t, limiter, "10.0.0.1:1234"))
	require.NoError(t, serveLimited(t, limiter, "10.0.0.1:1234"))

	err := serveLimited(t, limiter, "10.0.0.1:1234")
	var httpErr *echo.HTTPError
	require.ErrorAs(t, err, &httpErr)
	assert.Equal(t, http.StatusTooManyRequests, httpErr.Code)

	// Another client has its own bucket.
	assert.NoError(t, serveLimited(t, limiter, "10.0.0.2:1234"))
}
