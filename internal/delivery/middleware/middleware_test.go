package middleware

import (
	"bytes"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"lobby/config"
	deliverycontext "lobby/internal/delivery/context"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRequestIDMiddleware_GeneratesID(t *testing.T) {
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	var seen string
	handler := NewRequestIDMiddleware(slog.New(slog.DiscardHandler)).Process(func(c echo.Context) error {
		seen = deliverycontext.GetRequestIDFromContext(c.Request().Context())
		assert.NotNil(t, deliverycontext.GetLogger(c.Request().Context()))

		return c.NoContent(http.StatusOK)
	})

	require.NoError(t, handler(c))
	assert.NotEmpty(t, seen)
	assert.Equal(t, seen, rec.Header().Get(deliverycontext.HeaderXRequestID))
}

func TestRequestIDMiddleware_KeepsClientID(t *testing.T) {
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set(deliverycontext.HeaderXRequestID, "client-id")
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	handler := NewRequestIDMiddleware(slog.New(slog.DiscardHandler)).Process(func(c echo.Context) error {
		return c.NoContent(http.StatusOK)
	})

	require.NoError(t, handler(c))
	assert.Equal(t, "client-id", deliverycontext.GetRequestID(c))
	assert.Equal(t, "client-id", rec.Header().Get(deliverycontext.HeaderXRequestID))
}

func TestRequestIDMiddleware_ReplacesMalformedClientID(t *testing.T) {
	tests := []struct {
		name     string
		clientID string
	}{
		{name: "too long", clientID: strings.Repeat("a", maxRequestIDLength+1)},
		{name: "line break", clientID: "abc\nlevel=ERROR"},
		{name: "spaces", clientID: "a b"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			e := echo.New()
			req := httptest.NewRequest(http.MethodGet, "/", nil)
			req.Header.Set(deliverycontext.HeaderXRequestID, tt.clientID)
			rec := httptest.NewRecorder()
			c := e.NewContext(req, rec)

			handler := NewRequestIDMiddleware(slog.New(slog.DiscardHandler)).Process(func(c echo.Context) error {
				return c.NoContent(http.StatusOK)
			})

			require.NoError(t, handler(c))
			got := deliverycontext.GetRequestID(c)
			assert.NotEqual(t, tt.clientID, got)
			_, err := uuid.Parse(got)
			require.NoError(t, err)
			assert.Equal(t, got, rec.Header().Get(deliverycontext.HeaderXRequestID))
		})
	}
}

func TestRequestIDMiddleware_AcceptsMaxLengthID(t *testing.T) {
	id := "trace:" + strings.Repeat("x", maxRequestIDLength-6)
	assert.True(t, validRequestID(id))
	assert.False(t, validRequestID(""))
}

func TestLoggerMiddleware_RecordsAuthenticatedAccount(t *testing.T) {
	var buf bytes.Buffer
	cfg := &config.Config{}
	cfg.Env.Debug = true

	accountID := uuid.New()
	e := echo.New()
	c := e.NewContext(httptest.NewRequest(http.MethodGet, "/api/profile", nil), httptest.NewRecorder())

	handler := NewLoggerMiddleware(slog.New(slog.NewTextHandler(&buf, nil)), cfg).Handle(func(c echo.Context) error {
		deliverycontext.SetAccountID(c, accountID)

		return c.NoContent(http.StatusOK)
	})

	require.NoError(t, handler(c))
	assert.Contains(t, buf.String(), "account_id="+accountID.String())
}

func TestLoggerMiddleware(t *testing.T) {
	tests := []struct {
		name    string
		debug   bool
		status  int
		wantLog string
	}{
		{name: "debug off logs nothing", debug: false, status: http.StatusOK},
		{name: "success logs at info", debug: true, status: http.StatusOK, wantLog: "level=INFO"},
		{name: "client error logs at warn", debug: true, status: http.StatusNotFound, wantLog: "level=WARN"},
		{name: "server error logs at error", debug: true, status: http.StatusInternalServerError, wantLog: "level=ERROR"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buf bytes.Buffer
			logger := slog.New(slog.NewTextHandler(&buf, nil))
			cfg := &config.Config{}
			cfg.Env.Debug = tt.debug

			e := echo.New()
			c := e.NewContext(httptest.NewRequest(http.MethodGet, "/api/profile?x=1", nil), httptest.NewRecorder())

			handler := NewLoggerMiddleware(logger, cfg).Handle(func(c echo.Context) error {
				return c.NoContent(tt.status)
			})
			require.NoError(t, handler(c))

			if tt.wantLog == "" {
				assert.Empty(t, buf.String())

				return
			}
			assert.Contains(t, buf.String(), tt.wantLog)
			assert.Contains(t, buf.String(), "uri=/api/profile")
			assert.Contains(t, buf.String(), `query="x=1"`)
			assert.NotContains(t, buf.String(), "account_id=")
		})
	}
}
