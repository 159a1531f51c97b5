package middleware

import (
	"bytes"
	"encoding/json"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"lobby/internal/delivery/api/response"
	domainerrors "lobby/internal/domain/errors"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestErrorMiddleware_HandleHTTPError(t *testing.T) {
	tests := []struct {
		name       string
		err        error
		wantStatus int
		wantItems  []response.ErrorItem
		wantLogged bool
	}{
		{
			name: "validation error lists fields",
			err: domainerrors.NewValidationError(
				domainerrors.FieldError{Field: "name", Message: "Name is required"},
				domainerrors.FieldError{Field: "email", Message: "Please include a valid email"},
			),
			wantStatus: http.StatusBadRequest,
			wantItems: []response.ErrorItem{
				{Msg: "Name is required", Param: "name"},
				{Msg: "Please include a valid email", Param: "email"},
			},
		},
		{
			name:       "wrapped duplicate account",
			err:        errors.WithStack(domainerrors.ErrAccountAlreadyExists),
			wantStatus: http.StatusBadRequest,
			wantItems:  []response.ErrorItem{{Msg: "User already exists"}},
		},
		{
			name:       "invalid credentials",
			err:        domainerrors.ErrInvalidCredentials,
			wantStatus: http.StatusBadRequest,
			wantItems:  []response.ErrorItem{{Msg: "Invalid credentials"}},
		},
		{
			name:       "missing token",
			err:        domainerrors.ErrMissingToken,
			wantStatus: http.StatusUnauthorized,
			wantItems:  []response.ErrorItem{{Msg: "No token, authorization denied"}},
		},
		{
			name:       "profile not found",
			err:        domainerrors.ErrProfileNotFound,
			wantStatus: http.StatusNotFound,
			wantItems:  []response.ErrorItem{{Msg: "There is no profile for this user"}},
		},
		{
			name:       "internal app error hides wrapped context",
			err:        domainerrors.ErrTokenIssueFailed.WrapMessage("signing key exploded"),
			wantStatus: http.StatusInternalServerError,
			wantItems:  []response.ErrorItem{{Msg: "Server error"}},
			wantLogged: true,
		},
		{
			name:       "echo not found",
			err:        echo.ErrNotFound,
			wantStatus: http.StatusNotFound,
			wantItems:  []response.ErrorItem{{Msg: "Not Found"}},
		},
		{
			name:       "echo rate limit",
			err:        echo.NewHTTPError(http.StatusTooManyRequests, "Too many requests, please try again later"),
			wantStatus: http.StatusTooManyRequests,
			wantItems:  []response.ErrorItem{{Msg: "Too many requests, please try again later"}},
		},
		{
			name:       "unknown error",
			err:        errors.New("connection refused"),
			wantStatus: http.StatusInternalServerError,
			wantItems:  []response.ErrorItem{{Msg: "Server error"}},
			wantLogged: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var logs bytes.Buffer
			m := NewErrorMiddleware(slog.New(slog.NewTextHandler(&logs, nil)))

			e := echo.New()
			rec := httptest.NewRecorder()
			c := e.NewContext(httptest.NewRequest(http.MethodPost, "/api/users", nil), rec)

			m.HandleHTTPError(tt.err, c)

			assert.Equal(t, tt.wantStatus, rec.Code)

			var body response.ErrorResponse
			require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
			assert.Equal(t, tt.wantItems, body.Errors)
			assert.NotContains(t, rec.Body.String(), "exploded")
			assert.NotContains(t, rec.Body.String(), "connection refused")

			if tt.wantLogged {
				assert.Contains(t, logs.String(), "Unhandled error")
			} else {
				assert.Empty(t, logs.String())
			}
		})
	}
}

func TestErrorMiddleware_SkipsCommittedResponse(t *testing.T) {
	m := NewErrorMiddleware(slog.New(slog.DiscardHandler))

	e := echo.New()
	rec := httptest.NewRecorder()
	c := e.NewContext(httptest.NewRequest(http.MethodGet, "/", nil), rec)
	require.NoError(t, c.String(http.StatusOK, "done"))

	m.HandleHTTPError(domainerrors.ErrInternalError, c)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "done", rec.Body.String())
}
