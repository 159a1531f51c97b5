package middleware

import (
	"bytes"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"lobby/config"
	deliverycontext "lobby/internal/delivery/context"
	domainerrors "lobby/internal/domain/errors"
	"lobby/internal/domain/service"
	mockservice "lobby/internal/mocks/service"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newAuthConfig() *config.Config {
	return &config.Config{Auth: &config.AuthConfig{TokenHeader: "x-auth-token"}}
}

func TestAuthMiddleware_Authenticate(t *testing.T) {
	accountID := uuid.New()

	tests := []struct {
		name        string
		headers     map[string]string
		setupMock   func(tokenSvc *mockservice.MockTokenService)
		wantErr     error
		wantAccount bool
	}{
		{
			name:    "missing token",
			wantErr: domainerrors.ErrMissingToken,
		},
		{
			name:    "empty bearer is missing",
			headers: map[string]string{echo.HeaderAuthorization: "Bearer "},
			wantErr: domainerrors.ErrMissingToken,
		},
		{
			name:    "token in configured header",
			headers: map[string]string{"x-auth-token": "good"},
			setupMock: func(tokenSvc *mockservice.MockTokenService) {
				tokenSvc.EXPECT().Validate("good").Return(accountID, nil).Once()
			},
			wantAccount: true,
		},
		{
			name:    "bearer token",
			headers: map[string]string{echo.HeaderAuthorization: "Bearer good"},
			setupMock: func(tokenSvc *mockservice.MockTokenService) {
				tokenSvc.EXPECT().Validate("good").Return(accountID, nil).Once()
			},
			wantAccount: true,
		},
		{
			name: "configured header wins over bearer",
			headers: map[string]string{
				"x-auth-token":           "header-token",
				echo.HeaderAuthorization: "Bearer bearer-token",
			},
			setupMock: func(tokenSvc *mockservice.MockTokenService) {
				tokenSvc.EXPECT().Validate("header-token").Return(accountID, nil).Once()
			},
			wantAccount: true,
		},
		{
			name:    "expired token",
			headers: map[string]string{"x-auth-token": "old"},
			setupMock: func(tokenSvc *mockservice.MockTokenService) {
				tokenSvc.EXPECT().Validate("old").Return(uuid.Nil, service.ErrTokenExpired).Once()
			},
			wantErr: domainerrors.ErrUnauthenticated,
		},
		{
			name:    "tampered token",
			headers: map[string]string{"x-auth-token": "bad"},
			setupMock: func(tokenSvc *mockservice.MockTokenService) {
				tokenSvc.EXPECT().Validate("bad").Return(uuid.Nil, service.ErrTokenSignatureInvalid).Once()
			},
			wantErr: domainerrors.ErrUnauthenticated,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tokenSvc := mockservice.NewMockTokenService(t)
			if tt.setupMock != nil {
				tt.setupMock(tokenSvc)
			}
			m := NewAuthMiddleware(tokenSvc, newAuthConfig(), slog.New(slog.DiscardHandler))

			e := echo.New()
			req := httptest.NewRequest(http.MethodGet, "/api/auth", nil)
			for k, v := range tt.headers {
				req.Header.Set(k, v)
			}
			c := e.NewContext(req, httptest.NewRecorder())

			called := false
			err := m.Authenticate(func(c echo.Context) error {
				called = true
				got, ok := GetAccountID(c)
				assert.True(t, ok)
				assert.Equal(t, accountID, got)

				return nil
			})(c)

			if tt.wantErr != nil {
				require.ErrorIs(t, err, tt.wantErr)
				assert.False(t, called)

				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.wantAccount, called)
		})
	}
}

func TestAuthMiddleware_RejectionsShareOneMessage(t *testing.T) {
	kinds := []error{service.ErrTokenMalformed, service.ErrTokenSignatureInvalid, service.ErrTokenExpired}

	for _, kind := range kinds {
		tokenSvc := mockservice.NewMockTokenService(t)
		tokenSvc.EXPECT().Validate("t").Return(uuid.Nil, kind).Once()
		m := NewAuthMiddleware(tokenSvc, newAuthConfig(), slog.New(slog.DiscardHandler))

		e := echo.New()
		req := httptest.NewRequest(http.MethodGet, "/", nil)
		req.Header.Set("x-auth-token", "t")
		err := m.Authenticate(func(echo.Context) error { return nil })(e.NewContext(req, httptest.NewRecorder()))

		var appErr domainerrors.AppError
		require.ErrorAs(t, err, &appErr)
		assert.Equal(t, http.StatusUnauthorized, appErr.HTTPCode())
		assert.Equal(t, "Token is not valid", appErr.Message())
	}
}

func TestAuthMiddleware_TagsScopedLoggerWithAccount(t *testing.T) {
	accountID := uuid.New()
	tokenSvc := mockservice.NewMockTokenService(t)
	tokenSvc.EXPECT().Validate("good").Return(accountID, nil).Once()
	m := NewAuthMiddleware(tokenSvc, newAuthConfig(), slog.New(slog.DiscardHandler))

	var buf bytes.Buffer
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set("x-auth-token", "good")
	req = req.WithContext(deliverycontext.WithLogger(req.Context(), slog.New(slog.NewTextHandler(&buf, nil))))

	err := m.Authenticate(func(c echo.Context) error {
		deliverycontext.GetLogger(c.Request().Context()).Info("inside handler")

		return nil
	})(e.NewContext(req, httptest.NewRecorder()))

	require.NoError(t, err)
	assert.Contains(t, buf.String(), "account_id="+accountID.String())
}
