package middleware

import (
	"log/slog"
	"net/http"
	"strings"

	"lobby/config"
	deliverycontext "lobby/internal/delivery/context"
	domainerrors "lobby/internal/domain/errors"
	"lobby/internal/domain/service"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
)

const bearerPrefix = "Bearer "

// AuthMiddleware provides middleware for session token authentication.
type AuthMiddleware struct {
	tokenSvc    service.TokenService
	tokenHeader string
	logger      *slog.Logger
}

// NewAuthMiddleware is the constructor for AuthMiddleware.
func NewAuthMiddleware(tokenSvc service.TokenService, cfg *config.Config, logger *slog.Logger) *AuthMiddleware {
	header := ""
	if cfg.Auth != nil {
		header = cfg.Auth.TokenHeader
	}

	return &AuthMiddleware{tokenSvc: tokenSvc, tokenHeader: header, logger: logger}
}

// Authenticate validates the session token and stores its subject as the
// caller's account id. It does not load the account.
func (m *AuthMiddleware) Authenticate(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		token := m.extractToken(c.Request())
		if token == "" {
			return domainerrors.ErrMissingToken
		}

		accountID, err := m.tokenSvc.Validate(token)
		if err != nil {
			// The failure kind is logged, never returned.
			deliverycontext.GetLoggerOrDefault(c.Request().Context(), m.logger).
				Debug("Rejected session token", slog.Any("reason", err))

			return domainerrors.ErrUnauthenticated
		}

		deliverycontext.SetAccountID(c, accountID)
		if scoped := deliverycontext.GetLogger(c.Request().Context()); scoped != nil {
			deliverycontext.SetLogger(c, scoped.With(slog.String("account_id", accountID.String())))
		}

		return next(c)
	}
}

// extractToken reads the configured token header first, then falls back to
// an Authorization bearer token.
func (m *AuthMiddleware) extractToken(req *http.Request) string {
	if m.tokenHeader != "" {
		if token := strings.TrimSpace(req.Header.Get(m.tokenHeader)); token != "" {
			return token
		}
	}

	authHeader := req.Header.Get(echo.HeaderAuthorization)
	if len(authHeader) > len(bearerPrefix) && strings.EqualFold(authHeader[:len(bearerPrefix)], bearerPrefix) {
		return strings.TrimSpace(authHeader[len(bearerPrefix):])
	}

	return ""
}

// GetAccountID returns the account id stored by Authenticate.
func GetAccountID(c echo.Context) (uuid.UUID, bool) {
	return deliverycontext.GetAccountID(c)
}
