package context

import (
	"context"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
)

// KeyAccountID is the key for the authenticated account id.
const KeyAccountID ContextKey = "accountID"

// SetAccountID stores the authenticated account id in echo.Context and in
// the request's context.Context.
func SetAccountID(c echo.Context, accountID uuid.UUID) {
	c.Set(string(KeyAccountID), accountID)
	c.SetRequest(c.Request().WithContext(WithAccountID(c.Request().Context(), accountID)))
}

// GetAccountID extracts the authenticated account id from echo.Context.
func GetAccountID(c echo.Context) (uuid.UUID, bool) {
	id, ok := c.Get(string(KeyAccountID)).(uuid.UUID)

	return id, ok && id != uuid.Nil
}

// WithAccountID returns a new context with the account id.
func WithAccountID(ctx context.Context, accountID uuid.UUID) context.Context {
	return context.WithValue(ctx, KeyAccountID, accountID)
}

// GetAccountIDFromContext extracts the account id from context.Context.
func GetAccountIDFromContext(ctx context.Context) (uuid.UUID, bool) {
	id, ok := ctx.Value(KeyAccountID).(uuid.UUID)

	return id, ok && id != uuid.Nil
}
