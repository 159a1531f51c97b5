package middleware

import (
	"log/slog"
	"net/http"

	"lobby/internal/delivery/api/response"
	deliverycontext "lobby/internal/delivery/context"
	domainerrors "lobby/internal/domain/errors"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// ErrorMiddleware handles errors in the HTTP pipeline
type ErrorMiddleware struct {
	logger *slog.Logger
}

// NewErrorMiddleware creates a new error handling middleware
func NewErrorMiddleware(logger *slog.Logger) *ErrorMiddleware {
	return &ErrorMiddleware{
		logger: logger,
	}
}

// HandleHTTPError handles errors as Echo's HTTPErrorHandler
func (m *ErrorMiddleware) HandleHTTPError(err error, c echo.Context) {
	if c.Response().Committed {
		return
	}

	logger := deliverycontext.GetLoggerOrDefault(c.Request().Context(), m.logger)

	var validationErr *domainerrors.ValidationError
	if errors.As(err, &validationErr) {
		_ = response.ValidationFailed(c, validationErr)

		return
	}

	// Attempt to parse as AppError
	var appErr domainerrors.AppError
	if errors.As(err, &appErr) {
		if appErr.HTTPCode() >= http.StatusInternalServerError {
			m.logServerError(logger, c, err, appErr.ErrorCode())
		}
		// Message is the client-safe text; details and wrapped context stay in the log.
		_ = response.Error(c, appErr.HTTPCode(), appErr.Message())

		return
	}

	// Check if it is an Echo HTTPError
	var httpErr *echo.HTTPError
	if errors.As(err, &httpErr) {
		message := http.StatusText(httpErr.Code)
		if msg, ok := httpErr.Message.(string); ok && msg != "" {
			message = msg
		}
		if httpErr.Code >= http.StatusInternalServerError {
			m.logServerError(logger, c, err, "HTTP_ERROR")
			message = domainerrors.ErrInternalError.Message()
		}

		_ = response.Error(c, httpErr.Code, message)

		return
	}

	m.logServerError(logger, c, err, domainerrors.ErrInternalError.ErrorCode())

	// For 500 errors, do not expose internal error details to the client
	_ = response.InternalServerError(c)
}

func (m *ErrorMiddleware) logServerError(logger *slog.Logger, c echo.Context, err error, code string) {
	logger.Error("Unhandled error",
		slog.String("code", code),
		slog.Any("error", err),
		slog.String("path", c.Request().URL.Path),
		slog.String("method", c.Request().Method),
	)
}
