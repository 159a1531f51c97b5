// Package response writes the JSON bodies returned by the HTTP API.
package response

import (
	"net/http"

	domainerrors "lobby/internal/domain/errors"

	"github.com/labstack/echo/v4"
)

// ErrorResponse defines the structure for error responses
type ErrorResponse struct {
	Errors []ErrorItem `json:"errors"`
}

// ErrorItem describes one problem with the request
type ErrorItem struct {
	Msg   string `json:"msg"`             // User-friendly error message
	Param string `json:"param,omitempty"` // Offending request field, when there is one
}

// Success returns a successful response with data as the whole body
func Success(c echo.Context, statusCode int, data any) error {
	return c.JSON(statusCode, data)
}

// Error returns an error response carrying a single message
func Error(c echo.Context, statusCode int, message string) error {
	return c.JSON(statusCode, ErrorResponse{
		Errors: []ErrorItem{{Msg: message}},
	})
}

// Errors returns an error response carrying several items
func Errors(c echo.Context, statusCode int, items []ErrorItem) error {
	return c.JSON(statusCode, ErrorResponse{Errors: items})
}

// BindingError returns a binding error response
func BindingError(c echo.Context, message string) error {
	return Error(c, http.StatusBadRequest, message)
}

// InternalServerError returns a 500 error
func InternalServerError(c echo.Context) error {
	return Error(c, http.StatusInternalServerError, domainerrors.ErrInternalError.Message())
}

// ValidationFailed returns a 400 listing every rejected field
func ValidationFailed(c echo.Context, err *domainerrors.ValidationError) error {
	fields := err.Fields()
	if len(fields) == 0 {
		return Error(c, http.StatusBadRequest, err.Message())
	}

	items := make([]ErrorItem, 0, len(fields))
	for _, f := range fields {
		items = append(items, ErrorItem{Msg: f.Message, Param: f.Field})
	}

	return Errors(c, http.StatusBadRequest, items)
}
