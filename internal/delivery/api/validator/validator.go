// Package validator adapts go-playground/validator to echo.Validator.
package validator

import (
	"reflect"
	"strings"

	domainerrors "lobby/internal/domain/errors"

	playground "github.com/go-playground/validator/v10"
	"github.com/pkg/errors"
)

// messageTag names the struct tag holding the message reported when a
// field fails any of its rules.
const messageTag = "msg"

// RequestValidator validates request DTOs tagged with `validate:"..."`.
type RequestValidator struct {
	validate *playground.Validate
}

// New builds a RequestValidator that reports fields by their JSON name.
func New() *RequestValidator {
	v := playground.New(playground.WithRequiredStructEnabled())
	v.RegisterTagNameFunc(func(field reflect.StructField) string {
		name, _, _ := strings.Cut(field.Tag.Get("json"), ",")
		if name == "-" {
			return ""
		}
		if name == "" {
			return field.Name
		}

		return name
	})

	return &RequestValidator{validate: v}
}

// Validate implements echo.Validator. Rule failures come back as a
// *domainerrors.ValidationError listing one entry per offending field.
func (rv *RequestValidator) Validate(i any) error {
	err := rv.validate.Struct(i)
	if err == nil {
		return nil
	}

	var fieldErrs playground.ValidationErrors
	if !errors.As(err, &fieldErrs) {
		return errors.Wrap(err, "validate request")
	}

	seen := make(map[string]struct{}, len(fieldErrs))
	fields := make([]domainerrors.FieldError, 0, len(fieldErrs))
	for _, fe := range fieldErrs {
		if _, dup := seen[fe.Field()]; dup {
			continue
		}
		seen[fe.Field()] = struct{}{}
		fields = append(fields, domainerrors.FieldError{
			Field:   fe.Field(),
			Message: messageFor(i, fe),
		})
	}

	return domainerrors.NewValidationError(fields...)
}

func messageFor(i any, fe playground.FieldError) string {
	t := reflect.TypeOf(i)
	for t.Kind() == reflect.Pointer {
		t = t.Elem()
	}
	if t.Kind() == reflect.Struct {
		if sf, ok := t.FieldByName(fe.StructField()); ok {
			if msg := sf.Tag.Get(messageTag); msg != "" {
				return msg
			}
		}
	}

	return fe.Field() + " is invalid"
}
