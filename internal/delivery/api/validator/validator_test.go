package validator

import (
	"testing"

	domainerrors "lobby/internal/domain/errors"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type signupRequest struct {
	Name     string `json:"name" validate:"required" msg:"Name is required"`
	Email    string `json:"email" validate:"required,email" msg:"Please include a valid email"`
	Password string `json:"password" validate:"min=6"`
}

func TestValidate(t *testing.T) {
	v := New()

	tests := []struct {
		name       string
		req        *signupRequest
		wantFields []domainerrors.FieldError
	}{
		{
			name: "valid",
			req:  &signupRequest{Name: "A", Email: "a@x.com", Password: "secret1"},
		},
		{
			name: "every field rejected in declaration order",
			req:  &signupRequest{Email: "nope", Password: "123"},
			wantFields: []domainerrors.FieldError{
				{Field: "name", Message: "Name is required"},
				{Field: "email", Message: "Please include a valid email"},
				{Field: "password", Message: "password is invalid"},
			},
		},
		{
			name: "empty email reports once",
			req:  &signupRequest{Name: "A", Password: "secret1"},
			wantFields: []domainerrors.FieldError{
				{Field: "email", Message: "Please include a valid email"},
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := v.Validate(tt.req)
			if tt.wantFields == nil {
				assert.NoError(t, err)

				return
			}

			var validationErr *domainerrors.ValidationError
			require.ErrorAs(t, err, &validationErr)
			assert.ErrorIs(t, err, domainerrors.ErrValidationFailed)
			assert.Equal(t, tt.wantFields, validationErr.Fields())
		})
	}
}

func TestValidate_NonStruct(t *testing.T) {
	err := New().Validate("plain string")
	require.Error(t, err)
	assert.NotErrorIs(t, err, domainerrors.ErrValidationFailed)
}
