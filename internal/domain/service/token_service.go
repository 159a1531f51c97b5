package service

import (
	"errors"
	"time"

	"github.com/google/uuid"
)

// Validation failure kinds reported by TokenService.Validate. Callers facing
// the network collapse all of them into one unauthenticated outcome.
var (
	ErrTokenMalformed        = errors.New("token is malformed")
	ErrTokenSignatureInvalid = errors.New("token signature is invalid")
	ErrTokenExpired          = errors.New("token has expired")
)

// TokenService issues and validates signed, time-limited identity tokens.
type TokenService interface {
	// Issue creates a signed token whose subject is the account id.
	Issue(subjectID uuid.UUID) (string, error)

	// Validate verifies signature, algorithm and expiry and returns the subject.
	Validate(token string) (uuid.UUID, error)

	// TTL returns the lifetime given to issued tokens.
	TTL() time.Duration
}
