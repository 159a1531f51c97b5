package auth

import (
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"

	"lobby/config"
	"lobby/internal/domain/service"
	"lobby/internal/errors"
)

const signingAlgorithm = "HS256"

// jwtService is a concrete implementation of the TokenService interface using the JWT standard.
type jwtService struct {
	secret []byte        // HMAC key; loaded once and never logged.
	issuer string        // "iss" claim.
	ttl    time.Duration // Lifetime of issued tokens.
	now    func() time.Time
}

// NewJWTService is the constructor for jwtService.
// It takes configuration values to create a new token service instance.
func NewJWTService(cfg *config.Config) (service.TokenService, error) {
	if cfg.SecretKey.Access == "" {
		return nil, errors.New("jwt secret must be provided")
	}

	svc := &jwtService{
		secret: []byte(cfg.SecretKey.Access),
		issuer: "lobby",
		ttl:    360000 * time.Second,
		now:    time.Now,
	}
	if cfg.Auth != nil {
		if cfg.Auth.TokenTTL > 0 {
			svc.ttl = cfg.Auth.TokenTTL
		}
		if cfg.Auth.Issuer != "" {
			svc.issuer = cfg.Auth.Issuer
		}
	}

	return svc, nil
}

// Issue signs a token for subjectID with iat = now and exp = now + ttl.
func (s *jwtService) Issue(subjectID uuid.UUID) (string, error) {
	now := s.now()
	claims := jwt.RegisteredClaims{
		Subject:   subjectID.String(),
		Issuer:    s.issuer,
		IssuedAt:  jwt.NewNumericDate(now),
		ExpiresAt: jwt.NewNumericDate(now.Add(s.ttl)),
		ID:        uuid.NewString(),
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString(s.secret)
	if err != nil {
		return "", errors.Wrap(err, "sign token")
	}

	return signed, nil
}

// Validate checks signature, algorithm and expiry, then returns the subject.
func (s *jwtService) Validate(tokenString string) (uuid.UUID, error) {
	parser := jwt.NewParser(
		jwt.WithValidMethods([]string{signingAlgorithm}),
		jwt.WithExpirationRequired(),
		jwt.WithTimeFunc(s.now),
	)

	claims := &jwt.RegisteredClaims{}
	_, err := parser.ParseWithClaims(tokenString, claims, func(token *jwt.Token) (any, error) {
		// Ensure the signing method is what we expect.
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, jwt.ErrSignatureInvalid
		}

		return s.secret, nil
	})
	if err != nil {
		return uuid.Nil, classifyTokenError(err)
	}

	subject, err := uuid.Parse(claims.Subject)
	if err != nil {
		return uuid.Nil, errors.Wrap(service.ErrTokenMalformed, "subject is not an account id")
	}

	return subject, nil
}

// TTL returns the lifetime given to issued tokens.
func (s *jwtService) TTL() time.Duration {
	return s.ttl
}

func classifyTokenError(err error) error {
	switch {
	case errors.Is(err, jwt.ErrTokenExpired):
		return errors.Wrap(service.ErrTokenExpired, err.Error())
	case errors.IsAny(err, jwt.ErrTokenSignatureInvalid, jwt.ErrTokenUnverifiable, jwt.ErrSignatureInvalid):
		return errors.Wrap(service.ErrTokenSignatureInvalid, err.Error())
	default:
		return errors.Wrap(service.ErrTokenMalformed, err.Error())
	}
}
