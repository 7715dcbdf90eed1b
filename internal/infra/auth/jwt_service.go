// Package auth provides concrete implementations for authentication-related domain services.
package auth

import (
	"time"

	"github.com/golang-jwt/jwt/v5"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"hub/config"
	domainerrors "hub/internal/domain/errors"
	"hub/internal/domain/service"
	"hub/internal/errors"
)

// jwtService is a concrete implementation of the TokenService interface using the JWT standard.
// Tokens are HS256-signed and self-contained; the server keeps no session state.
type jwtService struct {
	secret     string        // Secret key for signing session tokens.
	sessionTTL time.Duration // Time-to-live for session tokens.
}

// NewJWTService is the constructor for jwtService.
// It takes configuration values to create a new token service instance.
func NewJWTService(cfg *config.Config) (service.TokenService, error) {
	if cfg.SecretKey.Session == "" {
		return nil, errors.New("session secret must be provided")
	}

	ttl := 7 * 24 * time.Hour
	if cfg.Auth != nil && cfg.Auth.SessionTTL != 0 {
		ttl = cfg.Auth.SessionTTL
	}

	return &jwtService{
		secret:     cfg.SecretKey.Session,
		sessionTTL: ttl,
	}, nil
}

// Issue creates a signed session token carrying the user id as subject.
func (s *jwtService) Issue(userID primitive.ObjectID) (string, error) {
	now := time.Now()
	claims := jwt.RegisteredClaims{
		Subject:   userID.Hex(),
		IssuedAt:  jwt.NewNumericDate(now),
		ExpiresAt: jwt.NewNumericDate(now.Add(s.sessionTTL)),
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString([]byte(s.secret))
	if err != nil {
		return "", errors.Wrap(err, "failed to sign session token")
	}

	return signed, nil
}

// Validate verifies signature and expiry and returns the embedded user id.
// Expiry is checked independently of the signature: a well-signed token past
// its expiry fails with ErrSessionExpired, everything else with ErrSessionMalformed.
func (s *jwtService) Validate(tokenString string) (primitive.ObjectID, error) {
	claims := &jwt.RegisteredClaims{}
	token, err := jwt.ParseWithClaims(tokenString, claims, func(token *jwt.Token) (any, error) {
		// Ensure the signing method is what we expect.
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, jwt.ErrSignatureInvalid
		}

		return []byte(s.secret), nil
	})
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return primitive.NilObjectID, domainerrors.ErrSessionExpired.WrapMessage("session token expired")
		}

		return primitive.NilObjectID, domainerrors.ErrSessionMalformed.WrapMessage("failed to parse session token")
	}
	if !token.Valid {
		return primitive.NilObjectID, domainerrors.ErrSessionMalformed.WrapMessage("session token rejected")
	}

	userID, err := primitive.ObjectIDFromHex(claims.Subject)
	if err != nil {
		return primitive.NilObjectID, domainerrors.ErrSessionMalformed.WrapMessage("invalid subject claim")
	}

	return userID, nil
}

// SessionTTL returns the configured session lifetime.
func (s *jwtService) SessionTTL() time.Duration {
	return s.sessionTTL
}
