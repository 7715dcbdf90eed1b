package service

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// TokenService defines the interface for issuing and validating signed session tokens.
// Tokens are self-contained: the server stores nothing, revocation is client-side only.
type TokenService interface {
	// Issue creates a signed token carrying the user identity,
	// valid from now until now plus the session TTL.
	Issue(userID primitive.ObjectID) (string, error)

	// Validate verifies the token's signature and expiry and returns the embedded
	// user id. Signature and expiry checks are independent: a well-signed but
	// expired token fails with domainerrors.ErrSessionExpired, anything
	// unparsable or tampered with fails with domainerrors.ErrSessionMalformed.
	Validate(token string) (primitive.ObjectID, error)

	// SessionTTL returns the configured session lifetime, used for cookie expiry.
	SessionTTL() time.Duration
}
