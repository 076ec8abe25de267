package jwtx

import (
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

// DefaultTokenTTL is the lifetime used for both token kinds when a service
// does not configure its own.
const DefaultTokenTTL = time.Hour

// Kind separates tokens that authorize requests from tokens that can only be
// exchanged for a new access token. The two are never interchangeable.
type Kind string

const (
	KindAccess  Kind = "access"
	KindRefresh Kind = "refresh"
)

// Valid reports whether k is one of the known kinds.
func (k Kind) Valid() bool {
	return k == KindAccess || k == KindRefresh
}

// Claims are the claims embedded in every token we mint.
type Claims struct {
	jwt.RegisteredClaims

	// Kind is "access" or "refresh".
	Kind Kind `json:"type"`
}

// NewClaims builds claims for subject valid from now until now+ttl.
func NewClaims(subject string, kind Kind, ttl time.Duration, issuer string, now time.Time) Claims {
	return Claims{
		RegisteredClaims: jwt.RegisteredClaims{
			Issuer:    issuer,
			Subject:   subject,
			IssuedAt:  jwt.NewNumericDate(now),
			NotBefore: jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(ttl)),
			ID:        NewJTI(),
		},
		Kind: kind,
	}
}

// NewJTI returns a random identifier for the "jti" claim.
func NewJTI() string {
	return uuid.NewString()
}

// ValidateIssuer checks if the issuer matches expected value.
func (c *Claims) ValidateIssuer(expected string) error {
	if expected == "" {
		return nil // nothing to enforce
	}

	if c.Issuer != expected {
		return ErrIssuer
	}

	return nil
}

// ValidateExpiryAt reports ErrExpired once now has reached exp, and
// ErrNotYetValid before nbf. A token is dead at the exact second it expires.
func (c *Claims) ValidateExpiryAt(now time.Time) error {
	if c.ExpiresAt != nil && !now.Before(c.ExpiresAt.Time) {
		return ErrExpired
	}

	if c.NotBefore != nil && now.Before(c.NotBefore.Time) {
		return ErrNotYetValid
	}

	return nil
}

// ValidateKind checks the token was minted for the expected purpose.
func (c *Claims) ValidateKind(expected Kind) error {
	if c.Kind != expected {
		return ErrWrongKind
	}
	return nil
}

// Decode parses the token payload without checking the signature. Only use
// the result to classify a token that will be verified afterwards.
func Decode(tokenStr string) (Claims, error) {
	var claims Claims
	if _, _, err := jwt.NewParser().ParseUnverified(tokenStr, &claims); err != nil {
		return Claims{}, ErrMalformed
	}
	return claims, nil
}
