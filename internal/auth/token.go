package auth

import (
	"errors"
	"time"

	jwt "github.com/golang-jwt/jwt/v5"
)

// Signed token failures. Verify distinguishes the three so callers can report
// an expired link differently from a forged or garbled one.
var (
	ErrTokenMalformed = errors.New("token malformed")
	ErrTokenExpired   = errors.New("token expired")
	ErrTokenSignature = errors.New("token signature invalid")
)

// tokenClaims wraps an arbitrary payload with the standard expiry claims.
// There is no embedded type tag; the caller must know which payload shape was
// issued for a given token purpose.
type tokenClaims[T any] struct {
	Payload T `json:"payload"`
	jwt.RegisteredClaims
}

// Sign serializes the payload with an absolute expiry and signs it with the
// purpose-specific secret.
func Sign[T any](payload T, secret []byte, ttl time.Duration) (string, error) {
	now := time.Now()
	claims := &tokenClaims[T]{
		Payload: payload,
		RegisteredClaims: jwt.RegisteredClaims{
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(ttl)),
		},
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(secret)
}

// Verify checks signature and expiry, returning the embedded payload. A token
// signed under a different secret fails with ErrTokenSignature; an expired
// token fails with ErrTokenExpired regardless of signature validity.
func Verify[T any](tokenStr string, secret []byte) (T, error) {
	var claims tokenClaims[T]
	parser := jwt.NewParser(jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}))
	_, err := parser.ParseWithClaims(tokenStr, &claims, func(_ *jwt.Token) (interface{}, error) {
		return secret, nil
	})
	if err != nil {
		var zero T
		switch {
		case errors.Is(err, jwt.ErrTokenExpired):
			return zero, ErrTokenExpired
		case errors.Is(err, jwt.ErrTokenSignatureInvalid):
			return zero, ErrTokenSignature
		default:
			return zero, ErrTokenMalformed
		}
	}
	return claims.Payload, nil
}

// DecodeUnverified extracts the payload and embedded expiry without checking
// the signature. Only for call sites where a trusted boundary has already
// occurred; the caller is expected to enforce the expiry itself.
func DecodeUnverified[T any](tokenStr string) (T, time.Time, error) {
	var claims tokenClaims[T]
	parser := jwt.NewParser()
	if _, _, err := parser.ParseUnverified(tokenStr, &claims); err != nil {
		var zero T
		return zero, time.Time{}, ErrTokenMalformed
	}
	var expiry time.Time
	if claims.ExpiresAt != nil {
		expiry = claims.ExpiresAt.Time
	}
	return claims.Payload, expiry, nil
}
