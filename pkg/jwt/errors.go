package jwt

import "errors"

var (
	ErrMissingSecretKey  = errors.New("jwt: secret key is required")
	ErrInvalidSecretKey  = errors.New("jwt: secret key is not valid base64")
	ErrWeakSecretKey     = errors.New("jwt: secret key must be at least 64 bytes for HS512")
	ErrInvalidExpiration = errors.New("jwt: expiration time must be positive")
	ErrEmptySubject      = errors.New("jwt: subject is required")

	// ErrInvalidToken is returned when a token is malformed, signed with a different
	// key or algorithm, or misses required claims.
	ErrInvalidToken = errors.New("jwt: invalid token")
	// ErrExpiredToken is returned by Validate when the token is past its exp claim.
	ErrExpiredToken = errors.New("jwt: token has expired")
	// ErrSubjectMismatch is returned by Validate when the sub claim differs from the expected subject.
	ErrSubjectMismatch = errors.New("jwt: token subject mismatch")
)
