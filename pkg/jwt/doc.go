// Package jwt issues and validates stateless identity tokens signed with HMAC-SHA512.
//
// Tokens use the standard compact JWS serialization (header.payload.signature) with
// the HS512 algorithm, so they can be verified by any RFC 7519 compliant library.
// The payload carries the registered claims sub, iat, exp and jti (plus iss when an
// issuer is configured). Nothing is stored server-side: a token lives until it expires.
//
// # Usage
//
// Create the service once at startup from configuration:
//
//	var cfg jwt.Config
//	config.MustLoad(&cfg) // JWT_SECRET_KEY (base64), JWT_EXPIRATION_TIME (milliseconds)
//
//	tokens, err := jwt.NewFromConfig(cfg)
//	if err != nil {
//		log.Fatal(err)
//	}
//
// Issue a token on login:
//
//	token, err := tokens.Issue(user.Email)
//
// Validate a token on each request:
//
//	subject, err := tokens.ExtractSubject(token)
//	if err != nil {
//		// errors.Is(err, jwt.ErrInvalidToken): malformed, forged or signed with another key
//	}
//
//	if err := tokens.Validate(token, user.Email); err != nil {
//		switch {
//		case errors.Is(err, jwt.ErrExpiredToken):
//		case errors.Is(err, jwt.ErrSubjectMismatch):
//		case errors.Is(err, jwt.ErrInvalidToken):
//		}
//	}
//
// IsValid keeps a boolean contract for callers that only need yes/no: it returns
// false for expired tokens and subject mismatches, and an error only when the token
// cannot be parsed or verified at all.
//
// # Signing Key
//
// The secret is configured as a base64 string and decoded once. HS512 requires a key of
// at least 512 bits (64 bytes); shorter keys are rejected with ErrWeakSecretKey.
//
// # Time Precision
//
// JWT timestamps have one-second precision. Issue truncates the issue time to the second
// and derives the expiry from it, so a token is valid for exactly the configured lifetime
// measured from its iat claim.
package jwt
