package jwt

import (
	"errors"
	"fmt"
	"time"

	gojwt "github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

// minKeySize is the HS512 minimum key length in bytes.
const minKeySize = 64

// Claims is the decoded payload of a token.
type Claims struct {
	ID        string
	Subject   string
	Issuer    string
	IssuedAt  time.Time
	ExpiresAt time.Time
}

// Service issues and validates HS512 tokens.
// It holds only immutable state and is safe for concurrent use.
type Service struct {
	key      []byte
	lifetime time.Duration
	issuer   string
	now      func() time.Time
	parser   *gojwt.Parser
}

// Option configures a Service.
type Option func(*Service)

// WithClock overrides the time source used for issuing and expiry checks.
func WithClock(now func() time.Time) Option {
	return func(s *Service) {
		if now != nil {
			s.now = now
		}
	}
}

// WithIssuer sets the iss claim on issued tokens and requires it on validation.
func WithIssuer(issuer string) Option {
	return func(s *Service) {
		s.issuer = issuer
	}
}

// New creates a Service from raw key bytes and a token lifetime.
func New(key []byte, lifetime time.Duration, opts ...Option) (*Service, error) {
	if len(key) == 0 {
		return nil, ErrMissingSecretKey
	}
	if len(key) < minKeySize {
		return nil, ErrWeakSecretKey
	}
	if lifetime <= 0 {
		return nil, ErrInvalidExpiration
	}

	s := &Service{
		key:      append([]byte(nil), key...),
		lifetime: lifetime,
		now:      time.Now,
		parser: gojwt.NewParser(
			gojwt.WithValidMethods([]string{gojwt.SigningMethodHS512.Alg()}),
			gojwt.WithoutClaimsValidation(), // expiry is checked against s.now
		),
	}

	for _, opt := range opts {
		opt(s)
	}

	return s, nil
}

// Lifetime returns the configured token lifetime.
func (s *Service) Lifetime() time.Duration {
	return s.lifetime
}

// Issue creates a signed token for the subject.
func (s *Service) Issue(subject string) (string, error) {
	if subject == "" {
		return "", ErrEmptySubject
	}

	issuedAt := s.now().Truncate(time.Second)
	claims := gojwt.RegisteredClaims{
		ID:        uuid.NewString(),
		Subject:   subject,
		Issuer:    s.issuer,
		IssuedAt:  gojwt.NewNumericDate(issuedAt),
		ExpiresAt: gojwt.NewNumericDate(issuedAt.Add(s.lifetime)),
	}

	token, err := gojwt.NewWithClaims(gojwt.SigningMethodHS512, claims).SignedString(s.key)
	if err != nil {
		return "", fmt.Errorf("jwt: failed to sign token: %w", err)
	}
	return token, nil
}

// Claims verifies the signature and returns the decoded claims without checking expiry.
func (s *Service) Claims(token string) (*Claims, error) {
	var rc gojwt.RegisteredClaims
	if _, err := s.parser.ParseWithClaims(token, &rc, s.keyFunc); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidToken, err)
	}
	if rc.ExpiresAt == nil {
		return nil, fmt.Errorf("%w: missing exp claim", ErrInvalidToken)
	}

	c := &Claims{
		ID:        rc.ID,
		Subject:   rc.Subject,
		Issuer:    rc.Issuer,
		ExpiresAt: rc.ExpiresAt.Time,
	}
	if rc.IssuedAt != nil {
		c.IssuedAt = rc.IssuedAt.Time
	}
	return c, nil
}

// ExtractSubject verifies the token signature and returns its subject.
// Expiry is not checked.
func (s *Service) ExtractSubject(token string) (string, error) {
	c, err := s.Claims(token)
	if err != nil {
		return "", err
	}
	return c.Subject, nil
}

// Validate checks signature, subject and expiry.
// It returns ErrInvalidToken, ErrSubjectMismatch or ErrExpiredToken.
func (s *Service) Validate(token, expectedSubject string) error {
	c, err := s.Claims(token)
	if err != nil {
		return err
	}
	if s.issuer != "" && c.Issuer != s.issuer {
		return fmt.Errorf("%w: unexpected issuer %q", ErrInvalidToken, c.Issuer)
	}
	if c.Subject != expectedSubject {
		return ErrSubjectMismatch
	}
	if !s.now().Before(c.ExpiresAt) {
		return ErrExpiredToken
	}
	return nil
}

// IsValid reports whether the token belongs to expectedSubject and has not expired.
// An error is returned only when the token cannot be parsed or verified.
func (s *Service) IsValid(token, expectedSubject string) (bool, error) {
	err := s.Validate(token, expectedSubject)
	switch {
	case err == nil:
		return true, nil
	case errors.Is(err, ErrExpiredToken), errors.Is(err, ErrSubjectMismatch):
		return false, nil
	default:
		return false, err
	}
}

func (s *Service) keyFunc(*gojwt.Token) (any, error) {
	return s.key, nil
}
