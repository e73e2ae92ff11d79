package jwt

import (
	"encoding/base64"
	"strings"
	"time"
)

// Config holds token service configuration with environment variable support.
type Config struct {
	// SecretKey is the base64-encoded HMAC key.
	SecretKey string `env:"JWT_SECRET_KEY,required"`
	// ExpirationTime is the token lifetime in milliseconds.
	ExpirationTime int64 `env:"JWT_EXPIRATION_TIME" envDefault:"3600000"`
	// Issuer is written to the iss claim when not empty.
	Issuer string `env:"JWT_ISSUER"`
}

// Lifetime returns ExpirationTime as a duration.
func (c Config) Lifetime() time.Duration {
	return time.Duration(c.ExpirationTime) * time.Millisecond
}

// NewFromConfig decodes the base64 secret and creates a Service.
// Additional options override config values.
func NewFromConfig(cfg Config, opts ...Option) (*Service, error) {
	secret := strings.TrimSpace(cfg.SecretKey)
	if secret == "" {
		return nil, ErrMissingSecretKey
	}

	key, err := decodeKey(secret)
	if err != nil {
		return nil, err
	}

	if cfg.Issuer != "" {
		opts = append([]Option{WithIssuer(cfg.Issuer)}, opts...)
	}

	return New(key, cfg.Lifetime(), opts...)
}

// decodeKey accepts both padded and unpadded standard base64.
func decodeKey(s string) ([]byte, error) {
	if key, err := base64.StdEncoding.DecodeString(s); err == nil {
		return key, nil
	}
	key, err := base64.RawStdEncoding.DecodeString(s)
	if err != nil {
		return nil, ErrInvalidSecretKey
	}
	return key, nil
}
