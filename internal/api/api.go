package api

import (
	"io"
	"log/slog"
	"net/http"
	"time"

	"golang.org/x/crypto/bcrypt"

	"github.com/chanseok/rememberme/core/health"
	"github.com/chanseok/rememberme/internal/repository"
	"github.com/chanseok/rememberme/middleware"
	"github.com/chanseok/rememberme/pkg/jwt"
	"github.com/chanseok/rememberme/pkg/ratelimiter"
)

// Config holds HTTP API settings loaded from the environment.
type Config struct {
	MaxBodySize     int64 `env:"BODY_MAX_SIZE" envDefault:"1048576"`
	LogRequestBody  bool  `env:"LOG_REQUEST_BODY" envDefault:"false"`
	LogResponseBody bool  `env:"LOG_RESPONSE_BODY" envDefault:"false"`
	BcryptCost      int   `env:"BCRYPT_COST" envDefault:"10"`

	// AuthRateLimit caps signup and login attempts per client address in AuthRateWindow.
	// Zero disables the limit.
	AuthRateLimit  int           `env:"AUTH_RATE_LIMIT" envDefault:"10"`
	AuthRateWindow time.Duration `env:"AUTH_RATE_WINDOW" envDefault:"1m"`
}

// API serves the vocabulary endpoints.
type API struct {
	repo   repository.Querier
	tokens *jwt.Service
	log    *slog.Logger
	cfg    Config
	checks []health.Check
	limits ratelimiter.Store
}

// Option configures an API.
type Option func(*API)

// WithLogger sets the logger for request logs and handler errors.
func WithLogger(log *slog.Logger) Option {
	return func(a *API) {
		if log != nil {
			a.log = log
		}
	}
}

// WithConfig replaces the default configuration.
func WithConfig(cfg Config) Option {
	return func(a *API) {
		a.cfg = cfg
	}
}

// WithReadinessChecks adds dependency probes to GET /ready.
func WithReadinessChecks(checks ...health.Check) Option {
	return func(a *API) {
		a.checks = append(a.checks, checks...)
	}
}

// WithRateLimitStore keeps auth rate limit buckets in store instead of process memory.
func WithRateLimitStore(store ratelimiter.Store) Option {
	return func(a *API) {
		a.limits = store
	}
}

// New creates an API backed by repo that issues and verifies tokens with tokens.
func New(repo repository.Querier, tokens *jwt.Service, opts ...Option) *API {
	a := &API{
		repo:   repo,
		tokens: tokens,
		log:    slog.New(slog.NewTextHandler(io.Discard, nil)),
		cfg: Config{
			MaxBodySize: middleware.DefaultMaxBodySize,
			BcryptCost:  bcrypt.DefaultCost,

			AuthRateLimit:  10,
			AuthRateWindow: time.Minute,
		},
	}
	for _, opt := range opts {
		opt(a)
	}
	if a.limits == nil {
		a.limits = ratelimiter.NewMemoryStore()
	}
	if a.cfg.AuthRateWindow < time.Millisecond {
		a.cfg.AuthRateWindow = time.Minute
	}
	if a.cfg.BcryptCost < bcrypt.MinCost || a.cfg.BcryptCost > bcrypt.MaxCost {
		a.cfg.BcryptCost = bcrypt.DefaultCost
	}
	return a
}

// Handler returns the HTTP handler serving every route.
func (a *API) Handler() http.Handler {
	return a.routes()
}
