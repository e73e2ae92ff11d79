package main

import (
	"log/slog"
	"time"

	"github.com/chanseok/rememberme/core/logger"
	"github.com/chanseok/rememberme/core/server"
	"github.com/chanseok/rememberme/integration/database/pg"
	"github.com/chanseok/rememberme/integration/database/redis"
	"github.com/chanseok/rememberme/internal/api"
	"github.com/chanseok/rememberme/middleware"
	"github.com/chanseok/rememberme/pkg/jwt"
)

type Config struct {
	AppName  string `env:"APP_NAME" envDefault:"rememberme-api"`
	AppEnv   string `env:"APP_ENV" envDefault:"development"`
	LogLevel string `env:"LOG_LEVEL"`

	// WordCacheTTL is how long a word read by id stays in redis. Zero disables caching.
	WordCacheTTL time.Duration `env:"WORD_CACHE_TTL" envDefault:"10m"`

	JWT    jwt.Config
	DB     pg.Config
	Redis  redis.Config
	Server server.Config
	API    api.Config
}

func newLogger(cfg Config) *slog.Logger {
	var env logger.Option
	switch cfg.AppEnv {
	case "production":
		env = logger.WithProduction(cfg.AppName)
	case "staging":
		env = logger.WithStaging(cfg.AppName)
	default:
		env = logger.WithDevelopment(cfg.AppName)
	}

	opts := []logger.Option{env, logger.WithContextExtractors(middleware.RequestIDExtractor)}
	if cfg.LogLevel != "" {
		opts = append(opts, logger.WithLevel(logger.ParseLevel(cfg.LogLevel)))
	}
	return logger.New(opts...)
}
