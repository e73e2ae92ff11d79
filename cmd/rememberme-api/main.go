package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"golang.org/x/sync/errgroup"

	"github.com/chanseok/rememberme/core/config"
	"github.com/chanseok/rememberme/core/health"
	"github.com/chanseok/rememberme/core/logger"
	"github.com/chanseok/rememberme/core/server"
	"github.com/chanseok/rememberme/integration/database/pg"
	"github.com/chanseok/rememberme/integration/database/redis"
	"github.com/chanseok/rememberme/internal/api"
	"github.com/chanseok/rememberme/internal/repository"
	"github.com/chanseok/rememberme/pkg/jwt"
	"github.com/chanseok/rememberme/pkg/ratelimiter"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	var cfg Config
	config.MustLoad(&cfg)

	log := newLogger(cfg)

	tokens, err := jwt.NewFromConfig(cfg.JWT)
	if err != nil {
		log.Error("Failed to create token service", logger.Component("jwt"), logger.Error(err))
		os.Exit(1)
	}

	db, err := pg.Connect(ctx, cfg.DB)
	if err != nil {
		log.Error("Failed to connect to database", logger.Component("database"), logger.Error(err))
		os.Exit(1)
	}
	defer db.Close()

	if cfg.DB.AutoMigrate {
		if err := pg.Migrate(ctx, db, repository.Migrations(), cfg.DB, log.With(logger.Component("migration"))); err != nil {
			log.Error("Failed to migrate database", logger.Component("database.migration"), logger.Error(err))
			os.Exit(1)
		}
	}

	rdb, err := redis.Connect(ctx, cfg.Redis)
	if err != nil {
		log.Error("Failed to connect to redis", logger.Component("redis"), logger.Error(err))
		os.Exit(1)
	}
	defer rdb.Close()

	var repo repository.Querier = repository.New(db)
	if cfg.WordCacheTTL > 0 {
		repo = repository.NewCachedQuerier(repo, rdb, cfg.WordCacheTTL, log)
	}

	srv := api.New(repo, tokens,
		api.WithLogger(log),
		api.WithConfig(cfg.API),
		api.WithRateLimitStore(ratelimiter.NewRedisStore(rdb)),
		api.WithReadinessChecks(
			health.Check{Name: "postgres", Fn: pg.Healthcheck(db)},
			health.Check{Name: "redis", Fn: redis.Healthcheck(rdb)},
		),
	)

	s, err := server.NewFromConfig(cfg.Server, server.WithLogger(log))
	if err != nil {
		log.Error("Failed to create server", logger.Component("server"), logger.Error(err))
		os.Exit(1)
	}

	eg, ctx := errgroup.WithContext(ctx)
	eg.Go(s.Run(ctx, srv.Handler()))

	if err := eg.Wait(); err != nil {
		log.Error("Failed to run server", logger.Component("server"), logger.Error(err))
		os.Exit(1)
	}

	log.Info("Application stopped")
}
