package main

import (
	"context"

	"github.com/redis/go-redis/v9"

	"github.com/sellora/storefront-admin/internal/api"
	"github.com/sellora/storefront-admin/internal/core/ports"
	"github.com/sellora/storefront-admin/internal/infrastructure/config"
	redisdb "github.com/sellora/storefront-admin/internal/infrastructure/db/redis"
	"github.com/sellora/storefront-admin/internal/infrastructure/db/sqlite"
	"github.com/sellora/storefront-admin/internal/infrastructure/seed"
	"github.com/sellora/storefront-admin/internal/infrastructure/session"
	"github.com/sellora/storefront-admin/pkg/logger"
)

func main() {
	cfg := config.Load()
	log := logger.Init(logger.Options{Level: cfg.LogLevel, Pretty: cfg.Development()})

	ctx := context.Background()

	db, err := sqlite.Open(ctx, sqlite.Config{Path: cfg.Store.Path})
	if err != nil {
		log.Fatal().Err(err).Str("path", cfg.Store.Path).Msg("failed to open record store")
	}
	defer db.Close()

	// Seeding failures are fatal: the process must not serve traffic after a
	// partial or silently failed import.
	if err := seed.Load(ctx, cfg.Seed.Path, sqlite.NewUserRepository(db), log); err != nil {
		log.Fatal().Err(err).Msg("user seeding failed, refusing to start")
	}

	var (
		sessions ports.SessionStore
		rdb      *redis.Client
	)
	switch cfg.Session.Backend {
	case config.SessionBackendRedis:
		rdb, err = redisdb.Connect(ctx, redisdb.Config{Addr: cfg.Redis.Addr, DB: cfg.Redis.DB})
		if err != nil {
			log.Fatal().Err(err).Str("addr", cfg.Redis.Addr).Msg("failed to connect to redis")
		}
		defer rdb.Close()
		sessions = session.NewRedisStore(rdb)
	case config.SessionBackendMemory:
		sessions = session.NewMemoryStore()
	default:
		log.Fatal().Str("backend", cfg.Session.Backend).Msg("unknown session backend")
	}

	e := api.NewRouter(db, rdb, sessions, cfg, log)

	log.Info().Str("port", cfg.Port).Str("env", cfg.Env).Str("session_backend", cfg.Session.Backend).Msg("starting server")
	if err := e.Start(":" + cfg.Port); err != nil {
		log.Fatal().Err(err).Msg("server stopped")
	}
}
