package main

import (
	"context"
	"net/http"

	"github.com/fittrack/training-api/internal/api"
	"github.com/fittrack/training-api/internal/infrastructure/db/mysql"
	redisinfra "github.com/fittrack/training-api/internal/infrastructure/db/redis"
	"github.com/fittrack/training-api/internal/pkg/config"
	"github.com/fittrack/training-api/internal/pkg/i18n"
	"github.com/fittrack/training-api/pkg/logger"
)

// @title Fitness Training API
// @version 1.0
// @description REST backend for a fitness-training application: programs, exercises, and completed-exercise tracking with role-based access control.
// @host localhost:8080
// @schemes http
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
// @description Type "Bearer" followed by a space and the JWT token.
func main() {
	cfg := config.Load()

	log := logger.Init(logger.Options{
		Level:  cfg.LogLevel,
		Pretty: cfg.Env == "development",
	})

	bundle, err := i18n.NewBundle()
	if err != nil {
		log.Fatal().Err(err).Msg("load locales")
	}

	db, err := mysql.Connect(cfg.MySQL.DSN)
	if err != nil {
		log.Fatal().Err(err).Msg("mysql connect")
	}
	if err := mysql.Migrate(db); err != nil {
		log.Fatal().Err(err).Msg("mysql migrate")
	}

	rdb, err := redisinfra.Connect(context.Background(), cfg.Redis.Addr, cfg.Redis.DB)
	if err != nil {
		log.Fatal().Err(err).Msg("redis connect")
	}

	e := api.NewRouter(db, rdb, cfg, bundle, log)

	log.Info().Str("port", cfg.Port).Str("env", cfg.Env).Msg("starting server")
	if err := e.Start(":" + cfg.Port); err != nil && err != http.ErrServerClosed {
		log.Fatal().Err(err).Msg("server start")
	}
}
