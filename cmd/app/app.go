package app

import (
	"context"
	"fmt"
	"os"
	"time"

	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/shwenadi/goldshop-api/internal/api"
	"github.com/shwenadi/goldshop-api/internal/cache"
	"github.com/shwenadi/goldshop-api/internal/config"
	"github.com/shwenadi/goldshop-api/internal/db"
	"github.com/shwenadi/goldshop-api/internal/imagestore/local"
	"github.com/shwenadi/goldshop-api/internal/logger"
)

func Start() error {
	conf, err := config.Load("./cmd/app/config.yml")
	if err != nil {
		return fmt.Errorf("failed to initialize config -> %w", err)
	}

	if err = logger.Init(conf.API.Environment); err != nil {
		return fmt.Errorf("failed to initialize logger -> %w", err)
	}

	dbURL := os.Getenv("DATABASE_URL")
	var postgresDB *gorm.DB
	if dbURL != "" {
		postgresDB, err = db.OpenPostgresWithURL(dbURL)
	} else {
		postgresDB, err = db.OpenPostgres(conf.Postgres)
	}
	if err != nil {
		return fmt.Errorf("failed to initialize database -> %w", err)
	}

	cacheStore := initCache(conf.Redis)

	images, err := local.NewStore(conf.Images.Path)
	if err != nil {
		return fmt.Errorf("failed to initialize image store -> %w", err)
	}

	s := api.NewServer(conf, postgresDB, cacheStore, images)

	addr := ":" + s.Config.API.Port
	zap.L().Info(fmt.Sprintf("starting server at %v", addr))
	if err = s.Router.Run(addr); err != nil {
		return fmt.Errorf("failed to start the server -> %w", err)
	}

	return nil
}

// initCache connects to Redis when an address is configured and falls back
// to a no-op store otherwise. A reachable Redis is not required to boot.
func initCache(conf *config.RedisConfig) cache.Store {
	if conf == nil || conf.Addr == "" {
		zap.L().Info("redis not configured, caching disabled")

		return cache.Noop{}
	}

	redisStore := cache.NewRedisStore(conf.Addr, conf.Password, conf.DB)

	ctx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
	defer cancel()

	if err := redisStore.Ping(ctx); err != nil {
		zap.L().Warn("redis unreachable, caching disabled", zap.Error(err))

		return cache.Noop{}
	}

	return redisStore
}
