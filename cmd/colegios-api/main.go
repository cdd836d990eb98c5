//go:generate swag init --dir ../.. --generalInfo cmd/colegios-api/main.go --output ../../api/swagger --outputTypes go

package main

import (
	"context"
	"fmt"
	"log"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	_ "github.com/noah-isme/colegios-api/api/swagger"
	"github.com/noah-isme/colegios-api/internal/repository"
	"github.com/noah-isme/colegios-api/internal/router"
	"github.com/noah-isme/colegios-api/internal/service"
	"github.com/noah-isme/colegios-api/pkg/cache"
	"github.com/noah-isme/colegios-api/pkg/config"
	"github.com/noah-isme/colegios-api/pkg/database"
	"github.com/noah-isme/colegios-api/pkg/logger"
)

// @title Colegios API
// @version 1.0.0
// @description Administration of departments, municipalities, schools, sites and users
// @BasePath /
// @schemes http

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("failed to load config: %v", err)
	}

	logr, err := logger.New(cfg)
	if err != nil {
		log.Fatalf("failed to init logger: %v", err)
	}
	defer logr.Sync() //nolint:errcheck

	if cfg.Env == config.EnvProduction {
		gin.SetMode(gin.ReleaseMode)
	}

	ctx := context.Background()

	db, err := database.NewPostgres(ctx, cfg.Database)
	if err != nil {
		logr.Fatal("database connection failed", zap.Error(err))
	}
	defer db.Close()

	var metrics *service.MetricsService
	if cfg.Metrics.Enabled {
		metrics = service.NewMetricsService()
	}

	var listCache *service.CacheService
	if cfg.Cache.Enabled {
		client, err := cache.NewRedis(ctx, cfg.Redis)
		if err != nil {
			logr.Warn("list cache disabled: redis unavailable", zap.Error(err))
		} else {
			defer client.Close()
			listCache = service.NewCacheService(repository.NewCacheRepository(client, logr), metrics, cfg.Cache.TTL, logr, true)
		}
	}

	handlers := router.NewHandlers(router.Dependencies{
		DB:      db,
		Cache:   listCache,
		Metrics: metrics,
		Logger:  logr,
	})

	r := router.New(router.Options{
		Env:            cfg.Env,
		AllowedOrigins: cfg.CORS.AllowedOrigins,
		Logger:         logr,
		Metrics:        metrics,
		Handlers:       handlers,
	})

	addr := fmt.Sprintf(":%d", cfg.Port)
	logr.Sugar().Infow("server starting", "addr", addr, "env", cfg.Env, "database", cfg.Database.Name, "list_cache", listCache.Enabled())
	if err := r.Run(addr); err != nil {
		logr.Sugar().Fatalw("server failed", "error", err)
	}
}
