// @title                       Study API
// @version                     1.0
// @description                 Admin and public endpoints for the study portal.
// @BasePath                    /
// @securityDefinitions.apikey  AdminCookie
// @in                          cookie
// @name                        admin_token
package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	goredis "github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"

	_ "github.com/quantumstudy/study-api/docs"
	"github.com/quantumstudy/study-api/internal/api"
	"github.com/quantumstudy/study-api/internal/api/handler"
	"github.com/quantumstudy/study-api/internal/core/service"
	"github.com/quantumstudy/study-api/internal/infrastructure/db/mongo"
	"github.com/quantumstudy/study-api/internal/infrastructure/db/redis"
	"github.com/quantumstudy/study-api/internal/pkg/config"
	"github.com/quantumstudy/study-api/pkg/logger"
)

const shutdownTimeout = 10 * time.Second

func main() {
	ctx := context.Background()

	cfg, err := config.Load(ctx)
	if err != nil {
		// The logger is not configured yet.
		boot := zerolog.New(os.Stderr).With().Timestamp().Logger()
		boot.Fatal().Err(err).Msg("load config")
	}

	log := logger.Init(logger.Options{
		Level:   cfg.LogLevel,
		Pretty:  !cfg.IsProduction(),
		Service: "study-api",
	})

	mongoClient, db, err := mongo.Connect(ctx, mongo.Config{
		URI:      cfg.Mongo.URI,
		Database: cfg.Mongo.Database,
	})
	if err != nil {
		log.Fatal().Err(err).Msg("connect mongodb")
	}
	defer func() { _ = mongoClient.Disconnect(context.Background()) }()

	rdb, err := redis.Connect(ctx, redis.Config{
		Addr:     cfg.Redis.Addr,
		Password: cfg.Redis.Password,
		DB:       cfg.Redis.DB,
	})
	if err != nil {
		log.Fatal().Err(err).Msg("connect redis")
	}
	defer func() { _ = rdb.Close() }()

	verifier, err := service.NewTokenVerifier(cfg.JWTSecret)
	if err != nil {
		log.Fatal().Err(err).Msg("token verifier")
	}

	// Defaults may have changed since the last run.
	infoCache := redis.NewServerInfoCache(rdb, cfg.ServerInfo.CacheTTL)
	if err := infoCache.Invalidate(ctx); err != nil {
		log.Warn().Err(err).Msg("invalidate server info cache")
	}

	userService := service.NewUserService(mongo.NewUserRepository(db), cfg.TagNormalize, log)
	serverInfoService := service.NewServerInfoService(
		mongo.NewSettingsRepository(db),
		infoCache,
		cfg.ServerInfo.Defaults(),
		cfg.ServerInfo.AppName,
		log,
	)

	reg := prometheus.NewRegistry()
	reg.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)

	e, err := api.NewRouter(api.Deps{
		Users:      userService,
		ServerInfo: serverInfoService,
		Verifier:   verifier,
		Readiness: map[string]handler.DependencyCheck{
			"mongodb": func(ctx context.Context) error { return mongo.Ping(ctx, db) },
			"redis":   func(ctx context.Context) error { return redisPing(ctx, rdb) },
		},
		Registry:        reg,
		Logger:          log,
		AdminCookieName: cfg.AdminCookieName,
		SwaggerEnabled:  cfg.SwaggerEnabled,
	})
	if err != nil {
		log.Fatal().Err(err).Msg("build router")
	}

	server := &http.Server{
		Addr:              ":" + cfg.Port,
		Handler:           e,
		ReadHeaderTimeout: 5 * time.Second,
	}

	go func() {
		log.Info().Str("addr", server.Addr).Str("env", cfg.Env).Msg("http server listening")
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatal().Err(err).Msg("http server")
		}
	}()

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
	sig := <-sigCh
	log.Info().Str("signal", sig.String()).Msg("shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := server.Shutdown(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("shutdown")
	}
}

func redisPing(ctx context.Context, rdb *goredis.Client) error {
	return rdb.Ping(ctx).Err()
}
