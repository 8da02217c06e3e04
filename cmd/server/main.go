package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/gin-gonic/gin"
	redisv9 "github.com/redis/go-redis/v9"

	"shop_backend/internal/app/di"
	"shop_backend/internal/app/router"
	"shop_backend/internal/platform/config"
	"shop_backend/internal/platform/db"
	platformhandler "shop_backend/internal/platform/http/handler"
	jwtmw "shop_backend/internal/platform/jwt"
	infraredis "shop_backend/internal/platform/redis"
)

func main() {
	if err := run(); err != nil {
		slog.Error("server stopped", "error", err)
		os.Exit(1)
	}
}

func run() error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}
	slog.SetDefault(slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: cfg.Server.SlogLevel()})))
	gin.SetMode(gin.ReleaseMode)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	// db
	gdb, err := db.OpenPostgres(cfg.DB)
	if err != nil {
		return err
	}
	sqlDB, err := gdb.DB()
	if err != nil {
		return err
	}
	defer func() {
		if err := sqlDB.Close(); err != nil {
			slog.Error("failed to close database", "error", err)
		}
	}()
	if cfg.DB.RunMigrations {
		if err := db.Migrate(gdb); err != nil {
			return err
		}
		slog.Info("database migrated")
	}

	ready := map[string]platformhandler.Pinger{"database": platformhandler.PingFunc(sqlDB.PingContext)}

	// Redis
	var rdb *redisv9.Client
	if cfg.Redis.Addr == "" {
		slog.Warn("REDIS_ADDR not set; running without login throttling or product cache")
	} else if tmp, err := infraredis.NewRedisClient(ctx, cfg.Redis); err != nil {
		slog.Warn("redis unavailable; running without login throttling or product cache", "error", err)
	} else {
		rdb = tmp
		ready["redis"] = platformhandler.PingFunc(func(ctx context.Context) error { return rdb.Ping(ctx).Err() })
		defer func() {
			if err := rdb.Close(); err != nil {
				slog.Error("failed to close redis client", "error", err)
			}
		}()
	}

	// Kafka
	publisher, closePublisher := di.NewEventPublisher(cfg.Kafka)
	defer func() {
		if err := closePublisher(); err != nil {
			slog.Error("failed to close event publisher", "error", err)
		}
	}()

	tokens := jwtmw.NewGenerator(jwtmw.Options{
		Secret:   cfg.JWT.Secret,
		Issuer:   cfg.JWT.Issuer,
		Audience: cfg.JWT.Audience,
		TTL:      cfg.JWT.AccessTTL,
	})

	handlers := di.NewHandlers(di.Deps{
		DB:              gdb,
		Redis:           rdb,
		Tokens:          tokens,
		Limiter:         di.NewLoginLimiter(rdb, cfg.Redis),
		Publisher:       publisher,
		Gateway:         di.NewPaymentGateway(cfg.Payment),
		RefreshTTL:      cfg.JWT.RefreshTTL,
		CatalogCacheTTL: cfg.Redis.CatalogCacheTTL,
	})
	r := router.NewRouter(handlers, router.Options{
		Verifier:       tokens,
		CORSOrigins:    cfg.Server.CORSOrigins,
		RequestTimeout: cfg.Server.RequestTimeout,
		Ready:          ready,
	})

	srv := &http.Server{
		Addr:         fmt.Sprintf(":%d", cfg.Server.Port),
		Handler:      r,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
	}

	errCh := make(chan error, 1)
	go func() {
		slog.Info("server listening", "addr", srv.Addr)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
	}

	slog.Info("shutting down", "timeout", cfg.Server.ShutdownTimeout)
	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
	defer cancel()
	return srv.Shutdown(shutdownCtx)
}
