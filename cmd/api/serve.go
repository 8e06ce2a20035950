package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/linskybing/property-portal/internal/api/handlers"
	"github.com/linskybing/property-portal/internal/api/routes"
	"github.com/linskybing/property-portal/internal/application"
	"github.com/linskybing/property-portal/internal/config"
	"github.com/linskybing/property-portal/internal/config/db"
	"github.com/linskybing/property-portal/internal/cron"
	"github.com/linskybing/property-portal/internal/repository"
	"github.com/linskybing/property-portal/pkg/auth"
	"github.com/linskybing/property-portal/pkg/logger"
	"github.com/linskybing/property-portal/pkg/objectstore"
	"github.com/linskybing/property-portal/pkg/ratelimit"
	"github.com/redis/go-redis/v9"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

const (
	shutdownTimeout = 10 * time.Second
	cleanupInterval = 24 * time.Hour
)

func serveCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Migrate the database and start the HTTP server",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runServe(cmd.Context())
		},
	}
}

func runServe(parent context.Context) error {
	if parent == nil {
		parent = context.Background()
	}
	ctx, stop := signal.NotifyContext(parent, syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	cfg, err := config.Load(ctx)
	if err != nil {
		return err
	}

	log, err := logger.New(cfg.LogLevel, cfg.AppEnv)
	if err != nil {
		return fmt.Errorf("init logger: %w", err)
	}
	defer func() { _ = log.Sync() }()
	zap.ReplaceGlobals(log)

	gdb, err := db.Open(cfg.DatabaseURL, log)
	if err != nil {
		return err
	}
	if err := db.Migrate(gdb); err != nil {
		return err
	}
	repos := repository.NewRepositories(gdb)

	probes := map[string]handlers.Pinger{"database": handlers.PingFunc(repos.Ping)}

	var (
		limiter ratelimit.Limiter
		revoker auth.Revoker
	)
	rule := ratelimit.Rule{Limit: cfg.RateLimit.Requests, Window: cfg.RateLimit.Window}
	if cfg.RedisEnabled() {
		rdb := redis.NewClient(&redis.Options{
			Addr:     cfg.Redis.Addr,
			Password: cfg.Redis.Password,
			DB:       cfg.Redis.DB,
		})
		defer func() { _ = rdb.Close() }()
		if err := rdb.Ping(ctx).Err(); err != nil {
			log.Warn("redis unreachable at startup, continuing", zap.String("addr", cfg.Redis.Addr), zap.Error(err))
		}
		limiter = ratelimit.NewRedisLimiter(rdb, rule)
		revoker = auth.NewRedisRevoker(rdb)
		probes["redis"] = handlers.PingFunc(func(ctx context.Context) error { return rdb.Ping(ctx).Err() })
	} else {
		log.Info("REDIS_ADDR not set, using in-memory rate limiter and token revocation")
		limiter = ratelimit.NewMemoryLimiter(rule)
		revoker = auth.NewMemoryRevoker()
	}

	var store objectstore.Store
	if cfg.MinioEnabled() {
		ms, err := objectstore.NewMinioStore(ctx, objectstore.Config{
			Endpoint:  cfg.Minio.Endpoint,
			AccessKey: cfg.Minio.AccessKey,
			SecretKey: cfg.Minio.SecretKey,
			Bucket:    cfg.Minio.Bucket,
			UseSSL:    cfg.Minio.UseSSL,
			PublicURL: cfg.Minio.PublicURL,
		})
		if err != nil {
			log.Warn("object store unavailable, uploads disabled", zap.Error(err))
		} else {
			store = ms
			probes["object_store"] = ms
		}
	}

	svc := application.New(repos, application.Deps{
		Tokens:         auth.NewTokenManager(cfg.JWT.Secret, cfg.JWT.Issuer, cfg.JWT.TokenTTL),
		Revoker:        revoker,
		Store:          store,
		UploadMaxBytes: cfg.Upload.MaxBytes,
		Logger:         log,
	})

	cleanupDone := cron.StartCleanupTask(ctx, svc.Audit, cfg.Audit.RetentionDays, cleanupInterval, log)

	if cfg.IsProduction() {
		gin.SetMode(gin.ReleaseMode)
	}
	router := routes.NewRouter(routes.Options{
		Handlers: handlers.New(svc, handlers.Options{
			Logger:     log,
			Production: cfg.IsProduction(),
			Probes:     probes,
		}),
		Verifier:       svc.Auth,
		Limiter:        limiter,
		TrustedProxies: cfg.TrustedProxies,
		Logger:         log,
	})

	srv := &http.Server{
		Addr:              ":" + cfg.ServerPort,
		Handler:           router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		log.Info("starting API server", zap.String("addr", srv.Addr), zap.String("env", cfg.AppEnv))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err := <-errCh:
		if err != nil {
			return fmt.Errorf("listen: %w", err)
		}
	case <-ctx.Done():
		log.Info("shutdown signal received")
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Error("server forced to shutdown", zap.Error(err))
		return err
	}
	stop()
	<-cleanupDone
	log.Info("server exited")
	return nil
}
