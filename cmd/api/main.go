package main

import (
	"context"
	"database/sql"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"ask-astro/internal/adapters/auth/jwtauth"
	"ask-astro/internal/adapters/chat/canned"
	"ask-astro/internal/adapters/chat/remote"
	"ask-astro/internal/adapters/quota"
	pg "ask-astro/internal/adapters/storage/postgres"
	"ask-astro/internal/config"
	"ask-astro/internal/domain/chat"
	"ask-astro/internal/platform/logger"
	"ask-astro/internal/router"

	"github.com/redis/go-redis/v9"
)

// @title AskAstro API
// @version 1.0
// @description Perfil de nacimiento, signo, life path, dashboard y chat con el astrólogo.
// @BasePath /
func main() {
	cfg, err := config.Load()
	if err != nil {
		logger.NewFromEnv().Error("invalid config", map[string]any{"err": err})
		os.Exit(1)
	}

	log := logger.New(logger.Options{
		Level:  logger.ParseLevel(cfg.LogLevel),
		Format: logger.ParseFormat(cfg.LogFormat),
		App:    cfg.AppName,
	})
	defer func() { _ = log.Sync() }()

	if err := run(cfg, log); err != nil {
		log.Error("server stopped with error", map[string]any{"err": err})
		os.Exit(1)
	}
}

func run(cfg config.Config, log logger.Logger) error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	opts := router.Options{
		Logger:               log,
		AllowedOrigins:       cfg.AllowedOrigins(),
		SignupPromptAfter:    cfg.SignupPromptAfter,
		RateLimitRPS:         cfg.RateLimitRPS,
		RateLimitBurst:       cfg.RateLimitBurst,
		AllowAllCapabilities: cfg.AllowAllCapabilities,
	}

	if cfg.JWTSecret != "" {
		m := jwtauth.NewManager(cfg.JWTSecret, cfg.AuthTokenDuration)
		opts.AuthVerifier = m
		opts.TokenIssuer = m
	} else {
		log.Warn("JWT_SECRET not set, running in dev mode (X-Debug-User-ID)", nil)
	}

	if cfg.DBDSN != "" {
		db, err := openDB(ctx, cfg.DBDSN)
		if err != nil {
			return err
		}
		defer db.Close()
		opts.DB = db
		log.Info("using postgres storage", nil)
	}

	if cfg.RedisURL != "" {
		rdb, err := quota.OpenRedis(ctx, cfg.RedisURL)
		if err != nil {
			return err
		}
		defer func(c *redis.Client) { _ = c.Close() }(rdb)
		opts.Redis = rdb
		log.Info("using redis question counter", nil)
	}

	provider, err := newProvider(cfg)
	if err != nil {
		return err
	}
	opts.Provider = provider

	srv := &http.Server{
		Addr:         cfg.Addr(),
		Handler:      router.NewRouter(opts),
		ReadTimeout:  5 * time.Second,
		WriteTimeout: 30 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		log.Info("starting server", map[string]any{"addr": cfg.Addr()})
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

	log.Info("shutting down", nil)
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	return srv.Shutdown(shutdownCtx)
}

func openDB(ctx context.Context, dsn string) (*sql.DB, error) {
	db, err := pg.Open(dsn)
	if err != nil {
		return nil, err
	}
	if err := pg.Migrate(ctx, db); err != nil {
		_ = db.Close()
		return nil, err
	}
	return db, nil
}

func newProvider(cfg config.Config) (chat.ResponseProvider, error) {
	if cfg.ChatProviderURL != "" {
		return remote.NewProvider(remote.Options{
			BaseURL: cfg.ChatProviderURL,
			APIKey:  cfg.ChatProviderAPIKey,
		})
	}
	return canned.NewProvider(canned.DefaultPool(), canned.WithDelay(cfg.ChatReplyDelay)), nil
}
