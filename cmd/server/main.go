package main

import (
	"context"
	"errors"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"golang.org/x/crypto/bcrypt"

	"github.com/pharmatrack/inventory-system/internal/api"
	"github.com/pharmatrack/inventory-system/internal/core/domain"
	"github.com/pharmatrack/inventory-system/internal/infrastructure/config"
	"github.com/pharmatrack/inventory-system/internal/infrastructure/db/postgres"
	redisdb "github.com/pharmatrack/inventory-system/internal/infrastructure/db/redis"
	"github.com/pharmatrack/inventory-system/pkg/logger"
)

func main() {
	_ = godotenv.Load()

	cfg := config.Load()
	log := logger.Init(logger.Options{
		Level:  cfg.LogLevel,
		Pretty: cfg.Env == "development",
	})

	if cfg.JWTSecret == "" {
		log.Fatal().Msg("JWT_SECRET must be set")
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	pool, err := postgres.Connect(ctx, postgres.Config{DSN: cfg.Postgres.DSN})
	if err != nil {
		log.Fatal().Err(err).Msg("failed to connect to postgres")
	}
	defer pool.Close()

	if err := postgres.Bootstrap(ctx, pool); err != nil {
		log.Fatal().Err(err).Msg("failed to bootstrap schema")
	}

	if err := seedAdmin(ctx, pool, cfg); err != nil {
		log.Fatal().Err(err).Msg("failed to seed admin account")
	}

	// Redis backs sale idempotency only; the service degrades to
	// unprotected sales when it is unreachable.
	rdb, err := redisdb.Connect(ctx, redisdb.Config{Addr: cfg.Redis.Addr, DB: cfg.Redis.DB})
	if err != nil {
		log.Warn().Err(err).Msg("redis unavailable, sale idempotency disabled")
		rdb = nil
	} else {
		defer rdb.Close()
	}

	e := api.NewRouter(pool, rdb, cfg, log)

	go func() {
		log.Info().Str("port", cfg.Port).Str("env", cfg.Env).Msg("starting server")
		if err := e.Start(":" + cfg.Port); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatal().Err(err).Msg("server error")
		}
	}()

	<-ctx.Done()

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := e.Shutdown(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("graceful shutdown failed")
	}
	log.Info().Msg("server stopped")
}

// seedAdmin creates the initial admin account when one does not exist.
// Registration is admin-gated, so a fresh database would otherwise be
// unusable. Skipped when no seed password is configured.
func seedAdmin(ctx context.Context, db postgres.DB, cfg *config.Config) error {
	if cfg.Admin.Password == "" {
		return nil
	}

	repo := postgres.NewAccountRepository(db)
	if _, err := repo.FindByUsername(ctx, cfg.Admin.Username); err == nil {
		return nil
	} else if !errors.Is(err, domain.ErrAccountNotFound) {
		return err
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(cfg.Admin.Password), cfg.BcryptCost)
	if err != nil {
		return err
	}

	_, err = repo.Create(ctx, &domain.Account{
		Username:     cfg.Admin.Username,
		PasswordHash: string(hash),
		Role:         domain.RoleAdmin,
		CreatedAt:    time.Now().UTC(),
	})
	if errors.Is(err, domain.ErrAccountExists) {
		// Another instance won the race; the admin exists either way.
		return nil
	}
	return err
}
