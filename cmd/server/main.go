package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/rs/zerolog"

	"github.com/fitengage/gym-manager/internal/api"
	"github.com/fitengage/gym-manager/internal/core/service"
	"github.com/fitengage/gym-manager/internal/infrastructure/config"
	"github.com/fitengage/gym-manager/internal/infrastructure/db/gormstore"
	"github.com/fitengage/gym-manager/internal/infrastructure/db/redis"
	infrahttp "github.com/fitengage/gym-manager/internal/infrastructure/http"
	"github.com/fitengage/gym-manager/internal/infrastructure/http/handlers"
	"github.com/fitengage/gym-manager/pkg/logger"
)

const shutdownTimeout = 10 * time.Second

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	cfg, err := config.Load(ctx)
	if err != nil {
		log := logger.Init(logger.Options{Pretty: true})
		log.Fatal().Err(err).Msg("invalid configuration")
	}

	log := logger.Init(logger.Options{Level: cfg.LogLevel, Pretty: !cfg.IsProduction()})

	if err := run(ctx, cfg, log); err != nil {
		log.Fatal().Err(err).Msg("server stopped with error")
	}
}

func run(ctx context.Context, cfg *config.Config, log zerolog.Logger) error {
	store, err := gormstore.Connect(ctx, gormstore.Config{
		Driver:   cfg.DB.Driver,
		DSN:      cfg.DB.URL,
		LogLevel: cfg.DB.LogLevel,
	}, logger.Component("store"))
	if err != nil {
		return err
	}
	defer func() {
		if err := store.Close(); err != nil {
			log.Warn().Err(err).Msg("failed to close store")
		}
	}()

	types := gormstore.NewMembershipTypeRepository(store)
	seed, err := gormstore.LoadSeed(cfg.DB.SeedFile)
	if err != nil {
		return err
	}
	if err := gormstore.SeedMembershipTypes(ctx, types, seed, logger.Component("store")); err != nil {
		return err
	}

	deps := map[string]handlers.Pinger{"database": store}
	authOpts := service.AuthOptions{
		BcryptCost: cfg.Auth.BcryptCost,
		SessionTTL: cfg.Auth.SessionTTL,
	}

	rc := redis.Config{Addr: cfg.Redis.Addr, Password: cfg.Redis.Password, DB: cfg.Redis.DB}
	if rc.Enabled() {
		client, err := redis.Connect(ctx, rc)
		if err != nil {
			return err
		}
		defer client.Close()

		cache := redis.NewSessionCache(client, cfg.Redis.SessionTTL)
		authOpts.Cache = cache
		deps["redis"] = cache
		log.Info().Str("addr", rc.Addr).Msg("session cache enabled")
	}

	users := gormstore.NewUserRepository(store)
	sessions := gormstore.NewSessionRepository(store)
	members := gormstore.NewMemberRepository(store)
	payments := gormstore.NewPaymentRepository(store)

	e := api.NewRouter(api.Services{
		Auth:       service.NewAuthService(users, sessions, authOpts, logger.Component("auth")),
		Membership: service.NewMembershipService(members, types, store, logger.Component("members")),
		Payments:   service.NewPaymentService(payments, members, store, logger.Component("payments")),
		Dashboard:  service.NewDashboardService(members, types, payments, logger.Component("dashboard")),
	}, api.Options{
		DesktopMode: cfg.DesktopMode,
		LoginRate:   cfg.Auth.LoginRate,
		LoginBurst:  cfg.Auth.LoginBurst,
	}, logger.Component("http"))
	infrahttp.RegisterOps(e, deps)

	errCh := make(chan error, 1)
	go func() {
		log.Info().Str("addr", cfg.Addr()).Bool("desktop_mode", cfg.DesktopMode).Msg("server listening")
		if err := e.Start(cfg.Addr()); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
	}

	log.Info().Msg("shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	return e.Shutdown(shutdownCtx)
}
