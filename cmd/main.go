package main

import (
	"context"
	"log"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/pairpad/collab-service/internal/config"
	"github.com/pairpad/collab-service/internal/logger"
	"github.com/pairpad/collab-service/internal/pg"
	"github.com/pairpad/collab-service/internal/repository/postgres"
	"github.com/pairpad/collab-service/internal/security"
	"github.com/pairpad/collab-service/internal/service"
	httpx "github.com/pairpad/collab-service/internal/transport/http"
	"github.com/pairpad/collab-service/internal/transport/ws"
)

func main() {
	// --- config ---
	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("load config: %v", err)
	}

	logger.Init(logger.Config{
		Env:       logger.Env(cfg.Logging.Env),
		Service:   cfg.Logging.Service,
		Version:   cfg.Logging.Version,
		Backend:   logger.Backend(cfg.Logging.Backend),
		AddSource: cfg.Logging.AddSource,
		Debug:     cfg.Logging.Debug,
	})
	slog.Info("starting collab-service",
		"env", cfg.Logging.Env, "version", cfg.Logging.Version)

	// --- postgres ---
	ctx := context.Background()
	if err := pg.RunMigrations(ctx, cfg.Postgres.DSN); err != nil {
		log.Fatalf("migrations: %v", err)
	}
	pool, err := pg.NewPool(ctx, cfg.Postgres.ToPGConfig())
	if err != nil {
		log.Fatalf("postgres: %v", err)
	}
	defer pool.Close()

	// --- repos ---
	userRepo := postgres.NewUserRepo(pool)
	sessionRepo := postgres.NewSessionRepo(pool)
	recordingRepo := postgres.NewRecordingRepo(pool)
	workflowRepo := postgres.NewWorkflowRepo(pool)

	// --- services ---
	signer, err := security.NewTokenSigner(
		[]byte(cfg.Security.JWT.Secret),
		cfg.Security.JWT.Issuer,
		cfg.Security.JWT.AccessTTL,
		cfg.Security.JWT.ClockSkew,
		nil,
	)
	if err != nil {
		log.Fatalf("token signer: %v", err)
	}

	authSvc := service.NewAuthService(userRepo, signer, security.BcryptConfig{
		Cost:      cfg.Security.Password.BcryptCost,
		MinLength: cfg.Security.Password.MinLength,
	}, nil)
	sessionSvc := service.NewSessionService(sessionRepo, nil)
	recordingSvc := service.NewRecordingService(recordingRepo, nil)
	workflowSvc := service.NewWorkflowService(workflowRepo)

	// --- WS Hub & Server ---
	hub := ws.NewHub()
	wsServer := ws.NewServer(hub, sessionSvc, authSvc)

	// --- HTTP ---
	handler := httpx.NewHandler(authSvc, sessionSvc, recordingSvc, workflowSvc)
	router := httpx.NewRouter(handler, authSvc, wsServer)
	httpSrv := &http.Server{
		Addr:         cfg.Server.Addr,
		Handler:      router,
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	errCh := make(chan error, 1)

	go func() {
		slog.Info("http listen", "addr", cfg.Server.Addr)
		if err := httpSrv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			errCh <- err
		}
	}()

	// --- graceful shutdown ---
	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)

	select {
	case sig := <-sigCh:
		slog.Info("shutdown signal", "sig", sig)
	case err := <-errCh:
		slog.Error("server error", "err", err)
	}

	shutdownTimeout := cfg.Server.ShutdownTimeout
	if shutdownTimeout <= 0 {
		shutdownTimeout = 10 * time.Second
	}
	ctxShutdown, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	_ = httpSrv.Shutdown(ctxShutdown)
	slog.Info("stopped")
}
