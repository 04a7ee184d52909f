// Package main is the entry point for the barstock API server.
package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"barstock/internal/domain/auth"
	v1 "barstock/internal/infrastructure/http/v1"
	"barstock/internal/infrastructure/storage/postgres"
	"barstock/internal/infrastructure/storage/postgres/auth_repo"
	"barstock/pkg/config"
	"barstock/pkg/logger"
	"barstock/pkg/numerator"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Printf("failed to load config: %v\n", err)
		os.Exit(1)
	}

	log, err := logger.New(logger.Config{
		Level:       cfg.Log.Level,
		Development: cfg.App.IsDevelopment(),
	})
	if err != nil {
		fmt.Printf("failed to initialize logger: %v\n", err)
		os.Exit(1)
	}

	ctx := context.Background()
	log.Info("starting barstock server")

	// --- Database ---
	poolCfg := postgres.DefaultPoolConfig(cfg.DB.ConnectionString())
	if cfg.DB.MaxConns > 0 {
		poolCfg.MaxConns = cfg.DB.MaxConns
	}
	pool, err := postgres.NewPool(ctx, poolCfg)
	if err != nil {
		log.Fatalw("failed to connect to database", "error", err)
	}
	defer pool.Close()
	log.Info("database connection established")

	txManager := postgres.NewTxManager(pool)

	// --- JWT Service ---
	jwtService := auth.NewJWTService(auth.JWTConfig{
		Secret:         cfg.JWT.Secret,
		Issuer:         cfg.JWT.Issuer,
		AccessTokenTTL: cfg.JWT.AccessTokenTTL,
	})

	// --- Auth Service ---
	userRepo := auth_repo.NewUserRepo(txManager)
	tokenRepo := auth_repo.NewTokenRepo(txManager)

	authService := auth.NewService(userRepo, tokenRepo, jwtService, auth.ServiceConfig{
		MaxLoginAttempts:   cfg.Auth.MaxLoginAttempts,
		LockDuration:       cfg.Auth.LockDuration,
		PasswordMinLength:  cfg.Auth.PasswordMinLength,
		RefreshTokenExpiry: cfg.Auth.RefreshTokenExpiry,
	})

	// --- Numerator Service ---
	numeratorService := numerator.New(pool.Unwrap())

	// --- Router ---
	router, err := v1.NewRouter(v1.RouterConfig{
		Pool:         pool,
		TxManager:    txManager,
		Logger:       log,
		JWTValidator: jwtService,
		AuthService:  authService,
		Numerator:    numeratorService,
	})
	if err != nil {
		log.Fatalw("failed to build router", "error", err)
	}

	// --- Background jobs ---
	cleanupCtx, stopCleanup := context.WithCancel(ctx)
	defer stopCleanup()
	go runTokenCleanup(cleanupCtx, authService, log)

	// --- HTTP Server ---
	server := &http.Server{
		Addr:         cfg.HTTP.Addr(),
		Handler:      router,
		ReadTimeout:  cfg.HTTP.ReadTimeout,
		WriteTimeout: cfg.HTTP.WriteTimeout,
		IdleTimeout:  60 * time.Second,
	}

	go func() {
		log.Infow("server starting", "addr", cfg.HTTP.Addr())
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalw("server failed", "error", err)
		}
	}()

	// --- Graceful shutdown ---
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info("shutting down server...")
	stopCleanup()

	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.HTTP.ShutdownTimeout)
	defer cancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		log.Fatalw("server forced to shutdown", "error", err)
	}

	log.Info("server stopped")
}

// runTokenCleanup periodically removes expired and long-revoked refresh
// tokens. Runs until ctx is cancelled.
func runTokenCleanup(ctx context.Context, authService *auth.Service, log *logger.Logger) {
	ticker := time.NewTicker(1 * time.Hour)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			removed, err := authService.CleanupExpiredTokens(ctx)
			if err != nil {
				log.Warnw("refresh token cleanup failed", "error", err)
				continue
			}
			if removed > 0 {
				log.Infow("refresh tokens cleaned up", "removed", removed)
			}
		}
	}
}
