// Package main initializes and starts the seller portal API server,
// setting up configuration, logging, database connections, repositories,
// services, handlers, and optional TLS.
package main

import (
	"cmp"
	"context"
	"errors"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	nethttp "net/http"

	"github.com/atinyakov/StorePortal/internal/config"
	"github.com/atinyakov/StorePortal/internal/db"
	"github.com/atinyakov/StorePortal/internal/logger"
	"github.com/atinyakov/StorePortal/internal/models"
	"github.com/atinyakov/StorePortal/internal/repository"
	"github.com/atinyakov/StorePortal/internal/server/handler/http"
	"github.com/atinyakov/StorePortal/internal/service"
	"github.com/atinyakov/StorePortal/internal/token"
	"go.uber.org/zap"
)

var (
	// version holds the build version set via ldflags.
	version string
	// buildDate holds the build timestamp set via ldflags.
	buildDate string
)

func main() {
	options, err := config.ParseServer(flag.CommandLine, os.Args[1:])
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(2)
	}

	fmt.Printf("Build version: %s\n", cmp.Or(version, "N/A"))
	fmt.Printf("Build date: %s\n", cmp.Or(buildDate, "N/A"))

	log := logger.New()
	defer func() { _ = log.Log.Sync() }()
	if err := log.Init(options.LogLevel); err != nil {
		log.Log.Fatal("failed to init logger", zap.Error(err))
	}
	zapLogger := log.Log

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	postgresDB, err := db.InitPostgres(options.DatabaseDSN)
	if err != nil {
		zapLogger.Fatal("cannot init database", zap.Error(err))
	}
	defer postgresDB.Close()

	db.StartRefreshTokenCleaner(ctx, postgresDB, options.CleanupInterval, zapLogger)

	tokens, err := token.NewManager(options.JWTSecret, options.AccessTTL)
	if err != nil {
		zapLogger.Fatal("cannot init token manager", zap.Error(err))
	}

	authRepo := repository.NewPostgresAuthRepository(postgresDB)
	storeRepo := repository.NewPostgresStoreRepository(postgresDB)

	authService := service.NewAuthService(authRepo, tokens, options.RefreshTTL)
	storeService := service.NewStoreService(storeRepo)

	if options.Seed {
		if err := seed(ctx, authService, storeService, zapLogger); err != nil {
			zapLogger.Fatal("cannot seed demo data", zap.Error(err))
		}
	}

	authHandler := &http.AuthHandler{AuthService: authService, Log: zapLogger}
	storeHandler := &http.StoreHandler{StoreService: storeService, Log: zapLogger}

	router := http.NewRouter(authHandler, storeHandler, tokens, zapLogger)

	server := &nethttp.Server{
		Addr:              options.Addr,
		Handler:           router,
		ReadHeaderTimeout: 5 * time.Second,
	}

	go func() {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		_ = server.Shutdown(shutdownCtx)
	}()

	zapLogger.Info("starting server", zap.String("addr", options.Addr), zap.Bool("tls", options.TLSCert != ""))
	if options.TLSCert != "" && options.TLSKey != "" {
		err = server.ListenAndServeTLS(options.TLSCert, options.TLSKey)
	} else {
		err = server.ListenAndServe()
	}
	if err != nil && !errors.Is(err, nethttp.ErrServerClosed) {
		zapLogger.Fatal("server failed", zap.Error(err))
	}
	zapLogger.Info("server stopped")
}

// seed creates one active and one pending demo seller.
func seed(ctx context.Context, auth *service.AuthService, stores *service.StoreService, log *zap.Logger) error {
	demo := []struct {
		email, name, store string
		status             models.StoreStatus
	}{
		{"active@example.com", "Active Seller", "Active Shop", models.StoreActive},
		{"pending@example.com", "Pending Seller", "Pending Shop", models.StorePending},
	}
	for _, d := range demo {
		u, err := auth.RegisterSeller(ctx, d.email, d.name, "password123")
		if err != nil {
			return fmt.Errorf("register %s: %w", d.email, err)
		}
		if _, err := stores.OpenStore(ctx, u.ID, d.store, d.status); err != nil {
			return fmt.Errorf("open store for %s: %w", d.email, err)
		}
		log.Info("seeded seller", zap.String("email", d.email), zap.String("status", string(d.status)))
	}
	return nil
}
