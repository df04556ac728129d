// Package main is the entry point for the Simorgh site API server.
package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"simorgh/internal/config"
	appctx "simorgh/internal/core/context"
	"simorgh/internal/domain/holding"
	v1 "simorgh/internal/infrastructure/http/v1"
	"simorgh/internal/infrastructure/storage"
	"simorgh/pkg/logger"
)

func main() {
	cfg, err := config.Load(".env", ".env.local")
	if err != nil {
		fmt.Printf("failed to load configuration: %v\n", err)
		os.Exit(1)
	}

	log, err := logger.New(logger.Config{
		Level:       cfg.App.LogLevel,
		Development: !cfg.IsProduction(),
	})
	if err != nil {
		fmt.Printf("failed to initialize logger: %v\n", err)
		os.Exit(1)
	}

	ctx := logger.WithLogger(appctx.WithTrace(context.Background(), appctx.NewTraceContext()), log)
	log.Infow("starting simorgh server", "env", cfg.App.Env, "storage", cfg.Storage.Driver)

	// --- Storage ---
	backend, err := storage.Open(ctx, cfg.Storage, log)
	if err != nil {
		log.Fatalw("failed to open storage", "error", err)
	}
	defer backend.Close()

	// --- Document store ---
	store := holding.NewStore(backend.Storage, log)

	// --- Auth ---
	authService, err := newAuthService(cfg.Admin)
	if err != nil {
		log.Fatalw("failed to configure admin credentials", "error", err)
	}

	// --- Router ---
	router := v1.NewRouter(v1.RouterConfig{
		Store:         store,
		AuthService:   authService,
		Logger:        log,
		StorageDriver: backend.Driver,
		StaticDir:     cfg.App.StaticDir,
		MaxBodyBytes:  cfg.App.MaxBodyBytes,
		Release:       cfg.IsProduction(),
	})

	// --- HTTP Server ---
	server := &http.Server{
		Addr:         ":" + cfg.App.Port,
		Handler:      wrapHandler(router, cfg.CORS),
		ReadTimeout:  cfg.App.ReadTimeout,
		WriteTimeout: cfg.App.WriteTimeout,
		IdleTimeout:  60 * time.Second,
	}

	// The server answers 503 on data routes until the document is loaded.
	go func() {
		source := store.Load(ctx)
		log.Infow("document ready", "source", source)
	}()

	go func() {
		log.Infow("server starting", "port", cfg.App.Port)
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatalw("server failed", "error", err)
		}
	}()

	// --- Graceful shutdown ---
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info("shutting down server...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.App.ShutdownTimeout)
	defer cancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		log.Errorw("server forced to shutdown", "error", err)
	}

	log.Info("server stopped")
}
