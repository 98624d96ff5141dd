package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/formdrop/backend/internal/config"
	"github.com/formdrop/backend/internal/handler"
	"github.com/formdrop/backend/internal/logging"
	"github.com/formdrop/backend/internal/notify"
	"github.com/formdrop/backend/internal/repository"
	"github.com/formdrop/backend/internal/service"
	"github.com/joho/godotenv"
	"log/slog"
)

func main() {
	_ = godotenv.Load()
	logging.Setup()

	cfg, err := config.Load()
	if err != nil {
		logging.Fatal("invalid configuration", "error", err)
	}

	pool, err := repository.NewPool(context.Background(), cfg.DatabaseURL)
	if err != nil {
		logging.Fatal("failed to connect to database", "error", err)
	}
	defer pool.Close()

	submissionRepo := repository.NewPgSubmissionRepository(pool)
	settingsRepo := repository.NewPgSettingsRepository(pool)

	sessions := service.NewSessionStore()
	creds := service.NewCredentialService(settingsRepo, cfg.AdminPanelPassword)
	gate := service.NewAuthService(sessions, creds, cfg.AdminAPIKey)
	submissions := service.NewSubmissionService(submissionRepo)
	notifier := notify.NewNotifier(cfg)

	server := &http.Server{
		Addr:         fmt.Sprintf(":%d", cfg.Port),
		Handler:      handler.NewRouter(cfg, gate, submissions, notifier),
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 10 * time.Second,
	}

	go func() {
		slog.Info("server listening", "addr", server.Addr)
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logging.Fatal("server error", "error", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := server.Shutdown(ctx); err != nil {
		slog.Error("shutdown error", "error", err)
	}
}
