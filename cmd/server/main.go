package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/Reaganz-Wat/devops-stage1-deployment/internal/app"
	"github.com/Reaganz-Wat/devops-stage1-deployment/internal/config"
	"github.com/Reaganz-Wat/devops-stage1-deployment/internal/logger"
	"github.com/google/uuid"
	"github.com/joho/godotenv"
	"go.uber.org/zap"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Printf("warning: could not load .env file: %v", err)
	}
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("failed to load config: %v", err)
	}

	zapLogger, err := logger.New(cfg.App.Environment)
	if err != nil {
		log.Fatalf("failed to init logger: %v", err)
	}
	defer zapLogger.Sync() //nolint:errcheck // best effort
	zapLogger = zapLogger.With(
		zap.String("service", cfg.App.ServiceName),
		zap.String("instance", uuid.NewString()),
	)

	application := app.New(cfg, zapLogger)

	go func() {
		if err := application.Run(); err != nil {
			zapLogger.Fatal("server encountered error", logger.ZapError(err))
		}
	}()

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)

	<-sigCh
	zapLogger.Info("shutdown signal received")

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), cfg.HTTP.ShutdownTimeout)
	defer shutdownCancel()

	if err := application.Shutdown(shutdownCtx); err != nil {
		zapLogger.Error("graceful shutdown failed", logger.ZapError(err))
		time.Sleep(2 * time.Second)
	}
}
