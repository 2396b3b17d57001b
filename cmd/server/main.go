package main

import (
	"context"
	"flag"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"orderflow/internal/commons"
	"orderflow/internal/config"
	"orderflow/internal/infrastructure/logger"
	"orderflow/internal/order"
	"orderflow/internal/server"

	"go.uber.org/zap"
)

func main() {
	configPath := flag.String("config", "", "path to yaml config file (env vars are used when empty)")
	flag.Parse()

	cfg, err := loadConfig(*configPath)
	if err != nil {
		log.Fatalf("loading config: %v", err)
	}

	zapLogger, err := logger.New(cfg.Log.Level)
	if err != nil {
		log.Fatalf("creating logger: %v", err)
	}
	defer zapLogger.Sync()

	orderCtrl, orderStore := order.NewModule(cfg, zapLogger)

	router := server.NewRouter(orderCtrl, orderStore, zapLogger)

	srv := server.New("order-service", cfg.Server.Port, router, zapLogger)

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	go func() {
		if err := srv.Start(); err != nil {
			zapLogger.Fatal("server error", zap.Error(err))
		}
	}()

	<-quit
	zapLogger.Info("received shutdown signal")

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		zapLogger.Fatal("server shutdown failed", zap.Error(err))
	}

	zapLogger.Info("server stopped gracefully")
}

func loadConfig(path string) (*config.Config, error) {
	if path != "" {
		return commons.LoadConfigFile(path)
	}
	return config.Load()
}
