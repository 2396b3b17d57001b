package main

import (
	"context"
	"flag"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"orderflow/internal/infrastructure/logger"
	"orderflow/internal/paymentsim"
	"orderflow/internal/server"

	"github.com/spf13/viper"
	"go.uber.org/zap"
)

func main() {
	slowDelay := flag.Duration("slow-delay", 10*time.Second, "delay applied to the 'slow' payment method")
	flag.Parse()

	viper.AutomaticEnv()
	viper.SetDefault("PAYMENT_SIM_PORT", 8001)
	viper.SetDefault("LOG_LEVEL", "info")

	zapLogger, err := logger.New(viper.GetString("LOG_LEVEL"))
	if err != nil {
		log.Fatalf("creating logger: %v", err)
	}
	defer zapLogger.Sync()

	handler := paymentsim.NewHandler(*slowDelay, zapLogger)

	router := server.NewPaymentRouter(handler.Process, zapLogger)

	srv := server.New("payment-service", viper.GetInt("PAYMENT_SIM_PORT"), router, zapLogger)

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
