package config

import (
	"time"

	"github.com/spf13/viper"
)

type Config struct {
	Server  ServerConfig
	Payment PaymentConfig
	Log     LogConfig
}

type ServerConfig struct {
	Port int
}

type PaymentConfig struct {
	BaseURL string
	Timeout time.Duration
}

type LogConfig struct {
	Level string
}

func Load() (*Config, error) {
	viper.AutomaticEnv()

	viper.SetDefault("SERVER_PORT", 8002)
	viper.SetDefault("PAYMENT_BASE_URL", "http://localhost:8001")
	viper.SetDefault("PAYMENT_TIMEOUT", "5s")
	viper.SetDefault("LOG_LEVEL", "info")

	paymentTimeout, err := time.ParseDuration(viper.GetString("PAYMENT_TIMEOUT"))
	if err != nil {
		return nil, err
	}

	cfg := &Config{
		Server: ServerConfig{
			Port: viper.GetInt("SERVER_PORT"),
		},
		Payment: PaymentConfig{
			BaseURL: viper.GetString("PAYMENT_BASE_URL"),
			Timeout: paymentTimeout,
		},
		Log: LogConfig{
			Level: viper.GetString("LOG_LEVEL"),
		},
	}

	return cfg, nil
}
