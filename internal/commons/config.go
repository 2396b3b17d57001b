package commons

import (
	"fmt"
	"os"
	"time"

	"go.yaml.in/yaml/v3"

	"orderflow/internal/config"
)

type fileConfig struct {
	Server struct {
		Port int `yaml:"port"`
	} `yaml:"server"`
	Payment struct {
		BaseURL string `yaml:"baseUrl"`
		Timeout string `yaml:"timeout"`
	} `yaml:"payment"`
	Log struct {
		Level string `yaml:"level"`
	} `yaml:"log"`
}

// LoadConfigFile reads configuration from a yaml file. Environment-driven
// configuration via config.Load is the default; a file takes over when a
// path is given on the command line.
func LoadConfigFile(path string) (*config.Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading config file: %w", err)
	}

	var fc fileConfig
	if err := yaml.Unmarshal(data, &fc); err != nil {
		return nil, fmt.Errorf("parsing config file: %w", err)
	}

	timeout := 5 * time.Second
	if fc.Payment.Timeout != "" {
		timeout, err = time.ParseDuration(fc.Payment.Timeout)
		if err != nil {
			return nil, fmt.Errorf("parsing payment timeout: %w", err)
		}
	}

	return &config.Config{
		Server: config.ServerConfig{
			Port: fc.Server.Port,
		},
		Payment: config.PaymentConfig{
			BaseURL: fc.Payment.BaseURL,
			Timeout: timeout,
		},
		Log: config.LogConfig{
			Level: fc.Log.Level,
		},
	}, nil
}
