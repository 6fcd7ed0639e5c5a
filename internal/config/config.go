// Package config содержит логику чтения конфигурации сервиса инвойсов.
package config

import (
	"flag"
	"fmt"

	"github.com/caarlos0/env/v11"
)

// Config содержит параметры конфигурации сервиса инвойсов.
type Config struct {
	RunAddress  string `env:"RUN_ADDRESS"`
	DatabaseURI string `env:"DATABASE_URI"`
	APIBaseURL  string `env:"API_BASE_URL"`
}

// Parse считывает конфигурацию из флагов командной строки и переменных окружения.
// Значения из окружения имеют приоритет над флагами.
func Parse() (*Config, error) {
	cfg := &Config{}

	if err := env.Parse(cfg); err != nil {
		return nil, fmt.Errorf("parse env: %w", err)
	}

	envRunAddress := cfg.RunAddress
	envDatabaseURI := cfg.DatabaseURI
	envAPIBaseURL := cfg.APIBaseURL

	flag.StringVar(&cfg.RunAddress, "a", "localhost:8080", "address and port for HTTP server")
	flag.StringVar(&cfg.DatabaseURI, "d", "", "database URI")
	flag.StringVar(&cfg.APIBaseURL, "b", "http://localhost:8080", "invoice API base URL")

	flag.Parse()

	if envRunAddress != "" {
		cfg.RunAddress = envRunAddress
	}
	if envDatabaseURI != "" {
		cfg.DatabaseURI = envDatabaseURI
	}
	if envAPIBaseURL != "" {
		cfg.APIBaseURL = envAPIBaseURL
	}

	if cfg.RunAddress == "" {
		cfg.RunAddress = "localhost:8080"
	}

	return cfg, nil
}
