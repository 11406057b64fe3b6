package config

import (
	"errors"
	"fmt"
	"io/fs"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
)

// Config holds the server settings read from the environment
type Config struct {
	GRPCAddr          string `env:"GRPC_ADDR" envDefault:":8080"`
	APIToken          string `env:"API_TOKEN" envDefault:"dev-token"`
	ServiceName       string `env:"OTEL_SERVICE_NAME" envDefault:"tokenvest-backend"`
	OTELEndpoint      string `env:"OTEL_ENDPOINT"`
	OTELEnabled       bool   `env:"OTEL_ENABLED" envDefault:"true"`
	DisplayLocale     string `env:"DISPLAY_LOCALE" envDefault:"en-US"`
	RegionCatalogPath string `env:"REGION_CATALOG_PATH"`
	// SeriesSeed makes dashboards reproducible across requests; 0 is unseeded
	SeriesSeed uint64 `env:"SERIES_SEED" envDefault:"0"`
}

// Load reads an optional dotenv file, then the environment.
// Variables already set in the environment win over the file.
func Load(dotenvPath string) (*Config, error) {
	if dotenvPath != "" {
		if err := godotenv.Load(dotenvPath); err != nil && !errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("load %s: %w", dotenvPath, err)
		}
	}

	var cfg Config
	if err := ParseEnv(&cfg); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// ParseEnv loads configuration from environment variables.
func ParseEnv(target any) error {
	if err := env.Parse(target); err != nil {
		return fmt.Errorf("parse env: %w", err)
	}
	return nil
}
