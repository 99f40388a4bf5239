package config

import (
	"fmt"

	"github.com/caarlos0/env/v11"
)

// Config holds process configuration, loaded from the environment once at
// startup.
type Config struct {
	Port             string   `env:"PORT" envDefault:"8080"`
	AWSRegion        string   `env:"AWS_REGION" envDefault:"us-east-1"`
	PlayerHuntsTable string   `env:"PLAYER_HUNTS_TABLE" envDefault:"PlayerHunts"`
	StorageBackend   string   `env:"STORAGE_BACKEND" envDefault:"dynamodb"`
	AllowedOrigins   []string `env:"CORS_ORIGINS" envSeparator:"," envDefault:"*"`
}

// Load parses configuration from the environment
func Load() (Config, error) {
	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return Config{}, fmt.Errorf("failed to parse environment: %w", err)
	}
	return cfg, nil
}
