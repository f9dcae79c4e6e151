// Package config loads process configuration from the environment. The
// resulting struct is constructed once in main and passed down explicitly;
// nothing else in the application reads environment variables.
package config

import (
	"github.com/caarlos0/env/v11"
)

type Config struct {
	DatabaseURL    string   `env:"DATABASE_URL,required,notEmpty"`
	Port           string   `env:"PORT" envDefault:"3000"`
	AllowedOrigins []string `env:"ALLOWED_ORIGINS" envSeparator:"," envDefault:"http://localhost:3000,http://localhost:5173"`
}

func Load() (*Config, error) {
	var cfg Config

	if err := env.Parse(&cfg); err != nil {
		return nil, err
	}

	return &cfg, nil
}
