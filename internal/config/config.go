package config

import (
	"fmt"
	"os"

	"github.com/go-playground/validator/v10"
	"github.com/joho/godotenv"
	"github.com/rs/zerolog"
	"go.uber.org/fx"
)

const DefaultBaseURL = "https://open.faceit.com/data/v4"

type Config struct {
	FaceitAPIKey  string `validate:"required"`
	FaceitBaseURL string `validate:"required,url"`
	ServerPort    string `validate:"required"`
}

func Load(logger zerolog.Logger) (*Config, error) {
	if err := godotenv.Load(); err != nil {
		logger.Debug().Msg(".env file not found, using environment variables or defaults")
	}

	cfg := &Config{
		FaceitAPIKey:  getEnv("FACEIT_API_KEY", ""),
		FaceitBaseURL: getEnv("FACEIT_BASE_URL", DefaultBaseURL),
		ServerPort:    getEnv("PORT", "3000"),
	}

	if err := validator.New().Struct(cfg); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	logger.Info().
		Str("base_url", cfg.FaceitBaseURL).
		Str("server_port", cfg.ServerPort).
		Msg("configuration loaded")

	return cfg, nil
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

var Module = fx.Provide(Load)
