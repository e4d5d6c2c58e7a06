package config

import (
	"fmt"
	"time"

	"github.com/caarlos0/env/v6"
	"github.com/go-playground/validator/v10"
	"github.com/joho/godotenv"
)

type Config struct {
	Server       ServerConfig
	Model        ModelConfig
	ModelService ModelServiceConfig
	Log          LogConfig
}

type ServerConfig struct {
	Port string `env:"SERVER_PORT" envDefault:"8050" validate:"required,numeric"`
}

type ModelConfig struct {
	Path string `env:"MODEL_PATH" envDefault:"model/car_price_model.json" validate:"required"`
}

// ModelServiceConfig points at a remote inference service. It is used instead
// of the model file when Host is set.
type ModelServiceConfig struct {
	Host    string        `env:"MODEL_SERVICE_HOST"`
	Port    string        `env:"MODEL_SERVICE_PORT" envDefault:"8000" validate:"required_with=Host,omitempty,numeric"`
	Path    string        `env:"MODEL_SERVICE_PATH" envDefault:"/api/predict" validate:"required_with=Host,omitempty,startswith=/"`
	Timeout time.Duration `env:"MODEL_SERVICE_TIMEOUT" envDefault:"5s" validate:"gt=0"`
}

func (c ModelServiceConfig) Enabled() bool {
	return c.Host != ""
}

type LogConfig struct {
	Level         string `env:"LOG_LEVEL" envDefault:"info" validate:"oneof=debug info warn error"`
	File          string `env:"LOG_FILE"`
	FileMaxSizeMB int    `env:"LOG_FILE_MAX_SIZE_MB" envDefault:"50" validate:"gt=0"`
}

func ReadConfig() (*Config, error) {
	_ = godotenv.Load()

	config := &Config{}
	if err := env.Parse(config); err != nil {
		return nil, fmt.Errorf("parse .env file: %w", err)
	}

	if err := validator.New().Struct(config); err != nil {
		return nil, fmt.Errorf("validate config: %w", err)
	}

	return config, nil
}
