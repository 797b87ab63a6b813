package config

import (
	"errors"
	"fmt"
	"os"
	"time"

	"github.com/ilyakaznacheev/cleanenv"
	"github.com/joho/godotenv"
)

// Config holds every tunable of the application. Values come from
// environment variables with TASKDESK_ prefixes, optionally seeded from
// a .env file in the working directory.
type Config struct {
	DatabasePath    string        `env:"TASKDESK_DB_PATH" env-default:"taskdesk.db"`
	LogLevel        string        `env:"TASKDESK_LOG_LEVEL" env-default:"info"`
	LogPath         string        `env:"TASKDESK_LOG_PATH" env-default:"taskdesk.log"`
	AlertBuffer     int           `env:"TASKDESK_ALERT_BUFFER" env-default:"16"`
	RefreshInterval time.Duration `env:"TASKDESK_REFRESH_INTERVAL" env-default:"60s"`
}

// Load reads the optional .env file and then the environment. A missing
// .env file is not an error.
func Load() (Config, error) {
	if err := godotenv.Load(); err != nil && !errors.Is(err, os.ErrNotExist) {
		return Config{}, fmt.Errorf("load .env: %w", err)
	}

	var cfg Config
	if err := cleanenv.ReadEnv(&cfg); err != nil {
		return Config{}, fmt.Errorf("read environment: %w", err)
	}
	if err := cfg.validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

func (c Config) validate() error {
	if c.DatabasePath == "" {
		return errors.New("config: database path is empty")
	}
	if c.AlertBuffer <= 0 {
		return fmt.Errorf("config: alert buffer must be positive, got %d", c.AlertBuffer)
	}
	if c.RefreshInterval <= 0 {
		return fmt.Errorf("config: refresh interval must be positive, got %s", c.RefreshInterval)
	}
	return nil
}
