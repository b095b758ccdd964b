package config

import (
	"fmt"
	"os"
	"time"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
	"github.com/sirupsen/logrus"
)

type Config struct {
	DatabaseURL string `env:"DATABASE_URL,required"`
	Port        string `env:"PORT" envDefault:"8080"`
	LogLevel    string `env:"LOG_LEVEL" envDefault:"info"`

	LeadTable        string        `env:"LEAD_TABLE" envDefault:"leads"`
	ImportChunkSize  int           `env:"IMPORT_CHUNK_SIZE" envDefault:"40"`
	ImportWorkers    int           `env:"IMPORT_WORKERS" envDefault:"2"`
	RunLeaseDuration time.Duration `env:"IMPORT_RUN_LEASE" envDefault:"60s"`
	RunPollInterval  time.Duration `env:"IMPORT_RUN_POLL_INTERVAL" envDefault:"500ms"`
}

// Load reads .env/.env.local when present, then parses the environment.
func Load() (*Config, error) {
	for _, file := range []string{".env", ".env.local"} {
		if _, err := os.Stat(file); err == nil {
			if err := godotenv.Load(file); err != nil {
				return nil, fmt.Errorf("load %s: %w", file, err)
			}
		}
	}

	cfg := &Config{}
	if err := env.Parse(cfg); err != nil {
		return nil, fmt.Errorf("parse environment: %w", err)
	}
	return cfg, nil
}

// Logger builds the process logger from the configured level.
func (c *Config) Logger() *logrus.Logger {
	log := logrus.New()
	log.SetFormatter(&logrus.JSONFormatter{})

	level, err := logrus.ParseLevel(c.LogLevel)
	if err != nil {
		level = logrus.InfoLevel
	}
	log.SetLevel(level)
	return log
}
