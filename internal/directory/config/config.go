package config

import (
	"errors"
	"time"

	"github.com/caarlos0/env/v6"
)

// Config holds all configuration for the directory service.
type Config struct {
	// MongoURI is the connection string for the document store. It has no
	// default: the process must not start serving without it.
	MongoURI     string        `env:"MONGODB_URI"`
	DatabaseName string        `env:"MONGODB_DATABASE" envDefault:"restaurant_directory"`
	ConnectWait  time.Duration `env:"MONGODB_CONNECT_TIMEOUT" envDefault:"30s"`

	ServerHost string `env:"SERVER_HOST" envDefault:"localhost"`
	ServerPort string `env:"SERVER_PORT" envDefault:"8000"`

	LogLevel  string `env:"LOG_LEVEL" envDefault:"info"`
	LogFormat string `env:"LOG_FORMAT" envDefault:"text"`
}

// Load reads configuration from environment variables and validates it.
func Load() (*Config, error) {
	cfg := &Config{}
	if err := env.Parse(cfg); err != nil {
		return nil, errors.New("failed to load configuration from environment: " + err.Error())
	}
	if cfg.MongoURI == "" {
		return nil, errors.New("MONGODB_URI environment variable is not set")
	}
	return cfg, nil
}

// Addr returns the host:port pair the HTTP server listens on.
func (c *Config) Addr() string {
	return c.ServerHost + ":" + c.ServerPort
}
