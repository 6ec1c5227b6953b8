package config

import (
	"fmt"
	"time"

	"github.com/caarlos0/env/v11"
)

// Config holds all application settings, populated from environment
// variables. Load .env beforehand (see cmd/server) if one is used.
type Config struct {
	ServerPort  string        `env:"SERVER_PORT" envDefault:"5001"`
	Development bool          `env:"DEV_MODE" envDefault:"false"`

	// JWTSecret signs access tokens. Registration works without it, but
	// login cannot issue tokens, so treat it as mandatory at startup.
	JWTSecret string        `env:"ACCESS_TOKEN_SECRET,required"`
	TokenTTL  time.Duration `env:"TOKEN_TTL" envDefault:"10m"`

	DB DBConfig `envPrefix:"DB_"`
}

// DBConfig holds database connection parameters.
type DBConfig struct {
	Host     string `env:"HOST,required"`
	Port     string `env:"PORT" envDefault:"5432"`
	User     string `env:"USER,required"`
	Password string `env:"PASSWORD"`
	Name     string `env:"NAME,required"`
}

// DSN renders the pgx connection string.
func (c DBConfig) DSN() string {
	return fmt.Sprintf("host=%s port=%s user=%s password=%s dbname=%s sslmode=disable",
		c.Host, c.Port, c.User, c.Password, c.Name)
}

// Load parses the configuration from environment variables. A missing
// required value (signing secret, database settings) is a configuration
// error and should be fatal at process start.
func Load() (*Config, error) {
	cfg := &Config{}
	if err := env.Parse(cfg); err != nil {
		return nil, fmt.Errorf("failed to parse environment config: %w", err)
	}
	return cfg, nil
}
