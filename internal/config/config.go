package config

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v2"
)

const (
	DriverPostgres = "postgres"
	DriverSQLite   = "sqlite"
)

type Config struct {
	HTTPAddr string `yaml:"HTTP_ADDR"`
	DBDriver string `yaml:"DB_DRIVER"`
	DBDSN    string `yaml:"DB_DSN"`
	LogLevel string `yaml:"LOG_LEVEL"`
}

// Load reads configuration with the precedence: defaults < config.yaml < env.
// A .env file, when present, is folded into the environment first.
func Load() (*Config, error) {
	_ = godotenv.Load()

	cfg := &Config{
		HTTPAddr: ":8080",
		DBDriver: DriverPostgres,
		LogLevel: "info",
	}

	if file, err := os.ReadFile("config.yaml"); err == nil {
		if err := yaml.Unmarshal(file, cfg); err != nil {
			return nil, fmt.Errorf("parsing config.yaml: %w", err)
		}
	}

	cfg.HTTPAddr = getEnv("HTTP_ADDR", cfg.HTTPAddr)
	cfg.DBDriver = getEnv("DB_DRIVER", cfg.DBDriver)
	cfg.DBDSN = getEnv("DB_DSN", cfg.DBDSN)
	cfg.LogLevel = getEnv("LOG_LEVEL", cfg.LogLevel)

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func (c *Config) Validate() error {
	if c.DBDriver != DriverPostgres && c.DBDriver != DriverSQLite {
		return fmt.Errorf("unsupported DB_DRIVER %q", c.DBDriver)
	}
	if c.DBDSN == "" {
		return fmt.Errorf("DB_DSN is required")
	}
	return nil
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}
