package config_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/healthtrackapp/healthtrack/internal/config"
)

func TestLoadDefaultsAndEnv(t *testing.T) {
	t.Setenv("DB_DRIVER", "sqlite")
	t.Setenv("DB_DSN", "test.db")
	t.Setenv("HTTP_ADDR", "")
	t.Setenv("LOG_LEVEL", "")

	cfg, err := config.Load()
	require.NoError(t, err)
	assert.Equal(t, ":8080", cfg.HTTPAddr)
	assert.Equal(t, config.DriverSQLite, cfg.DBDriver)
	assert.Equal(t, "test.db", cfg.DBDSN)
	assert.Equal(t, "info", cfg.LogLevel)
}

func TestLoadEnvOverrides(t *testing.T) {
	t.Setenv("DB_DRIVER", "postgres")
	t.Setenv("DB_DSN", "host=localhost user=app dbname=app")
	t.Setenv("HTTP_ADDR", ":9090")
	t.Setenv("LOG_LEVEL", "debug")

	cfg, err := config.Load()
	require.NoError(t, err)
	assert.Equal(t, ":9090", cfg.HTTPAddr)
	assert.Equal(t, "debug", cfg.LogLevel)
}

func TestValidate(t *testing.T) {
	err := (&config.Config{DBDriver: "mysql", DBDSN: "x"}).Validate()
	assert.ErrorContains(t, err, "unsupported DB_DRIVER")

	err = (&config.Config{DBDriver: config.DriverSQLite}).Validate()
	assert.ErrorContains(t, err, "DB_DSN is required")

	assert.NoError(t, (&config.Config{DBDriver: config.DriverSQLite, DBDSN: "app.db"}).Validate())
}
