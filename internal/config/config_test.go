package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.toml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

func TestLoad_DefaultsAndOverrides(t *testing.T) {
	path := writeConfig(t, `
[server]
http_port = 9090

[database]
host = "db"
dbname = "slots"

[field_service]
workday_start = "11:00"
default_limit = 20
`)

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, 9090, cfg.Server.HTTPPort)
	assert.Equal(t, "db", cfg.Database.Host)
	assert.Equal(t, 5432, cfg.Database.Port)
	assert.Equal(t, "11:00", cfg.FieldService.WorkdayStart)
	assert.Equal(t, "20:00", cfg.FieldService.WorkdayEnd)
	assert.Equal(t, 20, cfg.FieldService.DefaultLimit)
	assert.Equal(t, "Dziś", cfg.FieldService.LabelToday)
	assert.Equal(t, 30, cfg.Slots.DefaultTimeGap)
	assert.Equal(t, 1, cfg.Slots.CloseGuardMinutes)
}

func TestLoad_EnvOverrides(t *testing.T) {
	t.Setenv("DB_HOST", "postgres.internal")
	t.Setenv("DB_PASSWORD", "s3cret")
	t.Setenv("REDIS_ADDR", "redis:6379")
	t.Setenv("CRM_URL", "http://crm:8080")
	t.Setenv("LOG_LEVEL", "debug")

	cfg, err := Load(writeConfig(t, `[database]
host = "ignored"
`))
	require.NoError(t, err)

	assert.Equal(t, "postgres.internal", cfg.Database.Host)
	assert.Equal(t, "s3cret", cfg.Database.Password)
	assert.Equal(t, "redis:6379", cfg.Redis.Addr)
	assert.Equal(t, "http://crm:8080", cfg.CRM.URL)
	assert.Equal(t, "debug", cfg.Logs.Level)
	assert.Contains(t, cfg.Database.DSN(), "host=postgres.internal")
}

func TestLoad_Errors(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "missing.toml"))
	assert.Error(t, err)

	_, err = Load(writeConfig(t, `[server`))
	assert.Error(t, err)

	t.Setenv("DB_PORT", "five")
	_, err = Load(writeConfig(t, ``))
	assert.ErrorIs(t, err, ErrInvalidConfig)
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(c *Config)
	}{
		{name: "bad port", mutate: func(c *Config) { c.Server.HTTPPort = 0 }},
		{name: "zero gap", mutate: func(c *Config) { c.Slots.DefaultTimeGap = 0 }},
		{name: "negative guard", mutate: func(c *Config) { c.Slots.CloseGuardMinutes = -1 }},
		{name: "bad workday start", mutate: func(c *Config) { c.FieldService.WorkdayStart = "noon" }},
		{name: "inverted workday", mutate: func(c *Config) { c.FieldService.WorkdayStart = "21:00" }},
		{name: "zero step", mutate: func(c *Config) { c.FieldService.SlotStepMinutes = 0 }},
		{name: "limit too large", mutate: func(c *Config) { c.FieldService.DefaultLimit = 1000 }},
		{name: "rate limit without rps", mutate: func(c *Config) { c.RateLimit.RPS = 0 }},
	}

	require.NoError(t, Default().Validate())

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := Default()
			tt.mutate(cfg)
			assert.ErrorIs(t, cfg.Validate(), ErrInvalidConfig)
		})
	}
}
