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

func TestLoad_Defaults(t *testing.T) {
	t.Setenv("DB_PASSWORD", "")
	path := writeConfig(t, `
[database]
host = "localhost"
port = 5432
user = "smc"
dbname = "reservations"
`)

	cfg, err := Load(path)

	require.NoError(t, err)
	assert.Equal(t, 8080, cfg.Server.HTTPPort)
	assert.Equal(t, StorageDriverPostgres, cfg.Storage.Driver)
	assert.Equal(t, 15, cfg.Slots.DefaultStep)
	assert.Equal(t, "/metrics", cfg.Metrics.Path)
	assert.Equal(t, "info", cfg.Logs.Level)
	assert.Equal(t, "Europe/Warsaw", cfg.Export.Timezone)
	assert.Equal(t, "host=localhost port=5432 user=smc password= dbname=reservations sslmode=disable", cfg.Database.DSN())
}

func TestLoad_EnvOverrides(t *testing.T) {
	t.Setenv("DB_PASSWORD", "secret")
	t.Setenv("SUPABASE_URL", "https://project.supabase.co")
	t.Setenv("SUPABASE_KEY", "service-role")
	t.Setenv("REDIS_PASSWORD", "redis-secret")

	path := writeConfig(t, `
[storage]
driver = "Supabase"

[database]
password = "from-file"

[redis]
enabled = true
addr = "localhost:6379"
ttl = 60
`)

	cfg, err := Load(path)

	require.NoError(t, err)
	assert.Equal(t, StorageDriverSupabase, cfg.Storage.Driver)
	assert.Equal(t, "secret", cfg.Database.Password)
	assert.Equal(t, "https://project.supabase.co", cfg.Supabase.URL)
	assert.Equal(t, "service-role", cfg.Supabase.Key)
	assert.Equal(t, "redis-secret", cfg.Redis.Password)
	assert.Equal(t, int64(60), int64(cfg.Redis.TTLDuration().Seconds()))
}

func TestLoad_MissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "missing.toml"))

	assert.ErrorIs(t, err, ErrReadConfig)
}

func TestConfig_Validate(t *testing.T) {
	valid := func() *Config {
		return &Config{
			Storage: StorageConfig{Driver: StorageDriverPostgres},
			Slots:   SlotsConfig{DefaultStep: 15},
		}
	}

	tests := []struct {
		name    string
		mutate  func(c *Config)
		wantErr bool
	}{
		{name: "valid postgres", mutate: func(c *Config) {}},
		{name: "unknown driver", mutate: func(c *Config) { c.Storage.Driver = "mysql" }, wantErr: true},
		{name: "supabase without key", mutate: func(c *Config) {
			c.Storage.Driver = StorageDriverSupabase
			c.Supabase.URL = "https://project.supabase.co"
		}, wantErr: true},
		{name: "supabase with credentials", mutate: func(c *Config) {
			c.Storage.Driver = StorageDriverSupabase
			c.Supabase.URL = "https://project.supabase.co"
			c.Supabase.Key = "key"
		}},
		{name: "step too small", mutate: func(c *Config) { c.Slots.DefaultStep = 1 }, wantErr: true},
		{name: "step too large", mutate: func(c *Config) { c.Slots.DefaultStep = 500 }, wantErr: true},
		{name: "redis without addr", mutate: func(c *Config) { c.Redis.Enabled = true }, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := valid()
			tt.mutate(cfg)

			err := cfg.Validate()

			if tt.wantErr {
				assert.ErrorIs(t, err, ErrInvalidConfig)
				return
			}
			assert.NoError(t, err)
		})
	}
}
