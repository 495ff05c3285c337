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
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

const minimalConfig = `
[database]
host = "localhost"
user = "marketplace"
dbname = "marketplace"

[identity]
url = "http://identity.local"
jwt_secret = "secret"
`

func TestLoad(t *testing.T) {
	path := writeConfig(t, minimalConfig)

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, "localhost", cfg.Database.Host)
	assert.Equal(t, "http://identity.local", cfg.Identity.URL)

	// Дефолты
	assert.Equal(t, 8080, cfg.Server.HTTPPort)
	assert.Equal(t, "disable", cfg.Database.SSLMode)
	assert.Equal(t, 25, cfg.Database.MaxOpenConns)
	assert.Equal(t, 5, cfg.Identity.Timeout)
	assert.Equal(t, int64(10<<20), cfg.Media.MaxUploadBytes)
	assert.Equal(t, "/metrics", cfg.Metrics.Path)
	assert.Equal(t, "marketplace-service", cfg.Metrics.ServiceName)
}

func TestLoad_EnvOverrides(t *testing.T) {
	t.Setenv("DB_PASSWORD", "env-password")
	t.Setenv("IDENTITY_JWT_SECRET", "env-secret")
	t.Setenv("REDIS_URL", "redis://env:6379/1")

	path := writeConfig(t, minimalConfig)

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, "env-password", cfg.Database.Password)
	assert.Equal(t, "env-secret", cfg.Identity.JWTSecret)
	assert.Equal(t, "redis://env:6379/1", cfg.Redis.URL)
}

func TestLoad_MissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "no-such.toml"))
	assert.ErrorIs(t, err, ErrReadConfig)
}

func TestLoad_Validation(t *testing.T) {
	tests := []struct {
		name    string
		content string
	}{
		{
			"missing database host",
			`
[database]
user = "marketplace"
dbname = "marketplace"

[identity]
url = "http://identity.local"
jwt_secret = "secret"
`,
		},
		{
			"missing identity url",
			`
[database]
host = "localhost"
user = "marketplace"
dbname = "marketplace"

[identity]
jwt_secret = "secret"
`,
		},
		{
			"missing jwt secret",
			`
[database]
host = "localhost"
user = "marketplace"
dbname = "marketplace"

[identity]
url = "http://identity.local"
`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Load(writeConfig(t, tt.content))
			assert.ErrorIs(t, err, ErrValidate)
		})
	}
}

func TestDatabaseConfig_DSN(t *testing.T) {
	c := DatabaseConfig{
		Host: "db.local", Port: 5433, User: "app",
		Password: "pw", DBName: "marketplace", SSLMode: "require",
	}
	assert.Equal(t,
		"host=db.local port=5433 user=app password=pw dbname=marketplace sslmode=require",
		c.DSN())
}
