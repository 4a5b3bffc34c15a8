package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func clearEnv(t *testing.T) {
	t.Helper()
	for _, k := range []string{
		"DB_DRIVER", "DB_DSN", "MYSQL_DSN", "JWT_SECRET", "APP_PORT", "SESSION_BACKEND",
		"SESSION_TTL", "REDIS_ADDR", "REDIS_PASSWORD", "REDIS_DB", "PASSWORD_SCHEME",
		"LOG_LEVEL", "SEED", "ADMIN_USERNAME", "ADMIN_PASSWORD", "PORTAL_CONFIG",
	} {
		t.Setenv(k, "")
	}
}

func TestLoad_Defaults(t *testing.T) {
	clearEnv(t)
	t.Setenv("MYSQL_DSN", "user:pass@tcp(localhost:3306)/hts")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "mysql", cfg.DBDriver)
	assert.Equal(t, "user:pass@tcp(localhost:3306)/hts", cfg.DSN)
	assert.Equal(t, "dev-secret-only", cfg.JWTSecret)
	assert.Equal(t, "8080", cfg.AppPort)
	assert.Equal(t, "memory", cfg.SessionBackend)
	assert.Equal(t, 12*time.Hour, cfg.SessionTTL)
	assert.Equal(t, "plain", cfg.PasswordScheme)
	assert.Equal(t, zerolog.InfoLevel, cfg.LogLevel)
	assert.False(t, cfg.Seed)
	require.Len(t, cfg.Portal.Dashboards, 1)
	assert.Equal(t, "Congelados", cfg.Portal.Dashboards[0].Company)
}

func TestLoad_Overrides(t *testing.T) {
	clearEnv(t)
	t.Setenv("DB_DRIVER", "SQLite")
	t.Setenv("DB_DSN", "file:portal.db")
	t.Setenv("SESSION_BACKEND", "redis")
	t.Setenv("SESSION_TTL", "30m")
	t.Setenv("REDIS_DB", "3")
	t.Setenv("LOG_LEVEL", "debug")
	t.Setenv("SEED", "true")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "sqlite", cfg.DBDriver)
	assert.Equal(t, "redis", cfg.SessionBackend)
	assert.Equal(t, 30*time.Minute, cfg.SessionTTL)
	assert.Equal(t, 3, cfg.RedisDB)
	assert.Equal(t, zerolog.DebugLevel, cfg.LogLevel)
	assert.True(t, cfg.Seed)
}

func TestLoad_Errors(t *testing.T) {
	tests := []struct {
		name string
		env  map[string]string
	}{
		{"missing dsn", map[string]string{}},
		{"bad driver", map[string]string{"DB_DSN": "x", "DB_DRIVER": "oracle"}},
		{"bad session backend", map[string]string{"DB_DSN": "x", "SESSION_BACKEND": "disk"}},
		{"bad log level", map[string]string{"DB_DSN": "x", "LOG_LEVEL": "loud"}},
		{"missing portal file", map[string]string{"DB_DSN": "x", "PORTAL_CONFIG": "/nonexistent/portal.yaml"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			clearEnv(t)
			for k, v := range tt.env {
				t.Setenv(k, v)
			}
			_, err := Load()
			assert.Error(t, err)
		})
	}
}

func TestLoadPortal(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "portal.yaml")
	body := `
caseFormURL: https://forms.example.com/case
dashboards:
  - company: Acme
    variant: acme
    title: Estado de Servicios
    monitorURL: https://status.example.com/acme
    services: [Soporte remoto]
`
	require.NoError(t, os.WriteFile(path, []byte(body), 0o600))

	p, err := LoadPortal(path)
	require.NoError(t, err)

	assert.Equal(t, defaultSurveyURL, p.SurveyURL, "unset fields keep defaults")
	assert.Equal(t, "https://forms.example.com/case", p.CaseFormURL)
	require.Len(t, p.Dashboards, 1)
	assert.Equal(t, "Acme", p.Dashboards[0].Company)
	assert.Equal(t, []string{"Soporte remoto"}, p.Dashboards[0].Services)
}

func TestLoadPortal_RejectsGenericVariant(t *testing.T) {
	path := filepath.Join(t.TempDir(), "portal.yaml")
	require.NoError(t, os.WriteFile(path, []byte("dashboards:\n  - company: X\n    variant: generic\n"), 0o600))

	_, err := LoadPortal(path)
	assert.Error(t, err)
}
