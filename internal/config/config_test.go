package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(body), 0o600))
	return path
}

func TestLoadConfig_Valid(t *testing.T) {
	path := writeConfig(t, `
server:
  addr: ":8080"
  shutdownTimeout: 10s
security:
  jwt:
    secret: "unit-test-secret"
    issuer: "collab-service"
    accessTTL: 15m
    clockSkew: 30s
  password:
    minLength: 8
    bcryptCost: 10
postgres:
  dsn: "postgres://localhost:5432/collab"
logging:
  env: dev
  backend: std
`)

	cfg, err := LoadConfig(path)
	require.NoError(t, err)
	require.Equal(t, ":8080", cfg.Server.Addr)
	require.Equal(t, 15*time.Minute, cfg.Security.JWT.AccessTTL)
	require.Equal(t, "collab-service", cfg.Security.JWT.Issuer)
	require.Equal(t, int32(0), cfg.Postgres.MaxConns)
	require.Equal(t, "collab-service", cfg.Logging.Service)
}

func TestLoadConfig_MissingSecret(t *testing.T) {
	t.Setenv("JWT_SECRET", "")
	path := writeConfig(t, `
server:
  addr: ":8080"
security:
  jwt:
    issuer: "collab-service"
    accessTTL: 15m
postgres:
  dsn: "postgres://localhost:5432/collab"
`)

	_, err := LoadConfig(path)
	require.Error(t, err)
	require.Contains(t, err.Error(), "security.jwt.secret")
}

func TestLoadConfig_SecretFromEnv(t *testing.T) {
	path := writeConfig(t, `
server:
  addr: ":8080"
security:
  jwt:
    secret: ""
    issuer: "collab-service"
    accessTTL: 15m
postgres:
  dsn: "postgres://localhost:5432/collab"
`)

	// empty secret in the file alone must not start
	t.Setenv("JWT_SECRET", "")
	_, err := LoadConfig(path)
	require.Error(t, err)
	require.Contains(t, err.Error(), "security.jwt.secret")

	t.Setenv("JWT_SECRET", "env-provided-secret")
	cfg, err := LoadConfig(path)
	require.NoError(t, err)
	require.Equal(t, "env-provided-secret", cfg.Security.JWT.Secret)
}

func TestLoadConfig_MissingDSN(t *testing.T) {
	path := writeConfig(t, `
server:
  addr: ":8080"
security:
  jwt:
    secret: "s"
    issuer: "collab-service"
    accessTTL: 15m
`)

	_, err := LoadConfig(path)
	require.Error(t, err)
	require.Contains(t, err.Error(), "postgres.dsn")
}
