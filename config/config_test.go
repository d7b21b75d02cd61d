package config_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/recipeshelf/backend/config"
)

func TestLoadConfigFromEnv(t *testing.T) {
	t.Setenv("DB_PASSWORD", "env-db-pass")
	t.Setenv("JWT_SECRET", "env-jwt-secret")
	t.Setenv("DB_NAME", "override_db")
	t.Setenv("ALLOWED_ORIGINS", "http://localhost:5173, https://recipeshelf.example.com")
	t.Setenv("SECRETS_DIR", t.TempDir())

	cfg, err := config.LoadConfig()
	require.NoError(t, err)

	assert.Equal(t, "env-db-pass", cfg.DBPassword)
	assert.Equal(t, "env-jwt-secret", cfg.JWTSecret)
	assert.Equal(t, "override_db", cfg.DBName)
	assert.Equal(t, "8080", cfg.ServerPort, "defaults apply when unset")
	assert.Equal(t, []string{"http://localhost:5173", "https://recipeshelf.example.com"}, cfg.AllowedOrigins)
	assert.Equal(t, "migrations", cfg.MigrationsDir)
}

func TestLoadConfigFromSecretFiles(t *testing.T) {
	secretsDir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(secretsDir, "db_password"), []byte("file-db-pass\n"), 0o600))
	require.NoError(t, os.WriteFile(filepath.Join(secretsDir, "jwt_secret"), []byte("file-jwt-secret"), 0o600))

	t.Setenv("SECRETS_DIR", secretsDir)
	t.Setenv("DB_PASSWORD", "")
	t.Setenv("JWT_SECRET", "")

	cfg, err := config.LoadConfig()
	require.NoError(t, err)
	assert.Equal(t, "file-db-pass", cfg.DBPassword, "secret files are trimmed")
	assert.Equal(t, "file-jwt-secret", cfg.JWTSecret)
}

func TestLoadConfigMissingSecrets(t *testing.T) {
	t.Setenv("SECRETS_DIR", t.TempDir())
	t.Setenv("DB_PASSWORD", "")
	t.Setenv("JWT_SECRET", "")

	_, err := config.LoadConfig()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "DB_PASSWORD")
	assert.Contains(t, err.Error(), "JWT_SECRET")
}

func TestValidateConfig(t *testing.T) {
	valid := &config.Config{
		ServerPort: "8080",
		DBHost:     "localhost",
		DBPort:     "5432",
		DBUser:     "postgres",
		DBName:     "recipeshelf",
		DBPassword: "pass",
		JWTSecret:  "secret",
	}
	assert.NoError(t, config.ValidateConfig(valid))

	invalid := *valid
	invalid.DBHost = ""
	invalid.JWTSecret = ""
	err := config.ValidateConfig(&invalid)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "DB_HOST")
}
