package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	t.Setenv("TRANSITO_CONFIG_PATH", t.TempDir()) // no config file present

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "0.0.0.0", cfg.BindAddress)
	assert.Equal(t, 8000, cfg.Port)
	assert.Equal(t, "mysql", cfg.Database.Host)
	assert.Equal(t, 3306, cfg.Database.Port)
	assert.Equal(t, "transito_db", cfg.Database.Name)
	assert.Equal(t, "utf8mb4", cfg.Database.Charset)
}

func TestLoadFromFile(t *testing.T) {
	dir := t.TempDir()
	content := []byte(`
port: 9000
database:
  host: db.internal
  password: sekret
`)
	require.NoError(t, os.WriteFile(filepath.Join(dir, ConfigFileName), content, 0o644))
	t.Setenv("TRANSITO_CONFIG_PATH", dir)

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, 9000, cfg.Port)
	assert.Equal(t, "db.internal", cfg.Database.Host)
	assert.Equal(t, "sekret", cfg.Database.Password)
	// Untouched keys keep their defaults.
	assert.Equal(t, "root", cfg.Database.User)
}

func TestEnvOverridesFile(t *testing.T) {
	dir := t.TempDir()
	content := []byte("database:\n  host: from-file\n")
	require.NoError(t, os.WriteFile(filepath.Join(dir, ConfigFileName), content, 0o644))
	t.Setenv("TRANSITO_CONFIG_PATH", dir)
	t.Setenv("DB_HOST", "from-env")
	t.Setenv("DB_PORT", "3307")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "from-env", cfg.Database.Host)
	assert.Equal(t, 3307, cfg.Database.Port)
}

func TestAuditToggles(t *testing.T) {
	t.Setenv("TRANSITO_CONFIG_PATH", t.TempDir())
	t.Setenv("TRANSITO_AUDIT_ENABLED", "false")
	t.Setenv("TRANSITO_AUDIT_PERSIST", "1")

	cfg, err := Load()
	require.NoError(t, err)

	assert.False(t, cfg.AuditEnabled)
	assert.True(t, cfg.AuditPersist)
}

func TestLoadRejectsMalformedFile(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, ConfigFileName), []byte("{not yaml"), 0o644))
	t.Setenv("TRANSITO_CONFIG_PATH", dir)

	_, err := Load()
	assert.Error(t, err)
}
