package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_Defaults(t *testing.T) {
	t.Setenv("SHOPFLOOR_CONFIG", "")
	t.Setenv("APP_PORT", "")
	t.Setenv("DB_DSN", "")

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, "shopfloor-tracker", cfg.AppName)
	assert.Equal(t, "8080", cfg.AppPort)
	assert.Equal(t, 24*time.Hour, cfg.Auth.TokenTTL)
	assert.Equal(t, 30, cfg.Dashboard.DefaultRangeDays)
}

func TestLoad_FileThenEnv(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "shopfloor.yaml")
	body := `
app_port: "9000"
log_level: info
mysql:
  host: db.internal
  max_open: 40
dashboard:
  default_range_days: 7
  worker_interval: 5m
`
	require.NoError(t, os.WriteFile(path, []byte(body), 0o600))

	t.Setenv("SHOPFLOOR_CONFIG", path)
	t.Setenv("LOG_LEVEL", "warn")
	t.Setenv("APP_PORT", "")
	t.Setenv("MYSQL_HOST", "")
	t.Setenv("MYSQL_MAX_OPEN_CONNS", "")
	t.Setenv("DASHBOARD_RANGE_DAYS", "")
	t.Setenv("WORKER_INTERVAL", "")

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, "9000", cfg.AppPort)
	assert.Equal(t, "warn", cfg.LogLevel)
	assert.Equal(t, "db.internal", cfg.MySQL.Host)
	assert.Equal(t, 40, cfg.MySQL.MaxOpen)
	assert.Equal(t, 7, cfg.Dashboard.DefaultRangeDays)
	assert.Equal(t, 5*time.Minute, cfg.Dashboard.WorkerInterval)
}

func TestLoad_BadFile(t *testing.T) {
	t.Setenv("SHOPFLOOR_CONFIG", filepath.Join(t.TempDir(), "missing.yaml"))
	_, err := Load()
	assert.Error(t, err)
}

func TestMySQLDSN(t *testing.T) {
	cfg := Default()
	cfg.MySQL.User = "shop"
	cfg.MySQL.Password = "secret"
	assert.Equal(t, "shop:secret@tcp(localhost:3306)/shopfloor?parseTime=true", cfg.MySQLDSN())

	cfg.MySQL.DSN = "u:p@tcp(x:1)/y"
	assert.Equal(t, "u:p@tcp(x:1)/y", cfg.MySQLDSN())
}

func TestGetEnvHelpers(t *testing.T) {
	t.Setenv("X_INT", "notanumber")
	assert.Equal(t, 3, getEnvInt("X_INT", 3))
	t.Setenv("X_DUR", "90s")
	assert.Equal(t, 90*time.Second, getEnvDuration("X_DUR", time.Second))
}
