package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadConfig_Defaults(t *testing.T) {
	t.Setenv("DB_DRIVER", "")
	t.Setenv("DB_PATH", "")
	t.Setenv("FALLBACK_PATH", "")
	t.Setenv("CORS_ORIGINS", "")

	cfg, err := LoadConfig()
	require.NoError(t, err)

	assert.Equal(t, DriverSQLite, cfg.DbDriver)
	assert.Equal(t, "data/lunaby.db", cfg.DbPath)
	assert.Equal(t, "Fallback.json", cfg.FallbackPath)
	assert.Equal(t, []string{"*"}, cfg.CORSOrigins)
}

func TestValidate(t *testing.T) {
	cfg := &Config{DbDriver: DriverPostgres}
	_, err := cfg.Validate()
	require.Error(t, err)

	cfg = &Config{DbDriver: DriverSQLite, DbPath: "x.db", SessionTTL: "nope"}
	warnings, err := cfg.Validate()
	require.NoError(t, err)
	assert.Len(t, warnings, 3)

	cfg = &Config{DbDriver: "mysql"}
	_, err = cfg.Validate()
	require.Error(t, err)
}

func TestSessionDuration(t *testing.T) {
	assert.Equal(t, 2*time.Hour, (&Config{SessionTTL: "2h"}).SessionDuration())
	assert.Equal(t, 24*time.Hour, (&Config{SessionTTL: "bad"}).SessionDuration())
}

func TestGetDSNSafe(t *testing.T) {
	cfg := &Config{DbDriver: DriverPostgres, DbUser: "u", DbPass: "secret", DbHost: "h", DbPort: "5432", DbName: "d", DbSSLMode: "disable"}
	assert.NotContains(t, cfg.GetDSNSafe(), "secret")
	assert.Contains(t, cfg.GetDSN(), "secret")
}
