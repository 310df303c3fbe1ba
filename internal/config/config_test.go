package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewConfigDefaults(t *testing.T) {
	cfg, err := NewConfig()
	require.NoError(t, err)

	assert.Equal(t, "8080", cfg.Port)
	assert.Equal(t, "INFO", cfg.LogLevel)
	assert.Equal(t, "0 3 * * *", cfg.RefreshSchedule)
	assert.Equal(t, "30 3 * * *", cfg.SnapshotSchedule)
	assert.NotEmpty(t, cfg.DBConn)
	assert.NotEmpty(t, cfg.BalanceHubURL)
}

func TestNewConfigEnvOverrides(t *testing.T) {
	t.Setenv("PORT", "9090")
	t.Setenv("JWT_SECRET", "override-secret")
	t.Setenv("SNAPSHOT_SCHEDULE", "0 4 * * *")

	cfg, err := NewConfig()
	require.NoError(t, err)

	assert.Equal(t, "9090", cfg.Port)
	assert.Equal(t, "override-secret", cfg.JWTSecret)
	assert.Equal(t, "0 4 * * *", cfg.SnapshotSchedule)
}
