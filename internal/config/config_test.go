package config

import (
	"testing"

	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewConfig_Defaults(t *testing.T) {
	viper.Reset()
	t.Cleanup(viper.Reset)

	cfg, err := NewConfig()
	require.NoError(t, err)

	assert.Equal(t, "localhost", cfg.Server.Host)
	assert.Equal(t, "8000", cfg.Server.Port)
	assert.Equal(t, []string{"http://localhost:3000", "http://localhost:4001"}, cfg.Cors.AllowedOrigins)
	assert.Equal(t, uint64(42), cfg.Simulation.ComparablesSeed)
	assert.Equal(t, 10.0, cfg.Simulation.SharesOutstanding)
	assert.Equal(t, "0 * * * *", cfg.SelfCheck.CronSchedule)
	assert.False(t, cfg.SelfCheck.Enabled)
	assert.Equal(t, "debug", cfg.App.LogLevel)
}

func TestNewConfig_EnvironmentOverrides(t *testing.T) {
	viper.Reset()
	t.Cleanup(viper.Reset)

	t.Setenv("PORT", "9090")
	t.Setenv("CORS_ALLOWED_ORIGINS", "https://app.example.com")
	t.Setenv("COMPARABLES_SEED", "7")
	t.Setenv("SHARES_OUTSTANDING_MILLIONS", "25.5")
	t.Setenv("SELF_CHECK_ENABLED", "true")
	t.Setenv("SELF_CHECK_CRON", "*/15 * * * *")
	t.Setenv("LOG_LEVEL", "warn")

	cfg, err := NewConfig()
	require.NoError(t, err)

	assert.Equal(t, "9090", cfg.Server.Port)
	assert.Equal(t, []string{"https://app.example.com"}, cfg.Cors.AllowedOrigins)
	assert.Equal(t, uint64(7), cfg.Simulation.ComparablesSeed)
	assert.Equal(t, 25.5, cfg.Simulation.SharesOutstanding)
	assert.True(t, cfg.SelfCheck.Enabled)
	assert.Equal(t, "*/15 * * * *", cfg.SelfCheck.CronSchedule)
	assert.Equal(t, "warn", cfg.App.LogLevel)
}
