package config

import (
	"strings"
	"testing"
	"time"

	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, 64, cfg.DedupHistory)
	assert.False(t, cfg.StrictOrdering)
	assert.Equal(t, 50*time.Millisecond, cfg.RefreshDelay)
	assert.Empty(t, cfg.BonusReactionRule)
	assert.False(t, cfg.Telemetry)
	assert.Equal(t, "actiontracker", cfg.ServiceName)
}

func TestLoadFromEnv(t *testing.T) {
	t.Setenv("ACTIONTRACKER_DEDUP_HISTORY", "8")
	t.Setenv("ACTIONTRACKER_STRICT_ORDERING", "true")
	t.Setenv("ACTIONTRACKER_REFRESH_DELAY", "1s")
	t.Setenv("ACTIONTRACKER_BONUS_REACTION_RULE", "false")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, 8, cfg.DedupHistory)
	assert.True(t, cfg.StrictOrdering)
	assert.Equal(t, time.Second, cfg.RefreshDelay)
	assert.Equal(t, "false", cfg.BonusReactionRule)
}

func TestLoadErrors(t *testing.T) {
	tests := []struct {
		name  string
		key   string
		value string
		want  string
	}{
		{"not an int", "ACTIONTRACKER_DEDUP_HISTORY", "many", "parse env:"},
		{"zero history", "ACTIONTRACKER_DEDUP_HISTORY", "0", "dedup history"},
		{"bad duration", "ACTIONTRACKER_REFRESH_DELAY", "soon", "parse env:"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Setenv(tt.key, tt.value)
			_, err := Load()
			require.Error(t, err)
			if !strings.Contains(err.Error(), tt.want) {
				t.Fatalf("expected %q in error, got %v", tt.want, err)
			}
		})
	}
}

func TestApplyOverrides(t *testing.T) {
	cfg, err := Load()
	require.NoError(t, err)

	v := viper.New()
	v.SetConfigType("yaml")
	require.NoError(t, v.ReadConfig(strings.NewReader(`
dedup_history: 16
refresh_delay: 200ms
strict_ordering: true
service_name: tracker-test
`)))

	require.NoError(t, cfg.ApplyOverrides(v))
	assert.Equal(t, 16, cfg.DedupHistory)
	assert.Equal(t, 200*time.Millisecond, cfg.RefreshDelay)
	assert.True(t, cfg.StrictOrdering)
	assert.Equal(t, "tracker-test", cfg.ServiceName)
	assert.False(t, cfg.Telemetry, "unset keys keep their value")

	v.Set(KeyDedupHistory, -1)
	assert.Error(t, cfg.ApplyOverrides(v))

	assert.NoError(t, cfg.ApplyOverrides(nil))
}
