package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestEnvHelpersDefaults(t *testing.T) {
	assert.Equal(t, "fallback", envStr("TEST_UNSET_STR", "fallback"))
	assert.Equal(t, 10, envInt("TEST_UNSET_INT", 10))
	assert.Equal(t, time.Minute, envDur("TEST_UNSET_DUR", time.Minute))

	t.Setenv("TEST_SET_INT", "25")
	assert.Equal(t, 25, envInt("TEST_SET_INT", 10))

	t.Setenv("TEST_BAD_INT", "not-a-number")
	assert.Equal(t, 10, envInt("TEST_BAD_INT", 10))

	t.Setenv("TEST_SET_DUR", "30s")
	assert.Equal(t, 30*time.Second, envDur("TEST_SET_DUR", time.Minute))
}

func TestLoadRateLimitConfigDefaults(t *testing.T) {
	cfg := LoadRateLimitConfig()
	assert.True(t, cfg.Enabled)
	assert.Equal(t, 60, cfg.Limit)
	assert.Equal(t, time.Minute, cfg.Window)
	assert.Equal(t, "rl", cfg.Prefix)
}
