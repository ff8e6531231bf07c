package config_test

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/limbo/timelog/pkg/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestConfig(t *testing.T) {
	envPath := filepath.Join(t.TempDir(), ".env")
	require.NoError(t, os.WriteFile(envPath, []byte(
		"CFG_TEST_ADDRESS=:9090\nCFG_TEST_INT=42\nCFG_TEST_TIMEOUT=3s\n",
	), 0o600))
	t.Setenv("TIMELOG_ENV_FILE", envPath)

	cfg := config.New()
	assert.Same(t, cfg, config.New())

	assert.Equal(t, ":9090", cfg.GetString("CFG_TEST_ADDRESS"))
	assert.Equal(t, ":9090", cfg.GetStringOr("CFG_TEST_ADDRESS", ":8080"))
	assert.Equal(t, ":8080", cfg.GetStringOr("CFG_TEST_MISSING", ":8080"))
	assert.Equal(t, 42, cfg.GetInt("CFG_TEST_INT", 1))
	assert.Equal(t, 1, cfg.GetInt("CFG_TEST_ADDRESS", 1))
	assert.Equal(t, 3*time.Second, cfg.GetDuration("CFG_TEST_TIMEOUT", time.Second))
	assert.Equal(t, time.Second, cfg.GetDuration("CFG_TEST_MISSING", time.Second))

	t.Run("location", func(t *testing.T) {
		t.Setenv("TIMEZONE", "UTC")
		assert.Equal(t, time.UTC, cfg.Location())
		t.Setenv("TIMEZONE", "Nowhere/Unknown")
		assert.Equal(t, time.Local, cfg.Location())
		t.Setenv("TIMEZONE", "")
		assert.Equal(t, time.Local, cfg.Location())
	})
}
