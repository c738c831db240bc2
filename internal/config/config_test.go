package config_test

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"jest/internal/config"
)

func env(m map[string]string) func(string) string {
	return func(k string) string { return m[k] }
}

func TestFromEnvDefaults(t *testing.T) {
	c, err := config.FromEnv(env(nil))
	require.NoError(t, err)
	assert.Equal(t, config.Default(), c)
}

func TestFromEnv(t *testing.T) {
	c, err := config.FromEnv(env(map[string]string{
		"JEST_PORT":           "9000",
		"JEST_REDIS_ADDR":     "localhost:6379",
		"JEST_REDIS_DB":       "2",
		"JEST_VARIANT":        "quick",
		"JEST_LOG_LEVEL":      "debug",
		"JEST_PROMPT_TIMEOUT": "45s",
		"JEST_DEV":            "true",
	}))
	require.NoError(t, err)
	assert.Equal(t, config.Config{
		Port:          9000,
		RedisAddr:     "localhost:6379",
		RedisDB:       2,
		Variant:       "quick",
		LogLevel:      "debug",
		PromptTimeout: 45 * time.Second,
		Dev:           true,
	}, c)
}

func TestFromEnvErrors(t *testing.T) {
	for _, k := range []string{"JEST_PORT", "JEST_REDIS_DB", "JEST_PROMPT_TIMEOUT", "JEST_DEV"} {
		_, err := config.FromEnv(env(map[string]string{k: "not-a-value"}))
		assert.Error(t, err, k)
	}
}

func TestLoadFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "test.env")
	require.NoError(t, os.WriteFile(path, []byte("JEST_VARIANT=high_stakes\n"), 0o600))
	t.Setenv("JEST_VARIANT", "")
	os.Unsetenv("JEST_VARIANT")

	c, err := config.Load(path)
	require.NoError(t, err)
	assert.Equal(t, "high_stakes", c.Variant)

	_, err = config.Load(filepath.Join(t.TempDir(), "missing.env"))
	assert.Error(t, err)
}
