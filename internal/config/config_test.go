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
	t.Setenv("DRDASH_API_URL", "")
	t.Setenv("DRDASH_API_TOKEN", "")
	t.Setenv("DRDASH_TIMEOUT_SECONDS", "")

	cfg, err := Load("")
	require.NoError(t, err)
	assert.Equal(t, DefaultAPIURL, cfg.APIURL)
	assert.Empty(t, cfg.APIToken)
	assert.Equal(t, DefaultTimeout, cfg.Timeout)
}

func TestLoad_Environment(t *testing.T) {
	t.Setenv("DRDASH_API_URL", "https://admin.example.com/api")
	t.Setenv("DRDASH_API_TOKEN", "tok-123")
	t.Setenv("DRDASH_TIMEOUT_SECONDS", "30")

	cfg, err := Load("")
	require.NoError(t, err)
	assert.Equal(t, "https://admin.example.com/api", cfg.APIURL)
	assert.Equal(t, "tok-123", cfg.APIToken)
	assert.Equal(t, 30*time.Second, cfg.Timeout)
}

func TestLoad_InvalidTimeout(t *testing.T) {
	for _, v := range []string{"abc", "0", "-5"} {
		t.Setenv("DRDASH_TIMEOUT_SECONDS", v)
		_, err := Load("")
		assert.Error(t, err, "value %q", v)
	}
}

func TestLoad_EnvFile(t *testing.T) {
	// godotenv does not override variables already present, even empty ones.
	t.Setenv("DRDASH_API_TOKEN", "placeholder")
	os.Unsetenv("DRDASH_API_TOKEN")

	dir := t.TempDir()
	envFile := filepath.Join(dir, ".env")
	require.NoError(t, os.WriteFile(envFile, []byte("DRDASH_API_TOKEN=from-file\n"), 0o644))

	cfg, err := Load(envFile)
	require.NoError(t, err)
	assert.Equal(t, "from-file", cfg.APIToken)
}

func TestLoad_MissingEnvFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "nope.env"))
	assert.Error(t, err)
}
