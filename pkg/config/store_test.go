package config_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/topmolt/topmolt-cli/pkg/config"
	"github.com/topmolt/topmolt-cli/pkg/leaderboard"
)

func tempStore(t *testing.T) *config.Store {
	t.Helper()
	return config.NewStore(filepath.Join(t.TempDir(), "config.json"))
}

func TestLoadMissingFileReturnsDefaults(t *testing.T) {
	store := tempStore(t)

	cfg := store.Load()
	assert.Empty(t, cfg.BaseURL)
	assert.Empty(t, cfg.APIKey)
}

func TestLoadCorruptFileReturnsDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.json")
	require.NoError(t, os.WriteFile(path, []byte("{not json"), 0600))

	cfg := config.NewStore(path).Load()
	assert.Empty(t, cfg.BaseURL)
	assert.Empty(t, cfg.APIKey)
}

func TestSetPreservesOtherFields(t *testing.T) {
	store := tempStore(t)

	require.NoError(t, store.SetBaseURL("https://staging.topmolt.io"))
	require.NoError(t, store.SetAPIKey("sk_test_1"))

	cfg := store.Load()
	assert.Equal(t, "https://staging.topmolt.io", cfg.BaseURL)
	assert.Equal(t, "sk_test_1", cfg.APIKey)

	// Updating one field leaves the other alone.
	require.NoError(t, store.SetAPIKey("sk_test_2"))
	cfg = store.Load()
	assert.Equal(t, "https://staging.topmolt.io", cfg.BaseURL)
	assert.Equal(t, "sk_test_2", cfg.APIKey)
}

func TestSetCreatesParentDirectory(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "dir", "config.json")
	store := config.NewStore(path)

	require.NoError(t, store.SetAPIKey("sk_test"))

	info, err := os.Stat(path)
	require.NoError(t, err)
	assert.Equal(t, os.FileMode(0600), info.Mode().Perm())
}

func TestReset(t *testing.T) {
	store := tempStore(t)
	require.NoError(t, store.SetAPIKey("sk_test"))

	require.NoError(t, store.Reset())
	assert.Empty(t, store.Load().APIKey)

	// Resetting an already-clean store is fine.
	require.NoError(t, store.Reset())
}

func TestResolveEnvOverrides(t *testing.T) {
	store := tempStore(t)
	require.NoError(t, store.SetBaseURL("https://file.example"))
	require.NoError(t, store.SetAPIKey("file-key"))

	t.Setenv(config.EnvBaseURL, "https://env.example")
	t.Setenv(config.EnvAPIKey, "env-key")

	cfg := store.Resolve()
	assert.Equal(t, "https://env.example", cfg.BaseURL)
	assert.Equal(t, "env-key", cfg.APIKey)
}

func TestClientFromStore(t *testing.T) {
	t.Setenv(config.EnvBaseURL, "")
	t.Setenv(config.EnvAPIKey, "")
	store := tempStore(t)
	require.NoError(t, store.SetBaseURL("https://staging.topmolt.io/"))
	require.NoError(t, store.SetAPIKey("sk_test"))

	client := store.Client()
	assert.Equal(t, "https://staging.topmolt.io", client.BaseURL)
	assert.Equal(t, "sk_test", client.APIKey)
}

func TestClientDefaultsWhenUnconfigured(t *testing.T) {
	t.Setenv(config.EnvBaseURL, "")
	t.Setenv(config.EnvAPIKey, "")
	client := tempStore(t).Client()
	assert.Equal(t, leaderboard.DefaultBaseURL, client.BaseURL)
	assert.Empty(t, client.APIKey)
}
