// Package config provides the local credential store for the Topmolt CLI.
// It holds the API base URL and API key as a small JSON file under the
// user's config directory.
package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/topmolt/topmolt-cli/pkg/leaderboard"
)

// Environment variables honored by Resolve. They win over the file so
// scripted heartbeats can run without touching the stored config.
const (
	EnvConfigPath = "TOPMOLT_CONFIG"
	EnvBaseURL    = "TOPMOLT_BASE_URL"
	EnvAPIKey     = "TOPMOLT_API_KEY"
)

// Config is the persisted CLI configuration. Empty fields mean "use the
// default origin" and "unauthenticated" respectively.
type Config struct {
	BaseURL string `json:"baseUrl,omitempty"`
	APIKey  string `json:"apiKey,omitempty"`
}

// Store reads and writes the config file. One CLI invocation reads the
// file at most once and optionally writes it back before exiting; no
// cross-process locking is attempted (last writer wins).
type Store struct {
	path string
}

// DefaultPath returns the config file location: $TOPMOLT_CONFIG if set,
// otherwise <user config dir>/topmolt/config.json.
func DefaultPath() string {
	if envPath := os.Getenv(EnvConfigPath); envPath != "" {
		return envPath
	}
	dir, err := os.UserConfigDir()
	if err != nil {
		return filepath.Join(".topmolt", "config.json")
	}
	return filepath.Join(dir, "topmolt", "config.json")
}

// NewStore creates a store bound to the given path. An empty path selects
// DefaultPath.
func NewStore(path string) *Store {
	if path == "" {
		path = DefaultPath()
	}
	return &Store{path: path}
}

// Path returns the config file location.
func (s *Store) Path() string {
	return s.path
}

// Load returns the stored config. A missing, unreadable or corrupt file
// yields the zero config; read problems never block the CLI.
func (s *Store) Load() Config {
	var cfg Config
	data, err := os.ReadFile(s.path)
	if err != nil {
		return cfg
	}
	if err := json.Unmarshal(data, &cfg); err != nil {
		return Config{}
	}
	return cfg
}

// SetBaseURL persists a new base URL, preserving the stored API key.
func (s *Store) SetBaseURL(baseURL string) error {
	cfg := s.Load()
	cfg.BaseURL = baseURL
	return s.save(cfg)
}

// SetAPIKey persists a new API key, preserving the stored base URL.
func (s *Store) SetAPIKey(apiKey string) error {
	cfg := s.Load()
	cfg.APIKey = apiKey
	return s.save(cfg)
}

// Reset clears all stored fields back to defaults.
func (s *Store) Reset() error {
	if err := os.Remove(s.path); err != nil && !os.IsNotExist(err) {
		return fmt.Errorf("failed to remove config: %w", err)
	}
	return nil
}

// Resolve returns the effective config: stored values overridden by
// TOPMOLT_BASE_URL and TOPMOLT_API_KEY when set.
func (s *Store) Resolve() Config {
	cfg := s.Load()
	if baseURL := os.Getenv(EnvBaseURL); baseURL != "" {
		cfg.BaseURL = baseURL
	}
	if apiKey := os.Getenv(EnvAPIKey); apiKey != "" {
		cfg.APIKey = apiKey
	}
	return cfg
}

// Client builds an API client from the effective config.
func (s *Store) Client() *leaderboard.Client {
	cfg := s.Resolve()
	return leaderboard.NewClient(cfg.BaseURL, cfg.APIKey)
}

func (s *Store) save(cfg Config) error {
	if err := os.MkdirAll(filepath.Dir(s.path), 0700); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	data, err := json.MarshalIndent(cfg, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}

	if err := os.WriteFile(s.path, data, 0600); err != nil {
		return fmt.Errorf("failed to write config: %w", err)
	}
	return nil
}
