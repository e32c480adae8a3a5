package config

import (
	"encoding/json"
	"errors"
	"os"
	"path/filepath"
)

// Config holds application configuration.
type Config struct {
	ServerURL          string `json:"serverUrl"`
	BoardPageSize      int    `json:"boardPageSize"`
	ActivitiesPageSize int    `json:"activitiesPageSize"`
	JapanesePageSize   int    `json:"japanesePageSize"`
	CacheEnabled       bool   `json:"cacheEnabled"`
}

// DefaultConfig returns the default configuration.
func DefaultConfig() Config {
	return Config{
		ServerURL:          "http://localhost:3001",
		BoardPageSize:      10,
		ActivitiesPageSize: 3,
		JapanesePageSize:   1,
		CacheEnabled:       true,
	}
}

// Load reads config from the JSON file.
// Creates the file with defaults if it doesn't exist.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			config := DefaultConfig()
			// Non-fatal: return defaults even if save fails
			_ = Save(path, &config)
			return &config, nil
		}
		return nil, err
	}

	var config Config
	if err := json.Unmarshal(data, &config); err != nil {
		return nil, err
	}

	// Apply defaults for missing fields
	defaults := DefaultConfig()
	if config.ServerURL == "" {
		config.ServerURL = defaults.ServerURL
	}
	if config.BoardPageSize < 1 {
		config.BoardPageSize = defaults.BoardPageSize
	}
	if config.ActivitiesPageSize < 1 {
		config.ActivitiesPageSize = defaults.ActivitiesPageSize
	}
	if config.JapanesePageSize < 1 {
		config.JapanesePageSize = defaults.JapanesePageSize
	}

	return &config, nil
}

// Save writes config to the JSON file.
// Creates the directory if it doesn't exist.
func Save(path string, config *Config) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return err
	}

	data, err := json.MarshalIndent(config, "", "  ")
	if err != nil {
		return err
	}

	return os.WriteFile(path, data, 0644)
}

// DefaultFilePath returns the default config path: ~/.config/tsudoi/config.json
func DefaultFilePath() (string, error) {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(homeDir, ".config", "tsudoi", "config.json"), nil
}

// DefaultCachePath returns the default page-cache path: ~/.config/tsudoi/cache.db
func DefaultCachePath() (string, error) {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(homeDir, ".config", "tsudoi", "cache.db"), nil
}
