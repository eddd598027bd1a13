// Package config loads and stores the CLI configuration, including the
// Pomotodo access token.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/BurntSushi/toml"
)

const (
	// ConfigDir is the name of the config directory in home.
	ConfigDir = ".pomotodo"

	// ConfigFileName is the name of the config file.
	ConfigFileName = "config.toml"

	// EnvToken is the environment variable that overrides the stored token.
	EnvToken = "POMOTODO_TOKEN"

	// EnvAPIURL is the environment variable that overrides the API base URL.
	EnvAPIURL = "POMOTODO_API_URL"
)

// Config is the resolved CLI configuration.
type Config struct {
	Token   string
	BaseURL string
	Timeout time.Duration
}

// configFile is the raw TOML structure of ~/.pomotodo/config.toml.
type configFile struct {
	Auth authSection `toml:"auth"`
	API  apiSection  `toml:"api"`
}

type authSection struct {
	Token string `toml:"token"`
}

type apiSection struct {
	BaseURL        string `toml:"base_url"`
	TimeoutSeconds *int   `toml:"timeout_seconds"`
}

// Load loads the config file from the user's home directory and applies
// environment overrides.
func Load() (*Config, error) {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return nil, fmt.Errorf("failed to get home directory: %w", err)
	}

	return LoadFromDir(homeDir)
}

// LoadFromDir loads config using the specified directory as home.
// This is useful for testing. A missing file is not an error; the
// POMOTODO_TOKEN and POMOTODO_API_URL environment variables override
// the file contents.
func LoadFromDir(homeDir string) (*Config, error) {
	cfg := &Config{}

	configPath := filepath.Join(homeDir, ConfigDir, ConfigFileName)
	if _, err := os.Stat(configPath); err == nil {
		data, err := os.ReadFile(configPath)
		if err != nil {
			return nil, fmt.Errorf("failed to read config: %w", err)
		}

		var raw configFile
		if _, err := toml.Decode(string(data), &raw); err != nil {
			return nil, fmt.Errorf("failed to parse config TOML: %w", err)
		}

		cfg.Token = raw.Auth.Token
		cfg.BaseURL = raw.API.BaseURL
		if raw.API.TimeoutSeconds != nil {
			cfg.Timeout = time.Duration(*raw.API.TimeoutSeconds) * time.Second
		}
	}

	if token := os.Getenv(EnvToken); token != "" {
		cfg.Token = token
	}
	if baseURL := os.Getenv(EnvAPIURL); baseURL != "" {
		cfg.BaseURL = baseURL
	}

	return cfg, nil
}

// Save writes the config file to the user's home directory.
func Save(cfg *Config) error {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return fmt.Errorf("failed to get home directory: %w", err)
	}

	return SaveToDir(homeDir, cfg)
}

// SaveToDir writes the config file using the specified directory as
// home. The file is written with mode 0600 because it holds a credential.
func SaveToDir(homeDir string, cfg *Config) error {
	dir := filepath.Join(homeDir, ConfigDir)
	if err := os.MkdirAll(dir, 0700); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	raw := configFile{}
	raw.Auth.Token = cfg.Token
	raw.API.BaseURL = cfg.BaseURL
	if cfg.Timeout > 0 {
		secs := int(cfg.Timeout / time.Second)
		raw.API.TimeoutSeconds = &secs
	}

	f, err := os.OpenFile(filepath.Join(dir, ConfigFileName), os.O_WRONLY|os.O_CREATE|os.O_TRUNC, 0600)
	if err != nil {
		return fmt.Errorf("failed to create config file: %w", err)
	}
	defer f.Close()

	if err := toml.NewEncoder(f).Encode(raw); err != nil {
		return fmt.Errorf("failed to encode config TOML: %w", err)
	}

	return nil
}

// Delete removes the config file, if present, from the user's home
// directory.
func Delete() error {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return fmt.Errorf("failed to get home directory: %w", err)
	}

	return DeleteFromDir(homeDir)
}

// DeleteFromDir removes the config file using the specified directory
// as home.
func DeleteFromDir(homeDir string) error {
	err := os.Remove(filepath.Join(homeDir, ConfigDir, ConfigFileName))
	if err != nil && !os.IsNotExist(err) {
		return fmt.Errorf("failed to remove config file: %w", err)
	}
	return nil
}
