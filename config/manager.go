package config

import (
	"errors"
	"fmt"
	"io/fs"
	"time"
)

// ErrNoConfig is returned by Load when the config file does not exist yet
var ErrNoConfig = errors.New("config file not found")

// ConfigManager handles configuration operations
type ConfigManager struct {
	path     string
	provider string
}

// NewConfigManager creates a config manager backed by the file at path
func NewConfigManager(path string) *ConfigManager {
	return &ConfigManager{path: path}
}

// SetProvider records which backend issued the credentials saved from now on
func (c *ConfigManager) SetProvider(provider string) {
	c.provider = provider
}

// Path returns the backing file path
func (c *ConfigManager) Path() string {
	return c.path
}

// Load returns the stored configuration
func (c *ConfigManager) Load() (Config, error) {
	cfg, err := readConfig(c.path)
	if errors.Is(err, fs.ErrNotExist) {
		return Config{}, ErrNoConfig
	}
	if err != nil {
		return Config{}, fmt.Errorf("failed to read config %s: %w", c.path, err)
	}
	return cfg, nil
}

// HasCredentials checks if the config has stored credentials
func (c *ConfigManager) HasCredentials() bool {
	cfg, err := readConfig(c.path)
	if err != nil {
		return false
	}
	return cfg.Username != "" && cfg.Password != ""
}

// UpdateAuthConfig updates authentication-related configuration while preserving other settings
func (c *ConfigManager) UpdateAuthConfig(username, password, accessToken string) error {
	cfg, err := readConfig(c.path)
	if err != nil {
		// If config doesn't exist, create new one
		cfg = Config{}
	}

	cfg.Username = username
	cfg.Password = password
	cfg.AccessToken = accessToken
	if c.provider != "" {
		cfg.Provider = c.provider
	}
	cfg.LastUpdated = time.Now()

	return writeConfig(c.path, cfg)
}

// SetAutoLogin toggles whether stored credentials are replayed at startup
func (c *ConfigManager) SetAutoLogin(enabled bool) error {
	cfg, err := readConfig(c.path)
	if err != nil {
		cfg = Config{}
	}
	cfg.DisableAutoLogin = !enabled
	return writeConfig(c.path, cfg)
}

// ClearCredentials removes the stored username, password and token
func (c *ConfigManager) ClearCredentials() error {
	cfg, err := readConfig(c.path)
	if errors.Is(err, fs.ErrNotExist) {
		return nil
	}
	if err != nil {
		return fmt.Errorf("failed to read config %s: %w", c.path, err)
	}

	cfg.Username = ""
	cfg.Password = ""
	cfg.AccessToken = ""
	cfg.LastUpdated = time.Now()
	return writeConfig(c.path, cfg)
}
