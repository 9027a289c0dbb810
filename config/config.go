package config

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"gopkg.in/yaml.v3"
)

const (
	configDirName  = ".octodash"
	configFileName = "config.yml"
	logFileName    = "octodash.log"
)

// Config represents the application configuration
type Config struct {
	Username         string    `yaml:"username"`
	Password         string    `yaml:"password"`
	AccessToken      string    `yaml:"access_token"`
	Provider         string    `yaml:"provider,omitempty"`
	DisableAutoLogin bool      `yaml:"disable_auto_login"`
	LastUpdated      time.Time `yaml:"last_updated"`
}

// Dir returns ~/.octodash, creating it if needed
func Dir() (string, error) {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("unable to determine user home directory: %w", err)
	}

	dir := filepath.Join(homeDir, configDirName)
	if err := os.MkdirAll(dir, 0700); err != nil {
		return "", fmt.Errorf("unable to create %s directory: %w", dir, err)
	}
	return dir, nil
}

// DefaultConfigPath returns the config file location inside Dir
func DefaultConfigPath() (string, error) {
	dir, err := Dir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, configFileName), nil
}

// DefaultLogPath returns the log file location inside Dir
func DefaultLogPath() (string, error) {
	dir, err := Dir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, logFileName), nil
}

// readConfig reads the configuration from path.
// This is private - use ConfigManager methods instead
func readConfig(path string) (Config, error) {
	var config Config
	data, err := os.ReadFile(path)
	if err != nil {
		return config, err
	}
	err = yaml.Unmarshal(data, &config)
	return config, err
}

// writeConfig writes the configuration to path with owner-only permissions
func writeConfig(path string, config Config) error {
	data, err := yaml.Marshal(&config)
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0600)
}
