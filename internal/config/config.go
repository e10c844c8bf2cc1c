// Copyright (c) 2026 Rutero Team
// Rutero - tourism discovery companion
// This source code is licensed under the MIT license found in the LICENSE file.

// package config loads the Rutero configuration from (in order of
// precedence) command-line flags, RUTERO_* environment variables and a
// rutero.yaml file discovered in the user config directory, the system
// config directory or the current directory.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"runtime"
	"strings"

	"github.com/goccy/go-yaml"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

// Config is the fully resolved application configuration.
type Config struct {
	// Host is the base URL of the tourism-discovery API.
	Host string `mapstructure:"host" yaml:"host"`
	// Language selects the locale for user-visible messages (en, es).
	Language string `mapstructure:"language" yaml:"language"`
	// Timeout is the HTTP timeout in seconds for API calls.
	Timeout int `mapstructure:"timeout" yaml:"timeout"`
	// Database configures the local session store.
	Database DatabaseConfig `mapstructure:"database" yaml:"database"`
	// Verbose enables debug logging.
	Verbose bool `mapstructure:"verbose" yaml:"verbose"`
}

// DatabaseConfig selects the backend for the local key-value store.
type DatabaseConfig struct {
	Type string `mapstructure:"type" yaml:"type"`
	DSN  string `mapstructure:"dsn" yaml:"dsn"`
}

// Defaults returns the default settings applied before any file, env or
// flag value is considered.
func Defaults() map[string]any {
	return map[string]any{
		"host":          "https://api.rutero.app",
		"language":      "es",
		"timeout":       30,
		"database.type": "sqlite",
		"database.dsn":  defaultDSN(),
	}
}

// defaultDSN places the session store next to the config file.
func defaultDSN() string {
	dir, err := os.UserConfigDir()
	if err != nil {
		return "./rutero.db"
	}
	return filepath.Join(dir, "rutero", "rutero.db")
}

// getConfigPath returns the full path for the configuration file.
func getConfigPath(system bool) (string, error) {
	var configDir string
	var err error

	if system {
		switch runtime.GOOS {
		case "windows":
			configDir = filepath.Join(os.Getenv("ProgramData"), "Rutero")
		default: // Linux, macOS, etc.
			configDir = "/etc/rutero"
		}
	} else {
		configDir, err = os.UserConfigDir()
		if err != nil {
			return "", fmt.Errorf("could not get user config directory: %w", err)
		}
		configDir = filepath.Join(configDir, "rutero")
	}

	return filepath.Join(configDir, "rutero.yaml"), nil
}

// usedConfigFile records the file the last LoadConfig call read, if any.
var usedConfigFile string

// ConfigFileUsed returns the path of the config file the last LoadConfig
// call read, or "" when only defaults, env and flags applied.
func ConfigFileUsed() string {
	return usedConfigFile
}

// LoadConfig resolves the configuration for the given command. An explicit
// config file path (from --config) takes precedence over the discovered
// locations.
func LoadConfig[T any](cmd *cobra.Command, defaults map[string]any, configFilePath *string) (T, error) {
	var c T
	v := viper.New()

	for key, value := range defaults {
		v.SetDefault(key, value)
	}

	v.SetConfigName("rutero")
	v.SetConfigType("yaml")

	if configFilePath != nil {
		v.SetConfigFile(*configFilePath)
	}

	if userConfigPath, err := getConfigPath(false); err == nil {
		v.AddConfigPath(filepath.Dir(userConfigPath))
	}
	if systemConfigPath, err := getConfigPath(true); err == nil {
		v.AddConfigPath(filepath.Dir(systemConfigPath))
	}
	v.AddConfigPath(".")

	usedConfigFile = ""
	if err := v.ReadInConfig(); err != nil {
		// A missing file is fine; the defaults carry the app.
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return c, err
		}
	} else {
		usedConfigFile = v.ConfigFileUsed()
	}

	v.AutomaticEnv()
	v.AllowEmptyEnv(true)
	v.SetEnvPrefix("rutero")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	if err := v.BindPFlags(cmd.Flags()); err != nil {
		return c, err
	}

	if err := v.Unmarshal(&c); err != nil {
		return c, err
	}

	return c, nil
}

// WriteConfigFile persists the configuration as YAML. The file is written
// with 0600 permissions; the DSN may carry database credentials.
func WriteConfigFile[T any](c *T, system bool) error {
	path, err := getConfigPath(system)
	if err != nil {
		return err
	}

	data, err := yaml.Marshal(c)
	if err != nil {
		return err
	}

	configDir := filepath.Dir(path)
	if err := os.MkdirAll(configDir, 0755); err != nil {
		return fmt.Errorf("could not create config directory %s: %w", configDir, err)
	}

	return os.WriteFile(path, data, 0600)
}
