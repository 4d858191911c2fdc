// SPDX-License-Identifier: MIT
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/spf13/viper"
)

var v *viper.Viper

// InitConfig initializes the configuration system
func InitConfig(configPath string) error {
	v = viper.New()

	// Set defaults
	setDefaults()

	// Environment overrides, e.g. STUDIO_STORAGE_DRIVER=redis
	v.SetEnvPrefix("studio")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	// Set config file path
	v.SetConfigFile(configPath)
	v.SetConfigType("yaml")

	// Create config directory if it doesn't exist
	configDir := filepath.Dir(configPath)
	if err := os.MkdirAll(configDir, 0755); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	// Try to read existing config
	if err := v.ReadInConfig(); err != nil {
		// If config doesn't exist, create it with defaults
		if os.IsNotExist(err) {
			if err := v.WriteConfigAs(configPath); err != nil {
				return fmt.Errorf("failed to write config: %w", err)
			}
		} else {
			return fmt.Errorf("failed to read config: %w", err)
		}
	}

	return nil
}

// setDefaults sets default configuration values
func setDefaults() {
	// Server defaults
	v.SetDefault("server.http_port", "8080")
	v.SetDefault("server.allowed_ips", []string{"127.0.0.1/32", "::1/128"}) // empty list allows everyone
	v.SetDefault("server.trusted_proxies", []string{})                      // peers whose X-Forwarded-For is believed

	// Storage defaults
	v.SetDefault("storage.driver", "sqlite") // sqlite, redis or memory
	v.SetDefault("storage.path", defaultDataPath("studio.db"))
	v.SetDefault("storage.redis_addr", "localhost:6379")
	v.SetDefault("storage.redis_prefix", "colorstudio")

	// Palette defaults
	v.SetDefault("palette.default_color", "#3498db")
	v.SetDefault("palette.fallback_color", "#222222")

	// Export defaults
	v.SetDefault("export.width", 1200)
	v.SetDefault("export.height", 800)
	v.SetDefault("export.watermark", "Color Studio • export")
	v.SetDefault("export.output", "color-studio.png")
	v.SetDefault("export.rate_limit", 10) // PNG renders per client per minute

	// Backup defaults
	v.SetDefault("backups.path", defaultDataPath("backups"))
	v.SetDefault("backups.enabled", true) // scheduled backups while the server runs
	v.SetDefault("backups.interval", "24h")
	v.SetDefault("backups.keep", 10)

	// Terminal UI defaults
	v.SetDefault("tui.log_file", defaultDataPath("tui.log"))
}

// defaultDataPath places data files next to the default config file
func defaultDataPath(name string) string {
	home, err := os.UserHomeDir()
	if err != nil {
		return name
	}
	return filepath.Join(home, ".colorstudio", name)
}

// GetString returns a config value as string
func GetString(key string) string {
	if v == nil {
		return ""
	}
	return v.GetString(key)
}

// GetInt returns a config value as int
func GetInt(key string) int {
	if v == nil {
		return 0
	}
	return v.GetInt(key)
}

// GetBool returns a config value as bool
func GetBool(key string) bool {
	if v == nil {
		return false
	}
	return v.GetBool(key)
}

// GetStringSlice returns a config value as a string slice
func GetStringSlice(key string) []string {
	if v == nil {
		return nil
	}
	return v.GetStringSlice(key)
}

// GetDuration returns a config value as time.Duration
func GetDuration(key string) time.Duration {
	if v == nil {
		return 0
	}
	return v.GetDuration(key)
}

// Set sets a config value and saves to file
func Set(key string, value interface{}) error {
	if v == nil {
		return fmt.Errorf("config not initialized")
	}

	v.Set(key, value)

	if err := v.WriteConfig(); err != nil {
		return fmt.Errorf("failed to write config: %w", err)
	}

	return nil
}

// GetAll returns all config values as a map
func GetAll() map[string]interface{} {
	if v == nil {
		return nil
	}
	return v.AllSettings()
}
