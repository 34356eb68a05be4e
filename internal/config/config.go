// Package config loads dockyard settings from an optional TOML file and
// DOCKYARD_-prefixed environment variables.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/viper"
)

// ConfigPathEnv points at an explicit config file.
const ConfigPathEnv = "DOCKYARD_CONFIG"

// Config holds application configuration.
type Config struct {
	Layout LayoutConfig
	Log    LogConfig
	Trace  TraceConfig
	UI     UIConfig
}

// LayoutConfig locates the persisted layout. An empty path lets the layout
// store pick its default.
type LayoutConfig struct {
	Path string
}

// LogConfig configures the zap logger. The terminal owns stdout and
// stderr while the UI runs, so logs go to File. An empty Level keeps the
// level of the production or development preset.
type LogConfig struct {
	Level       string
	Development bool
	File        string
}

// TraceConfig configures OTLP export. Tracing is off when Endpoint is empty.
type TraceConfig struct {
	Endpoint    string
	ServiceName string `mapstructure:"service_name"`
	Insecure    bool
}

// UIConfig holds presentation settings, in terminal cells.
type UIConfig struct {
	FloatingWidth  int `mapstructure:"floating_width"`
	FloatingHeight int `mapstructure:"floating_height"`
}

// Load reads configuration from file and env. Env var overrides use prefix
// DOCKYARD_ with dots replaced by underscores (DOCKYARD_LOG_LEVEL).
func Load() (Config, error) {
	v := viper.New()

	v.SetDefault("layout.path", "")
	v.SetDefault("log.level", "")
	v.SetDefault("log.development", false)
	v.SetDefault("log.file", filepath.Join(os.TempDir(), "dockyard.log"))
	v.SetDefault("trace.endpoint", "")
	v.SetDefault("trace.service_name", "dockyard")
	v.SetDefault("trace.insecure", true)
	v.SetDefault("ui.floating_width", 24)
	v.SetDefault("ui.floating_height", 8)

	v.SetConfigType("toml")

	cfgPath := os.Getenv(ConfigPathEnv)
	if cfgPath != "" {
		v.SetConfigFile(cfgPath)
	} else {
		v.AddConfigPath(filepath.Join(os.Getenv("HOME"), ".config", "dockyard"))
		v.SetConfigName("config")
	}

	v.SetEnvPrefix("DOCKYARD")
	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if cfgPath != "" || !errors.As(err, &notFound) {
			return Config{}, fmt.Errorf("read config: %w", err)
		}
	}

	var c Config
	if err := v.Unmarshal(&c); err != nil {
		return Config{}, fmt.Errorf("unmarshal config: %w", err)
	}
	if c.UI.FloatingWidth <= 0 || c.UI.FloatingHeight <= 0 {
		return Config{}, fmt.Errorf("ui.floating_width and ui.floating_height must be positive")
	}
	return c, nil
}
