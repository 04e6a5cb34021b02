package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"runtime"
	"strings"

	"github.com/spf13/viper"
)

// UI modes
const (
	ModeMenu = "menu"
	ModeTUI  = "tui"
)

// Config holds all application configuration
type Config struct {
	Catalog CatalogConfig `mapstructure:"catalog"`
	UI      UIConfig      `mapstructure:"ui"`
	Logging LoggingConfig `mapstructure:"logging"`
}

// CatalogConfig holds the catalog name and optional seed records
type CatalogConfig struct {
	Name string           `mapstructure:"name"`
	Seed []map[string]any `mapstructure:"seed"` // kind-tagged records imported at startup
}

// UIConfig holds presentation settings
type UIConfig struct {
	Locale string `mapstructure:"locale"` // "en" or "id"
	Mode   string `mapstructure:"mode"`   // "menu" or "tui"
}

// LoggingConfig holds logging configuration
type LoggingConfig struct {
	File  string `mapstructure:"file"`
	Level string `mapstructure:"level"`
}

// DefaultConfig returns the default configuration
func DefaultConfig() *Config {
	return &Config{
		Catalog: CatalogConfig{
			Name: "Campus Library",
		},
		UI: UIConfig{
			Locale: "en",
			Mode:   ModeMenu,
		},
		Logging: LoggingConfig{
			File:  defaultLogPath(),
			Level: "INFO",
		},
	}
}

// defaultLogPath returns the default log file path for the current OS
func defaultLogPath() string {
	switch runtime.GOOS {
	case "windows":
		return filepath.Join(os.Getenv("APPDATA"), "shelf", "shelf.log")
	default:
		home, _ := os.UserHomeDir()
		return filepath.Join(home, ".local", "share", "shelf", "shelf.log")
	}
}

// DefaultConfigDir returns the default config directory for the current OS
func DefaultConfigDir() string {
	switch runtime.GOOS {
	case "windows":
		return filepath.Join(os.Getenv("APPDATA"), "shelf")
	default:
		home, _ := os.UserHomeDir()
		return filepath.Join(home, ".config", "shelf")
	}
}

// newViper returns a viper instance with defaults and SHELF_* env overrides
func newViper(defaults *Config) *viper.Viper {
	v := viper.New()
	v.SetConfigType("yaml")

	// Defaults must be registered for AutomaticEnv to reach keys absent from the file
	v.SetDefault("catalog.name", defaults.Catalog.Name)
	v.SetDefault("ui.locale", defaults.UI.Locale)
	v.SetDefault("ui.mode", defaults.UI.Mode)
	v.SetDefault("logging.file", defaults.Logging.File)
	v.SetDefault("logging.level", defaults.Logging.Level)

	v.SetEnvPrefix("SHELF")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()
	return v
}

// LoadConfig loads configuration from path, or from config.yaml in the
// default directory or the working directory when path is empty.
// A missing file in the search path is not an error.
func LoadConfig(path string) (*Config, error) {
	cfg := DefaultConfig()
	v := newViper(cfg)

	if path != "" {
		v.SetConfigFile(path)
	} else {
		v.SetConfigName("config")
		v.AddConfigPath(DefaultConfigDir())
		v.AddConfigPath(".")
	}

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if path != "" || !errors.As(err, &notFound) {
			return nil, fmt.Errorf("error reading config file: %w", err)
		}
		// Config file not found is OK, use defaults
	}

	if err := v.Unmarshal(cfg); err != nil {
		return nil, fmt.Errorf("error parsing config: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate checks values viper cannot type-check
func (c *Config) Validate() error {
	switch c.UI.Mode {
	case ModeMenu, ModeTUI:
	default:
		return fmt.Errorf("invalid ui.mode %q: want %q or %q", c.UI.Mode, ModeMenu, ModeTUI)
	}
	if strings.TrimSpace(c.Catalog.Name) == "" {
		return errors.New("catalog.name must not be empty")
	}
	return nil
}

// SaveConfig writes cfg as YAML to path, creating the directory if needed.
// Seed records are not written.
func SaveConfig(cfg *Config, path string) error {
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	v := viper.New()
	v.Set("catalog.name", cfg.Catalog.Name)
	v.Set("ui.locale", cfg.UI.Locale)
	v.Set("ui.mode", cfg.UI.Mode)
	v.Set("logging.file", cfg.Logging.File)
	v.Set("logging.level", cfg.Logging.Level)

	if err := v.WriteConfigAs(path); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}
	return nil
}
