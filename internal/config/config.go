package config

import (
	"fmt"

	"github.com/spf13/viper"

	"github.com/thoreinstein/appdirs"
)

// AppName is the application name the CLI resolves its own config dir with.
const AppName = "appdirs"

// Config holds defaults for the CLI flags, read from the user's config file
// or APPDIRS_* environment variables.
type Config struct {
	// Author is the default application author used on Windows.
	Author string `mapstructure:"author" yaml:"author"`

	// Format is the default output format: text, json, yaml or toml.
	Format string `mapstructure:"format" yaml:"format"`

	// Roaming selects the roaming application data folder on Windows.
	Roaming bool `mapstructure:"roaming" yaml:"roaming"`
}

// Init initializes Viper with defaults and search paths. Call once at
// startup before Load. The tool's own config file lives in the directory
// the library resolves for it.
func Init() {
	viper.SetConfigName("config")
	viper.SetConfigType("yaml")

	viper.AddConfigPath(".")
	if dir, err := appdirs.UserConfigDir(AppName, appdirs.WithCreate(false)); err == nil {
		viper.AddConfigPath(dir)
	}

	viper.SetEnvPrefix("APPDIRS")
	viper.AutomaticEnv()

	viper.SetDefault("format", "text")
}

// Load reads the configuration. With a path it reads that exact file; with
// an empty path it searches the default locations and falls back to
// defaults when no file exists.
func Load(path string) (*Config, error) {
	if path != "" {
		viper.SetConfigFile(path)
	}

	if err := viper.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); ok {
			if path != "" {
				return nil, fmt.Errorf("config file not found at %s: %w", path, err)
			}
			// Implicit load without a file uses defaults.
		} else {
			return nil, fmt.Errorf("reading config file: %w", err)
		}
	}

	var cfg Config
	if err := viper.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("unmarshaling config: %w", err)
	}
	return &cfg, nil
}
