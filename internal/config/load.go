package config

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/spf13/viper"
)

// EnvPrefix is the prefix of every environment variable read by Load.
const EnvPrefix = "DAYPLAN"

// ConfigFileEnv names the environment variable that points Load at an
// explicit config file.
const ConfigFileEnv = EnvPrefix + "_CONFIG"

// Defaults for settings that may be omitted.
const (
	DefaultLogLevel   = "warn"
	DefaultLogFormat  = "text"
	DefaultLocale     = "ru"
	DefaultDateLayout = "2.01.2006"
	DefaultTimeLayout = "15:04"
)

// Load configuration from environment variables and optionally a config file:
// the one named by DAYPLAN_CONFIG, or else config.yaml in the working
// directory if present. Environment variables take precedence over values
// from the config file.
// Returns a populated Config struct or an error if loading/validation fails.
func Load() (*Config, error) {
	if path := os.Getenv(ConfigFileEnv); path != "" {
		return LoadFile(path)
	}

	v := newViper()

	v.SetConfigName("config")
	v.SetConfigType("yaml")
	v.AddConfigPath(".")

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}
	}

	return unmarshal(v)
}

// LoadFile is like Load but reads the given config file, which must exist.
func LoadFile(path string) (*Config, error) {
	v := newViper()

	v.SetConfigFile(path)
	if err := v.ReadInConfig(); err != nil {
		return nil, fmt.Errorf("failed to read config file %s: %w", path, err)
	}

	return unmarshal(v)
}

func newViper() *viper.Viper {
	v := viper.New()

	v.SetDefault("app.log_level", DefaultLogLevel)
	v.SetDefault("app.log_format", DefaultLogFormat)
	v.SetDefault("console.locale", DefaultLocale)
	v.SetDefault("console.date_layout", DefaultDateLayout)
	v.SetDefault("console.time_layout", DefaultTimeLayout)

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	return v
}

func unmarshal(v *viper.Viper) (*Config, error) {
	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal configuration: %w", err)
	}

	validate := validator.New(validator.WithRequiredStructEnabled())
	if err := validate.Struct(&cfg); err != nil {
		return nil, fmt.Errorf("configuration validation failed: %w", err)
	}

	return &cfg, nil
}
