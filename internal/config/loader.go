package config

import (
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/viper"
)

const (
	// ConfigFileName is the base name for configuration files (without extension).
	ConfigFileName = "telepenscan"

	// EnvPrefix is the prefix environment variables are read under, e.g.
	// TELEPEN_SERVER_ADDR.
	EnvPrefix = "TELEPEN"
)

// Loader reads Config from a config file, environment variables, and
// whatever flags the caller has already bound into the shared viper
// instance, in that increasing order of precedence.
type Loader struct {
	v *viper.Viper
}

// NewLoader returns a Loader backed by the global viper instance, so flag
// bindings set up by the CLI layer are visible to it.
func NewLoader() *Loader {
	return &Loader{v: viper.GetViper()}
}

// Load reads configuration from file/env/flags, falling back to Default for
// anything unset. A missing config file is not an error.
func (l *Loader) Load() (Config, error) {
	l.v.SetConfigName(ConfigFileName)
	l.v.SetConfigType("yaml")
	l.v.AddConfigPath(".")

	l.v.SetEnvPrefix(EnvPrefix)
	l.v.AutomaticEnv()
	l.v.SetEnvKeyReplacer(strings.NewReplacer(".", "_", "-", "_"))

	defaults := Default()
	l.v.SetDefault("log_level", defaults.LogLevel)
	l.v.SetDefault("server_addr", defaults.ServerAddr)
	l.v.SetDefault("try_harder", defaults.TryHarder)

	if err := l.v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return Config{}, fmt.Errorf("reading config file: %w", err)
		}
	}

	var cfg Config
	if err := l.v.Unmarshal(&cfg); err != nil {
		return Config{}, fmt.Errorf("unmarshaling config: %w", err)
	}
	return cfg, nil
}
