// Package config loads circuitsim's runtime configuration: the BFS
// propagation cap and the logger's level/format, overridable via
// CIRCUITSIM_* environment variables or a circuitsim.yaml file.
// Grounded in the viper layering kegliz/qplay and purpleidea/mgmt use
// for their own service configuration.
package config

import (
	"strings"

	"github.com/spf13/viper"

	"github.com/xDarkicex/circuitsim/engine"
)

// Config is circuitsim's resolved configuration.
type Config struct {
	// PropagationLimit bounds BFS iterations per graph-act call
	// (spec.md §5, §9).
	PropagationLimit int `mapstructure:"propagation_limit"`

	// LogLevel is a zerolog level name: trace, debug, info, warn, error.
	LogLevel string `mapstructure:"log_level"`

	// LogFormat is "console" for human-readable dev output or "json"
	// for structured production logs.
	LogFormat string `mapstructure:"log_format"`

	// HTTPAddr is the listen address for internal/server's gin engine.
	HTTPAddr string `mapstructure:"http_addr"`
}

// Load resolves configuration from, in increasing priority: compiled-in
// defaults, a circuitsim.yaml found on the search path, then
// CIRCUITSIM_* environment variables.
func Load() (*Config, error) {
	v := viper.New()

	v.SetDefault("propagation_limit", engine.DefaultPropagationLimit)
	v.SetDefault("log_level", "info")
	v.SetDefault("log_format", "console")
	v.SetDefault("http_addr", ":8080")

	v.SetConfigName("circuitsim")
	v.SetConfigType("yaml")
	v.AddConfigPath(".")
	v.AddConfigPath("$HOME/.config/circuitsim")

	v.SetEnvPrefix("circuitsim")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, err
		}
	}

	cfg := &Config{}
	if err := v.Unmarshal(cfg); err != nil {
		return nil, err
	}
	return cfg, nil
}
