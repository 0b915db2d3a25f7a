// Package config loads docflow CLI settings from a config file, DOCFLOW_*
// environment variables and bound command-line flags.
package config

import (
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/viper"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// EnvPrefix namespaces environment overrides, e.g. DOCFLOW_STRIP_PAGES.
const EnvPrefix = "DOCFLOW"

// Output formats accepted by the output key.
const (
	OutputJSON = "json"
	OutputYAML = "yaml"
)

// Config holds the resolved CLI settings.
type Config struct {
	Output          string    `mapstructure:"output"`
	StripPages      bool      `mapstructure:"strip_pages"`
	TypeAnnotations bool      `mapstructure:"type_annotations"`
	Log             LogConfig `mapstructure:"log"`
}

// LogConfig selects the zap logger flavour.
type LogConfig struct {
	Level  string `mapstructure:"level"`
	Format string `mapstructure:"format"`
}

// Defaults returns the settings used when nothing overrides them.
func Defaults() Config {
	return Config{
		Output:          OutputJSON,
		StripPages:      true,
		TypeAnnotations: true,
		Log: LogConfig{
			Level:  "warn",
			Format: "console",
		},
	}
}

// New returns a viper instance seeded with defaults, env bindings and the
// config search path. cfgFile, when set, replaces the search path.
func New(cfgFile string) *viper.Viper {
	defaults := Defaults()
	v := viper.New()
	v.SetDefault("output", defaults.Output)
	v.SetDefault("strip_pages", defaults.StripPages)
	v.SetDefault("type_annotations", defaults.TypeAnnotations)
	v.SetDefault("log.level", defaults.Log.Level)
	v.SetDefault("log.format", defaults.Log.Format)

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if cfgFile != "" {
		v.SetConfigFile(cfgFile)
	} else {
		v.SetConfigName("docflow")
		v.SetConfigType("yaml")
		v.AddConfigPath(".")
		v.AddConfigPath("$HOME/.docflow")
	}
	return v
}

// Load reads the config file, if any, and decodes the merged settings.
// A missing config file is not an error.
func Load(v *viper.Viper) (Config, error) {
	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return Config{}, fmt.Errorf("config: read: %w", err)
		}
	}
	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return Config{}, fmt.Errorf("config: unmarshal: %w", err)
	}
	cfg.Output = strings.ToLower(strings.TrimSpace(cfg.Output))
	if cfg.Output != OutputJSON && cfg.Output != OutputYAML {
		return Config{}, fmt.Errorf("config: unsupported output format %q", cfg.Output)
	}
	return cfg, nil
}

// Logger builds a zap logger. Format "json" yields the production encoder,
// anything else the development console encoder.
func (c LogConfig) Logger() (*zap.Logger, error) {
	level, err := zapcore.ParseLevel(strings.TrimSpace(c.Level))
	if err != nil {
		return nil, fmt.Errorf("config: log level: %w", err)
	}
	var zc zap.Config
	if strings.EqualFold(strings.TrimSpace(c.Format), "json") {
		zc = zap.NewProductionConfig()
	} else {
		zc = zap.NewDevelopmentConfig()
	}
	zc.Level = zap.NewAtomicLevelAt(level)
	zc.OutputPaths = []string{"stderr"}
	return zc.Build()
}
