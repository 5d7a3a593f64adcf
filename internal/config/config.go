// Package config loads application configuration and installs the
// global logger.
package config

import (
	"strings"

	"github.com/rotisserie/eris"
	"github.com/spf13/viper"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// Config holds the full application configuration.
type Config struct {
	Compare CompareConfig `yaml:"compare" mapstructure:"compare"`
	Drift   DriftConfig   `yaml:"drift" mapstructure:"drift"`
	Store   StoreConfig   `yaml:"store" mapstructure:"store"`
	Schema  SchemaConfig  `yaml:"schema" mapstructure:"schema"`
	Log     LogConfig     `yaml:"log" mapstructure:"log"`
}

// CompareConfig configures the dataset comparison pass.
type CompareConfig struct {
	Workers        int  `yaml:"workers" mapstructure:"workers"`
	IncludeRetired bool `yaml:"include_retired" mapstructure:"include_retired"`
}

// DriftConfig configures spatial drift detection.
type DriftConfig struct {
	MinDelta float64 `yaml:"min_delta" mapstructure:"min_delta"`
}

// StoreConfig configures the SQLite dataset store.
type StoreConfig struct {
	Path string `yaml:"path" mapstructure:"path"`
}

// SchemaConfig points at optional per-source column override files.
type SchemaConfig struct {
	City   string `yaml:"city" mapstructure:"city"`
	County string `yaml:"county" mapstructure:"county"`
}

// LogConfig configures logging.
type LogConfig struct {
	Level  string `yaml:"level" mapstructure:"level"`
	Format string `yaml:"format" mapstructure:"format"`
}

// Load reads configuration from config.yaml (optional) and the
// environment (ADDR_ prefix).
func Load() (*Config, error) {
	v := viper.New()

	v.SetConfigName("config")
	v.SetConfigType("yaml")
	v.AddConfigPath(".")

	v.SetEnvPrefix("ADDR")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	v.SetDefault("compare.workers", 1)
	v.SetDefault("compare.include_retired", false)
	v.SetDefault("drift.min_delta", 99.0)
	v.SetDefault("store.path", "addresses.db")
	v.SetDefault("log.level", "info")
	v.SetDefault("log.format", "console")

	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, eris.Wrap(err, "config: read file")
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, eris.Wrap(err, "config: unmarshal")
	}
	return &cfg, nil
}

// InitLogger initializes the global zap logger.
func InitLogger(cfg LogConfig) error {
	var zapCfg zap.Config
	if cfg.Format == "console" {
		zapCfg = zap.NewDevelopmentConfig()
	} else {
		zapCfg = zap.NewProductionConfig()
	}

	level, err := zapcore.ParseLevel(cfg.Level)
	if err != nil {
		return eris.Wrap(err, "config: parse log level")
	}
	zapCfg.Level.SetLevel(level)

	logger, err := zapCfg.Build()
	if err != nil {
		return eris.Wrap(err, "config: build logger")
	}
	zap.ReplaceGlobals(logger)

	return nil
}
