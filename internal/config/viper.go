// Package config provides Viper-based hierarchical configuration management
package config

import (
	"errors"
	"fmt"
	"strings"
	"unicode/utf8"

	"fjacquet/bank-reco/internal/models"
	"fjacquet/bank-reco/internal/report"

	"github.com/sirupsen/logrus"
	"github.com/spf13/viper"
)

// EnvPrefix prefixes every environment override, e.g. BANKRECO_DATA_FILE.
const EnvPrefix = "BANKRECO"

// DefaultDataFile is the product table read when none is configured.
const DefaultDataFile = "bank_products.csv"

// LogConfig holds logging settings.
type LogConfig struct {
	Level  string `mapstructure:"level" yaml:"level"`
	Format string `mapstructure:"format" yaml:"format"`
}

// DataConfig locates the product table.
type DataConfig struct {
	File  string `mapstructure:"file" yaml:"file"`
	Sheet string `mapstructure:"sheet" yaml:"sheet"`
}

// CSVConfig holds delimited text settings for input and output.
type CSVConfig struct {
	Delimiter string `mapstructure:"delimiter" yaml:"delimiter"`
}

// RecommendConfig tunes filtering and comparison.
type RecommendConfig struct {
	MaxCompare         int     `mapstructure:"max_compare" yaml:"max_compare"`
	HighYieldThreshold float64 `mapstructure:"high_yield_threshold" yaml:"high_yield_threshold"`
	GoalsFile          string  `mapstructure:"goals_file" yaml:"goals_file"`
}

// OutputConfig selects how results are printed.
type OutputConfig struct {
	Format string `mapstructure:"format" yaml:"format"`
}

// Config represents the complete application configuration
type Config struct {
	Log       LogConfig       `mapstructure:"log" yaml:"log"`
	Data      DataConfig      `mapstructure:"data" yaml:"data"`
	CSV       CSVConfig       `mapstructure:"csv" yaml:"csv"`
	Recommend RecommendConfig `mapstructure:"recommend" yaml:"recommend"`
	Output    OutputConfig    `mapstructure:"output" yaml:"output"`
}

// Delimiter returns the configured delimiter as a rune.
func (c *Config) Delimiter() rune {
	r, _ := utf8.DecodeRuneInString(c.CSV.Delimiter)
	if r == utf8.RuneError {
		return ','
	}
	return r
}

// InitializeConfig initializes Viper configuration with hierarchical loading.
// A non-empty configFile is read instead of searching the default locations.
func InitializeConfig(configFile string) (*Config, error) {
	v := viper.New()

	// 1. Set defaults
	setDefaults(v)

	// 2. Config file locations
	if configFile != "" {
		v.SetConfigFile(configFile)
	} else {
		v.SetConfigName("config")
		v.SetConfigType("yaml")
		v.AddConfigPath("$HOME/.bank-reco")
		v.AddConfigPath(".bank-reco")
		v.AddConfigPath(".")
	}

	// 3. Environment variables
	v.SetEnvPrefix(EnvPrefix)
	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	// 4. Read config file (optional unless given explicitly)
	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if configFile != "" {
			return nil, fmt.Errorf("error reading config file %s: %w", configFile, err)
		}
		if !errors.As(err, &notFound) {
			logrus.Warnf("Error reading config file %s: %v", v.ConfigFileUsed(), err)
		}
	}

	var config Config
	if err := v.Unmarshal(&config); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	// 5. Validate configuration
	if err := validateConfig(&config); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	return &config, nil
}

// setDefaults sets default configuration values
func setDefaults(v *viper.Viper) {
	v.SetDefault("log.level", "info")
	v.SetDefault("log.format", "text")

	v.SetDefault("data.file", DefaultDataFile)
	v.SetDefault("data.sheet", "")

	v.SetDefault("csv.delimiter", ",")

	v.SetDefault("recommend.max_compare", models.DefaultMaxCompare)
	v.SetDefault("recommend.high_yield_threshold", models.DefaultHighYieldThreshold)
	v.SetDefault("recommend.goals_file", "")

	v.SetDefault("output.format", string(report.FormatTable))
}

// Validate checks a configuration that was changed after loading, e.g. by
// command line flags.
func Validate(config *Config) error {
	if err := validateConfig(config); err != nil {
		return fmt.Errorf("invalid configuration: %w", err)
	}
	return nil
}

// validateConfig validates the configuration values
func validateConfig(config *Config) error {
	if _, err := logrus.ParseLevel(config.Log.Level); err != nil {
		return fmt.Errorf("invalid log level: %s", config.Log.Level)
	}

	if config.Log.Format != "text" && config.Log.Format != "json" {
		return fmt.Errorf("invalid log format: %s (must be 'text' or 'json')", config.Log.Format)
	}

	if utf8.RuneCountInString(config.CSV.Delimiter) != 1 {
		return fmt.Errorf("CSV delimiter must be a single character, got: %s", config.CSV.Delimiter)
	}
	if d, _ := utf8.DecodeRuneInString(config.CSV.Delimiter); d == '"' || d == '\r' || d == '\n' || d == utf8.RuneError {
		return fmt.Errorf("CSV delimiter cannot be used as a field separator, got: %q", config.CSV.Delimiter)
	}

	if strings.TrimSpace(config.Data.File) == "" {
		return fmt.Errorf("data.file must not be empty")
	}

	if config.Recommend.MaxCompare < 1 || config.Recommend.MaxCompare > models.DefaultMaxCompare {
		return fmt.Errorf("recommend.max_compare must be between 1 and %d, got: %d",
			models.DefaultMaxCompare, config.Recommend.MaxCompare)
	}

	if config.Recommend.HighYieldThreshold < 0 {
		return fmt.Errorf("recommend.high_yield_threshold must not be negative, got: %f",
			config.Recommend.HighYieldThreshold)
	}

	if _, err := report.ParseFormat(config.Output.Format); err != nil {
		return fmt.Errorf("invalid output format: %s", config.Output.Format)
	}

	return nil
}
