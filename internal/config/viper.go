// Package config provides Viper-based hierarchical configuration management
package config

import (
	"errors"
	"fmt"
	"reflect"
	"strings"

	"fjacquet/charge-calc/internal/logging"

	"github.com/go-playground/validator/v10"
	"github.com/sirupsen/logrus"
	"github.com/spf13/viper"
)

// EnvPrefix is prepended to every environment override, e.g. CHARGE_CSV_DELIMITER.
const EnvPrefix = "CHARGE"

// LogConfig controls the logrus backend.
type LogConfig struct {
	Level  string `mapstructure:"level" yaml:"level" validate:"loglevel"`
	Format string `mapstructure:"format" yaml:"format" validate:"oneof=text json"`
}

// CSVConfig controls the row table CSV writer.
type CSVConfig struct {
	Delimiter      string `mapstructure:"delimiter" yaml:"delimiter" validate:"len=1"`
	IncludeHeaders bool   `mapstructure:"include_headers" yaml:"include_headers"`
}

// Comma returns the delimiter as the rune expected by encoding/csv.
func (c CSVConfig) Comma() rune {
	for _, r := range c.Delimiter {
		return r
	}
	return ','
}

// OutputConfig controls table rendering and the default export format.
type OutputConfig struct {
	Precision int    `mapstructure:"precision" yaml:"precision" validate:"gte=0,lte=12"`
	Format    string `mapstructure:"format" yaml:"format" validate:"oneof=csv xlsx json yaml"`
	SheetName string `mapstructure:"sheet_name" yaml:"sheet_name" validate:"required,max=31"`
}

// ParserConfig toggles the optional parser behaviours.
type ParserConfig struct {
	SniffContent         bool `mapstructure:"sniff_content" yaml:"sniff_content"`
	MergeDuplicateCycles bool `mapstructure:"merge_duplicate_cycles" yaml:"merge_duplicate_cycles"`
}

// ChartConfig sizes rendered charts.
type ChartConfig struct {
	MaxPoints    int     `mapstructure:"max_points" yaml:"max_points" validate:"gt=0"`
	WidthInches  float64 `mapstructure:"width_inches" yaml:"width_inches" validate:"gt=0"`
	HeightInches float64 `mapstructure:"height_inches" yaml:"height_inches" validate:"gt=0"`
}

// Config represents the complete application configuration
type Config struct {
	Log    LogConfig    `mapstructure:"log" yaml:"log"`
	CSV    CSVConfig    `mapstructure:"csv" yaml:"csv"`
	Output OutputConfig `mapstructure:"output" yaml:"output"`
	Parser ParserConfig `mapstructure:"parser" yaml:"parser"`
	Chart  ChartConfig  `mapstructure:"chart" yaml:"chart"`
}

// InitializeConfig initializes Viper configuration with hierarchical loading:
// defaults, then config.yaml, then CHARGE_* environment variables.
func InitializeConfig() (*Config, error) {
	v := viper.New()

	// 1. Set defaults
	setDefaults(v)

	// 2. Config file locations
	v.SetConfigName("config")
	v.SetConfigType("yaml")
	v.AddConfigPath("$HOME/.charge-calc")
	v.AddConfigPath(".charge-calc")
	v.AddConfigPath(".")

	// 3. Environment variables
	v.SetEnvPrefix(EnvPrefix)
	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	// 4. Read config file (optional)
	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, fmt.Errorf("error reading config file %s: %w", v.ConfigFileUsed(), err)
		}
	}

	return unmarshal(v)
}

// Default returns the configuration built from defaults only.
func Default() *Config {
	v := viper.New()
	setDefaults(v)
	cfg, err := unmarshal(v)
	if err != nil {
		// defaults are static; failing here is a programming error
		panic(err)
	}
	return cfg
}

func unmarshal(v *viper.Viper) (*Config, error) {
	var config Config
	if err := v.Unmarshal(&config); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	if err := validateConfig(&config); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	return &config, nil
}

// setDefaults sets default configuration values
func setDefaults(v *viper.Viper) {
	v.SetDefault("log.level", "info")
	v.SetDefault("log.format", "text")

	v.SetDefault("csv.delimiter", ",")
	v.SetDefault("csv.include_headers", false)

	v.SetDefault("output.precision", 6)
	v.SetDefault("output.format", "csv")
	v.SetDefault("output.sheet_name", "Charges")

	v.SetDefault("parser.sniff_content", false)
	v.SetDefault("parser.merge_duplicate_cycles", false)

	v.SetDefault("chart.max_points", 2000)
	v.SetDefault("chart.width_inches", 8.0)
	v.SetDefault("chart.height_inches", 4.5)
}

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New()
	_ = v.RegisterValidation("loglevel", func(fl validator.FieldLevel) bool {
		_, err := logrus.ParseLevel(strings.ToLower(fl.Field().String()))
		return err == nil
	})
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		return fld.Tag.Get("mapstructure")
	})
	return v
}

// validateConfig validates the configuration values and reports the first
// offending key by its configuration name.
func validateConfig(config *Config) error {
	err := validate.Struct(config)
	if err == nil {
		return nil
	}

	var fieldErrs validator.ValidationErrors
	if !errors.As(err, &fieldErrs) || len(fieldErrs) == 0 {
		return err
	}

	fe := fieldErrs[0]
	key := strings.TrimPrefix(fe.Namespace(), "Config.")
	switch fe.Tag() {
	case "loglevel":
		return fmt.Errorf("invalid log level: %v", fe.Value())
	case "oneof":
		return fmt.Errorf("invalid %s: %v (must be one of: %s)", key, fe.Value(), fe.Param())
	case "len":
		return fmt.Errorf("%s must be a single character, got: %v", key, fe.Value())
	case "gte", "lte":
		return fmt.Errorf("%s must be between 0 and 12, got: %v", key, fe.Value())
	default:
		return fmt.Errorf("invalid %s: %v (failed '%s' check)", key, fe.Value(), fe.Tag())
	}
}

// ConfigureLoggingFromConfig builds a logrus logger from the Config struct.
func ConfigureLoggingFromConfig(config *Config) *logrus.Logger {
	logger := logrus.New()
	logging.Configure(logger, config.Log.Level, config.Log.Format)
	return logger
}

// NewLogger returns the application Logger described by config.
func NewLogger(config *Config) logging.Logger {
	return logging.NewLogrusAdapterFromLogger(ConfigureLoggingFromConfig(config))
}
