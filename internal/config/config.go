// Package config provides the application configuration of the
// fieldoverrides CLI, loaded with viper from a YAML file, environment
// variables (FIELDOVERRIDES_*) and defaults.
package config

import (
	"errors"
	"fmt"
	"os"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/spf13/viper"
)

// EnvPrefix prefixes every environment variable read by Load.
const EnvPrefix = "FIELDOVERRIDES"

// DefaultFile is looked up in the working directory when no file is given.
const DefaultFile = ".fieldoverrides.yaml"

// Output formats.
const (
	OutputYAML = "yaml"
	OutputJSON = "json"
)

// Config holds all configuration options.
type Config struct {
	AutoMinMax bool      `mapstructure:"auto_min_max"`
	TimeZone   string    `mapstructure:"time_zone"`
	Theme      string    `mapstructure:"theme" validate:"oneof=dark light"`
	BaseURL    string    `mapstructure:"base_url"`
	Output     string    `mapstructure:"output" validate:"oneof=yaml json"`
	Log        LogConfig `mapstructure:"log"`
}

// LogConfig configures logging. An empty File logs to stderr.
type LogConfig struct {
	Level      string `mapstructure:"level" validate:"omitempty,oneof=debug info warn error dpanic panic fatal"`
	File       string `mapstructure:"file"`
	MaxSize    int    `mapstructure:"max_size" validate:"gte=0"` // megabytes
	MaxBackups int    `mapstructure:"max_backups" validate:"gte=0"`
	MaxAge     int    `mapstructure:"max_age" validate:"gte=0"` // days
	Compress   bool   `mapstructure:"compress"`
}

// Defaults returns the default configuration.
func Defaults() Config {
	return Config{
		AutoMinMax: false,
		TimeZone:   "UTC",
		Theme:      "dark",
		Output:     OutputYAML,
		Log: LogConfig{
			Level:      "warn",
			MaxSize:    10,
			MaxBackups: 3,
			MaxAge:     28,
		},
	}
}

func setDefaults(v *viper.Viper) {
	d := Defaults()
	v.SetDefault("auto_min_max", d.AutoMinMax)
	v.SetDefault("time_zone", d.TimeZone)
	v.SetDefault("theme", d.Theme)
	v.SetDefault("base_url", d.BaseURL)
	v.SetDefault("output", d.Output)
	v.SetDefault("log.level", d.Log.Level)
	v.SetDefault("log.file", d.Log.File)
	v.SetDefault("log.max_size", d.Log.MaxSize)
	v.SetDefault("log.max_backups", d.Log.MaxBackups)
	v.SetDefault("log.max_age", d.Log.MaxAge)
	v.SetDefault("log.compress", d.Log.Compress)
}

// Load reads the configuration into v. The file at path is required when
// path is set; otherwise DefaultFile is read when it exists.
func Load(v *viper.Viper, path string) (Config, error) {
	setDefaults(v)

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	switch {
	case path != "":
		v.SetConfigFile(path)
	default:
		if _, err := os.Stat(DefaultFile); err == nil {
			v.SetConfigFile(DefaultFile)
		}
	}

	if v.ConfigFileUsed() != "" {
		if err := v.ReadInConfig(); err != nil {
			return Config{}, fmt.Errorf("reading config %s: %w", v.ConfigFileUsed(), err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return Config{}, fmt.Errorf("decoding config: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}

	return cfg, nil
}

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())
	v.RegisterTagNameFunc(func(f reflect.StructField) string {
		name, _, _ := strings.Cut(f.Tag.Get("mapstructure"), ",")
		return name
	})

	return v
}

// Validate checks enumerated and bounded settings. Errors name the
// offending key, e.g. "log.level".
func (c Config) Validate() error {
	err := validate.Struct(c)
	if err == nil {
		return nil
	}

	var fieldErrs validator.ValidationErrors
	if !errors.As(err, &fieldErrs) {
		return fmt.Errorf("validating config: %w", err)
	}

	errs := make([]error, 0, len(fieldErrs))
	for _, fe := range fieldErrs {
		_, key, _ := strings.Cut(fe.Namespace(), ".")
		errs = append(errs, fmt.Errorf("%s: invalid value %v (%s %s)", key, fe.Value(), fe.Tag(), fe.Param()))
	}

	return errors.Join(errs...)
}
