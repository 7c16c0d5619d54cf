// Package config loads service settings from defaults, optional YAML files
// and HELLO_-prefixed environment variables.
package config

import (
	"errors"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/spf13/viper"
)

// EnvPrefix is prepended to every environment override, e.g. HELLO_SERVER_PORT
const EnvPrefix = "HELLO"

// DefaultPaths are searched when Load is called without explicit paths
var DefaultPaths = []string{
	"./config.yaml",
	"./configs/config.yaml",
}

// Config is the full service configuration
type Config struct {
	Service   ServiceConfig   `mapstructure:"service"`
	Server    ServerConfig    `mapstructure:"server"`
	Logging   LoggingConfig   `mapstructure:"logging"`
	CORS      CORSConfig      `mapstructure:"cors"`
	Docs      DocsConfig      `mapstructure:"docs"`
	Metrics   MetricsConfig   `mapstructure:"metrics"`
	Telemetry TelemetryConfig `mapstructure:"telemetry"`

	// Files lists the config files that were merged, in order
	Files []string `mapstructure:"-"`
}

// ServiceConfig carries the values a project generator substitutes
type ServiceConfig struct {
	Name        string `mapstructure:"name" validate:"required"`
	Description string `mapstructure:"description"`
	Version     string `mapstructure:"version" validate:"required"`
}

type ServerConfig struct {
	Host            string        `mapstructure:"host"`
	Port            int           `mapstructure:"port" validate:"min=1,max=65535"`
	ReadTimeout     time.Duration `mapstructure:"read_timeout" validate:"gte=0"`
	WriteTimeout    time.Duration `mapstructure:"write_timeout" validate:"gte=0"`
	ShutdownTimeout time.Duration `mapstructure:"shutdown_timeout" validate:"gt=0"`
}

// Addr returns the listen address in host:port form
func (s ServerConfig) Addr() string {
	return fmt.Sprintf("%s:%d", s.Host, s.Port)
}

type LoggingConfig struct {
	Level  string `mapstructure:"level" validate:"oneof=debug info warn error"`
	Format string `mapstructure:"format" validate:"oneof=json console"`
}

type CORSConfig struct {
	AllowOrigins []string      `mapstructure:"allow_origins" validate:"min=1,dive,required"`
	AllowHeaders []string      `mapstructure:"allow_headers" validate:"min=1,dive,required"`
	MaxAge       time.Duration `mapstructure:"max_age" validate:"gte=0"`
}

// AllowsAnyOrigin reports whether the wildcard origin is configured
func (c CORSConfig) AllowsAnyOrigin() bool {
	for _, o := range c.AllowOrigins {
		if o == "*" {
			return true
		}
	}
	return false
}

// AllowsAnyHeader reports whether the wildcard header is configured
func (c CORSConfig) AllowsAnyHeader() bool {
	for _, h := range c.AllowHeaders {
		if h == "*" {
			return true
		}
	}
	return false
}

type DocsConfig struct {
	Enabled bool `mapstructure:"enabled"`
}

type MetricsConfig struct {
	Enabled bool   `mapstructure:"enabled"`
	Path    string `mapstructure:"path" validate:"required_if=Enabled true,omitempty,startswith=/"`
}

type TelemetryConfig struct {
	Tracing bool `mapstructure:"tracing"`
	Metrics bool `mapstructure:"metrics"`
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("service.name", "hello-service")
	v.SetDefault("service.description", "A minimal HTTP service")
	v.SetDefault("service.version", "0.1.0")

	v.SetDefault("server.host", "0.0.0.0")
	v.SetDefault("server.port", 8000)
	v.SetDefault("server.read_timeout", 15*time.Second)
	v.SetDefault("server.write_timeout", 15*time.Second)
	v.SetDefault("server.shutdown_timeout", 10*time.Second)

	v.SetDefault("logging.level", "info")
	v.SetDefault("logging.format", "json")

	v.SetDefault("cors.allow_origins", []string{"*"})
	v.SetDefault("cors.allow_headers", []string{"*"})
	v.SetDefault("cors.max_age", 12*time.Hour)

	v.SetDefault("docs.enabled", true)

	v.SetDefault("metrics.enabled", true)
	v.SetDefault("metrics.path", "/metrics")

	v.SetDefault("telemetry.tracing", false)
	v.SetDefault("telemetry.metrics", false)
}

// Default returns the built-in configuration without consulting files or
// the environment.
func Default() *Config {
	v := viper.New()
	setDefaults(v)

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		panic("config: defaults do not decode: " + err.Error())
	}
	return &cfg
}

// Load merges defaults, the given YAML files (DefaultPaths when none are
// given) and environment overrides, then validates the result. Missing files
// are skipped.
func Load(paths ...string) (*Config, error) {
	v := viper.New()
	setDefaults(v)

	v.SetConfigType("yaml")
	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if len(paths) == 0 {
		paths = DefaultPaths
	}

	var loaded []string
	for _, path := range paths {
		if _, err := os.Stat(path); errors.Is(err, os.ErrNotExist) {
			continue
		}

		v.SetConfigFile(path)
		if err := v.MergeInConfig(); err != nil {
			return nil, fmt.Errorf("failed to load config file %s: %w", path, err)
		}
		loaded = append(loaded, path)
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}
	cfg.Files = loaded

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("configuration validation failed: %w", err)
	}

	return &cfg, nil
}

var validate = validator.New()

// Validate checks field constraints
func (c *Config) Validate() error {
	return validate.Struct(c)
}
