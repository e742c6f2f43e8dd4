// Package config loads service configuration from YAML files and the
// environment via viper.
package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/spf13/viper"

	"github.com/monigate/monigate/logging/logger"
)

// Config represents the configuration implementation.
type Config struct {
	AppName  string         `mapstructure:"app_name"`
	RunMode  string         `mapstructure:"run_mode"`
	Host     string         `mapstructure:"host"`
	Port     int            `mapstructure:"port"`
	Logger   *logger.Config `mapstructure:"logger"`
	Upstream *Upstream      `mapstructure:"upstream"`
	Cache    *Cache         `mapstructure:"cache"`

	viper *viper.Viper
}

// Upstream holds the two monitoring sources the gateway fronts.
type Upstream struct {
	Alerts  *Source `mapstructure:"alerts"`
	Metrics *Source `mapstructure:"metrics"`
}

// Source describes one upstream REST endpoint.
type Source struct {
	BaseURL string        `mapstructure:"base_url"`
	Token   string        `mapstructure:"token"`
	Timeout time.Duration `mapstructure:"timeout"`
}

// Cache configures the optional redis cache for upstream list responses.
type Cache struct {
	Addr     string        `mapstructure:"addr"`
	Password string        `mapstructure:"password"`
	DB       int           `mapstructure:"db"`
	TTL      time.Duration `mapstructure:"ttl"`
}

// Load loads the configuration from the given file, falling back to
// ./config.yaml and environment variables prefixed with MONIGATE_.
func Load(configPath string) (*Config, error) {
	v := viper.New()
	if configPath != "" {
		v.SetConfigFile(configPath)
	} else {
		v.SetConfigName("config")
		v.SetConfigType("yaml")
		v.AddConfigPath(".")
		v.AddConfigPath("/etc/monigate")
	}

	v.SetEnvPrefix("monigate")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	setDefaults(v)

	if err := v.ReadInConfig(); err != nil {
		// Missing file is fine; env and defaults still apply.
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("error reading config: %w", err)
		}
	}

	cfg := &Config{}
	if err := v.Unmarshal(cfg); err != nil {
		return nil, fmt.Errorf("error unmarshaling config: %w", err)
	}

	cfg.viper = v
	return cfg, nil
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("app_name", "monigate")
	v.SetDefault("run_mode", "release")
	v.SetDefault("host", "0.0.0.0")
	v.SetDefault("port", 8080)
	v.SetDefault("logger.level", 4)
	v.SetDefault("logger.format", "json")
	v.SetDefault("logger.output", "stdout")
	v.SetDefault("upstream.alerts.timeout", 10*time.Second)
	v.SetDefault("upstream.metrics.timeout", 10*time.Second)
	v.SetDefault("cache.ttl", 30*time.Second)
}

// Addr returns the listen address.
func (c *Config) Addr() string {
	return fmt.Sprintf("%s:%d", c.Host, c.Port)
}
