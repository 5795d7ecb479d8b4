// Package config loads tool configuration from an optional file plus
// environment overrides.
package config

import (
	"fmt"
	"time"

	"github.com/spf13/viper"
)

type Config struct {
	APIKey            string  `mapstructure:"api_key"`
	BaseURL           string  `mapstructure:"base_url"`
	CacheFile         string  `mapstructure:"cache_file"`
	ExportDir         string  `mapstructure:"export_dir"`
	TimeoutSeconds    int     `mapstructure:"timeout_seconds"`
	RequestsPerSecond float64 `mapstructure:"requests_per_second"`
	ServerAddr        string  `mapstructure:"server_addr"`
}

func (c *Config) Timeout() time.Duration {
	return time.Duration(c.TimeoutSeconds) * time.Second
}

// Load reads configuration from the given file when path is non-empty and
// applies defaults and environment overrides. DART_API_KEY always wins over
// the file so the key can stay out of version control.
func Load(path string) (*Config, error) {
	v := viper.New()

	v.SetDefault("cache_file", "company_codes_cache.json")
	v.SetDefault("export_dir", ".")
	v.SetDefault("timeout_seconds", 10)
	v.SetDefault("requests_per_second", 5.0)
	v.SetDefault("server_addr", ":8080")

	if err := v.BindEnv("api_key", "DART_API_KEY"); err != nil {
		return nil, fmt.Errorf("failed to bind api key env: %w", err)
	}

	if path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}
	return &cfg, nil
}
