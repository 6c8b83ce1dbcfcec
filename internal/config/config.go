// Package config provides configuration loading and validation for the CLI and server.
package config

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"gopkg.in/yaml.v3"
)

// Duration is a time.Duration written as "30m" in JSON and YAML.
type Duration struct {
	time.Duration
}

// UnmarshalText parses a Go duration string.
func (d *Duration) UnmarshalText(text []byte) error {
	parsed, err := time.ParseDuration(strings.TrimSpace(string(text)))
	if err != nil {
		return fmt.Errorf("invalid duration %q: %w", string(text), err)
	}
	d.Duration = parsed
	return nil
}

// MarshalText formats the duration as a Go duration string.
func (d Duration) MarshalText() ([]byte, error) {
	return []byte(d.String()), nil
}

// Config holds server and CLI settings. Zero values mean "use the default".
type Config struct {
	// Server
	Port    int    `json:"port,omitempty" yaml:"port,omitempty" validate:"min=0,max=65535"`
	LogMode string `json:"log_mode,omitempty" yaml:"log_mode,omitempty" validate:"omitempty,oneof=dev prod nop"`

	// Storage
	DatabaseURL string `json:"database_url,omitempty" yaml:"database_url,omitempty" validate:"omitempty,url"`
	RedisAddr   string `json:"redis_addr,omitempty" yaml:"redis_addr,omitempty" validate:"omitempty,hostname_port"`

	// Images
	UnsplashAccessKey string `json:"unsplash_access_key,omitempty" yaml:"unsplash_access_key,omitempty"`
	UnsplashBaseURL   string `json:"unsplash_base_url,omitempty" yaml:"unsplash_base_url,omitempty" validate:"omitempty,url"`
	ImageSearchURL    string `json:"image_search_url,omitempty" yaml:"image_search_url,omitempty" validate:"omitempty,contains={query}"`
	ImageCount        int    `json:"image_count,omitempty" yaml:"image_count,omitempty" validate:"min=0,max=20"`

	// Sports
	MLBAPIBaseURL string   `json:"mlb_api_base_url,omitempty" yaml:"mlb_api_base_url,omitempty" validate:"omitempty,url"`
	RosterTTL     Duration `json:"roster_ttl,omitempty" yaml:"roster_ttl,omitempty"`

	// Quiz
	DefaultTargetCount int      `json:"default_target_count,omitempty" yaml:"default_target_count,omitempty" validate:"min=0,max=200"`
	SessionMaxAge      Duration `json:"session_max_age,omitempty" yaml:"session_max_age,omitempty"`
}

// Default returns the baseline configuration.
func Default() Config {
	return Config{
		Port:               8080,
		LogMode:            "dev",
		UnsplashBaseURL:    "https://api.unsplash.com",
		ImageCount:         5,
		MLBAPIBaseURL:      "https://statsapi.mlb.com",
		RosterTTL:          Duration{30 * time.Minute},
		DefaultTargetCount: 24,
		SessionMaxAge:      Duration{6 * time.Hour},
	}
}

// LoadConfig loads configuration from a JSON or YAML file, chosen by extension.
func LoadConfig(path string) (*Config, error) {
	if path == "" {
		return nil, fmt.Errorf("config path is empty")
	}

	if !filepath.IsAbs(path) {
		cwd, err := os.Getwd()
		if err != nil {
			return nil, fmt.Errorf("failed to get current directory: %w", err)
		}
		path = filepath.Join(cwd, path)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, &LoadError{Path: path, Message: "failed to read config file", Cause: err}
	}

	var cfg Config
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return nil, &LoadError{Path: path, Message: "failed to parse config YAML", Cause: err}
		}
	default:
		if err := json.Unmarshal(data, &cfg); err != nil {
			return nil, &LoadError{Path: path, Message: "failed to parse config JSON", Cause: err}
		}
	}

	return &cfg, nil
}

// ApplyEnv overrides fields from environment variables that are set and non-empty.
func (c *Config) ApplyEnv() error {
	if v := os.Getenv("PORT"); v != "" {
		port, err := strconv.Atoi(v)
		if err != nil {
			return fmt.Errorf("config error: invalid PORT %q: %w", v, err)
		}
		c.Port = port
	}
	if v := os.Getenv("DATABASE_URL"); v != "" {
		c.DatabaseURL = v
	}
	if v := os.Getenv("REDIS_ADDR"); v != "" {
		c.RedisAddr = v
	}
	if v := os.Getenv("UNSPLASH_ACCESS_KEY"); v != "" {
		c.UnsplashAccessKey = v
	}
	if v := os.Getenv("LOG_MODE"); v != "" {
		c.LogMode = strings.ToLower(v)
	}
	if v := os.Getenv("MLB_API_BASE_URL"); v != "" {
		c.MLBAPIBaseURL = v
	}
	return nil
}

var validate = validator.New()

// Validate checks that the configuration has valid values.
func (c *Config) Validate() error {
	if err := validate.Struct(c); err != nil {
		var fieldErrs validator.ValidationErrors
		if errors.As(err, &fieldErrs) && len(fieldErrs) > 0 {
			fe := fieldErrs[0]
			return fmt.Errorf("config error: '%s' failed '%s' validation", fe.Field(), fe.Tag())
		}
		return fmt.Errorf("config error: %w", err)
	}
	if c.RosterTTL.Duration < 0 {
		return fmt.Errorf("config error: 'roster_ttl' must be non-negative")
	}
	if c.SessionMaxAge.Duration < 0 {
		return fmt.Errorf("config error: 'session_max_age' must be non-negative")
	}
	return nil
}

// MergeWithDefaults returns a new Config with zero fields filled from defaults.
func (c *Config) MergeWithDefaults(defaults Config) Config {
	result := *c

	if result.Port == 0 {
		result.Port = defaults.Port
	}
	if result.LogMode == "" {
		result.LogMode = defaults.LogMode
	}
	if result.DatabaseURL == "" {
		result.DatabaseURL = defaults.DatabaseURL
	}
	if result.RedisAddr == "" {
		result.RedisAddr = defaults.RedisAddr
	}
	if result.UnsplashAccessKey == "" {
		result.UnsplashAccessKey = defaults.UnsplashAccessKey
	}
	if result.UnsplashBaseURL == "" {
		result.UnsplashBaseURL = defaults.UnsplashBaseURL
	}
	if result.ImageSearchURL == "" {
		result.ImageSearchURL = defaults.ImageSearchURL
	}
	if result.ImageCount == 0 {
		result.ImageCount = defaults.ImageCount
	}
	if result.MLBAPIBaseURL == "" {
		result.MLBAPIBaseURL = defaults.MLBAPIBaseURL
	}
	if result.RosterTTL.Duration == 0 {
		result.RosterTTL = defaults.RosterTTL
	}
	if result.DefaultTargetCount == 0 {
		result.DefaultTargetCount = defaults.DefaultTargetCount
	}
	if result.SessionMaxAge.Duration == 0 {
		result.SessionMaxAge = defaults.SessionMaxAge
	}

	return result
}

// Load reads path (when non-empty), applies the environment, fills defaults and validates.
func Load(path string) (Config, error) {
	cfg := &Config{}
	if path != "" {
		loaded, err := LoadConfig(path)
		if err != nil {
			return Config{}, err
		}
		cfg = loaded
	}
	if err := cfg.ApplyEnv(); err != nil {
		return Config{}, err
	}
	merged := cfg.MergeWithDefaults(Default())
	if err := merged.Validate(); err != nil {
		return Config{}, err
	}
	return merged, nil
}
