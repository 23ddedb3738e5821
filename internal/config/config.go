// Package config loads the dashboard configuration: an optional YAML file,
// overridden field by field by SCHOLARDESK_* environment variables. The
// backend URL and a 32-byte CSRF key are the only values without a usable
// default.
package config

import (
	"errors"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Config holds everything the server needs to start.
type Config struct {
	Addr           string   `yaml:"addr"`
	Env            string   `yaml:"env"` // development, production
	BackendURL     string   `yaml:"backend_url"`
	SessionDB      string   `yaml:"session_db"`
	CSRFKey        string   `yaml:"csrf_key"` // 32 bytes
	StaticDir      string   `yaml:"static_dir"`
	TrustedOrigins []string `yaml:"trusted_origins"`
}

// Domain errors
var (
	ErrMissingBackendURL = errors.New("config: backend_url is required")
	ErrBadCSRFKey        = errors.New("config: csrf_key must be exactly 32 bytes")
)

// Defaults applied before the file and environment are read.
func defaults() Config {
	return Config{
		Addr:      ":8080",
		Env:       "development",
		SessionDB: "scholardesk.db",
		StaticDir: "static",
	}
}

// Load reads path (if non-empty and present) and applies environment
// overrides on top.
// PRE: path is "" or a YAML file
// POST: returned Config passes Validate
func Load(path string) (Config, error) {
	cfg := defaults()

	if path != "" {
		raw, err := os.ReadFile(path)
		if err != nil {
			if !os.IsNotExist(err) {
				return Config{}, fmt.Errorf("config: read %s: %w", path, err)
			}
		} else if err := yaml.Unmarshal(raw, &cfg); err != nil {
			return Config{}, fmt.Errorf("config: parse %s: %w", path, err)
		}
	}

	applyEnv(&cfg)

	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

func applyEnv(cfg *Config) {
	setIfPresent(&cfg.Addr, "SCHOLARDESK_ADDR")
	setIfPresent(&cfg.Env, "SCHOLARDESK_ENV")
	setIfPresent(&cfg.BackendURL, "SCHOLARDESK_BACKEND_URL")
	setIfPresent(&cfg.SessionDB, "SCHOLARDESK_SESSION_DB")
	setIfPresent(&cfg.CSRFKey, "SCHOLARDESK_CSRF_KEY")
	setIfPresent(&cfg.StaticDir, "SCHOLARDESK_STATIC_DIR")
}

func setIfPresent(dst *string, key string) {
	if v := os.Getenv(key); v != "" {
		*dst = v
	}
}

// Validate checks that the required fields are usable.
func (c Config) Validate() error {
	if c.BackendURL == "" {
		return ErrMissingBackendURL
	}
	if len(c.CSRFKey) != 32 {
		return ErrBadCSRFKey
	}
	return nil
}

// Production reports whether the server runs with production hardening
// (Secure cookies, HTTPS-only CSRF).
func (c Config) Production() bool {
	return c.Env == "production"
}
