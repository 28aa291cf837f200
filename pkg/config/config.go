package config

import (
	"fmt"
	"os"
	"time"

	"gopkg.in/yaml.v3"
)

//go:generate go run ../../cmd/schema/main.go schema.json

// run modes for the panel. Development mode swaps the backend transport for
// canned responses so the UI can be developed without a live controller.
const (
	ModeProduction  = "production"
	ModeDevelopment = "development"
)

// Config holds the application configuration
type Config struct {
	Server struct {
		Listen  string        `yaml:"listen" json:"listen" jsonschema:"default=:8080,description=Local panel API listen address"`
		Timeout time.Duration `yaml:"timeout" json:"timeout" jsonschema:"default=30s,description=Local panel API read/write timeout"`
	} `yaml:"server" json:"server" jsonschema:"description=Local panel API configuration"`

	Backend struct {
		URL       string `yaml:"url" json:"url" jsonschema:"default=http://localhost:5000,description=Heat-pump controller base URL"`
		APIKeyEnv string `yaml:"api_key_env" json:"api_key_env" jsonschema:"default=PUMPPANEL_API_KEY,description=Environment variable holding the fallback API key"`
	} `yaml:"backend" json:"backend" jsonschema:"description=Heat-pump controller backend"`

	Storage struct {
		DSN             string `yaml:"dsn" json:"dsn" jsonschema:"default=file:pumppanel.db?cache=shared&mode=rwc,description=Local storage connection string"`
		MaxOpenConns    int    `yaml:"max_open_conns" json:"max_open_conns" jsonschema:"default=10,description=Maximum number of open connections"`
		MaxIdleConns    int    `yaml:"max_idle_conns" json:"max_idle_conns" jsonschema:"default=5,description=Maximum number of idle connections"`
		ConnMaxLifetime int    `yaml:"conn_max_lifetime" json:"conn_max_lifetime" jsonschema:"default=3600,description=Connection maximum lifetime in seconds"`
	} `yaml:"storage" json:"storage" jsonschema:"description=Local storage configuration"`

	Settings struct {
		DebounceWindow time.Duration `yaml:"debounce_window" json:"debounce_window" jsonschema:"default=500ms,description=Quiescence window before edited settings are persisted"`
	} `yaml:"settings" json:"settings" jsonschema:"description=Settings store configuration"`

	Mode string `yaml:"mode" json:"mode" jsonschema:"default=production,description=Run mode: production or development"`
}

// Load reads configuration from a YAML file
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path) //nolint:gosec // file path comes from CLI flag
	if err != nil {
		return nil, fmt.Errorf("read config file: %w", err)
	}

	// expand environment variables
	expanded := os.ExpandEnv(string(data))

	var cfg Config
	if err := yaml.Unmarshal([]byte(expanded), &cfg); err != nil {
		return nil, fmt.Errorf("parse config: %w", err)
	}

	cfg.setDefaults()

	// validate configuration
	if err := validate(&cfg); err != nil {
		return nil, fmt.Errorf("validate config: %w", err)
	}

	// verify against embedded schema
	if err := VerifyAgainstEmbeddedSchema(&cfg); err != nil {
		// log warning but don't fail - schema validation is supplementary
		fmt.Printf("warning: schema validation failed: %v\n", err)
	}

	return &cfg, nil
}

// Default returns a configuration with all defaults applied, used when no
// config file is given
func Default() *Config {
	cfg := &Config{}
	cfg.setDefaults()
	return cfg
}

func (c *Config) setDefaults() {
	// set defaults for server
	if c.Server.Listen == "" {
		c.Server.Listen = ":8080"
	}
	if c.Server.Timeout == 0 {
		c.Server.Timeout = 30 * time.Second
	}

	// set defaults for backend
	if c.Backend.URL == "" {
		c.Backend.URL = "http://localhost:5000"
	}
	if c.Backend.APIKeyEnv == "" {
		c.Backend.APIKeyEnv = "PUMPPANEL_API_KEY"
	}

	// set defaults for storage
	if c.Storage.DSN == "" {
		c.Storage.DSN = "file:pumppanel.db?cache=shared&mode=rwc&_txlock=immediate"
	}
	if c.Storage.MaxOpenConns == 0 {
		c.Storage.MaxOpenConns = 10
	}
	if c.Storage.MaxIdleConns == 0 {
		c.Storage.MaxIdleConns = 5
	}
	if c.Storage.ConnMaxLifetime == 0 {
		c.Storage.ConnMaxLifetime = 3600
	}

	// set defaults for settings store
	if c.Settings.DebounceWindow == 0 {
		c.Settings.DebounceWindow = 500 * time.Millisecond
	}

	if c.Mode == "" {
		c.Mode = ModeProduction
	}
}

// validate checks configuration for correctness
func validate(cfg *Config) error {
	// validate backend config
	if cfg.Backend.URL == "" {
		return fmt.Errorf("backend.url is required")
	}

	// validate settings config
	if cfg.Settings.DebounceWindow < 0 {
		return fmt.Errorf("settings.debounce_window must be non-negative")
	}

	// validate server config
	if cfg.Server.Timeout < time.Second {
		return fmt.Errorf("server timeout must be at least 1 second")
	}

	if cfg.Mode != ModeProduction && cfg.Mode != ModeDevelopment {
		return fmt.Errorf("mode must be %q or %q, got %q", ModeProduction, ModeDevelopment, cfg.Mode)
	}

	return nil
}

// DevMode reports whether the panel runs with the canned development backend
func (c *Config) DevMode() bool {
	return c.Mode == ModeDevelopment
}

// GetServerConfig returns server configuration
func (c *Config) GetServerConfig() (listen string, timeout time.Duration) {
	return c.Server.Listen, c.Server.Timeout
}
