package config

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"gopkg.in/yaml.v3"
)

// Config holds the entire configuration for the delivery console.
type Config struct {
	Console ConsoleConfig `yaml:"console" mapstructure:"console"`
	Backend BackendConfig `yaml:"backend" mapstructure:"backend"`
	Polling PollingConfig `yaml:"polling" mapstructure:"polling"`
}

// ConsoleConfig holds the HTTP server settings of the console itself.
type ConsoleConfig struct {
	Port           int           `yaml:"port" mapstructure:"port"`
	RequestTimeout time.Duration `yaml:"request_timeout" mapstructure:"request_timeout"`
}

// BackendConfig points at the task-execution backend the console monitors.
type BackendConfig struct {
	BaseURL string        `yaml:"base_url" mapstructure:"base_url"`
	Timeout time.Duration `yaml:"timeout" mapstructure:"timeout"`
	Token   string        `yaml:"token" mapstructure:"token"`
}

// PollingConfig controls the per-view refresh loops. Each view polls
// independently at a fixed interval; a slower response may overwrite a view
// with staler data, which is accepted rather than ordered.
type PollingConfig struct {
	Interval time.Duration `yaml:"interval" mapstructure:"interval"`
}

// DefaultConfigPath is the default path for the console configuration file.
const DefaultConfigPath = "console.yaml"

// ApplyDefaults fills unset fields with working defaults.
func (c *Config) ApplyDefaults() {
	if c.Console.Port == 0 {
		c.Console.Port = 8090
	}
	if c.Console.RequestTimeout == 0 {
		c.Console.RequestTimeout = 10 * time.Second
	}
	if c.Backend.BaseURL == "" {
		c.Backend.BaseURL = "http://localhost:8080"
	}
	if c.Backend.Timeout == 0 {
		c.Backend.Timeout = 5 * time.Second
	}
	if c.Polling.Interval == 0 {
		c.Polling.Interval = 2 * time.Second
	}
}

// Validate rejects configurations the server cannot start with.
func (c *Config) Validate() error {
	if c.Console.Port <= 0 || c.Console.Port > 65535 {
		return fmt.Errorf("console.port %d out of range", c.Console.Port)
	}
	if c.Backend.BaseURL == "" {
		return fmt.Errorf("backend.base_url is required")
	}
	if c.Polling.Interval <= 0 {
		return fmt.Errorf("polling.interval must be positive")
	}
	return nil
}

// LoadConfig reads the configuration from the given path or default paths.
// A missing file at the default locations is not an error; defaults apply.
func LoadConfig(configPath string) (*Config, error) {
	explicit := configPath != ""
	if configPath == "" {
		configPath = DefaultConfigPath
	}

	if _, err := os.Stat(configPath); os.IsNotExist(err) {
		altPath := filepath.Join("config", "console.yaml")
		if _, err2 := os.Stat(altPath); err2 == nil {
			configPath = altPath
		} else if explicit {
			return nil, fmt.Errorf("configuration file not found at %s: %w", configPath, err)
		} else {
			cfg := &Config{}
			cfg.ApplyDefaults()
			return cfg, nil
		}
	}

	data, err := os.ReadFile(configPath)
	if err != nil {
		return nil, fmt.Errorf("failed to read configuration file %s: %w", configPath, err)
	}

	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse configuration file %s: %w", configPath, err)
	}

	cfg.ApplyDefaults()
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return &cfg, nil
}
