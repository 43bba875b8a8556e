// Package config provides YAML-based configuration loading for Solace.
package config

import (
	"fmt"
	"os"
	"strings"

	"gopkg.in/yaml.v3"
)

// EnvAPIKey is the environment variable holding the completions API
// credential. It always overrides the config file; absence degrades the
// server to fallback mode rather than failing startup.
const EnvAPIKey = "OPENAI_API_KEY"

// Config is the top-level Solace configuration, loaded from config.yaml.
type Config struct {
	Server     ServerConfig     `yaml:"server"`
	Completion CompletionConfig `yaml:"completion"`
	Session    SessionConfig    `yaml:"session"`

	// APIKey comes from the environment, never from the file.
	APIKey string `yaml:"-"`
}

// ServerConfig holds HTTP listener settings.
type ServerConfig struct {
	Port int `yaml:"port"`
}

// CompletionConfig holds settings for the remote completions endpoint.
type CompletionConfig struct {
	BaseURL     string  `yaml:"base_url"`
	Model       string  `yaml:"model"`
	Temperature float64 `yaml:"temperature"`
	MaxTokens   int     `yaml:"max_tokens"`
}

// SessionConfig holds session-cookie settings.
type SessionConfig struct {
	CookieName   string `yaml:"cookie_name"`
	CookieMaxAge int    `yaml:"cookie_max_age"` // seconds
}

// Load reads a YAML config file from path and returns a validated
// Config. A missing file is not an error; defaults apply.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if !os.IsNotExist(err) {
			return nil, fmt.Errorf("config: read %s: %w", path, err)
		}
		data = nil
	}
	cfg, err := Parse(data)
	if err != nil {
		return nil, err
	}
	cfg.APIKey = os.Getenv(EnvAPIKey)
	return cfg, nil
}

// Parse unmarshals YAML bytes into a validated Config.
func Parse(data []byte) (*Config, error) {
	var cfg Config
	if len(data) > 0 {
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return nil, fmt.Errorf("config: parse: %w", err)
		}
	}
	cfg.applyDefaults()
	if err := cfg.validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// applyDefaults fills in default values.
func (c *Config) applyDefaults() {
	if c.Server.Port == 0 {
		c.Server.Port = 5000
	}
	if c.Completion.BaseURL == "" {
		c.Completion.BaseURL = "https://api.openai.com"
	}
	if c.Completion.Model == "" {
		c.Completion.Model = "gpt-3.5-turbo"
	}
	if c.Completion.Temperature == 0 {
		c.Completion.Temperature = 0.7
	}
	if c.Completion.MaxTokens == 0 {
		c.Completion.MaxTokens = 150
	}
	if c.Session.CookieName == "" {
		c.Session.CookieName = "session_id"
	}
	if c.Session.CookieMaxAge == 0 {
		c.Session.CookieMaxAge = 86400
	}
}

// validate checks that all fields are in range.
func (c *Config) validate() error {
	var errs []string
	if c.Server.Port < 1 || c.Server.Port > 65535 {
		errs = append(errs, "server.port must be between 1 and 65535")
	}
	if c.Completion.Temperature < 0 || c.Completion.Temperature > 2 {
		errs = append(errs, "completion.temperature must be between 0 and 2")
	}
	if c.Completion.MaxTokens < 1 {
		errs = append(errs, "completion.max_tokens must be positive")
	}
	if c.Session.CookieMaxAge < 1 {
		errs = append(errs, "session.cookie_max_age must be positive")
	}
	if len(errs) > 0 {
		return fmt.Errorf("config: validation failed: %s", strings.Join(errs, "; "))
	}
	return nil
}
