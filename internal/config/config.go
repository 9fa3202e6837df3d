package config

import (
	"encoding/json"
	"fmt"
	"net/url"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/caarlos0/env/v11"

	"github.com/medsum/medsum/internal/errors"
)

const (
	// DefaultEndpoint is the summarization server used when none is configured.
	DefaultEndpoint = "http://localhost:8000"
	// DefaultTimeoutSeconds bounds a single summarization request.
	DefaultTimeoutSeconds = 60

	envPrefix = "MEDSUM_"
)

// Config holds the client configuration persisted in ~/.medsum/config.json.
type Config struct {
	Endpoint             string `json:"endpoint,omitempty"`              // Summarization server base URL
	TimeoutSeconds       int    `json:"timeout_seconds,omitempty"`       // Per-request timeout; 0 means the default
	Theme                string `json:"theme,omitempty"`                 // UI theme name (e.g., "clinic", "nord")
	NotificationsEnabled bool   `json:"notifications_enabled,omitempty"` // Desktop notification when a summary completes
	WelcomeShown         bool   `json:"welcome_shown,omitempty"`         // Whether the first-run hint has been shown

	// env holds MEDSUM_* overrides. They win over the file but are never saved.
	env envOverrides

	mu       sync.RWMutex
	filePath string
}

type envOverrides struct {
	Endpoint string        `env:"ENDPOINT"`
	Timeout  time.Duration `env:"TIMEOUT"`
	Theme    string        `env:"THEME"`
}

// configDir returns the path to the config directory
func configDir() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, ".medsum"), nil
}

// configPath returns the path to the config file
func configPath() (string, error) {
	dir, err := configDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, "config.json"), nil
}

// Load reads the config from disk, or returns defaults if it doesn't exist.
// MEDSUM_ENDPOINT, MEDSUM_TIMEOUT and MEDSUM_THEME override the file.
func Load() (*Config, error) {
	path, err := configPath()
	if err != nil {
		return nil, errors.ConfigLoadFailed("~/.medsum", err)
	}
	return LoadFrom(path, nil)
}

// LoadFrom reads the config at path. environ supplies the environment for
// overrides; nil means the process environment.
func LoadFrom(path string, environ map[string]string) (*Config, error) {
	cfg := &Config{filePath: path}

	data, err := os.ReadFile(path)
	switch {
	case os.IsNotExist(err):
	case err != nil:
		return nil, errors.ConfigLoadFailed(path, err)
	default:
		if err := json.Unmarshal(data, cfg); err != nil {
			return nil, errors.ConfigLoadFailed(path, err)
		}
	}

	opts := env.Options{Prefix: envPrefix, Environment: environ}
	if err := env.ParseWithOptions(&cfg.env, opts); err != nil {
		return nil, errors.ConfigLoadFailed(path, err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate checks that the effective settings are usable.
func (c *Config) Validate() error {
	if err := ValidateEndpoint(c.GetEndpoint()); err != nil {
		return err
	}

	c.mu.RLock()
	defer c.mu.RUnlock()
	if c.TimeoutSeconds < 0 {
		return errors.ConfigInvalid(fmt.Sprintf("timeout_seconds must not be negative, got %d", c.TimeoutSeconds))
	}
	if c.env.Timeout < 0 {
		return errors.ConfigInvalid(fmt.Sprintf("%sTIMEOUT must not be negative, got %s", envPrefix, c.env.Timeout))
	}
	return nil
}

// ValidateEndpoint checks that endpoint is an absolute http(s) URL.
func ValidateEndpoint(endpoint string) error {
	u, err := url.Parse(endpoint)
	if err != nil {
		return errors.ConfigInvalid(fmt.Sprintf("invalid endpoint %q: %v", endpoint, err))
	}
	if u.Scheme != "http" && u.Scheme != "https" {
		return errors.ConfigInvalid(fmt.Sprintf("endpoint %q must use http or https", endpoint))
	}
	if u.Host == "" {
		return errors.ConfigInvalid(fmt.Sprintf("endpoint %q has no host", endpoint))
	}
	return nil
}

// Save writes the config to disk
func (c *Config) Save() error {
	c.mu.RLock()
	defer c.mu.RUnlock()

	if err := os.MkdirAll(filepath.Dir(c.filePath), 0755); err != nil {
		return errors.ConfigSaveFailed(c.filePath, err)
	}

	data, err := json.MarshalIndent(c, "", "  ")
	if err != nil {
		return errors.ConfigSaveFailed(c.filePath, err)
	}

	if err := os.WriteFile(c.filePath, data, 0644); err != nil {
		return errors.ConfigSaveFailed(c.filePath, err)
	}
	return nil
}

// Path returns the file the config is saved to.
func (c *Config) Path() string {
	return c.filePath
}

// GetEndpoint returns the effective server URL.
func (c *Config) GetEndpoint() string {
	c.mu.RLock()
	defer c.mu.RUnlock()
	switch {
	case c.env.Endpoint != "":
		return c.env.Endpoint
	case c.Endpoint != "":
		return c.Endpoint
	default:
		return DefaultEndpoint
	}
}

// SetEndpoint sets the saved server URL
func (c *Config) SetEndpoint(endpoint string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.Endpoint = endpoint
}

// GetTimeout returns the effective per-request timeout.
func (c *Config) GetTimeout() time.Duration {
	c.mu.RLock()
	defer c.mu.RUnlock()
	switch {
	case c.env.Timeout > 0:
		return c.env.Timeout
	case c.TimeoutSeconds > 0:
		return time.Duration(c.TimeoutSeconds) * time.Second
	default:
		return DefaultTimeoutSeconds * time.Second
	}
}

// SetTimeoutSeconds sets the saved per-request timeout
func (c *Config) SetTimeoutSeconds(seconds int) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.TimeoutSeconds = seconds
}

// GetTheme returns the current theme name
func (c *Config) GetTheme() string {
	c.mu.RLock()
	defer c.mu.RUnlock()
	if c.env.Theme != "" {
		return c.env.Theme
	}
	return c.Theme
}

// SetTheme sets the current theme name
func (c *Config) SetTheme(theme string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.Theme = theme
}

// GetNotificationsEnabled returns whether desktop notifications are enabled
func (c *Config) GetNotificationsEnabled() bool {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.NotificationsEnabled
}

// SetNotificationsEnabled sets whether desktop notifications are enabled
func (c *Config) SetNotificationsEnabled(enabled bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.NotificationsEnabled = enabled
}

// HasSeenWelcome returns whether the first-run hint has been shown
func (c *Config) HasSeenWelcome() bool {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.WelcomeShown
}

// MarkWelcomeShown marks the first-run hint as shown
func (c *Config) MarkWelcomeShown() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.WelcomeShown = true
}
