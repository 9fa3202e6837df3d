package ui

import (
	"path/filepath"
	"testing"
	"time"

	"github.com/medsum/medsum/internal/config"
)

func newTestConfig(t *testing.T) *config.Config {
	t.Helper()
	cfg, err := config.LoadFrom(filepath.Join(t.TempDir(), "config.json"), map[string]string{})
	if err != nil {
		t.Fatalf("LoadFrom: %v", err)
	}
	return cfg
}

func TestSettingsFromConfig(t *testing.T) {
	cfg := newTestConfig(t)
	cfg.SetTheme("not-a-theme")

	s := SettingsFromConfig(cfg)
	if s.Endpoint != config.DefaultEndpoint {
		t.Errorf("Endpoint = %q", s.Endpoint)
	}
	if s.Timeout != "60" {
		t.Errorf("Timeout = %q, want 60", s.Timeout)
	}
	if s.Theme != string(DefaultTheme) {
		t.Errorf("unknown theme should map to default, got %q", s.Theme)
	}
}

func TestSettings_Apply(t *testing.T) {
	cfg := newTestConfig(t)
	s := &Settings{
		Endpoint:      " https://sum.example.com ",
		Timeout:       "15",
		Theme:         string(ThemeNord),
		Notifications: true,
	}

	if err := s.Apply(cfg); err != nil {
		t.Fatalf("Apply: %v", err)
	}
	if cfg.GetEndpoint() != "https://sum.example.com" {
		t.Errorf("endpoint = %q", cfg.GetEndpoint())
	}
	if cfg.GetTimeout() != 15*time.Second {
		t.Errorf("timeout = %v", cfg.GetTimeout())
	}
	if cfg.GetTheme() != "nord" || !cfg.GetNotificationsEnabled() {
		t.Error("theme or notifications not applied")
	}
}

func TestSettings_ApplyRejectsBadTimeout(t *testing.T) {
	for _, v := range []string{"", "0", "-5", "soon"} {
		cfg := newTestConfig(t)
		s := &Settings{Endpoint: config.DefaultEndpoint, Timeout: v}
		if err := s.Apply(cfg); err == nil {
			t.Errorf("Apply with timeout %q should fail", v)
		}
		if cfg.GetTimeout() != config.DefaultTimeoutSeconds*time.Second {
			t.Errorf("rejected Apply must not change the config")
		}
	}
}

func TestNewSettingsForm(t *testing.T) {
	s := &Settings{Endpoint: config.DefaultEndpoint, Timeout: "60", Theme: string(DefaultTheme)}
	if NewSettingsForm(s) == nil {
		t.Fatal("NewSettingsForm returned nil")
	}
}
