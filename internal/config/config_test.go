package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

func TestDefault(t *testing.T) {
	cfg := Default()

	if cfg.App != "Cursor" {
		t.Errorf("App = %q, want %q", cfg.App, "Cursor")
	}
	if cfg.EditorCommand != "cursor" {
		t.Errorf("EditorCommand = %q, want %q", cfg.EditorCommand, "cursor")
	}
	if cfg.AgentCommand != "cursor-agent" {
		t.Errorf("AgentCommand = %q, want %q", cfg.AgentCommand, "cursor-agent")
	}
	if cfg.Timeout() != 5*time.Second {
		t.Errorf("Timeout = %v, want %v", cfg.Timeout(), 5*time.Second)
	}
	if cfg.Delays.Activate() != 500*time.Millisecond {
		t.Errorf("Activate delay = %v, want %v", cfg.Delays.Activate(), 500*time.Millisecond)
	}
	if cfg.Delays.Focus() != time.Second {
		t.Errorf("Focus delay = %v, want %v", cfg.Delays.Focus(), time.Second)
	}
	if cfg.Delays.Submit() != 500*time.Millisecond {
		t.Errorf("Submit delay = %v, want %v", cfg.Delays.Submit(), 500*time.Millisecond)
	}
	if cfg.Notifications.Enabled {
		t.Error("notifications should default off")
	}
	if err := cfg.Validate(); err != nil {
		t.Errorf("default config should validate: %v", err)
	}
}

func TestLoadMissingFileUsesDefaults(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "nope.toml"))
	if err != nil {
		t.Fatalf("Load missing file: %v", err)
	}
	if cfg.App != "Cursor" {
		t.Errorf("App = %q, want default", cfg.App)
	}
}

func TestLoadOverridesDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")
	content := `
app = "Cursor Nightly"
agent_timeout = 10

[delays]
focus_ms = 1500

[notifications]
enabled = true
title = "chat"
`
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}

	if cfg.App != "Cursor Nightly" {
		t.Errorf("App = %q", cfg.App)
	}
	if cfg.Timeout() != 10*time.Second {
		t.Errorf("Timeout = %v", cfg.Timeout())
	}
	if cfg.Delays.Focus() != 1500*time.Millisecond {
		t.Errorf("Focus = %v", cfg.Delays.Focus())
	}
	// Untouched fields keep defaults.
	if cfg.Delays.Submit() != 500*time.Millisecond {
		t.Errorf("Submit = %v, want default", cfg.Delays.Submit())
	}
	if cfg.EditorCommand != "cursor" {
		t.Errorf("EditorCommand = %q, want default", cfg.EditorCommand)
	}
	if !cfg.Notifications.Enabled || cfg.Notifications.Title != "chat" {
		t.Errorf("Notifications = %+v", cfg.Notifications)
	}
}

func TestLoadEnvOverrides(t *testing.T) {
	t.Setenv("OCC_AGENT_COMMAND", "my-agent")
	t.Setenv("OCC_AGENT_TIMEOUT", "30")

	cfg, err := Load(filepath.Join(t.TempDir(), "nope.toml"))
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.AgentCommand != "my-agent" {
		t.Errorf("AgentCommand = %q", cfg.AgentCommand)
	}
	if cfg.AgentTimeout != 30 {
		t.Errorf("AgentTimeout = %d", cfg.AgentTimeout)
	}
}

func TestLoadRejectsBadConfig(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")
	if err := os.WriteFile(path, []byte(`agent_timeout = -1`), 0o644); err != nil {
		t.Fatal(err)
	}
	if _, err := Load(path); err == nil {
		t.Error("negative timeout should fail validation")
	}
}

func TestExpandHome(t *testing.T) {
	home, err := os.UserHomeDir()
	if err != nil {
		t.Skip("Cannot get user home dir")
	}

	tests := []struct {
		input    string
		expected string
	}{
		{"~", home},
		{"~/foo", filepath.Join(home, "foo")},
		{"/abs/path", "/abs/path"},
		{"rel/path", "rel/path"},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got := ExpandHome(tt.input)
			if got != tt.expected {
				t.Errorf("ExpandHome(%q) = %q, want %q", tt.input, got, tt.expected)
			}
		})
	}
}
