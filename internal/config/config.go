// Package config loads occ configuration from TOML.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/BurntSushi/toml"

	"github.com/Dicklesworthstone/occ/internal/notify"
)

// Config represents the main configuration.
type Config struct {
	App           string        `toml:"app"`            // Application name to activate on macOS
	EditorCommand string        `toml:"editor_command"` // CLI that opens the editor with a workspace
	AgentCommand  string        `toml:"agent_command"`  // Headless agent CLI tried first
	AgentTimeout  int           `toml:"agent_timeout"`  // Seconds to wait for the agent CLI
	RoleFile      string        `toml:"role_file"`      // Optional YAML file overriding role prompts
	Delays        DelayConfig   `toml:"delays"`
	Notifications notify.Config `toml:"notifications"`
}

// DelayConfig holds the pauses around keystroke simulation, in
// milliseconds. These are settle heuristics, not readiness signals: the
// UI gives no event to wait on. Raise them on slow machines if typed
// prompts come out garbled.
type DelayConfig struct {
	ActivateMS int `toml:"activate_ms"` // After activating the app, before sending keys
	FocusMS    int `toml:"focus_ms"`    // After Cmd+T, before typing the prompt
	SubmitMS   int `toml:"submit_ms"`   // After typing, before pressing Enter
}

// Activate returns the post-activation settle delay.
func (d DelayConfig) Activate() time.Duration { return time.Duration(d.ActivateMS) * time.Millisecond }

// Focus returns the post-Cmd+T delay.
func (d DelayConfig) Focus() time.Duration { return time.Duration(d.FocusMS) * time.Millisecond }

// Submit returns the pre-Enter delay.
func (d DelayConfig) Submit() time.Duration { return time.Duration(d.SubmitMS) * time.Millisecond }

// Timeout returns the agent CLI timeout.
func (c *Config) Timeout() time.Duration { return time.Duration(c.AgentTimeout) * time.Second }

// Default returns the built-in configuration.
func Default() *Config {
	return &Config{
		App:           "Cursor",
		EditorCommand: "cursor",
		AgentCommand:  "cursor-agent",
		AgentTimeout:  5,
		Delays: DelayConfig{
			ActivateMS: 500,
			FocusMS:    1000,
			SubmitMS:   500,
		},
		Notifications: notify.DefaultConfig(),
	}
}

// DefaultPath returns the config file location: $OCC_CONFIG,
// $XDG_CONFIG_HOME/occ/config.toml, or ~/.config/occ/config.toml.
func DefaultPath() string {
	if env := os.Getenv("OCC_CONFIG"); env != "" {
		return ExpandHome(env)
	}
	if xdg := os.Getenv("XDG_CONFIG_HOME"); xdg != "" {
		return filepath.Join(xdg, "occ", "config.toml")
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".config", "occ", "config.toml")
}

// Load reads the config at path, falling back to DefaultPath when path is
// empty. A missing file is not an error: defaults apply.
func Load(path string) (*Config, error) {
	if path == "" {
		path = DefaultPath()
	}

	cfg := Default()

	if data, err := os.ReadFile(path); err == nil {
		if err := toml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("parsing config: %w", err)
		}
	} else if !os.IsNotExist(err) {
		return nil, err
	}

	// Env > TOML > Default
	if app := os.Getenv("OCC_APP"); app != "" {
		cfg.App = app
	}
	if editor := os.Getenv("OCC_EDITOR_COMMAND"); editor != "" {
		cfg.EditorCommand = editor
	}
	if agent := os.Getenv("OCC_AGENT_COMMAND"); agent != "" {
		cfg.AgentCommand = agent
	}
	if timeout := os.Getenv("OCC_AGENT_TIMEOUT"); timeout != "" {
		if n, err := strconv.Atoi(timeout); err == nil && n > 0 {
			cfg.AgentTimeout = n
		}
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate rejects values the launcher cannot work with.
func (c *Config) Validate() error {
	if strings.TrimSpace(c.App) == "" {
		return fmt.Errorf("app must not be empty")
	}
	if strings.TrimSpace(c.EditorCommand) == "" {
		return fmt.Errorf("editor_command must not be empty")
	}
	if strings.TrimSpace(c.AgentCommand) == "" {
		return fmt.Errorf("agent_command must not be empty")
	}
	if c.AgentTimeout <= 0 {
		return fmt.Errorf("agent_timeout must be positive, got %d", c.AgentTimeout)
	}
	for _, d := range []struct {
		name string
		ms   int
	}{
		{"delays.activate_ms", c.Delays.ActivateMS},
		{"delays.focus_ms", c.Delays.FocusMS},
		{"delays.submit_ms", c.Delays.SubmitMS},
	} {
		if d.ms < 0 {
			return fmt.Errorf("%s must not be negative, got %d", d.name, d.ms)
		}
	}
	return nil
}

// ExpandHome expands a leading ~ to the user's home directory.
func ExpandHome(path string) string {
	if path == "~" {
		home, err := os.UserHomeDir()
		if err == nil {
			return home
		}
		return path
	}

	if strings.HasPrefix(path, "~/") {
		home, err := os.UserHomeDir()
		if err == nil {
			return filepath.Join(home, path[2:])
		}
	}

	return path
}
