// Package notify sends optional desktop notifications about delivery
// outcomes. Off by default; useful when occ runs from scripts or editor
// tasks where its terminal output is not visible.
package notify

import (
	"context"
	"fmt"
	"os/exec"
	"runtime"
	"time"

	"github.com/Dicklesworthstone/occ/internal/applescript"
)

const sendTimeout = 3 * time.Second

// Config holds desktop notification settings.
type Config struct {
	Enabled bool   `toml:"enabled"`
	Title   string `toml:"title"` // Title prefix (default "occ")
}

// DefaultConfig returns the default notification configuration.
func DefaultConfig() Config {
	return Config{Enabled: false, Title: "occ"}
}

// Send delivers a desktop notification. Returns an error on unsupported
// platforms; callers treat any failure here as non-fatal.
func Send(cfg Config, message string) error {
	title := cfg.Title
	if title == "" {
		title = "occ"
	}

	ctx, cancel := context.WithTimeout(context.Background(), sendTimeout)
	defer cancel()

	switch runtime.GOOS {
	case "darwin":
		return sendMacOS(ctx, title, message)
	case "linux":
		return sendLinux(ctx, title, message)
	default:
		return fmt.Errorf("desktop notifications not supported on %s", runtime.GOOS)
	}
}

func sendMacOS(ctx context.Context, title, message string) error {
	cmd := exec.CommandContext(ctx, "osascript", "-e", Script(title, message))
	return cmd.Run()
}

func sendLinux(ctx context.Context, title, message string) error {
	if _, err := exec.LookPath("notify-send"); err != nil {
		return fmt.Errorf("notify-send not found")
	}
	cmd := exec.CommandContext(ctx, "notify-send", title, message)
	return cmd.Run()
}

// Script builds the osascript source for a macOS notification.
func Script(title, message string) string {
	return fmt.Sprintf(`display notification "%s" with title "%s"`,
		applescript.Escape(message), applescript.Escape(title))
}
