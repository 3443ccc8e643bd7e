// Package applescript builds and runs the System Events scripts occ uses
// to drive the Cursor UI on macOS.
//
// Cursor has no scripting dictionary, so the chat shortcuts go through
// System Events keystroke simulation, which requires Accessibility
// permissions. Script execution is behind the Runner interface so tests
// never shell out to osascript.
package applescript

import (
	"bytes"
	"context"
	"fmt"
	"os/exec"
	"strconv"
	"strings"
	"time"
)

// Runner executes an AppleScript and returns its output.
type Runner interface {
	RunScript(ctx context.Context, script string) (string, error)
}

// ExecRunner runs scripts with the real osascript binary.
type ExecRunner struct{}

// RunScript executes the script via `osascript -e`. Stderr is folded into
// the returned error so callers can classify failures.
func (ExecRunner) RunScript(ctx context.Context, script string) (string, error) {
	cmd := exec.CommandContext(ctx, "osascript", "-e", script)
	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	if err := cmd.Run(); err != nil {
		return "", fmt.Errorf("osascript: %w: %s", err, strings.TrimSpace(stderr.String()))
	}
	return strings.TrimSpace(stdout.String()), nil
}

// Escape escapes a string for embedding in a double-quoted AppleScript
// literal. Backslashes must be doubled before quotes are escaped; the
// reverse order would double the backslashes the quote escaping adds.
func Escape(s string) string {
	s = strings.ReplaceAll(s, `\`, `\\`)
	return strings.ReplaceAll(s, `"`, `\"`)
}

// ActivateScript brings the application to the foreground, launching it
// if needed.
func ActivateScript(app string) string {
	return fmt.Sprintf(`tell application "%s" to activate`, Escape(app))
}

// NewChatScript opens a new chat tab (Cmd+T) in the application's process
// and, when prompt is non-empty, types it and submits with Enter
// (key code 36). focusDelay runs after Cmd+T so the chat input is ready
// before typing starts; submitDelay runs before Enter.
func NewChatScript(app, prompt string, focusDelay, submitDelay time.Duration) string {
	var b strings.Builder
	fmt.Fprintf(&b, "tell application \"System Events\"\n")
	fmt.Fprintf(&b, "\ttell process \"%s\"\n", Escape(app))
	fmt.Fprintf(&b, "\t\tkeystroke \"t\" using command down\n")
	if prompt != "" {
		fmt.Fprintf(&b, "\t\tdelay %s\n", formatDelay(focusDelay))
		fmt.Fprintf(&b, "\t\tkeystroke \"%s\"\n", Escape(prompt))
		fmt.Fprintf(&b, "\t\tdelay %s\n", formatDelay(submitDelay))
		fmt.Fprintf(&b, "\t\tkey code 36\n")
	}
	fmt.Fprintf(&b, "\tend tell\n")
	fmt.Fprintf(&b, "end tell")
	return b.String()
}

// formatDelay renders a duration as an AppleScript delay value in seconds.
func formatDelay(d time.Duration) string {
	return strconv.FormatFloat(d.Seconds(), 'f', -1, 64)
}

// IsPermissionError reports whether an osascript failure was caused by
// missing macOS Accessibility permissions. osascript reports these as
// "not allowed to send keystrokes" with error code -1002.
func IsPermissionError(err error) bool {
	if err == nil {
		return false
	}
	msg := err.Error()
	return strings.Contains(msg, "not allowed to send keystrokes") || strings.Contains(msg, "1002")
}
