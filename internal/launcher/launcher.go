// Package launcher opens a Cursor chat using the best available delivery
// mechanism. Three methods are tried in strict order: the cursor-agent
// CLI, System Events keystroke simulation (macOS only), and a plain
// editor launch as last resort. The first success ends the chain; every
// failure short of the last step is absorbed and the next method runs.
package launcher

import (
	"context"
	"fmt"
	"os"
	"runtime"
	"time"

	"github.com/Dicklesworthstone/occ/internal/applescript"
	"github.com/Dicklesworthstone/occ/internal/config"
	"github.com/Dicklesworthstone/occ/internal/output"
	"github.com/Dicklesworthstone/occ/internal/util"
)

// Method identifies which delivery mechanism handled a request.
type Method string

const (
	MethodNone      Method = "none"
	MethodAgentCLI  Method = "agent-cli"
	MethodKeystroke Method = "keystroke"
	MethodLaunch    Method = "launch"
)

// previewWidth bounds prompt echoes in status lines.
const previewWidth = 60

// Request describes one delivery attempt.
type Request struct {
	Prompt    string // resolved prompt; empty means "open an empty chat"
	Model     string // forwarded to the agent CLI as -m when set
	Workspace string // opened by the last-resort launch; defaults to cwd
}

// Result reports how a request was delivered.
type Result struct {
	Method          Method `json:"method"`
	PromptDelivered bool   `json:"prompt_delivered"` // prompt reached the chat, not just the app
	ManualSteps     bool   `json:"manual_steps"`     // user still has work to do
}

// Launcher runs the delivery chain. The zero value is not usable; call New.
type Launcher struct {
	cfg    *config.Config
	out    *output.Formatter
	run    CommandRunner
	script applescript.Runner
	goos   string
	sleep  func(time.Duration)
}

// Option customizes a Launcher, mainly for tests.
type Option func(*Launcher)

// WithCommandRunner replaces the os/exec-backed runner.
func WithCommandRunner(r CommandRunner) Option { return func(l *Launcher) { l.run = r } }

// WithScriptRunner replaces the osascript-backed AppleScript runner.
func WithScriptRunner(r applescript.Runner) Option { return func(l *Launcher) { l.script = r } }

// WithGOOS overrides platform detection.
func WithGOOS(goos string) Option { return func(l *Launcher) { l.goos = goos } }

// WithSleep replaces the settle pause between activation and keystrokes.
func WithSleep(fn func(time.Duration)) Option { return func(l *Launcher) { l.sleep = fn } }

// New creates a Launcher with the given config and output formatter.
func New(cfg *config.Config, out *output.Formatter, opts ...Option) *Launcher {
	l := &Launcher{
		cfg:    cfg,
		out:    out,
		run:    execRunner{},
		script: applescript.ExecRunner{},
		goos:   runtime.GOOS,
		sleep:  time.Sleep,
	}
	for _, opt := range opts {
		opt(l)
	}
	return l
}

// Open runs the delivery chain for req. It returns a non-nil error only
// when every method failed, which callers map to exit code 1.
func (l *Launcher) Open(ctx context.Context, req Request) (Result, error) {
	if req.Prompt != "" {
		if res, ok := l.tryAgentCLI(ctx, req); ok {
			return res, nil
		}
	}

	if l.goos == "darwin" {
		if res, ok := l.tryKeystrokes(ctx, req); ok {
			return res, nil
		}
	}

	return l.launchEditor(ctx, req)
}

// tryAgentCLI invokes the headless agent CLI with the prompt. Any failure
// (binary absent, timeout, non-zero exit) advances the chain; the cause
// only surfaces in verbose mode.
func (l *Launcher) tryAgentCLI(ctx context.Context, req Request) (Result, bool) {
	if _, err := l.run.LookPath(l.cfg.AgentCommand); err != nil {
		l.out.Debugf("%s not found, trying next method", l.cfg.AgentCommand)
		return Result{}, false
	}

	ctx, cancel := context.WithTimeout(ctx, l.cfg.Timeout())
	defer cancel()

	args := []string{"-p", req.Prompt}
	if req.Model != "" {
		args = append(args, "-m", req.Model)
	}
	if err := l.run.Run(ctx, l.cfg.AgentCommand, args...); err != nil {
		l.out.Debugf("%s failed: %v", l.cfg.AgentCommand, err)
		return Result{}, false
	}

	l.out.Success("Opened chat with %s CLI", l.cfg.AgentCommand)
	return Result{Method: MethodAgentCLI, PromptDelivered: true}, true
}

// tryKeystrokes activates the app and simulates Cmd+T, typed prompt,
// Enter. Activation failure falls through to the plain launch rather than
// aborting: the last resort can still open the workspace even when the
// app is not installed as a GUI application.
func (l *Launcher) tryKeystrokes(ctx context.Context, req Request) (Result, bool) {
	if _, err := l.script.RunScript(ctx, applescript.ActivateScript(l.cfg.App)); err != nil {
		l.out.Warn("Could not activate %s. Is it installed?", l.cfg.App)
		l.out.Debugf("activate failed: %v", err)
		return Result{}, false
	}

	// The UI exposes no ready signal after activation, only a settle pause.
	l.sleep(l.cfg.Delays.Activate())

	script := applescript.NewChatScript(l.cfg.App, req.Prompt, l.cfg.Delays.Focus(), l.cfg.Delays.Submit())
	if _, err := l.script.RunScript(ctx, script); err != nil {
		if applescript.IsPermissionError(err) {
			l.printPermissionHelp(req.Prompt)
			// The app is in the foreground, so the user can finish by hand.
			return Result{Method: MethodKeystroke, PromptDelivered: false, ManualSteps: true}, true
		}
		l.out.Warn("AppleScript method failed: %v", err)
		return Result{}, false
	}

	l.out.Success("Opened new chat in %s (using AppleScript)", l.cfg.App)
	if req.Prompt != "" {
		l.out.Detail("Prompt: %s", util.Preview(req.Prompt, previewWidth))
	}
	return Result{Method: MethodKeystroke, PromptDelivered: req.Prompt != ""}, true
}

// launchEditor opens the editor pointed at the workspace with no prompt
// delivery. This is the only step whose failure fails the whole chain.
func (l *Launcher) launchEditor(ctx context.Context, req Request) (Result, error) {
	workspace := req.Workspace
	if workspace == "" {
		if cwd, err := os.Getwd(); err == nil {
			workspace = cwd
		} else {
			workspace = "."
		}
	}

	if _, err := l.run.LookPath(l.cfg.EditorCommand); err != nil {
		l.out.Error("%s CLI not found.", l.cfg.EditorCommand)
		l.out.Detail("Install it with: curl https://cursor.com/install -fsS | bash")
		l.out.Detail("Or use the AppleScript method (macOS only)")
		return Result{Method: MethodNone}, err
	}

	// Non-zero exits are ignored: the editor CLI may return oddly while
	// still opening the window. Only a missing binary is fatal.
	if err := l.run.Run(ctx, l.cfg.EditorCommand, workspace); err != nil {
		l.out.Debugf("%s exited with error: %v", l.cfg.EditorCommand, err)
	}

	l.out.Success("Opened %s", l.cfg.App)
	if req.Prompt == "" {
		l.out.Hint("Press Cmd+T to open a new chat")
	} else {
		// The full prompt, wrapped, not a preview: the user has to paste it.
		l.out.Hint("Press Cmd+T and paste:")
		l.out.Wrapped("      ", req.Prompt)
	}
	return Result{Method: MethodLaunch, PromptDelivered: false, ManualSteps: true}, nil
}

func (l *Launcher) printPermissionHelp(prompt string) {
	l.out.Warn("macOS Accessibility Permission Required")
	l.out.Detail("To enable keystroke automation:")
	l.out.Detail("1. Open System Settings → Privacy & Security → Accessibility")
	l.out.Detail("2. Enable your terminal application")
	l.out.Wrapped("   ", "3. Or run occ from Terminal.app (it may already have permissions)")
	l.out.Line()
	l.out.Wrapped("   ", fmt.Sprintf("Alternatively, %s is now activated - press Cmd+T manually", l.cfg.App))
	if prompt != "" {
		l.out.Detail("Then paste this prompt:")
		l.out.Wrapped("   ", prompt)
	}
}
