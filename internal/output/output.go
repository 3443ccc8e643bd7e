// Package output handles user-facing CLI output for occ.
//
// All status messages go through a Formatter so commands never write to
// stdout directly. That keeps --json mode clean: machine output is the
// only thing printed to stdout, human chatter can be suppressed entirely.
package output

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/muesli/reflow/wordwrap"
	"golang.org/x/term"

	"github.com/Dicklesworthstone/occ/internal/tui/theme"
)

const defaultWidth = 80

// Formatter writes human-readable status messages.
type Formatter struct {
	writer  io.Writer
	verbose bool
}

// NewFormatter creates a formatter writing to w.
func NewFormatter(w io.Writer) *Formatter {
	return &Formatter{writer: w}
}

// SetVerbose enables debug-level messages.
func (f *Formatter) SetVerbose(v bool) { f.verbose = v }

// Textln outputs plain text with a newline to the formatter's writer
func (f *Formatter) Textln(format string, args ...interface{}) {
	fmt.Fprintf(f.writer, format+"\n", args...)
}

// Line outputs a blank line
func (f *Formatter) Line() {
	fmt.Fprintln(f.writer)
}

// Success reports a completed delivery step.
func (f *Formatter) Success(format string, args ...interface{}) {
	t := theme.Current()
	fmt.Fprintln(f.writer, t.Success.Render("✅ "+fmt.Sprintf(format, args...)))
}

// Warn reports a non-fatal problem before falling back to the next method.
func (f *Formatter) Warn(format string, args ...interface{}) {
	t := theme.Current()
	fmt.Fprintln(f.writer, t.Warning.Render("⚠️  "+fmt.Sprintf(format, args...)))
}

// Error reports a failure that ends the fallback chain.
func (f *Formatter) Error(format string, args ...interface{}) {
	t := theme.Current()
	fmt.Fprintln(f.writer, t.Error.Render("❌ "+fmt.Sprintf(format, args...)))
}

// Hint prints an indented follow-up suggestion for the user.
func (f *Formatter) Hint(format string, args ...interface{}) {
	t := theme.Current()
	fmt.Fprintln(f.writer, t.Dim.Render("   💡 "+fmt.Sprintf(format, args...)))
}

// Detail prints an indented secondary line under a status message.
func (f *Formatter) Detail(format string, args ...interface{}) {
	t := theme.Current()
	fmt.Fprintln(f.writer, t.Dim.Render("   "+fmt.Sprintf(format, args...)))
}

// Debugf prints diagnostics only when verbose mode is on. The fallback
// chain swallows failure causes by design; this is where they surface.
func (f *Formatter) Debugf(format string, args ...interface{}) {
	if !f.verbose {
		return
	}
	t := theme.Current()
	fmt.Fprintln(f.writer, t.Dim.Render("· "+fmt.Sprintf(format, args...)))
}

// Wrapped prints text word-wrapped to the terminal width, each line
// prefixed with indent and dimmed like Detail. Used for guidance text
// that must survive in full, such as a prompt the user still has to
// paste by hand.
func (f *Formatter) Wrapped(indent, text string) {
	t := theme.Current()
	width := TerminalWidth() - len(indent)
	if width < 20 {
		width = 20
	}
	for _, line := range strings.Split(wordwrap.String(text, width), "\n") {
		fmt.Fprintln(f.writer, t.Dim.Render(indent+line))
	}
}

// TerminalWidth returns the current terminal width, or a default when
// stdout is not a terminal.
func TerminalWidth() int {
	w, _, err := term.GetSize(int(os.Stdout.Fd()))
	if err != nil || w <= 0 {
		return defaultWidth
	}
	return w
}

// PrintJSON marshals v with indentation and writes it to stdout.
// Used by every command in --json mode.
func PrintJSON(v interface{}) error {
	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}
