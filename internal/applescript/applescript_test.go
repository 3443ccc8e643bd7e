package applescript

import (
	"errors"
	"strings"
	"testing"
	"time"
)

func TestEscape(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{"plain", "hello world", "hello world"},
		{"quote", `say "hi"`, `say \"hi\"`},
		{"backslash", `a\b`, `a\\b`},
		{"backslash then quote", `a\"b`, `a\\\"b`},
		{"escaped quote sequence", `\"`, `\\\"`},
		{"empty", "", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Escape(tt.input)
			if got != tt.expected {
				t.Errorf("Escape(%q) = %q, want %q", tt.input, got, tt.expected)
			}
		})
	}
}

// Backslash escaping must run before quote escaping. If the order were
// reversed, `"` would become `\\"` instead of `\"`.
func TestEscapeOrder(t *testing.T) {
	if got := Escape(`"`); got != `\"` {
		t.Errorf("Escape(%q) = %q, want %q", `"`, got, `\"`)
	}
}

func TestActivateScript(t *testing.T) {
	got := ActivateScript("Cursor")
	want := `tell application "Cursor" to activate`
	if got != want {
		t.Errorf("ActivateScript = %q, want %q", got, want)
	}
}

func TestNewChatScriptWithPrompt(t *testing.T) {
	script := NewChatScript("Cursor", `fix "this"`, time.Second, 500*time.Millisecond)

	for _, want := range []string{
		`tell process "Cursor"`,
		`keystroke "t" using command down`,
		"delay 1",
		`keystroke "fix \"this\""`,
		"delay 0.5",
		"key code 36",
	} {
		if !strings.Contains(script, want) {
			t.Errorf("script missing %q:\n%s", want, script)
		}
	}

	// Keystrokes must come in order: new tab, type, submit.
	tab := strings.Index(script, `keystroke "t"`)
	typed := strings.Index(script, `keystroke "fix`)
	enter := strings.Index(script, "key code 36")
	if !(tab < typed && typed < enter) {
		t.Errorf("keystroke order wrong: tab=%d typed=%d enter=%d", tab, typed, enter)
	}
}

func TestNewChatScriptEmptyPrompt(t *testing.T) {
	script := NewChatScript("Cursor", "", time.Second, 500*time.Millisecond)

	if !strings.Contains(script, `keystroke "t" using command down`) {
		t.Errorf("script should still open a new tab:\n%s", script)
	}
	if strings.Contains(script, "key code 36") {
		t.Errorf("empty prompt must not be submitted:\n%s", script)
	}
	if strings.Contains(script, "delay") {
		t.Errorf("empty prompt needs no delays:\n%s", script)
	}
}

func TestIsPermissionError(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want bool
	}{
		{"nil", nil, false},
		{"keystroke denied", errors.New(`osascript: exit status 1: System Events got an error: occ is not allowed to send keystrokes. (1002)`), true},
		{"numeric code only", errors.New("osascript: exit status 1: error -1002"), true},
		{"other failure", errors.New("osascript: exit status 1: syntax error"), false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := IsPermissionError(tt.err); got != tt.want {
				t.Errorf("IsPermissionError(%v) = %v, want %v", tt.err, got, tt.want)
			}
		})
	}
}
