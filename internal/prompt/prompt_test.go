package prompt

import (
	"os"
	"path/filepath"
	"reflect"
	"testing"
)

func TestResolveRolePrompts(t *testing.T) {
	table := DefaultTable()

	tests := []struct {
		role     Role
		expected string
	}{
		{RoleSWE, "run swe agent"},
		{RoleQA, "Use @.cursor/rules/qa-agent.mdc"},
		{RolePM, "Use @.cursor/rules/pm-agent.mdc"},
		{RoleDocs, "run docs agent"},
	}

	for _, tt := range tests {
		t.Run(string(tt.role), func(t *testing.T) {
			got := Resolve(table, Options{Role: tt.role})
			if got != tt.expected {
				t.Errorf("Resolve(role=%s) = %q, want %q", tt.role, got, tt.expected)
			}
		})
	}
}

func TestResolveExplicitPromptWins(t *testing.T) {
	table := DefaultTable()
	got := Resolve(table, Options{Prompt: "refactor this", Role: RoleQA})
	if got != "refactor this" {
		t.Errorf("explicit prompt should win over role, got %q", got)
	}
}

func TestResolveModelAnnotation(t *testing.T) {
	table := DefaultTable()

	tests := []struct {
		name     string
		opts     Options
		expected string
	}{
		{"prompt with model", Options{Prompt: "fix bug", Model: "claude-3.5-sonnet"}, "fix bug (model: claude-3.5-sonnet)"},
		{"role with model", Options{Role: RoleSWE, Model: "gpt-4"}, "run swe agent (model: gpt-4)"},
		{"model only", Options{Model: "gpt-4"}, "(model: gpt-4)"},
		{"nothing", Options{}, ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Resolve(table, tt.opts)
			if got != tt.expected {
				t.Errorf("Resolve(%+v) = %q, want %q", tt.opts, got, tt.expected)
			}
		})
	}
}

func TestParse(t *testing.T) {
	table := DefaultTable()

	if _, err := table.Parse("swe"); err != nil {
		t.Errorf("Parse(swe): %v", err)
	}
	if _, err := table.Parse("builder"); err == nil {
		t.Error("Parse(builder) should fail")
	}
}

func TestRolesSorted(t *testing.T) {
	got := DefaultTable().Roles()
	want := []Role{RoleDocs, RolePM, RoleQA, RoleSWE}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("Roles() = %v, want %v", got, want)
	}
}

func TestLoadFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "agents.yaml")
	content := `
roles:
  swe: "Use @.cursor/rules/swe-agent.mdc"
  security: "Use @.cursor/rules/security-agent.mdc"
`
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}

	table := DefaultTable()
	if err := table.LoadFile(path); err != nil {
		t.Fatalf("LoadFile: %v", err)
	}

	// Override replaces the built-in text.
	if got := Resolve(table, Options{Role: RoleSWE}); got != "Use @.cursor/rules/swe-agent.mdc" {
		t.Errorf("overridden swe prompt = %q", got)
	}
	// New roles become parseable.
	r, err := table.Parse("security")
	if err != nil {
		t.Fatalf("Parse(security): %v", err)
	}
	if got := Resolve(table, Options{Role: r}); got != "Use @.cursor/rules/security-agent.mdc" {
		t.Errorf("security prompt = %q", got)
	}
	// Untouched built-ins survive.
	if got := Resolve(table, Options{Role: RoleQA}); got != "Use @.cursor/rules/qa-agent.mdc" {
		t.Errorf("qa prompt = %q", got)
	}
}

func TestLoadFileMissingIsNoop(t *testing.T) {
	table := DefaultTable()
	if err := table.LoadFile(filepath.Join(t.TempDir(), "absent.yaml")); err != nil {
		t.Errorf("missing role file should not error: %v", err)
	}
	if len(table.Roles()) != 4 {
		t.Errorf("roles = %v, want the 4 built-ins", table.Roles())
	}
}

func TestLoadFileBadYAML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "agents.yaml")
	if err := os.WriteFile(path, []byte("roles: [not a map"), 0o644); err != nil {
		t.Fatal(err)
	}
	if err := DefaultTable().LoadFile(path); err == nil {
		t.Error("malformed YAML should error")
	}
}
