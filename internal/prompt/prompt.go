// Package prompt resolves the effective chat prompt from CLI inputs.
//
// Resolution order: an explicit prompt always wins; otherwise an agent
// role maps to its canned prompt. A model name, when present, is appended
// as a textual annotation so it survives delivery paths that cannot pass
// a model flag.
package prompt

import (
	"fmt"
	"os"
	"sort"

	"gopkg.in/yaml.v3"
)

// Role identifies a canned agent prompt.
type Role string

const (
	RoleSWE  Role = "swe"
	RoleQA   Role = "qa"
	RolePM   Role = "pm"
	RoleDocs Role = "docs"
)

var builtinPrompts = map[Role]string{
	RoleSWE:  "run swe agent",
	RoleQA:   "Use @.cursor/rules/qa-agent.mdc",
	RolePM:   "Use @.cursor/rules/pm-agent.mdc",
	RoleDocs: "run docs agent",
}

// Table maps roles to their canned prompts. The built-in roles are always
// present; a role file may change their text or add new roles.
type Table struct {
	prompts map[Role]string
}

// DefaultTable returns a table with the built-in role prompts.
func DefaultTable() *Table {
	prompts := make(map[Role]string, len(builtinPrompts))
	for r, p := range builtinPrompts {
		prompts[r] = p
	}
	return &Table{prompts: prompts}
}

// roleFile is the on-disk YAML shape:
//
//	roles:
//	  swe: "custom swe prompt"
//	  security: "Use @.cursor/rules/security-agent.mdc"
type roleFile struct {
	Roles map[string]string `yaml:"roles"`
}

// LoadFile merges role prompts from a YAML file into the table. A missing
// file is not an error; the built-ins stand.
func (t *Table) LoadFile(path string) error {
	data, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return nil
	}
	if err != nil {
		return err
	}

	var rf roleFile
	if err := yaml.Unmarshal(data, &rf); err != nil {
		return fmt.Errorf("parsing role file %s: %w", path, err)
	}
	for name, p := range rf.Roles {
		if name == "" || p == "" {
			continue
		}
		t.prompts[Role(name)] = p
	}
	return nil
}

// Lookup returns the canned prompt for a role.
func (t *Table) Lookup(r Role) (string, bool) {
	p, ok := t.prompts[r]
	return p, ok
}

// Roles returns all known role names, sorted.
func (t *Table) Roles() []Role {
	roles := make([]Role, 0, len(t.prompts))
	for r := range t.prompts {
		roles = append(roles, r)
	}
	sort.Slice(roles, func(i, j int) bool { return roles[i] < roles[j] })
	return roles
}

// Parse validates a role name against the table.
func (t *Table) Parse(s string) (Role, error) {
	r := Role(s)
	if _, ok := t.prompts[r]; !ok {
		return "", fmt.Errorf("unknown agent role %q (known: %s)", s, rolesString(t.Roles()))
	}
	return r, nil
}

func rolesString(roles []Role) string {
	s := ""
	for i, r := range roles {
		if i > 0 {
			s += ", "
		}
		s += string(r)
	}
	return s
}

// Options are the raw CLI inputs feeding prompt resolution.
type Options struct {
	Prompt string // explicit prompt, wins unconditionally
	Role   Role   // agent role, used only when Prompt is empty
	Model  string // model name, appended as an annotation
}

// Resolve computes the effective prompt. An empty result means "no
// prompt": the dispatcher then opens an empty chat.
func Resolve(t *Table, opts Options) string {
	p := opts.Prompt
	if p == "" && opts.Role != "" {
		if canned, ok := t.Lookup(opts.Role); ok {
			p = canned
		}
	}

	switch {
	case opts.Model != "" && p != "":
		p = fmt.Sprintf("%s (model: %s)", p, opts.Model)
	case opts.Model != "":
		p = fmt.Sprintf("(model: %s)", opts.Model)
	}
	return p
}
