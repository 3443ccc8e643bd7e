package cli

import (
	"fmt"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/Dicklesworthstone/occ/internal/config"
	"github.com/Dicklesworthstone/occ/internal/launcher"
	"github.com/Dicklesworthstone/occ/internal/prompt"
)

func newAgentCmd() *cobra.Command {
	var (
		roleFlag   string
		modelFlag  string
		promptFlag string
		workspace  string
	)

	cmd := &cobra.Command{
		Use:   "agent",
		Short: "Open a new Cursor chat pre-filled with an agent-role prompt",
		Long: `Open a new Cursor chat that immediately runs one of the canned agent
roles. An explicit -p prompt overrides the role prompt; -m appends a
model annotation and is forwarded to the cursor-agent CLI.

Built-in roles: swe, qa, pm, docs. A roles file (role_file in the config,
or .cursor/agents.yaml in the workspace) can override them or add more.

Examples:
  occ agent -a swe                      # Run the SWE agent
  occ agent -a qa -m claude-3.5-sonnet  # QA agent on a specific model
  occ agent -p "Review the diff"        # Custom prompt instead of a role
  occ agent -m gpt-4                    # Empty prompt, model annotation only`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ws := expandWorkspace(workspace)

			table, err := loadRoleTable(cfg, ws)
			if err != nil {
				return err
			}

			var role prompt.Role
			if roleFlag != "" {
				role, err = table.Parse(roleFlag)
				if err != nil {
					return err
				}
			}

			resolved := prompt.Resolve(table, prompt.Options{
				Prompt: promptFlag,
				Role:   role,
				Model:  modelFlag,
			})

			return runOpen(cmd.Context(), launcher.Request{
				Prompt:    resolved,
				Model:     modelFlag,
				Workspace: ws,
			})
		},
	}

	cmd.Flags().StringVarP(&roleFlag, "agent", "a", "", "agent role to run (swe, qa, pm, docs, ...)")
	cmd.Flags().StringVarP(&modelFlag, "model", "m", "", "model to use (e.g. claude-3.5-sonnet, gpt-4)")
	cmd.Flags().StringVarP(&promptFlag, "prompt", "p", "", "custom prompt (overrides the role prompt)")
	cmd.Flags().StringVarP(&workspace, "workspace", "w", "", "workspace path to open")

	return cmd
}

// loadRoleTable builds the role table: built-ins, then the configured
// role file, then the workspace's .cursor/agents.yaml, later files
// winning.
func loadRoleTable(cfg *config.Config, workspace string) (*prompt.Table, error) {
	table := prompt.DefaultTable()

	if cfg.RoleFile != "" {
		if err := table.LoadFile(config.ExpandHome(cfg.RoleFile)); err != nil {
			return nil, fmt.Errorf("loading role file: %w", err)
		}
	}

	dir := workspace
	if dir == "" {
		dir = "."
	}
	if err := table.LoadFile(filepath.Join(dir, ".cursor", "agents.yaml")); err != nil {
		return nil, fmt.Errorf("loading workspace roles: %w", err)
	}

	return table, nil
}
