package cli

import (
	"os"

	"github.com/mattn/go-isatty"
	"github.com/spf13/cobra"

	"github.com/Dicklesworthstone/occ/internal/launcher"
	"github.com/Dicklesworthstone/occ/internal/tui/promptinput"
)

func newChatCmd() *cobra.Command {
	var (
		promptFlag string
		workspace  string
		noInput    bool
	)

	cmd := &cobra.Command{
		Use:   "chat",
		Short: "Open a new Cursor chat, optionally pre-filled with a prompt",
		Long: `Open a new chat in Cursor using the best available method.

With no -p flag on an interactive terminal, a small editor asks for the
prompt first; press Esc there (or pass --no-input) to open an empty chat.

Examples:
  occ chat                          # Open an empty chat
  occ chat -p "Refactor this code"  # Open a chat with a prompt
  occ chat -w ~/src/project         # Open in a specific workspace`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			p := promptFlag
			if p == "" && !noInput && !IsJSONOutput() && stdinIsTerminal() {
				typed, ok, err := promptinput.Run()
				if err == nil && ok {
					p = typed
				}
			}

			return runOpen(cmd.Context(), launcher.Request{
				Prompt:    p,
				Workspace: expandWorkspace(workspace),
			})
		},
	}

	cmd.Flags().StringVarP(&promptFlag, "prompt", "p", "", "initial chat prompt/message")
	cmd.Flags().StringVarP(&workspace, "workspace", "w", "", "workspace path to open")
	cmd.Flags().BoolVar(&noInput, "no-input", false, "never ask for a prompt interactively")

	return cmd
}

func stdinIsTerminal() bool {
	return isatty.IsTerminal(os.Stdin.Fd()) && isatty.IsTerminal(os.Stdout.Fd())
}
