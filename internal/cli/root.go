// Package cli implements the occ command surface.
package cli

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/Dicklesworthstone/occ/internal/config"
	"github.com/Dicklesworthstone/occ/internal/output"
	"github.com/Dicklesworthstone/occ/internal/tui/theme"
)

var (
	cfgFile string
	cfg     *config.Config

	// Global flags inherited by all subcommands
	jsonOutput bool
	noColor    bool
	verbose    bool

	// Build information - set via ldflags
	Version = "dev"
	Commit  = "none"
	Date    = "unknown"
)

var rootCmd = &cobra.Command{
	Use:   "occ",
	Short: "Open Cursor chats and agents from the command line",
	Long: `occ opens a new chat in the Cursor editor, optionally pre-filled
with a prompt or a canned agent-role prompt.

Delivery methods, tried in order:
  1. cursor-agent CLI (headless, most reliable when installed)
  2. AppleScript keystroke simulation (macOS only)
  3. Plain "cursor" launch, with manual follow-up steps

Quick Start:
  occ chat                          # Open an empty chat
  occ chat -p "Refactor this code"  # Open a chat with a prompt
  occ agent -a swe                  # Run the SWE agent
  occ agent -a qa -m claude-3.5-sonnet
  occ doctor                        # Check which delivery methods work`,
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		theme.SetNoColor(noColor)

		var err error
		cfg, err = config.Load(cfgFile)
		if err != nil {
			return err
		}
		return nil
	},
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default ~/.config/occ/config.toml)")
	rootCmd.PersistentFlags().BoolVar(&jsonOutput, "json", false, "machine-readable JSON output")
	rootCmd.PersistentFlags().BoolVar(&noColor, "no-color", false, "disable colored output")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "show diagnostics for skipped delivery methods")

	rootCmd.Version = Version
	rootCmd.SetVersionTemplate(fmt.Sprintf("occ {{.Version}} (commit %s, built %s)\n", Commit, Date))

	rootCmd.AddCommand(newChatCmd())
	rootCmd.AddCommand(newAgentCmd())
	rootCmd.AddCommand(newDoctorCmd())
}

// Execute runs the root command. A non-nil return maps to exit code 1.
func Execute() error {
	err := rootCmd.Execute()
	if err != nil && !jsonOutput {
		fmt.Fprintln(os.Stderr, "Error:", err)
	}
	return err
}

// IsJSONOutput reports whether --json was requested.
func IsJSONOutput() bool { return jsonOutput }

// newFormatter builds the formatter for human-facing messages. In JSON
// mode those messages are dropped so stdout carries only the result
// document.
func newFormatter() *output.Formatter {
	var w io.Writer = os.Stdout
	if jsonOutput {
		w = io.Discard
	}
	f := output.NewFormatter(w)
	f.SetVerbose(verbose)
	return f
}
