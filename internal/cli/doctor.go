package cli

import (
	"bytes"
	"context"
	"os/exec"
	"runtime"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/Dicklesworthstone/occ/internal/tui/theme"
	"github.com/Dicklesworthstone/occ/internal/util"
)

// lookPath is swappable in tests.
var lookPath = exec.LookPath

const versionProbeTimeout = 2 * time.Second

func newDoctorCmd() *cobra.Command {
	var showVersions bool

	cmd := &cobra.Command{
		Use:     "doctor",
		Aliases: []string{"deps"},
		Short:   "Check which chat delivery methods are available",
		Long: `Check the external tools occ depends on:

  cursor-agent   headless delivery with the prompt (method 1)
  osascript      keystroke simulation, macOS only (method 2)
  cursor         plain editor launch, the last resort (method 3)

The last resort is the only required one: without the cursor CLI an
occ run can end in total failure.

Examples:
  occ doctor           # Quick check
  occ doctor --versions # Include tool versions
  occ doctor --json    # JSON report for scripts`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runDoctor(showVersions)
		},
	}

	cmd.Flags().BoolVar(&showVersions, "versions", false, "probe tool versions")

	return cmd
}

type depCheck struct {
	Name        string
	Command     string
	VersionArgs []string
	Required    bool
	Note        string
	InstallHint string
}

// DoctorCheck is one entry of the JSON report.
type DoctorCheck struct {
	Name      string `json:"name"`
	Required  bool   `json:"required"`
	Installed bool   `json:"installed"`
	Path      string `json:"path,omitempty"`
	Version   string `json:"version,omitempty"`
	Note      string `json:"note,omitempty"`
}

// DoctorReport is the JSON output of occ doctor.
type DoctorReport struct {
	Deliverable bool          `json:"deliverable"` // at least one method can work
	AllRequired bool          `json:"all_required_installed"`
	Checks      []DoctorCheck `json:"checks"`
}

func doctorChecks() []depCheck {
	return []depCheck{
		{
			Name:        cfg.AgentCommand,
			Command:     cfg.AgentCommand,
			VersionArgs: []string{"--version"},
			Required:    false,
			Note:        "headless prompt delivery",
			InstallHint: "curl https://cursor.com/install -fsS | bash",
		},
		{
			Name:        "osascript",
			Command:     "osascript",
			Required:    false,
			Note:        "keystroke simulation (macOS only)",
			InstallHint: "ships with macOS; not available on " + runtime.GOOS,
		},
		{
			Name:        cfg.EditorCommand,
			Command:     cfg.EditorCommand,
			VersionArgs: []string{"--version"},
			Required:    true,
			Note:        "last-resort editor launch",
			InstallHint: "curl https://cursor.com/install -fsS | bash",
		},
	}
}

func runDoctor(showVersions bool) error {
	var (
		checks      []DoctorCheck
		deliverable bool
		allRequired = true
	)

	for _, dep := range doctorChecks() {
		check := DoctorCheck{
			Name:     dep.Name,
			Required: dep.Required,
			Note:     dep.Note,
		}

		if path, err := lookPath(dep.Command); err == nil {
			check.Installed = true
			check.Path = path
			deliverable = true
			if showVersions && len(dep.VersionArgs) > 0 {
				check.Version = probeVersion(dep.Command, dep.VersionArgs)
			}
		} else if dep.Required {
			allRequired = false
		}

		checks = append(checks, check)
	}

	if IsJSONOutput() {
		return printJSON(DoctorReport{
			Deliverable: deliverable,
			AllRequired: allRequired,
			Checks:      checks,
		})
	}

	t := theme.Current()
	out := newFormatter()

	out.Line()
	out.Textln("%s", t.Bold.Render("occ dependency check"))
	out.Line()

	for i, dep := range doctorChecks() {
		check := checks[i]
		switch {
		case check.Installed:
			out.Textln("  %s %-14s %s", t.Success.Render("✓"), dep.Name, t.Dim.Render(dep.Note))
			if check.Version != "" {
				out.Textln("    %s", t.Dim.Render(check.Version))
			}
		case dep.Required:
			out.Textln("  %s %-14s %s", t.Error.Render("✗"), dep.Name, t.Dim.Render(dep.Note))
			out.Textln("    %s", t.Dim.Render("Install: "+dep.InstallHint))
		default:
			out.Textln("  %s %-14s %s", t.Warning.Render("✗"), dep.Name, t.Dim.Render(dep.Note))
			out.Textln("    %s", t.Dim.Render(dep.InstallHint))
		}
	}

	out.Line()
	switch {
	case !deliverable:
		out.Error("No delivery method available; occ chat would fail")
	case !allRequired:
		out.Warn("The last-resort launch is unavailable; a full fallback would fail")
	default:
		out.Success("At least one delivery method is ready")
	}

	return nil
}

// probeVersion runs the tool's version command, returning the first line.
func probeVersion(command string, args []string) string {
	ctx, cancel := context.WithTimeout(context.Background(), versionProbeTimeout)
	defer cancel()

	cmd := exec.CommandContext(ctx, command, args...)
	var stdout bytes.Buffer
	cmd.Stdout = &stdout
	if err := cmd.Run(); err != nil {
		return ""
	}
	line := stdout.String()
	if i := strings.IndexByte(line, '\n'); i >= 0 {
		line = line[:i]
	}
	return util.Preview(line, 40)
}
