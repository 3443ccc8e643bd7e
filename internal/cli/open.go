package cli

import (
	"context"

	"github.com/Dicklesworthstone/occ/internal/config"
	"github.com/Dicklesworthstone/occ/internal/launcher"
	"github.com/Dicklesworthstone/occ/internal/notify"
	"github.com/Dicklesworthstone/occ/internal/output"
	"github.com/Dicklesworthstone/occ/internal/util"
)

// printJSON is swappable in tests to capture machine output.
var printJSON = output.PrintJSON

// OpenResult is the JSON output for the chat and agent commands.
type OpenResult struct {
	Success         bool   `json:"success"`
	Method          string `json:"method"`
	PromptPreview   string `json:"prompt_preview,omitempty"`
	PromptDelivered bool   `json:"prompt_delivered"`
	ManualSteps     bool   `json:"manual_steps"`
	Workspace       string `json:"workspace,omitempty"`
	Error           string `json:"error,omitempty"`
}

// runOpen executes the delivery chain and handles result reporting shared
// by chat and agent.
func runOpen(ctx context.Context, req launcher.Request) error {
	out := newFormatter()
	l := launcher.New(cfg, out)

	res, err := l.Open(ctx, req)

	if cfg.Notifications.Enabled {
		// Best effort; a failed notification never changes the outcome.
		_ = notify.Send(cfg.Notifications, notifyMessage(res, err))
	}

	if IsJSONOutput() {
		result := OpenResult{
			Success:         err == nil,
			Method:          string(res.Method),
			PromptPreview:   util.Preview(req.Prompt, 80),
			PromptDelivered: res.PromptDelivered,
			ManualSteps:     res.ManualSteps,
			Workspace:       req.Workspace,
		}
		if err != nil {
			result.Error = err.Error()
		}
		if jsonErr := printJSON(result); jsonErr != nil {
			return jsonErr
		}
	}

	return err
}

func notifyMessage(res launcher.Result, err error) string {
	switch {
	case err != nil:
		return "Could not open a Cursor chat"
	case res.PromptDelivered:
		return "Opened a Cursor chat with your prompt"
	case res.ManualSteps:
		return "Cursor is open - finish the chat manually (Cmd+T)"
	default:
		return "Opened a new Cursor chat"
	}
}

// expandWorkspace normalizes the -w flag.
func expandWorkspace(path string) string {
	if path == "" {
		return ""
	}
	return config.ExpandHome(path)
}
