package cli

import (
	"errors"
	"testing"

	"github.com/Dicklesworthstone/occ/internal/launcher"
)

func TestNotifyMessage(t *testing.T) {
	tests := []struct {
		name string
		res  launcher.Result
		err  error
		want string
	}{
		{"failure", launcher.Result{Method: launcher.MethodNone}, errors.New("nope"), "Could not open a Cursor chat"},
		{"delivered", launcher.Result{Method: launcher.MethodAgentCLI, PromptDelivered: true}, nil, "Opened a Cursor chat with your prompt"},
		{"manual", launcher.Result{Method: launcher.MethodLaunch, ManualSteps: true}, nil, "Cursor is open - finish the chat manually (Cmd+T)"},
		{"empty chat", launcher.Result{Method: launcher.MethodKeystroke}, nil, "Opened a new Cursor chat"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := notifyMessage(tt.res, tt.err); got != tt.want {
				t.Errorf("notifyMessage = %q, want %q", got, tt.want)
			}
		})
	}
}
