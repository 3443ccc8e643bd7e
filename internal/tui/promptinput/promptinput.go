// Package promptinput provides the interactive prompt editor shown when
// occ chat runs on a terminal without a -p flag. Enter submits, Esc skips
// and opens an empty chat.
package promptinput

import (
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

var (
	titleStyle = lipgloss.NewStyle().Bold(true).MarginBottom(1)
	helpStyle  = lipgloss.NewStyle().Faint(true)
)

// Model is the bubbletea model for the prompt editor.
type Model struct {
	input     textinput.Model
	submitted bool
	canceled  bool
}

// New creates a prompt editor model.
func New() Model {
	ti := textinput.New()
	ti.Placeholder = "What should the chat start with?"
	ti.CharLimit = 2000
	ti.Width = 60
	ti.Focus()
	return Model{input: ti}
}

// Init implements tea.Model.
func (m Model) Init() tea.Cmd {
	return textinput.Blink
}

// Update implements tea.Model.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if key, ok := msg.(tea.KeyMsg); ok {
		switch key.Type {
		case tea.KeyEnter:
			m.submitted = true
			return m, tea.Quit
		case tea.KeyEsc, tea.KeyCtrlC:
			m.canceled = true
			return m, tea.Quit
		}
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

// View implements tea.Model.
func (m Model) View() string {
	if m.submitted || m.canceled {
		return ""
	}
	return titleStyle.Render("New Cursor chat") + "\n" +
		m.input.View() + "\n\n" +
		helpStyle.Render("enter: open chat • esc: open empty chat")
}

// Value returns the typed prompt.
func (m Model) Value() string { return m.input.Value() }

// Submitted reports whether the user pressed Enter.
func (m Model) Submitted() bool { return m.submitted }

// Run shows the editor and returns the typed prompt. ok is false when the
// user skipped with Esc or typed nothing.
func Run() (prompt string, ok bool, err error) {
	final, err := tea.NewProgram(New()).Run()
	if err != nil {
		return "", false, err
	}
	m, isModel := final.(Model)
	if !isModel || !m.Submitted() || m.Value() == "" {
		return "", false, nil
	}
	return m.Value(), true, nil
}
