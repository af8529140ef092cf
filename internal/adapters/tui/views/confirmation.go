package views

import (
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"iris/internal/adapters/tui/styles"
)

// ConfirmKeyMap defines key bindings for yes/no prompts
type ConfirmKeyMap struct {
	Confirm key.Binding
	Cancel  key.Binding
}

var DefaultConfirmKeys = ConfirmKeyMap{
	Confirm: key.NewBinding(
		key.WithKeys("y"),
		key.WithHelp("y", "confirm"),
	),
	Cancel: key.NewBinding(
		key.WithKeys("n", "esc"),
		key.WithHelp("n/esc", "cancel"),
	),
}

// Confirmation is an inline yes/no prompt that a view can activate
type Confirmation struct {
	Question string
	Active   bool
	Keys     ConfirmKeyMap
}

func NewConfirmation(question string) Confirmation {
	return Confirmation{Question: question, Keys: DefaultConfirmKeys}
}

// HandleKeyMsg processes key messages while the prompt is active.
// Returns (handled, cmd) where handled is true if the key was processed.
// Any key other than confirm or cancel is swallowed.
func (c *Confirmation) HandleKeyMsg(msg tea.KeyMsg, onConfirm tea.Cmd) (bool, tea.Cmd) {
	if !c.Active {
		return false, nil
	}
	switch {
	case key.Matches(msg, c.Keys.Confirm):
		c.Active = false
		return true, onConfirm
	case key.Matches(msg, c.Keys.Cancel):
		c.Active = false
		return true, nil
	}
	return true, nil
}

// View renders the prompt, or nothing when inactive
func (c *Confirmation) View() string {
	if !c.Active {
		return ""
	}
	var b strings.Builder
	b.WriteString(styles.Notice.Render(c.Question))
	b.WriteString(" ")
	b.WriteString(styles.HelpKey.Render("y"))
	b.WriteString(styles.HelpDesc.Render(" to confirm, "))
	b.WriteString(styles.HelpKey.Render("n"))
	b.WriteString(styles.HelpDesc.Render(" to cancel"))
	return b.String()
}
