package views

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"iris/internal/adapters/tui/styles"
	"iris/internal/application"
)

// HelpKeyMap defines key bindings for the help view
type HelpKeyMap struct {
	Close key.Binding
}

var HelpKeys = HelpKeyMap{
	Close: key.NewBinding(
		key.WithKeys("esc", "q", "?"),
		key.WithHelp("esc/q/?", "close"),
	),
}

// HelpModel is the model for the help view
type HelpModel struct {
	ViewState
}

func NewHelpModel() *HelpModel {
	return &HelpModel{}
}

func (m *HelpModel) Init() tea.Cmd {
	return nil
}

func (m *HelpModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if msg, ok := msg.(tea.KeyMsg); ok && key.Matches(msg, HelpKeys.Close) {
		return m, func() tea.Msg { return SwitchToPlanetsMsg{} }
	}
	return m, nil
}

func (m *HelpModel) View() string {
	section := func(title string, rows ...[2]string) []string {
		out := []string{styles.InputLabel.Render(title)}
		for _, r := range rows {
			out = append(out, shortcutRow(r[0], r[1]))
		}
		return append(out, "")
	}

	return newScreen("Iris Help", "Pick a planet, enter two UTC times, read the distance at the final time and the average radial velocity in between.").
		add(section("Planets",
			[2]string{"j / k / ↑ / ↓", "Move up/down"},
			[2]string{"enter", "Choose planet"},
			[2]string{"h", "Show history"},
			[2]string{"q", "Quit"},
		)...).
		add(section("Times",
			[2]string{"tab / shift+tab", "Switch field"},
			[2]string{"enter", "Compute"},
			[2]string{"c", "Copy result"},
			[2]string{"e", "Edit times"},
			[2]string{"esc", "Back to planets"},
		)...).
		add(section("History",
			[2]string{"x", "Clear all calculations"},
		)...).
		muted("Times use "+application.TimestampLayoutHint+" and are read as UTC.").
		muted("A positive velocity means the planet is moving away from Earth.").
		gap().
		muted("Press esc, q, or ? to close").
		String()
}
