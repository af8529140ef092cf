package views

import (
	"fmt"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"iris/internal/adapters/tui/styles"
	"iris/internal/domain"
)

// PlanetsKeyMap defines key bindings for the planet picker
type PlanetsKeyMap struct {
	Up      key.Binding
	Down    key.Binding
	Select  key.Binding
	History key.Binding
	Help    key.Binding
	Quit    key.Binding
}

var PlanetsKeys = PlanetsKeyMap{
	Up: key.NewBinding(
		key.WithKeys("k", "up"),
		key.WithHelp("k/↑", "up"),
	),
	Down: key.NewBinding(
		key.WithKeys("j", "down"),
		key.WithHelp("j/↓", "down"),
	),
	Select: key.NewBinding(
		key.WithKeys("enter", "l", "right"),
		key.WithHelp("enter", "select"),
	),
	History: key.NewBinding(
		key.WithKeys("h"),
		key.WithHelp("h", "history"),
	),
	Help: key.NewBinding(
		key.WithKeys("?"),
		key.WithHelp("?", "help"),
	),
	Quit: key.NewBinding(
		key.WithKeys("q", "ctrl+c"),
		key.WithHelp("q", "quit"),
	),
}

// PlanetsModel lets the user pick the target body
type PlanetsModel struct {
	ViewState
	bodies []domain.Body
	cursor int
	keys   PlanetsKeyMap
}

// NewPlanetsModel creates the picker. hasHistory enables the history key.
func NewPlanetsModel(hasHistory bool) *PlanetsModel {
	keys := PlanetsKeys
	keys.History.SetEnabled(hasHistory)
	return &PlanetsModel{
		bodies: domain.Bodies(),
		keys:   keys,
	}
}

func (m *PlanetsModel) Init() tea.Cmd {
	return nil
}

// Selected returns the body under the cursor
func (m *PlanetsModel) Selected() domain.Body {
	return m.bodies[m.cursor]
}

func (m *PlanetsModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}

	switch {
	case key.Matches(keyMsg, m.keys.Quit):
		return m, tea.Quit

	case key.Matches(keyMsg, m.keys.Up):
		if m.cursor > 0 {
			m.cursor--
		}

	case key.Matches(keyMsg, m.keys.Down):
		if m.cursor < len(m.bodies)-1 {
			m.cursor++
		}

	case key.Matches(keyMsg, m.keys.Select):
		body := m.Selected()
		return m, func() tea.Msg { return SelectPlanetMsg{Body: body} }

	case key.Matches(keyMsg, m.keys.History):
		return m, func() tea.Msg { return SwitchToHistoryMsg{} }

	case key.Matches(keyMsg, m.keys.Help):
		return m, func() tea.Msg { return SwitchToHelpMsg{} }
	}

	return m, nil
}

func (m *PlanetsModel) View() string {
	s := newScreen("Iris", "Distance and radial velocity of the planets as seen from Earth")

	for i, body := range m.bodies {
		label := fmt.Sprintf("%d. %s", i+1, body)
		if i == m.cursor {
			s.add(styles.ListSelected.Render(label))
			continue
		}
		s.add(styles.ListItem.Render(fmt.Sprintf("%d. %s", i+1, styles.Planet(body))))
	}

	return s.status(m.Message, m.MessageErr).
		footer(m.keys.Up, m.keys.Down, m.keys.Select, m.keys.History, m.keys.Help, m.keys.Quit)
}
