package views

import (
	"context"
	"fmt"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"iris/internal/adapters/tui/styles"
	"iris/internal/application"
	"iris/internal/application/commands"
	"iris/internal/domain"
	"iris/internal/ports"
)

// HistoryKeyMap defines key bindings for the history view
type HistoryKeyMap struct {
	Up    key.Binding
	Down  key.Binding
	Clear key.Binding
	Back  key.Binding
}

var HistoryKeys = HistoryKeyMap{
	Up: key.NewBinding(
		key.WithKeys("k", "up"),
		key.WithHelp("k/↑", "up"),
	),
	Down: key.NewBinding(
		key.WithKeys("j", "down"),
		key.WithHelp("j/↓", "down"),
	),
	Clear: key.NewBinding(
		key.WithKeys("x"),
		key.WithHelp("x", "clear history"),
	),
	Back: key.NewBinding(
		key.WithKeys("esc", "q"),
		key.WithHelp("esc", "back"),
	),
}

const historyLoadLimit = 200

type historyLoadedMsg struct {
	calcs []domain.Calculation
}

type historyErrMsg struct {
	err error
}

type historyClearedMsg struct {
	n int64
}

// HistoryModel lists previous calculations
type HistoryModel struct {
	ViewState
	repo    ports.HistoryRepository
	calcs   []domain.Calculation
	pager   *Paginator
	confirm Confirmation
	keys    HistoryKeyMap
}

func NewHistoryModel(repo ports.HistoryRepository) *HistoryModel {
	return &HistoryModel{
		repo:    repo,
		pager:   NewPaginator(10),
		confirm: NewConfirmation("Delete all calculations?"),
		keys:    HistoryKeys,
	}
}

// Reload fetches the latest calculations
func (m *HistoryModel) Reload() tea.Cmd {
	repo := m.repo
	return func() tea.Msg {
		calcs, err := commands.NewListHistoryCommand(repo, historyLoadLimit).Execute(context.Background())
		if err != nil {
			return historyErrMsg{err: err}
		}
		return historyLoadedMsg{calcs: calcs}
	}
}

func (m *HistoryModel) clear() tea.Cmd {
	repo := m.repo
	return func() tea.Msg {
		n, err := commands.NewClearHistoryCommand(repo).Execute(context.Background())
		if err != nil {
			return historyErrMsg{err: err}
		}
		return historyClearedMsg{n: n}
	}
}

// SetSize also resizes the visible page
func (m *HistoryModel) SetSize(width, height int) {
	m.ViewState.SetSize(width, height)
	// title, subtitle, help and padding take about 10 rows
	m.pager.SetPageSize(height - 10)
}

func (m *HistoryModel) Init() tea.Cmd {
	return m.Reload()
}

func (m *HistoryModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case historyLoadedMsg:
		m.calcs = msg.calcs
		m.pager.SetTotal(len(msg.calcs))
		return m, nil

	case historyErrMsg:
		m.SetMessage(application.DescribeError(msg.err), true)
		return m, nil

	case historyClearedMsg:
		m.SetMessage(fmt.Sprintf("Deleted %d calculations", msg.n), false)
		return m, m.Reload()

	case tea.KeyMsg:
		if handled, cmd := m.confirm.HandleKeyMsg(msg, m.clear()); handled {
			return m, cmd
		}

		switch {
		case key.Matches(msg, m.keys.Back):
			m.ClearMessage()
			return m, func() tea.Msg { return SwitchToPlanetsMsg{} }
		case key.Matches(msg, m.keys.Up):
			m.pager.Up()
		case key.Matches(msg, m.keys.Down):
			m.pager.Down()
		case key.Matches(msg, m.keys.Clear):
			if len(m.calcs) > 0 {
				m.confirm.Active = true
			}
		}
	}
	return m, nil
}

func (m *HistoryModel) View() string {
	s := newScreen("History", fmt.Sprintf("%d calculations, newest first", len(m.calcs)))

	if len(m.calcs) == 0 {
		s.muted("No calculations yet.")
	}

	start, end := m.pager.VisibleRange()
	for i := start; i < end; i++ {
		line := formatCalculationLine(m.calcs[i])
		if i == m.pager.Cursor() {
			s.add(styles.ListSelected.Render(line))
		} else {
			s.add(styles.ListItem.Render(line))
		}
	}

	if prompt := m.confirm.View(); prompt != "" {
		s.gap().add(prompt)
	}

	return s.status(m.Message, m.MessageErr).
		footer(m.keys.Up, m.keys.Down, m.keys.Clear, m.keys.Back)
}

func formatCalculationLine(c domain.Calculation) string {
	return fmt.Sprintf("%-8s %s → %s  %s km  %s km/s",
		c.Body,
		domain.FormatTimestamp(c.Start),
		domain.FormatTimestamp(c.End),
		application.FormatNumber(c.Result.DistanceKm),
		application.FormatNumber(c.Result.VelocityKmS),
	)
}
