package views

import (
	"context"

	"github.com/atotto/clipboard"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/rs/zerolog"

	"iris/internal/adapters/tui/styles"
	"iris/internal/application"
	"iris/internal/application/commands"
	"iris/internal/domain"
	"iris/internal/ports"
)

// copyToClipboard is swapped out in tests
var copyToClipboard = clipboard.WriteAll

const (
	fieldStart = iota
	fieldEnd
)

// ComputeKeyMap defines key bindings for the time entry view
type ComputeKeyMap struct {
	Submit key.Binding
	Edit   key.Binding
	Copy   key.Binding
	Back   key.Binding
}

var ComputeKeys = ComputeKeyMap{
	Submit: key.NewBinding(
		key.WithKeys("enter"),
		key.WithHelp("enter", "compute"),
	),
	Edit: key.NewBinding(
		key.WithKeys("enter", "e"),
		key.WithHelp("enter", "edit times"),
	),
	Copy: key.NewBinding(
		key.WithKeys("c"),
		key.WithHelp("c", "copy result"),
	),
	Back: key.NewBinding(
		key.WithKeys("esc"),
		key.WithHelp("esc", "back"),
	),
}

// ComputeDoneMsg carries a successful computation
type ComputeDoneMsg struct {
	Report *commands.Report
}

// ComputeErrMsg carries a failed computation
type ComputeErrMsg struct {
	Err error
}

// ComputeModel collects the two times for a body and shows the result
type ComputeModel struct {
	ViewState
	engine  *application.Engine
	history ports.HistoryRepository
	logger  zerolog.Logger

	body      domain.Body
	form      *InputForm
	report    *commands.Report
	computing bool
	keys      ComputeKeyMap
}

// NewComputeModel creates the time entry view. history may be nil.
func NewComputeModel(engine *application.Engine, history ports.HistoryRepository, logger zerolog.Logger) *ComputeModel {
	hint := "Format: " + application.TimestampLayoutHint
	return &ComputeModel{
		engine:  engine,
		history: history,
		logger:  logger,
		form: NewInputForm(
			NewInputField("Initial time", "2024-01-01 00:00:00", hint, len(application.TimestampLayout)),
			NewInputField("Final time", "2024-01-02 00:00:00", hint, len(application.TimestampLayout)),
		),
		keys: ComputeKeys,
	}
}

// SetBody prepares the view for a new body, keeping previously typed times
func (m *ComputeModel) SetBody(body domain.Body) {
	m.body = body
	m.report = nil
	m.computing = false
	m.ClearMessage()
	m.form.Focus()
}

func (m *ComputeModel) Body() domain.Body {
	return m.body
}

// Report returns the last successful computation, if any
func (m *ComputeModel) Report() *commands.Report {
	return m.report
}

func (m *ComputeModel) Init() tea.Cmd {
	return m.form.Init()
}

func (m *ComputeModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case ComputeDoneMsg:
		m.computing = false
		m.report = msg.Report
		m.ClearMessage()
		m.form.Blur()
		return m, nil

	case ComputeErrMsg:
		m.computing = false
		m.report = nil
		m.SetMessage(application.DescribeError(msg.Err), true)
		return m, nil

	case tea.KeyMsg:
		if m.computing {
			return m, nil
		}
		if m.report != nil {
			return m.updateResult(msg)
		}
		return m.updateForm(msg)
	}

	_, cmd := m.form.Update(msg)
	return m, cmd
}

func (m *ComputeModel) updateForm(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Back):
		return m, func() tea.Msg { return SwitchToPlanetsMsg{} }

	case key.Matches(msg, m.keys.Submit):
		m.computing = true
		m.ClearMessage()
		return m, m.compute()
	}

	_, cmd := m.form.Update(msg)
	return m, cmd
}

func (m *ComputeModel) updateResult(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Back):
		return m, func() tea.Msg { return SwitchToPlanetsMsg{} }

	case key.Matches(msg, m.keys.Copy):
		if err := copyToClipboard(m.resultText()); err != nil {
			m.SetMessage("Could not copy to clipboard: "+err.Error(), true)
		} else {
			m.SetMessage("Copied to clipboard", false)
		}
		return m, nil

	case key.Matches(msg, m.keys.Edit):
		m.report = nil
		m.ClearMessage()
		m.form.Focus()
		return m, m.form.Init()
	}
	return m, nil
}

func (m *ComputeModel) compute() tea.Cmd {
	cmd := commands.NewComputeCommand(m.engine, m.history,
		m.body.String(), m.form.Value(fieldStart), m.form.Value(fieldEnd)).
		WithLogger(m.logger)

	return func() tea.Msg {
		report, err := cmd.Execute(context.Background())
		if err != nil {
			return ComputeErrMsg{Err: err}
		}
		return ComputeDoneMsg{Report: report}
	}
}

func (m *ComputeModel) resultText() string {
	if m.report == nil {
		return ""
	}
	if m.report.OnEarth {
		return application.EarthMessage
	}
	return application.FormatResult(m.report.Result)
}

func (m *ComputeModel) View() string {
	s := newScreen("Iris", "").
		add(styles.MutedText.Render("Target: ")+styles.Planet(m.body), "", m.form.View())

	switch {
	case m.computing:
		s.muted("Computing...")
	case m.report != nil:
		s.add(RenderResultPanel(m.report.Result, m.report.OnEarth))
	}

	s.status(m.Message, m.MessageErr)

	if m.report != nil {
		return s.footer(m.keys.Edit, m.keys.Copy, m.keys.Back)
	}
	return s.footer(m.form.Keys.Next, m.keys.Submit, m.keys.Back)
}
