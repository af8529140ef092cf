package tui

import (
	tea "github.com/charmbracelet/bubbletea"
	"github.com/rs/zerolog"

	"iris/internal/adapters/tui/views"
	"iris/internal/application"
	"iris/internal/ports"
)

// ViewState represents the current view
type ViewState int

const (
	ViewPlanets ViewState = iota
	ViewCompute
	ViewHistory
	ViewHelp
)

// App is the main TUI application model
type App struct {
	state   ViewState
	planets *views.PlanetsModel
	compute *views.ComputeModel
	history *views.HistoryModel
	help    *views.HelpModel

	width  int
	height int
}

// NewApp creates a new TUI application. history may be nil, which hides
// the history view.
func NewApp(engine *application.Engine, history ports.HistoryRepository, logger zerolog.Logger) *App {
	a := &App{
		state:   ViewPlanets,
		planets: views.NewPlanetsModel(history != nil),
		compute: views.NewComputeModel(engine, history, logger),
		help:    views.NewHelpModel(),
	}
	if history != nil {
		a.history = views.NewHistoryModel(history)
	}
	return a
}

// State returns the active view
func (a *App) State() ViewState {
	return a.state
}

func (a *App) Init() tea.Cmd {
	return a.planets.Init()
}

func (a *App) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		a.width = msg.Width
		a.height = msg.Height
		a.planets.SetSize(msg.Width, msg.Height)
		a.compute.SetSize(msg.Width, msg.Height)
		a.help.SetSize(msg.Width, msg.Height)
		if a.history != nil {
			a.history.SetSize(msg.Width, msg.Height)
		}
		return a, nil

	case tea.KeyMsg:
		if msg.Type == tea.KeyCtrlC {
			return a, tea.Quit
		}

	// View switching messages
	case views.SelectPlanetMsg:
		a.state = ViewCompute
		a.compute.SetBody(msg.Body)
		return a, a.compute.Init()

	case views.SwitchToPlanetsMsg:
		a.state = ViewPlanets
		return a, nil

	case views.SwitchToHistoryMsg:
		if a.history == nil {
			return a, nil
		}
		a.state = ViewHistory
		return a, a.history.Reload()

	case views.SwitchToHelpMsg:
		a.state = ViewHelp
		return a, nil

	// Results belong to the compute view whichever view is showing
	case views.ComputeDoneMsg, views.ComputeErrMsg:
		_, cmd := a.compute.Update(msg)
		return a, cmd
	}

	// Delegate to current view
	var cmd tea.Cmd
	switch a.state {
	case ViewPlanets:
		_, cmd = a.planets.Update(msg)
	case ViewCompute:
		_, cmd = a.compute.Update(msg)
	case ViewHistory:
		_, cmd = a.history.Update(msg)
	case ViewHelp:
		_, cmd = a.help.Update(msg)
	}

	return a, cmd
}

func (a *App) View() string {
	switch a.state {
	case ViewCompute:
		return a.compute.View()
	case ViewHistory:
		return a.history.View()
	case ViewHelp:
		return a.help.View()
	default:
		return a.planets.View()
	}
}
