package views

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/lipgloss"

	"iris/internal/adapters/tui/styles"
	"iris/internal/application"
	"iris/internal/domain"
)

// RenderFooter joins the enabled bindings into one help line
func RenderFooter(bindings ...key.Binding) string {
	parts := make([]string, 0, len(bindings))
	for _, b := range bindings {
		if !b.Enabled() {
			continue
		}
		h := b.Help()
		parts = append(parts, styles.HelpKey.Render(h.Key)+" "+styles.HelpDesc.Render(h.Desc))
	}
	return strings.Join(parts, styles.HelpSeparator.String())
}

// RenderStatus styles a transient status line. Empty text renders nothing.
func RenderStatus(text string, failed bool) string {
	switch {
	case text == "":
		return ""
	case failed:
		return styles.ErrorMsg.Render(text)
	default:
		return styles.Success.Render(text)
	}
}

// RenderResultPanel boxes the distance and velocity of r, or the Earth
// notice when the target is Earth.
func RenderResultPanel(r domain.Result, onEarth bool) string {
	if onEarth {
		return styles.ResultBox.Render(styles.Notice.Render(application.EarthMessage))
	}
	row := func(label, value, unit string) string {
		return styles.InputLabel.Render(fmt.Sprintf("%-9s", label)) + " " + styles.ResultValue.Render(value+" "+unit)
	}
	return styles.ResultBox.Render(lipgloss.JoinVertical(lipgloss.Left,
		row("Distance", application.FormatNumber(r.DistanceKm), "km"),
		row("Velocity", application.FormatNumber(r.VelocityKmS), "km/s"),
	))
}

// shortcutRow renders one line of the help screen
func shortcutRow(keys, desc string) string {
	return "  " + styles.HelpKey.Render(fmt.Sprintf("%-16s", keys)) + styles.HelpDesc.Render(desc)
}

// screen collects the lines of a single view
type screen struct {
	lines []string
}

func newScreen(title, subtitle string) *screen {
	s := &screen{lines: []string{styles.Title.Render(title)}}
	if subtitle != "" {
		s.lines = append(s.lines, styles.Subtitle.Render(subtitle), "")
	}
	return s
}

func (s *screen) add(lines ...string) *screen {
	s.lines = append(s.lines, lines...)
	return s
}

func (s *screen) muted(text string) *screen {
	return s.add(styles.MutedText.Render(text))
}

func (s *screen) gap() *screen {
	return s.add("")
}

func (s *screen) status(text string, failed bool) *screen {
	if text == "" {
		return s
	}
	return s.gap().add(RenderStatus(text, failed))
}

// footer appends the key help and returns the finished view
func (s *screen) footer(bindings ...key.Binding) string {
	s.gap().add(RenderFooter(bindings...))
	return s.String()
}

func (s *screen) String() string {
	return styles.App.Render(strings.Join(s.lines, "\n"))
}
