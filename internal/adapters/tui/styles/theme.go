package styles

import (
	"github.com/charmbracelet/lipgloss"

	"iris/internal/domain"
)

// Night-sky palette
var (
	Primary   = lipgloss.Color("#818CF8") // nebula violet
	Secondary = lipgloss.Color("#34D399") // aurora green
	Muted     = lipgloss.Color("#64748B") // slate
	Warning   = lipgloss.Color("#FBBF24") // sunlight
	Error     = lipgloss.Color("#F87171") // red giant
	White     = lipgloss.Color("#F8FAFC")
)

// Roughly how each planet looks through a small telescope
var planetColors = map[domain.Body]lipgloss.Color{
	domain.Mercury: "#A8A29E",
	domain.Venus:   "#FDE68A",
	domain.Earth:   "#3B82F6",
	domain.Mars:    "#DC2626",
	domain.Jupiter: "#D97706",
	domain.Saturn:  "#EAB308",
	domain.Uranus:  "#67E8F9",
	domain.Neptune: "#2563EB",
}

func text(c lipgloss.Color) lipgloss.Style {
	return lipgloss.NewStyle().Foreground(c)
}

func strong(c lipgloss.Color) lipgloss.Style {
	return text(c).Bold(true)
}

func boxed(border lipgloss.Border, c lipgloss.Color) lipgloss.Style {
	return lipgloss.NewStyle().Border(border).BorderForeground(c)
}

var (
	App      = lipgloss.NewStyle().Padding(1, 2)
	Title    = strong(Primary).MarginBottom(1)
	Subtitle = text(Muted).Italic(true)

	ListItem     = lipgloss.NewStyle().PaddingLeft(2)
	ListSelected = strong(White).Background(Primary).Padding(0, 1)

	InputLabel   = strong(Secondary)
	InputField   = boxed(lipgloss.RoundedBorder(), Muted).Padding(0, 1)
	InputFocused = boxed(lipgloss.RoundedBorder(), Secondary).Padding(0, 1)

	ResultBox   = boxed(lipgloss.DoubleBorder(), Primary).Padding(0, 2).MarginTop(1)
	ResultValue = strong(White)

	HelpKey       = strong(Primary)
	HelpDesc      = text(Muted)
	HelpSeparator = text(Muted).SetString(" · ")

	Success   = strong(Secondary)
	ErrorMsg  = strong(Error)
	Notice    = strong(Warning)
	MutedText = text(Muted)
)

// PlanetColor returns the display color of b, or Primary for unknown bodies
func PlanetColor(b domain.Body) lipgloss.Color {
	if c, ok := planetColors[b]; ok {
		return c
	}
	return Primary
}

// Planet renders the name of b in its color
func Planet(b domain.Body) string {
	return strong(PlanetColor(b)).Render(b.String())
}
