package views

import "github.com/charmbracelet/lipgloss"

var (
	boxStyle      = lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).BorderForeground(lipgloss.Color("#585b70")).Padding(0, 1)
	boxTitleStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#89b4fa")).Bold(true)
	selectedStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#1e1e2e")).Background(lipgloss.Color("#89b4fa"))
	mutedStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("#a6adc8"))
)

type box struct {
	title   string
	content string
}

func (b box) render(width, height int) string {
	if width <= 0 || height <= 0 {
		return ""
	}
	if width < 4 || height < 3 {
		return b.content
	}
	style := boxStyle.Width(width - 2).Height(max(1, height-2))
	return style.Render(boxTitleStyle.Render(b.title) + "\n" + b.content)
}
