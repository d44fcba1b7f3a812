package core

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

func (m Model) View() string {
	if m.quitting {
		return "Goodbye\n"
	}
	width := max(1, m.width)
	height := max(1, m.height)

	// The outlet always keeps at least one line. Chrome gives way first from
	// the bottom: footer, then status bar, then header.
	top := []string{renderHeader(m), RenderStatusBar(m)}
	bottom := []string{RenderFooter(m)}
	for chromeHeight(top, bottom) >= height {
		if len(bottom) > 0 {
			bottom = nil
			continue
		}
		top = top[:len(top)-1]
	}
	available := height - chromeHeight(top, bottom)

	var outlet Outlet
	if m.nav != nil {
		outlet = m.nav
	}
	body := Paint(m.shell.Render(), outlet, width, available)

	parts := make([]string, 0, len(top)+len(bottom)+1)
	parts = append(parts, top...)
	parts = append(parts, body)
	parts = append(parts, bottom...)
	view := fitHeight(strings.Join(parts, "\n"), height)
	return lipgloss.NewStyle().Width(width).MaxWidth(width).Render(view)
}

func chromeHeight(groups ...[]string) int {
	h := 0
	for _, g := range groups {
		for _, s := range g {
			h += lipgloss.Height(s)
		}
	}
	return h
}

func renderHeader(m Model) string {
	location := ""
	if m.nav != nil {
		location = m.nav.Location()
	}
	return renderBar(headerBarStyle, max(1, m.width),
		headerAppStyle.Render(" "+m.shell.Title()),
		locationStyle.Render(location+" "))
}

func fitHeight(s string, height int) string {
	if height <= 0 {
		return ""
	}
	lines := strings.Split(s, "\n")
	if len(lines) > height {
		lines = lines[:height]
	}
	for len(lines) < height {
		lines = append(lines, "")
	}
	return strings.Join(lines, "\n")
}
