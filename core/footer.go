package core

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"
)

// RenderFooter shows the key bindings active in the mounted view's scope.
func RenderFooter(m Model) string {
	width := max(1, m.width)
	bindings := m.keys.BindingsForScope(m.ActiveScope())
	keys := make([]key.Binding, 0, len(bindings))
	for _, b := range bindings {
		if len(b.Keys) == 0 {
			continue
		}
		keys = append(keys, key.NewBinding(key.WithKeys(b.Keys...), key.WithHelp(b.Keys[0], b.Description)))
	}

	h := help.New()
	h.Width = width
	h.ShortSeparator = "  "
	h.Styles.ShortKey = footerKeyStyle
	h.Styles.ShortDesc = footerDescStyle
	h.Styles.ShortSeparator = footerDescStyle
	h.Styles.Ellipsis = footerDescStyle

	line := h.ShortHelpView(keys)
	if line == "" {
		line = footerDescStyle.Render("No shortcuts")
	}
	return renderBar(footerStyle, width, " "+line, "")
}

// RenderStatusBar shows the last navigation outcome on the left and the
// number of completed navigations on the right.
func RenderStatusBar(m Model) string {
	msg := strings.TrimSpace(m.status)
	if msg == "" {
		msg = "Ready"
	}
	counter := ""
	if m.navigations > 0 {
		counter = fmt.Sprintf("nav %d ", m.navigations)
	}
	style := statusBarStyle
	if m.statusErr {
		style = statusErrBarStyle
	}
	return renderBar(style, max(1, m.width), " "+msg, counter)
}

// renderBar lays left and right out on a single line of exactly width cells.
// The right side gives way first when both do not fit.
func renderBar(style lipgloss.Style, width int, left, right string) string {
	left = ansi.Truncate(strings.ReplaceAll(left, "\n", " "), width, "")
	room := width - ansi.StringWidth(left)
	if ansi.StringWidth(right) > room-1 {
		right = ""
	}
	gap := max(0, room-ansi.StringWidth(right))
	return style.Width(width).MaxWidth(width).Render(left + strings.Repeat(" ", gap) + right)
}
