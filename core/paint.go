package core

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"
)

// Paint turns a view tree into terminal text of at most width x height cells.
// Outlet placeholders are filled by outlet; a nil outlet paints them empty.
// Text nodes keep their natural height and outlets share what is left.
func Paint(tree Node, outlet Outlet, width, height int) string {
	if width <= 0 || height <= 0 {
		return ""
	}
	return fitHeight(paintNode(tree, outlet, width, height), height)
}

func paintNode(n Node, outlet Outlet, width, height int) string {
	switch n.Kind {
	case KindText:
		return truncateLines(n.Text, width)
	case KindOutlet:
		if outlet == nil {
			return fitHeight("", height)
		}
		return fitHeight(truncateLines(outlet.View(width, height), width), height)
	case KindContainer:
		style := classStyle(n.Class)
		innerW := max(1, width-style.GetHorizontalFrameSize())
		innerH := max(0, height-style.GetVerticalFrameSize())

		fixed, flexible := 0, 0
		for _, c := range n.Children {
			if c.Kind == KindText {
				fixed += lipgloss.Height(c.Text)
			} else {
				flexible++
			}
		}
		share, extra := 0, 0
		if flexible > 0 {
			free := max(0, innerH-fixed)
			share, extra = free/flexible, free%flexible
		}

		parts := make([]string, 0, len(n.Children))
		for _, c := range n.Children {
			h := lipgloss.Height(c.Text)
			if c.Kind != KindText {
				h = share
				if extra > 0 {
					h++
					extra--
				}
			}
			if h == 0 {
				continue
			}
			parts = append(parts, paintNode(c, outlet, innerW, h))
		}
		return style.Render(fitHeight(strings.Join(parts, "\n"), innerH))
	}
	return ""
}

func truncateLines(s string, width int) string {
	lines := strings.Split(s, "\n")
	for i, l := range lines {
		lines[i] = ansi.Truncate(l, width, "")
	}
	return strings.Join(lines, "\n")
}
