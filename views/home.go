package views

import (
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/camunda-angular/client/core"
	"github.com/camunda-angular/client/router"
)

const homeScope = "view:home"

type link struct {
	title string
	path  string
}

// Home lists every location reachable without parameters.
type Home struct {
	keys     *core.KeyRegistry
	links    []link
	selected int
}

func NewHome(keys *core.KeyRegistry, routes []router.Route) *Home {
	h := &Home{keys: keys}
	for _, r := range routes {
		path, ok := r.Link()
		if !ok {
			continue
		}
		title := r.Title
		if title == "" {
			title = path
		}
		h.links = append(h.links, link{title: title, path: path})
	}
	return h
}

func (h *Home) Scope() string { return homeScope }

func (h *Home) Selected() string {
	if len(h.links) == 0 {
		return ""
	}
	return h.links[h.selected].path
}

func (h *Home) Update(msg tea.Msg) tea.Cmd {
	km, ok := msg.(tea.KeyMsg)
	if !ok || len(h.links) == 0 {
		return nil
	}
	switch {
	case h.keys.IsAction(km, core.ActionSelectPrev, homeScope):
		h.selected = (h.selected - 1 + len(h.links)) % len(h.links)
	case h.keys.IsAction(km, core.ActionSelectNext, homeScope):
		h.selected = (h.selected + 1) % len(h.links)
	case h.keys.IsAction(km, core.ActionOpen, homeScope):
		return router.NavigateCmd(h.links[h.selected].path)
	}
	return nil
}

func (h *Home) View(width, height int) string {
	lines := make([]string, 0, len(h.links))
	for i, l := range h.links {
		line := "  " + l.title + "  " + mutedStyle.Render(l.path)
		if i == h.selected {
			line = selectedStyle.Render("> "+l.title) + "  " + mutedStyle.Render(l.path)
		}
		lines = append(lines, line)
	}
	if len(lines) == 0 {
		lines = append(lines, mutedStyle.Render("No destinations"))
	}
	return box{title: "Home", content: strings.Join(lines, "\n")}.render(width, height)
}
