package views

import (
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/x/ansi"

	"github.com/camunda-angular/client/core"
	"github.com/camunda-angular/client/router"
)

func newDefaultRouter(t *testing.T) *router.Router {
	t.Helper()
	keys := core.NewKeyRegistry(core.DefaultKeyBindings())
	r, err := router.New(DefaultRoutes(Info{Title: core.AppTitle, Session: "s-1"}, keys))
	if err != nil {
		t.Fatalf("router: %v", err)
	}
	return r
}

func TestDefaultRoutesRedirectRootToHome(t *testing.T) {
	r := newDefaultRouter(t)
	if err := r.Navigate("/"); err != nil {
		t.Fatalf("navigate: %v", err)
	}
	if r.Location() != "/home" {
		t.Fatalf("location = %s, want /home", r.Location())
	}
	view := ansi.Strip(r.View(40, 8))
	if !strings.Contains(view, "Home") || !strings.Contains(view, "/about") {
		t.Fatalf("home should list destinations:\n%s", view)
	}
	if strings.Contains(view, "**") {
		t.Fatalf("wildcard route must not be listed:\n%s", view)
	}
}

func TestHomeSelectionWrapsAndOpens(t *testing.T) {
	keys := core.NewKeyRegistry(core.DefaultKeyBindings())
	h := NewHome(keys, []router.Route{
		{Path: "home", Title: "Home", View: func(router.Snapshot) router.View { return nil }},
		{Path: "about", Title: "About", View: func(router.Snapshot) router.View { return nil }},
		{Path: "process/:id", View: func(router.Snapshot) router.View { return nil }},
	})
	if h.Selected() != "/home" {
		t.Fatalf("selected = %s, want /home", h.Selected())
	}
	h.Update(tea.KeyMsg{Type: tea.KeyDown})
	if h.Selected() != "/about" {
		t.Fatalf("selected = %s, want /about", h.Selected())
	}
	h.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'j'}})
	if h.Selected() != "/home" {
		t.Fatalf("selection should wrap, got %s", h.Selected())
	}
	h.Update(tea.KeyMsg{Type: tea.KeyUp})
	cmd := h.Update(tea.KeyMsg{Type: tea.KeyEnter})
	if cmd == nil {
		t.Fatalf("enter should navigate")
	}
	msg, ok := cmd().(core.NavigateMsg)
	if !ok || msg.Path != "/about" {
		t.Fatalf("enter produced %#v, want navigate to /about", msg)
	}
}

func TestNotFoundShowsSuggestion(t *testing.T) {
	r := newDefaultRouter(t)
	if err := r.Navigate("/abut"); err != nil {
		t.Fatalf("wildcard should catch unknown locations: %v", err)
	}
	view := ansi.Strip(r.View(50, 6))
	if !strings.Contains(view, "/abut") || !strings.Contains(view, "Did you mean /about?") {
		t.Fatalf("not-found view missing details:\n%s", view)
	}
	if r.Scope() != "view:not-found" {
		t.Fatalf("scope = %s", r.Scope())
	}
}

func TestAboutShowsTitleAndSession(t *testing.T) {
	view := ansi.Strip(NewAbout(Info{Title: "camunda-angular", Session: "abc"}).View(40, 6))
	if !strings.Contains(view, "camunda-angular") || !strings.Contains(view, "session abc") {
		t.Fatalf("about view:\n%s", view)
	}
}

func TestBoxDegradesInTinyAreas(t *testing.T) {
	if got := (box{title: "t", content: "c"}).render(2, 1); got != "c" {
		t.Fatalf("tiny box = %q", got)
	}
	if got := (box{title: "t", content: "c"}).render(0, 5); got != "" {
		t.Fatalf("empty area should render nothing, got %q", got)
	}
}
