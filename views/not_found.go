package views

import (
	tea "github.com/charmbracelet/bubbletea"
)

type NotFound struct {
	url        string
	suggestion string
}

func NewNotFound(url, suggestion string) *NotFound {
	return &NotFound{url: url, suggestion: suggestion}
}

func (n *NotFound) Scope() string              { return "view:not-found" }
func (n *NotFound) Update(msg tea.Msg) tea.Cmd { return nil }

func (n *NotFound) View(width, height int) string {
	content := "Nothing lives at " + n.url
	if n.suggestion != "" {
		content += "\n" + mutedStyle.Render("Did you mean "+n.suggestion+"?")
	}
	return box{title: "Not found", content: content}.render(width, height)
}
