package views

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
)

// Info is what the runtime knows about itself that views may show.
type Info struct {
	Title   string
	Session string
}

type About struct {
	info Info
}

func NewAbout(info Info) *About {
	return &About{info: info}
}

func (a *About) Scope() string              { return "view:about" }
func (a *About) Update(msg tea.Msg) tea.Cmd { return nil }

func (a *About) View(width, height int) string {
	content := fmt.Sprintf("%s\n%s", a.info.Title, mutedStyle.Render("session "+a.info.Session))
	return box{title: "About", content: content}.render(width, height)
}
