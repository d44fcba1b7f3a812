package core

import (
	tea "github.com/charmbracelet/bubbletea"
)

// Outlet renders whatever view the navigator currently has mounted.
type Outlet interface {
	View(width, height int) string
}

// Navigator is the routing collaborator as seen from the shell. Errors it
// returns are shown to the user unchanged.
type Navigator interface {
	Outlet
	Navigate(path string) error
	Back() error
	Location() string
	Scope() string
	Update(msg tea.Msg) tea.Cmd
}

type Model struct {
	width        int
	height       int
	shell        *Shell
	nav          Navigator
	keys         *KeyRegistry
	initialRoute string
	status       string
	statusErr    bool
	navigations  int
	quitting     bool
}

func NewModel(shell *Shell, nav Navigator, keys *KeyRegistry, initialRoute string) Model {
	if initialRoute == "" {
		initialRoute = "/"
	}
	return Model{
		shell:        shell,
		nav:          nav,
		keys:         keys,
		initialRoute: initialRoute,
		status:       "Ready",
		width:        80,
		height:       24,
	}
}

func (m Model) Init() tea.Cmd {
	initial := m.initialRoute
	return tea.Batch(
		tea.SetWindowTitle(m.shell.Title()),
		func() tea.Msg { return NavigateMsg{Path: initial} },
	)
}

func (m Model) Shell() *Shell {
	return m.shell
}

func (m Model) Status() (string, bool) {
	return m.status, m.statusErr
}

func (m *Model) SetStatus(msg string) {
	m.status = msg
	m.statusErr = false
}

func (m *Model) SetError(err error) {
	if err == nil {
		m.status = ""
		m.statusErr = false
		return
	}
	m.status = err.Error()
	m.statusErr = true
}

func (m Model) ActiveScope() string {
	if m.nav == nil {
		return "app"
	}
	if scope := m.nav.Scope(); scope != "" {
		return scope
	}
	return "app"
}
