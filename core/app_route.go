package core

import (
	tea "github.com/charmbracelet/bubbletea"
)

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width, m.height = msg.Width, msg.Height
		return m, nil
	case StatusMsg:
		m.status = msg.Text
		m.statusErr = msg.IsErr
		return m, nil
	case NavigateMsg:
		return m.navigate(func(nav Navigator) error { return nav.Navigate(msg.Path) })
	case BackMsg:
		return m.navigate(Navigator.Back)
	case tea.KeyMsg:
		if msg.String() == "ctrl+c" {
			m.quitting = true
			return m, tea.Quit
		}
		scope := m.ActiveScope()
		if m.keys.IsAction(msg, ActionQuit, scope) {
			m.quitting = true
			return m, tea.Quit
		}
		if m.keys.IsAction(msg, ActionBack, scope) {
			return m.navigate(Navigator.Back)
		}
		if m.keys.IsAction(msg, ActionHome, scope) {
			initial := m.initialRoute
			return m.navigate(func(nav Navigator) error { return nav.Navigate(initial) })
		}
	}

	if m.nav == nil {
		return m, nil
	}
	return m, m.nav.Update(msg)
}

func (m Model) navigate(fn func(Navigator) error) (tea.Model, tea.Cmd) {
	if m.nav == nil {
		return m, nil
	}
	before := m.nav.Location()
	if err := fn(m.nav); err != nil {
		m.SetError(err)
		return m, nil
	}
	if m.nav.Location() != before {
		m.navigations++
	}
	m.SetStatus("Navigated to " + m.nav.Location())
	return m, nil
}
