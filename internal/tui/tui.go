// Copyright (c) 2026 Rutero Team
// Rutero - tourism discovery companion
// This source code is licensed under the MIT license found in the LICENSE file.

// package tui provides the interactive terminal browser for Rutero.
// This file, tui.go, holds the top-level model that routes between the
// menu and the sub-views.
package tui // import "github.com/rutero-app/rutero/internal/tui"

import (
	"github.com/charmbracelet/lipgloss"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/rutero-app/rutero/internal/api"
	"github.com/rutero-app/rutero/internal/i18n"
	"github.com/rutero-app/rutero/internal/session"
)

// viewState represents which part of the UI is currently active.
type viewState int

const (
	menuView viewState = iota
	spotsView
	routesView
)

// backToMenuMsg is emitted by sub-views when the user backs out.
type backToMenuMsg struct{}

// mainModel is the top-level model. It delegates updates and rendering
// to the currently active sub-model.
type mainModel struct {
	state   viewState
	menu    menuModel
	spots   spotsViewModel
	routes  routesViewModel
	session *session.Manager
	client  *api.Client
	width   int
	height  int
}

// menuModel holds the state for the main menu.
type menuModel struct {
	choices []string
	cursor  int
}

func initialModel(mgr *session.Manager, client *api.Client) mainModel {
	return mainModel{
		state: menuView,
		menu: menuModel{
			choices: []string{
				i18n.T("tui.menu.spots"),
				i18n.T("tui.menu.routes"),
				i18n.T("tui.menu.quit"),
			},
		},
		session: mgr,
		client:  client,
	}
}

func (m mainModel) Init() tea.Cmd {
	return nil
}

func (m mainModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd

	switch msg := msg.(type) {
	case tea.KeyMsg:
		if msg.String() == "ctrl+c" {
			return m, tea.Quit
		}
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
	}

	switch m.state {
	case spotsView:
		if _, ok := msg.(backToMenuMsg); ok {
			m.state = menuView
			return m, nil
		}
		var newModel tea.Model
		newModel, cmd = m.spots.Update(msg)
		m.spots = newModel.(spotsViewModel)

	case routesView:
		if _, ok := msg.(backToMenuMsg); ok {
			m.state = menuView
			return m, nil
		}
		var newModel tea.Model
		newModel, cmd = m.routes.Update(msg)
		m.routes = newModel.(routesViewModel)

	case menuView:
		if key, ok := msg.(tea.KeyMsg); ok {
			switch key.String() {
			case "q", "esc":
				return m, tea.Quit
			case "up", "k":
				if m.menu.cursor > 0 {
					m.menu.cursor--
				}
			case "down", "j":
				if m.menu.cursor < len(m.menu.choices)-1 {
					m.menu.cursor++
				}
			case "enter":
				switch m.menu.cursor {
				case 0:
					m.state = spotsView
					m.spots = newSpotsViewModel(m.client)
					return m, m.spots.Init()
				case 1:
					m.state = routesView
					m.routes = newRoutesViewModel(m.client)
					return m, m.routes.Init()
				case 2:
					return m, tea.Quit
				}
			}
		}
	}

	return m, cmd
}

func (m mainModel) View() string {
	switch m.state {
	case spotsView:
		return m.spots.View()
	case routesView:
		return m.routes.View()
	}

	title := mainTitleStyle.Render("🧭 " + i18n.T("tui.menu.title"))

	var listItems []string
	for i, choice := range m.menu.choices {
		if m.menu.cursor == i {
			listItems = append(listItems, selectedItemStyle.Render("▸ "+choice))
		} else {
			listItems = append(listItems, itemStyle.Render("  "+choice))
		}
	}
	menuPane := paneStyle.Width(40).Render(lipgloss.JoinVertical(lipgloss.Left, listItems...))

	status := i18n.T("session.no_token")
	if p := m.session.Profile(); p != nil {
		status = p.FullName()
	}
	footer := footerStyle.Render(status)

	return lipgloss.JoinVertical(lipgloss.Left, title, "", menuPane, "", footer)
}

// Run starts the Bubble Tea program and blocks until the user quits.
func Run(mgr *session.Manager, client *api.Client) error {
	_, err := tea.NewProgram(initialModel(mgr, client)).Run()
	return err
}
