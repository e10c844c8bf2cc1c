// Copyright (c) 2026 Rutero Team
// Rutero - tourism discovery companion
// This source code is licensed under the MIT license found in the LICENSE file.

package tui

import (
	"context"
	"fmt"

	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/rutero-app/rutero/internal/api"
	"github.com/rutero-app/rutero/internal/i18n"
	"github.com/rutero-app/rutero/internal/model"
)

type routesViewModel struct {
	client *api.Client

	routes []model.TouristRoute

	lines    []interface{} // model.TouristRoute or model.ActivityRoute
	expanded map[int]bool
	cursor   int
	loading  bool
	spin     spinner.Model
	err      error
}

type routesLoadedMsg struct {
	routes []model.TouristRoute
	err    error
}

func newRoutesViewModel(client *api.Client) routesViewModel {
	sp := spinner.New()
	sp.Spinner = spinner.Dot
	sp.Style = helpStyle
	return routesViewModel{
		client:   client,
		expanded: make(map[int]bool),
		loading:  true,
		spin:     sp,
	}
}

func (m routesViewModel) Init() tea.Cmd {
	client := m.client
	load := func() tea.Msg {
		routes, err := client.Routes.Mine(context.Background())
		return routesLoadedMsg{routes: routes, err: err}
	}
	return tea.Batch(load, m.spin.Tick)
}

func (m *routesViewModel) rebuildLines() {
	m.lines = []interface{}{}
	for _, route := range m.routes {
		m.lines = append(m.lines, route)
		if m.expanded[route.ID] {
			for _, stop := range route.ActivityRoutes {
				m.lines = append(m.lines, stop)
			}
		}
	}
	if m.cursor >= len(m.lines) {
		m.cursor = 0
	}
}

func (m routesViewModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case routesLoadedMsg:
		m.loading = false
		m.err = msg.err
		m.routes = msg.routes
		m.rebuildLines()
		return m, nil

	case spinner.TickMsg:
		if !m.loading {
			return m, nil
		}
		var cmd tea.Cmd
		m.spin, cmd = m.spin.Update(msg)
		return m, cmd

	case tea.KeyMsg:
		switch msg.String() {
		case "q", "esc":
			return m, func() tea.Msg { return backToMenuMsg{} }
		case "up", "k":
			if m.cursor > 0 {
				m.cursor--
			}
		case "down", "j":
			if m.cursor < len(m.lines)-1 {
				m.cursor++
			}
		case "enter":
			if m.cursor >= 0 && m.cursor < len(m.lines) {
				if route, ok := m.lines[m.cursor].(model.TouristRoute); ok {
					m.expanded[route.ID] = !m.expanded[route.ID]
					m.rebuildLines()
				}
			}
		}
	}
	return m, nil
}

func (m routesViewModel) View() string {
	if m.err != nil {
		return errorStyle.Render(fmt.Sprintf("Error: %v\n", m.err))
	}

	title := mainTitleStyle.Render("🗺️  " + i18n.T("tui.menu.routes"))

	var listItems []string
	if m.loading {
		listItems = append(listItems, m.spin.View()+helpStyle.Render(i18n.T("tui.loading")))
	} else if len(m.lines) == 0 {
		listItems = append(listItems, helpStyle.Render(i18n.T("routes.none")))
	} else {
		for i, lineItem := range m.lines {
			var lineStr string
			switch item := lineItem.(type) {
			case model.TouristRoute:
				marker := "▶"
				if m.expanded[item.ID] {
					marker = "▼"
				}
				lineStr = fmt.Sprintf("%s %s  %s", marker, item.Name,
					helpStyle.Render(item.DateStart+" .. "+item.DateEnd))
			case model.ActivityRoute:
				name := fmt.Sprintf("spot %d", item.TouristSpot)
				if item.Spot != nil {
					name = item.Spot.Name
				}
				lineStr = fmt.Sprintf("   • %s  %s", item.Date, name)
			}
			if m.cursor == i {
				listItems = append(listItems, selectedItemStyle.Render("▸ "+lineStr))
			} else {
				listItems = append(listItems, itemStyle.Render("  "+lineStr))
			}
		}
	}
	listPane := paneStyle.Width(spotsPaneWidth).Render(lipgloss.JoinVertical(lipgloss.Left, listItems...))

	helpLine := footerStyle.Render(i18n.T("tui.filter_hint"))

	return lipgloss.JoinVertical(lipgloss.Left, title, "", listPane, "", helpLine)
}
