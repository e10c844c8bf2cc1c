// Copyright (c) 2026 Rutero Team
// Rutero - tourism discovery companion
// This source code is licensed under the MIT license found in the LICENSE file.

package tui

import (
	"context"
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/rutero-app/rutero/internal/api"
	"github.com/rutero-app/rutero/internal/i18n"
	"github.com/rutero-app/rutero/internal/model"
	"github.com/rutero-app/rutero/util/slicest"
)

const spotsPaneWidth = 72

type spotsViewModel struct {
	client *api.Client

	// Data
	spots         []model.Spot
	reviewsBySpot map[int][]model.Review

	// State
	lines       []interface{} // model.Spot or model.Review
	expanded    map[int]bool
	cursor      int
	filter      string
	isFiltering bool
	loading     bool
	spin        spinner.Model
	err         error
}

// spotsLoadedMsg carries the spot list fetched at view start.
type spotsLoadedMsg struct {
	spots []model.Spot
	err   error
}

// spotReviewsMsg carries the lazily fetched reviews of one spot.
type spotReviewsMsg struct {
	spotID  int
	reviews []model.Review
	err     error
}

func newSpotsViewModel(client *api.Client) spotsViewModel {
	sp := spinner.New()
	sp.Spinner = spinner.Dot
	sp.Style = helpStyle
	return spotsViewModel{
		client:        client,
		reviewsBySpot: make(map[int][]model.Review),
		expanded:      make(map[int]bool),
		loading:       true,
		spin:          sp,
	}
}

func (m spotsViewModel) Init() tea.Cmd {
	client := m.client
	load := func() tea.Msg {
		spots, err := client.Spots.ListAll(context.Background())
		return spotsLoadedMsg{spots: spots, err: err}
	}
	return tea.Batch(load, m.spin.Tick)
}

func loadReviewsCmd(client *api.Client, spotID int) tea.Cmd {
	return func() tea.Msg {
		page, err := client.Reviews.ListBySpot(context.Background(), spotID, 10, 0)
		if err != nil {
			return spotReviewsMsg{spotID: spotID, err: err}
		}
		return spotReviewsMsg{spotID: spotID, reviews: page.Results}
	}
}

// rebuildLines flattens spots and their expanded reviews for display.
func (m *spotsViewModel) rebuildLines() {
	m.lines = []interface{}{}

	spots := m.spots
	if m.filter != "" {
		needle := strings.ToLower(m.filter)
		spots = slicest.Filter(m.spots, func(s model.Spot) bool {
			return strings.Contains(strings.ToLower(s.Name), needle)
		})
	}

	for _, spot := range spots {
		m.lines = append(m.lines, spot)
		if m.expanded[spot.ID] {
			for _, review := range m.reviewsBySpot[spot.ID] {
				m.lines = append(m.lines, review)
			}
		}
	}

	if m.cursor >= len(m.lines) {
		m.cursor = 0
	}
}

func (m spotsViewModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case spotsLoadedMsg:
		m.loading = false
		m.err = msg.err
		m.spots = msg.spots
		m.rebuildLines()
		return m, nil

	case spotReviewsMsg:
		if msg.err == nil {
			m.reviewsBySpot[msg.spotID] = msg.reviews
			m.rebuildLines()
		}
		return m, nil

	case spinner.TickMsg:
		if !m.loading {
			return m, nil
		}
		var cmd tea.Cmd
		m.spin, cmd = m.spin.Update(msg)
		return m, cmd

	case tea.KeyMsg:
		if m.isFiltering {
			switch msg.Type {
			case tea.KeyEsc:
				m.isFiltering = false
				m.filter = ""
				m.rebuildLines()
			case tea.KeyEnter:
				m.isFiltering = false
			case tea.KeyBackspace:
				if len(m.filter) > 0 {
					m.filter = m.filter[:len(m.filter)-1]
					m.rebuildLines()
				}
			case tea.KeyRunes:
				m.filter += string(msg.Runes)
				m.rebuildLines()
			}
			return m, nil
		}

		switch msg.String() {
		case "/":
			m.isFiltering = true
			m.filter = ""
			m.rebuildLines()
			return m, nil
		case "q", "esc":
			if m.filter != "" {
				m.filter = ""
				m.isFiltering = false
				m.rebuildLines()
				return m, nil
			}
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
				if spot, ok := m.lines[m.cursor].(model.Spot); ok {
					m.expanded[spot.ID] = !m.expanded[spot.ID]
					m.rebuildLines()
					if m.expanded[spot.ID] {
						if _, have := m.reviewsBySpot[spot.ID]; !have {
							return m, loadReviewsCmd(m.client, spot.ID)
						}
					}
				}
			}
		}
	}
	return m, nil
}

func (m spotsViewModel) View() string {
	if m.err != nil {
		return errorStyle.Render(fmt.Sprintf("Error: %v\n", m.err))
	}

	title := mainTitleStyle.Render("🏞️  " + i18n.T("tui.menu.spots"))

	var listItems []string
	if m.loading {
		listItems = append(listItems, m.spin.View()+helpStyle.Render(i18n.T("tui.loading")))
	} else if len(m.lines) == 0 {
		listItems = append(listItems, helpStyle.Render(i18n.T("spots.none")))
	} else {
		for i, lineItem := range m.lines {
			var lineStr string
			switch item := lineItem.(type) {
			case model.Spot:
				marker := "▶"
				if m.expanded[item.ID] {
					marker = "▼"
				}
				rating := ratingStyle.Render(fmt.Sprintf("%.1f★", item.AverageRating))
				lineStr = fmt.Sprintf("%s %s  %s (%d)", marker, item.Name, rating, item.NumReviews)
				if item.Location.Name != "" {
					lineStr += helpStyle.Render(" · " + item.Location.Name)
				}
			case model.Review:
				comment := item.Comment
				if runes := []rune(comment); len(runes) > 50 {
					comment = string(runes[:47]) + "..."
				}
				lineStr = fmt.Sprintf("   • %s %s", strings.Repeat("★", item.Rating), comment)
			}
			if m.cursor == i {
				listItems = append(listItems, selectedItemStyle.Render("▸ "+lineStr))
			} else {
				listItems = append(listItems, itemStyle.Render("  "+lineStr))
			}
		}
	}
	listPane := paneStyle.Width(spotsPaneWidth).Render(lipgloss.JoinVertical(lipgloss.Left, listItems...))

	var filterStatus string
	if m.isFiltering {
		filterStatus = "/" + m.filter
	} else if m.filter != "" {
		filterStatus = "filter: " + m.filter
	} else {
		filterStatus = i18n.T("tui.filter_hint")
	}
	helpLine := footerStyle.Render(filterStatus)

	return lipgloss.JoinVertical(lipgloss.Left, title, "", listPane, "", helpLine)
}
