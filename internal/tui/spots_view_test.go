// Copyright (c) 2026 Rutero Team
// Rutero - tourism discovery companion
// This source code is licensed under the MIT license found in the LICENSE file.

package tui

import (
	"strings"
	"testing"
	"unicode/utf8"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/rutero-app/rutero/internal/i18n"
	"github.com/rutero-app/rutero/internal/model"
)

func testSpots() []model.Spot {
	return []model.Spot{
		{ID: 1, Name: "Mirador del Valle", AverageRating: 4.5, NumReviews: 12},
		{ID: 2, Name: "Cascada Azul", AverageRating: 3.8, NumReviews: 4},
		{ID: 3, Name: "Museo Central", AverageRating: 4.1, NumReviews: 9},
	}
}

func loadedSpotsModel() spotsViewModel {
	m := newSpotsViewModel(nil)
	updated, _ := m.Update(spotsLoadedMsg{spots: testSpots()})
	return updated.(spotsViewModel)
}

func key(s string) tea.KeyMsg {
	if len(s) == 1 {
		return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
	}
	switch s {
	case "enter":
		return tea.KeyMsg{Type: tea.KeyEnter}
	case "esc":
		return tea.KeyMsg{Type: tea.KeyEsc}
	case "up":
		return tea.KeyMsg{Type: tea.KeyUp}
	case "down":
		return tea.KeyMsg{Type: tea.KeyDown}
	}
	return tea.KeyMsg{}
}

func TestSpotsViewShowsLoadedSpots(t *testing.T) {
	m := loadedSpotsModel()
	view := m.View()
	for _, name := range []string{"Mirador del Valle", "Cascada Azul", "Museo Central"} {
		if !strings.Contains(view, name) {
			t.Errorf("view missing %q", name)
		}
	}
}

func TestSpotsViewCursorMovement(t *testing.T) {
	m := loadedSpotsModel()

	updated, _ := m.Update(key("down"))
	m = updated.(spotsViewModel)
	if m.cursor != 1 {
		t.Errorf("cursor = %d, want 1", m.cursor)
	}

	updated, _ = m.Update(key("up"))
	m = updated.(spotsViewModel)
	if m.cursor != 0 {
		t.Errorf("cursor = %d, want 0", m.cursor)
	}

	// The cursor does not move above the first line.
	updated, _ = m.Update(key("up"))
	m = updated.(spotsViewModel)
	if m.cursor != 0 {
		t.Errorf("cursor = %d, want 0", m.cursor)
	}
}

func TestSpotsViewFilter(t *testing.T) {
	m := loadedSpotsModel()

	updated, _ := m.Update(key("/"))
	m = updated.(spotsViewModel)
	if !m.isFiltering {
		t.Fatal("not in filtering mode after /")
	}

	for _, r := range "casca" {
		updated, _ = m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{r}})
		m = updated.(spotsViewModel)
	}

	if len(m.lines) != 1 {
		t.Fatalf("filtered lines = %d, want 1", len(m.lines))
	}
	if spot, ok := m.lines[0].(model.Spot); !ok || spot.Name != "Cascada Azul" {
		t.Errorf("filtered line = %+v", m.lines[0])
	}

	// Esc clears the filter.
	updated, _ = m.Update(key("esc"))
	m = updated.(spotsViewModel)
	if len(m.lines) != 3 {
		t.Errorf("lines after clearing filter = %d, want 3", len(m.lines))
	}
}

func TestSpotsViewExpandLoadsReviews(t *testing.T) {
	m := loadedSpotsModel()

	updated, cmd := m.Update(key("enter"))
	m = updated.(spotsViewModel)
	if !m.expanded[1] {
		t.Fatal("first spot not expanded after enter")
	}
	if cmd == nil {
		t.Fatal("no review fetch issued on first expand")
	}

	updated, _ = m.Update(spotReviewsMsg{spotID: 1, reviews: []model.Review{
		{ID: 11, Rating: 5, Comment: "Impresionante"},
	}})
	m = updated.(spotsViewModel)

	if len(m.lines) != 4 {
		t.Fatalf("lines = %d, want 4 (3 spots + 1 review)", len(m.lines))
	}
	if !strings.Contains(m.View(), "Impresionante") {
		t.Error("view missing review comment")
	}

	// Collapsing and re-expanding reuses the cached reviews.
	updated, _ = m.Update(key("enter"))
	m = updated.(spotsViewModel)
	updated, cmd = m.Update(key("enter"))
	m = updated.(spotsViewModel)
	if cmd != nil {
		t.Error("second expand refetched reviews")
	}
	if len(m.lines) != 4 {
		t.Errorf("lines = %d, want 4", len(m.lines))
	}
}

func TestSpotsViewLongAccentedCommentStaysValid(t *testing.T) {
	m := loadedSpotsModel()

	updated, _ := m.Update(key("enter"))
	m = updated.(spotsViewModel)

	long := strings.Repeat("cañón á ", 10)
	updated, _ = m.Update(spotReviewsMsg{spotID: 1, reviews: []model.Review{
		{ID: 11, Rating: 4, Comment: long},
	}})
	m = updated.(spotsViewModel)

	view := m.View()
	if !utf8.ValidString(view) {
		t.Error("view contains invalid UTF-8 after comment truncation")
	}
	if !strings.Contains(view, string([]rune(long)[:47])+"...") {
		t.Error("comment not truncated on a rune boundary")
	}
}

func TestSpotsViewBackToMenu(t *testing.T) {
	m := loadedSpotsModel()

	_, cmd := m.Update(key("q"))
	if cmd == nil {
		t.Fatal("no command on q")
	}
	if _, ok := cmd().(backToMenuMsg); !ok {
		t.Error("q did not produce backToMenuMsg")
	}
}

func TestSpotsViewLoading(t *testing.T) {
	i18n.Init("en")
	m := newSpotsViewModel(nil)
	if !strings.Contains(m.View(), i18n.T("tui.loading")) {
		t.Error("view missing loading indicator")
	}
}
