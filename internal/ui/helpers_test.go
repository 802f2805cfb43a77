package ui

import (
	"fmt"
	"path/filepath"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/require"

	"github.com/five82/coverflow/internal/config"
	"github.com/five82/coverflow/internal/deck"
	"github.com/five82/coverflow/internal/state"
)

var natoTitles = []string{
	"Alpha", "Bravo", "Charlie", "Delta", "Echo",
	"Foxtrot", "Golf", "Hotel", "India", "Juliet",
}

func testCards(n int) []deck.Card {
	cards := make([]deck.Card, n)
	for i := range cards {
		title := fmt.Sprintf("Card %d", i)
		if i < len(natoTitles) {
			title = natoTitles[i]
		}
		kind := "note"
		if i%3 == 0 {
			kind = "quote"
		}
		cards[i] = deck.Card{
			ID:    fmt.Sprint(i + 1),
			Title: title,
			Kind:  kind,
			Body:  "Body of " + title,
		}
	}
	return cards
}

// newTestModel returns a sized model with a frozen clock. 120x42 leaves a
// 120x40 carousel viewport and 40x32 cards.
func newTestModel(t *testing.T) Model {
	t.Helper()
	m := New(Options{
		Config:    config.Default(),
		DeckName:  "test deck",
		PrefsPath: filepath.Join(t.TempDir(), "prefs.toml"),
	})
	t0 := time.Date(2026, 1, 2, 3, 4, 5, 0, time.UTC)
	m.now = func() time.Time { return t0 }
	m, _ = update(t, m, tea.WindowSizeMsg{Width: 120, Height: 42})
	return m
}

func loadCards(t *testing.T, m Model, revision uint64, cards []deck.Card) Model {
	t.Helper()
	m, _ = update(t, m, snapshotMsg(state.Snapshot{
		Cards:    cards,
		Revision: revision,
		Loaded:   true,
	}))
	return m
}

func update(t *testing.T, m Model, msg tea.Msg) (Model, tea.Cmd) {
	t.Helper()
	next, cmd := m.Update(msg)
	out, ok := next.(Model)
	require.True(t, ok, "Update returned %T", next)
	return out, cmd
}

func runes(s string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func press(x, y int) tea.MouseMsg {
	return tea.MouseMsg{X: x, Y: y, Action: tea.MouseActionPress, Button: tea.MouseButtonLeft}
}

func motion(x, y int) tea.MouseMsg {
	return tea.MouseMsg{X: x, Y: y, Action: tea.MouseActionMotion, Button: tea.MouseButtonLeft}
}

func release(x, y int) tea.MouseMsg {
	return tea.MouseMsg{X: x, Y: y, Action: tea.MouseActionRelease, Button: tea.MouseButtonNone}
}
