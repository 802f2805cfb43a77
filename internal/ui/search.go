package ui

import (
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/sahilm/fuzzy"

	"github.com/five82/coverflow/internal/deck"
)

const maxSearchMatches = 6

// cardTitles exposes card titles and kinds to the fuzzy matcher.
type cardTitles []deck.Card

func (c cardTitles) String(i int) string { return c[i].Title + " " + c[i].Kind }
func (c cardTitles) Len() int            { return len(c) }

// search is the "/" jump-to-card prompt.
type search struct {
	input   textinput.Model
	active  bool
	matches fuzzy.Matches
	cursor  int
}

func newSearch() search {
	ti := textinput.New()
	ti.Prompt = "/ "
	ti.Placeholder = "jump to card"
	ti.CharLimit = 64
	return search{input: ti}
}

func (s *search) open() tea.Cmd {
	s.active = true
	s.input.SetValue("")
	s.matches = nil
	s.cursor = 0
	return s.input.Focus()
}

func (s *search) close() {
	s.active = false
	s.input.Blur()
}

// update feeds a key to the text input and refreshes the matches.
func (s *search) update(msg tea.Msg, cards []deck.Card) tea.Cmd {
	var cmd tea.Cmd
	s.input, cmd = s.input.Update(msg)
	s.refilter(cards)
	return cmd
}

func (s *search) refilter(cards []deck.Card) {
	q := strings.TrimSpace(s.input.Value())
	if q == "" {
		s.matches = nil
		s.cursor = 0
		return
	}
	s.matches = fuzzy.FindFrom(q, cardTitles(cards))
	if len(s.matches) > maxSearchMatches {
		s.matches = s.matches[:maxSearchMatches]
	}
	if s.cursor >= len(s.matches) {
		s.cursor = 0
	}
}

func (s *search) move(delta int) {
	if len(s.matches) == 0 {
		return
	}
	s.cursor = (s.cursor + delta + len(s.matches)) % len(s.matches)
}

// selected returns the deck index of the highlighted match.
func (s *search) selected() (int, bool) {
	if s.cursor < 0 || s.cursor >= len(s.matches) {
		return 0, false
	}
	return s.matches[s.cursor].Index, true
}
