package ui

import (
	"github.com/five82/coverflow/internal/carousel"
	"github.com/five82/coverflow/internal/deck"
)

// deckSource adapts the current deck to carousel.Source. Cards are laid out
// at the size last set by resize; changing the deck or the size notifies
// subscribers so the carousel rebuilds its window.
type deckSource struct {
	cards []deck.Card
	kinds map[string]carousel.Kind
	w, h  int

	subs   map[int]func()
	nextID int

	// created counts visuals built from scratch rather than recycled.
	created int
}

var (
	_ carousel.Source   = (*deckSource)(nil)
	_ carousel.Notifier = (*deckSource)(nil)
)

func newDeckSource(w, h int) *deckSource {
	return &deckSource{
		kinds: make(map[string]carousel.Kind),
		w:     w,
		h:     h,
		subs:  make(map[int]func()),
	}
}

func (s *deckSource) Count() int {
	return len(s.cards)
}

// KindOf maps a card kind to a stable pool id. Ids are handed out in order of
// first appearance and never reused, so a kind keeps its pool across reloads.
func (s *deckSource) KindOf(index int) carousel.Kind {
	name := s.cards[index].Kind
	if k, ok := s.kinds[name]; ok {
		return k
	}
	k := carousel.Kind(len(s.kinds))
	s.kinds[name] = k
	return k
}

func (s *deckSource) ContentAt(index int, recycled carousel.Visual) carousel.Visual {
	v, ok := recycled.(*cardVisual)
	if !ok {
		v = &cardVisual{}
		s.created++
	}
	v.fill(index, s.cards[index], s.KindOf(index), s.w, s.h)
	return v
}

func (s *deckSource) Subscribe(fn func()) func() {
	id := s.nextID
	s.nextID++
	s.subs[id] = fn
	return func() { delete(s.subs, id) }
}

// replace swaps in a new deck and notifies subscribers.
func (s *deckSource) replace(cards []deck.Card) {
	s.cards = cards
	s.notify()
}

// resize changes the card size, notifying only when it actually changed.
func (s *deckSource) resize(w, h int) {
	if w == s.w && h == s.h {
		return
	}
	s.w, s.h = w, h
	s.notify()
}

func (s *deckSource) card(index int) (deck.Card, bool) {
	if index < 0 || index >= len(s.cards) {
		return deck.Card{}, false
	}
	return s.cards[index], true
}

func (s *deckSource) notify() {
	for _, fn := range s.subs {
		fn()
	}
}
