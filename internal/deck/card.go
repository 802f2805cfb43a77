package deck

import (
	"strconv"
	"strings"
)

// DefaultKind is assigned to cards that do not name a kind.
const DefaultKind = "card"

// Card is one item of a deck.
type Card struct {
	ID    string `json:"id" toml:"id" yaml:"id"`
	Kind  string `json:"kind,omitempty" toml:"kind,omitempty" yaml:"kind,omitempty"`
	Title string `json:"title" toml:"title" yaml:"title"`
	Body  string `json:"body,omitempty" toml:"body,omitempty" yaml:"body,omitempty"`
}

// Normalize trims every card and fills in missing IDs and kinds. IDs default
// to the 1-based position; cards with neither a title nor a body are dropped.
func Normalize(cards []Card) []Card {
	if len(cards) == 0 {
		return nil
	}
	out := make([]Card, 0, len(cards))
	for i, c := range cards {
		c.ID = strings.TrimSpace(c.ID)
		c.Kind = strings.ToLower(strings.TrimSpace(c.Kind))
		c.Title = strings.TrimSpace(c.Title)
		c.Body = strings.TrimSpace(c.Body)
		if c.Title == "" && c.Body == "" {
			continue
		}
		if c.ID == "" {
			c.ID = strconv.Itoa(i + 1)
		}
		if c.Kind == "" {
			c.Kind = DefaultKind
		}
		out = append(out, c)
	}
	if len(out) == 0 {
		return nil
	}
	return out
}

// Equal reports whether two decks hold the same cards in the same order.
func Equal(a, b []Card) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}

// Clone returns an independent copy of cards.
func Clone(cards []Card) []Card {
	if len(cards) == 0 {
		return nil
	}
	dup := make([]Card, len(cards))
	copy(dup, cards)
	return dup
}
