package deck

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strings"

	toml "github.com/pelletier/go-toml/v2"
	"gopkg.in/yaml.v3"
)

// ParseTOML reads a deck of [[card]] tables.
func ParseTOML(data []byte) ([]Card, error) {
	var doc struct {
		Card []Card `toml:"card"`
	}
	if err := toml.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("parse toml deck: %w", err)
	}
	return Normalize(doc.Card), nil
}

// ParseYAML reads a deck listed under a top-level cards key.
func ParseYAML(data []byte) ([]Card, error) {
	var doc struct {
		Cards []Card `yaml:"cards"`
	}
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("parse yaml deck: %w", err)
	}
	return Normalize(doc.Cards), nil
}

// ParseJSON accepts either {"cards": [...]} or a bare array of cards.
func ParseJSON(data []byte) ([]Card, error) {
	trimmed := bytes.TrimSpace(data)
	if len(trimmed) == 0 {
		return nil, nil
	}
	if trimmed[0] == '[' {
		var cards []Card
		if err := json.Unmarshal(trimmed, &cards); err != nil {
			return nil, fmt.Errorf("parse json deck: %w", err)
		}
		return Normalize(cards), nil
	}
	var doc struct {
		Cards []Card `json:"cards"`
	}
	if err := json.Unmarshal(trimmed, &doc); err != nil {
		return nil, fmt.Errorf("parse json deck: %w", err)
	}
	return Normalize(doc.Cards), nil
}

// ParseLines turns each non-blank line into a card. A line of the form
// "title | body" splits into both fields.
func ParseLines(lines []string) []Card {
	cards := make([]Card, 0, len(lines))
	for _, line := range lines {
		if strings.TrimSpace(line) == "" {
			continue
		}
		title, body, _ := strings.Cut(line, " | ")
		cards = append(cards, Card{Title: title, Body: body})
	}
	return Normalize(cards)
}
