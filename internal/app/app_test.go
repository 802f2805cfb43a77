package app

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/five82/coverflow/internal/config"
)

func TestApplyOptions(t *testing.T) {
	cfg := config.Default()
	got := applyOptions(cfg, Options{})
	if got != cfg {
		t.Fatalf("empty options changed config: %+v", got)
	}

	got = applyOptions(cfg, Options{
		Deck:      " https://example.com/deck.json ",
		PollEvery: 5 * time.Second,
		Paging:    true,
		LogLevel:  "debug",
	})
	if got.Deck != "https://example.com/deck.json" {
		t.Errorf("Deck = %q", got.Deck)
	}
	if got.PollInterval != 5*time.Second {
		t.Errorf("PollInterval = %v", got.PollInterval)
	}
	if !got.Paging {
		t.Error("Paging not set")
	}
	if got.LogLevel != "debug" {
		t.Errorf("LogLevel = %q", got.LogLevel)
	}
}

func TestDeckLabel(t *testing.T) {
	tests := map[string]string{
		"/home/me/.config/coverflow/deck.toml": "deck.toml",
		"cards.yaml":                           "cards.yaml",
		"https://example.com/decks/a.json":     "example.com/decks/a.json",
	}
	for in, want := range tests {
		if got := deckLabel(in); got != want {
			t.Errorf("deckLabel(%q) = %q, want %q", in, got, want)
		}
	}
}

func TestOpenLoggerWritesFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "state", "coverflow.log")
	logger, closeLog, err := openLogger(path, "DEBUG")
	if err != nil {
		t.Fatalf("openLogger: %v", err)
	}
	logger.Debug("deck loaded", "cards", 3)
	closeLog()

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read log: %v", err)
	}
	line := string(data)
	if !strings.Contains(line, "msg=\"deck loaded\"") || !strings.Contains(line, "cards=3") {
		t.Fatalf("unexpected log line: %q", line)
	}
}

func TestOpenLoggerRejectsLevel(t *testing.T) {
	if _, _, err := openLogger("", "loud"); err == nil {
		t.Fatal("expected error for unknown level")
	}
}

func TestOpenLoggerEmptyPathDiscards(t *testing.T) {
	logger, closeLog, err := openLogger("", "")
	if err != nil {
		t.Fatalf("openLogger: %v", err)
	}
	defer closeLog()
	logger.Info("nowhere")
}
