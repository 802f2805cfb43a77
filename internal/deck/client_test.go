package deck

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"
)

func TestParseDeckURL(t *testing.T) {
	tests := []struct {
		in      string
		wantErr bool
	}{
		{"http://example.com/deck.json", false},
		{"https://example.com/deck.json#top", false},
		{"", true},
		{"ftp://example.com/deck.json", true},
		{"http://", true},
	}
	for _, tt := range tests {
		u, err := parseDeckURL(tt.in)
		if (err != nil) != tt.wantErr {
			t.Fatalf("parseDeckURL(%q) error = %v, wantErr %v", tt.in, err, tt.wantErr)
		}
		if err == nil && u.Fragment != "" {
			t.Fatalf("parseDeckURL(%q) kept fragment %q", tt.in, u.Fragment)
		}
	}
}

func TestClient_FetchCards(t *testing.T) {
	t.Parallel()

	var gotUserAgent, gotAccept string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotUserAgent = r.Header.Get("User-Agent")
		gotAccept = r.Header.Get("Accept")
		switch r.URL.Path {
		case "/deck.json":
			w.Header().Set("Content-Type", "application/json")
			_, _ = w.Write([]byte(`{"cards":[{"id":"a","title":"Alpha"},{"title":"Beta","kind":"Note"}]}`))
		case "/broken.json":
			_, _ = w.Write([]byte(`{"cards":`))
		default:
			http.NotFound(w, r)
		}
	}))
	t.Cleanup(server.Close)

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	t.Cleanup(cancel)

	c, err := NewClient(server.URL + "/deck.json")
	if err != nil {
		t.Fatalf("NewClient returned error: %v", err)
	}
	cards, err := c.FetchCards(ctx)
	if err != nil {
		t.Fatalf("FetchCards returned error: %v", err)
	}
	if len(cards) != 2 || cards[0].ID != "a" || cards[1].Kind != "note" {
		t.Fatalf("FetchCards = %#v, want 2 normalized cards", cards)
	}
	if gotUserAgent != defaultUserAgent {
		t.Fatalf("User-Agent = %q, want %q", gotUserAgent, defaultUserAgent)
	}
	if gotAccept != "application/json" {
		t.Fatalf("Accept = %q, want application/json", gotAccept)
	}

	missing, _ := NewClient(server.URL + "/missing.json")
	if _, err := missing.FetchCards(ctx); err == nil || !strings.Contains(err.Error(), "status 404") {
		t.Fatalf("FetchCards 404 error = %v, want status 404", err)
	}

	broken, _ := NewClient(server.URL + "/broken.json")
	if _, err := broken.FetchCards(ctx); err == nil || !strings.Contains(err.Error(), "parse json deck") {
		t.Fatalf("FetchCards broken error = %v, want parse json deck", err)
	}
}

func TestClient_NilReceiver(t *testing.T) {
	var c *Client
	if _, err := c.FetchCards(context.Background()); err == nil {
		t.Fatalf("nil client FetchCards returned nil error")
	}
}
