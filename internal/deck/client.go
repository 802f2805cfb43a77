package deck

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"
)

// Fetcher loads a deck; *Client and file decks both satisfy it.
type Fetcher interface {
	FetchCards(ctx context.Context) ([]Card, error)
}

var _ Fetcher = (*Client)(nil)

// Client fetches a JSON deck over HTTP.
type Client struct {
	url       *url.URL
	http      *http.Client
	userAgent string
}

const (
	defaultUserAgent = "coverflow/0.1"
	requestTimeout   = 5 * time.Second
	maxBodyBytes     = 8 << 20
)

// NewClient builds a Client for an http or https deck URL.
func NewClient(rawURL string) (*Client, error) {
	u, err := parseDeckURL(rawURL)
	if err != nil {
		return nil, err
	}
	return &Client{
		url:       u,
		http:      &http.Client{Timeout: requestTimeout},
		userAgent: defaultUserAgent,
	}, nil
}

// FetchCards downloads and parses the deck.
func (c *Client) FetchCards(ctx context.Context) ([]Card, error) {
	if c == nil {
		return nil, fmt.Errorf("client is nil")
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.url.String(), nil)
	if err != nil {
		return nil, fmt.Errorf("create request: %w", err)
	}
	req.Header.Set("Accept", "application/json")
	req.Header.Set("User-Agent", c.userAgent)

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, fmt.Errorf("execute request: %w", err)
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode >= 400 {
		return nil, fmt.Errorf("deck %s returned status %d", c.url.Redacted(), resp.StatusCode)
	}
	body, err := io.ReadAll(io.LimitReader(resp.Body, maxBodyBytes))
	if err != nil {
		return nil, fmt.Errorf("read response: %w", err)
	}
	return ParseJSON(body)
}

func parseDeckURL(raw string) (*url.URL, error) {
	trimmed := strings.TrimSpace(raw)
	if trimmed == "" {
		return nil, fmt.Errorf("deck url is empty")
	}
	u, err := url.Parse(trimmed)
	if err != nil {
		return nil, fmt.Errorf("parse deck url %q: %w", raw, err)
	}
	if u.Scheme != "http" && u.Scheme != "https" {
		return nil, fmt.Errorf("deck url %q: unsupported scheme %q", raw, u.Scheme)
	}
	if u.Host == "" {
		return nil, fmt.Errorf("deck url %q: missing host", raw)
	}
	u.Fragment = ""
	return u, nil
}
