package deck

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// File is a deck stored on disk; the format follows the extension.
type File struct {
	Path string
}

var _ Fetcher = File{}

// FetchCards reads the file. A missing file is an empty deck.
func (f File) FetchCards(ctx context.Context) ([]Card, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	switch strings.ToLower(filepath.Ext(f.Path)) {
	case ".toml":
		return parseFile(f.Path, ParseTOML)
	case ".yaml", ".yml":
		return parseFile(f.Path, ParseYAML)
	case ".json":
		return parseFile(f.Path, ParseJSON)
	default:
		lines, err := ReadTail(f.Path, MaxLines)
		if err != nil {
			return nil, err
		}
		return ParseLines(lines), nil
	}
}

// Open returns the Fetcher for a deck location: an HTTP client for URLs and a
// File otherwise.
func Open(location string) (Fetcher, error) {
	loc := strings.TrimSpace(location)
	if strings.HasPrefix(loc, "http://") || strings.HasPrefix(loc, "https://") {
		return NewClient(loc)
	}
	if loc == "" {
		return nil, fmt.Errorf("deck location is empty")
	}
	return File{Path: loc}, nil
}

// Load opens location and fetches its cards once.
func Load(ctx context.Context, location string) ([]Card, error) {
	f, err := Open(location)
	if err != nil {
		return nil, err
	}
	return f.FetchCards(ctx)
}

func parseFile(path string, parse func([]byte) ([]Card, error)) ([]Card, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, nil
		}
		return nil, fmt.Errorf("open deck: %w", err)
	}
	return parse(data)
}
