package ui

import (
	"testing"

	"github.com/mattn/go-runewidth"
	"github.com/stretchr/testify/assert"
)

func TestTruncate(t *testing.T) {
	tests := []struct {
		in    string
		width int
		want  string
	}{
		{"  short  ", 10, "short"},
		{"exactly10!", 10, "exactly10!"},
		{"a longer title", 8, "a longe…"},
		{"anything", 0, ""},
		{"日本語タイトル", 6, "日本…"},
	}
	for _, tt := range tests {
		got := truncate(tt.in, tt.width)
		assert.Equal(t, tt.want, got, "truncate(%q, %d)", tt.in, tt.width)
		assert.LessOrEqual(t, runewidth.StringWidth(got), max(tt.width, 0))
	}
}

func TestWrap(t *testing.T) {
	assert.Equal(t, []string{"the quick", "brown fox"}, wrap("the quick brown fox", 10))
	assert.Equal(t, []string{"abcde", "fghij", "k"}, wrap("abcdefghijk", 5))
	assert.Equal(t, []string{"one", "", "two"}, wrap("one\n\ntwo", 10))
	assert.Nil(t, wrap("anything", 0))

	for _, line := range wrap("日本語の長いタイトルを折り返す", 7) {
		assert.LessOrEqual(t, runewidth.StringWidth(line), 7, line)
	}
}

func TestPadRight(t *testing.T) {
	assert.Equal(t, "ab   ", padRight("ab", 5))
	assert.Equal(t, "abcd…", padRight("abcdefgh", 5))
}
