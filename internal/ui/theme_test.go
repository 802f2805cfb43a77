package ui

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNextThemeCycles(t *testing.T) {
	names := ThemeNames()
	for i, name := range names {
		assert.Equal(t, names[(i+1)%len(names)], NextTheme(name))
	}
	assert.Equal(t, names[0], NextTheme("unknown"))
}

func TestGetThemeFallsBack(t *testing.T) {
	assert.Equal(t, "Nightfox", GetTheme("missing").Name)
	assert.Equal(t, "Slate", GetTheme("Slate").Name)
}

func TestKindColor(t *testing.T) {
	for _, name := range ThemeNames() {
		th := GetTheme(name)
		assert.Equal(t, th.Accent, th.KindColor("no-such-kind"), name)
		for kind, color := range th.KindColors {
			assert.Equal(t, color, th.KindColor(" "+kind+" "), name)
		}
	}
}
