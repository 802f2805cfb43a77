package ui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-runewidth"
)

// styleID indexes a canvas palette entry; 0 is unstyled. Palettes add one
// title style per card kind.
type styleID uint16

// cell is one terminal cell. A zero rune marks the right half of a wide rune.
type cell struct {
	r     rune
	style styleID
}

// canvas is an off-screen cell grid that cards are painted onto back to
// front, so nearer cards overwrite the ones behind them.
type canvas struct {
	width, height int
	cells         []cell
	styles        []lipgloss.Style
}

func newCanvas(width, height int) *canvas {
	width, height = max(width, 0), max(height, 0)
	c := &canvas{
		width:  width,
		height: height,
		cells:  make([]cell, width*height),
		styles: []lipgloss.Style{lipgloss.NewStyle()},
	}
	for i := range c.cells {
		c.cells[i] = cell{r: ' '}
	}
	return c
}

// addStyle registers s and returns its id.
func (c *canvas) addStyle(s lipgloss.Style) styleID {
	c.styles = append(c.styles, s)
	return styleID(len(c.styles) - 1)
}

func (c *canvas) inside(x, y int) bool {
	return x >= 0 && x < c.width && y >= 0 && y < c.height
}

func (c *canvas) set(x, y int, r rune, st styleID) {
	if !c.inside(x, y) {
		return
	}
	i := y*c.width + x
	// Overwriting either half of a wide rune blanks the other half.
	if c.cells[i].r == 0 && x > 0 {
		c.cells[i-1] = cell{r: ' ', style: c.cells[i-1].style}
	}
	if x+1 < c.width && c.cells[i+1].r == 0 {
		c.cells[i+1] = cell{r: ' ', style: c.cells[i+1].style}
	}
	c.cells[i] = cell{r: r, style: st}
}

// text writes s starting at (x, y), clipped to maxWidth cells. It returns
// the number of cells written.
func (c *canvas) text(x, y int, s string, maxWidth int, st styleID) int {
	n := 0
	for _, r := range s {
		w := runewidth.RuneWidth(r)
		if w == 0 {
			continue
		}
		if n+w > maxWidth {
			break
		}
		if w == 2 && !c.inside(x+n+1, y) {
			break
		}
		c.set(x+n, y, r, st)
		if w == 2 {
			c.set(x+n+1, y, 0, st)
		}
		n += w
	}
	return n
}

// fill paints a rectangle with spaces in style st.
func (c *canvas) fill(x, y, w, h int, st styleID) {
	for row := y; row < y+h; row++ {
		for col := x; col < x+w; col++ {
			c.set(col, row, ' ', st)
		}
	}
}

// box draws a border around the rectangle using b's glyphs.
func (c *canvas) box(x, y, w, h int, b lipgloss.Border, st styleID) {
	if w < 2 || h < 2 {
		return
	}
	right, bottom := x+w-1, y+h-1
	c.set(x, y, firstRune(b.TopLeft), st)
	c.set(right, y, firstRune(b.TopRight), st)
	c.set(x, bottom, firstRune(b.BottomLeft), st)
	c.set(right, bottom, firstRune(b.BottomRight), st)
	for col := x + 1; col < right; col++ {
		c.set(col, y, firstRune(b.Top), st)
		c.set(col, bottom, firstRune(b.Bottom), st)
	}
	for row := y + 1; row < bottom; row++ {
		c.set(x, row, firstRune(b.Left), st)
		c.set(right, row, firstRune(b.Right), st)
	}
}

// String renders the grid, emitting one styled run per stretch of equal style.
func (c *canvas) String() string {
	var b strings.Builder
	var run strings.Builder
	for y := 0; y < c.height; y++ {
		if y > 0 {
			b.WriteByte('\n')
		}
		row := c.cells[y*c.width : (y+1)*c.width]
		cur := styleID(0)
		flush := func() {
			if run.Len() == 0 {
				return
			}
			if cur == 0 {
				b.WriteString(run.String())
			} else {
				b.WriteString(c.styles[cur].Render(run.String()))
			}
			run.Reset()
		}
		for _, cl := range row {
			if cl.r == 0 {
				continue
			}
			if cl.style != cur {
				flush()
				cur = cl.style
			}
			run.WriteRune(cl.r)
		}
		flush()
	}
	return b.String()
}

func firstRune(s string) rune {
	for _, r := range s {
		return r
	}
	return ' '
}
