package ui

import (
	"math"

	"github.com/charmbracelet/lipgloss"

	"github.com/five82/coverflow/internal/carousel"
	"github.com/five82/coverflow/internal/deck"
)

const (
	minCardWidth  = 12
	minCardHeight = 5
	// Terminal cells are roughly twice as tall as they are wide.
	cellAspect = 2

	minNarrowWidth = 3
	dimAngle       = 60.0
)

type lineRole uint8

const (
	roleTitle lineRole = iota
	roleKind
	roleBody
)

type cardLine struct {
	text string
	role lineRole
}

// cardVisual is a card pre-laid-out as plain text lines. Colors are applied
// when it is painted, so a theme change never re-renders visuals.
type cardVisual struct {
	index int
	card  deck.Card
	kind  carousel.Kind
	w, h  int
	lines []cardLine
}

var (
	_ carousel.Visual = (*cardVisual)(nil)
	_ carousel.Kinded = (*cardVisual)(nil)
)

func (v *cardVisual) Size() (int, int)    { return v.w, v.h }
func (v *cardVisual) Kind() carousel.Kind { return v.kind }

// fill lays card out at the given outer size, reusing v's line buffer.
func (v *cardVisual) fill(index int, c deck.Card, kind carousel.Kind, w, h int) {
	v.index, v.card, v.kind, v.w, v.h = index, c, kind, w, h

	innerW := max(w-4, 1)
	rows := max(h-2, 0)

	lines := v.lines[:0]
	lines = append(lines,
		cardLine{truncate(c.Title, innerW), roleTitle},
		cardLine{truncate(c.Kind, innerW), roleKind},
	)
	if c.Body != "" {
		lines = append(lines, cardLine{"", roleBody})
		for _, l := range wrap(c.Body, innerW) {
			lines = append(lines, cardLine{l, roleBody})
		}
	}
	if len(lines) > rows {
		lines = lines[:rows]
		if rows > 2 {
			last := &lines[rows-1]
			last.text = truncate(last.text, innerW-1) + ellipsis
		}
	}
	v.lines = lines
}

// cardSize picks the outer card size for a measure constraint. preferred
// overrides the width when positive.
func cardSize(sc carousel.SizeConstraint, viewportWidth, preferred int) (int, int) {
	h := max(sc.MaxHeight, minCardHeight)
	w := preferred
	if w <= 0 {
		w = min(sc.MaxWidth*cellAspect, viewportWidth/3)
	}
	w = max(w, minCardWidth)
	if viewportWidth > minCardWidth {
		w = min(w, viewportWidth)
	}
	return w, h
}

type emphasis uint8

const (
	emphasisNone emphasis = iota
	emphasisFocus
	emphasisDrag
)

// cardPalette holds the canvas styles cards are painted with.
type cardPalette struct {
	cv     *canvas
	theme  Theme
	titles map[string]styleID

	surface     styleID
	border      styleID
	borderFocus styleID
	borderDrag  styleID
	faint       styleID
	body        styleID
	muted       styleID
}

func newCardPalette(cv *canvas, t Theme) *cardPalette {
	bg := lipgloss.Color(t.Surface)
	fg := func(c string) lipgloss.Style {
		return lipgloss.NewStyle().Background(bg).Foreground(lipgloss.Color(c))
	}
	return &cardPalette{
		cv:          cv,
		theme:       t,
		titles:      make(map[string]styleID),
		surface:     cv.addStyle(fg(t.Text)),
		border:      cv.addStyle(fg(t.Border)),
		borderFocus: cv.addStyle(fg(t.BorderFocus).Bold(true)),
		borderDrag:  cv.addStyle(fg(t.BorderDrag).Bold(true)),
		faint:       cv.addStyle(fg(t.Faint)),
		body:        cv.addStyle(fg(t.Text)),
		muted:       cv.addStyle(fg(t.Muted).Italic(true)),
	}
}

func (p *cardPalette) title(kind string) styleID {
	if id, ok := p.titles[kind]; ok {
		return id
	}
	id := p.cv.addStyle(lipgloss.NewStyle().
		Background(lipgloss.Color(p.theme.Surface)).
		Foreground(lipgloss.Color(p.theme.KindColor(kind))).
		Bold(true))
	p.titles[kind] = id
	return id
}

// narrowed returns the painted x and width for a placement. Depth rotation
// is shown by shrinking the card to |cos(rotation)| of its width about its
// center.
func narrowed(p carousel.Placement) (x, w int) {
	scale := math.Abs(math.Cos(p.Rotation * math.Pi / 180))
	w = int(math.Round(float64(p.Rect.W) * scale))
	w = min(max(w, minNarrowWidth), p.Rect.W)
	cx := p.Rect.X + p.Rect.W/2
	return cx - w/2, w
}

// drawCard paints one placement onto the palette's canvas.
func drawCard(pal *cardPalette, p carousel.Placement, v *cardVisual, em emphasis) {
	cv := pal.cv
	x, w := narrowed(p)
	y, h := p.Rect.Y, p.Rect.H
	dim := math.Abs(p.Rotation) > dimAngle

	border := pal.border
	switch {
	case em == emphasisDrag:
		border = pal.borderDrag
	case em == emphasisFocus:
		border = pal.borderFocus
	case dim:
		border = pal.faint
	}

	cv.fill(x, y, w, h, pal.surface)
	cv.box(x, y, w, h, lipgloss.RoundedBorder(), border)

	innerW := w - 4
	if innerW <= 0 {
		return
	}
	for i, line := range v.lines {
		row := y + 1 + i
		if row >= y+h-1 {
			break
		}
		st := pal.body
		switch {
		case dim:
			st = pal.faint
		case line.role == roleTitle:
			st = pal.title(v.card.Kind)
		case line.role == roleKind:
			st = pal.muted
		}
		cv.text(x+2, row, line.text, innerW, st)
	}
}
