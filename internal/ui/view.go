package ui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/five82/coverflow/internal/carousel"
)

// View implements tea.Model.
func (m Model) View() string {
	if !m.ready {
		return "Loading..."
	}

	// Show help overlay if active
	if m.showHelp {
		return m.renderHelp()
	}

	// Layout applies pending deck changes, so the carousel renders first.
	body := m.renderCarousel()

	var b strings.Builder
	b.WriteString(m.renderHeader())
	b.WriteString("\n")
	b.WriteString(body)
	b.WriteString("\n")
	b.WriteString(m.renderFooter())
	return b.String()
}

func (m Model) renderHeader() string {
	styles := m.theme.Styles()

	left := styles.Logo.Render("coverflow")
	if m.deckName != "" {
		left += " " + styles.MutedText.Render(truncate(m.deckName, max(m.width/2, 8)))
	}

	var right []string
	if m.snapshot.IsOffline() {
		right = append(right, styles.DangerText.Render("offline"))
	}
	if n := m.carousel.Count(); n > 0 {
		right = append(right, styles.Text.Render(fmt.Sprintf("%d/%d", m.carousel.CurrentIndex()+1, n)))
	}
	if s := m.carousel.State(); s != carousel.Idle {
		right = append(right, styles.FaintText.Render(s.String()))
	}
	rightText := strings.Join(right, "  ")

	// Header padding takes one cell on each side.
	gap := m.width - 2 - lipgloss.Width(left) - lipgloss.Width(rightText)
	line := left
	if gap > 0 {
		line += strings.Repeat(" ", gap) + rightText
	}
	return styles.Header.Width(m.width).MaxHeight(1).Render(line)
}

func (m Model) renderFooter() string {
	styles := m.theme.Styles()
	var line string
	switch {
	case m.search.active:
		line = m.search.input.View()
	case m.snapshot.LastError != nil:
		line = styles.DangerText.Render(truncate("deck: "+m.snapshot.LastError.Error(), max(m.width-2, 1)))
	default:
		line = m.help.ShortHelpView(m.keys.ShortHelp())
	}
	return styles.Footer.Width(m.width).MaxHeight(1).Render(line)
}

// renderCarousel composites the visible cards back to front.
func (m Model) renderCarousel() string {
	h := m.carouselHeight()
	styles := m.theme.Styles()

	if !m.loaded {
		msg := m.spinner.View() + " " + styles.MutedText.Render("Loading deck…")
		return lipgloss.Place(m.width, h, lipgloss.Center, lipgloss.Center, msg)
	}
	if m.carousel.Count() == 0 {
		return lipgloss.Place(m.width, h, lipgloss.Center, lipgloss.Center,
			styles.MutedText.Render("This deck has no cards yet."))
	}

	cv := newCanvas(m.width, h)
	pal := newCardPalette(cv, m.theme)
	selected, dragging := m.carousel.SelectedVisual()
	idle := m.carousel.State() == carousel.Idle

	for _, p := range m.carousel.Layout() {
		if !p.Visible {
			continue
		}
		v, ok := p.Visual.(*cardVisual)
		if !ok {
			continue
		}
		em := emphasisNone
		switch {
		case dragging && p.Visual == selected:
			em = emphasisDrag
		case idle && p.Slot == carousel.Center:
			em = emphasisFocus
		}
		drawCard(pal, p, v, em)
	}

	if m.search.active {
		m.drawMatches(cv)
	}
	return cv.String()
}

// drawMatches lists the jump candidates along the bottom of the canvas.
func (m Model) drawMatches(cv *canvas) {
	if len(m.search.matches) == 0 {
		return
	}
	width := min(cv.width, 48)
	bg := lipgloss.Color(m.theme.SurfaceAlt)
	normal := cv.addStyle(lipgloss.NewStyle().Background(bg).Foreground(lipgloss.Color(m.theme.Text)))
	current := cv.addStyle(lipgloss.NewStyle().Background(bg).Foreground(lipgloss.Color(m.theme.Accent)).Bold(true))

	top := cv.height - len(m.search.matches)
	for i, match := range m.search.matches {
		card, ok := m.source.card(match.Index)
		if !ok {
			continue
		}
		st, marker := normal, "  "
		if i == m.search.cursor {
			st, marker = current, "› "
		}
		row := top + i
		cv.fill(0, row, width, 1, st)
		cv.text(1, row, marker+card.Title, width-2, st)
	}
}
