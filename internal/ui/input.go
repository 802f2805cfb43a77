package ui

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
)

// handleKey processes keyboard input.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if m.search.active {
		return m.handleSearchKey(msg)
	}

	// Any key closes help
	if m.showHelp {
		m.showHelp = false
		return m, nil
	}

	switch {
	case key.Matches(msg, m.keys.Quit):
		return m, tea.Quit

	case key.Matches(msg, m.keys.Help):
		m.showHelp = true
		return m, nil

	case key.Matches(msg, m.keys.CycleTheme):
		m.theme = GetTheme(NextTheme(m.theme.Name))
		m.savePrefs()
		return m, nil

	case key.Matches(msg, m.keys.Search):
		if m.pointerHeld {
			return m, nil
		}
		return m, m.search.open()

	case key.Matches(msg, m.keys.Prev):
		m.logStep(m.carousel.KeyPrev())

	case key.Matches(msg, m.keys.Next):
		m.logStep(m.carousel.KeyNext())

	case key.Matches(msg, m.keys.NudgeBack):
		m.carousel.KeyNudge(-1)

	case key.Matches(msg, m.keys.NudgeForward):
		m.carousel.KeyNudge(1)

	case key.Matches(msg, m.keys.First):
		m.jump(0)

	case key.Matches(msg, m.keys.Last):
		m.jump(m.carousel.Count() - 1)
	}

	return m, m.scheduleFrame()
}

// handleSearchKey routes keys to the jump prompt while it is open.
func (m Model) handleSearchKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Cancel):
		m.search.close()
		return m, nil

	case key.Matches(msg, m.keys.Confirm):
		if idx, ok := m.search.selected(); ok {
			m.jump(idx)
		}
		m.search.close()
		return m, m.scheduleFrame()

	case key.Matches(msg, m.keys.Up):
		m.search.move(-1)
		return m, nil

	case key.Matches(msg, m.keys.Down):
		m.search.move(1)
		return m, nil
	}

	return m, m.search.update(msg, m.source.cards)
}

// handleMouse turns left-button presses, drags and releases into pointer
// events. The wheel steps between cards.
func (m Model) handleMouse(msg tea.MouseMsg) (tea.Model, tea.Cmd) {
	if m.search.active || m.showHelp {
		return m, nil
	}
	x := float64(msg.X)

	switch msg.Action {
	case tea.MouseActionPress:
		switch msg.Button {
		case tea.MouseButtonLeft:
			if !m.inCarousel(msg.Y) {
				return m, nil
			}
			m.pointerHeld = true
			m.carousel.PointerDown(x)
		case tea.MouseButtonWheelUp, tea.MouseButtonWheelLeft:
			m.logStep(m.carousel.KeyPrev())
		case tea.MouseButtonWheelDown, tea.MouseButtonWheelRight:
			m.logStep(m.carousel.KeyNext())
		}

	case tea.MouseActionMotion:
		if m.pointerHeld {
			m.carousel.PointerMove(x)
		}

	case tea.MouseActionRelease:
		if m.pointerHeld {
			m.pointerHeld = false
			m.carousel.PointerMove(x)
			m.carousel.PointerUp()
		}
	}

	return m, m.scheduleFrame()
}

// inCarousel reports whether screen row y lies between the header and footer.
func (m Model) inCarousel(y int) bool {
	return y >= 1 && y <= m.carouselHeight()
}

// jump moves straight to index unless a drag is in progress.
func (m *Model) jump(index int) {
	if m.pointerHeld || index < 0 {
		return
	}
	if err := m.carousel.SetCurrentIndex(index); err != nil {
		m.log.Debug("jump ignored", "index", index, "err", err)
	}
}

func (m *Model) logStep(err error) {
	if err != nil {
		m.log.Debug("step ignored", "err", err)
	}
}
