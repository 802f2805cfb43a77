// Package ui hosts the carousel in a Bubble Tea terminal program.
//
// The host owns everything the carousel core leaves to it:
//
//   - input: left-button press, motion and release become pointer events;
//     arrow and vim keys become steps and nudges; the wheel steps cards
//   - frames: while the carousel is animating a tea.Tick frame clock feeds
//     Advance with the real elapsed time, and stops once it settles
//   - data: deckSource serves cards from the state.Store snapshot and
//     notifies the carousel when the deck revision or the card size changes
//   - painting: Layout placements are composited back to front onto a cell
//     canvas; depth rotation narrows a card to |cos(rotation)| of its width
//     and cards turned far from the viewer are drawn faint
//
// The jump prompt ("/") fuzzy-matches card titles and jumps without
// animation. Theme changes are written to the prefs file.
package ui
