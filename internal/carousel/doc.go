// Package carousel implements the scrolling and virtualization engine of a
// coverflow-style carousel.
//
// # Overview
//
// A Carousel presents a fixed window of SlotCount slots over an arbitrarily
// large Source. The item in the Center slot is the selected one; OnSide
// neighbors on each side are visible and Offscreen more are kept loaded so
// they can slide in without a load hitch.
//
// The package has four parts:
//
//   - Window: which logical indices are materialized, and recycling of
//     visuals through per-Kind FIFO pools.
//   - Layout: a pure transform from (slot, offset, viewport) to a horizontal
//     position ratio, depth rotation and visibility.
//   - Gesture state machine: pointer and key input turned into scroll offset,
//     page commits and page-shift animations.
//   - Animation driver: the single running animation, stepped by Advance.
//
// # Event Model
//
// Everything runs on the host's event loop. The host forwards pointer events,
// key events and frame ticks:
//
//	c := carousel.New(carousel.WithPaging(true))
//	c.Attach(source)
//	limit := c.Measure(width, height) // measure visuals against limit
//
//	c.PointerDown(x)
//	c.PointerMove(x)
//	c.PointerUp()
//
//	for c.Animating() {
//		c.Advance(frame)
//	}
//	for _, p := range c.Layout() { // back to front
//		draw(p.Visual, p.Rect, p.Rotation)
//	}
//
// No method blocks and none is safe for concurrent use. Change notifications
// from a Notifier source only mark the window stale; the rebuild happens at
// the start of the next event, so several notifications coalesce into one.
//
// # Offsets
//
// The scroll offset is measured in host units (pixels or terminal cells).
// A positive offset moves items toward the left. Crossover, half the spacing
// between slot centers, is the offset at which the centered item changes.
//
// # Debug Builds
//
// Building with the coverflowdebug tag turns an inconsistent visual kind in
// the recycling pools into a panic. Release builds drop the visual instead.
package carousel
