package carousel

import "math"

// State is the gesture state of the carousel.
type State int

const (
	Idle State = iota
	Down
	Scrolling
	Dragging
	Settling
	DragSettling
	DragShifting
)

func (s State) String() string {
	switch s {
	case Idle:
		return "idle"
	case Down:
		return "down"
	case Scrolling:
		return "scrolling"
	case Dragging:
		return "dragging"
	case Settling:
		return "settling"
	case DragSettling:
		return "drag-settling"
	case DragShifting:
		return "drag-shifting"
	default:
		return "unknown"
	}
}

// tracking reports whether the pointer is held and driving the offset.
func (s State) tracking() bool {
	return s == Down || s == Scrolling || s == Dragging || s == DragShifting
}

// gesture is the state tag plus the last pointer coordinate seen in it.
type gesture struct {
	state State
	lastX float64
}

// PointerDown starts a gesture at x, cancelling any running animation.
func (c *Carousel) PointerDown(x float64) {
	c.sync()
	c.cancelAnimation()
	c.win.Realign()
	c.gesture = gesture{state: Down, lastX: x}
}

// PointerMove feeds a pointer position. From Down it waits for the touch slop
// before committing to a drag; while tracking it converts movement into offset.
func (c *Carousel) PointerMove(x float64) {
	c.sync()
	switch c.gesture.state {
	case Down:
		if math.Abs(c.gesture.lastX-x) < c.opts.touchSlop {
			return
		}
		if c.opts.paging {
			c.gesture.state = Scrolling
		} else {
			c.gesture.state = Dragging
			c.selected = c.win.Slot(Center)
		}
		c.gesture.lastX = x
	case Scrolling, Dragging, DragShifting:
		delta := (c.gesture.lastX - x) / c.opts.sensitivity
		c.gesture.lastX = x
		c.adjustOffset(delta)
	default:
		c.log.Debug("pointer move ignored", "state", c.gesture.state)
	}
}

// PointerUp releases the pointer and settles the offset back to zero.
func (c *Carousel) PointerUp() {
	c.release()
}

// PointerCancel aborts the gesture; it settles exactly like PointerUp.
func (c *Carousel) PointerCancel() {
	c.release()
}

func (c *Carousel) release() {
	c.sync()
	switch c.gesture.state {
	case Idle:
		return
	case Dragging:
		c.gesture.state = DragSettling
	default:
		c.gesture.state = Settling
	}
	c.selected = nil
	c.startSettle()
}

// KeyNext moves to the next item. It is ignored while a pointer is held and
// at the end of the source.
func (c *Carousel) KeyNext() error {
	return c.step(1)
}

// KeyPrev moves to the previous item.
func (c *Carousel) KeyPrev() error {
	return c.step(-1)
}

func (c *Carousel) step(dir int) error {
	c.sync()
	if !c.win.Attached() {
		return ErrNoSource
	}
	if c.gesture.state.tracking() {
		return nil
	}
	target := c.win.CurrentIndex() + dir
	if target < 0 || target >= c.win.Count() {
		return nil
	}
	c.cancelAnimation()
	c.gesture.state = Idle
	c.scrollOffset = 0
	if err := c.win.SetCurrentIndex(target, false); err != nil {
		return err
	}
	c.requestLayout()
	return nil
}

// KeyNudge shifts the scroll offset by one nudge step in dir (+1 or -1),
// paging through items once the offset crosses over.
func (c *Carousel) KeyNudge(dir int) {
	c.sync()
	if dir == 0 || c.gesture.state.tracking() {
		return
	}
	c.cancelAnimation()
	c.win.Realign()
	c.gesture.state = Scrolling
	if dir > 0 {
		c.adjustOffset(c.opts.nudgeStep)
	} else {
		c.adjustOffset(-c.opts.nudgeStep)
	}
	c.gesture.state = Idle
}

// adjustOffset is the single offset entry point shared by live drags, key
// nudges and settle ticks.
func (c *Carousel) adjustOffset(delta float64) {
	if delta == 0 {
		return
	}
	c.scrollOffset += delta
	defer c.requestLayout()

	cross := c.crossover()
	if cross <= 0 {
		return
	}
	switch c.gesture.state {
	case Scrolling:
		if math.Abs(c.scrollOffset) >= cross {
			c.commitPages(cross)
		}
	case Dragging, DragShifting:
		switch {
		case c.scrollOffset >= cross:
			c.scrollOffset = cross - edgeNudge(cross)
			if c.gesture.state == Dragging {
				c.startShift(-1)
			}
		case c.scrollOffset <= -cross:
			c.scrollOffset = edgeNudge(cross) - cross
			if c.gesture.state == Dragging {
				c.startShift(1)
			}
		}
	}
}

// commitPages moves the current index by every whole page the offset has
// crossed and wraps the remainder into [-cross, cross].
func (c *Carousel) commitPages(cross float64) {
	spacing := 2 * cross
	pages := int((math.Abs(c.scrollOffset) + cross) / spacing)
	if c.scrollOffset < 0 {
		pages = -pages
	}
	residual := c.scrollOffset - float64(pages)*spacing
	if c.win.Count() == 0 {
		c.scrollOffset = residual
		return
	}

	current := c.win.CurrentIndex()
	target := current + pages
	switch n := c.win.Count(); {
	case target >= n:
		target = n - 1
		c.scrollOffset = cross - edgeNudge(cross)
	case target < 0:
		target = 0
		c.scrollOffset = edgeNudge(cross) - cross
	default:
		c.scrollOffset = residual
	}
	if target == current {
		return
	}
	if err := c.win.SetCurrentIndex(target, false); err != nil {
		c.log.Warn("page commit failed", "target", target, "err", err)
		return
	}
	c.log.Debug("paged", "from", current, "to", target, "offset", c.scrollOffset)
}

// edgeNudge is how far inside the crossover a clamped offset is held.
func edgeNudge(cross float64) float64 {
	return math.Min(1, cross/2)
}
