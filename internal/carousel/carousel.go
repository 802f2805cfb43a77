package carousel

import (
	"math"
	"time"

	"github.com/charmbracelet/log"
)

// SizeConstraint is the largest size an item visual may be measured at.
type SizeConstraint struct {
	MaxWidth  int
	MaxHeight int
}

// Carousel ties the slot window, gesture state machine, animation driver and
// layout transform together. All methods must be called from the host's event
// loop; none of them block.
type Carousel struct {
	opts options
	log  *log.Logger
	win  *Window
	anim driver

	gesture         gesture
	scrollOffset    float64
	dragShiftOffset float64
	selected        Visual

	viewportWidth  int
	viewportHeight int
	dirty          bool
}

// New returns a carousel with no source attached.
func New(opts ...Option) *Carousel {
	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	return &Carousel{
		opts: o,
		log:  o.logger,
		win:  NewWindow(),
	}
}

// Attach replaces the item source and resets to index 0.
func (c *Carousel) Attach(src Source) {
	c.reset()
	c.win.Attach(src)
	c.requestLayout()
}

// Detach removes the item source, recycling every slot.
func (c *Carousel) Detach() {
	c.Attach(nil)
}

// SetCurrentIndex jumps to index without animation.
func (c *Carousel) SetCurrentIndex(index int) error {
	c.sync()
	if err := c.win.SetCurrentIndex(index, false); err != nil {
		return err
	}
	c.requestLayout()
	return nil
}

// CurrentIndex returns the index of the centered item, or Unset.
func (c *Carousel) CurrentIndex() int {
	return c.win.CurrentIndex()
}

// Count returns the item count of the attached source.
func (c *Carousel) Count() int {
	return c.win.Count()
}

// State returns the gesture state.
func (c *Carousel) State() State {
	return c.gesture.state
}

// ScrollOffset returns the sub-page drag offset.
func (c *Carousel) ScrollOffset() float64 {
	return c.scrollOffset
}

// DragShiftOffset returns the offset of an in-flight page shift.
func (c *Carousel) DragShiftOffset() float64 {
	return c.dragShiftOffset
}

// SelectedVisual returns the visual captured when the current drag began.
// It is only reported while the drag is live.
func (c *Carousel) SelectedVisual() (Visual, bool) {
	if c.selected == nil {
		return nil, false
	}
	if s := c.gesture.state; s != Dragging && s != DragShifting {
		return nil, false
	}
	return c.selected, true
}

// Measure records the viewport size and returns the constraint item visuals
// should be measured against.
func (c *Carousel) Measure(viewportWidth, viewportHeight int) SizeConstraint {
	if viewportWidth != c.viewportWidth || viewportHeight != c.viewportHeight {
		c.viewportWidth = viewportWidth
		c.viewportHeight = viewportHeight
		c.requestLayout()
	}
	limit := int(float64(viewportHeight) * SizeLimitFraction)
	return SizeConstraint{MaxWidth: limit, MaxHeight: limit}
}

// NeedsLayout reports whether state changed since the last Layout call.
func (c *Carousel) NeedsLayout() bool {
	return c.dirty
}

// Animating reports whether an animation is waiting for Advance.
func (c *Carousel) Animating() bool {
	return c.anim.running()
}

// Layout places every occupied slot, back to front.
func (c *Carousel) Layout() []Placement {
	c.sync()
	c.dirty = false
	out := make([]Placement, 0, SlotCount)
	for _, slot := range ZOrder() {
		v := c.win.Slot(slot)
		if v == nil {
			continue
		}
		p := place(slot, c.slotOffset(slot), v, c.viewportWidth, c.viewportHeight, c.opts.marginFraction)
		p.Index = c.win.IndexAt(slot)
		out = append(out, p)
	}
	return out
}

// Advance steps the running animation by elapsed time. It returns true when
// no animation remains, so the host can stop its frame clock.
func (c *Carousel) Advance(elapsed time.Duration) bool {
	c.sync()
	a, value, done := c.anim.advance(elapsed)
	if a == nil {
		return true
	}
	switch a.kind {
	case animShift:
		c.dragShiftOffset = value
		c.requestLayout()
		if done {
			c.finishShift(a.dir)
		}
	case animSettle:
		c.adjustOffset(value - c.scrollOffset)
		if done {
			c.gesture.state = Idle
			c.win.Realign()
			c.requestLayout()
		}
	}
	return !c.anim.running()
}

// slotOffset picks the offset a slot is laid out with. During a page shift the
// neighbors follow the shift animation while the dragged center item follows
// the pointer; the neighbor on the shift side travels twice as far because it
// is swapping places with the dragged item.
func (c *Carousel) slotOffset(slot int) float64 {
	var off float64
	switch c.gesture.state {
	case DragShifting:
		if slot == Center {
			off = c.scrollOffset
			break
		}
		off = c.dragShiftOffset
		if slot == Center+int(sign(c.dragShiftOffset)) {
			off *= 2
		}
	case Dragging, DragSettling:
		if slot == Center {
			off = c.scrollOffset
		}
	default:
		off = c.scrollOffset
	}

	limit := 2 * c.pageSpacing()
	if limit > 0 {
		off = math.Max(-limit, math.Min(limit, off))
	}
	return off
}

func (c *Carousel) startShift(dir int) {
	target := c.win.CurrentIndex() + dir
	if target < 0 || target >= c.win.Count() {
		return
	}
	c.cancelAnimation()
	c.gesture.state = DragShifting
	c.anim.start(&animation{
		kind:     animShift,
		to:       float64(dir) * c.pageSpacing(),
		duration: c.opts.shiftDuration,
		ease:     Linear,
		dir:      dir,
	})
	c.log.Debug("shift started", "dir", dir, "from", c.win.CurrentIndex())
}

func (c *Carousel) finishShift(dir int) {
	c.gesture.state = Dragging
	c.dragShiftOffset = 0
	target := c.win.CurrentIndex() + dir
	if err := c.win.SetCurrentIndex(target, true); err != nil {
		c.log.Warn("shift commit failed", "target", target, "err", err)
	}
	c.requestLayout()
	c.log.Debug("shift finished", "index", c.win.CurrentIndex())
}

func (c *Carousel) startSettle() {
	c.cancelAnimation()
	var d time.Duration
	if c.scrollOffset != 0 {
		d = c.opts.settleDuration
	}
	c.anim.start(&animation{
		kind:     animSettle,
		from:     c.scrollOffset,
		duration: d,
		ease:     Decelerate,
	})
	c.requestLayout()
}

// cancelAnimation stops the running animation without its completion effects.
// A cancelled shift never advances the index.
func (c *Carousel) cancelAnimation() {
	a := c.anim.cancel()
	if a == nil {
		return
	}
	if a.kind == animShift {
		c.dragShiftOffset = 0
		c.requestLayout()
		c.log.Debug("shift cancelled", "dir", a.dir)
	}
}

// sync applies a pending source change notification. Notifications are
// coalesced into one rebuild at the start of the next event.
func (c *Carousel) sync() {
	if !c.win.Stale() {
		return
	}
	c.reset()
	c.win.Refresh()
	c.requestLayout()
	c.log.Debug("source changed", "index", c.win.CurrentIndex(), "count", c.win.Count())
}

func (c *Carousel) reset() {
	c.anim.cancel()
	c.gesture = gesture{}
	c.scrollOffset = 0
	c.dragShiftOffset = 0
	c.selected = nil
}

func (c *Carousel) pageSpacing() float64 {
	return PageSpacing(float64(c.viewportWidth), c.opts.marginFraction)
}

func (c *Carousel) crossover() float64 {
	return c.pageSpacing() / 2
}

func (c *Carousel) requestLayout() {
	c.dirty = true
}

func sign(v float64) float64 {
	switch {
	case v > 0:
		return 1
	case v < 0:
		return -1
	default:
		return 0
	}
}
