package carousel

import "time"

// Easing maps linear progress t in [0, 1] to eased progress.
type Easing func(t float64) float64

// Linear is constant-speed easing.
func Linear(t float64) float64 { return t }

// Decelerate starts fast and slows to a stop.
func Decelerate(t float64) float64 { return 1 - (1-t)*(1-t) }

type animKind int

const (
	animShift animKind = iota + 1
	animSettle
)

func (k animKind) String() string {
	switch k {
	case animShift:
		return "shift"
	case animSettle:
		return "settle"
	default:
		return "none"
	}
}

type animation struct {
	kind     animKind
	from     float64
	to       float64
	duration time.Duration
	elapsed  time.Duration
	ease     Easing
	dir      int // shift direction; unused by settle
}

func (a *animation) value() float64 {
	if a.duration <= 0 {
		return a.to
	}
	t := float64(a.elapsed) / float64(a.duration)
	if t > 1 {
		t = 1
	}
	return a.from + (a.to-a.from)*a.ease(t)
}

// driver runs at most one animation, advanced by the host's frame clock.
type driver struct {
	active *animation
}

// start replaces any running animation.
func (d *driver) start(a *animation) {
	d.active = a
}

// cancel stops the running animation without completing it and returns it.
func (d *driver) cancel() *animation {
	a := d.active
	d.active = nil
	return a
}

func (d *driver) running() bool {
	return d.active != nil
}

// advance moves the running animation forward by dt. done is true when the
// animation reached its end on this step; it is then no longer running.
func (d *driver) advance(dt time.Duration) (a *animation, value float64, done bool) {
	a = d.active
	if a == nil {
		return nil, 0, false
	}
	if dt > 0 {
		a.elapsed += dt
	}
	if a.elapsed >= a.duration {
		a.elapsed = a.duration
		d.active = nil
		done = true
	}
	return a, a.value(), done
}
