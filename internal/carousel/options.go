package carousel

import (
	"io"
	"time"

	"github.com/charmbracelet/log"
)

// Tuning defaults.
const (
	DefaultMarginFraction = 0.05
	DefaultTouchSlop      = 8.0
	DefaultNudgeStep      = 1.0
	DefaultShiftDuration  = time.Second
	DefaultSettleDuration = 300 * time.Millisecond

	// DefaultSensitivity damps pointer movement; lower values drag faster.
	DefaultSensitivity = 2.5

	// SizeLimitFraction bounds item visuals relative to the viewport height.
	SizeLimitFraction = 0.8
)

type options struct {
	marginFraction float64
	sensitivity    float64
	touchSlop      float64
	nudgeStep      float64
	shiftDuration  time.Duration
	settleDuration time.Duration
	paging         bool
	logger         *log.Logger
}

// Option configures a Carousel.
type Option func(*options)

func defaultOptions() options {
	return options{
		marginFraction: DefaultMarginFraction,
		sensitivity:    DefaultSensitivity,
		touchSlop:      DefaultTouchSlop,
		nudgeStep:      DefaultNudgeStep,
		shiftDuration:  DefaultShiftDuration,
		settleDuration: DefaultSettleDuration,
		logger:         log.New(io.Discard),
	}
}

// WithMarginFraction sets the horizontal margin on each side as a fraction of
// the viewport width. Values outside [0, 0.5) are ignored.
func WithMarginFraction(f float64) Option {
	return func(o *options) {
		if f >= 0 && f < 0.5 {
			o.marginFraction = f
		}
	}
}

// WithSensitivity sets the drag damping factor.
func WithSensitivity(s float64) Option {
	return func(o *options) {
		if s > 0 {
			o.sensitivity = s
		}
	}
}

// WithTouchSlop sets how far the pointer must travel before a press becomes a drag.
func WithTouchSlop(slop float64) Option {
	return func(o *options) {
		if slop >= 0 {
			o.touchSlop = slop
		}
	}
}

// WithNudgeStep sets the offset applied by KeyNudge.
func WithNudgeStep(step float64) Option {
	return func(o *options) {
		if step > 0 {
			o.nudgeStep = step
		}
	}
}

// WithShiftDuration sets the length of the drag page-shift animation.
func WithShiftDuration(d time.Duration) Option {
	return func(o *options) {
		if d > 0 {
			o.shiftDuration = d
		}
	}
}

// WithSettleDuration sets the length of the release settle animation.
func WithSettleDuration(d time.Duration) Option {
	return func(o *options) {
		if d > 0 {
			o.settleDuration = d
		}
	}
}

// WithPaging makes pointer drags page through items (Scrolling) instead of
// dragging the centered item (Dragging).
func WithPaging(paging bool) Option {
	return func(o *options) {
		o.paging = paging
	}
}

// WithLogger routes debug output to l.
func WithLogger(l *log.Logger) Option {
	return func(o *options) {
		if l != nil {
			o.logger = l
		}
	}
}
