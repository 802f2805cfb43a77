package carousel

import "math"

// Rect is an integer rectangle in host units (terminal cells or pixels).
type Rect struct {
	X, Y, W, H int
}

// Placement is where one occupied slot lands on screen.
type Placement struct {
	Slot     int
	Index    int // index of the occupant, which may differ from the slot mapping mid-drag
	Visual   Visual
	Rect     Rect
	Ratio    float64 // horizontal position in [0, 1]; 0.5 is dead center
	Rotation float64 // depth rotation in degrees; 0 faces the viewer
	Visible  bool
}

// PositionRatio maps a slot and a scroll offset to a horizontal position in
// [0, 1]. The square-root stretch compresses the region around the center and
// expands the edges, which gives the carousel its depth.
func PositionRatio(slot int, offset, viewportWidth, marginFraction float64) float64 {
	avail := viewportWidth * (1 - 2*marginFraction)
	r2 := float64(2*slot-(SlotCount-1)) / float64(SlotCount-1)
	if avail > 0 {
		r2 -= 2 * offset / avail
	}
	r3 := math.Copysign(math.Sqrt(math.Abs(r2)), r2)
	return r3/2 + 0.5
}

// Visible reports whether a ratio falls strictly inside the viewport.
func Visible(ratio float64) bool {
	return ratio > 0 && ratio < 1
}

// Rotation returns the depth rotation for a ratio: 0 at the center,
// approaching ±90 degrees at the edges.
func Rotation(ratio float64) float64 {
	return 90 * (1 - 2*ratio)
}

// PageSpacing is the distance between adjacent slot centers at rest.
func PageSpacing(viewportWidth, marginFraction float64) float64 {
	return viewportWidth * (1 - 2*marginFraction) / float64(SlotCount-1)
}

// Crossover is the offset magnitude at which the centered item changes.
func Crossover(viewportWidth, marginFraction float64) float64 {
	return PageSpacing(viewportWidth, marginFraction) / 2
}

// ZOrder returns slots back to front: offscreen slots first, then symmetric
// pairs moving inward, with the center slot composited last.
func ZOrder() []int {
	order := make([]int, 0, SlotCount)
	for i := 0; i < Center; i++ {
		order = append(order, i, SlotCount-1-i)
	}
	return append(order, Center)
}

// place computes the rectangle for a visual whose slot uses offset.
func place(slot int, offset float64, v Visual, viewportWidth, viewportHeight int, marginFraction float64) Placement {
	vw := float64(viewportWidth)
	margin := vw * marginFraction
	avail := vw - 2*margin

	ratio := PositionRatio(slot, offset, vw, marginFraction)
	w, h := v.Size()
	cx := int(ratio*avail + margin)
	return Placement{
		Slot:     slot,
		Visual:   v,
		Ratio:    ratio,
		Rotation: Rotation(ratio),
		Visible:  Visible(ratio),
		Rect: Rect{
			X: cx - w/2,
			Y: (viewportHeight - h) / 2,
			W: w,
			H: h,
		},
	}
}
