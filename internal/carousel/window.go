package carousel

// Window geometry. The window holds SlotCount slots centered on the current
// index: OnSide visible neighbors plus Offscreen pre-loaded ones per side.
const (
	OnSide    = 2
	Offscreen = 1
	SlotCount = 1 + 2*OnSide + 2*Offscreen
	Center    = OnSide + Offscreen

	// Unset is the current index before anything has been loaded.
	Unset = -1
)

// Kind groups items whose visuals can be recycled for one another.
type Kind int

// Visual is an item rendering owned by the host. The carousel only reads its
// measured size. Implementations must be comparable; pointer types are typical.
type Visual interface {
	Size() (width, height int)
}

// Kinded is implemented by visuals that know their own kind. It lets the pools
// catch a visual deposited under the wrong kind.
type Kinded interface {
	Kind() Kind
}

// Source provides the items shown by the carousel.
type Source interface {
	// Count returns the number of items; indices are [0, Count()).
	Count() int
	// KindOf returns the recycling kind of the item at index.
	KindOf(index int) Kind
	// ContentAt returns the visual for index. recycled is a released visual of
	// the same kind, or nil; the source may reuse it or ignore it.
	ContentAt(index int, recycled Visual) Visual
}

// Notifier is implemented by sources that announce changes to their items.
// Subscribe returns a function that removes the subscription.
type Notifier interface {
	Subscribe(fn func()) (unsubscribe func())
}

// Window is the virtualized slot buffer mapping SlotCount slots onto an
// arbitrarily large Source. It is not safe for concurrent use.
type Window struct {
	source      Source
	unsubscribe func()
	slots       [SlotCount]Visual
	indices     [SlotCount]int // logical index of each occupant
	pools       map[Kind]*pool
	current     int
	stale       bool
	displaced   bool // a skipCenter shift left occupants off their mapped slots
}

// NewWindow returns an empty window with no source attached.
func NewWindow() *Window {
	return &Window{current: Unset, pools: make(map[Kind]*pool)}
}

// Attach replaces the source. Previous slots and pools are discarded, change
// notifications move to the new source and index 0 is loaded when available.
// Attach(nil) detaches.
func (w *Window) Attach(src Source) {
	if w.unsubscribe != nil {
		w.unsubscribe()
		w.unsubscribe = nil
	}
	w.clear()
	w.source = src
	w.stale = false
	if src == nil {
		return
	}
	if n, ok := src.(Notifier); ok {
		w.unsubscribe = n.Subscribe(func() { w.stale = true })
	}
	if src.Count() > 0 {
		// Index 0 is always in range here.
		_ = w.SetCurrentIndex(0, false)
	}
}

// Detach tears the window down: slots are emptied and pools discarded.
func (w *Window) Detach() {
	w.Attach(nil)
}

// Refresh rebuilds every slot against the attached source, keeping the
// current index when it is still in range and clamping it otherwise.
func (w *Window) Refresh() {
	w.stale = false
	if w.source == nil {
		return
	}
	prev := w.current
	w.clear()
	n := w.source.Count()
	if n == 0 {
		return
	}
	_ = w.SetCurrentIndex(clampInt(prev, 0, n-1), false)
}

// Stale reports whether the source announced a change since the last rebuild.
func (w *Window) Stale() bool {
	return w.stale
}

// Attached reports whether a source is attached.
func (w *Window) Attached() bool {
	return w.source != nil
}

// Count returns the item count of the attached source, or 0.
func (w *Window) Count() int {
	if w.source == nil {
		return 0
	}
	return w.source.Count()
}

// CurrentIndex returns the logical index in the center slot, or Unset.
func (w *Window) CurrentIndex() int {
	return w.current
}

// Slot returns the occupant of slot i, or nil.
func (w *Window) Slot(i int) Visual {
	if i < 0 || i >= SlotCount {
		return nil
	}
	return w.slots[i]
}

// LogicalIndex maps a slot to the logical index it represents.
func (w *Window) LogicalIndex(slot int) int {
	return w.current - Center + slot
}

// IndexAt returns the logical index of the item occupying slot i. It differs
// from LogicalIndex only while a skipCenter shift is in effect. Empty or
// invalid slots return Unset.
func (w *Window) IndexAt(i int) int {
	if i < 0 || i >= SlotCount || w.slots[i] == nil {
		return Unset
	}
	return w.indices[i]
}

// Displaced reports whether skipCenter shifts left occupants away from the
// slots their indices map to.
func (w *Window) Displaced() bool {
	return w.displaced
}

// SetCurrentIndex moves the window so index sits in the center slot.
// skipCenter keeps the center occupant in place while its neighbors shift;
// the mapping stays displaced until Realign or a plain SetCurrentIndex.
func (w *Window) SetCurrentIndex(index int, skipCenter bool) error {
	if w.source == nil {
		return ErrNoSource
	}
	if n := w.source.Count(); index < 0 || index >= n {
		return outOfRange(index, n)
	}
	if index == w.current {
		if !skipCenter {
			w.Realign()
		}
		return nil
	}

	delta := SlotCount
	if w.current != Unset {
		delta = index - w.current
	}
	w.shift(delta, skipCenter)
	w.current = index
	if skipCenter {
		w.displaced = true
	}

	w.fill()
	if !skipCenter {
		w.Realign()
	}
	return nil
}

// Realign moves every occupant back to the slot its index maps to. Occupants
// that fell outside the window, or duplicate an index already placed, are
// recycled and the gaps are loaded.
func (w *Window) Realign() {
	if !w.displaced {
		return
	}
	w.displaced = false
	if w.source == nil || w.current == Unset {
		return
	}

	var next [SlotCount]Visual
	var indices [SlotCount]int
	for i, v := range w.slots {
		if v == nil {
			continue
		}
		slot := w.indices[i] - w.current + Center
		if slot < 0 || slot >= SlotCount || next[slot] != nil {
			w.recycle(i)
			continue
		}
		next[slot] = v
		indices[slot] = w.indices[i]
	}
	w.slots = next
	w.indices = indices
	w.fill()
}

func (w *Window) fill() {
	for i := range w.slots {
		if w.slots[i] == nil {
			w.load(i)
		}
	}
}

// shift moves occupants by delta slots using the current (pre-shift) mapping.
// A negative delta reveals earlier indices and moves occupants toward higher
// slots. With skipCenter the center keeps its occupant and the shift runs over
// the remaining slots as if the center were not there. In the bulk case
// (|delta| >= SlotCount) skipCenter protects the center slot only.
func (w *Window) shift(delta int, skipCenter bool) {
	if delta == 0 {
		return
	}
	if absInt(delta) >= SlotCount {
		for i := range w.slots {
			if skipCenter && i == Center {
				continue
			}
			w.recycle(i)
		}
		return
	}

	order := make([]int, 0, SlotCount)
	for i := 0; i < SlotCount; i++ {
		if skipCenter && i == Center {
			continue
		}
		order = append(order, i)
	}

	var next [SlotCount]Visual
	var indices [SlotCount]int
	if skipCenter {
		next[Center] = w.slots[Center]
		indices[Center] = w.indices[Center]
	}
	for pos, slot := range order {
		target := pos - delta
		if target < 0 || target >= len(order) {
			w.recycle(slot)
			continue
		}
		next[order[target]] = w.slots[slot]
		indices[order[target]] = w.indices[slot]
	}
	w.slots = next
	w.indices = indices
}

// load materializes the item mapped to slot i, reusing a pooled visual of the
// same kind when the source accepts it.
func (w *Window) load(i int) {
	index := w.LogicalIndex(i)
	if index < 0 || index >= w.source.Count() {
		return
	}
	p := w.pool(w.source.KindOf(index))
	hint := p.pop()
	v := w.source.ContentAt(index, hint)
	if hint != nil && hint != v {
		p.push(hint)
	}
	w.slots[i] = v
	w.indices[i] = index
}

// recycle empties slot i. Its visual goes back to the pool of its own kind:
// the one it reports when Kinded, otherwise the kind of the index it was
// loaded for. A plain visual whose index is no longer in range is dropped.
func (w *Window) recycle(i int) {
	v := w.slots[i]
	if v == nil {
		return
	}
	w.slots[i] = nil
	index := w.indices[i]
	inRange := w.source != nil && index >= 0 && index < w.source.Count()
	k, kinded := v.(Kinded)
	switch {
	case kinded && inRange && k.Kind() != w.source.KindOf(index):
		kindMismatch(w.source.KindOf(index), k.Kind())
	case kinded:
		w.pool(k.Kind()).push(v)
	case inRange:
		w.pool(w.source.KindOf(index)).push(v)
	}
}

func (w *Window) pool(kind Kind) *pool {
	p, ok := w.pools[kind]
	if !ok {
		p = newPool(kind)
		w.pools[kind] = p
	}
	return p
}

func (w *Window) clear() {
	w.slots = [SlotCount]Visual{}
	w.indices = [SlotCount]int{}
	w.pools = make(map[Kind]*pool)
	w.current = Unset
	w.displaced = false
}

func absInt(v int) int {
	if v < 0 {
		return -v
	}
	return v
}

func clampInt(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
