package carousel

type testVisual struct {
	id    int
	index int
	kind  Kind
	w, h  int
}

func (v *testVisual) Size() (int, int) { return v.w, v.h }
func (v *testVisual) Kind() Kind       { return v.kind }

// testSource records how visuals are created and reused.
type testSource struct {
	n       int
	kinds   func(int) Kind
	created int
	reused  int
	calls   int
}

func newTestSource(n int) *testSource {
	return &testSource{n: n}
}

func (s *testSource) Count() int { return s.n }

func (s *testSource) KindOf(index int) Kind {
	if s.kinds == nil {
		return 0
	}
	return s.kinds(index)
}

func (s *testSource) ContentAt(index int, recycled Visual) Visual {
	s.calls++
	if tv, ok := recycled.(*testVisual); ok {
		s.reused++
		tv.index = index
		return tv
	}
	s.created++
	return &testVisual{id: s.created, index: index, kind: s.KindOf(index), w: 10, h: 6}
}

// notifyingSource adds change notifications to testSource.
type notifyingSource struct {
	*testSource
	subs   map[int]func()
	nextID int
}

func newNotifyingSource(n int) *notifyingSource {
	return &notifyingSource{testSource: newTestSource(n), subs: make(map[int]func())}
}

func (s *notifyingSource) Subscribe(fn func()) func() {
	id := s.nextID
	s.nextID++
	s.subs[id] = fn
	return func() { delete(s.subs, id) }
}

func (s *notifyingSource) notify() {
	for _, fn := range s.subs {
		fn()
	}
}

// slotIndices returns the logical index held by each slot, -1 for empty.
func slotIndices(w *Window) [SlotCount]int {
	var out [SlotCount]int
	for i := range out {
		out[i] = -1
		if v, ok := w.Slot(i).(*testVisual); ok {
			out[i] = v.index
		}
	}
	return out
}

// expectedIndices is the slot mapping for current over a source of n items.
func expectedIndices(current, n int) [SlotCount]int {
	var out [SlotCount]int
	for i := range out {
		idx := current - Center + i
		if idx < 0 || idx >= n {
			idx = -1
		}
		out[i] = idx
	}
	return out
}
