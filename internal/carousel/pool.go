package carousel

// PoolLimit caps how many released visuals are kept per kind.
const PoolLimit = SlotCount

// pool is a FIFO queue of released visuals sharing one kind. A visual is owned
// either by a slot or by exactly one pool, never both.
type pool struct {
	kind  Kind
	items []Visual
}

func newPool(kind Kind) *pool {
	return &pool{kind: kind, items: make([]Visual, 0, PoolLimit)}
}

// push deposits v and reports whether it was kept.
func (p *pool) push(v Visual) bool {
	if v == nil {
		return false
	}
	if k, ok := v.(Kinded); ok && k.Kind() != p.kind {
		return kindMismatch(p.kind, k.Kind())
	}
	if len(p.items) >= PoolLimit {
		return false
	}
	p.items = append(p.items, v)
	return true
}

// pop removes the oldest pooled visual, or returns nil when empty.
func (p *pool) pop() Visual {
	if len(p.items) == 0 {
		return nil
	}
	v := p.items[0]
	p.items[0] = nil
	p.items = p.items[1:]
	if len(p.items) == 0 {
		p.items = nil
	}
	return v
}

func (p *pool) len() int {
	return len(p.items)
}
