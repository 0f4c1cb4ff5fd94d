package vecmap

import (
	"cmp"
	"iter"
)

// span is the mechanical core of every cursor: a pair window that shrinks
// from the front on Next and from the back on NextBack. An empty window is
// the exhausted state, so exhaustion is fused and Len is exact by
// construction.
type span[K cmp.Ordered, V any] struct {
	pairs []Pair[K, V]
}

func (s *span[K, V]) nextRef() *Pair[K, V] {
	if len(s.pairs) == 0 {
		return nil
	}
	p := &s.pairs[0]
	s.pairs = s.pairs[1:]
	return p
}

func (s *span[K, V]) nextBackRef() *Pair[K, V] {
	if len(s.pairs) == 0 {
		return nil
	}
	p := &s.pairs[len(s.pairs)-1]
	s.pairs = s.pairs[:len(s.pairs)-1]
	return p
}

func (s *span[K, V]) len() int { return len(s.pairs) }

// window is a span over the live backing slice of a map. It captures the
// map's generation at creation and refuses to advance once the map has been
// structurally mutated.
type window[K cmp.Ordered, V any] struct {
	span[K, V]
	m   *VecMap[K, V]
	gen uint64
}

func (m *VecMap[K, V]) window() window[K, V] {
	return window[K, V]{span: span[K, V]{pairs: m.pairs}, m: m, gen: m.gen}
}

func (w *window[K, V]) check() {
	if w.gen != w.m.gen {
		panic("vecmap: iterator invalidated by map mutation")
	}
}

func (w *window[K, V]) nextRef() *Pair[K, V] {
	w.check()
	return w.span.nextRef()
}

func (w *window[K, V]) nextBackRef() *Pair[K, V] {
	w.check()
	return w.span.nextBackRef()
}

// Iter is a borrowing cursor over the pairs in ascending key order.
type Iter[K cmp.Ordered, V any] struct {
	w window[K, V]
}

// Iter returns a borrowing cursor over the pairs. Like all borrowing
// cursors it is double-ended, reports its exact remaining length, stays
// exhausted once exhausted, and panics when advanced after a structural
// mutation of the map.
func (m *VecMap[K, V]) Iter() *Iter[K, V] {
	return &Iter[K, V]{w: m.window()}
}

// Next returns the smallest remaining pair.
func (it *Iter[K, V]) Next() (Pair[K, V], bool) {
	if p := it.w.nextRef(); p != nil {
		return *p, true
	}
	var zero Pair[K, V]
	return zero, false
}

// NextBack returns the largest remaining pair.
func (it *Iter[K, V]) NextBack() (Pair[K, V], bool) {
	if p := it.w.nextBackRef(); p != nil {
		return *p, true
	}
	var zero Pair[K, V]
	return zero, false
}

// Len returns the exact number of remaining pairs.
func (it *Iter[K, V]) Len() int { return it.w.len() }

// IterMut is a borrowing cursor that exposes the stored value slots for
// in-place mutation. Writes through the yielded pointers are not structural.
type IterMut[K cmp.Ordered, V any] struct {
	w window[K, V]
}

// IterMut returns a borrowing cursor over keys and mutable value slots.
func (m *VecMap[K, V]) IterMut() *IterMut[K, V] {
	return &IterMut[K, V]{w: m.window()}
}

// Next returns the smallest remaining key and its value slot.
func (it *IterMut[K, V]) Next() (K, *V, bool) {
	if p := it.w.nextRef(); p != nil {
		return p.Key, &p.Value, true
	}
	var zero K
	return zero, nil, false
}

// NextBack returns the largest remaining key and its value slot.
func (it *IterMut[K, V]) NextBack() (K, *V, bool) {
	if p := it.w.nextBackRef(); p != nil {
		return p.Key, &p.Value, true
	}
	var zero K
	return zero, nil, false
}

// Len returns the exact number of remaining pairs.
func (it *IterMut[K, V]) Len() int { return it.w.len() }

// Keys is a borrowing cursor over the keys in ascending order.
type Keys[K cmp.Ordered, V any] struct {
	w window[K, V]
}

// Keys returns a borrowing cursor over the keys.
func (m *VecMap[K, V]) Keys() *Keys[K, V] {
	return &Keys[K, V]{w: m.window()}
}

// Next returns the smallest remaining key.
func (it *Keys[K, V]) Next() (K, bool) {
	if p := it.w.nextRef(); p != nil {
		return p.Key, true
	}
	var zero K
	return zero, false
}

// NextBack returns the largest remaining key.
func (it *Keys[K, V]) NextBack() (K, bool) {
	if p := it.w.nextBackRef(); p != nil {
		return p.Key, true
	}
	var zero K
	return zero, false
}

// Len returns the exact number of remaining keys.
func (it *Keys[K, V]) Len() int { return it.w.len() }

// Min returns the smallest remaining key in O(1). It is exactly one Next
// call: the backing order matches the key order, so the front of the window
// already holds the minimum. The shortcut is only valid under that ordering
// guarantee.
func (it *Keys[K, V]) Min() (K, bool) { return it.Next() }

// Max returns the largest remaining key in O(1), as one NextBack call.
func (it *Keys[K, V]) Max() (K, bool) { return it.NextBack() }

// Values is a borrowing cursor over the values in ascending key order.
type Values[K cmp.Ordered, V any] struct {
	w window[K, V]
}

// Values returns a borrowing cursor over the values.
func (m *VecMap[K, V]) Values() *Values[K, V] {
	return &Values[K, V]{w: m.window()}
}

// Next returns the value of the smallest remaining key.
func (it *Values[K, V]) Next() (V, bool) {
	if p := it.w.nextRef(); p != nil {
		return p.Value, true
	}
	var zero V
	return zero, false
}

// NextBack returns the value of the largest remaining key.
func (it *Values[K, V]) NextBack() (V, bool) {
	if p := it.w.nextBackRef(); p != nil {
		return p.Value, true
	}
	var zero V
	return zero, false
}

// Len returns the exact number of remaining values.
func (it *Values[K, V]) Len() int { return it.w.len() }

// ValuesMut is a borrowing cursor over mutable value slots in ascending key
// order.
type ValuesMut[K cmp.Ordered, V any] struct {
	w window[K, V]
}

// ValuesMut returns a borrowing cursor over the value slots.
func (m *VecMap[K, V]) ValuesMut() *ValuesMut[K, V] {
	return &ValuesMut[K, V]{w: m.window()}
}

// Next returns the value slot of the smallest remaining key.
func (it *ValuesMut[K, V]) Next() (*V, bool) {
	if p := it.w.nextRef(); p != nil {
		return &p.Value, true
	}
	return nil, false
}

// NextBack returns the value slot of the largest remaining key.
func (it *ValuesMut[K, V]) NextBack() (*V, bool) {
	if p := it.w.nextBackRef(); p != nil {
		return &p.Value, true
	}
	return nil, false
}

// Len returns the exact number of remaining values.
func (it *ValuesMut[K, V]) Len() int { return it.w.len() }

// Drain is an owning cursor over detached pairs.
type Drain[K cmp.Ordered, V any] struct {
	s span[K, V]
}

// Drain detaches the map's pairs into an owning cursor. The map is empty as
// soon as Drain returns; the cursor owns the detached storage outright, so
// later map mutations cannot invalidate it.
func (m *VecMap[K, V]) Drain() *Drain[K, V] {
	return &Drain[K, V]{s: span[K, V]{pairs: m.detach()}}
}

// Next returns the smallest remaining pair.
func (it *Drain[K, V]) Next() (Pair[K, V], bool) {
	if p := it.s.nextRef(); p != nil {
		return *p, true
	}
	var zero Pair[K, V]
	return zero, false
}

// NextBack returns the largest remaining pair.
func (it *Drain[K, V]) NextBack() (Pair[K, V], bool) {
	if p := it.s.nextBackRef(); p != nil {
		return *p, true
	}
	var zero Pair[K, V]
	return zero, false
}

// Len returns the exact number of remaining pairs.
func (it *Drain[K, V]) Len() int { return it.s.len() }

// DrainKeys is an owning cursor over detached keys.
type DrainKeys[K cmp.Ordered, V any] struct {
	s span[K, V]
}

// DrainKeys detaches the map's pairs into an owning key cursor, leaving the
// map empty.
func (m *VecMap[K, V]) DrainKeys() *DrainKeys[K, V] {
	return &DrainKeys[K, V]{s: span[K, V]{pairs: m.detach()}}
}

// Next returns the smallest remaining key.
func (it *DrainKeys[K, V]) Next() (K, bool) {
	if p := it.s.nextRef(); p != nil {
		return p.Key, true
	}
	var zero K
	return zero, false
}

// NextBack returns the largest remaining key.
func (it *DrainKeys[K, V]) NextBack() (K, bool) {
	if p := it.s.nextBackRef(); p != nil {
		return p.Key, true
	}
	var zero K
	return zero, false
}

// Len returns the exact number of remaining keys.
func (it *DrainKeys[K, V]) Len() int { return it.s.len() }

// Min returns the smallest remaining key in O(1), as one Next call.
func (it *DrainKeys[K, V]) Min() (K, bool) { return it.Next() }

// Max returns the largest remaining key in O(1), as one NextBack call.
func (it *DrainKeys[K, V]) Max() (K, bool) { return it.NextBack() }

// DrainValues is an owning cursor over detached values.
type DrainValues[K cmp.Ordered, V any] struct {
	s span[K, V]
}

// DrainValues detaches the map's pairs into an owning value cursor, leaving
// the map empty.
func (m *VecMap[K, V]) DrainValues() *DrainValues[K, V] {
	return &DrainValues[K, V]{s: span[K, V]{pairs: m.detach()}}
}

// Next returns the value of the smallest remaining key.
func (it *DrainValues[K, V]) Next() (V, bool) {
	if p := it.s.nextRef(); p != nil {
		return p.Value, true
	}
	var zero V
	return zero, false
}

// NextBack returns the value of the largest remaining key.
func (it *DrainValues[K, V]) NextBack() (V, bool) {
	if p := it.s.nextBackRef(); p != nil {
		return p.Value, true
	}
	var zero V
	return zero, false
}

// Len returns the exact number of remaining values.
func (it *DrainValues[K, V]) Len() int { return it.s.len() }

// All returns a sequence over the pairs in ascending key order. This is the
// canonical order external encoders rely on: equal maps produce equal
// sequences. The sequence reads the live map and panics if the map is
// structurally mutated during the loop.
func (m *VecMap[K, V]) All() iter.Seq2[K, V] {
	return func(yield func(K, V) bool) {
		gen := m.gen
		for i := range m.pairs {
			if gen != m.gen {
				panic("vecmap: iterator invalidated by map mutation")
			}
			if !yield(m.pairs[i].Key, m.pairs[i].Value) {
				return
			}
		}
	}
}

// Backward returns a sequence over the pairs in descending key order, with
// the same mutation discipline as All.
func (m *VecMap[K, V]) Backward() iter.Seq2[K, V] {
	return func(yield func(K, V) bool) {
		gen := m.gen
		for i := len(m.pairs) - 1; i >= 0; i-- {
			if gen != m.gen {
				panic("vecmap: iterator invalidated by map mutation")
			}
			if !yield(m.pairs[i].Key, m.pairs[i].Value) {
				return
			}
		}
	}
}
