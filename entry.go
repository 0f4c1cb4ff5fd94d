package vecmap

import (
	"cmp"
	"slices"
)

// Entry is a one-shot handle to the slot for a single key, produced by one
// binary search. It carries the slot index found (occupied) or the insertion
// point plus the pending key (vacant) and is consumed by one terminal call.
//
// An Entry holds conceptual exclusive access to its map: the captured index
// is only valid against the map state at lookup time. Every method checks
// that no structural mutation happened since the lookup and panics when one
// did, so a stale entry fails loudly instead of corrupting the order.
type Entry[K cmp.Ordered, V any] struct {
	m        *VecMap[K, V]
	key      K
	idx      int
	occupied bool
	gen      uint64
}

// Entry looks key up with one binary search and returns a handle classified
// occupied or vacant. Keep the handle scoped to a single expression or
// statement block; it panics when used after the map was structurally
// mutated through any other path.
func (m *VecMap[K, V]) Entry(key K) *Entry[K, V] {
	i, ok := m.find(key)
	return &Entry[K, V]{m: m, key: key, idx: i, occupied: ok, gen: m.gen}
}

func (e *Entry[K, V]) check() {
	if e.gen != e.m.gen {
		panic("vecmap: entry used after map mutation")
	}
}

// Key returns the looked-up key, whether or not it is stored yet.
func (e *Entry[K, V]) Key() K {
	e.check()
	return e.key
}

// Occupied reports whether the key was found by the lookup.
func (e *Entry[K, V]) Occupied() bool {
	e.check()
	return e.occupied
}

// Value returns the stored value of an occupied entry.
func (e *Entry[K, V]) Value() (V, bool) {
	e.check()
	if !e.occupied {
		var zero V
		return zero, false
	}
	return e.m.pairs[e.idx].Value, true
}

// Mut returns a pointer to the stored slot of an occupied entry. The pointer
// is tied to the map, not the entry: it stays valid until the map's next
// structural mutation.
func (e *Entry[K, V]) Mut() (*V, bool) {
	e.check()
	if !e.occupied {
		return nil, false
	}
	return &e.m.pairs[e.idx].Value, true
}

// Swap replaces the stored value of an occupied entry and returns the old
// value. Swapping is not structural, so the entry stays usable.
func (e *Entry[K, V]) Swap(value V) (V, bool) {
	e.check()
	if !e.occupied {
		var zero V
		return zero, false
	}

	old := e.m.pairs[e.idx].Value
	e.m.pairs[e.idx].Value = value

	return old, true
}

// Remove deletes the pair of an occupied entry and returns its value. The
// removal is structural and consumes the entry. On a vacant entry Remove
// reports false and changes nothing.
func (e *Entry[K, V]) Remove() (V, bool) {
	e.check()
	if !e.occupied {
		var zero V
		return zero, false
	}

	old := e.m.pairs[e.idx].Value
	e.m.pairs = slices.Delete(e.m.pairs, e.idx, e.idx+1)
	e.m.gen++

	return old, true
}

// Insert sets the value for the entry's key and returns a pointer to the
// slot. On a vacant entry the pair is inserted at the captured insertion
// point, which is structural and consumes the entry. On an occupied entry
// the value is replaced in place; use Swap to retrieve the old value.
func (e *Entry[K, V]) Insert(value V) *V {
	e.check()
	if e.occupied {
		e.m.pairs[e.idx].Value = value
		return &e.m.pairs[e.idx].Value
	}

	e.m.pairs = slices.Insert(e.m.pairs, e.idx, Pair[K, V]{Key: e.key, Value: value})
	e.m.gen++

	return &e.m.pairs[e.idx].Value
}

// OrInsert returns a pointer to the stored value, inserting def when the
// entry is vacant.
func (e *Entry[K, V]) OrInsert(def V) *V {
	e.check()
	if e.occupied {
		return &e.m.pairs[e.idx].Value
	}
	return e.Insert(def)
}

// OrInsertWith returns a pointer to the stored value, inserting the result
// of f when the entry is vacant. f runs only on the vacant path.
func (e *Entry[K, V]) OrInsertWith(f func() V) *V {
	e.check()
	if e.occupied {
		return &e.m.pairs[e.idx].Value
	}
	return e.Insert(f())
}

// OrInsertWithKey is OrInsertWith for factories that derive the value from
// the key.
func (e *Entry[K, V]) OrInsertWithKey(f func(K) V) *V {
	e.check()
	if e.occupied {
		return &e.m.pairs[e.idx].Value
	}
	return e.Insert(f(e.key))
}

// OrDefault returns a pointer to the stored value, inserting the zero value
// when the entry is vacant.
func (e *Entry[K, V]) OrDefault() *V {
	var zero V
	return e.OrInsert(zero)
}

// AndModify applies f to the stored value when the entry is occupied and
// returns the entry for further chaining; on a vacant entry it is a no-op.
//
//	m.Entry(k).AndModify(func(v *int) { *v++ }).OrInsert(1)
func (e *Entry[K, V]) AndModify(f func(*V)) *Entry[K, V] {
	e.check()
	if e.occupied {
		f(&e.m.pairs[e.idx].Value)
	}
	return e
}
