package vecmap

import (
	"cmp"
	"fmt"
	"iter"
	"slices"
	"strings"
)

// Compile time check to ensure VecMap satisfies the fmt.Stringer interface.
var _ fmt.Stringer = (*VecMap[int, any])(nil)

// Options configures a VecMap.
type Options struct {
	// Capacity preallocates backing storage for at least this many pairs.
	// It is an allocation hint only and never affects contents or order.
	Capacity int
}

// VecMap is an associative container backed by one contiguous slice of pairs
// kept in strict ascending key order with no duplicate keys. Every lookup and
// mutation starts from one binary search over that slice.
//
// The zero value is an empty map ready for use. A VecMap is not safe for
// concurrent use: it follows single-writer/many-reader discipline and
// carries no internal locking.
type VecMap[K cmp.Ordered, V any] struct {
	pairs []Pair[K, V]

	// gen counts structural mutations: any change to the number, position,
	// or backing storage of the pairs. Entries and borrowing iterators
	// capture it at creation and refuse to operate against a newer state.
	gen uint64
}

// New creates a VecMap.
//
//	m := vecmap.New[uint64, string](func(o *vecmap.Options) {
//	    o.Capacity = 16
//	})
func New[K cmp.Ordered, V any](optFns ...func(o *Options)) *VecMap[K, V] {
	opts := Options{}

	for _, fn := range optFns {
		fn(&opts)
	}

	m := &VecMap[K, V]{}
	if opts.Capacity > 0 {
		m.pairs = make([]Pair[K, V], 0, opts.Capacity)
	}

	return m
}

// Of creates a VecMap from the given pairs. The result is indistinguishable
// from inserting the pairs one by one: on a duplicate key the last pair wins.
func Of[K cmp.Ordered, V any](pairs ...Pair[K, V]) *VecMap[K, V] {
	return &VecMap[K, V]{pairs: sortPairs(slices.Clone(pairs))}
}

// Collect creates a VecMap from a key-value sequence, equivalent to
// inserting every pair in sequence order.
func Collect[K cmp.Ordered, V any](seq iter.Seq2[K, V]) *VecMap[K, V] {
	var ps []Pair[K, V]
	for k, v := range seq {
		ps = append(ps, Pair[K, V]{Key: k, Value: v})
	}
	return &VecMap[K, V]{pairs: sortPairs(ps)}
}

// find is the binary search every operation starts from. It returns the
// index holding key and true, or the insertion point for key and false.
// Indices derived from find are valid only until the next structural
// mutation; no caller-supplied index ever reaches the backing slice.
func (m *VecMap[K, V]) find(key K) (int, bool) {
	return slices.BinarySearchFunc(m.pairs, key, func(p Pair[K, V], k K) int {
		return cmp.Compare(p.Key, k)
	})
}

// detach hands the backing slice to the caller and leaves the map empty.
func (m *VecMap[K, V]) detach() []Pair[K, V] {
	out := m.pairs
	m.pairs = nil
	if len(out) > 0 {
		m.gen++
	}
	return out
}

// Insert sets the value for key. If the key was already present the old
// value is replaced and returned with true; otherwise the pair is inserted
// at its sorted position and the zero value is returned with false.
func (m *VecMap[K, V]) Insert(key K, value V) (V, bool) {
	i, ok := m.find(key)
	if ok {
		old := m.pairs[i].Value
		m.pairs[i].Value = value
		return old, true
	}

	m.pairs = slices.Insert(m.pairs, i, Pair[K, V]{Key: key, Value: value})
	m.gen++

	var zero V
	return zero, false
}

// Get returns the value stored for key.
func (m *VecMap[K, V]) Get(key K) (V, bool) {
	if i, ok := m.find(key); ok {
		return m.pairs[i].Value, true
	}

	var zero V
	return zero, false
}

// GetMut returns a pointer to the value stored for key, or nil if the key is
// absent. The pointer aliases the stored slot and stays valid until the next
// structural mutation of the map.
func (m *VecMap[K, V]) GetMut(key K) *V {
	if i, ok := m.find(key); ok {
		return &m.pairs[i].Value
	}
	return nil
}

// GetKeyValue returns the stored pair for key.
func (m *VecMap[K, V]) GetKeyValue(key K) (Pair[K, V], bool) {
	if i, ok := m.find(key); ok {
		return m.pairs[i], true
	}

	var zero Pair[K, V]
	return zero, false
}

// MustGet returns the value stored for key and panics if the key is absent.
func (m *VecMap[K, V]) MustGet(key K) V {
	v, ok := m.Get(key)
	if !ok {
		panic("vecmap: no entry found for key")
	}
	return v
}

// Remove deletes key and returns the value it held.
func (m *VecMap[K, V]) Remove(key K) (V, bool) {
	if p, ok := m.RemoveKeyValue(key); ok {
		return p.Value, true
	}

	var zero V
	return zero, false
}

// RemoveKeyValue deletes key and returns the stored pair.
func (m *VecMap[K, V]) RemoveKeyValue(key K) (Pair[K, V], bool) {
	i, ok := m.find(key)
	if !ok {
		var zero Pair[K, V]
		return zero, false
	}

	p := m.pairs[i]
	m.pairs = slices.Delete(m.pairs, i, i+1)
	m.gen++

	return p, true
}

// ContainsKey reports whether key is stored.
func (m *VecMap[K, V]) ContainsKey(key K) bool {
	_, ok := m.find(key)
	return ok
}

// Len returns the number of stored pairs.
func (m *VecMap[K, V]) Len() int { return len(m.pairs) }

// IsEmpty reports whether the map holds no pairs.
func (m *VecMap[K, V]) IsEmpty() bool { return len(m.pairs) == 0 }

// Cap returns the capacity of the backing storage.
func (m *VecMap[K, V]) Cap() int { return cap(m.pairs) }

// Clear removes all pairs, keeping the allocated capacity.
func (m *VecMap[K, V]) Clear() {
	if len(m.pairs) == 0 {
		return
	}

	clear(m.pairs) // release held values
	m.pairs = m.pairs[:0]
	m.gen++
}

// Grow reserves capacity for at least n additional pairs.
func (m *VecMap[K, V]) Grow(n int) {
	if n <= 0 {
		return
	}

	before := cap(m.pairs)
	m.pairs = slices.Grow(m.pairs, n)
	if cap(m.pairs) != before {
		// The backing array moved, which invalidates outstanding slot
		// pointers and borrowing iterators just like a shifting insert.
		m.gen++
	}
}

// Push appends the pair in O(1) amortized time when the map is empty or key
// strictly exceeds the current maximum key, and returns true. Otherwise the
// map is left completely unchanged and Push returns false.
//
// Push is the only mutator that skips the full binary search; callers use it
// to load pairs already known to arrive in ascending key order. Out-of-order
// use is rejected by the false return, never by breaking the sort order.
func (m *VecMap[K, V]) Push(key K, value V) bool {
	if n := len(m.pairs); n > 0 && cmp.Compare(m.pairs[n-1].Key, key) >= 0 {
		return false
	}

	m.pairs = append(m.pairs, Pair[K, V]{Key: key, Value: value})
	m.gen++

	return true
}

// SplitOff removes every pair with a key greater than or equal to key and
// returns them as a new map; the receiver keeps the pairs with smaller keys.
// Both halves stay sorted and disjoint. When the split point is the first
// pair the new map takes over the whole backing buffer and the receiver
// keeps an empty buffer of the same capacity.
func (m *VecMap[K, V]) SplitOff(key K) *VecMap[K, V] {
	i, _ := m.find(key)

	switch i {
	case 0:
		out := m.pairs
		m.pairs = make([]Pair[K, V], 0, cap(out))
		if len(out) > 0 {
			m.gen++
		}
		return &VecMap[K, V]{pairs: out}
	case len(m.pairs):
		return &VecMap[K, V]{}
	}

	out := slices.Clone(m.pairs[i:])
	clear(m.pairs[i:]) // release moved values
	m.pairs = m.pairs[:i]
	m.gen++

	return &VecMap[K, V]{pairs: out}
}

// Extend inserts every pair in order, exactly as repeated Insert calls: a
// key already present, in the map or earlier in pairs, is overwritten.
func (m *VecMap[K, V]) Extend(pairs ...Pair[K, V]) {
	for _, p := range pairs {
		m.Insert(p.Key, p.Value)
	}
}

// ExtendSeq inserts every pair produced by seq, exactly as repeated Insert
// calls. Extend and ExtendSeq build identical maps from identical input.
func (m *VecMap[K, V]) ExtendSeq(seq iter.Seq2[K, V]) {
	for k, v := range seq {
		m.Insert(k, v)
	}
}

// First returns the pair with the smallest key.
func (m *VecMap[K, V]) First() (Pair[K, V], bool) {
	if len(m.pairs) == 0 {
		var zero Pair[K, V]
		return zero, false
	}
	return m.pairs[0], true
}

// Last returns the pair with the largest key.
func (m *VecMap[K, V]) Last() (Pair[K, V], bool) {
	if len(m.pairs) == 0 {
		var zero Pair[K, V]
		return zero, false
	}
	return m.pairs[len(m.pairs)-1], true
}

// PopFirst removes and returns the pair with the smallest key.
func (m *VecMap[K, V]) PopFirst() (Pair[K, V], bool) {
	if len(m.pairs) == 0 {
		var zero Pair[K, V]
		return zero, false
	}

	p := m.pairs[0]
	m.pairs = slices.Delete(m.pairs, 0, 1)
	m.gen++

	return p, true
}

// PopLast removes and returns the pair with the largest key.
func (m *VecMap[K, V]) PopLast() (Pair[K, V], bool) {
	n := len(m.pairs)
	if n == 0 {
		var zero Pair[K, V]
		return zero, false
	}

	p := m.pairs[n-1]
	clear(m.pairs[n-1:]) // release the held value
	m.pairs = m.pairs[:n-1]
	m.gen++

	return p, true
}

// Retain keeps only the pairs for which keep returns true, preserving order.
// The value pointer may be used to mutate retained values during the scan.
// keep must not mutate the map itself.
func (m *VecMap[K, V]) Retain(keep func(key K, value *V) bool) {
	kept := m.pairs[:0]
	for i := range m.pairs {
		if keep(m.pairs[i].Key, &m.pairs[i].Value) {
			kept = append(kept, m.pairs[i])
		}
	}

	if len(kept) == len(m.pairs) {
		return
	}

	clear(m.pairs[len(kept):]) // release dropped values
	m.pairs = kept
	m.gen++
}

// Clone returns a copy of the map. Pairs are copied, values are not
// deep-copied.
func (m *VecMap[K, V]) Clone() *VecMap[K, V] {
	return &VecMap[K, V]{pairs: slices.Clone(m.pairs)}
}

// String formats the map like the built-in map type, in ascending key order.
func (m *VecMap[K, V]) String() string {
	var b strings.Builder

	b.WriteString("vecmap[")
	for i, p := range m.pairs {
		if i > 0 {
			b.WriteByte(' ')
		}
		fmt.Fprintf(&b, "%v:%v", p.Key, p.Value)
	}
	b.WriteByte(']')

	return b.String()
}

// Equal reports whether a and b hold identical pair sequences. Sort order is
// canonical, so map equality is plain sequence comparison.
func Equal[K cmp.Ordered, V comparable](a, b *VecMap[K, V]) bool {
	return EqualFunc(a, b, func(x, y V) bool { return x == y })
}

// EqualFunc is Equal with a custom value comparison. Keys are compared with
// cmp.Compare.
func EqualFunc[K cmp.Ordered, V1, V2 any](a *VecMap[K, V1], b *VecMap[K, V2], eq func(V1, V2) bool) bool {
	if len(a.pairs) != len(b.pairs) {
		return false
	}

	for i := range a.pairs {
		if cmp.Compare(a.pairs[i].Key, b.pairs[i].Key) != 0 {
			return false
		}
		if !eq(a.pairs[i].Value, b.pairs[i].Value) {
			return false
		}
	}

	return true
}
