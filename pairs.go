package vecmap

import (
	"cmp"
	"slices"
)

// Pair is one key-value element of a VecMap.
type Pair[K cmp.Ordered, V any] struct {
	Key   K
	Value V
}

// P builds a Pair. It keeps literal constructions short:
//
//	m := vecmap.Of(vecmap.P(1, "a"), vecmap.P(2, "b"))
func P[K cmp.Ordered, V any](key K, value V) Pair[K, V] {
	return Pair[K, V]{Key: key, Value: value}
}

// Pairs is a raw ascending pair sequence, the detached representation of a
// VecMap. Callers that hold decoded snapshots in this form can binary-search
// them in place without rebuilding a map.
type Pairs[K cmp.Ordered, V any] []Pair[K, V]

// Search returns the index of key and true, or the index where key would be
// inserted and false. The receiver must be in ascending key order, which
// holds for every Pairs produced by this package.
func (ps Pairs[K, V]) Search(key K) (int, bool) {
	return slices.BinarySearchFunc(ps, key, func(p Pair[K, V], k K) int {
		return cmp.Compare(p.Key, k)
	})
}

// Get returns the value stored for key.
func (ps Pairs[K, V]) Get(key K) (V, bool) {
	if i, ok := ps.Search(key); ok {
		return ps[i].Value, true
	}
	var zero V
	return zero, false
}

// TakePairs detaches and returns the map's backing pairs, leaving the map
// empty. The caller owns the returned slice outright.
func (m *VecMap[K, V]) TakePairs() Pairs[K, V] {
	return Pairs[K, V](m.detach())
}

// FromPairs builds a VecMap from ps, taking ownership of the slice; the
// caller must not use ps afterwards. A slice already in strictly ascending
// key order is adopted as-is after an O(n) verification. Anything else is
// stably sorted with the last pair of a duplicate key winning, so the result
// always matches repeated Insert.
func FromPairs[K cmp.Ordered, V any](ps Pairs[K, V]) *VecMap[K, V] {
	if !sortedStrict(ps) {
		ps = sortPairs(ps)
	}
	return &VecMap[K, V]{pairs: ps}
}

// sortedStrict reports whether keys are strictly ascending.
func sortedStrict[K cmp.Ordered, V any](ps []Pair[K, V]) bool {
	for i := 1; i < len(ps); i++ {
		if cmp.Compare(ps[i-1].Key, ps[i].Key) >= 0 {
			return false
		}
	}
	return true
}

// sortPairs sorts ps by key in place and drops all but the last pair of
// every duplicate-key run, matching the outcome of repeated Insert.
func sortPairs[K cmp.Ordered, V any](ps []Pair[K, V]) []Pair[K, V] {
	slices.SortStableFunc(ps, func(a, b Pair[K, V]) int {
		return cmp.Compare(a.Key, b.Key)
	})
	out := ps[:0]
	for i := range ps {
		if i+1 < len(ps) && cmp.Compare(ps[i].Key, ps[i+1].Key) == 0 {
			continue
		}
		out = append(out, ps[i])
	}
	clear(ps[len(out):]) // release dropped values
	return out
}
