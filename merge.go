package vecmap

import "cmp"

// Merged carries the values a merge found for one key: the left input's, the
// right input's, or both.
type Merged[L, R any] struct {
	left     L
	right    R
	hasLeft  bool
	hasRight bool
}

// MergeLeft wraps a value present only in the left input.
func MergeLeft[L, R any](left L) Merged[L, R] {
	return Merged[L, R]{left: left, hasLeft: true}
}

// MergeRight wraps a value present only in the right input.
func MergeRight[L, R any](right R) Merged[L, R] {
	return Merged[L, R]{right: right, hasRight: true}
}

// MergeBoth wraps the values of a key present in both inputs.
func MergeBoth[L, R any](left L, right R) Merged[L, R] {
	return Merged[L, R]{left: left, right: right, hasLeft: true, hasRight: true}
}

// Left returns the left input's value.
func (mg Merged[L, R]) Left() (L, bool) {
	return mg.left, mg.hasLeft
}

// Right returns the right input's value.
func (mg Merged[L, R]) Right() (R, bool) {
	return mg.right, mg.hasRight
}

// Both returns the two values of a key present on both sides.
func (mg Merged[L, R]) Both() (L, R, bool) {
	if !mg.hasLeft || !mg.hasRight {
		var l L
		var r R
		return l, r, false
	}
	return mg.left, mg.right, true
}

// Merge combines two sorted maps into a new one in a single linear pass,
// consuming both: left and right are empty when Merge returns. For every
// distinct key, fn receives the values found on either side and elects the
// surviving value; returning false drops the key from the result. The pass
// relies on both inputs being in ascending order, which every map produced
// by this package guarantees, so the result needs no re-sort.
func Merge[K cmp.Ordered, V any](left, right *VecMap[K, V], fn func(key K, values Merged[V, V]) (V, bool)) *VecMap[K, V] {
	l := left.detach()
	r := right.detach()

	out := make([]Pair[K, V], 0, len(l)+len(r))

	i, j := 0, 0
	for i < len(l) && j < len(r) {
		switch c := cmp.Compare(l[i].Key, r[j].Key); {
		case c < 0:
			if v, ok := fn(l[i].Key, MergeLeft[V, V](l[i].Value)); ok {
				out = append(out, Pair[K, V]{Key: l[i].Key, Value: v})
			}
			i++
		case c > 0:
			if v, ok := fn(r[j].Key, MergeRight[V, V](r[j].Value)); ok {
				out = append(out, Pair[K, V]{Key: r[j].Key, Value: v})
			}
			j++
		default:
			if v, ok := fn(r[j].Key, MergeBoth[V, V](l[i].Value, r[j].Value)); ok {
				out = append(out, Pair[K, V]{Key: r[j].Key, Value: v})
			}
			i++
			j++
		}
	}

	for ; i < len(l); i++ {
		if v, ok := fn(l[i].Key, MergeLeft[V, V](l[i].Value)); ok {
			out = append(out, Pair[K, V]{Key: l[i].Key, Value: v})
		}
	}

	for ; j < len(r); j++ {
		if v, ok := fn(r[j].Key, MergeRight[V, V](r[j].Value)); ok {
			out = append(out, Pair[K, V]{Key: r[j].Key, Value: v})
		}
	}

	return &VecMap[K, V]{pairs: out}
}

// Append merges every pair of other into m, with other's value winning on a
// key present in both. other is empty when Append returns: every element
// ends up owned by exactly one map, all of them by m.
func (m *VecMap[K, V]) Append(other *VecMap[K, V]) {
	if other.IsEmpty() {
		return
	}

	if m.IsEmpty() {
		m.pairs = other.detach()
		m.gen++
		return
	}

	merged := Merge(m, other, func(_ K, values Merged[V, V]) (V, bool) {
		if r, ok := values.Right(); ok {
			return r, true
		}
		l, _ := values.Left()
		return l, true
	})

	m.pairs = merged.pairs
	m.gen++
}
