package testutil

import (
	"cmp"
	"math/rand"
	"slices"
	"sync"

	"github.com/hupe1980/vecmap"
)

// RNG struct encapsulates the random number generator and seed.
// It is thread-safe.
type RNG struct {
	rand *rand.Rand
	seed int64
	mu   sync.Mutex
}

// NewRNG creates a new RNG instance with the specified seed.
func NewRNG(seed int64) *RNG {
	return &RNG{
		rand: rand.New(rand.NewSource(seed)),
		seed: seed,
	}
}

// Reset resets the RNG to its initial seed.
func (r *RNG) Reset() {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.rand.Seed(r.seed)
}

// Seed returns the initial seed.
func (r *RNG) Seed() int64 {
	return r.seed
}

// Intn returns a non-negative pseudo-random number in [0,n).
func (r *RNG) Intn(n int) int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.rand.Intn(n)
}

// Uint64 returns a pseudo-random uint64.
func (r *RNG) Uint64() uint64 {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.rand.Uint64()
}

// Shuffle pseudo-randomizes the order of n elements through swap.
func (r *RNG) Shuffle(n int, swap func(i, j int)) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.rand.Shuffle(n, swap)
}

// UniqueKeys returns n distinct pseudo-random keys.
func UniqueKeys(rng *RNG, n int) []uint64 {
	seen := make(map[uint64]struct{}, n)
	keys := make([]uint64, 0, n)

	for len(keys) < n {
		k := rng.Uint64()
		if _, ok := seen[k]; ok {
			continue
		}
		seen[k] = struct{}{}
		keys = append(keys, k)
	}

	return keys
}

// LedgerPairs returns n pairs with distinct pseudo-random keys, the shape of
// balance-style fixtures.
func LedgerPairs(rng *RNG, n int) []vecmap.Pair[uint64, uint64] {
	keys := UniqueKeys(rng, n)

	pairs := make([]vecmap.Pair[uint64, uint64], n)
	for i, k := range keys {
		pairs[i] = vecmap.P(k, rng.Uint64())
	}

	return pairs
}

// Model is a deliberately simple reference implementation of an ordered map:
// a builtin map whose pairs are sorted on demand. Differential tests drive a
// VecMap and a Model with the same operations and compare observable state.
type Model[K cmp.Ordered, V any] struct {
	values map[K]V
}

// NewModel creates an empty Model.
func NewModel[K cmp.Ordered, V any]() *Model[K, V] {
	return &Model[K, V]{values: make(map[K]V)}
}

// Insert sets the value for key and returns the value it replaced.
func (md *Model[K, V]) Insert(key K, value V) (V, bool) {
	old, ok := md.values[key]
	md.values[key] = value
	return old, ok
}

// Remove deletes key and returns the value it held.
func (md *Model[K, V]) Remove(key K) (V, bool) {
	old, ok := md.values[key]
	delete(md.values, key)
	return old, ok
}

// Get returns the value stored for key.
func (md *Model[K, V]) Get(key K) (V, bool) {
	v, ok := md.values[key]
	return v, ok
}

// Contains reports whether key is stored.
func (md *Model[K, V]) Contains(key K) bool {
	_, ok := md.values[key]
	return ok
}

// Len returns the number of stored pairs.
func (md *Model[K, V]) Len() int {
	return len(md.values)
}

// Pairs returns the stored pairs in ascending key order.
func (md *Model[K, V]) Pairs() []vecmap.Pair[K, V] {
	out := make([]vecmap.Pair[K, V], 0, len(md.values))
	for k, v := range md.values {
		out = append(out, vecmap.P(k, v))
	}

	slices.SortFunc(out, func(a, b vecmap.Pair[K, V]) int {
		return cmp.Compare(a.Key, b.Key)
	})

	return out
}
