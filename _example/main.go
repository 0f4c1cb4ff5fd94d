package main

import (
	"fmt"
	"time"

	"github.com/hupe1980/vecmap"
	"github.com/hupe1980/vecmap/testutil"
)

func main() {
	seed := int64(4711)
	size := 100000

	rng := testutil.NewRNG(seed)
	pairs := testutil.LedgerPairs(rng, size)

	fmt.Println("--- Insert ---")
	fmt.Println("Size:", size)

	m := vecmap.New[uint64, uint64](func(o *vecmap.Options) {
		o.Capacity = size
	})

	start := time.Now()
	for _, p := range pairs {
		m.Insert(p.Key, p.Value)
	}
	fmt.Println("Insert took:", time.Since(start))

	fmt.Println("--- Lookup ---")

	start = time.Now()
	hits := 0
	for _, p := range pairs {
		if _, ok := m.Get(p.Key); ok {
			hits++
		}
	}
	fmt.Println("Lookups:", hits)
	fmt.Println("Lookup took:", time.Since(start))

	fmt.Println("--- Scan ---")

	start = time.Now()
	var sum uint64
	for _, v := range m.All() {
		sum += v
	}
	fmt.Println("Sum:", sum)
	fmt.Println("Scan took:", time.Since(start))

	if min, ok := m.Keys().Min(); ok {
		fmt.Println("Min key:", min)
	}
	if max, ok := m.Keys().Max(); ok {
		fmt.Println("Max key:", max)
	}
}
