// Package testutil provides testing utilities for vecmap.
//
// This package is intended for use in tests and benchmarks only. It provides
// a seeded random number generator, duplicate-free pair fixtures, and a
// reference model for differential checks.
//
// # Random Fixtures
//
//	rng := testutil.NewRNG(4711)
//	pairs := testutil.LedgerPairs(rng, 64)
//
// # Differential Checking
//
//	md := testutil.NewModel[uint64, uint64]()
//	md.Insert(k, v) // mirror every operation applied to the map under test
//	// then compare md.Pairs() against the map's iteration order
package testutil
