// Package vecmap provides an ordered, vector-backed associative container.
//
// A VecMap keeps its key-value pairs in one contiguous slice in strict
// ascending key order and looks keys up by binary search. For the small
// collections a financial ledger works with (per-asset balances, prices,
// distribution credits) that layout beats a pointer-based tree on cache
// locality and gives a canonical iteration order, so equal maps always
// encode identically.
//
// # Quick Start
//
//	m := vecmap.New[string, int]()
//	m.Insert("btc", 1)
//	m.Insert("eqd", 2)
//
//	if v, ok := m.Get("btc"); ok {
//	    fmt.Println(v)
//	}
//
//	for k, v := range m.All() { // ascending key order
//	    fmt.Println(k, v)
//	}
//
// # Entries
//
// Entry runs one binary search and returns a handle for find-or-insert
// patterns without a second lookup:
//
//	m.Entry("eth").AndModify(func(v *int) { *v++ }).OrInsert(1)
//
// # Bulk Operations
//
// SplitOff partitions a map by key, Append merges one map into another with
// the donor's value winning on shared keys, and Merge exposes the underlying
// two-way merge with a per-key callback:
//
//	hi := m.SplitOff("m") // m keeps keys < "m", hi takes the rest
//	m.Append(hi)          // merge back; hi is empty afterwards
//
// # Monotonic Loading
//
// Push appends in O(1) when keys arrive in strictly ascending order and
// reports false, leaving the map untouched, otherwise:
//
//	for _, p := range decoded {
//	    if !m.Push(p.Key, p.Value) {
//	        // out-of-order input, fall back to Insert
//	    }
//	}
//
// # Caveats
//
//   - Not safe for concurrent use with a writer; concurrent readers are fine
//     while no writer is active.
//   - Entries and borrowing iterators capture the map's state at creation.
//     Using one after a structural mutation of the map panics.
package vecmap
