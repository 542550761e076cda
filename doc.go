// Package chainmap implements a generic hash table mapping keys to values,
// using separate chaining for collision resolution and automatic capacity
// growth driven by a configurable load factor.
//
// A Map is a single-owner, in-memory container: it performs no locking and
// must not be accessed concurrently from multiple goroutines without
// external synchronization. Every operation runs to completion before
// returning; growth triggered by an insertion happens synchronously inside
// that insertion.
//
// # Basic Usage
//
//	m, err := chainmap.New[string, int]()
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	m.Place("a", 1)          // insert, returns false (key was new)
//	m.Place("a", 2)          // overwrite, returns true (key existed)
//	v, ok := m.Load("a")     // 2, true
//	*m.Ref("b")++            // get-or-insert: "b" now maps to 1
//	m.Remove("a")            // true
//	m.Clear()                // drop every entry, keep capacity
//
// # Hashing
//
// Hashing and key equality are an explicit capability supplied at
// construction. New picks a per-key-type default (xxHash for strings, a
// 64-bit mixer for common integer widths, hash/maphash otherwise);
// NewWithHasher accepts an arbitrary Hasher, which also admits
// non-comparable key types such as byte slices (see BytesHasher).
//
// A key's hash is computed once, when its entry is created, and cached for
// the entry's lifetime. Keys must therefore not be mutated after insertion
// in any way that changes their hash or equality.
//
// # Iteration and Invalidation
//
// Keys, Values, and Entries return lightweight read-oriented views over the
// table's current bucket array. Views do not snapshot content; they
// reference live storage. Each view produces an explicit cursor (Cursor)
// and a range-over-func sequence (All). Traversal visits bucket 0's chain
// in insertion order, then bucket 1's chain, and so on; the order is
// neither key-sorted nor hash-sorted.
//
// Any structural mutation (inserting a new key, removing a key, Clear, or
// a capacity growth) invalidates every view and cursor obtained before it.
// Using an invalidated cursor panics rather than silently reading discarded
// nodes. Overwriting the value of an existing key is not structural and
// does not invalidate.
//
// # Package Structure
//
//   - Public API: map.go (New, Place, Load, Ref, Remove, Clear), entry.go
//   - Hashing capability: hasher.go (Hasher, BytesHasher, per-type defaults)
//   - Configuration: options.go (Option, WithCapacity, WithLoadFactor)
//   - Growth: rehash.go (capacity doubling and redistribution)
//   - Iteration: view.go (KeyView/ValueView/EntryView and their cursors)
package chainmap
