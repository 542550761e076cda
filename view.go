package chainmap

import "iter"

// view is the shared, non-owning handle underlying the three concrete
// views: a reference to the bucket array as it stood when the view was
// obtained, plus the structural generation for staleness checks.
type view[K, V any] struct {
	m       *Map[K, V]
	buckets []*Entry[K, V]
	gen     uint64
}

// cursor is the traversal state machine shared by the three cursor
// variants: the current bucket index and the current entry. A cursor with a
// nil entry is exhausted; advancing an exhausted cursor panics.
type cursor[K, V any] struct {
	view[K, V]
	bucket int
	entry  *Entry[K, V]
}

func (v view[K, V]) begin() cursor[K, V] {
	v.check()
	c := cursor[K, V]{view: v}
	c.entry = c.buckets[0]
	c.skipEmpty()
	return c
}

// skipEmpty scans forward to the next non-empty bucket, leaving the cursor
// exhausted when the array runs out. Already-visited buckets are never
// re-entered.
func (c *cursor[K, V]) skipEmpty() {
	for c.entry == nil {
		c.bucket++
		if c.bucket >= len(c.buckets) {
			return
		}
		c.entry = c.buckets[c.bucket]
	}
}

func (c *cursor[K, V]) advance() {
	c.check()
	c.entry = c.entry.next
	c.skipEmpty()
}

// check panics when the table has structurally mutated since the view was
// obtained. The panic replaces the alternative: silently walking nodes the
// table has already discarded.
func (v view[K, V]) check() {
	if v.gen != v.m.gen {
		panic("chainmap: view invalidated by structural mutation of the map")
	}
}

// Keys returns a read-only view of the table's keys.
func (m *Map[K, V]) Keys() KeyView[K, V] {
	return KeyView[K, V]{view[K, V]{m: m, buckets: m.buckets, gen: m.gen}}
}

// Values returns a view of the table's values. Values are mutable through
// the view's cursors.
func (m *Map[K, V]) Values() ValueView[K, V] {
	return ValueView[K, V]{view[K, V]{m: m, buckets: m.buckets, gen: m.gen}}
}

// Entries returns a view of the table's entries, exposing both key and
// mutable value at each position.
func (m *Map[K, V]) Entries() EntryView[K, V] {
	return EntryView[K, V]{view[K, V]{m: m, buckets: m.buckets, gen: m.gen}}
}

// KeyView is a non-owning view over the table's keys.
type KeyView[K, V any] struct{ view[K, V] }

// ValueView is a non-owning view over the table's values.
type ValueView[K, V any] struct{ view[K, V] }

// EntryView is a non-owning view over the table's entries.
type EntryView[K, V any] struct{ view[K, V] }

// Cursor returns a cursor positioned on the view's first key, or an
// exhausted cursor when the table is empty.
func (v KeyView[K, V]) Cursor() KeyCursor[K, V] { return KeyCursor[K, V]{v.begin()} }

// Cursor returns a cursor positioned on the view's first value, or an
// exhausted cursor when the table is empty.
func (v ValueView[K, V]) Cursor() ValueCursor[K, V] { return ValueCursor[K, V]{v.begin()} }

// Cursor returns a cursor positioned on the view's first entry, or an
// exhausted cursor when the table is empty.
func (v EntryView[K, V]) Cursor() EntryCursor[K, V] { return EntryCursor[K, V]{v.begin()} }

// All returns a sequence over the keys, in bucket-then-chain order.
func (v KeyView[K, V]) All() iter.Seq[K] {
	return func(yield func(K) bool) {
		for c := v.Cursor(); c.Valid(); c.Next() {
			if !yield(c.Key()) {
				return
			}
		}
	}
}

// All returns a sequence over the values, in bucket-then-chain order.
func (v ValueView[K, V]) All() iter.Seq[V] {
	return func(yield func(V) bool) {
		for c := v.Cursor(); c.Valid(); c.Next() {
			if !yield(*c.Value()) {
				return
			}
		}
	}
}

// All returns a sequence over key-value pairs, in bucket-then-chain order.
func (v EntryView[K, V]) All() iter.Seq2[K, V] {
	return func(yield func(K, V) bool) {
		for c := v.Cursor(); c.Valid(); c.Next() {
			e := c.Entry()
			if !yield(e.key, e.value) {
				return
			}
		}
	}
}

// KeyCursor is a traversal position exposing the key at each entry.
//
// The usual loop is:
//
//	for c := m.Keys().Cursor(); c.Valid(); c.Next() {
//	    _ = c.Key()
//	}
type KeyCursor[K, V any] struct{ cursor[K, V] }

// ValueCursor is a traversal position exposing a mutable reference to the
// value at each entry.
type ValueCursor[K, V any] struct{ cursor[K, V] }

// EntryCursor is a traversal position exposing the entry node itself.
type EntryCursor[K, V any] struct{ cursor[K, V] }

// Valid reports whether the cursor is positioned on an entry. An exhausted
// cursor stays invalid forever.
func (c *KeyCursor[K, V]) Valid() bool   { return c.entry != nil }
func (c *ValueCursor[K, V]) Valid() bool { return c.entry != nil }
func (c *EntryCursor[K, V]) Valid() bool { return c.entry != nil }

// Next advances to the next entry in bucket-then-chain order. The cursor
// must be valid and the table must not have structurally mutated since the
// view was obtained.
func (c *KeyCursor[K, V]) Next()   { c.advance() }
func (c *ValueCursor[K, V]) Next() { c.advance() }
func (c *EntryCursor[K, V]) Next() { c.advance() }

// Key returns the key at the cursor's position.
func (c *KeyCursor[K, V]) Key() K { return c.entry.key }

// Value returns a pointer to the value at the cursor's position. Writes
// through it update the table in place and are not structural mutations.
func (c *ValueCursor[K, V]) Value() *V { return &c.entry.value }

// Entry returns the entry at the cursor's position.
func (c *EntryCursor[K, V]) Entry() *Entry[K, V] { return c.entry }

// Equal reports whether two cursors reference the same entry. All
// exhausted cursors compare equal, regardless of which view produced them.
func (c *KeyCursor[K, V]) Equal(o KeyCursor[K, V]) bool     { return c.entry == o.entry }
func (c *ValueCursor[K, V]) Equal(o ValueCursor[K, V]) bool { return c.entry == o.entry }
func (c *EntryCursor[K, V]) Equal(o EntryCursor[K, V]) bool { return c.entry == o.entry }
