package chainmap

// Entry is a single key-value node in a bucket chain.
//
// The key and its cached hash are immutable after construction. The value
// may be updated through SetValue (or through a value cursor); value
// updates are not structural mutations and do not invalidate views. The
// chain link is owned exclusively by the table's insert, remove, and growth
// machinery.
type Entry[K, V any] struct {
	hash  uint64
	key   K
	value V
	next  *Entry[K, V]
}

// Key returns the entry's key. The caller must not mutate a key in a way
// that changes its hash or equality.
func (e *Entry[K, V]) Key() K { return e.key }

// Value returns the entry's current value.
func (e *Entry[K, V]) Value() V { return e.value }

// SetValue replaces the entry's value in place.
func (e *Entry[K, V]) SetValue(v V) { e.value = v }
