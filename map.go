package chainmap

import "fmt"

// Map is a hash table from K to V with separately chained buckets.
//
// A Map is exclusively owned by its creator: no operation locks, and
// concurrent access from multiple goroutines without external
// synchronization is undefined. Use New or NewWithHasher to create one; the
// zero value is not usable.
type Map[K, V any] struct {
	buckets    []*Entry[K, V]
	count      int
	loadFactor float64
	maxCount   int // floor(loadFactor * len(buckets)); growth fires when count exceeds it
	hasher     Hasher[K]

	// gen counts structural mutations (new key, removal, clear, growth).
	// Views capture it at creation and fail fast when it has moved on.
	gen uint64
}

// New creates a Map using the default hashing capability for K
// (see defaultHasher in hasher.go).
func New[K comparable, V any](opts ...Option) (*Map[K, V], error) {
	return NewWithHasher[K, V](defaultHasher[K](), opts...)
}

// NewWithHasher creates a Map with an explicit hashing capability. This is
// the constructor for non-comparable key types and for callers that need a
// specific hash, e.g. a deterministic one for reproducible layouts.
func NewWithHasher[K, V any](h Hasher[K], opts ...Option) (*Map[K, V], error) {
	if h.Hash == nil || h.Equal == nil {
		return nil, ErrNilHasher
	}

	cfg := defaultConfig()
	for _, opt := range opts {
		opt(cfg)
	}
	if cfg.capacity <= 0 {
		return nil, fmt.Errorf("%w: got %d", ErrInvalidCapacity, cfg.capacity)
	}
	if cfg.loadFactor <= 0 || cfg.loadFactor > 1 {
		return nil, fmt.Errorf("%w: got %v", ErrInvalidLoadFactor, cfg.loadFactor)
	}

	return &Map[K, V]{
		buckets:    make([]*Entry[K, V], cfg.capacity),
		loadFactor: cfg.loadFactor,
		maxCount:   int(cfg.loadFactor * float64(cfg.capacity)),
		hasher:     h,
	}, nil
}

// Len returns the number of live entries. O(1).
func (m *Map[K, V]) Len() int { return m.count }

// Cap returns the current number of buckets. It starts at the configured
// initial capacity and doubles on each growth; it never shrinks.
func (m *Map[K, V]) Cap() int { return len(m.buckets) }

// Place inserts key with value, or overwrites the value if key is already
// present. It reports whether the key existed before the call.
//
// A new key is appended to the end of its bucket's chain. If the insertion
// pushes the live count past the load-factor threshold, the table grows
// synchronously before Place returns.
func (m *Map[K, V]) Place(key K, value V) bool {
	hash := m.hasher.Hash(key)
	return m.placeInBucket(m.bucketFor(hash), hash, key, value)
}

// Load returns the value stored for key and whether the key is present.
// It never modifies the table.
func (m *Map[K, V]) Load(key K) (V, bool) {
	if e := m.lookup(key); e != nil {
		return e.value, true
	}
	var zero V
	return zero, false
}

// Ref returns a pointer to the value stored for key, inserting a zero value
// first when the key is absent. The pointer stays valid until the next
// structural mutation of the table.
//
// Absence is indistinguishable from presence through this call alone; a
// caller that needs the distinction should use Load or Place instead.
func (m *Map[K, V]) Ref(key K) *V {
	if e := m.lookup(key); e != nil {
		return &e.value
	}
	var zero V
	m.Place(key, zero)
	// Re-locate: the insertion may have grown the table and rebuilt every
	// node in a new bucket array.
	return &m.lookup(key).value
}

// Remove deletes key's entry and reports whether it was present. Removal
// never triggers growth or shrinking.
func (m *Map[K, V]) Remove(key K) bool {
	hash := m.hasher.Hash(key)
	idx := m.bucketFor(hash)

	var prev *Entry[K, V]
	for e := m.buckets[idx]; e != nil; e = e.next {
		if e.hash == hash && m.hasher.Equal(e.key, key) {
			if prev == nil {
				m.buckets[idx] = e.next
			} else {
				prev.next = e.next
			}
			e.next = nil
			m.count--
			m.gen++
			return true
		}
		prev = e
	}
	return false
}

// Clear drops every entry from every bucket. Capacity and the growth
// threshold are unchanged; the table behaves as freshly constructed at its
// current capacity.
func (m *Map[K, V]) Clear() {
	clear(m.buckets)
	m.count = 0
	m.gen++
}

// bucketFor maps a hash to its bucket index under the current capacity.
func (m *Map[K, V]) bucketFor(hash uint64) int {
	return int(hash % uint64(len(m.buckets)))
}

// lookup walks key's chain and returns its entry, or nil. The cached hash
// is compared first as a cheap filter; Equal is authoritative.
func (m *Map[K, V]) lookup(key K) *Entry[K, V] {
	hash := m.hasher.Hash(key)
	for e := m.buckets[m.bucketFor(hash)]; e != nil; e = e.next {
		if e.hash == hash && m.hasher.Equal(e.key, key) {
			return e
		}
	}
	return nil
}

// placeInBucket inserts or overwrites within bucket idx, reporting whether
// the key already existed. It is the single insertion path: Place routes
// through it, and growth reuses it to redistribute entries.
func (m *Map[K, V]) placeInBucket(idx int, hash uint64, key K, value V) bool {
	var last *Entry[K, V]
	for e := m.buckets[idx]; e != nil; e = e.next {
		if e.hash == hash && m.hasher.Equal(e.key, key) {
			e.value = value
			return true
		}
		last = e
	}

	entry := &Entry[K, V]{hash: hash, key: key, value: value}
	if last == nil {
		m.buckets[idx] = entry
	} else {
		last.next = entry
	}
	m.count++
	m.gen++

	if m.count > m.maxCount {
		m.grow()
	}
	return false
}
