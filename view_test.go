// view_test.go tests the iteration subsystem: the three view variants and
// their cursors, traversal order, cursor equality, sequence adapters, and
// fail-fast invalidation on structural mutation.
package chainmap

import (
	"strings"
	"testing"
)

// orderedMap builds a table whose layout is fully determined: identity
// hash, no growth (load factor 1 and a roomy capacity).
func orderedMap(t *testing.T, capacity int, keys ...int) *Map[int, int] {
	t.Helper()
	m, err := NewWithHasher[int, int](identityHasher(),
		WithCapacity(capacity), WithLoadFactor(1.0))
	if err != nil {
		t.Fatal(err)
	}
	for _, k := range keys {
		m.Place(k, k*10)
	}
	return m
}

func collectKeys(m *Map[int, int]) []int {
	var got []int
	for c := m.Keys().Cursor(); c.Valid(); c.Next() {
		got = append(got, c.Key())
	}
	return got
}

func wantPanic(t *testing.T, substr string, fn func()) {
	t.Helper()
	defer func() {
		r := recover()
		if r == nil {
			t.Fatalf("expected panic containing %q, got none", substr)
		}
		msg, ok := r.(string)
		if !ok || !strings.Contains(msg, substr) {
			t.Fatalf("expected panic containing %q, got %v", substr, r)
		}
	}()
	fn()
}

// =============================================================================
// Traversal
// =============================================================================

func TestTraversalOrderBucketThenChain(t *testing.T) {
	// Capacity 8, identity hash: 16, 0, 8 chain in bucket 0 in append
	// order; 3 in bucket 3; 13, 5 chain in bucket 5 in append order.
	m := orderedMap(t, 8, 16, 0, 8, 3, 13, 5)

	got := collectKeys(m)
	want := []int{16, 0, 8, 3, 13, 5}
	if len(got) != len(want) {
		t.Fatalf("traversal: got %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("traversal: got %v, want %v", got, want)
		}
	}
}

func TestIterationCompleteness(t *testing.T) {
	m := mustNew[int, int](t, WithCapacity(16), WithLoadFactor(0.75))
	for k := 1; k <= 19; k++ {
		m.Place(k, k)
	}

	seen := make(map[int]int)
	steps := 0
	for c := m.Keys().Cursor(); c.Valid(); c.Next() {
		seen[c.Key()]++
		steps++
	}

	if steps != m.Len() {
		t.Fatalf("cursor steps %d != Len %d", steps, m.Len())
	}
	for k := 1; k <= 19; k++ {
		if seen[k] != 1 {
			t.Fatalf("key %d visited %d times", k, seen[k])
		}
	}
}

func TestEmptyTableIteration(t *testing.T) {
	m := mustNew[int, int](t)
	if c := m.Keys().Cursor(); c.Valid() {
		t.Fatal("cursor over empty table is valid")
	}
	for range m.Entries().All() {
		t.Fatal("sequence over empty table yielded")
	}
}

func TestSparseBucketsSkipped(t *testing.T) {
	// Entries only in the last bucket: initialization must scan forward
	// without yielding phantom elements, and advancing must terminate.
	m := orderedMap(t, 16, 15)
	got := collectKeys(m)
	if len(got) != 1 || got[0] != 15 {
		t.Fatalf("traversal: got %v, want [15]", got)
	}
}

// =============================================================================
// The three view variants
// =============================================================================

func TestValueViewMutation(t *testing.T) {
	m := orderedMap(t, 8, 1, 2, 3)

	for c := m.Values().Cursor(); c.Valid(); c.Next() {
		*c.Value() *= 2
	}
	for _, k := range []int{1, 2, 3} {
		if v, _ := m.Load(k); v != k*20 {
			t.Fatalf("key %d: got %d, want %d", k, v, k*20)
		}
	}
}

func TestEntryViewExposesBoth(t *testing.T) {
	m := orderedMap(t, 8, 4, 5)

	for c := m.Entries().Cursor(); c.Valid(); c.Next() {
		e := c.Entry()
		if e.Value() != e.Key()*10 {
			t.Fatalf("entry %d: value %d", e.Key(), e.Value())
		}
		e.SetValue(e.Key() * 100)
	}
	if v, _ := m.Load(4); v != 400 {
		t.Fatalf("SetValue through entry cursor lost: got %d", v)
	}
}

func TestSequenceAdapters(t *testing.T) {
	m := orderedMap(t, 8, 1, 2, 3)

	var keys, vals int
	for range m.Keys().All() {
		keys++
	}
	for v := range m.Values().All() {
		vals += v
	}
	if keys != 3 || vals != 60 {
		t.Fatalf("keys=%d vals=%d", keys, vals)
	}

	pairs := 0
	for k, v := range m.Entries().All() {
		if v != k*10 {
			t.Fatalf("pair (%d, %d)", k, v)
		}
		pairs++
		if pairs == 2 { // early break must not panic or leak
			break
		}
	}
	if pairs != 2 {
		t.Fatalf("pairs=%d", pairs)
	}
}

// =============================================================================
// Cursor equality
// =============================================================================

func TestCursorEquality(t *testing.T) {
	m := orderedMap(t, 8, 1, 2, 3)
	view := m.Keys()

	c1 := view.Cursor()
	c2 := view.Cursor()
	if !c1.Equal(c2) {
		t.Fatal("fresh cursors over the same view differ")
	}

	c1.Next()
	if c1.Equal(c2) {
		t.Fatal("cursors at different positions compare equal")
	}
	c2.Next()
	if !c1.Equal(c2) {
		t.Fatal("cursors at the same entry differ")
	}

	// Exhaust both; all exhausted cursors are equal (the shared terminal
	// sentinel is the nil entry).
	for c1.Valid() {
		c1.Next()
	}
	for c2.Valid() {
		c2.Next()
	}
	if !c1.Equal(c2) {
		t.Fatal("exhausted cursors differ")
	}
}

// =============================================================================
// Invalidation
// =============================================================================

func TestViewInvalidation(t *testing.T) {
	const msg = "invalidated by structural mutation"

	t.Run("insertion of a new key", func(t *testing.T) {
		m := orderedMap(t, 8, 1, 2)
		c := m.Keys().Cursor()
		m.Place(3, 30)
		wantPanic(t, msg, func() { c.Next() })
	})

	t.Run("removal", func(t *testing.T) {
		m := orderedMap(t, 8, 1, 2)
		c := m.Keys().Cursor()
		m.Remove(2)
		wantPanic(t, msg, func() { c.Next() })
	})

	t.Run("clear", func(t *testing.T) {
		m := orderedMap(t, 8, 1, 2)
		c := m.Values().Cursor()
		m.Clear()
		wantPanic(t, msg, func() { c.Next() })
	})

	t.Run("growth", func(t *testing.T) {
		m, err := NewWithHasher[int, int](identityHasher(),
			WithCapacity(4), WithLoadFactor(0.75))
		if err != nil {
			t.Fatal(err)
		}
		for k := 0; k < 3; k++ {
			m.Place(k, k)
		}
		c := m.Entries().Cursor()
		m.Place(3, 3) // crosses the threshold, rebuilds the bucket array
		wantPanic(t, msg, func() { c.Next() })
	})

	t.Run("stale view refuses new cursors", func(t *testing.T) {
		m := orderedMap(t, 8, 1)
		view := m.Keys()
		m.Place(2, 20)
		wantPanic(t, msg, func() { view.Cursor() })
	})

	t.Run("mutation mid-sequence", func(t *testing.T) {
		m := orderedMap(t, 8, 1, 2, 3)
		wantPanic(t, msg, func() {
			for k := range m.Keys().All() {
				m.Remove(k)
			}
		})
	})

	t.Run("overwrite does not invalidate", func(t *testing.T) {
		m := orderedMap(t, 8, 1, 2)
		c := m.Keys().Cursor()
		m.Place(1, 999) // value update only: not structural
		c.Next()
		if !c.Valid() {
			t.Fatal("cursor exhausted early")
		}
	})

	t.Run("ref of present key does not invalidate", func(t *testing.T) {
		m := orderedMap(t, 8, 1, 2)
		c := m.Keys().Cursor()
		*m.Ref(1) = 5
		c.Next()
		if !c.Valid() {
			t.Fatal("cursor exhausted early")
		}
	})
}
