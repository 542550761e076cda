package chainmap

// grow doubles the bucket array and redistributes every live entry.
//
// The new array is swapped in and the capacity-derived fields updated
// *before* redistribution: each reinsertion computes its bucket from the
// new capacity. The count is reset and recomputed from scratch by the
// reinsertion loop. Old entries are iterated in slot order, then chain
// order, and each is replaced by a freshly constructed node in the new
// array. Chain links are never reused across the two arrays, so a
// partially drained old array can't leak pointers into the new one.
//
// Growth doubles exactly once per trigger. The threshold fires at
// count == maxCount+1, and doubling raises maxCount to at least count, so
// a single doubling always suffices.
func (m *Map[K, V]) grow() {
	old := m.buckets

	m.buckets = make([]*Entry[K, V], len(old)*2)
	m.maxCount = int(m.loadFactor * float64(len(m.buckets)))
	m.count = 0

	for _, head := range old {
		for e := head; e != nil; e = e.next {
			m.placeInBucket(m.bucketFor(e.hash), e.hash, e.key, e.value)
		}
	}
}
