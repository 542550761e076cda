package chainmap

import (
	"bytes"
	"hash/maphash"

	"github.com/cespare/xxhash/v2"
	"github.com/zeebo/xxh3"
)

// Hasher is the hashing capability a Map is constructed with: a hash
// function and an equality relation over keys.
//
// The pair must be consistent: Equal(a, b) implies Hash(a) == Hash(b), and
// Equal(a, a) must hold for every a (beware NaN-containing keys). Hash
// collisions between unequal keys only lengthen chains, but a hash that
// disagrees with Equal makes entries unreachable.
type Hasher[K any] struct {
	Hash  func(K) uint64
	Equal func(a, b K) bool
}

// BytesHasher returns a Hasher for byte-slice keys, using xxHash3 and
// bytes.Equal. Byte slices are not comparable, so they require
// NewWithHasher:
//
//	m, err := chainmap.NewWithHasher[[]byte, int](chainmap.BytesHasher())
//
// The table stores the slice header as given; the caller must not mutate a
// key's bytes after insertion.
func BytesHasher() Hasher[[]byte] {
	return Hasher[[]byte]{
		Hash:  xxh3.Hash,
		Equal: bytes.Equal,
	}
}

// defaultSeed randomizes the maphash fallback per process.
var defaultSeed = maphash.MakeSeed()

// defaultHasher selects the default hashing capability for a comparable key
// type: xxHash for strings, a 64-bit avalanche mix for common integer
// widths, and seeded maphash for everything else.
func defaultHasher[K comparable]() Hasher[K] {
	eq := func(a, b K) bool { return a == b }
	var zero K
	switch any(zero).(type) {
	case string:
		return Hasher[K]{
			Hash:  func(k K) uint64 { return xxhash.Sum64String(any(k).(string)) },
			Equal: eq,
		}
	case int:
		return Hasher[K]{
			Hash:  func(k K) uint64 { return mix64(uint64(any(k).(int))) },
			Equal: eq,
		}
	case int32:
		return Hasher[K]{
			Hash:  func(k K) uint64 { return mix64(uint64(any(k).(int32))) },
			Equal: eq,
		}
	case int64:
		return Hasher[K]{
			Hash:  func(k K) uint64 { return mix64(uint64(any(k).(int64))) },
			Equal: eq,
		}
	case uint:
		return Hasher[K]{
			Hash:  func(k K) uint64 { return mix64(uint64(any(k).(uint))) },
			Equal: eq,
		}
	case uint32:
		return Hasher[K]{
			Hash:  func(k K) uint64 { return mix64(uint64(any(k).(uint32))) },
			Equal: eq,
		}
	case uint64:
		return Hasher[K]{
			Hash:  func(k K) uint64 { return mix64(any(k).(uint64)) },
			Equal: eq,
		}
	default:
		return Hasher[K]{
			Hash:  func(k K) uint64 { return maphash.Comparable(defaultSeed, k) },
			Equal: eq,
		}
	}
}

// mix64 is the SplitMix64 finalizer. Integer keys are often sequential;
// the mix spreads them across the full 64-bit range so that modulo
// bucket indexing doesn't degenerate into striding.
func mix64(x uint64) uint64 {
	x ^= x >> 30
	x *= 0xbf58476d1ce4e5b9
	x ^= x >> 27
	x *= 0x94d049bb133111eb
	x ^= x >> 31
	return x
}
