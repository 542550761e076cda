package chainmap

import "errors"

// Construction errors. Every Map operation is total over its input domain;
// the only error surface is configuration validation at construction time.
var (
	ErrInvalidCapacity   = errors.New("chainmap: initial capacity must be positive")
	ErrInvalidLoadFactor = errors.New("chainmap: load factor must be in (0, 1]")
	ErrNilHasher         = errors.New("chainmap: hasher must provide both Hash and Equal")
)
