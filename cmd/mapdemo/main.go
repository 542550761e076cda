// Mapdemo exercises the chainmap public contract end to end: it builds a
// table at the default geometry (capacity 16, load factor 0.75), inserts
// keys 1-6 via Place and 7-19 via Ref assignment (forcing at least one
// growth), iterates the key view while reading through Ref, removes a batch
// of keys, and finally clears the table.
//
// Usage:
//
//	go run ./cmd/mapdemo
package main

import (
	"fmt"
	"log"

	"github.com/tamirms/chainmap"
)

func dump(m *chainmap.Map[int, string]) {
	fmt.Printf("count=%d capacity=%d\n", m.Len(), m.Cap())
	for key := range m.Keys().All() {
		// Ref on a present key is a pure read and does not invalidate
		// the view being iterated.
		fmt.Printf("  %2d -> %s\n", key, *m.Ref(key))
	}
}

func main() {
	m, err := chainmap.New[int, string](
		chainmap.WithCapacity(16),
		chainmap.WithLoadFactor(0.75),
	)
	if err != nil {
		log.Fatal(err)
	}

	for k := 1; k <= 6; k++ {
		m.Place(k, string(rune('A'+k-1)))
	}
	for k := 7; k <= 19; k++ {
		*m.Ref(k) = string(rune('A' + k - 1))
	}

	fmt.Println("after inserting 1-19:")
	dump(m)

	for k := 1; k <= 6; k++ {
		m.Remove(k)
	}

	fmt.Println("after removing 1-6:")
	dump(m)

	m.Clear()

	fmt.Println("after clear:")
	dump(m)
}
