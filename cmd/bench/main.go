// Bench is a benchmarking tool for measuring chainmap build throughput,
// lookup throughput, and memory usage.
//
// Usage:
//
//	go run ./cmd/bench -keys 1000000 -keytype string
//
// Flags:
//
//	-keys      Number of keys to insert (default: 1,000,000)
//	-capacity  Initial bucket count (default: 16)
//	-load      Load factor in (0, 1] (default: 0.75)
//	-keytype   Key type: int or string (default: string)
//	-hash      String-key hash: xxhash (package default) or murmur3
package main

import (
	"flag"
	"fmt"
	"log"
	mrand "math/rand/v2"
	"runtime"
	"syscall"
	"time"

	"github.com/spaolacci/murmur3"

	"github.com/tamirms/chainmap"
)

// getMaxRSS returns the maximum resident set size in bytes.
// Uses getrusage(RUSAGE_SELF) which tracks peak RSS since process start.
func getMaxRSS() uint64 {
	var rusage syscall.Rusage
	if err := syscall.Getrusage(syscall.RUSAGE_SELF, &rusage); err != nil {
		return 0
	}
	// On macOS, MaxRss is in bytes. On Linux, it's in kilobytes.
	maxRSS := uint64(rusage.Maxrss)
	if runtime.GOOS == "linux" {
		maxRSS *= 1024
	}
	return maxRSS
}

func report(phase string, n int, elapsed time.Duration) {
	perOp := elapsed / time.Duration(n)
	fmt.Printf("%-12s %10d ops in %8s (%6s/op, %.1f Mops/s)\n",
		phase, n, elapsed.Round(time.Millisecond), perOp,
		float64(n)/elapsed.Seconds()/1e6)
}

func benchInts(n int, opts []chainmap.Option) {
	m, err := chainmap.New[int, uint64](opts...)
	if err != nil {
		log.Fatal(err)
	}

	start := time.Now()
	for i := 0; i < n; i++ {
		m.Place(i, uint64(i))
	}
	report("place", n, time.Since(start))

	start = time.Now()
	var hits int
	for i := 0; i < n; i++ {
		if _, ok := m.Load(i); ok {
			hits++
		}
	}
	report("load (hit)", n, time.Since(start))
	if hits != n {
		log.Fatalf("expected %d hits, got %d", n, hits)
	}

	start = time.Now()
	for i := n; i < 2*n; i++ {
		if _, ok := m.Load(i); ok {
			log.Fatalf("unexpected hit for absent key %d", i)
		}
	}
	report("load (miss)", n, time.Since(start))

	fmt.Printf("final: count=%d capacity=%d\n", m.Len(), m.Cap())
}

func benchStrings(n int, hashName string, opts []chainmap.Option) {
	var (
		m   *chainmap.Map[string, uint64]
		err error
	)
	switch hashName {
	case "xxhash":
		m, err = chainmap.New[string, uint64](opts...)
	case "murmur3":
		m, err = chainmap.NewWithHasher[string, uint64](chainmap.Hasher[string]{
			Hash:  func(s string) uint64 { return murmur3.Sum64([]byte(s)) },
			Equal: func(a, b string) bool { return a == b },
		}, opts...)
	default:
		log.Fatalf("unknown hash %q (want xxhash or murmur3)", hashName)
	}
	if err != nil {
		log.Fatal(err)
	}

	rng := mrand.New(mrand.NewPCG(0x1234567890abcdef, uint64(n)))
	keys := make([]string, n)
	for i := range keys {
		keys[i] = fmt.Sprintf("key-%016x-%08d", rng.Uint64(), i)
	}

	start := time.Now()
	for i, k := range keys {
		m.Place(k, uint64(i))
	}
	report("place", n, time.Since(start))

	start = time.Now()
	for i, k := range keys {
		v, ok := m.Load(k)
		if !ok || v != uint64(i) {
			log.Fatalf("lookup mismatch for %q: got (%d, %t)", k, v, ok)
		}
	}
	report("load (hit)", n, time.Since(start))

	fmt.Printf("final: count=%d capacity=%d\n", m.Len(), m.Cap())
}

func main() {
	keysFlag := flag.Int("keys", 1_000_000, "number of keys")
	capFlag := flag.Int("capacity", chainmap.DefaultCapacity, "initial bucket count")
	loadFlag := flag.Float64("load", chainmap.DefaultLoadFactor, "load factor in (0, 1]")
	keyType := flag.String("keytype", "string", "key type: int or string")
	hashFlag := flag.String("hash", "xxhash", "string-key hash: xxhash or murmur3")
	flag.Parse()

	opts := []chainmap.Option{
		chainmap.WithCapacity(*capFlag),
		chainmap.WithLoadFactor(*loadFlag),
	}

	fmt.Printf("chainmap bench: keys=%d keytype=%s capacity=%d load=%.2f\n",
		*keysFlag, *keyType, *capFlag, *loadFlag)

	switch *keyType {
	case "int":
		benchInts(*keysFlag, opts)
	case "string":
		benchStrings(*keysFlag, *hashFlag, opts)
	default:
		log.Fatalf("unknown keytype %q (want int or string)", *keyType)
	}

	fmt.Printf("peak RSS: %.1f MiB\n", float64(getMaxRSS())/(1<<20))
}
