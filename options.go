package chainmap

// Defaults applied when no option overrides them.
const (
	DefaultCapacity   = 16
	DefaultLoadFactor = 0.75
)

// Option is a functional option for configuring a Map at construction.
type Option func(*config)

type config struct {
	capacity   int
	loadFactor float64
}

func defaultConfig() *config {
	return &config{
		capacity:   DefaultCapacity,
		loadFactor: DefaultLoadFactor,
	}
}

// WithCapacity sets the initial number of buckets. The capacity must be
// positive; it is fixed for the table's lifetime except for internal
// doubling on growth.
func WithCapacity(n int) Option {
	return func(c *config) {
		c.capacity = n
	}
}

// WithLoadFactor sets the maximum fraction of capacity that may be occupied
// by live entries before an insertion triggers growth. Must be in (0, 1].
func WithLoadFactor(f float64) Option {
	return func(c *config) {
		c.loadFactor = f
	}
}
