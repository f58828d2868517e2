package ostree

import "fmt"

// Config configures an order-statistics tree.
type Config[K any] struct {
	// Less defines a strict total order on keys. It must be irreflexive,
	// i.e. Less(a, a) is false for every key a.
	Less func(a, b K) bool
}

func (cfg Config[K]) validate() error {
	if cfg.Less == nil {
		return fmt.Errorf("%w: ordering function is required", ErrInvalidConfig)
	}
	return nil
}
