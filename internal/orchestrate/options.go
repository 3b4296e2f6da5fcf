package orchestrate

import (
	"fmt"
	"time"
)

const (
	// DefaultFetchParallel bounds concurrent fetches. Fetch is network-bound,
	// so a wider pool pays off.
	DefaultFetchParallel = 8

	// DefaultStatusParallel bounds concurrent status queries. Status is a few
	// fast local git calls, so a narrower pool suffices.
	DefaultStatusParallel = 4

	// DefaultTimeout bounds each per-repository operation.
	DefaultTimeout = 5 * time.Minute
)

// Options configures one orchestration call. The zero value selects the
// defaults above.
type Options struct {
	// MaxParallel caps concurrently running repository operations.
	MaxParallel int

	// Timeout bounds each repository operation independently. One slow or
	// hung repository cannot stall the others, and its timeout neither
	// shortens nor extends sibling budgets.
	Timeout time.Duration

	// IncludeClean keeps clean repositories in status reports.
	IncludeClean bool
}

func (o Options) normalized(defaultParallel int) (Options, error) {
	if o.MaxParallel == 0 {
		o.MaxParallel = defaultParallel
	}
	if o.MaxParallel < 1 {
		return o, fmt.Errorf("max parallel must be at least 1, got %d", o.MaxParallel)
	}
	if o.Timeout == 0 {
		o.Timeout = DefaultTimeout
	}
	if o.Timeout < 0 {
		return o, fmt.Errorf("timeout must be positive, got %s", o.Timeout)
	}
	return o, nil
}
