// Package parallel provides parallel execution utilities for dualgrad.
package parallel

import (
	"runtime"

	"golang.org/x/sync/errgroup"
)

// Config controls parallel execution behavior.
type Config struct {
	Enabled    bool // Whether parallel execution is enabled.
	NumWorkers int  // Maximum number of concurrent goroutines.
	MinItems   int  // Minimum item count before fanning out.
}

// DefaultConfig returns sensible defaults based on CPU count.
func DefaultConfig() Config {
	n := runtime.NumCPU()
	return Config{
		Enabled:    n > 1,
		NumWorkers: n,
		MinItems:   4, // Each item is a full function evaluation.
	}
}

// For executes f(i) for i in [0, n) and returns the first non-nil error.
// Falls back to sequential execution if parallelism is disabled or n is too small.
//
// In parallel mode every item still runs; f must write only to state owned by
// index i.
func For(n int, f func(i int) error, cfg Config) error {
	if !cfg.Enabled || n < cfg.MinItems || n < 2 {
		for i := 0; i < n; i++ {
			if err := f(i); err != nil {
				return err
			}
		}
		return nil
	}

	var g errgroup.Group
	if cfg.NumWorkers > 0 {
		g.SetLimit(cfg.NumWorkers)
	}
	for i := 0; i < n; i++ {
		g.Go(func() error {
			return f(i)
		})
	}
	return g.Wait()
}
