// Package domain implements the sampling workflow behind the morph CLI: it
// drives many mutation sessions in parallel and aggregates where the
// resulting values land.
package domain

import (
	"errors"
	"fmt"
	"sync/atomic"

	"golang.org/x/sync/errgroup"

	"github.com/mouse-blink/morph"
)

// Distribution counts how many sampled values landed in each bucket.
type Distribution map[string]int

// Total returns the number of samples across all buckets.
func (d Distribution) Total() int {
	total := 0
	for _, n := range d {
		total += n
	}
	return total
}

// Options configures a sampling run.
type Options struct {
	// Samples is the total number of mutations to draw.
	Samples int
	// Workers is the number of parallel sampling goroutines.
	Workers int
	// Seed makes the run reproducible; zero seeds from entropy. Each
	// worker derives its own stream from it.
	Seed uint64
	// Shrink samples the shrink-mode distribution instead.
	Shrink bool
	// Progress, when non-nil, receives coarse completion counts. It may be
	// called from any worker goroutine.
	Progress func(done int)
}

// progressStride keeps Progress callbacks cheap on large runs.
const progressStride = 1024

// Sample repeatedly mutates copies of start with m, assigning every result
// to a bucket. A worker whose value runs out of mutations resets it to
// start and keeps going; any other mutator error aborts the run.
func Sample[T any](m morph.Mutator[T], start T, bucket func(T) string, opts Options) (Distribution, error) {
	if opts.Samples <= 0 {
		return Distribution{}, nil
	}
	workers := max(opts.Workers, 1)
	workers = min(workers, opts.Samples)

	parts := make([]Distribution, workers)
	var done atomic.Int64

	g := new(errgroup.Group)
	for w := 0; w < workers; w++ {
		w := w
		share := opts.Samples / workers
		if w < opts.Samples%workers {
			share++
		}

		g.Go(func() error {
			session := morph.NewSession().Shrink(opts.Shrink)
			if opts.Seed != 0 {
				session.Seed(opts.Seed + uint64(w))
			}

			local := Distribution{}
			value := start
			for _it := 0; _it < share; _it++ {
				err := morph.MutateWith(session, m, &value)
				if errors.Is(err, morph.ErrExhausted) {
					value = start
				} else if err != nil {
					return fmt.Errorf("sampling worker %d: %w", w, err)
				} else {
					local[bucket(value)]++
				}

				if d := done.Add(1); opts.Progress != nil && d%progressStride == 0 {
					opts.Progress(int(d))
				}
			}
			parts[w] = local
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	merged := Distribution{}
	for _, part := range parts {
		for k, n := range part {
			merged[k] += n
		}
	}
	if opts.Progress != nil {
		opts.Progress(opts.Samples)
	}
	return merged, nil
}
