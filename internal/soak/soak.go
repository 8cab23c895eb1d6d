// Package soak runs many seeded random soups to completion and reports how
// each one settled.
package soak

import (
	"context"
	"runtime"
	"sort"

	"lifebox/internal/sims/life"

	"github.com/pkg/errors"
	"golang.org/x/sync/errgroup"
)

// Options controls a soak run.
type Options struct {
	Runs    int
	Steps   int
	Workers int
	Width   int
	Height  int
	Density float64
	Seed    int64
	// Window is how many recent generations are compared when looking for a
	// repeat; it bounds the longest detectable period.
	Window int
}

// DefaultOptions mirrors the window binary's default board.
func DefaultOptions() Options {
	return Options{
		Runs:    32,
		Steps:   5000,
		Workers: runtime.NumCPU(),
		Width:   128,
		Height:  96,
		Density: 0.25,
		Seed:    1,
		Window:  16,
	}
}

// Validate reports the first unusable option.
func (o Options) Validate() error {
	switch {
	case o.Runs <= 0:
		return errors.Errorf("runs must be positive, got %d", o.Runs)
	case o.Steps <= 0:
		return errors.Errorf("steps must be positive, got %d", o.Steps)
	case o.Width <= 0 || o.Height <= 0:
		return errors.Errorf("grid must be at least 1x1, got %dx%d", o.Width, o.Height)
	case o.Density < 0 || o.Density > 1:
		return errors.Errorf("density must be within [0, 1], got %v", o.Density)
	case o.Window <= 0:
		return errors.Errorf("window must be positive, got %d", o.Window)
	}
	return nil
}

// Result describes one soup.
type Result struct {
	Seed    int64
	Initial int
	// Generation is the step at which the repeat was first seen, or Steps when
	// the soup never settled.
	Generation int
	Period     int
	Population int
	Settled    bool
}

// RunOne evolves a single soup until it repeats within the history window or
// the step budget runs out.
func RunOne(ctx context.Context, o Options, seed int64) (Result, error) {
	sim := life.New(o.Width, o.Height)
	sim.Randomize(seed, o.Density)
	res := Result{Seed: seed, Initial: sim.Population()}

	hist := life.NewHistory(o.Window)
	hist.Observe(life.Fingerprint(sim.Cells()))
	for i := 0; i < o.Steps; i++ {
		if i%256 == 0 {
			if err := ctx.Err(); err != nil {
				return res, errors.Wrapf(err, "soak seed %d", seed)
			}
		}
		sim.Step()
		if p := hist.Observe(life.Fingerprint(sim.Cells())); p > 0 {
			res.Settled = true
			res.Period = p
			break
		}
	}
	res.Generation = sim.Generation()
	res.Population = sim.Population()
	return res, nil
}

// Run evolves o.Runs soups, seeded o.Seed, o.Seed+1, ..., on at most o.Workers
// goroutines. Results come back ordered by seed.
func Run(ctx context.Context, o Options) ([]Result, error) {
	if err := o.Validate(); err != nil {
		return nil, err
	}
	workers := o.Workers
	if workers <= 0 {
		workers = runtime.NumCPU()
	}

	results := make([]Result, o.Runs)
	eg, ctx := errgroup.WithContext(ctx)
	eg.SetLimit(workers)
	for i := range o.Runs {
		eg.Go(func() error {
			res, err := RunOne(ctx, o, o.Seed+int64(i))
			if err != nil {
				return err
			}
			results[i] = res
			return nil
		})
	}
	if err := eg.Wait(); err != nil {
		return nil, err
	}
	sort.Slice(results, func(a, b int) bool { return results[a].Seed < results[b].Seed })
	return results, nil
}

// Summary aggregates a batch of results.
type Summary struct {
	Runs          int
	Settled       int
	Extinct       int
	MeanSettle    float64
	LongestSettle Result
	Periods       map[int]int
}

// Summarize aggregates results.
func Summarize(results []Result) Summary {
	s := Summary{Runs: len(results), Periods: map[int]int{}}
	total := 0
	for _, r := range results {
		if !r.Settled {
			continue
		}
		s.Settled++
		s.Periods[r.Period]++
		total += r.Generation
		if r.Population == 0 {
			s.Extinct++
		}
		if r.Generation > s.LongestSettle.Generation {
			s.LongestSettle = r
		}
	}
	if s.Settled > 0 {
		s.MeanSettle = float64(total) / float64(s.Settled)
	}
	return s
}
