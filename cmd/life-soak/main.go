package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os"
	"os/signal"
	"sort"
	"time"

	"lifebox/internal/soak"
)

func main() {
	o := soak.DefaultOptions()
	flag.IntVar(&o.Runs, "runs", o.Runs, "number of soups to evolve")
	flag.IntVar(&o.Steps, "steps", o.Steps, "step budget per soup")
	flag.IntVar(&o.Workers, "workers", o.Workers, "number of worker goroutines")
	flag.IntVar(&o.Width, "w", o.Width, "grid width in cells")
	flag.IntVar(&o.Height, "h", o.Height, "grid height in cells")
	flag.Float64Var(&o.Density, "density", o.Density, "initial live cell probability")
	flag.Int64Var(&o.Seed, "seed", o.Seed, "seed of the first soup")
	flag.IntVar(&o.Window, "window", o.Window, "generations kept for repeat detection")
	verbose := flag.Bool("v", false, "print every soup")
	flag.Parse()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	fmt.Printf("Soaking %d soups of %dx%d at density %.2f (%d workers, %d steps)\n",
		o.Runs, o.Width, o.Height, o.Density, o.Workers, o.Steps)
	start := time.Now()
	results, err := soak.Run(ctx, o)
	if err != nil {
		log.Fatalf("soak: %+v", err)
	}

	if *verbose {
		for _, r := range results {
			fmt.Printf("seed=%d initial=%d gen=%d period=%d pop=%d settled=%v\n",
				r.Seed, r.Initial, r.Generation, r.Period, r.Population, r.Settled)
		}
	}

	s := soak.Summarize(results)
	fmt.Printf("\nSettled %d/%d (extinct %d) in %v\n", s.Settled, s.Runs, s.Extinct, time.Since(start).Round(time.Millisecond))
	if s.Settled == 0 {
		return
	}
	fmt.Printf("Mean settle generation: %.1f\n", s.MeanSettle)
	fmt.Printf("Longest: seed=%d gen=%d period=%d pop=%d\n",
		s.LongestSettle.Seed, s.LongestSettle.Generation, s.LongestSettle.Period, s.LongestSettle.Population)

	periods := make([]int, 0, len(s.Periods))
	for p := range s.Periods {
		periods = append(periods, p)
	}
	sort.Ints(periods)
	for _, p := range periods {
		fmt.Printf("  period %d: %d\n", p, s.Periods[p])
	}
}
