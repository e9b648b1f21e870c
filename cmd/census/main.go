// Command census measures how random soups behave over time. It sweeps a
// range of soup densities, runs each one headless for a fixed number of
// generations across several seeds, and reports population statistics per
// density.
package main

import (
	"flag"
	"fmt"
	"runtime"
	"sort"
	"sync"

	"life-grid/internal/sims/conway"
)

type scenario struct {
	density float64
	seed    int64
}

type result struct {
	scenario

	finalPop  int
	peakPop   int
	extinctAt int // generation the soup died out, -1 if it survived
}

func main() {
	width := flag.Int("w", 64, "board width in cells")
	height := flag.Int("h", 64, "board height in cells")
	steps := flag.Int("steps", 512, "generations to simulate per scenario")
	seeds := flag.Int("seeds", 8, "random soups per density")
	workers := flag.Int("workers", runtime.NumCPU(), "number of worker goroutines")
	flag.Parse()

	densities := []float64{0.05, 0.10, 0.15, 0.20, 0.25, 0.30, 0.40, 0.50, 0.65, 0.80}

	var scenarios []scenario
	for _, d := range densities {
		for s := 0; s < *seeds; s++ {
			scenarios = append(scenarios, scenario{density: d, seed: int64(s + 1)})
		}
	}

	jobs := make(chan scenario)
	results := make(chan result, len(scenarios))

	var wg sync.WaitGroup
	for i := 0; i < *workers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for sc := range jobs {
				results <- run(sc, *width, *height, *steps)
			}
		}()
	}

	for _, sc := range scenarios {
		jobs <- sc
	}
	close(jobs)
	wg.Wait()
	close(results)

	byDensity := map[float64][]result{}
	for r := range results {
		byDensity[r.density] = append(byDensity[r.density], r)
	}

	fmt.Printf("census: %dx%d board, %d generations, %d soups per density\n\n", *width, *height, *steps, *seeds)
	fmt.Printf("%8s  %10s  %10s  %10s  %s\n", "density", "mean final", "mean peak", "survivors", "mean extinction gen")

	sort.Float64s(densities)
	cells := *width * *height
	for _, d := range densities {
		rs := byDensity[d]
		if len(rs) == 0 {
			continue
		}
		var finalSum, peakSum, extinctSum, survivors int
		for _, r := range rs {
			finalSum += r.finalPop
			peakSum += r.peakPop
			if r.extinctAt < 0 {
				survivors++
			} else {
				extinctSum += r.extinctAt
			}
		}
		extinction := "-"
		if died := len(rs) - survivors; died > 0 {
			extinction = fmt.Sprintf("%.0f", float64(extinctSum)/float64(died))
		}
		fmt.Printf("%8.2f  %9.1f%%  %9.1f%%  %7d/%d  %s\n",
			d,
			100*float64(finalSum)/float64(len(rs)*cells),
			100*float64(peakSum)/float64(len(rs)*cells),
			survivors, len(rs),
			extinction)
	}
}

func run(sc scenario, w, h, steps int) result {
	cfg := conway.DefaultConfig()
	cfg.Width = w
	cfg.Height = h
	cfg.Density = sc.density

	world := conway.NewWithConfig(cfg)
	world.Reset(sc.seed)

	res := result{scenario: sc, peakPop: world.Population(), extinctAt: -1}
	for i := 0; i < steps; i++ {
		world.Step()
		pop := world.Population()
		if pop > res.peakPop {
			res.peakPop = pop
		}
		if pop == 0 {
			res.extinctAt = world.Generation()
			break
		}
	}
	res.finalPop = world.Population()
	return res
}
