package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os"
	"os/signal"
	"runtime"
	"strconv"
	"strings"
	"time"

	"gol-web/internal/life"
	"gol-web/internal/sweep"
)

func main() {
	width := flag.Int("width", 64, "grid width")
	height := flag.Int("height", 64, "grid height")
	boundary := flag.String("boundary", "wrap", "edge policy: dead or wrap")
	densities := flag.String("densities", "0.1,0.2,0.3,0.4,0.5,0.6", "comma-separated soup densities")
	seeds := flag.Int("seeds", 8, "seeds per density, starting at -seed")
	firstSeed := flag.Int64("seed", 1, "first seed")
	maxGen := flag.Int("max-gen", 5000, "generation cap per soup")
	workers := flag.Int("workers", runtime.NumCPU(), "number of worker goroutines")
	top := flag.Int("top", 10, "longest-lived soups to list")
	flag.Parse()

	b, err := life.ParseBoundary(*boundary)
	if err != nil {
		log.Fatal(err)
	}
	ds, err := parseDensities(*densities)
	if err != nil {
		log.Fatal(err)
	}
	seedList := make([]int64, *seeds)
	for i := range seedList {
		seedList[i] = *firstSeed + int64(i)
	}

	base := sweep.Scenario{Width: *width, Height: *height, Boundary: b, MaxGen: *maxGen}
	scenarios := sweep.Grid(base, ds, seedList)
	fmt.Printf("Sweeping %d soups (%d workers, %d generation cap)\n", len(scenarios), *workers, *maxGen)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	start := time.Now()
	results, err := sweep.All(ctx, scenarios, *workers)
	if err != nil {
		log.Fatal(err)
	}
	elapsed := time.Since(start)

	fmt.Println("\nPer density:")
	for _, d := range ds {
		var gens uint64
		var pop, n int
		outcomes := map[sweep.Outcome]int{}
		for _, r := range results {
			if r.Scenario.Density != d {
				continue
			}
			gens += r.Generation
			pop += r.Population
			outcomes[r.Outcome]++
			n++
		}
		if n == 0 {
			continue
		}
		fmt.Printf("  density=%.2f meanGen=%.1f meanPop=%.1f extinct=%d still=%d period2=%d limit=%d\n",
			d, float64(gens)/float64(n), float64(pop)/float64(n),
			outcomes[sweep.Extinct], outcomes[sweep.Still], outcomes[sweep.Period2], outcomes[sweep.Limit])
	}

	sweep.SortByLifetime(results)
	fmt.Printf("\nTop %d soups (elapsed %s):\n", min(*top, len(results)), elapsed.Round(time.Millisecond))
	for i := 0; i < len(results) && i < *top; i++ {
		r := results[i]
		fmt.Printf("%2d) gen=%d outcome=%s pop=%d->%d time=%s %v\n",
			i+1, r.Generation, r.Outcome, r.Initial, r.Population, r.Elapsed.Round(time.Microsecond), r.Scenario)
	}
}

func parseDensities(s string) ([]float64, error) {
	var out []float64
	for _, part := range strings.Split(s, ",") {
		part = strings.TrimSpace(part)
		if part == "" {
			continue
		}
		d, err := strconv.ParseFloat(part, 64)
		if err != nil {
			return nil, fmt.Errorf("density %q: %w", part, err)
		}
		out = append(out, d)
	}
	if len(out) == 0 {
		return nil, fmt.Errorf("no densities in %q", s)
	}
	return out, nil
}
