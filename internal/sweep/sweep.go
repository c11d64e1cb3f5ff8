// Package sweep runs many random soups without a display and reports how
// each one settles.
package sweep

import (
	"context"
	"fmt"
	"sort"
	"time"

	"golang.org/x/sync/errgroup"

	"gol-web/internal/core"
	"gol-web/internal/life"
)

// Outcome classifies how a soup ended.
type Outcome string

const (
	Extinct Outcome = "extinct"
	Still   Outcome = "still"
	Period2 Outcome = "period-2"
	// Limit means the generation cap was reached first.
	Limit Outcome = "limit"
)

// Scenario is one soup to simulate.
type Scenario struct {
	Width, Height int
	Boundary      life.Boundary
	Density       float64
	Seed          int64
	MaxGen        int
}

func (s Scenario) String() string {
	return fmt.Sprintf("%dx%d %v density=%.2f seed=%d", s.Width, s.Height, s.Boundary, s.Density, s.Seed)
}

// Result describes a finished scenario.
type Result struct {
	Scenario Scenario
	Outcome  Outcome
	// Generation is the generation at which the outcome was detected.
	Generation uint64
	Initial    int
	Population int
	Elapsed    time.Duration
}

// Grid builds the scenario list for every density and seed combination.
func Grid(base Scenario, densities []float64, seeds []int64) []Scenario {
	out := make([]Scenario, 0, len(densities)*len(seeds))
	for _, d := range densities {
		for _, seed := range seeds {
			s := base
			s.Density, s.Seed = d, seed
			out = append(out, s)
		}
	}
	return out
}

// Run simulates one scenario until it dies out, settles into a period 1 or
// 2 pattern, or hits MaxGen. ctx is checked between generations.
func Run(ctx context.Context, s Scenario) (Result, error) {
	fill, err := core.RandomFill(core.NewRNG(s.Seed), s.Density)
	if err != nil {
		return Result{}, err
	}
	sim, err := life.New(life.Options{Width: s.Width, Height: s.Height, Boundary: s.Boundary, Fill: fill})
	if err != nil {
		return Result{}, err
	}
	start := time.Now()
	res := Result{Scenario: s, Outcome: Limit, Initial: sim.Population(), Population: sim.Population()}
	if res.Initial == 0 {
		res.Outcome = Extinct
		return res, nil
	}
	for gen := 0; s.MaxGen <= 0 || gen < s.MaxGen; gen++ {
		if err := ctx.Err(); err != nil {
			return res, err
		}
		step := sim.Advance()
		res.Generation = step.Generation
		res.Population = step.Population
		switch {
		case step.Population == 0:
			res.Outcome = Extinct
		case !step.Changed:
			res.Outcome = Still
		case step.Repeat:
			res.Outcome = Period2
		default:
			continue
		}
		break
	}
	res.Elapsed = time.Since(start)
	return res, nil
}

// All runs every scenario on up to workers goroutines. Results keep the
// order of scenarios. The first error cancels the rest.
func All(ctx context.Context, scenarios []Scenario, workers int) ([]Result, error) {
	results := make([]Result, len(scenarios))
	g, ctx := errgroup.WithContext(ctx)
	if workers > 0 {
		g.SetLimit(workers)
	}
	for i, s := range scenarios {
		g.Go(func() error {
			r, err := Run(ctx, s)
			if err != nil {
				return fmt.Errorf("%v: %w", s, err)
			}
			results[i] = r
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return results, nil
}

// SortByLifetime orders results by settling generation, longest first.
func SortByLifetime(results []Result) {
	sort.SliceStable(results, func(i, j int) bool {
		return results[i].Generation > results[j].Generation
	})
}
