// runDemo wires a tspmodel instance, the two sub-engines, and an overall
// wall-clock stop into an lns.Engine, then drives it to exhaustion,
// printing each improving tour the way the facade's contract describes
// (§4.E): a caller observes behavior only through returned solutions,
// Statistics, and errors, never logging from inside the core.
package main

import (
	"fmt"
	"math"
	"math/rand"
	"os"

	"github.com/cpsearch/lns"
	"github.com/cpsearch/lns/matrix"
	"github.com/cpsearch/lns/tspmodel"
)

func runDemo(f *flags) error {
	dist, start, scenarioLNS, err := loadInstance(f)
	if err != nil {
		return err
	}

	opts := lns.DefaultOptions()
	opts.TimePerVariable = f.timePerVariable
	opts.ConstrainType = f.constrainType.value
	opts.MaxIterationsPerIntensity = f.maxIterPerIntens
	opts.MinIntensity = f.minIntensity
	opts.MaxIntensity = f.maxIntensity
	opts.SAStartTemperature = f.saStartTemperature
	opts.SACoolingRate = f.saCoolingRate
	opts.SANeighborsAccepted = f.saNeighAccepted
	opts.Seed = f.seed

	if scenarioLNS != nil {
		opts, err = scenarioLNS.applyTo(opts)
		if err != nil {
			return fmt.Errorf("lnsdemo: apply scenario lns options: %w", err)
		}
	}

	root, err := tspmodel.NewRootSpace(dist, start)
	if err != nil {
		return fmt.Errorf("lnsdemo: build root space: %w", err)
	}

	overall := lns.NewTimeStop()
	overall.Limit(f.overallMS)
	overall.Reset()

	engine, err := lns.New(root, opts, overall,
		func(root lns.ModelSpace, stop lns.Stop) lns.SubEngine {
			return tspmodel.NewEngine(tspmodel.ModeConstruct, stop)
		},
		func(root lns.ModelSpace, stop lns.Stop) lns.SubEngine {
			return tspmodel.NewEngine(tspmodel.ModeBounded, stop)
		},
	)
	if err != nil {
		return fmt.Errorf("lnsdemo: construct engine: %w", err)
	}

	best := math.Inf(1)
	for {
		sol := engine.Next()
		if sol == nil {
			break
		}
		ts, ok := sol.(*tspmodel.Space)
		if !ok {
			continue
		}
		cost := ts.Cost()
		if cost < best {
			best = cost
		}
		fmt.Printf("improved: cost=%.3f tour=%v\n", cost, ts.Tour())
	}

	stats := engine.Statistics()
	fmt.Printf("done: best=%.3f restarts=%d fails=%d neighbors_explored=%d neighbors_accepted=%d improvements=%d cooling_steps=%d\n",
		best, stats.Restarts, stats.Fails, stats.NeighborsExplored, stats.NeighborsAccepted, stats.Improvements, stats.CoolingSteps)
	return nil
}

// loadInstance builds the distance matrix and start city either from a
// YAML scenario file or, absent one, from a deterministically seeded
// random Euclidean instance — enough to exercise the engine without
// requiring the caller to hand-author a matrix. When a scenario is used,
// its LNS option overlay is also returned so the caller can merge it
// onto the flag-derived Options.
func loadInstance(f *flags) (*matrix.Dense, int, *ScenarioLNSOptions, error) {
	if f.scenario != "" {
		data, err := os.ReadFile(f.scenario)
		if err != nil {
			return nil, 0, nil, fmt.Errorf("lnsdemo: read scenario %q: %w", f.scenario, err)
		}
		sc, err := ParseScenarioYAML(data)
		if err != nil {
			return nil, 0, nil, err
		}
		dense, err := matrix.NewDenseFromRows(sc.Distances)
		if err != nil {
			return nil, 0, nil, fmt.Errorf("lnsdemo: scenario matrix: %w", err)
		}
		return dense, sc.Start, &sc.LNS, nil
	}

	n := f.randomCities
	if n < 2 {
		n = 2
	}
	rng := rand.New(rand.NewSource(1))
	type point struct{ x, y float64 }
	pts := make([]point, n)
	for i := range pts {
		pts[i] = point{x: rng.Float64() * 100, y: rng.Float64() * 100}
	}
	rows := make([][]float64, n)
	for i := range rows {
		rows[i] = make([]float64, n)
		for j := range rows[i] {
			dx := pts[i].x - pts[j].x
			dy := pts[i].y - pts[j].y
			rows[i][j] = math.Hypot(dx, dy)
		}
	}
	dense, err := matrix.NewDenseFromRows(rows)
	if err != nil {
		return nil, 0, nil, err
	}
	return dense, 0, nil, nil
}
