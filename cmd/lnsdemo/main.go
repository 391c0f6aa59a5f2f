// Command lnsdemo is a thin CLI driving the lns meta-engine over a
// tspmodel TSP instance. It exposes the §6 CLI flag names via cobra +
// pflag; pflag takes long flags with two dashes (--lns_min_intensity), and
// the single-dash spelling is not accepted. Grounded on the other_examples gascity reference's
// cobra.Command tree (cmd/gc's `start` command construction) — the
// teacher itself (katalvlaran/lvlath) ships no CLI, so this binary is the
// "minimal external driver" the core spec assumes exists (§1).
//
// Command-line parsing, logging, and model-specific propagation are
// explicitly out of scope for the lns core (§1); this package is where
// that scope lives instead.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	flag "github.com/spf13/pflag"

	"github.com/cpsearch/lns"
)

// flags mirrors the §6 CLI surface plus the handful of demo-only knobs
// (scenario file, random Euclidean instance, overall timeout) needed to
// actually run something.
type flags struct {
	timePerVariable    float64
	constrainType      constrainTypeFlag
	maxIterPerIntens   uint
	minIntensity       uint
	maxIntensity       uint
	saStartTemperature float64
	saCoolingRate      float64
	saNeighAccepted    uint
	seed               int64

	scenario     string
	randomCities int
	overallMS    float64
}

// constrainTypeFlag adapts lns.ConstrainType to pflag.Value so
// "--lns_constraint_type" gets the same validation and canonical spelling
// (none|loose|strict|sa) as Options.Validate, instead of a raw string the
// demo would have to re-parse by hand.
type constrainTypeFlag struct {
	value lns.ConstrainType
}

func (f *constrainTypeFlag) String() string {
	return f.value.String()
}

func (f *constrainTypeFlag) Set(s string) error {
	ct, err := lns.ParseConstrainType(s)
	if err != nil {
		return err
	}
	f.value = ct
	return nil
}

func (f *constrainTypeFlag) Type() string { return "constrainType" }

var _ flag.Value = (*constrainTypeFlag)(nil)

func newRootCmd() *cobra.Command {
	f := &flags{constrainType: constrainTypeFlag{value: lns.ConstrainStrict}}

	root := &cobra.Command{
		Use:   "lnsdemo",
		Short: "Drive the LNS meta-engine over a demonstration TSP model",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runDemo(f)
		},
	}

	fs := root.Flags()
	fs.Float64Var(&f.timePerVariable, "lns_time_per_variable", lns.DefaultTimePerVariable, "per-neighbourhood time budget in ms per relaxed variable")
	fs.Var(&f.constrainType, "lns_constraint_type", "acceptance-filter mode: none|loose|strict|sa")
	fs.UintVar(&f.maxIterPerIntens, "lns_max_iterations_per_intensity", lns.DefaultMaxIterationsPerIntensity, "non-improving iterations tolerated before intensity escalates")
	fs.UintVar(&f.minIntensity, "lns_min_intensity", lns.DefaultMinIntensity, "minimum relaxation intensity")
	fs.UintVar(&f.maxIntensity, "lns_max_intensity", lns.DefaultMaxIntensity, "maximum relaxation intensity")
	fs.Float64Var(&f.saStartTemperature, "lns_sa_start_temperature", lns.DefaultSAStartTemperature, "initial SA temperature")
	fs.Float64Var(&f.saCoolingRate, "lns_sa_cooling_rate", lns.DefaultSACoolingRate, "SA temperature multiplier per cooling step, in (0,1)")
	fs.UintVar(&f.saNeighAccepted, "lns_sa_neighbors_accepted", lns.DefaultSANeighborsAccepted, "accepted-neighbour threshold that triggers a cooling step")
	fs.Int64Var(&f.seed, "seed", 0, "RNG seed for the SA acceptance mode (0 selects the fixed default stream)")

	fs.StringVar(&f.scenario, "scenario", "", "YAML file describing a TSP distance matrix and LNS options")
	fs.IntVar(&f.randomCities, "random_cities", 12, "when --scenario is unset, generate a random Euclidean instance with this many cities")
	fs.Float64Var(&f.overallMS, "overall_timeout_ms", 2000, "overall wall-clock budget in ms for the whole run")

	root.AddCommand(newVersionCmd())
	return root
}

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print the lnsdemo version",
		RunE: func(cmd *cobra.Command, args []string) error {
			fmt.Fprintln(cmd.OutOrStdout(), version)
			return nil
		},
	}
}

// version is bumped manually; there is no build-time injection in this demo.
const version = "lnsdemo 0.1.0"

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "lnsdemo:", err)
		os.Exit(1)
	}
}

