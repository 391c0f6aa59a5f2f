// Scenario loading: a YAML file describing a TSP distance matrix plus LNS
// options, grounded on the GoSim simulation-core config package's
// yaml.v3-based Parse*YAML/validate pattern (pkg/config/parse.go) — unmarshal
// then an explicit validate pass, sentinel-free but wrapped errors since
// this is CLI-facing, not library-facing, code.
package main

import (
	"fmt"

	"gopkg.in/yaml.v3"

	"github.com/cpsearch/lns"
)

// Scenario is the on-disk YAML shape for a demo run: a symmetric distance
// matrix plus the LNS knobs from the §6 CLI surface, any of which may be
// omitted to fall back to the flag/default value.
type Scenario struct {
	// Cities optionally names each row/column, for display only.
	Cities []string `yaml:"cities"`

	// Distances is the n×n symmetric distance matrix, row-major.
	Distances [][]float64 `yaml:"distances"`

	// Start is the fixed start city index. Default 0.
	Start int `yaml:"start"`

	LNS ScenarioLNSOptions `yaml:"lns"`
}

// ScenarioLNSOptions mirrors every lns.Options field except Shared, using pointers so
// an absent key in YAML leaves the corresponding flag/default untouched.
type ScenarioLNSOptions struct {
	TimePerVariable           *float64 `yaml:"time_per_variable"`
	ConstrainType             *string  `yaml:"constrain_type"`
	MaxIterationsPerIntensity *uint    `yaml:"max_iterations_per_intensity"`
	MinIntensity              *uint    `yaml:"min_intensity"`
	MaxIntensity              *uint    `yaml:"max_intensity"`
	SAStartTemperature        *float64 `yaml:"sa_start_temperature"`
	SACoolingRate             *float64 `yaml:"sa_cooling_rate"`
	SANeighborsAccepted       *uint    `yaml:"sa_neighbors_accepted"`
	Seed                      *int64   `yaml:"seed"`
}

// ParseScenarioYAML parses a Scenario from YAML bytes and validates its
// shape (square matrix, in-range start).
func ParseScenarioYAML(data []byte) (*Scenario, error) {
	var sc Scenario
	if err := yaml.Unmarshal(data, &sc); err != nil {
		return nil, fmt.Errorf("lnsdemo: parse scenario yaml: %w", err)
	}
	if err := validateScenario(&sc); err != nil {
		return nil, fmt.Errorf("lnsdemo: invalid scenario: %w", err)
	}
	return &sc, nil
}

func validateScenario(sc *Scenario) error {
	n := len(sc.Distances)
	if n == 0 {
		return fmt.Errorf("distances: must be non-empty")
	}
	for i, row := range sc.Distances {
		if len(row) != n {
			return fmt.Errorf("distances: row %d has length %d, want %d", i, len(row), n)
		}
	}
	if sc.Start < 0 || sc.Start >= n {
		return fmt.Errorf("start: %d out of range [0, %d)", sc.Start, n)
	}
	if sc.Cities != nil && len(sc.Cities) != n {
		return fmt.Errorf("cities: length %d does not match distances order %d", len(sc.Cities), n)
	}
	return nil
}

// applyTo overlays any scenario-provided LNS knobs onto opts, returning the
// merged Options. Flag-provided values (already in opts) are the base;
// scenario values win where present, matching the usual CLI-then-config
// precedence of the gascity reference.
func (s ScenarioLNSOptions) applyTo(opts lns.Options) (lns.Options, error) {
	if s.TimePerVariable != nil {
		opts.TimePerVariable = *s.TimePerVariable
	}
	if s.ConstrainType != nil {
		ct, err := lns.ParseConstrainType(*s.ConstrainType)
		if err != nil {
			return opts, err
		}
		opts.ConstrainType = ct
	}
	if s.MaxIterationsPerIntensity != nil {
		opts.MaxIterationsPerIntensity = *s.MaxIterationsPerIntensity
	}
	if s.MinIntensity != nil {
		opts.MinIntensity = *s.MinIntensity
	}
	if s.MaxIntensity != nil {
		opts.MaxIntensity = *s.MaxIntensity
	}
	if s.SAStartTemperature != nil {
		opts.SAStartTemperature = *s.SAStartTemperature
	}
	if s.SACoolingRate != nil {
		opts.SACoolingRate = *s.SACoolingRate
	}
	if s.SANeighborsAccepted != nil {
		opts.SANeighborsAccepted = *s.SANeighborsAccepted
	}
	if s.Seed != nil {
		opts.Seed = *s.Seed
	}
	return opts, nil
}
