package lns

// Package-level defaults, matching the CLI surface's documented defaults
// (see cmd/lnsdemo).
const (
	DefaultTimePerVariable           = 10.0
	DefaultMaxIterationsPerIntensity = uint(10)
	DefaultMinIntensity              = uint(1)
	DefaultMaxIntensity              = uint(5)
	DefaultSAStartTemperature        = 1.0
	DefaultSACoolingRate             = 0.99
	DefaultSANeighborsAccepted       = uint(100)
)

// ConstrainType selects the acceptance-filter mode applied to a relaxed
// neighbour before it is handed to the neighbourhood sub-engine.
type ConstrainType int

const (
	// ConstrainNone posts no cost constraint at all; any feasible neighbour
	// is acceptable.
	ConstrainNone ConstrainType = iota

	// ConstrainLoose requires the neighbour's cost to be no worse than
	// current's (non-strict inequality).
	ConstrainLoose

	// ConstrainStrict requires the neighbour's cost to strictly improve on
	// current's. Default mode.
	ConstrainStrict

	// ConstrainSA requires the neighbour's cost to be within a randomly
	// sampled, annealed delta of current's (Simulated Annealing).
	ConstrainSA
)

// String renders a ConstrainType for flag parsing errors and logging.
func (c ConstrainType) String() string {
	switch c {
	case ConstrainNone:
		return "none"
	case ConstrainLoose:
		return "loose"
	case ConstrainStrict:
		return "strict"
	case ConstrainSA:
		return "sa"
	default:
		return "unknown"
	}
}

// ParseConstrainType parses the CLI spelling of a ConstrainType.
func ParseConstrainType(s string) (ConstrainType, error) {
	switch s {
	case "none":
		return ConstrainNone, nil
	case "loose":
		return ConstrainLoose, nil
	case "strict":
		return ConstrainStrict, nil
	case "sa":
		return ConstrainSA, nil
	default:
		return 0, ErrInvalidConstrainType
	}
}

// Options bundles the typed configuration recognised by the driver: the
// intensity ladder, per-neighbourhood time budget, acceptance mode, and SA
// schedule.
type Options struct {
	// TimePerVariable is the per-neighbourhood time budget, in
	// milliseconds, per relaxed variable: budget = freed * TimePerVariable.
	TimePerVariable float64

	// ConstrainType selects the acceptance-filter mode. Default Strict.
	ConstrainType ConstrainType

	// MaxIterationsPerIntensity is the number of non-improving iterations
	// tolerated at the current intensity before it escalates.
	MaxIterationsPerIntensity uint

	// MinIntensity and MaxIntensity bound the intensity ladder.
	MinIntensity uint
	MaxIntensity uint

	// SAStartTemperature is the initial temperature used by the SA
	// acceptance mode.
	SAStartTemperature float64

	// SACoolingRate is the temperature multiplier applied every
	// SANeighborsAccepted accepted neighbours. Must lie in (0, 1).
	SACoolingRate float64

	// SANeighborsAccepted is the accepted-neighbour threshold that
	// triggers a cooling step.
	SANeighborsAccepted uint

	// Shared mirrors the host's threading policy (threads == 1) and is
	// forwarded verbatim to every Clone call so models can make clones
	// thread-safe when needed. The driver itself is single-threaded
	// regardless of this flag.
	Shared bool

	// Seed drives the deterministic RNG used to sample the SA acceptance
	// delta. Seed == 0 selects a fixed default stream (see rng.go).
	Seed int64
}

// DefaultOptions returns the documented defaults, matching the CLI surface:
//
//	--lns_time_per_variable            10.0
//	--lns_constraint_type               strict
//	--lns_max_iterations_per_intensity  10
//	--lns_min_intensity                 1
//	--lns_max_intensity                 5
//	--lns_sa_start_temperature          1.0
//	--lns_sa_cooling_rate               0.99
//	--lns_sa_neighbors_accepted         100
func DefaultOptions() Options {
	return Options{
		TimePerVariable:           DefaultTimePerVariable,
		ConstrainType:             ConstrainStrict,
		MaxIterationsPerIntensity: DefaultMaxIterationsPerIntensity,
		MinIntensity:              DefaultMinIntensity,
		MaxIntensity:              DefaultMaxIntensity,
		SAStartTemperature:        DefaultSAStartTemperature,
		SACoolingRate:             DefaultSACoolingRate,
		SANeighborsAccepted:       DefaultSANeighborsAccepted,
		Shared:                    true,
		Seed:                      0,
	}
}

// Validate checks the invariants the driver assumes hold for the lifetime
// of a run: a non-empty intensity range and, when SA is selected, a cooling
// rate in (0, 1).
func (o Options) Validate() error {
	if o.MinIntensity > o.MaxIntensity {
		return ErrInvalidIntensityRange
	}
	if o.ConstrainType == ConstrainSA && (o.SACoolingRate <= 0 || o.SACoolingRate >= 1) {
		return ErrInvalidCoolingRate
	}
	if o.ConstrainType < ConstrainNone || o.ConstrainType > ConstrainSA {
		return ErrInvalidConstrainType
	}
	return nil
}
