// Facade: the public entry point, instantiating a Driver plus its two
// sub-engines from a root space and Options. Grounded on §4.E and on the
// validated-constructor pattern the teacher's tsp.SolveWithMatrix
// (_examples/katalvlaran-lvlath/tsp/solve.go) uses for its own dispatch
// (strict, sentinel-error validation before any engine runs).
package lns

// failedSpace is the distinguished stand-in substituted for an infeasible
// root, per §4.E step 1 / §7 "Infeasible root". Every operation is
// well-defined but inert: Status always reports Failed, and Clone returns
// another failedSpace so the driver can still clone it freely.
type failedSpace struct{}

func (failedSpace) Status() Status                  { return Failed }
func (failedSpace) Clone(bool) ModelSpace           { return failedSpace{} }
func (failedSpace) InitialSolutionBranching(uint64) {}
func (failedSpace) NeighborhoodBranching()          {}
func (failedSpace) Relax(ModelSpace, uint) uint     { return 0 }
func (failedSpace) RelaxableVars() uint             { return 0 }
func (failedSpace) Improving(ModelSpace, bool) bool { return false }
func (failedSpace) Constrain(ModelSpace, bool, float64) {}
func (failedSpace) Cost() float64                       { return 0 }

// Engine is the public facade: a Driver wired to two sub-engine factories
// and a combined stop. Construct it with New.
type Engine struct {
	driver *Driver
	stop   *CombinedStop
}

// SubEngineFactory builds a SubEngine rooted at root, driven by stop. The
// facade calls this twice: once for the initial-solution phase and once
// for neighbourhood repair. Splitting construction this way lets the
// caller supply CP-backend-specific sub-engines without the lns package
// depending on any concrete tree-search implementation.
type SubEngineFactory func(root ModelSpace, stop Stop) SubEngine

// New constructs an Engine over root using opts. userStop is the caller's
// overall stop predicate (may be nil). startFactory builds the
// initial-solution sub-engine, governed only by userStop (so the overall
// budget, not any per-neighbourhood one, gates the search for a first
// solution). neighborFactory builds the neighbourhood-repair sub-engine,
// governed by the combined stop (per-neighbourhood time budget plus
// userStop). See §4.E.
func New(root ModelSpace, opts Options, userStop Stop, startFactory, neighborFactory SubEngineFactory) (*Engine, error) {
	if root == nil {
		return nil, ErrNilRoot
	}
	if err := opts.Validate(); err != nil {
		return nil, err
	}

	stop := NewCombinedStop(userStop)

	// Step 1: evaluate the root's status; substitute a failed stand-in and
	// count a fail if it is already infeasible.
	var effectiveRoot ModelSpace = root
	var fails uint64
	if root.Status() == Failed {
		effectiveRoot = failedSpace{}
		fails = 1
	}

	startEngine := startFactory(effectiveRoot, userStop)
	neighborEngine := neighborFactory(effectiveRoot, stop)

	driver, err := NewDriver(effectiveRoot, startEngine, neighborEngine, stop, opts)
	if err != nil {
		return nil, err
	}
	driver.stats.Fails = fails

	return &Engine{driver: driver, stop: stop}, nil
}

// Next advances the driver by one state-machine step sequence and returns
// the next freshly improving solution, or nil. See Driver.Next.
func (e *Engine) Next() ModelSpace {
	return e.driver.Next()
}

// Statistics returns the driver's counters summed with both sub-engines'.
func (e *Engine) Statistics() Statistics {
	return e.driver.Statistics()
}

// Stopped reports the neighbourhood sub-engine's stop flag (see §4.E: the
// driver may observe this without itself considering the search
// finished).
func (e *Engine) Stopped() bool {
	return e.driver.Stopped()
}
