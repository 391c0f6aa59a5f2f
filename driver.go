// Driver implements the LNS meta-engine state machine of §4.D: S0 Restart,
// S1 Iterate, Sstop. It is grounded line-by-line on the reference
// implementation's LNS::next (meta_lns.cc), with the documented fixes
// applied: intensity wraps to MinIntensity instead of forcing a full
// restart, nogoods are fully inert, and the ambiguous strict side-step
// branch is resolved as "accept iff the neighbour is no worse than
// current, strictly so in Strict mode".
package lns

import (
	"math"
	"math/rand"
)

// Driver owns the root/best/current space handles and drives one
// relax/repair/accept cycle per Next call. Construct it through Engine
// (facade.go) rather than directly; Engine wires the sub-engines and
// combined stop consistently.
type Driver struct {
	opts Options

	root    ModelSpace
	best    ModelSpace
	current ModelSpace

	startEngine    SubEngine
	neighborEngine SubEngine
	stop           *CombinedStop

	rng *rand.Rand

	intensity         uint
	temperature       float64
	idleIterations    uint
	neighborsAccepted uint
	restart           uint64

	stats Statistics // driver-only counters; sub-engine stats summed on query
	done  bool       // Sstop: the latest restart found no starting solution
}

// NewDriver constructs a Driver over root (not yet cloned; the driver takes
// ownership of cloning it), the two sub-engines, and the combined stop they
// share. opts is validated and stored by value.
func NewDriver(root ModelSpace, startEngine, neighborEngine SubEngine, stop *CombinedStop, opts Options) (*Driver, error) {
	if root == nil {
		return nil, ErrNilRoot
	}
	if err := opts.Validate(); err != nil {
		return nil, err
	}
	return &Driver{
		opts:           opts,
		root:           root,
		startEngine:    startEngine,
		neighborEngine: neighborEngine,
		stop:           stop,
		rng:            rngFromSeed(opts.Seed),
		intensity:      opts.MinIntensity,
		temperature:    opts.SAStartTemperature,
	}, nil
}

// Next advances the state machine, returning a freshly improving solution
// or nil when the overall stop fires or no starting solution exists. See
// §4.D "Return contract".
func (d *Driver) Next() ModelSpace {
	if d.done {
		return nil
	}
	for {
		if d.current == nil {
			sol, enterStop := d.restart0()
			if enterStop {
				d.done = true
				return nil
			}
			if sol != nil {
				return sol
			}
			continue
		}

		sol, stopLoop := d.iterate1()
		if stopLoop {
			return sol
		}
	}
}

// restart0 implements S0 Restart. It returns (solution, enterStop): when
// enterStop is true the driver must transition to Sstop; otherwise a
// non-nil solution is a return value for Next, and a nil solution means
// current was set and control falls through to S1 on the next loop
// iteration.
func (d *Driver) restart0() (ModelSpace, bool) {
	// 1. Reset per-restart search parameters.
	d.intensity = d.opts.MinIntensity
	d.temperature = d.opts.SAStartTemperature
	d.idleIterations = 0
	d.neighborsAccepted = 0

	// 2. Clone root into current; constrain against best, if any.
	d.current = d.root.Clone(d.opts.Shared)
	if d.best != nil {
		d.applyConstrain(d.current, d.best)
	}

	// 3. Post the initial-solution branching.
	d.current.InitialSolutionBranching(d.restart)

	// 4. Run the start sub-engine to the first solution.
	d.startEngine.Reset(d.current)
	n := d.startEngine.Next()

	// 5. No solution at all: enter Sstop.
	if n == nil {
		return nil, true
	}

	// 6. Accept as the first incumbent, or fall through to S1.
	if d.best == nil || n.Improving(d.best, true) {
		d.best = n.Clone(d.opts.Shared)
		d.current = n.Clone(d.opts.Shared)
		d.stats.Improvements++
		return n, false
	}
	d.current = n
	return nil, false
}

// iterate1 implements one call's worth of S1 Iterate. stopLoop reports
// whether Next should return immediately with the paired solution (which
// may be nil, in the overall-stop case).
func (d *Driver) iterate1() (ModelSpace, bool) {
	// 1. Intensity escalation.
	if d.idleIterations > d.opts.MaxIterationsPerIntensity {
		if d.intensity < d.opts.MaxIntensity {
			d.intensity++
		} else {
			// Wrap-around, not a restart: see design note on intensity.
			d.intensity = d.opts.MinIntensity
		}
		d.idleIterations = 0
	}

	// 2. Cooling.
	if d.neighborsAccepted > d.opts.SANeighborsAccepted {
		d.temperature *= d.opts.SACoolingRate
		d.neighborsAccepted = 0
		d.stats.CoolingSteps++
	}

	// 3. Build the neighbour by relaxing current into a fresh root clone.
	neighbor := d.root.Clone(d.opts.Shared)
	freed := d.current.Relax(neighbor, d.intensity)
	neighbor.NeighborhoodBranching()
	d.stats.NeighborsExplored++

	// 4. Apply the acceptance constraint w.r.t. current.
	d.applyConstrain(neighbor, d.current)

	// 5. Pre-check before spending sub-engine time.
	var n ModelSpace
	switch neighbor.Status() {
	case Solved:
		n = neighbor
	case Failed:
		d.stats.Fails++
	default:
		// 6. Run the neighbourhood sub-engine under the reprogrammed budget.
		budget := float64(freed) * d.opts.TimePerVariable
		d.stop.Internal.Limit(budget)
		d.stop.Internal.Reset()
		d.neighborEngine.Reset(neighbor)
		n = d.runNeighborhoodToLast()
	}

	// 7. Acceptance.
	if n != nil {
		d.neighborsAccepted++
		d.stats.NeighborsAccepted++

		switch {
		case n.Improving(d.best, true):
			d.best = n.Clone(d.opts.Shared)
			d.current = n.Clone(d.opts.Shared)
			d.idleIterations = 0
			d.intensity = d.opts.MinIntensity
			d.stats.Improvements++
			return n, true

		case d.opts.ConstrainType == ConstrainSA || d.opts.ConstrainType == ConstrainNone ||
			n.Improving(d.current, d.opts.ConstrainType == ConstrainStrict):
			// Side-step: accept as the new current, do not reset the search.
			d.current = n
		}
	}

	// 8. Overall-stop check.
	if d.stop.User != nil && d.stop.User.Stop(d.Statistics()) {
		d.current = nil
		d.restart++
		d.stats.Restarts++
		return nil, true
	}

	// 9. Continue the loop without returning.
	d.idleIterations++
	return nil, false
}

// runNeighborhoodToLast drives the neighbourhood sub-engine to exhaustion
// (or the combined stop), discarding intermediate solutions and retaining
// the last non-nil one, per §4.D step 6.
func (d *Driver) runNeighborhoodToLast() ModelSpace {
	var last ModelSpace
	for {
		sol := d.neighborEngine.Next()
		if sol == nil {
			break
		}
		last = sol
	}
	return last
}

// applyConstrain posts the acceptance constraint selected by
// opts.ConstrainType on space, relative to reference.
func (d *Driver) applyConstrain(space, reference ModelSpace) {
	switch d.opts.ConstrainType {
	case ConstrainLoose:
		space.Constrain(reference, false, 0)
	case ConstrainStrict:
		space.Constrain(reference, true, 0)
	case ConstrainSA:
		p := uniformPositive(d.rng)
		delta := -d.temperature * math.Log(p)
		space.Constrain(reference, false, delta)
	case ConstrainNone:
	}
}

// Statistics returns the driver's own counters summed with both
// sub-engines' (see §4.E).
func (d *Driver) Statistics() Statistics {
	s := d.stats
	if d.startEngine != nil {
		s = s.Add(d.startEngine.Statistics())
	}
	if d.neighborEngine != nil {
		s = s.Add(d.neighborEngine.Statistics())
	}
	return s
}

// Stopped reports the neighbourhood sub-engine's stop flag. The driver may
// observe this without itself considering the search finished: the next
// Next call will still trigger a restart. See §4.E.
func (d *Driver) Stopped() bool {
	if d.neighborEngine == nil {
		return false
	}
	return d.neighborEngine.Stopped()
}
