package lns

// Status reports the outcome of evaluating a space's propagation/branching
// state.
type Status int

const (
	// Branch indicates the space is neither solved nor failed; a sub-engine
	// must continue searching (propagate/branch) to resolve it.
	Branch Status = iota

	// Solved indicates every variable in the space is assigned and all
	// constraints are satisfied.
	Solved

	// Failed indicates the space has no feasible completion.
	Failed
)

// String renders a Status for logging and test failure messages.
func (s Status) String() string {
	switch s {
	case Solved:
		return "Solved"
	case Failed:
		return "Failed"
	default:
		return "Branch"
	}
}

// ModelSpace is the single capability set the driver requires from a CP
// model: the CP-space operations (Status, Clone) plus the model-contract
// operations (relaxation, branching, cost comparison). Reconstructing the
// original's multiple-inheritance-plus-downcast design as one interface
// means the driver never needs a type assertion: every handle it holds
// already satisfies everything it might call.
//
// Implementations must be safe to call on any clone produced by Clone.
type ModelSpace interface {
	// Status reports whether the space is solved, failed, or still requires
	// branching.
	Status() Status

	// Clone produces an independent deep copy. shared mirrors the driver's
	// threads==1 policy (see Options); implementations that have no
	// internal concurrency may ignore it.
	Clone(shared bool) ModelSpace

	// InitialSolutionBranching posts a branching heuristic suitable for
	// locating some feasible solution quickly. restart is the number of
	// completed restarts so far and may be used to diversify branching
	// across restarts.
	InitialSolutionBranching(restart uint64)

	// NeighborhoodBranching posts a branching suitable for exploring a
	// repaired neighbourhood (typically tighter / cost-aware than the
	// initial-solution branching).
	NeighborhoodBranching()

	// Relax copies this (fully assigned) space's variable assignments into
	// tentative, except for a model-chosen subset of approximately
	// intensity variables, which are left free. It returns the actual
	// number of variables left free; the meta-engine only requires
	// freed <= RelaxableVars().
	Relax(tentative ModelSpace, intensity uint) (freed uint)

	// RelaxableVars is an upper bound on the number of variables Relax may
	// leave free.
	RelaxableVars() uint

	// Improving reports whether this space's cost strictly dominates
	// other's (or is no worse, when strict is false). Direction (min vs
	// max) is an internal property of the model; the driver only ever
	// queries this predicate. A model that cannot determine a direction
	// must return false rather than panic.
	Improving(other ModelSpace, strict bool) bool

	// Constrain posts a constraint requiring this space's cost to be at
	// least as good as reference's cost, offset by delta in the worsening
	// direction (used by the Loose and SA acceptance modes). strict
	// toggles strict vs. non-strict inequality.
	Constrain(reference ModelSpace, strict bool, delta float64)

	// Cost exposes the objective value. The driver never reads it
	// directly; it is provided for models and callers that want it.
	Cost() float64
}

// SubEngine is the tree-search engine the driver drives to a solution. Two
// instances are required by the facade: one rooted at the initial space
// (locating a first feasible solution) and one rooted at each relaxed
// neighbour (repairing it).
type SubEngine interface {
	// Reset re-roots the engine on root, discarding any in-progress search.
	Reset(root ModelSpace)

	// Next advances the search and returns the next solution, or nil if the
	// engine is exhausted or stopped.
	Next() ModelSpace

	// Stopped reports whether the engine's stop predicate has fired.
	Stopped() bool

	// Statistics reports the engine's own search statistics (nodes
	// explored, failures, etc.), to be summed into the driver's.
	Statistics() Statistics
}
