// Space: a partially assigned TSP tour implementing lns.ModelSpace.
// Grounded on the teacher's tsp/types.go Options/TSResult shape
// (StartVertex fixed, Tour as an ordered vertex sequence) and tsp/cost.go's
// dense-buffer cost accumulation (tourCostDense) —
// _examples/katalvlaran-lvlath/tsp — adapted here to tolerate unassigned
// (-1) tour positions mid-repair.
package tspmodel

import (
	"math"

	"github.com/cpsearch/lns"
	"github.com/cpsearch/lns/matrix"
)

const free = -1

// Space is a tour over n cities: assignment[i] is the city visited at
// tour position i, or free (-1) if that position has not yet been
// decided. Position 0 is always the fixed start city and is never freed
// (RelaxableVars excludes it), mirroring the teacher's tsp.Options.StartVertex.
//
// Space implements lns.ModelSpace: the single capability set (CP-space
// operations plus the model contract) the driver needs, with no downcasting (see §9 of the
// design notes this module is grounded on).
type Space struct {
	dist  *matrix.Dense
	n     int
	start int

	assignment []int // len n; free (-1) where not yet decided

	restart uint64 // last InitialSolutionBranching restart index, for diversification
	mode    branchMode

	maxCost       float64 // acceptance ceiling posted by Constrain; +Inf if none
	maxCostStrict bool
}

type branchMode int

const (
	modeUnset branchMode = iota
	modeInitial
	modeNeighborhood
)

// NewRootSpace builds the root space for an n-city symmetric TSP instance
// over dist, with every non-start position free. start must be in [0, n).
func NewRootSpace(dist *matrix.Dense, start int) (*Space, error) {
	if dist == nil {
		return nil, ErrNonSquare
	}
	n := dist.Rows()
	if n != dist.Cols() {
		return nil, ErrNonSquare
	}
	if n < 2 {
		return nil, ErrTooFewCities
	}
	if start < 0 || start >= n {
		return nil, ErrStartOutOfRange
	}

	assignment := make([]int, n)
	assignment[0] = start
	for i := 1; i < n; i++ {
		assignment[i] = free
	}

	return &Space{
		dist:       dist,
		n:          n,
		start:      start,
		assignment: assignment,
		maxCost:    math.Inf(1),
	}, nil
}

// Status reports Branch while any non-start position is unassigned, else
// Solved. A fully assigned tour that violates the posted Constrain
// ceiling reports Failed: the driver's pre-check (§4.D step 5) relies on
// this to short-circuit the freed==0 side-step case (B3) without ever
// invoking the sub-engine.
func (s *Space) Status() lns.Status {
	for i := 1; i < s.n; i++ {
		if s.assignment[i] == free {
			return lns.Branch
		}
	}
	if s.violatesConstraint(s.Cost()) {
		return lns.Failed
	}
	return lns.Solved
}

func (s *Space) violatesConstraint(cost float64) bool {
	if math.IsInf(s.maxCost, 1) {
		return false
	}
	if s.maxCostStrict {
		return cost >= s.maxCost-epsilon
	}
	return cost > s.maxCost+epsilon
}

// epsilon absorbs float64 accumulation noise in cost comparisons, the same
// role the teacher's tsp/cost.go round1e9 stabilization plays for its own
// solvers.
const epsilon = 1e-9

// Clone returns an independent deep copy. shared is accepted for interface
// parity with the driver's Options.Shared policy; Space has no internal
// concurrency of its own to make safe.
func (s *Space) Clone(shared bool) lns.ModelSpace {
	cp := &Space{
		dist:          s.dist,
		n:             s.n,
		start:         s.start,
		assignment:    append([]int(nil), s.assignment...),
		restart:       s.restart,
		mode:          s.mode,
		maxCost:       s.maxCost,
		maxCostStrict: s.maxCostStrict,
	}
	return cp
}

// InitialSolutionBranching marks the space for greedy nearest-neighbor
// construction and records restart so the construction heuristic can
// diversify its first decision across restarts (see buildGreedy).
func (s *Space) InitialSolutionBranching(restart uint64) {
	s.mode = modeInitial
	s.restart = restart
}

// NeighborhoodBranching marks the space for bounded, exhaustive repair of
// its free positions.
func (s *Space) NeighborhoodBranching() {
	s.mode = modeNeighborhood
}

// RelaxableVars is the number of positions that may ever be freed: every
// position except the fixed start.
func (s *Space) RelaxableVars() uint {
	return uint(s.n - 1)
}

// Relax copies s's assignment into tentative except for up to intensity
// positions, chosen deterministically as the positions whose incident
// tour edges are currently most expensive (a worst-edge removal
// heuristic: the same "prioritize the costliest part of the incumbent"
// idea the teacher's tsp/bb.go lowerBound uses to drive pruning, applied
// here to pick what to destroy instead of what to prune). freed is capped
// at RelaxableVars().
func (s *Space) Relax(tentative lns.ModelSpace, intensity uint) uint {
	t, ok := tentative.(*Space)
	if !ok {
		return 0
	}
	copy(t.assignment, s.assignment)
	t.maxCost = math.Inf(1)
	t.maxCostStrict = false

	want := intensity
	if max := uint(s.n - 1); want > max {
		want = max
	}
	if want == 0 {
		return 0
	}

	type edge struct {
		pos  int
		cost float64
	}
	edges := make([]edge, 0, s.n)
	for i := 1; i < s.n; i++ {
		edges = append(edges, edge{pos: i, cost: s.incidentCost(i)})
	}
	// Deterministic descending sort by cost, index tiebreak ascending —
	// the same ordering discipline as the teacher's tsp/bb.go neighborOrder.
	for i := 1; i < len(edges); i++ {
		for j := i; j > 0 && less(edges[j], edges[j-1]); j-- {
			edges[j], edges[j-1] = edges[j-1], edges[j]
		}
	}

	freed := uint(0)
	for i := 0; i < len(edges) && freed < want; i++ {
		t.assignment[edges[i].pos] = free
		freed++
	}
	return freed
}

func less(a, b struct {
	pos  int
	cost float64
}) bool {
	if a.cost != b.cost {
		return a.cost > b.cost // want descending cost
	}
	return a.pos < b.pos
}

// incidentCost sums the two tour edges touching position i (previous ->
// i, and i -> next, wrapping at the ends of the cycle).
func (s *Space) incidentCost(i int) float64 {
	prev := s.assignment[(i-1+s.n)%s.n]
	cur := s.assignment[i]
	next := s.assignment[(i+1)%s.n]
	if cur == free {
		return 0
	}
	var total float64
	if prev != free {
		total += s.edgeCost(prev, cur)
	}
	if next != free {
		total += s.edgeCost(cur, next)
	}
	return total
}

func (s *Space) edgeCost(u, v int) float64 {
	w, err := s.dist.At(u, v)
	if err != nil {
		return 0
	}
	return w
}

// Improving reports whether s's cost strictly dominates (or, if !strict,
// is no worse than) other's. Direction is fixed to minimization here —
// an internal property of this model, per §4.A / §9's "runtime-tagged
// cost direction" note, which this module resolves at compile time
// instead of by type inspection. A non-*Space other cannot be compared
// and is treated as non-improving, never a panic.
func (s *Space) Improving(other lns.ModelSpace, strict bool) bool {
	o, ok := other.(*Space)
	if !ok {
		return false
	}
	a, b := s.Cost(), o.Cost()
	if strict {
		return a < b-epsilon
	}
	return a <= b+epsilon
}

// Constrain posts an acceptance ceiling of reference's cost plus delta on
// s: a subsequent Status() (once s is fully assigned) reports Failed if s's
// cost exceeds the ceiling, or reaches it when strict is true. The
// neighbourhood sub-engine also prunes against this ceiling (see
// subengine.go), so a tighter ceiling prunes its search too.
func (s *Space) Constrain(reference lns.ModelSpace, strict bool, delta float64) {
	r, ok := reference.(*Space)
	if !ok {
		s.maxCost = math.Inf(1)
		return
	}
	s.maxCost = r.Cost() + delta
	s.maxCostStrict = strict
}

// Cost sums the tour's edge costs over assigned positions only; free
// positions contribute nothing until repaired. Only meaningful as a true
// tour cost once Status() reports Solved.
func (s *Space) Cost() float64 {
	var total float64
	for i := 0; i < s.n; i++ {
		u := s.assignment[i]
		v := s.assignment[(i+1)%s.n]
		if u == free || v == free {
			continue
		}
		total += s.edgeCost(u, v)
	}
	return total
}

// Tour returns a copy of the assigned city order, for callers that want
// the concrete route rather than just its cost. Returns nil if any
// position is still free.
func (s *Space) Tour() []int {
	for _, c := range s.assignment {
		if c == free {
			return nil
		}
	}
	return append([]int(nil), s.assignment...)
}

var _ lns.ModelSpace = (*Space)(nil)
