// Sub-engine: the two lns.SubEngine instantiations tspmodel provides.
// EngineMode selects between greedy nearest-neighbor construction (fast,
// for locating a first feasible tour — §4.A InitialSolutionBranching) and
// bounded exhaustive repair of the free positions (exact within the
// relaxed neighbourhood — §4.A NeighborhoodBranching). Both are grounded
// on the teacher's tsp/bb.go (_examples/katalvlaran-lvlath/tsp/bb.go)
// DFS-with-deterministic-branching-order pattern, reimplemented directly
// over Space's own assignment/cost fields rather than depending on that
// package. Enumeration is bounded by Options.MaxIntensity, and the bounded
// mode cuts a branch once partialCost shows it can neither beat the best
// complete cost found so far nor satisfy the Constrain ceiling (see
// repair's doc comment below).
package tspmodel

import (
	"math"

	"github.com/cpsearch/lns"
)

// EngineMode selects which repair strategy a SubEngine runs.
type EngineMode int

const (
	// ModeConstruct greedily completes every free position with a
	// nearest-neighbor insertion, producing one feasible tour quickly.
	// Used for the facade's start sub-engine.
	ModeConstruct EngineMode = iota

	// ModeBounded exhaustively searches assignments of the free positions,
	// pruned by the space's Constrain ceiling, retaining progressively
	// better completions. Used for the facade's neighbourhood sub-engine.
	ModeBounded
)

// stopPollMask bounds how often the search actually calls Stop, mirroring
// lns/stop.go's TimeStop sampling policy.
const stopPollMask = 255

// Engine is a single-shot lns.SubEngine: Reset roots it on a space, and
// the first Next call runs the configured search to completion (or until
// the stop predicate fires), returning at most one solution. Subsequent
// Next calls before the next Reset return nil. This keeps the demo
// sub-engine's control flow simple while still satisfying the interface's
// "next returns a solution or nothing, repeatedly, until exhausted"
// contract: a single-result search is a degenerate but valid instance of
// that contract (see DESIGN.md).
type Engine struct {
	mode EngineMode
	stop lns.Stop

	root *Space
	done bool

	stats   lns.Statistics
	stopped bool
	steps   uint64
}

// NewEngine constructs a Engine in the given mode, polling stop during its
// search.
func NewEngine(mode EngineMode, stop lns.Stop) *Engine {
	return &Engine{mode: mode, stop: stop}
}

// Reset re-roots the engine on root, discarding any in-progress search.
func (e *Engine) Reset(root lns.ModelSpace) {
	s, _ := root.(*Space)
	e.root = s
	e.done = false
	e.stopped = false
}

// Next runs the configured search on its first call after Reset and
// returns the result (or nil); subsequent calls return nil until the next
// Reset.
func (e *Engine) Next() lns.ModelSpace {
	if e.done || e.root == nil {
		return nil
	}
	e.done = true

	switch e.mode {
	case ModeConstruct:
		return e.construct()
	default:
		return e.repair()
	}
}

// Stopped reports whether the search's last run observed the stop
// predicate fire before completing.
func (e *Engine) Stopped() bool {
	return e.stopped
}

// Statistics reports nodes explored during the search.
func (e *Engine) Statistics() lns.Statistics {
	return e.stats
}

// pollStop samples the stop predicate every stopPollMask+1 calls, the
// same sparse-check idiom lns/stop.go's TimeStop and the teacher's
// tsp/bb.go deadlineCheck use.
func (e *Engine) pollStop() bool {
	e.steps++
	if e.steps&stopPollMask != 0 {
		return false
	}
	if e.stop == nil {
		return false
	}
	return e.stop.Stop(e.stats)
}

// construct builds a complete tour via nearest-neighbor insertion,
// perturbing only the very first decision by restart (mod the candidate
// count) so that InitialSolutionBranching's restart index actually
// diversifies branching across restarts, per §4.A.
func (e *Engine) construct() lns.ModelSpace {
	s := e.root.Clone(true).(*Space)
	remaining := s.unassignedCities()
	if len(remaining) == 0 {
		if s.Status() == lns.Solved {
			e.stats.Nodes++
			return s
		}
		return nil
	}

	prev := s.assignment[0]
	first := true
	for i := 1; i < s.n; i++ {
		if s.assignment[i] != free {
			prev = s.assignment[i]
			continue
		}
		if e.pollStop() {
			e.stopped = true
			return nil
		}
		idx := nearestIndex(s, prev, remaining)
		if first && len(remaining) > 0 {
			idx = int(s.restart) % len(remaining)
			first = false
		}
		city := remaining[idx]
		remaining = append(remaining[:idx], remaining[idx+1:]...)
		s.assignment[i] = city
		prev = city
		e.stats.Nodes++
	}

	if s.Status() != lns.Solved {
		return nil
	}
	return s
}

// unassignedCities returns the cities (by index) not yet present in the
// assignment, in ascending order.
func (s *Space) unassignedCities() []int {
	used := make([]bool, s.n)
	for _, c := range s.assignment {
		if c != free {
			used[c] = true
		}
	}
	out := make([]int, 0, s.n)
	for c := 0; c < s.n; c++ {
		if !used[c] {
			out = append(out, c)
		}
	}
	return out
}

// nearestIndex returns the index within remaining of the city closest to
// prev, breaking ties by city id for determinism.
func nearestIndex(s *Space, prev int, remaining []int) int {
	best := 0
	bestCost := math.Inf(1)
	for i, c := range remaining {
		w := s.edgeCost(prev, c)
		if w < bestCost || (w == bestCost && c < remaining[best]) {
			bestCost = w
			best = i
		}
	}
	return best
}

// repair exhaustively assigns the free positions with the remaining
// cities, pruned by the space's Constrain ceiling, retaining the best
// (lowest-cost) feasible completion found before the search either
// exhausts all assignments or the stop predicate fires. Intended for
// small free-position counts (bounded by Options.MaxIntensity), so full
// enumeration is cheap.
func (e *Engine) repair() lns.ModelSpace {
	s := e.root.Clone(true).(*Space)
	positions := freePositions(s)
	remaining := s.unassignedCities()
	if len(positions) != len(remaining) {
		// Model contract violation (mismatched free-position/city counts);
		// fail loudly only here, outside the hot path, per §7.
		panic("tspmodel: free position count does not match unassigned city count")
	}
	if len(positions) == 0 {
		if s.Status() == lns.Solved {
			e.stats.Nodes++
			return s
		}
		return nil
	}

	var best *Space
	bestCost := math.Inf(1)
	used := make([]bool, len(remaining))

	var dfs func(depth int)
	dfs = func(depth int) {
		if e.stopped {
			return
		}
		if depth == len(positions) {
			e.stats.Nodes++
			cost := s.Cost()
			if cost < bestCost-epsilon {
				bestCost = cost
				cp := s.Clone(true).(*Space)
				best = cp
			}
			return
		}
		if e.pollStop() {
			e.stopped = true
			return
		}
		pos := positions[depth]
		for i, city := range remaining {
			if used[i] {
				continue
			}
			s.assignment[pos] = city
			partial := s.partialCost(positions[:depth+1])
			if (partial < bestCost-epsilon || math.IsInf(bestCost, 1)) && !s.violatesConstraint(partial) {
				used[i] = true
				dfs(depth + 1)
				used[i] = false
			}
			if e.stopped {
				s.assignment[pos] = free
				return
			}
		}
		s.assignment[pos] = free
	}
	dfs(0)

	if best == nil {
		return nil
	}
	if best.Status() != lns.Solved {
		return nil
	}
	return best
}

// freePositions lists the positions still marked free, in ascending
// order.
func freePositions(s *Space) []int {
	out := make([]int, 0, s.n)
	for i := 1; i < s.n; i++ {
		if s.assignment[i] == free {
			out = append(out, i)
		}
	}
	return out
}

// partialCost sums the incident cost of the positions named and halves it,
// so an edge between two named positions counts once and an edge to any
// other position counts half. With non-negative distances it never
// exceeds the cost of any completion, which makes it a safe bound for the
// DFS repair search: cutting a branch whose partialCost reaches the best
// complete cost found so far, or violates the Constrain ceiling, never
// discards a cheaper feasible completion.
func (s *Space) partialCost(positions []int) float64 {
	var total float64
	for _, p := range positions {
		total += s.incidentCost(p)
	}
	return total / 2 // each interior edge was counted once per endpoint
}

var _ lns.SubEngine = (*Engine)(nil)
