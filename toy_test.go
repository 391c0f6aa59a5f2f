package lns_test

// A minimal, self-contained CP-like model used only to exercise the
// driver's state machine. It has no propagation of its own: "variables"
// are plain ints in [0, domainMax], cost is the distance of their sum from
// a target (minimization), and the "sub-engine" is a brute-force odometer
// enumerator. None of this models a real constraint solver; it exists so
// the driver's invariants (§8) can be tested without a CP backend
// dependency.

import (
	"math"

	"github.com/cpsearch/lns"
)

const toyFree = -1

type toySpace struct {
	vals      []int
	domainMax int
	target    int

	hasBound    bool
	boundValue  float64
	boundStrict bool

	forceFailed bool // simulates a root detected infeasible by propagation
}

func newToySpace(n, domainMax int) *toySpace {
	vals := make([]int, n)
	for i := range vals {
		vals[i] = toyFree
	}
	return &toySpace{vals: vals, domainMax: domainMax}
}

func (s *toySpace) clone() *toySpace {
	cp := &toySpace{
		vals:        append([]int(nil), s.vals...),
		domainMax:   s.domainMax,
		target:      s.target,
		hasBound:    s.hasBound,
		boundValue:  s.boundValue,
		boundStrict: s.boundStrict,
		forceFailed: s.forceFailed,
	}
	return cp
}

func (s *toySpace) Clone(bool) lns.ModelSpace { return s.clone() }

func (s *toySpace) Status() lns.Status {
	if s.forceFailed {
		return lns.Failed
	}
	for _, v := range s.vals {
		if v == toyFree {
			return lns.Branch
		}
	}
	cost := s.Cost()
	if s.hasBound {
		if s.boundStrict && !(cost < s.boundValue) {
			return lns.Failed
		}
		if !s.boundStrict && cost > s.boundValue {
			return lns.Failed
		}
	}
	return lns.Solved
}

func (s *toySpace) InitialSolutionBranching(uint64) {}
func (s *toySpace) NeighborhoodBranching()          {}

func (s *toySpace) Relax(tentative lns.ModelSpace, intensity uint) uint {
	t := tentative.(*toySpace)
	n := len(s.vals)
	copy(t.vals, s.vals)
	freed := uint(0)
	for i := n - 1; i >= 0 && freed < intensity; i-- {
		t.vals[i] = toyFree
		freed++
	}
	return freed
}

func (s *toySpace) RelaxableVars() uint { return uint(len(s.vals)) }

func (s *toySpace) Improving(other lns.ModelSpace, strict bool) bool {
	o := other.(*toySpace)
	if strict {
		return s.Cost() < o.Cost()
	}
	return s.Cost() <= o.Cost()
}

func (s *toySpace) Constrain(reference lns.ModelSpace, strict bool, delta float64) {
	ref := reference.(*toySpace)
	s.hasBound = true
	s.boundValue = ref.Cost() + delta
	s.boundStrict = strict
}

// Cost is the distance of the assigned variables' sum from target. With
// target == 0 this degenerates to a plain sum (unique optimum at the
// all-zero assignment, reached by the enumerator's very first guess).
// With target > 0 the enumerator's first guess (all zeros) is typically
// not optimal, giving a non-trivial landscape to relax and repair.
func (s *toySpace) Cost() float64 {
	total := 0
	for _, v := range s.vals {
		if v != toyFree {
			total += v
		}
	}
	return math.Abs(float64(total - s.target))
}

// toyEngine is a brute-force odometer enumerator over a toySpace's free
// variables, in ascending order starting at 0 for each. It yields only
// Solved candidates.
type toyEngine struct {
	stop      lns.Stop
	root      *toySpace
	freeIdx   []int
	counters  []int
	domainMax int
	exhausted bool
	stats     lns.Statistics
}

func newToyEngine(stop lns.Stop) *toyEngine {
	return &toyEngine{stop: stop}
}

func (e *toyEngine) Reset(root lns.ModelSpace) {
	ts, ok := root.(*toySpace)
	if !ok || root.Status() == lns.Failed {
		// The facade's internal failed-root stand-in (or any already-failed
		// space) never yields a solution.
		e.root = nil
		e.freeIdx = nil
		e.counters = nil
		e.exhausted = true
		return
	}
	e.root = ts
	e.domainMax = ts.domainMax
	e.freeIdx = nil
	for i, v := range ts.vals {
		if v == toyFree {
			e.freeIdx = append(e.freeIdx, i)
		}
	}
	e.counters = make([]int, len(e.freeIdx))
	e.exhausted = false
}

func (e *toyEngine) advance() bool {
	for k := len(e.counters) - 1; k >= 0; k-- {
		e.counters[k]++
		if e.counters[k] <= e.domainMax {
			return true
		}
		e.counters[k] = 0
	}
	return false
}

func (e *toyEngine) Next() lns.ModelSpace {
	if e.exhausted {
		return nil
	}
	for {
		if e.stop != nil && e.stop.Stop(e.stats) {
			return nil
		}
		cand := e.root.clone()
		for k, idx := range e.freeIdx {
			cand.vals[idx] = e.counters[k]
		}
		e.stats.Nodes++

		more := e.advance()
		if !more {
			e.exhausted = true
		}
		if cand.Status() == lns.Solved {
			return cand
		}
		if e.exhausted {
			return nil
		}
	}
}

func (e *toyEngine) Stopped() bool { return e.exhausted }

func (e *toyEngine) Statistics() lns.Statistics { return e.stats }

func toyFactory() lns.SubEngineFactory {
	return func(root lns.ModelSpace, stop lns.Stop) lns.SubEngine {
		e := newToyEngine(stop)
		return e
	}
}

// stopAfterN fires once the polled statistics' node count reaches n. Nodes
// is incremented by toyEngine on every candidate it builds, whether the
// caller is the driver (aggregate statistics) or a toyEngine polling its
// own local count — so a single threshold bounds both per-neighbourhood
// and overall iteration in these tests.
type stopAfterN struct{ n uint64 }

func (s *stopAfterN) Stop(stats lns.Statistics) bool {
	return stats.Nodes >= s.n
}

// stopAfterCalls fires once it has been polled remaining times, regardless
// of the statistics it is handed. Unlike stopAfterN it does not depend on
// any sub-engine making forward progress, so it safely bounds degenerate
// runs where every relaxed neighbour resolves without ever invoking a
// sub-engine (e.g. a zero-width intensity ladder).
type stopAfterCalls struct{ remaining int }

func (s *stopAfterCalls) Stop(lns.Statistics) bool {
	if s.remaining <= 0 {
		return true
	}
	s.remaining--
	return false
}
