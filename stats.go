package lns

// Statistics aggregates driver-level counters with whatever a sub-engine
// reports about its own search. The facade's Statistics method sums the
// driver's own counters with both sub-engines' (see §4.E).
type Statistics struct {
	// Restarts counts completed restarts (re-entries into S0 after an
	// overall-stop-triggered teardown).
	Restarts uint64

	// Fails counts spaces that evaluated to Failed, including a Failed
	// root at construction time.
	Fails uint64

	// NeighborsExplored counts every relaxed neighbour the driver built,
	// regardless of outcome.
	NeighborsExplored uint64

	// NeighborsAccepted counts neighbours accepted either as a new
	// incumbent or as a side-step.
	NeighborsAccepted uint64

	// Improvements counts neighbours (including initial solutions) that
	// replaced best.
	Improvements uint64

	// CoolingSteps counts SA temperature reductions applied.
	CoolingSteps uint64

	// Nodes is opaque sub-engine search-node count; the driver never reads
	// it, only forwards it when summing.
	Nodes uint64
}

// Add returns the element-wise sum of s and other, used to combine
// sub-engine statistics with the driver's own.
func (s Statistics) Add(other Statistics) Statistics {
	return Statistics{
		Restarts:          s.Restarts + other.Restarts,
		Fails:             s.Fails + other.Fails,
		NeighborsExplored: s.NeighborsExplored + other.NeighborsExplored,
		NeighborsAccepted: s.NeighborsAccepted + other.NeighborsAccepted,
		Improvements:      s.Improvements + other.Improvements,
		CoolingSteps:      s.CoolingSteps + other.CoolingSteps,
		Nodes:             s.Nodes + other.Nodes,
	}
}
