// Stop predicates: a per-neighbourhood time budget, an optional
// caller-supplied overall stop, and a combinator that fires iff either
// fires. Grounded on the sparse deadline-check idiom in the teacher's
// tsp/bb.go (_examples/katalvlaran-lvlath/tsp/bb.go, bbEngine.deadlineCheck):
// time.Now() is expensive enough to matter in a hot polling loop, so it is
// sampled every 4096 calls rather than every call.
package lns

import "time"

// Stop reports whether a search should terminate. stats is the caller's
// view of the search so far (typically the driver's own Statistics plus
// the active sub-engine's).
type Stop interface {
	Stop(stats Statistics) bool
}

// stopPollMask bounds how often TimeStop actually calls time.Now(); it is
// checked on every call but only sampled every 4096th one.
const stopPollMask = 4095

// TimeStop is a reprogrammable numeric time budget, in milliseconds. The
// driver reprograms Limit and calls Reset before every sub-engine run (see
// §4.D / invariant I5 of the design).
type TimeStop struct {
	limitMS float64
	start   time.Time
	steps   uint64
}

// NewTimeStop returns a TimeStop with an initial limit of 0, which Stop
// treats as unbounded: it never fires until Limit sets a positive budget.
func NewTimeStop() *TimeStop {
	return &TimeStop{}
}

// Limit reprograms the budget, in milliseconds. A limit <= 0 means
// unbounded (never fires on time alone).
func (t *TimeStop) Limit(ms float64) {
	t.limitMS = ms
}

// Reset restarts the clock for a fresh budget window.
func (t *TimeStop) Reset() {
	t.start = time.Now()
	t.steps = 0
}

// Stop reports whether the programmed time budget has elapsed. stats is
// unused by TimeStop; it is part of the interface so TimeStop satisfies
// Stop alongside user-supplied predicates that do inspect statistics.
func (t *TimeStop) Stop(_ Statistics) bool {
	if t.limitMS <= 0 {
		return false
	}
	t.steps++
	if t.steps&stopPollMask != 0 {
		return false
	}
	return time.Since(t.start) >= time.Duration(t.limitMS*float64(time.Millisecond))
}

// CombinedStop merges a user-supplied overall stop (possibly nil) with an
// internal TimeStop governing each neighbourhood exploration. It fires iff
// either child fires. The driver keeps a direct handle to Internal so it
// can reprogram the numeric limit every iteration without touching User.
type CombinedStop struct {
	User     Stop
	Internal *TimeStop
}

// NewCombinedStop wraps user (which may be nil) with a fresh internal
// TimeStop.
func NewCombinedStop(user Stop) *CombinedStop {
	return &CombinedStop{User: user, Internal: NewTimeStop()}
}

// Stop reports whether either child predicate fires.
func (c *CombinedStop) Stop(stats Statistics) bool {
	if c.Internal.Stop(stats) {
		return true
	}
	if c.User != nil {
		return c.User.Stop(stats)
	}
	return false
}
