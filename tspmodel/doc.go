// Package tspmodel is a concrete, exercised implementation of the lns
// Model and Sub-engine contracts (lns.ModelSpace, lns.SubEngine) over a
// symmetric TSP distance matrix. It adapts the teacher's tsp package
// (branch-and-bound branching order, dense-matrix cost accumulation,
// nearest-neighbor construction) to the LNS relax/repair cycle: a Space
// is a partially assigned tour, Relax frees a subset of tour positions,
// and the two sub-engine modes repair a relaxed tour (bounded,
// exhaustive) or construct a first tour from scratch (greedy, fast).
//
// tspmodel is demonstration substrate, not part of the LNS core: the CP
// backend is an external collaborator per the core's own scope (see
// lns/doc.go). Nothing in lns imports tspmodel.
package tspmodel
