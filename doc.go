// Package lns implements a Large Neighborhood Search (LNS) meta-engine on
// top of an abstract constraint-programming (CP) backend.
//
// LNS alternates between destroying part of an incumbent solution and
// repairing the relaxation with a tree-search sub-engine, guided by a
// configurable acceptance criterion (hill-climbing or Simulated Annealing).
// The CP substrate itself — propagators, branchers, the actual tree search —
// is not part of this package; callers supply it through the ModelSpace and
// SubEngine contracts in model.go.
//
// Design goals:
//   - Single capability set: every space handle the driver touches carries
//     both the CP-space operations and the model-contract operations
//     (ModelSpace); there are no type assertions or downcasts anywhere.
//   - Explicit ownership: root/best/current are uniquely-owned handles.
//     Cloning is explicit; a solution returned by Next transfers ownership
//     to the caller.
//   - Determinism: the same seed, Options, and sub-engine behaviour produce
//     the same sequence of Next results.
package lns
