// Package matrix defines the Matrix interface for two-dimensional float64
// tables (square distance tables in this module) and a Dense, row-major
// implementation of it.
//
// What & Why:
//
//	A uniform abstraction over two-dimensional float64 arrays lets callers
//	work against Matrix, while hot loops can hold *Dense directly and avoid interface indirection, as the
//	tspmodel LNS adapter does (Space.dist is a *Dense, used for edge-cost
//	lookups in Relax/Cost) — the same
//	dense-buffer-over-interface pattern the teacher's tsp/cost.go and
//	tsp/mst.go (_examples/katalvlaran-lvlath/tsp) use.
//
// Complexity:
//
//	Rows/Cols run in O(1). At/Set bounds-check in O(1) and return
//	ErrIndexOutOfBounds on misuse rather than panicking. Clone performs a
//	deep copy in O(rows*cols).
package matrix
