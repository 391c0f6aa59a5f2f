package tspmodel

import "errors"

// Construction / shape errors. Do not wrap with fmt.Errorf where a sentinel
// suffices, matching the teacher's tsp package convention.
var (
	// ErrTooFewCities indicates a distance matrix of order < 2.
	ErrTooFewCities = errors.New("tspmodel: fewer than 2 cities")

	// ErrNonSquare indicates the distance matrix is not square.
	ErrNonSquare = errors.New("tspmodel: matrix is not square")

	// ErrStartOutOfRange indicates a start city outside [0, n).
	ErrStartOutOfRange = errors.New("tspmodel: start city out of range")
)
