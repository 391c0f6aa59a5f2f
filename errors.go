package lns

import "errors"

// Configuration / construction errors. Do not wrap with fmt.Errorf where a
// sentinel suffices.
var (
	// ErrInvalidIntensityRange indicates MinIntensity > MaxIntensity.
	ErrInvalidIntensityRange = errors.New("lns: min_intensity greater than max_intensity")

	// ErrInvalidCoolingRate indicates SACoolingRate is outside (0, 1).
	ErrInvalidCoolingRate = errors.New("lns: sa_cooling_rate must be in (0, 1)")

	// ErrInvalidConstrainType indicates an unrecognized ConstrainType value.
	ErrInvalidConstrainType = errors.New("lns: unrecognized constrain_type")

	// ErrNilRoot indicates the facade was constructed with a nil root space.
	ErrNilRoot = errors.New("lns: root space is nil")

	// ErrNilModel indicates the facade was constructed with a nil model/space pair.
	ErrNilModel = errors.New("lns: root does not implement ModelSpace")
)
