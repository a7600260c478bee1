package engine

import "errors"

// Boundary validation failures. These are programmer errors in upstream
// data and are surfaced synchronously; nothing in the pipeline recovers
// from them internally. Absence of an equilibrium is deliberately NOT an
// error (see FindEquilibria).
var (
	ErrInvalidSnapshot  = errors.New("invalid snapshot")
	ErrEmptyStrategySet = errors.New("strategy catalog needs at least two entries")
	ErrUnknownStrategy  = errors.New("strategy not registered")
)
