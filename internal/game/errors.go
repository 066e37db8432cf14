package game

import (
	"errors"
	"math"
)

var (
	// ErrInvalidTempo is returned by any beat/time conversion made with a
	// tempo that is not a positive finite number.
	ErrInvalidTempo = errors.New("tempo must be a positive number of beats per minute")

	// ErrInvalidTimeValue is returned when a beat or time argument is NaN or infinite.
	ErrInvalidTimeValue = errors.New("beat or time value is not finite")

	// ErrNonPositiveJumpSpeed is returned when the half jump duration is
	// requested for a jump speed that is zero or negative.
	ErrNonPositiveJumpSpeed = errors.New("note jump speed must be positive")

	ErrInvalidObject = errors.New("invalid map object")
)

func finite(f float64) bool {
	return !math.IsNaN(f) && !math.IsInf(f, 0)
}
