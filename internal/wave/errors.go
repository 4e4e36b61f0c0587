package wave

import "errors"

// Validation errors for solver parameters. All are raised before any
// allocation or stepping; a run never returns a partial collection.
var (
	// ErrInvalidResolution indicates a grid resolution below 2 intervals.
	ErrInvalidResolution = errors.New("wave: grid resolution must be at least 2")

	// ErrInvalidStepCount indicates a non-positive number of time steps.
	ErrInvalidStepCount = errors.New("wave: step count must be at least 1")

	// ErrInvalidMode indicates a standing-wave mode number below 1.
	ErrInvalidMode = errors.New("wave: mode numbers must be at least 1")

	// ErrInvalidWaveSpeed indicates a non-positive wave speed.
	ErrInvalidWaveSpeed = errors.New("wave: wave speed must be positive")

	// ErrInvalidCourantNumber indicates a non-positive Courant number.
	ErrInvalidCourantNumber = errors.New("wave: courant number must be positive")

	// ErrStabilityRisk indicates a Courant number above 1/sqrt(2), the
	// stability bound of the explicit five-point scheme in two dimensions.
	ErrStabilityRisk = errors.New("wave: courant number exceeds the 2D stability bound 1/sqrt(2)")

	// ErrInvalidRecordingInterval indicates a recording interval below 1.
	ErrInvalidRecordingInterval = errors.New("wave: recording interval must be at least 1")

	// ErrNotReady indicates a step was attempted before initialization.
	ErrNotReady = errors.New("wave: stepper not initialized")

	// ErrDone indicates a step was attempted after the final step. A
	// finished run cannot be resumed; build a fresh grid instead.
	ErrDone = errors.New("wave: stepper already done")
)
