package wave

import (
	"fmt"
	"math"
)

// MaxStableCFL is the largest Courant number for which the explicit
// five-point scheme is stable in two dimensions: c*dt*sqrt(2)/h <= 1.
const MaxStableCFL = 1 / math.Sqrt2

// Mode selects the spatial harmonic cos(X*pi*x)*cos(Y*pi*y) used as the
// initial condition. Both components must be at least 1.
type Mode struct {
	X int
	Y int
}

// Params holds one immutable solver configuration.
type Params struct {
	N          int     // grid intervals per axis
	Steps      int     // number of leapfrog steps (Nt)
	CFL        float64 // target Courant number
	Speed      float64 // wave speed c
	Mode       Mode
	StoreEvery int // snapshot recording interval
}

// DefaultParams returns the stock configuration: the (2,3) standing wave
// on a 60-interval grid, 120 steps at cfl 0.5, every other step recorded.
func DefaultParams() Params {
	return Params{
		N:          60,
		Steps:      120,
		CFL:        0.5,
		Speed:      1.0,
		Mode:       Mode{X: 2, Y: 3},
		StoreEvery: 2,
	}
}

// Validate checks every parameter against its constraint. It reports the
// first violation found; the Courant number is checked both for sign and
// against the 2D stability bound. An over-limit Courant number is a hard
// failure rather than a silently divergent run.
func (p Params) Validate() error {
	if p.N < 2 {
		return fmt.Errorf("%w: got %d", ErrInvalidResolution, p.N)
	}
	if p.Steps < 1 {
		return fmt.Errorf("%w: got %d", ErrInvalidStepCount, p.Steps)
	}
	if p.Mode.X < 1 || p.Mode.Y < 1 {
		return fmt.Errorf("%w: got (%d, %d)", ErrInvalidMode, p.Mode.X, p.Mode.Y)
	}
	if p.Speed <= 0 {
		return fmt.Errorf("%w: got %g", ErrInvalidWaveSpeed, p.Speed)
	}
	if p.CFL <= 0 {
		return fmt.Errorf("%w: got %g", ErrInvalidCourantNumber, p.CFL)
	}
	if p.CFL > MaxStableCFL {
		return fmt.Errorf("%w: got %g", ErrStabilityRisk, p.CFL)
	}
	if p.StoreEvery < 1 {
		return fmt.Errorf("%w: got %d", ErrInvalidRecordingInterval, p.StoreEvery)
	}
	return nil
}

// Spacing returns the mesh width h = 1/N.
func (p Params) Spacing() float64 { return 1.0 / float64(p.N) }

// TimeStep returns dt = cfl*h/c, the stable time step for the requested
// Courant number.
func (p Params) TimeStep() float64 { return p.CFL * p.Spacing() / p.Speed }

// Courant returns the stencil coefficient r = c*dt/h. With dt defined
// from the Courant number on a uniform grid this is CFL itself, so it is
// returned directly rather than recomputed through dt.
func (p Params) Courant() float64 { return p.CFL }
