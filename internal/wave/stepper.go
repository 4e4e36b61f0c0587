package wave

// stepperState tracks the life cycle of one leapfrog run.
type stepperState int

const (
	stateUninitialized stepperState = iota
	stateReady
	stateStepping
	stateDone
)

// Stepper advances a grid through the explicit leapfrog recurrence. It
// moves Uninitialized -> Ready -> Stepping -> Done; once Done it cannot
// be restarted, a new run needs a fresh grid.
type Stepper struct {
	grid  *Grid
	r2    float64
	total int
	taken int
	state stepperState
}

// NewStepper wires a stepper to a grid for a run of total steps with
// stencil coefficient r.
func NewStepper(g *Grid, r float64, total int) *Stepper {
	return &Stepper{grid: g, r2: r * r, total: total, state: stateUninitialized}
}

// Ready marks the stepper runnable once the grid holds initial data in
// its current and previous buffers.
func (s *Stepper) Ready() {
	if s.state == stateUninitialized {
		s.state = stateReady
	}
}

// Done reports whether all steps have been taken.
func (s *Stepper) Done() bool { return s.state == stateDone }

// Taken returns the number of completed steps.
func (s *Stepper) Taken() int { return s.taken }

// Step advances the field one time step: the five-point stencil updates
// every interior point, the Neumann reflection fills the boundary of the
// next buffer, and the buffers rotate. Fails with ErrNotReady before
// initialization and ErrDone after the final step.
func (s *Stepper) Step() error {
	switch s.state {
	case stateUninitialized:
		return ErrNotReady
	case stateDone:
		return ErrDone
	}
	s.state = stateStepping

	prev, curr, next := s.grid.Prev(), s.grid.Curr(), s.grid.Next()
	n := s.grid.Intervals()
	for i := 1; i < n; i++ {
		for j := 1; j < n; j++ {
			lap := (curr.At(i+1, j) + curr.At(i-1, j)) +
				(curr.At(i, j+1) + curr.At(i, j-1)) -
				4*curr.At(i, j)
			next.Set(i, j, 2*curr.At(i, j)-prev.At(i, j)+s.r2*lap)
		}
	}
	enforceBoundary(prev, curr, next, s.r2)
	s.grid.Rotate()

	s.taken++
	if s.taken == s.total {
		s.state = stateDone
	}
	return nil
}
