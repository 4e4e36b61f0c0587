package wave

import "context"

// Solver runs the explicit leapfrog scheme for one parameter set.
type Solver struct {
	params Params
}

// NewSolver returns a solver for the given parameters. Validation is
// deferred to Solve so a misconfigured solver fails fast there.
func NewSolver(p Params) *Solver {
	return &Solver{params: p}
}

// Solve validates the parameters, builds the grid, applies the
// standing-wave initial condition and advances Steps leapfrog steps,
// recording snapshots per the StoreEvery policy. The returned collection
// always contains steps 0 and Steps. The context is checked between
// steps; cancellation returns the context's error and no collection.
func (s *Solver) Solve(ctx context.Context) (*Collection, error) {
	p := s.params
	if err := p.Validate(); err != nil {
		return nil, err
	}

	grid, err := NewGrid(p.N)
	if err != nil {
		return nil, err
	}

	r := p.Courant()
	initStandingWave(grid, p.Mode, r)

	stepper := NewStepper(grid, r, p.Steps)
	stepper.Ready()

	rec := newRecorder(p.StoreEvery, p.Steps)
	if err := rec.observe(0, grid.Curr()); err != nil {
		return nil, err
	}

	for step := 1; step <= p.Steps; step++ {
		select {
		case <-ctx.Done():
			return nil, ctx.Err()
		default:
		}
		if err := stepper.Step(); err != nil {
			return nil, err
		}
		if err := rec.observe(step, grid.Curr()); err != nil {
			return nil, err
		}
	}

	return rec.out, nil
}

// Solve runs the scheme for p in one call.
func Solve(ctx context.Context, p Params) (*Collection, error) {
	return NewSolver(p).Solve(ctx)
}
