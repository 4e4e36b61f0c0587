package analysis

import (
	"context"
	"math"
	"testing"

	"github.com/san-kum/wavelab/internal/wave"
)

func TestOmega(t *testing.T) {
	got := Omega(1.0, wave.Mode{X: 3, Y: 4})
	want := math.Pi * 5.0
	if math.Abs(got-want) > 1e-12 {
		t.Errorf("expected omega %g, got %g", want, got)
	}
}

func TestExactAtTimeZero(t *testing.T) {
	f := Exact(4, wave.Mode{X: 1, Y: 1}, 1.0, 0)

	if math.Abs(f.At(0, 0)-1.0) > 1e-15 {
		t.Errorf("corner (0,0): expected 1, got %g", f.At(0, 0))
	}
	if math.Abs(f.At(4, 4)-1.0) > 1e-15 {
		t.Errorf("corner (N,N): expected cos(pi)cos(pi)=1, got %g", f.At(4, 4))
	}
	if math.Abs(f.At(2, 0)) > 1e-12 {
		t.Errorf("midpoint: expected cos(pi/2)=0, got %g", f.At(2, 0))
	}
}

func TestL2ErrorOfExactIsZero(t *testing.T) {
	mode := wave.Mode{X: 2, Y: 3}
	f := Exact(16, mode, 1.0, 0.37)
	if e := L2Error(f, mode, 1.0, 0.37); e > 1e-15 {
		t.Errorf("exact field against itself: expected ~0, got %g", e)
	}
}

func TestSolverErrorIsSmall(t *testing.T) {
	p := wave.Params{N: 16, Steps: 10, CFL: 0.1, Speed: 1.0, Mode: wave.Mode{X: 2, Y: 3}, StoreEvery: 10}

	coll, err := wave.Solve(context.Background(), p)
	if err != nil {
		t.Fatalf("solve failed: %v", err)
	}

	final, _ := coll.At(p.Steps)
	tn := float64(p.Steps) * p.TimeStep()
	if e := L2Error(final, p.Mode, p.Speed, tn); e > 5e-3 {
		t.Errorf("l2 error too large: %g", e)
	}
}

func TestConvergenceRejectsTooFewLevels(t *testing.T) {
	for _, levels := range []int{-1, 0, 1} {
		study, err := ConvergenceRates(context.Background(), levels, 0.1, 1.0, 10, wave.Mode{X: 2, Y: 3})
		if err == nil {
			t.Errorf("levels=%d: expected error, got study %+v", levels, study)
		}
		if study != nil {
			t.Errorf("levels=%d: expected no study on rejection", levels)
		}
	}
}

func TestConvergenceSecondOrder(t *testing.T) {
	study, err := ConvergenceRates(context.Background(), 4, 0.1, 1.0, 10, wave.Mode{X: 2, Y: 3})
	if err != nil {
		t.Fatalf("convergence study failed: %v", err)
	}

	if len(study.Rates) != 3 {
		t.Fatalf("expected 3 rates, got %d", len(study.Rates))
	}
	last := study.Rates[len(study.Rates)-1]
	if math.Abs(last-2.0) > 0.05 {
		t.Errorf("expected observed order ~2, got %g (errors %v)", last, study.Refinements)
	}

	for k := 1; k < len(study.Refinements); k++ {
		if study.Refinements[k].Err >= study.Refinements[k-1].Err {
			t.Errorf("error did not decrease under refinement: %v", study.Refinements)
		}
	}
}
