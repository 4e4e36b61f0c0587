package wave

import (
	"context"
	"errors"
	"math"
	"testing"
)

func TestSolveKeySequence(t *testing.T) {
	p := Params{N: 8, Steps: 10, CFL: 0.5, Speed: 1.0, Mode: Mode{1, 1}, StoreEvery: 3}

	coll, err := Solve(context.Background(), p)
	if err != nil {
		t.Fatalf("solve failed: %v", err)
	}

	steps := coll.Steps()
	want := []int{0, 3, 6, 9, 10}
	if len(steps) != len(want) {
		t.Fatalf("expected steps %v, got %v", want, steps)
	}
	for i := range want {
		if steps[i] != want[i] {
			t.Fatalf("expected steps %v, got %v", want, steps)
		}
	}
}

func TestSolveFinalStepAlwaysRecorded(t *testing.T) {
	// 12 is a multiple of 4, so the final step must not be duplicated.
	p := Params{N: 4, Steps: 12, CFL: 0.5, Speed: 1.0, Mode: Mode{1, 1}, StoreEvery: 4}

	coll, err := Solve(context.Background(), p)
	if err != nil {
		t.Fatalf("solve failed: %v", err)
	}

	steps := coll.Steps()
	if steps[len(steps)-1] != 12 {
		t.Errorf("expected final step 12, got %d", steps[len(steps)-1])
	}
	for i := 1; i < len(steps); i++ {
		if steps[i] <= steps[i-1] {
			t.Errorf("steps not strictly increasing: %v", steps)
		}
	}
}

func TestSolveConcreteScenario(t *testing.T) {
	p := Params{N: 4, Steps: 2, CFL: 0.5, Speed: 1.0, Mode: Mode{1, 1}, StoreEvery: 1}

	coll, err := Solve(context.Background(), p)
	if err != nil {
		t.Fatalf("solve failed: %v", err)
	}

	steps := coll.Steps()
	if len(steps) != 3 || steps[0] != 0 || steps[1] != 1 || steps[2] != 2 {
		t.Fatalf("expected keys {0,1,2}, got %v", steps)
	}

	f, ok := coll.At(0)
	if !ok {
		t.Fatal("missing step-0 snapshot")
	}
	h := 0.25
	for i := 0; i <= 4; i++ {
		for j := 0; j <= 4; j++ {
			want := math.Cos(math.Pi*float64(i)*h) * math.Cos(math.Pi*float64(j)*h)
			if math.Abs(f.At(i, j)-want) > 1e-12 {
				t.Fatalf("step 0 at (%d,%d): expected %.15f, got %.15f", i, j, want, f.At(i, j))
			}
		}
	}
}

func TestSolveStabilityGate(t *testing.T) {
	p := Params{N: 16, Steps: 10, CFL: 0.9, Speed: 1.0, Mode: Mode{1, 1}, StoreEvery: 1}

	coll, err := Solve(context.Background(), p)
	if !errors.Is(err, ErrStabilityRisk) {
		t.Fatalf("expected ErrStabilityRisk, got %v", err)
	}
	if coll != nil {
		t.Error("expected no collection on validation failure")
	}
}

func TestSolveDeterministic(t *testing.T) {
	p := Params{N: 12, Steps: 30, CFL: 0.5, Speed: 1.0, Mode: Mode{2, 3}, StoreEvery: 5}

	a, err := Solve(context.Background(), p)
	if err != nil {
		t.Fatalf("first solve failed: %v", err)
	}
	b, err := Solve(context.Background(), p)
	if err != nil {
		t.Fatalf("second solve failed: %v", err)
	}

	for _, step := range a.Steps() {
		fa, _ := a.At(step)
		fb, ok := b.At(step)
		if !ok {
			t.Fatalf("step %d missing from second run", step)
		}
		for i := 0; i < fa.Points(); i++ {
			for j := 0; j < fa.Points(); j++ {
				if fa.At(i, j) != fb.At(i, j) {
					t.Fatalf("step %d at (%d,%d): runs differ: %v vs %v",
						step, i, j, fa.At(i, j), fb.At(i, j))
				}
			}
		}
	}
}

func TestSolveTransposeSymmetry(t *testing.T) {
	// With mx = my the initial field, the stencil and the reflection are
	// all transpose-symmetric, so every snapshot must stay exactly so.
	p := Params{N: 16, Steps: 20, CFL: 0.5, Speed: 1.0, Mode: Mode{2, 2}, StoreEvery: 5}

	coll, err := Solve(context.Background(), p)
	if err != nil {
		t.Fatalf("solve failed: %v", err)
	}

	for _, step := range coll.Steps() {
		f, _ := coll.At(step)
		for i := 0; i < f.Points(); i++ {
			for j := 0; j < i; j++ {
				if f.At(i, j) != f.At(j, i) {
					t.Fatalf("step %d: snapshot not transpose-symmetric at (%d,%d): %v vs %v",
						step, i, j, f.At(i, j), f.At(j, i))
				}
			}
		}
	}
}

func TestSolveSnapshotShape(t *testing.T) {
	p := Params{N: 6, Steps: 4, CFL: 0.5, Speed: 1.0, Mode: Mode{1, 2}, StoreEvery: 2}

	coll, err := Solve(context.Background(), p)
	if err != nil {
		t.Fatalf("solve failed: %v", err)
	}

	for _, step := range coll.Steps() {
		f, _ := coll.At(step)
		if f.Points() != 7 {
			t.Errorf("step %d: expected 7 points per axis, got %d", step, f.Points())
		}
		if !f.IsValid() {
			t.Errorf("step %d: snapshot contains NaN/Inf", step)
		}
	}
}

func TestSolveCancellation(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	p := Params{N: 32, Steps: 100, CFL: 0.5, Speed: 1.0, Mode: Mode{1, 1}, StoreEvery: 1}
	coll, err := Solve(ctx, p)
	if !errors.Is(err, context.Canceled) {
		t.Fatalf("expected context.Canceled, got %v", err)
	}
	if coll != nil {
		t.Error("expected no collection on cancellation")
	}
}

func TestRecorderCopiesAreDisjoint(t *testing.T) {
	g, err := NewGrid(4)
	if err != nil {
		t.Fatalf("grid: %v", err)
	}
	initStandingWave(g, Mode{1, 1}, 0.5)

	rec := newRecorder(1, 1)
	if err := rec.observe(0, g.Curr()); err != nil {
		t.Fatalf("observe: %v", err)
	}

	before, _ := rec.out.At(0)
	want := before.At(2, 2)

	g.Curr().Set(2, 2, 99)

	after, _ := rec.out.At(0)
	if after.At(2, 2) != want {
		t.Error("mutating the grid altered a recorded snapshot")
	}
}

func TestCollectionRejectsOutOfOrder(t *testing.T) {
	c := NewCollection()
	f := NewField(2)

	if err := c.Add(3, f); err != nil {
		t.Fatalf("add: %v", err)
	}
	if err := c.Add(3, f); err == nil {
		t.Error("expected error for repeated step index")
	}
	if err := c.Add(1, f); err == nil {
		t.Error("expected error for decreasing step index")
	}
}
