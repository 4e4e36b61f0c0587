package wave

import (
	"context"
	"testing"
)

func BenchmarkStep(b *testing.B) {
	g, err := NewGrid(128)
	if err != nil {
		b.Fatalf("grid: %v", err)
	}
	initStandingWave(g, Mode{2, 3}, 0.5)

	st := NewStepper(g, 0.5, b.N+1)
	st.Ready()

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if err := st.Step(); err != nil {
			b.Fatalf("step: %v", err)
		}
	}
}

func BenchmarkSolve(b *testing.B) {
	p := Params{N: 60, Steps: 120, CFL: 0.5, Speed: 1.0, Mode: Mode{2, 3}, StoreEvery: 2}

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := Solve(context.Background(), p); err != nil {
			b.Fatalf("solve: %v", err)
		}
	}
}
