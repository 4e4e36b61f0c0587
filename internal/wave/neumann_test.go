package wave

import (
	"math"
	"testing"
)

func TestReflectIndex(t *testing.T) {
	tests := []struct {
		i, n, want int
	}{
		{-1, 8, 1},
		{0, 8, 0},
		{5, 8, 5},
		{8, 8, 8},
		{9, 8, 7},
	}
	for _, tt := range tests {
		if got := reflectIndex(tt.i, tt.n); got != tt.want {
			t.Errorf("reflectIndex(%d, %d): expected %d, got %d", tt.i, tt.n, tt.want, got)
		}
	}
}

// After each step every boundary point must satisfy the leapfrog update
// with ghost points mirrored from the interior. Recompute the boundary
// from the pre-step fields and compare.
func TestBoundaryGhostIdentity(t *testing.T) {
	const r = 0.5
	g, err := NewGrid(8)
	if err != nil {
		t.Fatalf("grid: %v", err)
	}
	initStandingWave(g, Mode{2, 3}, r)

	st := NewStepper(g, r, 5)
	st.Ready()

	n := g.Intervals()
	for step := 0; step < 5; step++ {
		prev := g.Prev().Clone()
		curr := g.Curr().Clone()

		if err := st.Step(); err != nil {
			t.Fatalf("step %d: %v", step, err)
		}
		next := g.Curr()

		check := func(i, j int) {
			want := 2*curr.At(i, j) - prev.At(i, j) + r*r*laplacian(curr, i, j)
			if got := next.At(i, j); got != want {
				t.Fatalf("step %d boundary (%d,%d): expected %v, got %v", step, i, j, want, got)
			}
		}
		for j := 0; j <= n; j++ {
			check(0, j)
			check(n, j)
		}
		for i := 1; i < n; i++ {
			check(i, 0)
			check(i, n)
		}
	}
}

// The double reflection at a corner must equal reflecting along each
// axis in either order; the unified formula makes this hold by
// construction, but the stencil value itself is checked here.
func TestCornerDoubleReflection(t *testing.T) {
	f := NewField(4)
	for i := 0; i <= 4; i++ {
		for j := 0; j <= 4; j++ {
			f.Set(i, j, float64(i)*0.5+float64(j)*float64(j)*0.25)
		}
	}

	got := laplacian(f, 0, 0)
	want := (f.At(1, 0) + f.At(1, 0)) + (f.At(0, 1) + f.At(0, 1)) - 4*f.At(0, 0)
	if math.Abs(got-want) > 0 {
		t.Errorf("corner stencil: expected %v, got %v", want, got)
	}

	got = laplacian(f, 4, 4)
	want = (f.At(3, 4) + f.At(3, 4)) + (f.At(4, 3) + f.At(4, 3)) - 4*f.At(4, 4)
	if got != want {
		t.Errorf("far corner stencil: expected %v, got %v", want, got)
	}
}
