package wave

// reflectIndex mirrors an out-of-range neighbor index back into [0, n],
// treating a ghost point one step outside the boundary as equal to its
// mirror interior point. In-range indices pass through unchanged.
func reflectIndex(i, n int) int {
	if i < 0 {
		return -i
	}
	if i > n {
		return 2*n - i
	}
	return i
}

// laplacian evaluates the five-point stencil at (i, j) with Neumann
// reflection at the edges. The axis sums are grouped so that the result
// is bitwise transpose-symmetric for transpose-symmetric fields.
func laplacian(f *Field, i, j int) float64 {
	n := f.Intervals()
	return (f.At(reflectIndex(i+1, n), j) + f.At(reflectIndex(i-1, n), j)) +
		(f.At(i, reflectIndex(j+1, n)) + f.At(i, reflectIndex(j-1, n))) -
		4*f.At(i, j)
}

// enforceBoundary fills the edge values of next with the leapfrog update
// evaluated through reflected neighbors, so the ghost-point identity
// holds after every step. One formula covers edges and corners; a corner
// simply reflects along both axes. Must run before the buffers rotate.
func enforceBoundary(prev, curr, next *Field, r2 float64) {
	n := curr.Intervals()
	update := func(i, j int) {
		next.Set(i, j, 2*curr.At(i, j)-prev.At(i, j)+r2*laplacian(curr, i, j))
	}
	for j := 0; j <= n; j++ {
		update(0, j)
		update(n, j)
	}
	for i := 1; i < n; i++ {
		update(i, 0)
		update(i, n)
	}
}
