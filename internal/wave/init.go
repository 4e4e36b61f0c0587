package wave

import "math"

// initStandingWave fills the current field with the standing-wave mode
// cos(mx*pi*x)*cos(my*pi*y) and derives the previous field so that the
// initial velocity is zero. The virtual pre-initial field comes from a
// half-step Taylor expansion of the recurrence at rest:
//
//	u{-1} = u{0} + r^2/2 * lap(u{0})
//
// with Neumann reflection applied to the stencil at boundary points.
func initStandingWave(g *Grid, mode Mode, r float64) {
	n := g.Intervals()
	curr, prev := g.Curr(), g.Prev()
	for i := 0; i <= n; i++ {
		cx := math.Cos(float64(mode.X) * math.Pi * g.X(i))
		for j := 0; j <= n; j++ {
			curr.Set(i, j, cx*math.Cos(float64(mode.Y)*math.Pi*g.Y(j)))
		}
	}
	half := 0.5 * r * r
	for i := 0; i <= n; i++ {
		for j := 0; j <= n; j++ {
			prev.Set(i, j, curr.At(i, j)+half*laplacian(curr, i, j))
		}
	}
}
