package analysis

import (
	"math"

	"github.com/san-kum/wavelab/internal/wave"
)

// Omega returns the angular frequency of the (mx, my) Neumann standing
// wave: w = c*pi*sqrt(mx^2 + my^2).
func Omega(c float64, mode wave.Mode) float64 {
	return c * math.Pi * math.Sqrt(float64(mode.X*mode.X+mode.Y*mode.Y))
}

// Exact evaluates the closed-form standing wave
//
//	u(x, y, t) = cos(mx*pi*x) * cos(my*pi*y) * cos(w*t)
//
// on an (n+1)x(n+1) grid over the unit square at time t.
func Exact(n int, mode wave.Mode, c, t float64) *wave.Field {
	f := wave.NewField(n)
	h := 1.0 / float64(n)
	ct := math.Cos(Omega(c, mode) * t)
	for i := 0; i <= n; i++ {
		cx := math.Cos(float64(mode.X) * math.Pi * float64(i) * h)
		for j := 0; j <= n; j++ {
			f.Set(i, j, cx*math.Cos(float64(mode.Y)*math.Pi*float64(j)*h)*ct)
		}
	}
	return f
}
