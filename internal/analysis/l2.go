package analysis

import (
	"math"

	"github.com/san-kum/wavelab/internal/wave"
)

// L2Error returns the discrete l2 norm of the difference between u and
// the exact standing wave at time t: sqrt(mean((u - ue)^2)).
func L2Error(u *wave.Field, mode wave.Mode, c, t float64) float64 {
	ue := Exact(u.Intervals(), mode, c, t)
	pts := u.Points()
	sum := 0.0
	for i := 0; i < pts; i++ {
		for j := 0; j < pts; j++ {
			d := u.At(i, j) - ue.At(i, j)
			sum += d * d
		}
	}
	return math.Sqrt(sum / float64(pts*pts))
}
