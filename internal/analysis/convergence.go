package analysis

import (
	"context"
	"fmt"
	"math"

	"github.com/san-kum/wavelab/internal/wave"
)

// Refinement records one level of a convergence study.
type Refinement struct {
	N   int
	H   float64
	Err float64
}

// Study holds the observed orders of accuracy together with the
// refinement ladder they were estimated from. Rates has one entry fewer
// than Refinements.
type Study struct {
	Rates       []float64
	Refinements []Refinement
}

// ConvergenceRates solves the wave equation on a sequence of dyadically
// refined grids, starting at 8 intervals and doubling both N and the
// step count per level, and estimates the observed order from the final
// l2 errors:
//
//	rate_k = log(E_{k-1}/E_k) / log(h_{k-1}/h_k)
//
// A second-order scheme drives the rates toward 2. At least two levels
// are required to estimate a rate.
func ConvergenceRates(ctx context.Context, levels int, cfl, c float64, steps int, mode wave.Mode) (*Study, error) {
	if levels < 2 {
		return nil, fmt.Errorf("analysis: need at least 2 refinement levels, got %d", levels)
	}

	study := &Study{
		Rates:       make([]float64, 0, levels-1),
		Refinements: make([]Refinement, 0, levels),
	}

	n, nt := 8, steps
	for level := 0; level < levels; level++ {
		p := wave.Params{
			N:          n,
			Steps:      nt,
			CFL:        cfl,
			Speed:      c,
			Mode:       mode,
			StoreEvery: nt, // only the endpoints are needed
		}
		coll, err := wave.Solve(ctx, p)
		if err != nil {
			return nil, err
		}

		final, _ := coll.At(nt)
		t := float64(nt) * p.TimeStep()
		study.Refinements = append(study.Refinements, Refinement{
			N:   n,
			H:   p.Spacing(),
			Err: L2Error(final, mode, c, t),
		})

		n *= 2
		nt *= 2
	}

	for k := 1; k < len(study.Refinements); k++ {
		prev, curr := study.Refinements[k-1], study.Refinements[k]
		study.Rates = append(study.Rates,
			math.Log(prev.Err/curr.Err)/math.Log(prev.H/curr.H))
	}
	return study, nil
}
