// Package render turns snapshot collections into animated GIFs and
// terminal heatmaps.
package render

import "github.com/san-kum/wavelab/internal/wave"

// Scale maps field values onto a symmetric color range shared by all
// frames of an animation.
type Scale struct {
	Min float64
	Max float64
}

// SharedScale derives the animation's color range from the extremal
// snapshots: vmax is the larger peak amplitude of the first and last
// frames, vmin its negation, so zero displacement sits mid-palette.
func SharedScale(coll *wave.Collection) Scale {
	vmax := 0.0
	if f := coll.First(); f != nil {
		vmax = f.MaxAbs()
	}
	if f := coll.Last(); f != nil {
		if m := f.MaxAbs(); m > vmax {
			vmax = m
		}
	}
	if vmax == 0 {
		vmax = 1
	}
	return Scale{Min: -vmax, Max: vmax}
}

// Normalize maps v into [0, 1], clamping values outside the range.
func (s Scale) Normalize(v float64) float64 {
	t := (v - s.Min) / (s.Max - s.Min)
	if t < 0 {
		return 0
	}
	if t > 1 {
		return 1
	}
	return t
}
