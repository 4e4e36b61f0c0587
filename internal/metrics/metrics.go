// Package metrics derives scalar diagnostics from recorded snapshot
// collections: discrete wave energy, energy drift and peak amplitude.
package metrics

import "github.com/san-kum/wavelab/internal/wave"

// Metric accumulates a scalar observation over snapshots in step order.
type Metric interface {
	Name() string
	Observe(step int, f *wave.Field)
	Value() float64
	Reset()
}

// Default returns the standard diagnostics for a run.
func Default(p wave.Params) []Metric {
	return []Metric{
		NewEnergy(p.Speed, p.Spacing(), p.TimeStep()),
		NewEnergyDrift(p.Speed, p.Spacing(), p.TimeStep()),
		NewAmplitude(),
	}
}

// Collect feeds every snapshot of coll through the metrics and returns
// their final values by name.
func Collect(coll *wave.Collection, ms []Metric) map[string]float64 {
	for _, m := range ms {
		m.Reset()
	}
	for _, step := range coll.Steps() {
		f, _ := coll.At(step)
		for _, m := range ms {
			m.Observe(step, f)
		}
	}
	out := make(map[string]float64, len(ms))
	for _, m := range ms {
		out[m.Name()] = m.Value()
	}
	return out
}
