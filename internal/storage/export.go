package storage

import (
	"encoding/json"
	"io"

	"github.com/san-kum/wavelab/internal/wave"
)

type SnapshotData struct {
	Step   int         `json:"step"`
	Time   float64     `json:"time"`
	Values [][]float64 `json:"values"`
}

type ExportData struct {
	ID         string             `json:"id"`
	N          int                `json:"n"`
	Steps      int                `json:"steps"`
	CFL        float64            `json:"cfl"`
	WaveSpeed  float64            `json:"wave_speed"`
	Dt         float64            `json:"dt"`
	Mode       [2]int             `json:"mode"`
	StoreEvery int                `json:"store_every"`
	Snapshots  []SnapshotData     `json:"snapshots"`
	Metrics    map[string]float64 `json:"metrics"`
}

// ExportJSON writes a run with its full snapshot data as indented JSON.
func ExportJSON(w io.Writer, meta *RunMetadata, coll *wave.Collection) error {
	data := ExportData{
		ID:         meta.ID,
		N:          meta.N,
		Steps:      meta.Steps,
		CFL:        meta.CFL,
		WaveSpeed:  meta.WaveSpeed,
		Dt:         meta.Dt,
		Mode:       [2]int{meta.ModeX, meta.ModeY},
		StoreEvery: meta.StoreEvery,
		Snapshots:  make([]SnapshotData, 0, coll.Len()),
		Metrics:    meta.Metrics,
	}

	for _, step := range coll.Steps() {
		f, _ := coll.At(step)
		data.Snapshots = append(data.Snapshots, SnapshotData{
			Step:   step,
			Time:   float64(step) * meta.Dt,
			Values: f.Rows(),
		})
	}

	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(data)
}
