// Package storage persists solver runs on disk: one directory per run
// holding metadata.json and the recorded snapshots as CSV.
package storage

import (
	"encoding/csv"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"time"

	"github.com/san-kum/wavelab/internal/wave"
)

type Store struct {
	baseDir string
}

func New(baseDir string) *Store {
	return &Store{baseDir: baseDir}
}

func (s *Store) Init() error {
	return os.MkdirAll(s.baseDir, 0755)
}

type RunMetadata struct {
	ID         string             `json:"id"`
	Timestamp  time.Time          `json:"timestamp"`
	N          int                `json:"n"`
	Steps      int                `json:"steps"`
	CFL        float64            `json:"cfl"`
	WaveSpeed  float64            `json:"wave_speed"`
	Dt         float64            `json:"dt"`
	ModeX      int                `json:"mode_x"`
	ModeY      int                `json:"mode_y"`
	StoreEvery int                `json:"store_every"`
	Snapshots  int                `json:"snapshots"`
	Metrics    map[string]float64 `json:"metrics"`
}

// Save writes a run directory with metadata and every recorded snapshot
// flattened row-major into snapshots.csv, one CSV row per step.
func (s *Store) Save(p wave.Params, coll *wave.Collection, metrics map[string]float64) (string, error) {
	runID := fmt.Sprintf("wave_%dx%d_%d", p.Mode.X, p.Mode.Y, time.Now().Unix())
	runDir := filepath.Join(s.baseDir, runID)

	if err := os.MkdirAll(runDir, 0755); err != nil {
		return "", err
	}

	meta := RunMetadata{
		ID:         runID,
		Timestamp:  time.Now(),
		N:          p.N,
		Steps:      p.Steps,
		CFL:        p.CFL,
		WaveSpeed:  p.Speed,
		Dt:         p.TimeStep(),
		ModeX:      p.Mode.X,
		ModeY:      p.Mode.Y,
		StoreEvery: p.StoreEvery,
		Snapshots:  coll.Len(),
		Metrics:    metrics,
	}

	metaFile, err := os.Create(filepath.Join(runDir, "metadata.json"))
	if err != nil {
		return "", err
	}
	defer metaFile.Close()

	enc := json.NewEncoder(metaFile)
	enc.SetIndent("", "  ")
	if err := enc.Encode(meta); err != nil {
		return "", err
	}

	csvFile, err := os.Create(filepath.Join(runDir, "snapshots.csv"))
	if err != nil {
		return "", err
	}
	defer csvFile.Close()

	w := csv.NewWriter(csvFile)
	defer w.Flush()

	pts := p.N + 1
	header := make([]string, 0, 2+pts*pts)
	header = append(header, "step", "time")
	for i := 0; i < pts*pts; i++ {
		header = append(header, fmt.Sprintf("u%d", i))
	}
	if err := w.Write(header); err != nil {
		return "", err
	}

	for _, step := range coll.Steps() {
		f, _ := coll.At(step)
		row := make([]string, 0, len(header))
		row = append(row,
			strconv.Itoa(step),
			strconv.FormatFloat(float64(step)*meta.Dt, 'g', -1, 64))
		for i := 0; i < pts; i++ {
			for j := 0; j < pts; j++ {
				row = append(row, strconv.FormatFloat(f.At(i, j), 'g', -1, 64))
			}
		}
		if err := w.Write(row); err != nil {
			return "", err
		}
	}

	return runID, nil
}

func (s *Store) List() ([]RunMetadata, error) {
	entries, err := os.ReadDir(s.baseDir)
	if err != nil {
		if os.IsNotExist(err) {
			return []RunMetadata{}, nil
		}
		return nil, err
	}

	runs := make([]RunMetadata, 0)
	for _, entry := range entries {
		if !entry.IsDir() {
			continue
		}
		data, err := os.ReadFile(filepath.Join(s.baseDir, entry.Name(), "metadata.json"))
		if err != nil {
			continue
		}
		var meta RunMetadata
		if err := json.Unmarshal(data, &meta); err != nil {
			continue
		}
		runs = append(runs, meta)
	}

	return runs, nil
}

func (s *Store) Load(runID string) (*RunMetadata, error) {
	data, err := os.ReadFile(filepath.Join(s.baseDir, runID, "metadata.json"))
	if err != nil {
		return nil, err
	}
	var meta RunMetadata
	if err := json.Unmarshal(data, &meta); err != nil {
		return nil, err
	}
	return &meta, nil
}

// LoadSnapshots reads a run's snapshots back into a collection.
func (s *Store) LoadSnapshots(runID string) (*wave.Collection, error) {
	meta, err := s.Load(runID)
	if err != nil {
		return nil, err
	}

	file, err := os.Open(filepath.Join(s.baseDir, runID, "snapshots.csv"))
	if err != nil {
		return nil, err
	}
	defer file.Close()

	r := csv.NewReader(file)
	records, err := r.ReadAll()
	if err != nil {
		return nil, err
	}
	if len(records) < 2 {
		return wave.NewCollection(), nil
	}

	pts := meta.N + 1
	coll := wave.NewCollection()
	for _, record := range records[1:] {
		if len(record) != 2+pts*pts {
			return nil, fmt.Errorf("storage: run %s: snapshot row has %d fields, want %d",
				runID, len(record), 2+pts*pts)
		}
		step, err := strconv.Atoi(record[0])
		if err != nil {
			return nil, err
		}
		f := wave.NewField(meta.N)
		for i := 0; i < pts; i++ {
			for j := 0; j < pts; j++ {
				v, err := strconv.ParseFloat(record[2+i*pts+j], 64)
				if err != nil {
					return nil, err
				}
				f.Set(i, j, v)
			}
		}
		if err := coll.Add(step, f); err != nil {
			return nil, err
		}
	}
	return coll, nil
}
