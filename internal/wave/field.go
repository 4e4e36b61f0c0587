package wave

import "math"

// Field is a square lattice of (N+1)x(N+1) scalar samples covering the
// unit square, stored row-major.
type Field struct {
	n    int
	data []float64
}

// NewField allocates a zero field over n intervals per axis.
func NewField(n int) *Field {
	pts := n + 1
	return &Field{n: n, data: make([]float64, pts*pts)}
}

// Intervals returns the number of grid intervals per axis.
func (f *Field) Intervals() int { return f.n }

// Points returns the number of sample points per axis.
func (f *Field) Points() int { return f.n + 1 }

// At returns the sample at row i, column j.
func (f *Field) At(i, j int) float64 { return f.data[i*(f.n+1)+j] }

// Set writes the sample at row i, column j.
func (f *Field) Set(i, j int, v float64) { f.data[i*(f.n+1)+j] = v }

// Clone returns a copy with disjoint storage.
func (f *Field) Clone() *Field {
	c := &Field{n: f.n, data: make([]float64, len(f.data))}
	copy(c.data, f.data)
	return c
}

// MaxAbs returns the largest absolute sample value.
func (f *Field) MaxAbs() float64 {
	m := 0.0
	for _, v := range f.data {
		if a := math.Abs(v); a > m {
			m = a
		}
	}
	return m
}

// Rows returns the samples as a fresh [row][col] slice of slices.
func (f *Field) Rows() [][]float64 {
	pts := f.n + 1
	rows := make([][]float64, pts)
	for i := 0; i < pts; i++ {
		rows[i] = make([]float64, pts)
		copy(rows[i], f.data[i*pts:(i+1)*pts])
	}
	return rows
}

// IsValid reports whether the field is free of NaN and Inf samples.
func (f *Field) IsValid() bool {
	for _, v := range f.data {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return false
		}
	}
	return true
}
