package wave

import "fmt"

// Grid owns the spatial mesh and the three solution buffers of the
// leapfrog recurrence. Buffer roles rotate after each step; the three
// slots are allocated once and never reallocated.
type Grid struct {
	n      int
	h      float64
	coords []float64
	bufs   [3]*Field
	prev   int
	curr   int
	next   int
}

// NewGrid allocates a grid with n uniform intervals per axis and three
// zero-initialized solution buffers.
func NewGrid(n int) (*Grid, error) {
	if n < 2 {
		return nil, fmt.Errorf("%w: got %d", ErrInvalidResolution, n)
	}
	g := &Grid{
		n:      n,
		h:      1.0 / float64(n),
		coords: make([]float64, n+1),
		prev:   0,
		curr:   1,
		next:   2,
	}
	for i := range g.coords {
		g.coords[i] = float64(i) * g.h
	}
	for s := range g.bufs {
		g.bufs[s] = NewField(n)
	}
	return g, nil
}

// Intervals returns the number of grid intervals per axis.
func (g *Grid) Intervals() int { return g.n }

// Spacing returns the uniform mesh width h = 1/n.
func (g *Grid) Spacing() float64 { return g.h }

// X returns the x coordinate of column index i.
func (g *Grid) X(i int) float64 { return g.coords[i] }

// Y returns the y coordinate of row index j.
func (g *Grid) Y(j int) float64 { return g.coords[j] }

// Prev returns the field one step behind the current one.
func (g *Grid) Prev() *Field { return g.bufs[g.prev] }

// Curr returns the current field.
func (g *Grid) Curr() *Field { return g.bufs[g.curr] }

// Next returns the scratch field being written by the ongoing step.
func (g *Grid) Next() *Field { return g.bufs[g.next] }

// Rotate cycles the buffer roles: previous takes the current field,
// current takes the freshly computed one, and the old previous buffer
// becomes scratch for the next step.
func (g *Grid) Rotate() {
	g.prev, g.curr, g.next = g.curr, g.next, g.prev
}
