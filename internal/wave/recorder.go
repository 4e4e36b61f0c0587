package wave

import "fmt"

// Collection is an ordered record of field snapshots keyed by step index.
// Keys are strictly increasing, starting at 0 for a solver run. Stored
// fields are copies with storage disjoint from the live grid buffers and
// should be treated as read-only.
type Collection struct {
	steps  []int
	fields map[int]*Field
}

// NewCollection returns an empty collection.
func NewCollection() *Collection {
	return &Collection{fields: make(map[int]*Field)}
}

// Add appends a copy of f under the given step index. Step indices must
// arrive in strictly increasing order.
func (c *Collection) Add(step int, f *Field) error {
	if len(c.steps) > 0 && step <= c.steps[len(c.steps)-1] {
		return fmt.Errorf("wave: snapshot step %d not after %d", step, c.steps[len(c.steps)-1])
	}
	c.steps = append(c.steps, step)
	c.fields[step] = f.Clone()
	return nil
}

// Len returns the number of recorded snapshots.
func (c *Collection) Len() int { return len(c.steps) }

// Steps returns the recorded step indices in increasing order.
func (c *Collection) Steps() []int {
	out := make([]int, len(c.steps))
	copy(out, c.steps)
	return out
}

// At returns the snapshot recorded at the given step index.
func (c *Collection) At(step int) (*Field, bool) {
	f, ok := c.fields[step]
	return f, ok
}

// First returns the earliest recorded snapshot, or nil if empty.
func (c *Collection) First() *Field {
	if len(c.steps) == 0 {
		return nil
	}
	return c.fields[c.steps[0]]
}

// Last returns the latest recorded snapshot, or nil if empty.
func (c *Collection) Last() *Field {
	if len(c.steps) == 0 {
		return nil
	}
	return c.fields[c.steps[len(c.steps)-1]]
}

// recorder applies the snapshot policy: step 0, every multiple of the
// interval, and always the final step so a run has a well-defined last
// frame regardless of divisibility.
type recorder struct {
	every int
	final int
	out   *Collection
}

func newRecorder(every, final int) *recorder {
	return &recorder{every: every, final: final, out: NewCollection()}
}

func (r *recorder) observe(step int, f *Field) error {
	if step%r.every != 0 && step != r.final {
		return nil
	}
	return r.out.Add(step, f)
}
