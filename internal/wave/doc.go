// Package wave solves the two-dimensional scalar wave equation on the
// unit square with homogeneous Neumann (reflecting) boundaries.
//
// The solver uses an explicit second-order leapfrog scheme on a uniform
// (N+1)x(N+1) lattice:
//
//	u{n+1} = 2*u{n} - u{n-1} + r^2 * lap(u{n}),  r = c*dt/h
//
// with the time step derived from a Courant number, dt = cfl*h/c. The
// zero-normal-derivative boundary condition is enforced by ghost-point
// reflection, so the same five-point stencil covers interior, edge and
// corner points.
//
// # Example
//
//	p := wave.DefaultParams()
//	coll, err := wave.Solve(ctx, p)
//	if err != nil { ... }
//	for _, step := range coll.Steps() { ... }
//
// A [Collection] is an ordered record of field snapshots keyed by step
// index; every run records step 0 and the final step.
//
// # Thread Safety
//
// Solver instances are NOT thread-safe. Each run owns its three grid
// buffers exclusively; recorded snapshots are disjoint copies.
package wave
