// Package halfspace turns corank-two generator combinations into the facet
// inequalities of a zonotope.
//
// A Hyperplane is the halfspace Normal·x + Offset >= 0. One convention is
// used throughout: the vector (Offset, Normal...) is standardized by the
// field (primitive integers for exact.Int and exact.Int64, unit L1 norm
// for exact.Rat and exact.Float64) without ever flipping its sign, so the
// inequality keeps its meaning and Standardize is idempotent.
//
// Sweep performs the planar event-point sweep: generators are projected
// onto the two-dimensional kernel of a combination, sorted by angle with
// CompareByAngle (no trigonometry, exact in every field), and a running
// sum of the generators on the negative side of the rotating line yields
// each facet offset.
//
// Set collects the emitted hyperplanes concurrently and removes duplicates
// that arise when more than d-1 generators span the same facet.
package halfspace
