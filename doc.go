// Package zonotope computes exact invariants of zonotopes: the Minkowski
// sum Z = Σ [0, g_i] of n generator segments in d-space.
//
// What is in the box?
//
//	• Volume: the exact Euclidean volume, Σ |det| over every linearly
//	  independent d-subset of generators, as a *big.Rat.
//	• Halfspaces: the facet inequalities normal·x + offset >= 0, as
//	  primitive integer vectors in a deterministic order.
//	• VolumeOf / HalfspacesOf: the same engine over any exact.Field
//	  (big integers, rationals, int64, float64).
//	• Column-major adapters for callers that hold generators in flat arrays.
//
// Everything is organized under small subpackages:
//
//	exact/        numeric fields and vector helpers
//	matrix/       the immutable generator store and its scaled views
//	combination/  index combinations with kernel / inverse tracking + traversal
//	halfspace/    hyperplanes, the deduplicating set, the angular sweep
//	cache/        Badger / in-memory result cache
//	cmd/zonotope  the command line tool
//
// Quick example, the unit square spanned by (1,0) and (0,1):
//
//	g, _ := matrix.FromInt64([][]int64{{1, 0}, {0, 1}})
//	vol, _ := zonotope.Volume(g)      // 1
//	hs, _ := zonotope.Halfspaces(g)   // y>=0, x>=0, 1-x>=0, 1-y>=0
//
// Rational generators are lifted to integers by the lcm s of their
// denominators; the volume is divided by s^d and the facets are mapped
// back, so results always refer to the generators as given.
//
// Work is single-threaded by default. WithWorkers(n) spreads independent
// top-level branches of the enumeration over n goroutines; the results are
// identical. WithContext makes long enumerations cancellable.
package zonotope
